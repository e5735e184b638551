// arraymapgen generates arraymap key contracts for integer enumerations.
//
// Run it from a go:generate directive next to the type:
//
//	//go:generate go run github.com/homier/arraymap/cmd/arraymapgen --type Letter --text
//
// or point it at a YAML or JSON description that declares the type as well:
//
//	arraymapgen --description weekday.yaml
//
// "arraymapgen check [dir]" reports literals passed to arraymap.New,
// arraymap.MustNew or a generated constructor that leave out or repeat a
// variant. It exits with status 1 when it finds any.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/homier/arraymap/internal/gen"
)

func main() {
	os.Exit(report(run(os.Args[1:], os.Stderr), os.Stderr))
}

// report prints err unless it was already written to stderr and returns the
// exit status for it.
func report(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}

	var exit *exitError
	if !errors.As(err, &exit) {
		fmt.Fprintf(stderr, "arraymapgen: %v\n", err)
		return 1
	}

	if !exit.reported {
		fmt.Fprintf(stderr, "arraymapgen: %v\n", err)
	}

	return exit.code
}

// errDiagnostics is returned by check after printing its diagnostics.
var errDiagnostics = errors.New("literal check failed")

// exitError carries the process exit status for err. reported is set when
// err has already been written to stderr.
type exitError struct {
	err      error
	code     int
	reported bool
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }
func (e *exitError) ExitCode() int { return e.code }

func usageError(format string, args ...any) error {
	return &exitError{err: fmt.Errorf(format, args...), code: 2}
}

func run(args []string, stderr io.Writer) error {
	var (
		typeName    string
		description string
		output      string
		text        bool
		verbose     bool
	)

	flagSet := pflag.NewFlagSet("arraymapgen", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&typeName, "type", "", "enumeration type to generate a key contract for")
	flagSet.StringVar(&description, "description", "", "YAML or JSON file declaring the enumeration")
	flagSet.StringVarP(&output, "output", "o", "", "output file (default <type>_arraymap.go)")
	flagSet.BoolVar(&text, "text", false, "also generate String, MarshalText and UnmarshalText")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log debug output")
	flagSet.BoolP("help", "h", false, "show help")
	flagSet.Usage = func() { printHelp(stderr, flagSet) }

	// pflag prints parse errors and the usage itself.
	if err := flagSet.Parse(args); err != nil {
		return &exitError{err: err, code: 2, reported: true}
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stderr, flagSet)
		return nil
	}

	logger := newLogger(stderr, verbose)
	defer func() { _ = logger.Sync() }()

	g := gen.New(gen.WithLogger(logger))

	positional := flagSet.Args()
	if len(positional) > 0 && positional[0] == "check" {
		return check(g, positional[1:], stderr)
	}

	var dir string
	switch len(positional) {
	case 0:
		dir = "."
	case 1:
		dir = positional[0]
	default:
		return usageError("unexpected argument: %s", positional[1])
	}

	if (typeName == "") == (description == "") {
		return usageError("exactly one of --type and --description is required")
	}

	_, err := g.Generate(gen.Request{
		Dir:         dir,
		Type:        typeName,
		Description: description,
		Output:      output,
		Text:        text,
		Args:        args,
	})

	return err
}

func check(g *gen.Generator, args []string, stderr io.Writer) error {
	dir := "."
	switch len(args) {
	case 0:
	case 1:
		dir = args[0]
	default:
		return usageError("check: unexpected argument: %s", args[1])
	}

	diags, err := g.Check(dir)
	if err != nil {
		return err
	}

	for _, d := range diags {
		fmt.Fprintln(stderr, d)
	}

	if len(diags) > 0 {
		return &exitError{err: errDiagnostics, code: 1, reported: true}
	}

	return nil
}

// newLogger returns a console logger on w. Debug output is enabled by
// verbose.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	config := zap.NewDevelopmentEncoderConfig()
	config.TimeKey = ""

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(config), zapcore.AddSync(w), level)

	return zap.New(core)
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `arraymapgen generates arraymap key contracts for integer enumerations.

Usage:
  arraymapgen --type T [--text] [-o file] [dir]
  arraymapgen --description file.yaml [--text] [-o file]
  arraymapgen check [dir]

Flags:
%s`, flagSet.FlagUsages())
}
