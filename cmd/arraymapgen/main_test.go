package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const weekdaySource = `package days

type Weekday uint8

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
)
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func exitCode(t *testing.T, err error) int {
	t.Helper()

	coder, ok := err.(interface{ ExitCode() int })
	require.True(t, ok, "error %v carries no exit code", err)

	return coder.ExitCode()
}

func TestRun_Type(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "weekday.go", weekdaySource)

	var stderr bytes.Buffer
	require.NoError(t, run([]string{"--type", "Weekday", "--text", dir}, &stderr))

	src, err := os.ReadFile(filepath.Join(dir, "weekday_arraymap.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), `// Code generated by "arraymapgen --type Weekday --text `)
	assert.Contains(t, string(src), "type WeekdayMap[V any] = arraymap.Map[Weekday, V, [WeekdayCount]V]")
	assert.Contains(t, string(src), "func (w Weekday) String() string")
	assert.Contains(t, stderr.String(), "key contract written")
}

func TestRun_DescriptionOutput(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "weekday.yaml", "package: days\ntype: Weekday\nvariants: [Monday, Tuesday]\n")
	output := filepath.Join(dir, "generated.go")

	var stderr bytes.Buffer
	require.NoError(t, run([]string{"--description", path, "-o", output, "--verbose"}, &stderr))

	src, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(src), "type Weekday int")
	assert.Contains(t, stderr.String(), "enumeration loaded")
}

func TestRun_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no type", nil},
		{"type and description", []string{"--type", "T", "--description", "t.yaml"}},
		{"extra argument", []string{"--type", "T", "a", "b"}},
		{"unknown flag", []string{"--bogus"}},
		{"check extra argument", []string{"check", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args, &bytes.Buffer{})
			require.Error(t, err)
			assert.Equal(t, 2, exitCode(t, err))
		})
	}
}

func TestRun_Help(t *testing.T) {
	var stderr bytes.Buffer
	require.NoError(t, run([]string{"--help"}, &stderr))
	assert.Contains(t, stderr.String(), "arraymapgen check [dir]")
}

func TestRun_InvalidEnum(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "weekday.go", "package days\n\ntype Weekday uint8\n\nconst (\n\tMonday Weekday = 1\n\tSunday Weekday = 1\n)\n")

	err := run([]string{"--type", "Weekday", dir}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Monday and Sunday share value 1")
	_, ok := err.(interface{ ExitCode() int })
	assert.False(t, ok)
}

func TestRun_Check(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "weekday.go", weekdaySource)
	writeFile(t, dir, "names.go", `package days

import "github.com/homier/arraymap"

var names = NewWeekdayMap(
	arraymap.KV(Monday, "mon"),
	arraymap.KV(Monday, "mon"),
)
`)

	var stderr bytes.Buffer
	err := run([]string{"check", dir}, &stderr)
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(t, err))
	assert.Contains(t, stderr.String(), "duplicate key Monday in Weekday literal")
	assert.Contains(t, stderr.String(), "missing Tuesday, Wednesday in Weekday literal")

	require.NoError(t, os.Remove(filepath.Join(dir, "names.go")))
	require.NoError(t, run([]string{"check", dir}, &bytes.Buffer{}))
}

func TestReport(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   int
		output string
	}{
		{"success", nil, 0, ""},
		{"plain error", errors.New("boom"), 1, "arraymapgen: boom\n"},
		{"usage error", usageError("bad %s", "flag"), 2, "arraymapgen: bad flag\n"},
		{"already reported", &exitError{err: errDiagnostics, code: 1, reported: true}, 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			assert.Equal(t, tt.code, report(tt.err, &stderr))
			assert.Equal(t, tt.output, stderr.String())
		})
	}
}

func TestReport_ParseErrorOnce(t *testing.T) {
	var stderr bytes.Buffer

	code := report(run([]string{"--bogus"}, &stderr), &stderr)
	assert.Equal(t, 2, code)
	assert.Equal(t, 1, strings.Count(stderr.String(), "unknown flag: --bogus"), stderr.String())
}
