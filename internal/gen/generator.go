package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Generator writes key contracts and checks literals.
type Generator struct {
	logger *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New returns a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Request selects an enumeration and where its key contract goes.
type Request struct {
	// Dir is the package directory scanned for Type.
	Dir string
	// Type is the enumeration type declared in Dir. Ignored when
	// Description is set.
	Type string
	// Description is a YAML or JSON file declaring the enumeration.
	Description string
	// Output is the file to write. It defaults to <type>_arraymap.go next
	// to the package or description.
	Output string
	// Text adds String, MarshalText and UnmarshalText.
	Text bool
	// Args is recorded in the generated header.
	Args []string
}

// Generate loads the enumeration named by req, renders its key contract and
// writes it. It returns the path written.
func (g *Generator) Generate(req Request) (string, error) {
	enum, dir, err := g.load(req)
	if err != nil {
		return "", err
	}

	enum.Text = enum.Text || req.Text

	if err := enum.Validate(); err != nil {
		return "", err
	}

	strategy := "switch"
	if enum.Dense() {
		strategy = "identity"
	}

	g.logger.Debug("enumeration loaded",
		zap.String("type", enum.Name),
		zap.String("package", enum.Package),
		zap.String("repr", enum.Repr),
		zap.Int("variants", len(enum.Variants)),
		zap.String("indexing", strategy),
		zap.Bool("text", enum.Text),
	)

	src, err := Render(enum, RenderOptions{Args: strings.Join(req.Args, " ")})
	if err != nil {
		return "", err
	}

	output := req.Output
	if output == "" {
		output = filepath.Join(dir, Filename(enum))
	}

	if err := os.WriteFile(output, src, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", output, err)
	}

	g.logger.Info("key contract written",
		zap.String("type", enum.Name),
		zap.String("output", output),
		zap.Int("bytes", len(src)),
	)

	return output, nil
}

func (g *Generator) load(req Request) (*Enum, string, error) {
	if req.Description != "" {
		g.logger.Debug("loading description", zap.String("path", req.Description))

		enum, err := LoadDescription(req.Description)
		if err != nil {
			return nil, "", err
		}

		return enum, filepath.Dir(req.Description), nil
	}

	if req.Type == "" {
		return nil, "", fmt.Errorf("%w: no type or description given", ErrInvalidEnum)
	}

	dir := req.Dir
	if dir == "" {
		dir = "."
	}

	g.logger.Debug("loading source", zap.String("dir", dir), zap.String("type", req.Type))

	enum, err := LoadSource(dir, req.Type)
	if err != nil {
		return nil, "", err
	}

	return enum, dir, nil
}

// Check runs CheckLiterals on dir and logs every diagnostic as a warning.
func (g *Generator) Check(dir string) ([]Diagnostic, error) {
	diags, err := CheckLiterals(dir)
	if err != nil {
		return nil, err
	}

	for _, d := range diags {
		g.logger.Warn(d.Message, zap.Stringer("pos", d.Pos))
	}

	g.logger.Debug("literals checked", zap.String("dir", dir), zap.Int("diagnostics", len(diags)))

	return diags, nil
}
