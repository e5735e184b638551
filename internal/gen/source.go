package gen

import (
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"
)

// ErrTypeNotFound is returned when the requested type is not declared in the
// package.
var ErrTypeNotFound = errors.New("gen: type not found")

// pkg is a parsed and type-checked package directory.
type pkg struct {
	fset  *token.FileSet
	files []*ast.File
	types *types.Package
	info  *types.Info
}

// loadPackage parses the non-test Go files in dir and type-checks them.
// Files carrying a generated-code header are skipped so that stale output
// never feeds back into generation. Type errors are tolerated: constants are
// still resolved when unrelated code, or an import, fails to check.
func loadPackage(dir string, skipGenerated bool) (*pkg, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	p := &pkg{fset: token.NewFileSet()}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}

		file, err := parser.ParseFile(p.fset, filepath.Join(dir, name), nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}

		if skipGenerated && ast.IsGenerated(file) {
			continue
		}

		p.files = append(p.files, file)
	}

	if len(p.files) == 0 {
		return nil, fmt.Errorf("%s: no Go files", dir)
	}

	p.info = &types.Info{
		Defs:  make(map[*ast.Ident]types.Object),
		Uses:  make(map[*ast.Ident]types.Object),
		Types: make(map[ast.Expr]types.TypeAndValue),
	}

	conf := types.Config{
		Importer: importer.Default(),
		Error:    func(error) {},
	}

	// The returned error is the first type error, already passed to
	// conf.Error; the package is complete enough for constant lookup.
	p.types, _ = conf.Check(p.files[0].Name.Name, p.fset, p.files, p.info)

	return p, nil
}

// LoadSource collects the package-level constants of typeName declared in
// the Go package in dir, in declaration order.
func LoadSource(dir, typeName string) (*Enum, error) {
	p, err := loadPackage(dir, true)
	if err != nil {
		return nil, err
	}

	obj, ok := p.types.Scope().Lookup(typeName).(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%w: %s in %s", ErrTypeNotFound, typeName, dir)
	}

	basic, ok := obj.Type().Underlying().(*types.Basic)
	if !ok || basic.Info()&types.IsInteger == 0 {
		return nil, invalidf("%s: underlying type %s is not an integer type", typeName, obj.Type().Underlying())
	}

	enum := &Enum{
		Package: p.types.Name(),
		Name:    typeName,
		Repr:    basic.Name(),
	}

	for _, file := range p.files {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.CONST {
				continue
			}

			for _, spec := range gd.Specs {
				for _, name := range spec.(*ast.ValueSpec).Names {
					c, ok := p.info.Defs[name].(*types.Const)
					if !ok || name.Name == "_" || !types.Identical(c.Type(), obj.Type()) {
						continue
					}

					value, exact := constant.Int64Val(c.Val())
					if !exact {
						return nil, invalidf("%s: value of %s is not representable as int64", p.fset.Position(name.Pos()), name.Name)
					}

					enum.Variants = append(enum.Variants, Variant{Name: name.Name, Value: value})
				}
			}
		}
	}

	if len(enum.Variants) == 0 {
		return nil, invalidf("%s: no constants of type %s", dir, typeName)
	}

	return enum, nil
}
