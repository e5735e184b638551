package gen

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"sort"
	"strings"
)

// ModulePath is the import path of the arraymap package.
const ModulePath = "github.com/homier/arraymap"

// Diagnostic is a problem found in a literal.
type Diagnostic struct {
	Pos     token.Position
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Pos, d.Message)
}

// CheckLiterals inspects the Go package in dir for calls to arraymap.New,
// arraymap.MustNew and the generated New<T>Map and Must<T>Map constructors
// whose arguments are all arraymap.KV calls with constant keys. It reports
// every such literal that repeats a variant or leaves one out, including a
// call with no arguments at all. Literals with non-constant keys are skipped.
//
// Every package-level constant of the key type is a variant. A key type with
// two constants sharing a value cannot key a Map and is reported at each
// literal.
func CheckLiterals(dir string) ([]Diagnostic, error) {
	p, err := loadPackage(dir, false)
	if err != nil {
		return nil, err
	}

	var diags []Diagnostic
	for _, file := range p.files {
		ast.Inspect(file, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}

			if keyType, ok := p.constructorKey(call); ok {
				diags = append(diags, p.checkLiteral(call, keyType)...)
			}

			return true
		})
	}

	sort.SliceStable(diags, func(i, j int) bool {
		a, b := diags[i].Pos, diags[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}

		return a.Offset < b.Offset
	})

	return diags, nil
}

// variant is a declared constant of a key type.
type variant struct {
	name  string
	value string
	pos   token.Pos
}

// checkLiteral checks the keys of call against the variants of keyType.
// keyType is taken from the constructor when call has no arguments; it may be
// nil when the constructor does not name it.
func (p *pkg) checkLiteral(call *ast.CallExpr, keyType types.Type) []Diagnostic {
	keys := make([]ast.Expr, 0, len(call.Args))
	if len(call.Args) > 0 {
		keyType = nil
	}

	for _, arg := range call.Args {
		kv, ok := ast.Unparen(arg).(*ast.CallExpr)
		if !ok || len(kv.Args) != 2 || !p.isArraymapFunc(kv.Fun, "KV") {
			return nil
		}

		key := kv.Args[0]
		tv, ok := p.info.Types[key]
		if !ok || tv.Value == nil {
			return nil
		}

		if keyType == nil {
			keyType = tv.Type
		} else if !types.Identical(keyType, tv.Type) {
			return nil
		}

		keys = append(keys, key)
	}

	named, ok := keyType.(*types.Named)
	if !ok {
		return nil
	}

	variants := variantsOf(named)
	if len(variants) == 0 {
		return nil
	}

	typ := named.Obj().Name()

	byValue := make(map[string]variant, len(variants))
	for _, v := range variants {
		if other, dup := byValue[v.value]; dup {
			return []Diagnostic{{
				Pos:     p.fset.Position(call.Pos()),
				Message: fmt.Sprintf("%s cannot key a map: %s and %s share value %s", typ, other.name, v.name, v.value),
			}}
		}

		byValue[v.value] = v
	}

	var (
		diags []Diagnostic
		seen  = make(map[string]bool, len(variants))
	)

	for _, key := range keys {
		value := p.info.Types[key].Value.ExactString()

		v, declared := byValue[value]
		if !declared {
			diags = append(diags, Diagnostic{
				Pos:     p.fset.Position(key.Pos()),
				Message: fmt.Sprintf("%s(%s) is not a declared %s variant", typ, value, typ),
			})

			continue
		}

		if seen[value] {
			diags = append(diags, Diagnostic{
				Pos:     p.fset.Position(key.Pos()),
				Message: fmt.Sprintf("duplicate key %s in %s literal", v.name, typ),
			})

			continue
		}

		seen[value] = true
	}

	var missing []string
	for _, v := range variants {
		if !seen[v.value] {
			missing = append(missing, v.name)
		}
	}

	if len(missing) > 0 {
		diags = append(diags, Diagnostic{
			Pos:     p.fset.Position(call.Pos()),
			Message: fmt.Sprintf("missing %s in %s literal", strings.Join(missing, ", "), typ),
		})
	}

	return diags
}

// variantsOf returns the package-level constants of named in declaration
// order.
func variantsOf(named *types.Named) []variant {
	obj := named.Obj()
	if obj.Pkg() == nil {
		return nil
	}

	var (
		scope    = obj.Pkg().Scope()
		variants []variant
	)

	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok || name == "_" || !types.Identical(c.Type(), named) {
			continue
		}

		variants = append(variants, variant{name: name, value: c.Val().ExactString(), pos: c.Pos()})
	}

	sort.SliceStable(variants, func(i, j int) bool {
		return variants[i].pos < variants[j].pos
	})

	return variants
}

// constructorKey reports whether call invokes arraymap.New, arraymap.MustNew
// or a generated New<T>Map / Must<T>Map function, and returns the key type
// the constructor names, if any: the first type argument of New and MustNew,
// or T of a generated constructor.
func (p *pkg) constructorKey(call *ast.CallExpr) (types.Type, bool) {
	if p.isArraymapFunc(call.Fun, "New") || p.isArraymapFunc(call.Fun, "MustNew") {
		args := typeArgs(call.Fun)
		if len(args) == 0 {
			return nil, true
		}

		return p.typeOf(args[0]), true
	}

	var ident *ast.Ident
	switch fun := unindex(call.Fun).(type) {
	case *ast.Ident:
		ident = fun
	case *ast.SelectorExpr:
		ident = fun.Sel
	default:
		return nil, false
	}

	name, ok := strings.CutSuffix(ident.Name, "Map")
	if !ok {
		return nil, false
	}

	typ, ok := strings.CutPrefix(name, "Must")
	if !ok {
		typ, ok = strings.CutPrefix(name, "New")
	}
	if !ok || typ == "" {
		return nil, false
	}

	// A resolved callee must take ...arraymap.Entry[T, V], unless the Entry
	// type itself failed to check.
	if fn, ok := p.info.Uses[ident].(*types.Func); ok {
		sig := fn.Type().(*types.Signature)
		if key, ok := entryKey(sig); ok {
			return key, true
		}

		if !invalidParams(sig) {
			return nil, false
		}
	}

	if obj, ok := p.types.Scope().Lookup(typ).(*types.TypeName); ok {
		return obj.Type(), true
	}

	return nil, true
}

// entryKey returns K of a variadic ...arraymap.Entry[K, V] parameter.
func entryKey(sig *types.Signature) (types.Type, bool) {
	params := sig.Params()
	if !sig.Variadic() || params.Len() != 1 {
		return nil, false
	}

	slice, ok := params.At(0).Type().(*types.Slice)
	if !ok {
		return nil, false
	}

	entry, ok := slice.Elem().(*types.Named)
	if !ok || entry.Obj().Name() != "Entry" || entry.Obj().Pkg() == nil || entry.Obj().Pkg().Path() != ModulePath {
		return nil, false
	}

	if entry.TypeArgs().Len() != 2 {
		return nil, false
	}

	return entry.TypeArgs().At(0), true
}

// invalidParams reports whether a parameter of sig, or the element of a
// variadic one, has an invalid type.
func invalidParams(sig *types.Signature) bool {
	params := sig.Params()
	for i := range params.Len() {
		typ := params.At(i).Type()
		if slice, ok := typ.(*types.Slice); ok {
			typ = slice.Elem()
		}

		if typ == types.Typ[types.Invalid] {
			return true
		}
	}

	return false
}

// typeOf resolves a type expression, falling back to a package-level type
// name when the checker recorded nothing for expr.
func (p *pkg) typeOf(expr ast.Expr) types.Type {
	if tv, ok := p.info.Types[expr]; ok && tv.IsType() {
		return tv.Type
	}

	if ident, ok := expr.(*ast.Ident); ok {
		if obj, ok := p.types.Scope().Lookup(ident.Name).(*types.TypeName); ok {
			return obj.Type()
		}
	}

	return nil
}

// isArraymapFunc reports whether fun refers to the function name declared in
// the arraymap package. When the arraymap import could not be type-checked
// the selector's package qualifier is matched instead.
func (p *pkg) isArraymapFunc(fun ast.Expr, name string) bool {
	var ident *ast.Ident

	switch fun := unindex(fun).(type) {
	case *ast.Ident:
		ident = fun
	case *ast.SelectorExpr:
		ident = fun.Sel
		if ident.Name != name {
			return false
		}

		if x, ok := fun.X.(*ast.Ident); ok {
			if pkgName, ok := p.info.Uses[x].(*types.PkgName); ok && pkgName.Imported().Path() == ModulePath {
				return true
			}
		}
	default:
		return false
	}

	fn, ok := p.info.Uses[ident].(*types.Func)

	return ok && fn.Name() == name && fn.Pkg() != nil && fn.Pkg().Path() == ModulePath
}

// typeArgs returns the explicit type arguments of a function expression.
func typeArgs(fun ast.Expr) []ast.Expr {
	switch f := ast.Unparen(fun).(type) {
	case *ast.IndexExpr:
		return []ast.Expr{f.Index}
	case *ast.IndexListExpr:
		return f.Indices
	}

	return nil
}

// unindex strips explicit type arguments from a function expression.
func unindex(fun ast.Expr) ast.Expr {
	switch f := ast.Unparen(fun).(type) {
	case *ast.IndexExpr:
		return f.X
	case *ast.IndexListExpr:
		return f.X
	}

	return ast.Unparen(fun)
}
