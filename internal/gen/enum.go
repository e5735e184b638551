package gen

import (
	"errors"
	"fmt"
	"go/token"

	"github.com/homier/arraymap"
)

var (
	// ErrInvalidEnum is returned for enumerations that cannot key a Map.
	ErrInvalidEnum = errors.New("gen: invalid enumeration")

	// ErrNonDenseIndexing is returned when variants cannot be given
	// distinct slots. It is the same error arraymap.Verify reports.
	ErrNonDenseIndexing = arraymap.ErrNonDenseIndexing
)

// Variant is one named constant of an enumeration.
type Variant struct {
	Name  string
	Value int64
}

// Enum describes an enumeration to generate a key contract for.
type Enum struct {
	Package  string
	Name     string
	Repr     string
	Doc      string
	Variants []Variant

	// Text adds String, MarshalText and UnmarshalText methods.
	Text bool

	// Declare emits the type and constant declarations as well. It is set
	// for enumerations loaded from a description file.
	Declare bool
}

type reprInfo struct {
	bits   uint
	signed bool
}

var reprs = map[string]reprInfo{
	"int":     {64, true},
	"int8":    {8, true},
	"int16":   {16, true},
	"int32":   {32, true},
	"int64":   {64, true},
	"rune":    {32, true},
	"uint":    {64, false},
	"uint8":   {8, false},
	"uint16":  {16, false},
	"uint32":  {32, false},
	"uint64":  {64, false},
	"uintptr": {64, false},
	"byte":    {8, false},
}

func (r reprInfo) fits(v int64) bool {
	if r.signed {
		if r.bits >= 64 {
			return true
		}

		limit := int64(1) << (r.bits - 1)
		return v >= -limit && v < limit
	}

	if v < 0 {
		return false
	}

	return r.bits >= 63 || v < int64(1)<<r.bits
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidEnum}, args...)...)
}

// Validate reports whether e can key a Map: names are identifiers, the
// representation is a supported integer type, there are 1 to
// arraymap.MaxVariants variants, and every value fits the representation and
// is distinct.
func (e *Enum) Validate() error {
	if !token.IsIdentifier(e.Package) {
		return invalidf("package name %q is not an identifier", e.Package)
	}

	if !token.IsIdentifier(e.Name) || e.Name == "_" {
		return invalidf("type name %q is not an identifier", e.Name)
	}

	repr, ok := reprs[e.Repr]
	if !ok {
		return invalidf("%s: unsupported representation %q", e.Name, e.Repr)
	}

	switch n := len(e.Variants); {
	case n == 0:
		return invalidf("%s declares no variants", e.Name)
	case n > arraymap.MaxVariants:
		return invalidf("%s declares %d variants, at most %d are supported", e.Name, n, arraymap.MaxVariants)
	}

	var (
		names  = make(map[string]struct{}, len(e.Variants))
		values = make(map[int64]string, len(e.Variants))
	)

	for _, v := range e.Variants {
		if !token.IsIdentifier(v.Name) || v.Name == "_" {
			return invalidf("%s: variant name %q is not an identifier", e.Name, v.Name)
		}

		if _, dup := names[v.Name]; dup {
			return invalidf("%s: duplicate variant name %s", e.Name, v.Name)
		}
		names[v.Name] = struct{}{}

		if !repr.fits(v.Value) {
			return invalidf("%s: value %d of %s overflows %s", e.Name, v.Value, v.Name, e.Repr)
		}

		if other, dup := values[v.Value]; dup {
			return fmt.Errorf("%w: %s: %s and %s share value %d", ErrNonDenseIndexing, e.Name, other, v.Name, v.Value)
		}
		values[v.Value] = v.Name
	}

	return nil
}

// Dense reports whether the value of every variant equals its position, so
// that slot indices are the values themselves.
func (e *Enum) Dense() bool {
	for i, v := range e.Variants {
		if v.Value != int64(i) {
			return false
		}
	}

	return true
}

// Signed reports whether e's representation is a signed integer type.
func (e *Enum) Signed() bool {
	return reprs[e.Repr].signed
}
