// Package gen derives implementations of arraymap.Key.
//
// An enumeration is described by an Enum: its package, type name, integer
// representation and variants in declaration order. Enums come from two
// places:
//
//   - LoadSource type-checks a Go package and collects the constants of a
//     named integer type, the way stringer does.
//   - LoadDescription reads a YAML or JSONC file that lists the variants.
//     The generated file then also declares the type and its constants.
//
// Render turns a validated Enum into Go source. The variant at position i
// gets slot index i. When every variant's value already equals its position
// the conversions are plain integer conversions; otherwise Index is a switch
// and FromIndex a table lookup. Two variants sharing a value cannot be given
// distinct slots and are rejected with ErrNonDenseIndexing.
//
// CheckLiterals reports constructor calls whose arraymap.KV entries leave out
// a variant or repeat one, so that incomplete literals fail the build rather
// than the program.
package gen
