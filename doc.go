// Package arraymap provides Map, an associative array keyed by the variants of
// a small integer enumeration and backed by a single inline array.
//
// A key type declares its variants as constants and implements Key, usually
// through arraymapgen:
//
//	type Letter uint8
//
//	const (
//		A Letter = iota
//		B
//		C
//	)
//
//	//go:generate go run github.com/homier/arraymap/cmd/arraymapgen --type Letter
//
// The generated file defines LetterCount, the LetterMap[V] alias and the
// NewLetterMap / MustLetterMap constructors:
//
//	var letters = MustLetterMap(
//		arraymap.KV(A, 'a'),
//		arraymap.KV(C, 'c'),
//		arraymap.KV(B, 'b'),
//	)
//
//	letters.Get(B) // 'b'
//
// Every key always has a slot, so lookups never fail. Mistakes are caught
// at construction instead: literals missing a variant or listing one twice
// are rejected by New, at the latest during package initialization when the
// table is a package-level MustNew variable, and before compilation by
// "arraymapgen check". The generated file also contains a compile-time
// assertion that breaks the build if the variants' values change without
// regenerating.
package arraymap
