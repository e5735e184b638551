package arraymap

import (
	"math/bits"
)

// bitset represents a set of slot indices.
//
// Bit i is set when index i is part of the set. MaxVariants is 64, so every
// index of every key type fits in a single word.
type bitset uint64

// fullSet returns the set {0, ..., n-1}.
func fullSet(n int) bitset {
	if n >= 64 {
		return ^bitset(0)
	}

	return bitset(1)<<uint(n) - 1
}

func (b bitset) has(i int) bool {
	return b&(1<<uint(i)) != 0
}

func (b bitset) with(i int) bitset {
	return b | 1<<uint(i)
}

// first returns the smallest index in the set.
//
// Returns 64 if the set is empty.
func (b bitset) first() int {
	return bits.TrailingZeros64(uint64(b))
}

// removeFirst removes the smallest index from the set.
func (b bitset) removeFirst() bitset {
	return b & (b - 1)
}

func (b bitset) len() int {
	return bits.OnesCount64(uint64(b))
}
