package arraymap

import "fmt"

// MaxVariants is the largest number of variants a key type can declare.
const MaxVariants = 64

// Key is implemented by enumeration types whose variants address Map slots.
//
// Index maps a variant to its slot and must be a pure function. FromIndex
// is its inverse for i in [0, VariantCount()); the result for any other i
// is unspecified. FromIndex and VariantCount ignore their receiver, so they
// can be called on the zero value.
//
// Implementations are normally produced by arraymapgen.
type Key[K any] interface {
	comparable

	Index() int
	FromIndex(i int) K
	VariantCount() int
}

// Verify checks that K's variants map one-to-one onto [0, N), where N is
// K's variant count. Because every index must round-trip through FromIndex
// and Index, no two indices can share a variant.
func Verify[K Key[K]]() error {
	var zero K

	n := zero.VariantCount()
	if n < 1 || n > MaxVariants {
		return &IndexError{
			Err:    ErrNonDenseIndexing,
			Index:  n,
			Detail: fmt.Sprintf("%T declares %d variants, want 1 to %d", zero, n, MaxVariants),
		}
	}

	for i := range n {
		if got := zero.FromIndex(i).Index(); got != i {
			return &IndexError{
				Err:    ErrNonDenseIndexing,
				Index:  i,
				Detail: fmt.Sprintf("%T: FromIndex(%d).Index() = %d", zero, i, got),
			}
		}
	}

	return nil
}

// Valid reports whether key is one of K's declared variants.
func Valid[K Key[K]](key K) bool {
	i := key.Index()

	return i >= 0 && i < key.VariantCount() && key.FromIndex(i) == key
}

// Check verifies K with Verify and that S has exactly one slot per variant.
func Check[K Key[K], V any, S Slots[V]]() error {
	if err := Verify[K](); err != nil {
		return err
	}

	var (
		zero  K
		slots S
	)

	if n := zero.VariantCount(); n != len(slots) {
		return &IndexError{
			Err:    ErrSlotCount,
			Index:  len(slots),
			Detail: fmt.Sprintf("%T has %d variants but the slot array holds %d", zero, n, len(slots)),
		}
	}

	return nil
}
