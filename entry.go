package arraymap

// Entry pairs a key with the value to store for it.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// KV returns an Entry for key and value.
func KV[K any, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{Key: key, Value: value}
}

// New builds a Map from entries listed in any order. Every variant of K must
// appear exactly once: a repeated key fails with ErrDuplicateKey, an absent
// one with ErrMissingKey, both wrapped in a *KeyError. New also runs Check,
// so a malformed key type fails with ErrNonDenseIndexing or ErrSlotCount.
//
// The result is the same as calling Set for each entry on a zero Map. On
// error the returned Map is the zero value and must not be used.
func New[K Key[K], V any, S Slots[V]](entries ...Entry[K, V]) (Map[K, V, S], error) {
	if err := Check[K, V, S](); err != nil {
		return Map[K, V, S]{}, err
	}

	var (
		m    Map[K, V, S]
		seen bitset
		n    = len(m.slots)
	)

	for _, e := range entries {
		i := e.Key.Index()
		if i < 0 || i >= n || e.Key.FromIndex(i) != e.Key {
			return Map[K, V, S]{}, &KeyError{Err: ErrInvalidKey, Key: e.Key, Index: i}
		}

		if seen.has(i) {
			return Map[K, V, S]{}, &KeyError{Err: ErrDuplicateKey, Key: e.Key, Index: i}
		}

		seen = seen.with(i)
		m.slots[i] = e.Value
	}

	if missing := fullSet(n) &^ seen; missing != 0 {
		var zero K

		err := &KeyError{
			Err:     ErrMissingKey,
			Key:     zero.FromIndex(missing.first()),
			Index:   missing.first(),
			Missing: make([]any, 0, missing.len()),
		}

		for ; missing != 0; missing = missing.removeFirst() {
			err.Missing = append(err.Missing, zero.FromIndex(missing.first()))
		}

		return Map[K, V, S]{}, err
	}

	return m, nil
}

// MustNew is like New but panics if the entries do not form a complete Map.
// It is meant for package-level tables, so that a bad literal stops the
// program during initialization.
func MustNew[K Key[K], V any, S Slots[V]](entries ...Entry[K, V]) Map[K, V, S] {
	m, err := New[K, V, S](entries...)
	if err != nil {
		panic(err)
	}

	return m
}
