package arraymap

import "iter"

// Map is an associative array holding exactly one V for every variant of K.
// Values live inline in S, an array [N]V where N is K's variant count, and a
// key addresses its slot through Index alone: there is no hashing, no probing
// and no "not found" case.
//
// The zero value is ready to use and holds the zero V in every slot. Map is a
// plain value: assignment copies all slots and two maps compare equal with ==
// when V is comparable.
//
// A Map is safe for concurrent readers. Writers must not overlap with any
// other access.
type Map[K Key[K], V any, S Slots[V]] struct {
	slots S
}

// FromSlots returns a Map whose slot i holds slots[i].
func FromSlots[K Key[K], V any, S Slots[V]](slots S) Map[K, V, S] {
	return Map[K, V, S]{slots: slots}
}

// FromFunc returns a Map holding fn(k) for every key k. fn is called once per
// key in ascending index order.
func FromFunc[K Key[K], V any, S Slots[V]](fn func(K) V) Map[K, V, S] {
	var (
		m    Map[K, V, S]
		zero K
	)

	for i := 0; i < len(m.slots); i++ {
		m.slots[i] = fn(zero.FromIndex(i))
	}

	return m
}

// Len returns the number of slots, which is K's variant count.
func (m *Map[K, V, S]) Len() int {
	return len(m.slots)
}

// Get returns the value stored for key.
func (m *Map[K, V, S]) Get(key K) V {
	return m.slots[key.Index()]
}

// Ptr returns a pointer to the slot of key. The pointer stays valid for as
// long as m does.
func (m *Map[K, V, S]) Ptr(key K) *V {
	return &m.slots[key.Index()]
}

// Set replaces the value stored for key and returns the previous one.
func (m *Map[K, V, S]) Set(key K, value V) V {
	slot := &m.slots[key.Index()]
	prev := *slot
	*slot = value

	return prev
}

// Update replaces the value stored for key with fn applied to it.
func (m *Map[K, V, S]) Update(key K, fn func(V) V) {
	slot := &m.slots[key.Index()]
	*slot = fn(*slot)
}

// Fill stores value in every slot.
func (m *Map[K, V, S]) Fill(value V) {
	for i := 0; i < len(m.slots); i++ {
		m.slots[i] = value
	}
}

// Slots returns a copy of the backing array.
func (m *Map[K, V, S]) Slots() S {
	return m.slots
}

// All returns an iterator over every key and its value in ascending index
// order.
func (m *Map[K, V, S]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var zero K

		for i := 0; i < len(m.slots); i++ {
			if !yield(zero.FromIndex(i), m.slots[i]) {
				return
			}
		}
	}
}

// Keys returns an iterator over every key in ascending index order.
func (m *Map[K, V, S]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		var zero K

		for i := 0; i < len(m.slots); i++ {
			if !yield(zero.FromIndex(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over every value in ascending index order.
func (m *Map[K, V, S]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := 0; i < len(m.slots); i++ {
			if !yield(m.slots[i]) {
				return
			}
		}
	}
}

// Pointers returns an iterator over every key and a pointer to its slot in
// ascending index order.
func (m *Map[K, V, S]) Pointers() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		var zero K

		for i := 0; i < len(m.slots); i++ {
			if !yield(zero.FromIndex(i), &m.slots[i]) {
				return
			}
		}
	}
}
