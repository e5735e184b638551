package arraymap

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingKey is returned when a literal omits one or more variants.
	ErrMissingKey = errors.New("arraymap: missing key")

	// ErrDuplicateKey is returned when a literal lists a variant twice.
	ErrDuplicateKey = errors.New("arraymap: duplicate key")

	// ErrInvalidKey is returned when a literal contains a value that is not
	// one of the key type's declared variants.
	ErrInvalidKey = errors.New("arraymap: invalid key")

	// ErrNonDenseIndexing is returned when a key type's variants do not map
	// one-to-one onto [0, N).
	ErrNonDenseIndexing = errors.New("arraymap: non-dense indexing")

	// ErrSlotCount is returned when the number of values does not match the
	// number of slots.
	ErrSlotCount = errors.New("arraymap: slot count mismatch")
)

// KeyError reports a construction failure caused by a specific key.
type KeyError struct {
	Err   error
	Key   any
	Index int

	// Missing lists every absent variant in index order when Err is
	// ErrMissingKey. Key and Index then describe the first of them.
	Missing []any
}

func (e *KeyError) Error() string {
	if len(e.Missing) > 1 {
		return fmt.Sprintf("%v: %v (index %d) and %d more", e.Err, e.Key, e.Index, len(e.Missing)-1)
	}

	return fmt.Sprintf("%v: %v (index %d)", e.Err, e.Key, e.Index)
}

func (e *KeyError) Unwrap() error {
	return e.Err
}

// IndexError reports a key type or slot array whose indexing is malformed.
type IndexError struct {
	Err    error
	Index  int
	Detail string
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Detail)
}

func (e *IndexError) Unwrap() error {
	return e.Err
}
