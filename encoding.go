package arraymap

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"

	"github.com/homier/arraymap/internal/codec"
)

// MarshalJSON encodes m as a JSON object keyed by variant name, members in
// index order, when K implements encoding.TextMarshaler. Otherwise m encodes
// as an array of its values in index order.
func (m Map[K, V, S]) MarshalJSON() ([]byte, error) {
	var zero K
	if _, ok := any(zero).(encoding.TextMarshaler); !ok {
		return json.Marshal(slotsView[V](&m.slots))
	}

	var buf bytes.Buffer

	buf.WriteByte('{')
	for i := 0; i < len(m.slots); i++ {
		if i > 0 {
			buf.WriteByte(',')
		}

		name, err := any(zero.FromIndex(i)).(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return nil, err
		}

		key, err := json.Marshal(string(name))
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(m.slots[i])
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON decodes either form written by MarshalJSON. The object form
// requires *K to implement encoding.TextUnmarshaler and is validated like a
// literal passed to New. The array form must hold exactly one value per slot.
func (m *Map[K, V, S]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '{' {
		return m.unmarshalJSONObject(data)
	}

	var values []V
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}

	return m.assign(values)
}

func (m *Map[K, V, S]) unmarshalJSONObject(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	// Opening brace.
	if _, err := dec.Token(); err != nil {
		return err
	}

	entries := make([]Entry[K, V], 0, len(m.slots))
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("arraymap: unexpected JSON token %v", tok)
		}

		var key K
		unmarshaler, ok := any(&key).(encoding.TextUnmarshaler)
		if !ok {
			return fmt.Errorf("arraymap: %T does not implement encoding.TextUnmarshaler", key)
		}

		if err := unmarshaler.UnmarshalText([]byte(name)); err != nil {
			return err
		}

		var value V
		if err := dec.Decode(&value); err != nil {
			return err
		}

		entries = append(entries, KV(key, value))
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}

	built, err := New[K, V, S](entries...)
	if err != nil {
		return err
	}

	*m = built

	return nil
}

// MarshalCBOR encodes m as a CBOR array of its values in index order.
func (m Map[K, V, S]) MarshalCBOR() ([]byte, error) {
	return codec.Marshal(slotsView[V](&m.slots))
}

// UnmarshalCBOR decodes a CBOR array holding exactly one value per slot.
func (m *Map[K, V, S]) UnmarshalCBOR(data []byte) error {
	var values []V
	if err := codec.Unmarshal(data, &values); err != nil {
		return err
	}

	return m.assign(values)
}

func (m *Map[K, V, S]) assign(values []V) error {
	if len(values) != len(m.slots) {
		return &IndexError{
			Err:    ErrSlotCount,
			Index:  len(values),
			Detail: fmt.Sprintf("got %d values, want %d", len(values), len(m.slots)),
		}
	}

	copy(slotsView[V](&m.slots), values)

	return nil
}
