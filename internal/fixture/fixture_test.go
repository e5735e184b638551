package fixture_test

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homier/arraymap"
	"github.com/homier/arraymap/internal/fixture"
)

// Built during package initialization; a bad literal would panic before any
// test runs.
var opcodeNames = fixture.MustOpcodeMap(
	arraymap.KV(fixture.OpStore, "store"),
	arraymap.KV(fixture.OpNop, "nop"),
	arraymap.KV(fixture.OpLoad, "load"),
)

func TestGeneratedKeys_Verify(t *testing.T) {
	require.NoError(t, arraymap.Verify[fixture.Letter]())
	require.NoError(t, arraymap.Verify[fixture.Opcode]())
	require.NoError(t, arraymap.Check[fixture.Letter, int, [fixture.LetterCount]int]())
}

func TestGeneratedKeys_Index(t *testing.T) {
	tests := []struct {
		name string
		key  fixture.Opcode
		want int
	}{
		{"first", fixture.OpNop, 0},
		{"second", fixture.OpLoad, 1},
		{"third", fixture.OpStore, 2},
		{"undeclared", fixture.Opcode(5), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.Index())
			assert.Equal(t, tt.want >= 0, arraymap.Valid(tt.key))
		})
	}
}

func TestLetterMap_Literal(t *testing.T) {
	m, err := fixture.NewLetterMap(
		arraymap.KV(fixture.C, 3),
		arraymap.KV(fixture.A, 1),
		arraymap.KV(fixture.B, 2),
	)
	require.NoError(t, err)

	assert.Equal(t, 1, m.Get(fixture.A))
	assert.Equal(t, 2, m.Get(fixture.B))
	assert.Equal(t, 3, m.Get(fixture.C))
	assert.Equal(t, [fixture.LetterCount]int{1, 2, 3}, m.Slots())

	m.Set(fixture.B, 20)
	assert.Equal(t, 20, m.Get(fixture.B))
}

func TestLetterMap_LiteralErrors(t *testing.T) {
	_, err := fixture.NewLetterMap(arraymap.KV(fixture.A, 1), arraymap.KV(fixture.C, 3))
	require.ErrorIs(t, err, arraymap.ErrMissingKey)
	assert.EqualError(t, err, "arraymap: missing key: B (index 1)")

	_, err = fixture.NewLetterMap(
		arraymap.KV(fixture.A, 1),
		arraymap.KV(fixture.B, 2),
		arraymap.KV(fixture.A, 3),
		arraymap.KV(fixture.C, 4),
	)
	require.ErrorIs(t, err, arraymap.ErrDuplicateKey)
	assert.EqualError(t, err, "arraymap: duplicate key: A (index 0)")

	assert.Panics(t, func() {
		fixture.MustLetterMap(arraymap.KV(fixture.A, 1))
	})
}

func TestOpcodeMap_Order(t *testing.T) {
	var keys []fixture.Opcode
	var values []string

	for k, v := range opcodeNames.All() {
		keys = append(keys, k)
		values = append(values, v)
	}

	assert.Equal(t, []fixture.Opcode{fixture.OpNop, fixture.OpLoad, fixture.OpStore}, keys)
	assert.Equal(t, []string{"nop", "load", "store"}, values)
	assert.Equal(t, values, slices.Collect(opcodeNames.Values()))
}

func TestLetterMap_ZeroValue(t *testing.T) {
	var m fixture.LetterMap[string]

	assert.Equal(t, fixture.LetterCount, m.Len())
	for k, v := range m.All() {
		assert.Empty(t, v, "slot %v", k)
	}
}

func TestLetter_Text(t *testing.T) {
	tests := []struct {
		key  fixture.Letter
		want string
	}{
		{fixture.A, "A"},
		{fixture.B, "B"},
		{fixture.C, "C"},
		{fixture.Letter(7), "Letter(7)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.String())
		})
	}

	text, err := fixture.B.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "B", string(text))

	_, err = fixture.Letter(7).MarshalText()
	assert.EqualError(t, err, "invalid Letter 7")

	var l fixture.Letter
	require.NoError(t, l.UnmarshalText([]byte("C")))
	assert.Equal(t, fixture.C, l)
	assert.EqualError(t, l.UnmarshalText([]byte("D")), `invalid Letter "D"`)
}

func TestLetterMap_JSON(t *testing.T) {
	m := fixture.MustLetterMap(
		arraymap.KV(fixture.A, true),
		arraymap.KV(fixture.B, false),
		arraymap.KV(fixture.C, true),
	)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"A":true,"B":false,"C":true}`, string(data))

	var decoded fixture.LetterMap[bool]
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, m, decoded)

	// Opcode has no text form, so its maps encode as arrays.
	data, err = json.Marshal(opcodeNames)
	require.NoError(t, err)
	assert.Equal(t, `["nop","load","store"]`, string(data))
}
