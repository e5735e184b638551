package fixture

//go:generate go run github.com/homier/arraymap/cmd/arraymapgen --type Opcode

// Opcode has explicit, non-contiguous values.
type Opcode int16

const (
	OpNop   Opcode = -1
	OpLoad  Opcode = 4
	OpStore Opcode = 9
)
