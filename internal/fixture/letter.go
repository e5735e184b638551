package fixture

//go:generate go run github.com/homier/arraymap/cmd/arraymapgen --type Letter --text

// Letter is a dense enumeration: every value equals its position.
type Letter uint8

const (
	A Letter = iota
	B
	C
)
