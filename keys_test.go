package arraymap

import (
	"fmt"
)

// letter is a dense key type: discriminant i is index i.
type letter uint8

const (
	letterA letter = iota
	letterB
	letterC
)

func (l letter) Index() int { return int(l) }
func (letter) FromIndex(i int) letter { return letter(i) }
func (letter) VariantCount() int { return 3 }
func (l letter) String() string { return fmt.Sprintf("letter(%d)", uint8(l)) }
func letterKeys() []letter { return []letter{letterA, letterB, letterC} }
func letterEntries() []Entry[letter, rune] {
	return []Entry[letter, rune]{KV(letterA, 'a'), KV(letterC, 'c'), KV(letterB, 'b')}
}

type letterMap[V any] = Map[letter, V, [3]V]

// opcode has sparse, partly negative discriminants mapped through a switch.
type opcode int16

const (
	opNop   opcode = -1
	opLoad  opcode = 4
	opStore opcode = 9
)

var opcodeVariants = [...]opcode{opNop, opLoad, opStore}

func (o opcode) Index() int {
	switch o {
	case opNop:
		return 0
	case opLoad:
		return 1
	case opStore:
		return 2
	}

	return -1
}

func (opcode) FromIndex(i int) opcode { return opcodeVariants[i] }
func (opcode) VariantCount() int { return len(opcodeVariants) }

// color implements encoding.TextMarshaler, so tables keyed by it encode as
// JSON objects.
type color uint8

const (
	red color = iota
	green
	blue
)

var colorNames = [...]string{"red", "green", "blue"}

func (c color) Index() int { return int(c) }
func (color) FromIndex(i int) color { return color(i) }
func (color) VariantCount() int { return len(colorNames) }
func (c color) String() string { return colorNames[c] }
func (c color) MarshalText() ([]byte, error) {
	if int(c) >= len(colorNames) {
		return nil, fmt.Errorf("invalid color %d", uint8(c))
	}

	return []byte(colorNames[c]), nil
}

func (c *color) UnmarshalText(text []byte) error {
	for i, name := range colorNames {
		if name == string(text) {
			*c = color(i)
			return nil
		}
	}

	return fmt.Errorf("invalid color %q", text)
}

// wide uses every slot a Map supports.
type wide uint8

func (w wide) Index() int { return int(w) }
func (wide) FromIndex(i int) wide { return wide(i) }
func (wide) VariantCount() int { return MaxVariants }

// skewed maps two indices onto the same variant.
type skewed uint8

func (s skewed) Index() int { return int(s) }
func (skewed) FromIndex(i int) skewed {
	if i == 2 {
		return 1
	}

	return skewed(i)
}
func (skewed) VariantCount() int { return 3 }

// oversized declares more variants than a Map can hold.
type oversized uint8

func (o oversized) Index() int { return int(o) }
func (oversized) FromIndex(i int) oversized { return oversized(i) }
func (oversized) VariantCount() int { return MaxVariants + 1 }

// empty declares no variants at all.
type empty uint8

func (e empty) Index() int { return int(e) }
func (empty) FromIndex(i int) empty { return empty(i) }
func (empty) VariantCount() int { return 0 }
