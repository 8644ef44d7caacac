package domain

// Bit is the value of a single node: Off (0) or On (1).
type Bit uint8

const (
	Off Bit = 0
	On  Bit = 1
)

// Flip returns the opposite bit.
func (b Bit) Flip() Bit {
	if b == Off {
		return On
	}
	return Off
}

// StateVector holds the current value of every node, indexed by NodeID.
// A vector is always replaced wholesale — never edited field by field —
// so that every node of a step reads the same frozen prior state.
type StateVector []Bit

// Clone returns an independent copy of the vector.
func (s StateVector) Clone() StateVector {
	return append(StateVector(nil), s...)
}

// ActiveCount returns the number of nodes currently on.
func (s StateVector) ActiveCount() int {
	n := 0
	for _, b := range s {
		if b == On {
			n++
		}
	}
	return n
}

// Equal reports whether two vectors have identical length and contents.
func (s StateVector) Equal(other StateVector) bool {
	if len(s) != len(other) {
		return false
	}
	for i, b := range s {
		if other[i] != b {
			return false
		}
	}
	return true
}
