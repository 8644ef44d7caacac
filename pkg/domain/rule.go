package domain

import "fmt"

// TruthKey is the canonical integer form of one assignment of boolean
// values to an ordered dependency list. The first dependency occupies the
// most significant bit, so keys for arity k enumerate 0..2^k-1 in the same
// lexicographic order EnumerateInputs produces.
type TruthKey uint64

// MaxArity bounds the dependency-list size a rule can cover. A rule table
// holds 2^k output bits; past this point the table no longer fits in
// memory, so construction refuses rather than thrash.
const MaxArity = 30

// EncodeKey maps an ordered bit sequence to its truth key. The mapping is
// total and injective for sequences of equal length: no two distinct
// same-length sequences collide.
func EncodeKey(bits []Bit) TruthKey {
	var key TruthKey
	for _, b := range bits {
		key = key<<1 | TruthKey(b)
	}
	return key
}

// EnumerateInputs produces all 2^k bit sequences of length k in
// lexicographic order. For k=2 the result is (0,0), (0,1), (1,0), (1,1).
// It is used only at rule-construction time and in tests.
func EnumerateInputs(k int) [][]Bit {
	if k < 0 {
		return nil
	}
	rows := make([][]Bit, 0, 1<<k)
	for key := 0; key < 1<<k; key++ {
		row := make([]Bit, k)
		for pos := 0; pos < k; pos++ {
			row[pos] = Bit(key >> (k - 1 - pos) & 1)
		}
		rows = append(rows, row)
	}
	return rows
}

// Rule is the total transition function of one node: an output bit for
// every possible truth key of the node's arity. Built once at network
// construction and immutable thereafter.
type Rule struct {
	arity   int
	outputs []Bit
}

// NewRule assembles a rule from an explicit output table. The table must
// cover exactly all 2^arity keys, in key order.
func NewRule(arity int, outputs []Bit) (Rule, error) {
	if arity < 1 || arity > MaxArity {
		return Rule{}, fmt.Errorf("%w: rule arity %d outside [1, %d]", ErrInvalidParameter, arity, MaxArity)
	}
	if len(outputs) != 1<<arity {
		return Rule{}, fmt.Errorf("%w: rule table has %d entries, arity %d requires %d",
			ErrInvalidParameter, len(outputs), arity, 1<<arity)
	}
	return Rule{arity: arity, outputs: append([]Bit(nil), outputs...)}, nil
}

// Arity returns the dependency-list size the rule covers.
func (r Rule) Arity() int {
	return r.arity
}

// Size returns the number of entries in the rule table (2^arity).
func (r Rule) Size() int {
	return len(r.outputs)
}

// Output looks up the transition result for a truth key. A key outside the
// table is an internal consistency violation: it cannot occur when the rule
// was built against the same dependency list the key was encoded from.
func (r Rule) Output(key TruthKey) (Bit, error) {
	if int(key) >= len(r.outputs) {
		return Off, fmt.Errorf("%w: truth key %d outside rule table of size %d", ErrInternalConsistency, key, len(r.outputs))
	}
	return r.outputs[key], nil
}
