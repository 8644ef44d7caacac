package domain

// NodeID identifies a single node by its index in [0, N).
type NodeID int

// Adjacency is the dependency relation of a network: one ordered list of
// source nodes per node. The list order is fixed for the lifetime of the
// network and defines the bit positions of truth keys (first dependency is
// the most significant bit).
//
// After Cleanup every list is non-empty: a node with no in-edges is
// rewritten to depend on itself, so rule arity is always at least 1.
type Adjacency [][]NodeID

// NumNodes returns the number of nodes in the relation.
func (a Adjacency) NumNodes() int {
	return len(a)
}

// EdgeCount returns the total number of dependency entries, i.e. the sum of
// all dependency-list sizes. Cleanup-added self-loops are included.
func (a Adjacency) EdgeCount() int {
	total := 0
	for _, deps := range a {
		total += len(deps)
	}
	return total
}

// MaxInDegree returns the size of the largest dependency list, or 0 for an
// empty relation.
func (a Adjacency) MaxInDegree() int {
	max := 0
	for _, deps := range a {
		if len(deps) > max {
			max = len(deps)
		}
	}
	return max
}

// Clone returns a deep copy of the relation.
func (a Adjacency) Clone() Adjacency {
	out := make(Adjacency, len(a))
	for i, deps := range a {
		out[i] = append([]NodeID(nil), deps...)
	}
	return out
}

// Stats is the read-only diagnostic view of a relation.
type Stats struct {
	TotalEdges  int `json:"total_edges"`
	MaxInDegree int `json:"max_in_degree"`
}

// Stats returns the total dependency count and the maximum in-degree.
func (a Adjacency) Stats() Stats {
	return Stats{TotalEdges: a.EdgeCount(), MaxInDegree: a.MaxInDegree()}
}

// Cleanup rewrites every empty dependency list to contain the node itself,
// guaranteeing arity >= 1 for every rule built on top of the relation. It
// mutates the receiver and returns it for chaining.
func (a Adjacency) Cleanup() Adjacency {
	for i, deps := range a {
		if len(deps) == 0 {
			a[i] = []NodeID{NodeID(i)}
		}
	}
	return a
}
