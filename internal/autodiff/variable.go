// Package autodiff implements reverse-mode automatic differentiation over
// dynamically built computation graphs.
//
// The package does not own any concrete node type. Anything that implements
// Variable (scalars, tensors) can be ordered with TopologicalSort and
// differentiated with Backpropagate.
//
// Architecture:
//   - Variable: capability contract every graph node satisfies
//   - Context: per-operation record of values saved in the forward pass
//   - TopologicalSort: reverse post-order over parent edges, constants pruned
//   - Backpropagate: seeds the root and pushes derivatives to the leaves
//
// Usage:
//
//	// y is the output node of some graph built from Variables
//	if err := autodiff.Backpropagate(y, 1.0); err != nil {
//		return err
//	}
//	// leaves now hold dy/dleaf via AccumulateDerivative
package autodiff

import "sync/atomic"

// Variable is a node of the computation graph.
//
// Edges point from a node to its parents (the values it was computed from).
// The graph must be acyclic. D is the derivative type (float64 for scalars,
// a tensor type for arrays).
type Variable[D any] interface {
	// UniqueID is unique for the lifetime of the process and never reused.
	UniqueID() uint64

	// IsLeaf is true for original inputs, nodes with no antecedent operation.
	IsLeaf() bool

	// IsConstant is true for nodes that carry no gradient information.
	// Constants are never visited by TopologicalSort.
	IsConstant() bool

	// Parents returns the nodes this node was computed from, in order.
	Parents() []Variable[D]

	// AccumulateDerivative stores an incoming derivative on the node.
	AccumulateDerivative(d D)

	// ChainRule maps the derivative of the output with respect to this node
	// into contributions for each parent.
	ChainRule(d D) []Contribution[D]
}

// Contribution is a derivative pushed from a node to one of its parents.
type Contribution[D any] struct {
	Variable   Variable[D]
	Derivative D
}

// IDAllocator hands out monotonically increasing ids, starting at 1.
// The zero value is ready to use and safe for concurrent use.
type IDAllocator struct {
	last atomic.Uint64
}

// Next returns a fresh id.
func (a *IDAllocator) Next() uint64 {
	return a.last.Add(1)
}

var defaultIDs IDAllocator

// NextID returns a fresh id from the process-wide allocator.
func NextID() uint64 {
	return defaultIDs.Next()
}
