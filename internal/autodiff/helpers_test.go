package autodiff_test

import (
	"github.com/born-ml/minigrad/internal/autodiff"
)

// node is a hand-wired float64 Variable for exercising the core without a
// concrete operator library.
type node struct {
	id       uint64
	name     string
	constant bool
	parents  []*node
	local    []float64 // local derivative per parent: contribution = d * local[i]
	chain    func(d float64) []autodiff.Contribution[float64]

	accumulated []float64 // every AccumulateDerivative argument, in order
	chainCalls  []float64 // every ChainRule argument, in order
}

var _ autodiff.Variable[float64] = (*node)(nil)

// builder hands out ids from its own allocator so tests stay independent.
type builder struct {
	ids autodiff.IDAllocator
}

// leaf creates a non-constant node without parents.
func (b *builder) leaf(name string) *node {
	return &node{id: b.ids.Next(), name: name}
}

// constant creates a node excluded from gradient tracking.
func (b *builder) constant(name string, parents ...*node) *node {
	n := b.op(name, parents...)
	n.constant = true
	return n
}

// op creates a node computed from parents with local derivatives of 1.
func (b *builder) op(name string, parents ...*node) *node {
	local := make([]float64, len(parents))
	for i := range local {
		local[i] = 1
	}
	return &node{id: b.ids.Next(), name: name, parents: parents, local: local}
}

// withLocal sets the local derivative of each parent.
func (n *node) withLocal(local ...float64) *node {
	n.local = local
	return n
}

func (n *node) UniqueID() uint64 { return n.id }

func (n *node) IsLeaf() bool { return !n.constant && len(n.parents) == 0 }

func (n *node) IsConstant() bool { return n.constant }

func (n *node) Parents() []autodiff.Variable[float64] {
	out := make([]autodiff.Variable[float64], len(n.parents))
	for i, p := range n.parents {
		out[i] = p
	}
	return out
}

func (n *node) AccumulateDerivative(d float64) {
	n.accumulated = append(n.accumulated, d)
}

func (n *node) ChainRule(d float64) []autodiff.Contribution[float64] {
	n.chainCalls = append(n.chainCalls, d)
	if n.chain != nil {
		return n.chain(d)
	}
	out := make([]autodiff.Contribution[float64], len(n.parents))
	for i, p := range n.parents {
		out[i] = autodiff.Contribution[float64]{Variable: p, Derivative: d * n.local[i]}
	}
	return out
}

// names lists the names of an order.
func names(order []autodiff.Variable[float64]) []string {
	out := make([]string, len(order))
	for i, v := range order {
		out[i] = v.(*node).name
	}
	return out
}
