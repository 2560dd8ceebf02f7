package autodiff

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Float constrains derivative types that support built-in addition.
type Float interface {
	~float32 | ~float64
}

// Accumulation decides what happens when a node receives a contribution
// while it already holds a pending derivative.
//
// Overwrite keeps the last contribution. This is the classic behavior of this
// engine: every visited node starts at the seed and each ChainRule
// contribution replaces the parent's pending value. At diamond-shaped merge
// points only the contribution assigned last in topological order survives.
//
// Sum adds contributions, which gives the mathematically correct gradient
// when a node has several consumers. Under Sum only the root starts at the
// seed. Nodes that receive no contribution are skipped.
type Accumulation[D any] struct {
	name string
	add  func(a, b D) D // nil means overwrite
}

// Overwrite returns the last-write-wins accumulation. It is the default.
func Overwrite[D any]() Accumulation[D] {
	return Accumulation[D]{name: "overwrite"}
}

// SumWith returns a summing accumulation that combines values with add.
// Use it for derivative types without a + operator, such as tensors.
func SumWith[D any](add func(a, b D) D) Accumulation[D] {
	if add == nil {
		panic("autodiff.SumWith: add must not be nil")
	}
	return Accumulation[D]{name: "sum", add: add}
}

// Sum returns a summing accumulation for floating-point derivatives.
func Sum[D Float]() Accumulation[D] {
	return SumWith(func(a, b D) D { return a + b })
}

// String returns the accumulation name.
func (a Accumulation[D]) String() string {
	if a.name == "" {
		return "overwrite"
	}
	return a.name
}

func (a Accumulation[D]) summing() bool {
	return a.add != nil
}

// Option configures Backpropagate.
type Option[D any] func(*options[D])

type options[D any] struct {
	accumulation Accumulation[D]
}

func defaultOptions[D any]() options[D] {
	return options[D]{accumulation: Overwrite[D]()}
}

// WithAccumulation selects how contributions meet at shared parents.
func WithAccumulation[D any](a Accumulation[D]) Option[D] {
	return func(o *options[D]) {
		o.accumulation = a
	}
}

// pending is one derivative slot of the accumulator.
type pending[D any] struct {
	value D
	set   bool
}

// derivatives maps node ids to pending derivatives for one backward pass.
// An id is present exactly when the node is part of the topological order.
type derivatives[D any] struct {
	accumulation Accumulation[D]
	byID         map[uint64]pending[D]
}

func newDerivatives[D any](order []Variable[D], seed D, accumulation Accumulation[D]) *derivatives[D] {
	ds := &derivatives[D]{
		accumulation: accumulation,
		byID:         make(map[uint64]pending[D], len(order)),
	}
	for i, v := range order {
		var slot pending[D]
		if i == 0 || !accumulation.summing() {
			slot = pending[D]{value: seed, set: true}
		}
		ds.byID[v.UniqueID()] = slot
	}
	return ds
}

func (ds *derivatives[D]) get(v Variable[D]) (D, bool) {
	slot := ds.byID[v.UniqueID()]
	return slot.value, slot.set
}

// push records a contribution. Contributions to nodes outside the order
// (constants) are dropped.
func (ds *derivatives[D]) push(c Contribution[D]) {
	if c.Variable == nil {
		return
	}
	id := c.Variable.UniqueID()
	slot, visited := ds.byID[id]
	if !visited {
		return
	}
	if slot.set && ds.accumulation.summing() {
		slot.value = ds.accumulation.add(slot.value, c.Derivative)
	} else {
		slot.value = c.Derivative
	}
	slot.set = true
	ds.byID[id] = slot
}

// Backpropagate runs the reverse pass from root, seeding it with seed
// (usually 1).
//
// Algorithm:
//  1. Compute the topological order (root first)
//  2. Initialize the pending derivative of the visited nodes
//  3. Walk the order: leaves receive AccumulateDerivative, other nodes
//     dispatch ChainRule and push the contributions to their parents
//
// Results are observed through AccumulateDerivative on the leaves. The only
// error is a cyclic graph, reported before any leaf is touched.
//
// A graph must not run two backward passes at the same time: leaves are
// mutated without locking.
func Backpropagate[D any](root Variable[D], seed D, opts ...Option[D]) error {
	o := defaultOptions[D]()
	for _, opt := range opts {
		opt(&o)
	}

	order, err := TopologicalSort(root)
	if err != nil {
		return errors.WithMessage(err, "backpropagate")
	}
	klog.V(2).Infof("backpropagate: %d nodes, %s accumulation", len(order), o.accumulation)

	ds := newDerivatives(order, seed, o.accumulation)
	for _, v := range order {
		d, ok := ds.get(v)
		if !ok {
			klog.V(3).Infof("backpropagate: node %d received no derivative", v.UniqueID())
			continue
		}
		if v.IsLeaf() {
			v.AccumulateDerivative(d)
			continue
		}
		contributions := v.ChainRule(d)
		klog.V(3).Infof("backpropagate: node %d pushed %d contributions", v.UniqueID(), len(contributions))
		for _, c := range contributions {
			ds.push(c)
		}
	}
	return nil
}
