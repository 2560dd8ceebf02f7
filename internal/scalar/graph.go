// Package scalar implements a float64 computation graph on top of the
// autodiff core.
//
// A Graph builds Scalars. Leaves are created with Graph.Leaf, and every
// operation on them records a History (function, context and inputs) that
// autodiff.Backpropagate later replays in reverse:
//
//	g := scalar.NewGraph()
//	x := g.Leaf(2)
//	y := x.Mul(x).Add(x.Sigmoid())
//	if err := y.Backward(autodiff.WithAccumulation(autodiff.Sum[float64]())); err != nil {
//		return err
//	}
//	fmt.Println(x.Derivative())
package scalar

import (
	"slices"

	"github.com/born-ml/minigrad/internal/autodiff"
)

// Graph creates Scalars and decides whether operations are tracked.
// A Graph is not safe for concurrent use.
type Graph struct {
	nextID func() uint64
	noGrad bool
}

// GraphOption configures a Graph.
type GraphOption func(*Graph)

// WithIDAllocator makes the graph draw ids from a instead of the
// process-wide allocator. Scalars of graphs with different allocators must
// not be mixed in one computation.
func WithIDAllocator(a *autodiff.IDAllocator) GraphOption {
	return func(g *Graph) {
		if a != nil {
			g.nextID = a.Next
		}
	}
}

// NewGraph creates a graph builder.
func NewGraph(options ...GraphOption) *Graph {
	g := &Graph{nextID: autodiff.NextID}
	for _, opt := range options {
		opt(g)
	}
	return g
}

// Leaf creates an input whose derivative is tracked.
func (g *Graph) Leaf(value float64) *Scalar {
	return g.newScalar(value, &History{})
}

// Constant creates a value that carries no gradient.
func (g *Graph) Constant(value float64) *Scalar {
	return g.newScalar(value, nil)
}

// NoGrad runs fn with tracking disabled: operations inside produce constants.
func (g *Graph) NoGrad(fn func()) {
	prev := g.noGrad
	g.noGrad = true
	defer func() {
		g.noGrad = prev
	}()
	fn()
}

// Tracking reports whether new operations record history.
func (g *Graph) Tracking() bool {
	return !g.noGrad
}

// Apply runs fn forward on inputs and returns the result.
//
// The result records history only when tracking is on and at least one input
// is not constant; otherwise the function runs with a no-grad context and the
// result is a constant.
func (g *Graph) Apply(fn Function, inputs ...*Scalar) *Scalar {
	needGrad := !g.noGrad && slices.ContainsFunc(inputs, func(s *Scalar) bool {
		return !s.IsConstant()
	})

	ctx := autodiff.NewContext[float64](!needGrad)
	values := make([]float64, len(inputs))
	for i, in := range inputs {
		values[i] = in.value
	}
	out := fn.Forward(ctx, values...)

	var history *History
	if needGrad {
		history = &History{
			Function: fn,
			Context:  ctx,
			Inputs:   slices.Clone(inputs),
		}
	}
	return g.newScalar(out, history)
}

func (g *Graph) newScalar(value float64, history *History) *Scalar {
	return &Scalar{
		graph:   g,
		id:      g.nextID(),
		value:   value,
		history: history,
	}
}
