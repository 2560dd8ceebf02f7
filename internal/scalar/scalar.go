package scalar

import (
	"fmt"

	"github.com/born-ml/minigrad/internal/autodiff"
)

// History records how a Scalar was produced.
// A History without a Function marks a leaf.
type History struct {
	Function Function
	Context  *autodiff.Context[float64]
	Inputs   []*Scalar
}

// Scalar is a float64 node of the computation graph.
// It implements autodiff.Variable[float64].
type Scalar struct {
	graph         *Graph
	id            uint64
	value         float64
	derivative    float64
	hasDerivative bool
	history       *History // nil for constants
}

var _ autodiff.Variable[float64] = (*Scalar)(nil)

// Value returns the forward value.
func (s *Scalar) Value() float64 {
	return s.value
}

// Derivative returns the derivative accumulated by backward passes.
func (s *Scalar) Derivative() float64 {
	return s.derivative
}

// HasDerivative reports whether any backward pass reached this scalar.
func (s *Scalar) HasDerivative() bool {
	return s.hasDerivative
}

// ZeroGrad clears the accumulated derivative.
func (s *Scalar) ZeroGrad() {
	s.derivative = 0
	s.hasDerivative = false
}

// History returns the recorded history, nil for constants.
func (s *Scalar) History() *History {
	return s.history
}

// Graph returns the graph that created s.
func (s *Scalar) Graph() *Graph {
	return s.graph
}

// String implements fmt.Stringer.
func (s *Scalar) String() string {
	return fmt.Sprintf("Scalar(%g)", s.value)
}

// UniqueID implements autodiff.Variable.
func (s *Scalar) UniqueID() uint64 {
	return s.id
}

// IsLeaf implements autodiff.Variable.
func (s *Scalar) IsLeaf() bool {
	return s != nil && s.history != nil && s.history.Function == nil
}

// IsConstant implements autodiff.Variable. A nil *Scalar is a constant.
func (s *Scalar) IsConstant() bool {
	return s == nil || s.history == nil
}

// Parents implements autodiff.Variable.
func (s *Scalar) Parents() []autodiff.Variable[float64] {
	if s.IsConstant() {
		return nil
	}
	parents := make([]autodiff.Variable[float64], len(s.history.Inputs))
	for i, in := range s.history.Inputs {
		parents[i] = in
	}
	return parents
}

// AccumulateDerivative implements autodiff.Variable. Derivatives add up
// across backward passes until ZeroGrad.
func (s *Scalar) AccumulateDerivative(d float64) {
	s.derivative += d
	s.hasDerivative = true
}

// ChainRule implements autodiff.Variable. Constant inputs get no contribution.
func (s *Scalar) ChainRule(d float64) []autodiff.Contribution[float64] {
	h := s.history
	if h == nil || h.Function == nil {
		return nil
	}
	grads := h.Function.Backward(h.Context, d)
	if len(grads) != len(h.Inputs) {
		panic(fmt.Sprintf("scalar: %s backward returned %d derivatives for %d inputs",
			h.Function.Name(), len(grads), len(h.Inputs)))
	}

	contributions := make([]autodiff.Contribution[float64], 0, len(grads))
	for i, in := range h.Inputs {
		if in.IsConstant() {
			continue
		}
		contributions = append(contributions, autodiff.Contribution[float64]{
			Variable:   in,
			Derivative: grads[i],
		})
	}
	return contributions
}

// Backward backpropagates from s with seed 1.
func (s *Scalar) Backward(opts ...autodiff.Option[float64]) error {
	return autodiff.Backpropagate[float64](s, 1.0, opts...)
}

// Add returns s + other.
func (s *Scalar) Add(other *Scalar) *Scalar {
	return s.graph.Apply(AddOp{}, s, other)
}

// Sub returns s - other.
func (s *Scalar) Sub(other *Scalar) *Scalar {
	return s.Add(other.Neg())
}

// Mul returns s * other.
func (s *Scalar) Mul(other *Scalar) *Scalar {
	return s.graph.Apply(MulOp{}, s, other)
}

// Div returns s / other.
func (s *Scalar) Div(other *Scalar) *Scalar {
	return s.Mul(other.Inv())
}

// Neg returns -s.
func (s *Scalar) Neg() *Scalar {
	return s.graph.Apply(NegOp{}, s)
}

// Inv returns 1 / s.
func (s *Scalar) Inv() *Scalar {
	return s.graph.Apply(InvOp{}, s)
}

// Log returns ln(s + operators.EPS).
func (s *Scalar) Log() *Scalar {
	return s.graph.Apply(LogOp{}, s)
}

// Exp returns e^s.
func (s *Scalar) Exp() *Scalar {
	return s.graph.Apply(ExpOp{}, s)
}

// Sigmoid returns σ(s).
func (s *Scalar) Sigmoid() *Scalar {
	return s.graph.Apply(SigmoidOp{}, s)
}

// ReLU returns max(s, 0).
func (s *Scalar) ReLU() *Scalar {
	return s.graph.Apply(ReLUOp{}, s)
}

// LT returns 1 if s < other, else 0.
func (s *Scalar) LT(other *Scalar) *Scalar {
	return s.graph.Apply(LTOp{}, s, other)
}

// GT returns 1 if s > other, else 0.
func (s *Scalar) GT(other *Scalar) *Scalar {
	return s.graph.Apply(LTOp{}, other, s)
}

// EQ returns 1 if s == other, else 0.
func (s *Scalar) EQ(other *Scalar) *Scalar {
	return s.graph.Apply(EQOp{}, s, other)
}
