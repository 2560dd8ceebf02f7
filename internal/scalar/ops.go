package scalar

import (
	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/operators"
)

// Function is a differentiable scalar operation.
//
// Forward computes the output from the input values and may save what the
// backward rule needs in ctx. Backward receives the same ctx and the derivative
// of the output, and returns one derivative per input, in input order.
type Function interface {
	Name() string
	Forward(ctx *autodiff.Context[float64], inputs ...float64) float64
	Backward(ctx *autodiff.Context[float64], d float64) []float64
}

// AddOp is a + b.
//
// Backward: ∂/∂a = d, ∂/∂b = d.
type AddOp struct{}

// Name returns "add".
func (AddOp) Name() string { return "add" }

// Forward returns a + b.
func (AddOp) Forward(_ *autodiff.Context[float64], inputs ...float64) float64 {
	return operators.Add(inputs[0], inputs[1])
}

// Backward passes d to both inputs.
func (AddOp) Backward(_ *autodiff.Context[float64], d float64) []float64 {
	return []float64{d, d}
}

// MulOp is a * b.
//
// Backward: ∂/∂a = b·d, ∂/∂b = a·d.
type MulOp struct{}

// Name returns "mul".
func (MulOp) Name() string { return "mul" }

// Forward returns a * b and saves both factors.
func (MulOp) Forward(ctx *autodiff.Context[float64], inputs ...float64) float64 {
	a, b := inputs[0], inputs[1]
	ctx.SaveForBackward(a, b)
	return operators.Mul(a, b)
}

// Backward swaps the saved factors.
func (MulOp) Backward(ctx *autodiff.Context[float64], d float64) []float64 {
	saved := ctx.SavedValues()
	a, b := saved[0], saved[1]
	return []float64{operators.Mul(b, d), operators.Mul(a, d)}
}

// NegOp is -a.
type NegOp struct{}

// Name returns "neg".
func (NegOp) Name() string { return "neg" }

// Forward returns -a.
func (NegOp) Forward(_ *autodiff.Context[float64], inputs ...float64) float64 {
	return operators.Neg(inputs[0])
}

// Backward returns -d.
func (NegOp) Backward(_ *autodiff.Context[float64], d float64) []float64 {
	return []float64{operators.Neg(d)}
}

// InvOp is 1/a.
//
// Backward: ∂/∂a = -d/a². Undefined at a = 0.
type InvOp struct{}

// Name returns "inv".
func (InvOp) Name() string { return "inv" }

// Forward returns 1/a.
func (InvOp) Forward(ctx *autodiff.Context[float64], inputs ...float64) float64 {
	ctx.SaveForBackward(inputs[0])
	return operators.Inv(inputs[0])
}

// Backward returns -d/a².
func (InvOp) Backward(ctx *autodiff.Context[float64], d float64) []float64 {
	return []float64{operators.InvBack(ctx.SavedValues()[0], d)}
}

// LogOp is ln(a + ε).
//
// Backward: ∂/∂a = d/a.
type LogOp struct{}

// Name returns "log".
func (LogOp) Name() string { return "log" }

// Forward returns ln(a + ε).
func (LogOp) Forward(ctx *autodiff.Context[float64], inputs ...float64) float64 {
	ctx.SaveForBackward(inputs[0])
	return operators.Log(inputs[0])
}

// Backward returns d/a.
func (LogOp) Backward(ctx *autodiff.Context[float64], d float64) []float64 {
	return []float64{operators.LogBack(ctx.SavedValues()[0], d)}
}

// ExpOp is e^a.
//
// Backward: ∂/∂a = e^a·d, computed from the saved output.
type ExpOp struct{}

// Name returns "exp".
func (ExpOp) Name() string { return "exp" }

// Forward returns e^a and saves it.
func (ExpOp) Forward(ctx *autodiff.Context[float64], inputs ...float64) float64 {
	out := operators.Exp(inputs[0])
	ctx.SaveForBackward(out)
	return out
}

// Backward returns e^a·d.
func (ExpOp) Backward(ctx *autodiff.Context[float64], d float64) []float64 {
	return []float64{operators.Mul(ctx.SavedValues()[0], d)}
}

// SigmoidOp is σ(a) = 1 / (1 + e^-a).
type SigmoidOp struct{}

// Name returns "sigmoid".
func (SigmoidOp) Name() string { return "sigmoid" }

// Forward returns σ(a).
func (SigmoidOp) Forward(ctx *autodiff.Context[float64], inputs ...float64) float64 {
	ctx.SaveForBackward(inputs[0])
	return operators.Sigmoid(inputs[0])
}

// Backward returns σ'(a)·d.
func (SigmoidOp) Backward(ctx *autodiff.Context[float64], d float64) []float64 {
	return []float64{operators.SigmoidBack(ctx.SavedValues()[0], d)}
}

// ReLUOp is max(a, 0).
//
// Backward: d where a > 0, else 0.
type ReLUOp struct{}

// Name returns "relu".
func (ReLUOp) Name() string { return "relu" }

// Forward returns max(a, 0).
func (ReLUOp) Forward(ctx *autodiff.Context[float64], inputs ...float64) float64 {
	ctx.SaveForBackward(inputs[0])
	return operators.ReLU(inputs[0])
}

// Backward masks d by a > 0.
func (ReLUOp) Backward(ctx *autodiff.Context[float64], d float64) []float64 {
	return []float64{operators.ReLUBack(ctx.SavedValues()[0], d)}
}

// LTOp is 1 if a < b, else 0. It is piecewise constant: both derivatives are 0.
type LTOp struct{}

// Name returns "lt".
func (LTOp) Name() string { return "lt" }

// Forward returns a < b as 0 or 1.
func (LTOp) Forward(_ *autodiff.Context[float64], inputs ...float64) float64 {
	return operators.LT(inputs[0], inputs[1])
}

// Backward returns zeros.
func (LTOp) Backward(_ *autodiff.Context[float64], _ float64) []float64 {
	return []float64{0, 0}
}

// EQOp is 1 if a == b, else 0. Both derivatives are 0.
type EQOp struct{}

// Name returns "eq".
func (EQOp) Name() string { return "eq" }

// Forward returns a == b as 0 or 1.
func (EQOp) Forward(_ *autodiff.Context[float64], inputs ...float64) float64 {
	return operators.EQ(inputs[0], inputs[1])
}

// Backward returns zeros.
func (EQOp) Backward(_ *autodiff.Context[float64], _ float64) []float64 {
	return []float64{0, 0}
}
