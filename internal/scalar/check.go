package scalar

import (
	"github.com/pkg/errors"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/operators"
)

// CheckGradients compares the analytic derivatives of fn at vals with
// central differences.
//
// fn is built on fresh leaves and backpropagated with summing accumulation.
// Each leaf derivative must be within operators.IsClose of the numeric
// estimate; the first mismatch is returned as an error.
func CheckGradients(fn func(xs ...*Scalar) *Scalar, vals ...float64) error {
	g := NewGraph()
	leaves := make([]*Scalar, len(vals))
	for i, v := range vals {
		leaves[i] = g.Leaf(v)
	}
	out := fn(leaves...)
	if err := out.Backward(autodiff.WithAccumulation(autodiff.Sum[float64]())); err != nil {
		return errors.WithMessage(err, "gradient check")
	}

	forward := func(xs ...float64) float64 {
		fg := NewGraph()
		consts := make([]*Scalar, len(xs))
		for i, x := range xs {
			consts[i] = fg.Constant(x)
		}
		return fn(consts...).Value()
	}

	for i, leaf := range leaves {
		numeric := autodiff.CentralDifference(forward, i, vals...)
		if !operators.IsClose(leaf.Derivative(), numeric) {
			return errors.Errorf("gradient check: argument %d at %v: analytic %g, numeric %g",
				i, vals, leaf.Derivative(), numeric)
		}
	}
	return nil
}
