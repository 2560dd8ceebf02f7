package scalar_test

import (
	"fmt"

	"github.com/born-ml/minigrad/autodiff"
	"github.com/born-ml/minigrad/scalar"
)

func Example() {
	g := scalar.NewGraph()
	x := g.Leaf(3)
	y := g.Leaf(2)

	// f = x*x + x*y
	f := x.Mul(x).Add(x.Mul(y))
	if err := f.Backward(autodiff.WithAccumulation(autodiff.Sum[float64]())); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("f=%g df/dx=%g df/dy=%g\n", f.Value(), x.Derivative(), y.Derivative())
	// Output: f=15 df/dx=8 df/dy=3
}

func Example_overwrite() {
	g := scalar.NewGraph()
	x := g.Leaf(3)

	// The default accumulation keeps only the last contribution of x*x.
	if err := x.Mul(x).Backward(); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(x.Derivative())
	// Output: 3
}

func ExampleCheckGradients() {
	err := scalar.CheckGradients(func(xs ...*scalar.Scalar) *scalar.Scalar {
		return xs[0].Mul(xs[1]).Sigmoid()
	}, 0.5, -2)
	fmt.Println(err)
	// Output: <nil>
}
