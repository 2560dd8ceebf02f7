// Package main provides the minigrad CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/minigrad/autodiff"
	"github.com/born-ml/minigrad/operators"
	"github.com/born-ml/minigrad/scalar"
)

const version = "v0.1.0"

// expression is a built-in function of two variables.
type expression func(x, y *scalar.Scalar) *scalar.Scalar

var expressions = map[string]expression{
	"square": func(x, _ *scalar.Scalar) *scalar.Scalar {
		return x.Mul(x)
	},
	"sigmoid": func(x, _ *scalar.Scalar) *scalar.Scalar {
		return x.Sigmoid()
	},
	"logistic": func(x, y *scalar.Scalar) *scalar.Scalar {
		one := x.Graph().Constant(1)
		return x.Mul(y).Add(one).Sigmoid().Log()
	},
	"diamond": func(x, y *scalar.Scalar) *scalar.Scalar {
		h := x.Exp()
		return h.Mul(y).Add(h.Sigmoid())
	},
}

func main() {
	if len(os.Args) < 2 {
		usage(os.Stdout)
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("minigrad %s\n", version)
	case "grad":
		err := runGrad(os.Stdout, os.Args[2:])
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		if err != nil {
			klog.Exitf("grad: %+v", err)
		}
	default:
		usage(os.Stderr)
		os.Exit(2)
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "minigrad %s - reverse-mode autodiff\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  grad       Differentiate a built-in expression (grad -h for flags)")
}

// runGrad evaluates an expression, backpropagates through it with the chosen
// accumulation and compares the printed derivatives with central differences.
func runGrad(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("grad", flag.ContinueOnError)
	klog.InitFlags(fs)
	names := slices.Sorted(maps.Keys(expressions))
	exprName := fs.String("expr", "logistic", "expression: "+strings.Join(names, ", "))
	x := fs.Float64("x", 0.5, "value of x")
	y := fs.Float64("y", -1.5, "value of y")
	sum := fs.Bool("sum", false, "sum contributions at shared nodes instead of overwriting")
	if err := fs.Parse(args); err != nil {
		return err
	}
	defer klog.Flush()

	expr, ok := expressions[*exprName]
	if !ok {
		return errors.Errorf("unknown expression %q, want one of %s", *exprName, strings.Join(names, ", "))
	}

	accumulation := autodiff.Overwrite[float64]()
	if *sum {
		accumulation = autodiff.Sum[float64]()
	}
	klog.V(1).Infof("grad: %s at x=%g y=%g, %s accumulation", *exprName, *x, *y, accumulation)

	g := scalar.NewGraph()
	xs, ys := g.Leaf(*x), g.Leaf(*y)
	out := expr(xs, ys)
	// Builtin expressions are acyclic: Backward cannot fail.
	must.M(out.Backward(autodiff.WithAccumulation(accumulation)))

	forward := func(vals ...float64) float64 {
		fg := scalar.NewGraph()
		return expr(fg.Constant(vals[0]), fg.Constant(vals[1])).Value()
	}
	numericX := autodiff.CentralDifference(forward, 0, *x, *y)
	numericY := autodiff.CentralDifference(forward, 1, *x, *y)

	fmt.Fprintf(w, "f(x=%g, y=%g) = %g\n", *x, *y, out.Value())
	fmt.Fprintf(w, "df/dx = %g (central difference %g)\n", xs.Derivative(), numericX)
	fmt.Fprintf(w, "df/dy = %g (central difference %g)\n", ys.Derivative(), numericY)

	if operators.IsClose(xs.Derivative(), numericX) && operators.IsClose(ys.Derivative(), numericY) {
		fmt.Fprintf(w, "%s accumulation: matches central difference\n", accumulation)
	} else {
		fmt.Fprintf(w, "%s accumulation: differs from central difference\n", accumulation)
	}
	return nil
}
