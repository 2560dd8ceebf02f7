package operators

// Map returns a function applying fn to every element of a slice.
func Map[T, R any](fn func(T) R) func([]T) []R {
	return func(xs []T) []R {
		out := make([]R, len(xs))
		for i, x := range xs {
			out[i] = fn(x)
		}
		return out
	}
}

// ZipWith returns a function combining two slices element-wise with fn.
// The result is as long as the shorter input.
func ZipWith[A, B, R any](fn func(A, B) R) func([]A, []B) []R {
	return func(as []A, bs []B) []R {
		n := min(len(as), len(bs))
		out := make([]R, n)
		for i := range n {
			out[i] = fn(as[i], bs[i])
		}
		return out
	}
}

// Reduce returns a function folding a slice with fn, starting from init.
func Reduce[T, R any](fn func(R, T) R, init R) func([]T) R {
	return func(xs []T) R {
		acc := init
		for _, x := range xs {
			acc = fn(acc, x)
		}
		return acc
	}
}

// NegList negates every element.
func NegList(xs []float64) []float64 {
	return Map(Neg)(xs)
}

// AddLists adds two slices element-wise.
func AddLists(xs, ys []float64) []float64 {
	return ZipWith(Add)(xs, ys)
}

// Sum returns the sum of xs, 0 for an empty slice.
func Sum(xs []float64) float64 {
	return Reduce(Add, 0.0)(xs)
}

// Prod returns the product of xs, 1 for an empty slice.
func Prod(xs []float64) float64 {
	return Reduce(Mul, 1.0)(xs)
}
