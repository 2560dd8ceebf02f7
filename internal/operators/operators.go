// Package operators is the table of elementary scalar functions and their
// local derivatives used by differentiable operations.
//
// Forward functions have the form op(x) -> y. Backward functions have the form
// op_back(x, d) -> d * op'(x). Domain errors are not guarded: Inv(0),
// InvBack(0) and LogBack(0) return ±Inf or NaN, and Log of a negative number
// returns NaN.
package operators

import "math"

// EPS is added to the argument of Log so that Log(0) stays finite.
const EPS = 1e-6

// Mul returns x * y.
func Mul(x, y float64) float64 {
	return x * y
}

// ID returns x.
func ID(x float64) float64 {
	return x
}

// Add returns x + y.
func Add(x, y float64) float64 {
	return x + y
}

// Neg returns -x.
func Neg(x float64) float64 {
	return -x
}

// LT returns 1 if x < y, else 0.
func LT(x, y float64) float64 {
	if x < y {
		return 1.0
	}
	return 0.0
}

// EQ returns 1 if x == y, else 0.
func EQ(x, y float64) float64 {
	if x == y {
		return 1.0
	}
	return 0.0
}

// Max returns the larger of x and y.
func Max(x, y float64) float64 {
	if x > y {
		return x
	}
	return y
}

// IsClose reports whether x and y differ by less than 1e-2.
func IsClose(x, y float64) bool {
	return math.Abs(x-y) < 1e-2
}

// Sigmoid returns 1 / (1 + e^-x).
func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// ReLU returns max(x, 0).
func ReLU(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0.0
}

// Log returns ln(x + EPS).
func Log(x float64) float64 {
	return math.Log(x + EPS)
}

// Exp returns e^x.
func Exp(x float64) float64 {
	return math.Exp(x)
}

// LogBack returns d / x.
func LogBack(x, d float64) float64 {
	return d / x
}

// Inv returns 1 / x.
func Inv(x float64) float64 {
	return 1 / x
}

// InvBack returns -d / x².
func InvBack(x, d float64) float64 {
	return -d / (x * x)
}

// ReLUBack returns d if x > 0, else 0.
func ReLUBack(x, d float64) float64 {
	if x > 0 {
		return d
	}
	return 0.0
}

// SigmoidBack returns d * σ'(x) = d * e^-x / (1 + e^-x)².
func SigmoidBack(x, d float64) float64 {
	e := Exp(-x)
	return d * e / ((1 + e) * (1 + e))
}
