package autodiff

// DefaultEpsilon is the step used by CentralDifference.
const DefaultEpsilon = 1e-6

// CentralDifference approximates the partial derivative of f with respect to
// vals[arg]:
//
//	(f(..., x+ε, ...) - f(..., x-ε, ...)) / 2ε
//
// f is called exactly twice. vals is not modified. arg must be in
// [0, len(vals)); anything else panics.
func CentralDifference(f func(...float64) float64, arg int, vals ...float64) float64 {
	return CentralDifferenceEpsilon(f, arg, DefaultEpsilon, vals...)
}

// CentralDifferenceEpsilon is CentralDifference with an explicit step.
func CentralDifferenceEpsilon(f func(...float64) float64, arg int, epsilon float64, vals ...float64) float64 {
	shifted := func(delta float64) []float64 {
		args := append([]float64(nil), vals...)
		args[arg] += delta
		return args
	}

	plus := f(shifted(epsilon)...)
	minus := f(shifted(-epsilon)...)

	return (plus - minus) / (2 * epsilon)
}
