// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff

import (
	"iter"

	"github.com/born-ml/minigrad/internal/autodiff"
)

// Variable is the capability contract of a graph node.
type Variable[D any] = autodiff.Variable[D]

// Contribution is a derivative pushed from a node to one of its parents.
type Contribution[D any] = autodiff.Contribution[D]

// Context stores values saved during an operation's forward pass.
type Context[T any] = autodiff.Context[T]

// IDAllocator hands out unique, increasing node ids.
type IDAllocator = autodiff.IDAllocator

// Accumulation decides how contributions meet at shared parents.
type Accumulation[D any] = autodiff.Accumulation[D]

// Option configures Backpropagate.
type Option[D any] = autodiff.Option[D]

// Float constrains derivative types with built-in addition.
type Float = autodiff.Float

// ErrCyclicGraph is returned when the graph contains a cycle.
var ErrCyclicGraph = autodiff.ErrCyclicGraph

// DefaultEpsilon is the step used by CentralDifference.
const DefaultEpsilon = autodiff.DefaultEpsilon

// NewContext creates a Context.
func NewContext[T any](noGrad bool) *Context[T] {
	return autodiff.NewContext[T](noGrad)
}

// NextID returns a fresh id from the process-wide allocator.
func NextID() uint64 {
	return autodiff.NextID()
}

// TopologicalSort returns the non-constant nodes reachable from root, root
// first and every node before its parents.
func TopologicalSort[D any](root Variable[D]) ([]Variable[D], error) {
	return autodiff.TopologicalSort(root)
}

// Walk is the lazy form of TopologicalSort.
func Walk[D any](root Variable[D]) iter.Seq[Variable[D]] {
	return autodiff.Walk(root)
}

// Backpropagate runs the reverse pass from root with the given seed.
func Backpropagate[D any](root Variable[D], seed D, opts ...Option[D]) error {
	return autodiff.Backpropagate(root, seed, opts...)
}

// Overwrite returns the last-write-wins accumulation (the default).
func Overwrite[D any]() Accumulation[D] {
	return autodiff.Overwrite[D]()
}

// Sum returns the summing accumulation for floating-point derivatives.
func Sum[D Float]() Accumulation[D] {
	return autodiff.Sum[D]()
}

// SumWith returns a summing accumulation using add.
func SumWith[D any](add func(a, b D) D) Accumulation[D] {
	return autodiff.SumWith(add)
}

// WithAccumulation selects the accumulation used by Backpropagate.
func WithAccumulation[D any](a Accumulation[D]) Option[D] {
	return autodiff.WithAccumulation(a)
}

// CentralDifference approximates ∂f/∂vals[arg] with a central difference.
func CentralDifference(f func(...float64) float64, arg int, vals ...float64) float64 {
	return autodiff.CentralDifference(f, arg, vals...)
}

// CentralDifferenceEpsilon is CentralDifference with an explicit step.
func CentralDifferenceEpsilon(f func(...float64) float64, arg int, epsilon float64, vals ...float64) float64 {
	return autodiff.CentralDifferenceEpsilon(f, arg, epsilon, vals...)
}
