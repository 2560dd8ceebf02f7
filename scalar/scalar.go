// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar provides a float64 computation graph with reverse-mode
// automatic differentiation.
//
// Example:
//
//	g := scalar.NewGraph()
//	x := g.Leaf(3)
//	y := x.Mul(x)
//	_ = y.Backward(autodiff.WithAccumulation(autodiff.Sum[float64]()))
//	fmt.Println(x.Derivative()) // 6
package scalar

import (
	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/scalar"
)

// Graph builds Scalars.
type Graph = scalar.Graph

// GraphOption configures a Graph.
type GraphOption = scalar.GraphOption

// Scalar is a float64 graph node.
type Scalar = scalar.Scalar

// History records how a Scalar was produced.
type History = scalar.History

// Function is a differentiable scalar operation.
type Function = scalar.Function

// Built-in operations.
type (
	AddOp     = scalar.AddOp
	MulOp     = scalar.MulOp
	NegOp     = scalar.NegOp
	InvOp     = scalar.InvOp
	LogOp     = scalar.LogOp
	ExpOp     = scalar.ExpOp
	SigmoidOp = scalar.SigmoidOp
	ReLUOp    = scalar.ReLUOp
	LTOp      = scalar.LTOp
	EQOp      = scalar.EQOp
)

// NewGraph creates a graph builder.
func NewGraph(options ...GraphOption) *Graph {
	return scalar.NewGraph(options...)
}

// WithIDAllocator makes a graph draw ids from a.
func WithIDAllocator(a *autodiff.IDAllocator) GraphOption {
	return scalar.WithIDAllocator(a)
}

// CheckGradients compares analytic derivatives of fn at vals with central
// differences and returns the first mismatch.
func CheckGradients(fn func(xs ...*Scalar) *Scalar, vals ...float64) error {
	return scalar.CheckGradients(fn, vals...)
}
