// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package operators exposes the elementary scalar functions and their local
// derivatives.
package operators

import "github.com/born-ml/minigrad/internal/operators"

// EPS is added to the argument of Log.
const EPS = operators.EPS

// Forward functions.
var (
	Mul     = operators.Mul
	ID      = operators.ID
	Add     = operators.Add
	Neg     = operators.Neg
	LT      = operators.LT
	EQ      = operators.EQ
	Max     = operators.Max
	IsClose = operators.IsClose
	Sigmoid = operators.Sigmoid
	ReLU    = operators.ReLU
	Log     = operators.Log
	Exp     = operators.Exp
	Inv     = operators.Inv
)

// Backward functions: op_back(x, d) = d * op'(x).
var (
	LogBack     = operators.LogBack
	InvBack     = operators.InvBack
	ReLUBack    = operators.ReLUBack
	SigmoidBack = operators.SigmoidBack
)

// List helpers.
var (
	NegList  = operators.NegList
	AddLists = operators.AddLists
	Sum      = operators.Sum
	Prod     = operators.Prod
)

// Map returns a function applying fn to every element of a slice.
func Map[T, R any](fn func(T) R) func([]T) []R {
	return operators.Map(fn)
}

// ZipWith returns a function combining two slices element-wise with fn.
func ZipWith[A, B, R any](fn func(A, B) R) func([]A, []B) []R {
	return operators.ZipWith(fn)
}

// Reduce returns a function folding a slice with fn, starting from init.
func Reduce[T, R any](fn func(R, T) R, init R) func([]T) R {
	return operators.Reduce(fn, init)
}
