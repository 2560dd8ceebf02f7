// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// # Overview
//
// Any graph node type implementing Variable can be differentiated:
//   - TopologicalSort orders the non-constant nodes, output first
//   - Backpropagate seeds the output and pushes derivatives to the leaves
//   - Context stores forward-pass values for an operation's backward rule
//   - CentralDifference checks backward rules numerically
//
// # Accumulation
//
// By default a contribution to a node overwrites its pending derivative, so
// at diamond-shaped merge points only the last contribution in topological
// order reaches the leaf. Pass WithAccumulation(Sum[float64]()) to add
// contributions instead:
//
//	err := autodiff.Backpropagate(y, 1.0,
//	    autodiff.WithAccumulation(autodiff.Sum[float64]()))
package autodiff
