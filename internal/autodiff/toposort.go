package autodiff

import (
	"iter"
	"slices"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// ErrCyclicGraph is returned when a node transitively lists itself as a parent.
var ErrCyclicGraph = errors.New("autodiff: cyclic graph")

// Visitation states of the depth-first traversal.
const (
	white = iota // not seen
	gray         // on the current path
	black        // emitted to the post-order
)

// frame is one level of the explicit DFS stack.
type frame[D any] struct {
	node    Variable[D]
	parents []Variable[D]
	next    int // index of the next parent to explore
}

// TopologicalSort returns every non-constant node reachable from root, root
// first, with each node placed before all of its parents.
//
// The order is the reverse of a depth-first post-order that explores parents
// in the order Parents returns them. Constant nodes are pruned together with
// everything reachable only through them. Each node appears once.
//
// The traversal uses an explicit stack, so graph depth is not limited by the
// goroutine stack. A cycle returns an error wrapping ErrCyclicGraph.
//
// A nil root gives an empty order. Implementations holding a typed nil
// pointer must report it as constant from IsConstant.
//
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort[D any](root Variable[D]) ([]Variable[D], error) {
	if root == nil || root.IsConstant() {
		return nil, nil
	}

	state := map[uint64]int{root.UniqueID(): gray}
	postOrder := make([]Variable[D], 0, 16)
	stack := []frame[D]{{node: root, parents: root.Parents()}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.next < len(top.parents) {
			parent := top.parents[top.next]
			top.next++
			if parent == nil || parent.IsConstant() {
				continue
			}
			id := parent.UniqueID()
			switch state[id] {
			case gray:
				return nil, errors.Wrapf(ErrCyclicGraph, "node %d is its own ancestor", id)
			case black:
				continue
			}
			state[id] = gray
			stack = append(stack, frame[D]{node: parent, parents: parent.Parents()})
			continue
		}

		// All parents emitted: emit the node itself.
		state[top.node.UniqueID()] = black
		postOrder = append(postOrder, top.node)
		stack = stack[:len(stack)-1]
	}

	slices.Reverse(postOrder)
	return postOrder, nil
}

// Walk is the lazy form of TopologicalSort. Every range over the returned
// sequence recomputes the order, so it can be consumed more than once.
// A cyclic graph yields nothing.
func Walk[D any](root Variable[D]) iter.Seq[Variable[D]] {
	return func(yield func(Variable[D]) bool) {
		order, err := TopologicalSort(root)
		if err != nil {
			klog.Warningf("autodiff.Walk: %v", err)
			return
		}
		for _, v := range order {
			if !yield(v) {
				return
			}
		}
	}
}
