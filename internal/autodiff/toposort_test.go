package autodiff_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/minigrad/internal/autodiff"
)

// position returns the index of name in order or -1 if absent.
func position(order []string, name string) int {
	return slices.Index(order, name)
}

func TestTopologicalSort_Chain(t *testing.T) {
	var b builder
	x := b.leaf("x")
	a := b.op("a", x)
	root := b.op("root", a)

	order, err := autodiff.TopologicalSort[float64](root)
	require.NoError(t, err)
	assert.Equal(t, []string{"root", "a", "x"}, names(order))
}

func TestTopologicalSort_Diamond(t *testing.T) {
	var b builder
	leaf := b.leaf("leaf")
	p1 := b.op("p1", leaf)
	p2 := b.op("p2", leaf)
	root := b.op("root", p1, p2)

	order, err := autodiff.TopologicalSort[float64](root)
	require.NoError(t, err)

	got := names(order)
	assert.Equal(t, []string{"root", "p2", "p1", "leaf"}, got)
	assert.Equal(t, 0, position(got, "root"))
	assert.Equal(t, len(got)-1, position(got, "leaf"))
}

func TestTopologicalSort_NodesBeforeParents(t *testing.T) {
	var b builder
	x := b.leaf("x")
	y := b.leaf("y")
	xy := b.op("xy", x, y)
	xx := b.op("xx", x, x)
	s := b.op("s", xy, xx)
	u := b.op("u", s, y)
	root := b.op("root", u, xy, s)

	order, err := autodiff.TopologicalSort[float64](root)
	require.NoError(t, err)
	got := names(order)
	require.Len(t, got, 7)

	all := []*node{x, y, xy, xx, s, u, root}
	for _, n := range all {
		for _, p := range n.parents {
			assert.Less(t, position(got, n.name), position(got, p.name),
				"%s must come before its parent %s", n.name, p.name)
		}
	}
}

func TestTopologicalSort_RepeatedParentVisitedOnce(t *testing.T) {
	var b builder
	leaf := b.leaf("leaf")
	root := b.op("root", leaf, leaf)

	order, err := autodiff.TopologicalSort[float64](root)
	require.NoError(t, err)
	assert.Equal(t, []string{"root", "leaf"}, names(order))
}

func TestTopologicalSort_PrunesConstants(t *testing.T) {
	var b builder
	x := b.leaf("x")
	hidden := b.leaf("hidden") // reachable only through a constant
	c := b.constant("c", hidden)
	a := b.op("a", x, c)
	root := b.op("root", a, c)

	order, err := autodiff.TopologicalSort[float64](root)
	require.NoError(t, err)

	got := names(order)
	assert.Equal(t, []string{"root", "a", "x"}, got)
	assert.NotContains(t, got, "c")
	assert.NotContains(t, got, "hidden")
	for _, v := range order {
		assert.False(t, v.IsConstant())
	}
}

func TestTopologicalSort_ConstantRoot(t *testing.T) {
	var b builder
	root := b.constant("root", b.leaf("x"))

	order, err := autodiff.TopologicalSort[float64](root)
	require.NoError(t, err)
	assert.Empty(t, order)
}

func TestTopologicalSort_LeafRoot(t *testing.T) {
	var b builder
	x := b.leaf("x")

	order, err := autodiff.TopologicalSort[float64](x)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, names(order))
}

func TestTopologicalSort_Idempotent(t *testing.T) {
	var b builder
	x := b.leaf("x")
	y := b.leaf("y")
	p := b.op("p", x, y)
	q := b.op("q", y, x)
	root := b.op("root", q, p)

	first, err := autodiff.TopologicalSort[float64](root)
	require.NoError(t, err)
	second, err := autodiff.TopologicalSort[float64](root)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTopologicalSort_Cycle(t *testing.T) {
	var b builder
	a := b.op("a")
	c := b.op("c", a)
	a.parents = []*node{c}
	a.local = []float64{1}

	order, err := autodiff.TopologicalSort[float64](a)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, autodiff.ErrCyclicGraph)
}

func TestTopologicalSort_SelfLoop(t *testing.T) {
	var b builder
	a := b.op("a")
	a.parents = []*node{a}
	a.local = []float64{1}

	_, err := autodiff.TopologicalSort[float64](a)
	assert.ErrorIs(t, err, autodiff.ErrCyclicGraph)
}

func TestTopologicalSort_DeepGraph(t *testing.T) {
	var b builder
	const depth = 200_000
	cur := b.leaf("x")
	for range depth {
		cur = b.op("op", cur)
	}

	order, err := autodiff.TopologicalSort[float64](cur)
	require.NoError(t, err)
	require.Len(t, order, depth+1)
	assert.Same(t, cur, order[0].(*node))
	assert.Equal(t, "x", order[depth].(*node).name)
}

func TestWalk(t *testing.T) {
	var b builder
	leaf := b.leaf("leaf")
	p1 := b.op("p1", leaf)
	p2 := b.op("p2", leaf)
	root := b.op("root", p1, p2)

	seq := autodiff.Walk[float64](root)
	first := names(slices.Collect(seq))
	second := names(slices.Collect(seq))
	assert.Equal(t, []string{"root", "p2", "p1", "leaf"}, first)
	assert.Equal(t, first, second)

	var visited []string
	for v := range seq {
		visited = append(visited, v.(*node).name)
		if len(visited) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"root", "p2"}, visited)
}

func TestWalk_CycleYieldsNothing(t *testing.T) {
	var b builder
	a := b.op("a")
	a.parents = []*node{a}
	a.local = []float64{1}

	assert.Empty(t, slices.Collect(autodiff.Walk[float64](a)))
}
