package bintree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbin.bintree")
	defer teardown()
	//
	before := Census()
	e := Empty[int]()
	if !e.IsEmpty() {
		t.Error("expected Empty() to be empty")
	}
	if Census().Sub(before).Allocated != 0 {
		t.Error("expected Empty() not to allocate a node")
	}
	var nilTree *Tree[int]
	if !nilTree.IsEmpty() {
		t.Error("expected nil tree to be empty")
	}
	_, err := e.RootValue()
	assert.True(t, errors.Is(err, ErrEmptyTree), "root value of empty tree")
	_, err = e.Left()
	assert.True(t, errors.Is(err, ErrEmptyTree), "left subtree of empty tree")
	_, err = e.Right()
	assert.True(t, errors.Is(err, ErrEmptyTree), "right subtree of empty tree")
	assert.True(t, e.Root().IsNothing())
	e.Release()
	e.Release()
}

func TestTreeLeaf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbin.bintree")
	defer teardown()
	//
	before := Census()
	l := Leaf(7)
	require.False(t, l.IsEmpty())
	assert.True(t, l.IsLeaf())
	assert.Equal(t, 1, l.RefCount())
	v, err := l.RootValue()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, 7, l.Root().WithDefault(0))
	left, err := l.Left()
	require.NoError(t, err)
	assert.True(t, left.IsEmpty())
	l.Release()
	assert.True(t, l.IsEmpty(), "expected released handle to be empty")
	diff := Census().Sub(before)
	assert.Equal(t, 1, diff.Allocated)
	assert.Equal(t, 1, diff.Released)
}

func TestTreeConsSharesSubtrees(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbin.bintree")
	defer teardown()
	//
	before := Census()
	a, b := Leaf(1), Leaf(4)
	tree := Cons(a, 5, b)
	assert.Equal(t, 2, a.RefCount(), "a is referenced by its handle and by the new root")
	assert.Equal(t, 2, b.RefCount())
	assert.Equal(t, 1, tree.RefCount())
	left, err := tree.Left()
	require.NoError(t, err)
	assert.True(t, left.Shares(a))
	assert.True(t, Equal(left, a))
	assert.Equal(t, 3, a.RefCount())
	left.Release()
	//
	tree.Release()
	assert.Equal(t, 1, a.RefCount(), "releasing tree must only lower the count of a")
	assert.Equal(t, []int{1}, a.Preorder())
	assert.Equal(t, []int{4}, b.Preorder())
	assert.Equal(t, 1, Census().Sub(before).Released, "only the root of tree may be gone")
	a.Release()
	b.Release()
	assert.Equal(t, 0, Census().Sub(before).Live())
}

func TestTreeConsWithNilSubtrees(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbin.bintree")
	defer teardown()
	//
	tree := Cons[string](nil, "x", nil)
	defer tree.Release()
	if !tree.IsLeaf() {
		t.Errorf("expected Cons(nil, x, nil) to be a leaf, is\n%s", tree.Sketch())
	}
}

func TestTreeCloneAndAssign(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbin.bintree")
	defer teardown()
	//
	before := Census()
	one := Leaf(1)
	x := Cons(one, 2, nil)
	one.Release()
	y := x.Clone()
	assert.True(t, y.Shares(x))
	assert.Equal(t, 2, x.RefCount())
	y.Assign(y)
	assert.Equal(t, 2, x.RefCount(), "self assignment must not change the count")
	z := Leaf(9)
	y.Assign(z)
	assert.Equal(t, 1, x.RefCount())
	assert.Equal(t, 2, z.RefCount())
	assert.True(t, y.Equal(z))
	x.Release()
	assert.Equal(t, 1, Census().Sub(before).Live(), "only z may be left")
	y.Release()
	z.Release()
	diff := Census().Sub(before)
	assert.Equal(t, 3, diff.Allocated)
	assert.Equal(t, 3, diff.Released)
}

func TestTreeRefcountBalance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbin.bintree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	before := Census()
	a := Leaf(1)
	b := Leaf(2)
	t1 := Cons(a, 3, b)
	t2 := Cons(t1, 4, t1) // shares t1 twice
	t3 := Cons(t2, 5, a)
	c := t2.Clone()
	d := Empty[int]()
	d.Assign(t3)
	for _, h := range []*Tree[int]{a, b, t1, t2} {
		h.Release()
	}
	assert.Equal(t, []int{5, 4, 3, 1, 2, 3, 1, 2, 1}, t3.Preorder())
	require.Equal(t, 9, t3.NodeCount(), "nodes are counted per path")
	for _, h := range []*Tree[int]{t3, c, d} {
		h.Release()
	}
	diff := Census().Sub(before)
	assert.Equal(t, 5, diff.Allocated)
	assert.Equal(t, diff.Allocated, diff.Released)
}

func TestTreeDeepRelease(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbin.bintree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	before := Census()
	const depth = 100000
	tree := Empty[int]()
	for i := 0; i < depth; i++ {
		next := Cons(tree, i, nil)
		tree.Release()
		tree = next
	}
	assert.Equal(t, depth, Census().Sub(before).Live())
	assert.Equal(t, 1, tree.LeafCount())
	tree.Release()
	assert.Equal(t, 0, Census().Sub(before).Live())
}

func TestTreeDecrefOnDestroyedNodePanics(t *testing.T) {
	n := newNode[int](nil, 1, nil).incref()
	n.decref()
	assert.Panics(t, func() { n.decref() })
}

func TestTreeEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbin.bintree")
	defer teardown()
	//
	before := Census()
	// cons consumes the handles for its subtrees
	cons := func(l *Tree[int], v int, r *Tree[int]) *Tree[int] {
		tree := Cons(l, v, r)
		l.Release()
		r.Release()
		return tree
	}
	one := Leaf(1)
	shared := cons(one.Clone(), 3, nil)
	for _, c := range []struct {
		a, b  *Tree[int]
		equal bool
	}{
		{Leaf(1), Leaf(2), false},
		{cons(Leaf(1), 2, nil), cons(nil, 2, Leaf(1)), false},
		{Leaf(1), Empty[int](), false},
		{Empty[int](), Empty[int](), true},
		{cons(shared.Clone(), 5, one.Clone()), cons(shared.Clone(), 5, Leaf(1)), true},
		{cons(shared.Clone(), 5, nil), cons(shared.Clone(), 6, nil), false},
	} {
		if Equal(c.a, c.b) != c.equal || Equal(c.b, c.a) != c.equal {
			t.Errorf("expected Equal to be %v for\n%s\nand\n%s", c.equal, c.a.Sketch(), c.b.Sketch())
		}
		assert.False(t, c.a.Shares(c.b), "test trees must be distinct handles")
		c.a.Release()
		c.b.Release()
	}
	shared.Release()
	one.Release()
	assert.Equal(t, 0, Census().Sub(before).Live())
}
