package judge

import (
	"github.com/npillmayer/arbin/maybe"
	"github.com/npillmayer/arbin/persistent/bintree"
)

// children returns new handles for both subtrees of a non-empty tree.
// The caller has to release them.
func children[T comparable](t *bintree.Tree[T]) (l, r *bintree.Tree[T]) {
	assertThat(!t.IsEmpty(), "children of empty tree requested")
	l, _ = t.Left()
	r, _ = t.Right()
	return l, r
}

// rootOf returns the root value of a tree known to be non-empty.
func rootOf[T comparable](t *bintree.Tree[T]) T {
	var v T
	switch m := t.Root().Match(); m {
	case m.Just(&v):
	case m.Nothing():
		assertThat(false, "root of empty tree requested")
	}
	return v
}

// --- Left-leaning trees ----------------------------------------------------

// LeftLeaning returns true if t is left-leaning: the empty tree and leaves are
// left-leaning, any other tree is if both of its subtrees are and the left
// subtree has strictly more nodes than the right one.
func LeftLeaning[T comparable](t *bintree.Tree[T]) bool {
	ok, _ := leftLeaning(t)
	return ok
}

func leftLeaning[T comparable](t *bintree.Tree[T]) (ok bool, size int) {
	if t.IsEmpty() {
		return true, 0
	}
	if t.IsLeaf() {
		return true, 1
	}
	l, r := children(t)
	defer l.Release()
	defer r.Release()
	okL, nL := leftLeaning(l)
	if !okL {
		return false, 0
	}
	okR, nR := leftLeaning(r)
	return okR && nL > nR, nL + nR + 1
}

// --- Genealogical trees ----------------------------------------------------

// Minimum age differences in a genealogical tree.
const (
	MinParentAge  = 18 // parent to first child
	MinSiblingGap = 2  // first child to second child
)

// Genealogical checks if a tree of ages is genealogical and returns its height
// if it is. Every node with children has to have a first (left) child at least
// MinParentAge younger than itself. A second (right) child, if present, has to
// be at least MinSiblingGap younger than the first one.
func Genealogical(t *bintree.Tree[int]) (ok bool, height int) {
	if t.IsEmpty() {
		return true, 0
	}
	if t.IsLeaf() {
		return true, 1
	}
	l, r := children(t)
	defer l.Release()
	defer r.Release()
	okL, hL := Genealogical(l)
	if !okL {
		return false, 0
	}
	okR, hR := Genealogical(r)
	if !okR || !family(t, l, r) {
		return false, 0
	}
	if hR > hL {
		hL = hR
	}
	return true, hL + 1
}

func family(parent, first, second *bintree.Tree[int]) bool {
	if first.IsEmpty() {
		return false
	}
	p, f := rootOf(parent), rootOf(first)
	if p-f < MinParentAge {
		return false
	}
	return second.IsEmpty() || f-rootOf(second) >= MinSiblingGap
}

// --- Intermediate nodes ----------------------------------------------------

// IntermediateNodes counts the nodes of t which are intermediate: a node with
// value v is intermediate if it has a parent with a non-zero value p and
//
//    v = |sum(left subtree) - sum(right subtree)| mod p
//
// The root is never intermediate.
func IntermediateNodes(t *bintree.Tree[int]) int {
	n, _ := intermediate(t, maybe.Nothing[int]())
	return n
}

func intermediate(t *bintree.Tree[int], parent maybe.Maybe[int]) (count, sum int) {
	if t.IsEmpty() {
		return 0, 0
	}
	v := rootOf(t)
	l, r := children(t)
	defer l.Release()
	defer r.Release()
	nL, sumL := intermediate(l, maybe.Just(v))
	nR, sumR := intermediate(r, maybe.Just(v))
	count = nL + nR
	expected := maybe.AndThen(func(p int) maybe.Maybe[int] {
		if p == 0 {
			return maybe.Nothing[int]()
		}
		return maybe.Just(abs(sumL-sumR) % p)
	}, parent)
	if !expected.IsNothing() && expected.WithDefault(0) == v {
		count++
	}
	return count, sumL + sumR + v
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
