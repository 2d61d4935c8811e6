package bintree

// NodeCount returns the number of nodes of t.
func (t *Tree[T]) NodeCount() int {
	return fold(t.node(), 0, func(_ T, l, r int) int {
		return 1 + l + r
	})
}

// Height returns the number of nodes on the longest path from the root of t
// down to a leaf. The empty tree has height 0.
func (t *Tree[T]) Height() int {
	return fold(t.node(), 0, func(_ T, l, r int) int {
		return 1 + max(l, r)
	})
}

// LeafCount returns the number of nodes of t without children.
func (t *Tree[T]) LeafCount() int {
	return foldNodes(t.node(), 0, func(n *node[T], l, r int) int {
		if n.isLeaf() {
			return 1
		}
		return l + r
	})
}

// Fold reduces t bottom-up: f is called for every node with the node's value
// and the results for its left and right subtree. Empty subtrees yield zero.
func Fold[T comparable, R any](t *Tree[T], zero R, f func(value T, left, right R) R) R {
	return fold(t.node(), zero, f)
}

func fold[T comparable, R any](n *node[T], zero R, f func(T, R, R) R) R {
	return foldNodes(n, zero, func(n *node[T], l, r R) R {
		return f(n.value, l, r)
	})
}

func foldNodes[T comparable, R any](n *node[T], zero R, f func(*node[T], R, R) R) R {
	if n == nil {
		return zero
	}
	return f(n, foldNodes(n.left, zero, f), foldNodes(n.right, zero, f))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
