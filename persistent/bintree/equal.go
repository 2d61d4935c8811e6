package bintree

// Equal returns true if a and b have the same shape and equal values at
// corresponding nodes. Subtrees shared between a and b are recognized by
// identity and not descended into.
func Equal[T comparable](a, b *Tree[T]) bool {
	return equalNodes(a.node(), b.node())
}

// Equal is a shortcut for Equal(t, other).
func (t *Tree[T]) Equal(other *Tree[T]) bool {
	return Equal(t, other)
}

func equalNodes[T comparable](n, m *node[T]) bool {
	if n == m {
		return true
	}
	if n == nil || m == nil {
		return false
	}
	return n.value == m.value &&
		equalNodes(n.left, m.left) &&
		equalNodes(n.right, m.right)
}
