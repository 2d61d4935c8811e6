package bintree

// Traversals hold plain node pointers for their duration; they neither take
// nor drop references. A subtree shared by several parents is visited once
// per path leading to it, as a tree shape is what clients see.

// Order selects a traversal order.
type Order int8

const (
	PreOrder   Order = iota // root, left, right
	InOrder                 // left, root, right
	PostOrder               // left, right, root
	LevelOrder              // breadth first, left to right
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "preorder"
	case InOrder:
		return "inorder"
	case PostOrder:
		return "postorder"
	case LevelOrder:
		return "levelorder"
	}
	return "unknown order"
}

// Preorder returns the values of t in preorder.
func (t *Tree[T]) Preorder() []T {
	return t.collect(PreOrder)
}

// Inorder returns the values of t in inorder.
func (t *Tree[T]) Inorder() []T {
	return t.collect(InOrder)
}

// Postorder returns the values of t in postorder.
func (t *Tree[T]) Postorder() []T {
	return t.collect(PostOrder)
}

// Levels returns the values of t level by level, from left to right.
func (t *Tree[T]) Levels() []T {
	return t.collect(LevelOrder)
}

func (t *Tree[T]) collect(order Order) []T {
	values := make([]T, 0, 16)
	t.Walk(order, func(v T) bool {
		values = append(values, v)
		return true
	})
	return values
}

// Walk calls visit for each value of t in the given order, until visit returns
// false. Walk returns false if it has been stopped early.
func (t *Tree[T]) Walk(order Order, visit func(T) bool) bool {
	switch order {
	case PreOrder, InOrder, PostOrder:
		return walk(t.node(), order, visit)
	case LevelOrder:
		return walkLevels(t.node(), visit)
	}
	assertThat(false, "illegal traversal order %d", order)
	return false
}

func walk[T comparable](n *node[T], order Order, visit func(T) bool) bool {
	if n == nil {
		return true
	}
	if order == PreOrder && !visit(n.value) {
		return false
	}
	if !walk(n.left, order, visit) {
		return false
	}
	if order == InOrder && !visit(n.value) {
		return false
	}
	if !walk(n.right, order, visit) {
		return false
	}
	if order == PostOrder && !visit(n.value) {
		return false
	}
	return true
}

func walkLevels[T comparable](n *node[T], visit func(T) bool) bool {
	if n == nil {
		return true
	}
	queue := []*node[T]{n}
	for len(queue) > 0 {
		n, queue = queue[0], queue[1:]
		if !visit(n.value) {
			return false
		}
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}
	return true
}
