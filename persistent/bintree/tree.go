package bintree

import (
	"fmt"

	"github.com/npillmayer/arbin/maybe"
)

// Tree is a handle for a binary tree. It holds one reference to the root node
// of the tree, or none for the empty tree. A nil *Tree is a valid empty tree
// for all read operations.
//
// Handles are not copied by Go assignment: the assigned pointer refers to the
// same handle and does not hold a reference of its own. Use Clone to get an
// independent handle and Assign to re-target an existing one.
type Tree[T comparable] struct {
	root *node[T]
}

// adopt(n:+1) (t)
func adopt[T comparable](n *node[T]) *Tree[T] {
	return &Tree[T]{root: n.incref()}
}

// Empty creates a handle for the empty tree. No node is allocated.
func Empty[T comparable]() *Tree[T] {
	return &Tree[T]{}
}

// Leaf creates a tree consisting of a single node carrying value.
func Leaf[T comparable](value T) *Tree[T] {
	return adopt(newNode[T](nil, value, nil))
}

// Cons creates a tree with root value and subtrees left and right.
// The new tree shares the nodes of left and right; both handles stay
// valid and independent of the new one. nil subtrees denote empty trees.
func Cons[T comparable](left *Tree[T], value T, right *Tree[T]) *Tree[T] {
	return adopt(newNode(left.node(), value, right.node()))
}

func (t *Tree[T]) node() *node[T] {
	if t == nil {
		return nil
	}
	return t.root
}

// Clone returns a new handle for the same tree. It is the responsibility of
// the caller to Release it at a later time.
func (t *Tree[T]) Clone() *Tree[T] {
	return adopt(t.node())
}

// Assign lets t refer to the tree of other, releasing the tree t referred to
// before. Assigning a tree to itself is legal and leaves it unchanged.
func (t *Tree[T]) Assign(other *Tree[T]) {
	assertThat(t != nil, "assignment to nil handle")
	old := t.root
	t.root = other.node().incref() // adopt first, old may be the same node
	old.decref()
}

// Release drops the reference t holds. Afterwards t is the empty tree, i.e.
// releasing a handle twice is harmless.
func (t *Tree[T]) Release() {
	if t == nil || t.root == nil {
		return
	}
	root := t.root
	t.root = nil
	root.decref()
}

// --- Observers -------------------------------------------------------------

// IsEmpty returns true if t has no nodes.
func (t *Tree[T]) IsEmpty() bool {
	return t.node() == nil
}

// RootValue returns the value of the root node of t. For the empty tree it
// returns an error wrapping ErrEmptyTree.
func (t *Tree[T]) RootValue() (T, error) {
	if t.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("root value: %w", ErrEmptyTree)
	}
	return t.root.value, nil
}

// Root returns the value of the root node of t, if present.
func (t *Tree[T]) Root() maybe.Maybe[T] {
	if t.IsEmpty() {
		return maybe.Nothing[T]()
	}
	return maybe.Just(t.root.value)
}

// Left returns a new handle for the left subtree of t, sharing its nodes.
// The caller owns the returned handle. For the empty tree Left returns an
// error wrapping ErrEmptyTree.
func (t *Tree[T]) Left() (*Tree[T], error) {
	if t.IsEmpty() {
		return nil, fmt.Errorf("left subtree: %w", ErrEmptyTree)
	}
	return adopt(t.root.left), nil
}

// Right returns a new handle for the right subtree of t, sharing its nodes.
// The caller owns the returned handle. For the empty tree Right returns an
// error wrapping ErrEmptyTree.
func (t *Tree[T]) Right() (*Tree[T], error) {
	if t.IsEmpty() {
		return nil, fmt.Errorf("right subtree: %w", ErrEmptyTree)
	}
	return adopt(t.root.right), nil
}

// IsLeaf returns true if t consists of a single node.
func (t *Tree[T]) IsLeaf() bool {
	return !t.IsEmpty() && t.root.isLeaf()
}

// Shares returns true if t and other refer to the very same root node.
// Two empty trees never share.
func (t *Tree[T]) Shares(other *Tree[T]) bool {
	return !t.IsEmpty() && t.node() == other.node()
}

// RefCount returns the number of references held to the root node of t,
// which is 0 for the empty tree. It is meant for diagnostics.
func (t *Tree[T]) RefCount() int {
	if t.IsEmpty() {
		return 0
	}
	return t.root.refs
}
