package bintree

import (
	"fmt"
	"io"
	"strings"

	tp "github.com/xlab/treeprint"
)

const indentation = 4 // per level, for String()

// String renders t sideways: the root is on the left, right subtrees are
// above and left subtrees below their parent, indented by depth.
//
//    ==== Tree =====
//        4
//     5
//        3
//            1
//    ===============
//
// The format is for human inspection; there is no reader for it.
func (t *Tree[T]) String() string {
	var sb strings.Builder
	t.Fprint(&sb)
	return sb.String()
}

// Fprint writes the sideways rendering of t (see String) to w.
func (t *Tree[T]) Fprint(w io.Writer) error {
	if _, err := io.WriteString(w, "==== Tree =====\n"); err != nil {
		return err
	}
	if err := fprintSideways(w, 0, t.node()); err != nil {
		return err
	}
	_, err := io.WriteString(w, "===============\n")
	return err
}

func fprintSideways[T comparable](w io.Writer, indent int, n *node[T]) error {
	if n == nil {
		return nil
	}
	if err := fprintSideways(w, indent+indentation, n.right); err != nil {
		return err
	}
	pad := strings.Repeat(" ", max(indent, 1))
	if _, err := fmt.Fprintf(w, "%s%v\n", pad, n.value); err != nil {
		return err
	}
	return fprintSideways(w, indent+indentation, n.left)
}

// emptyMark stands in for a missing sibling in Sketch.
const emptyMark = "∅"

// Sketch renders t top-down with box drawing characters, left child first.
// A missing child of a node with one child is marked with ∅.
func (t *Tree[T]) Sketch() string {
	if t.IsEmpty() {
		return emptyMark + "\n"
	}
	printer := tp.New()
	sketch(printer, t.root)
	return printer.String()
}

func sketch[T comparable](printer tp.Tree, n *node[T]) {
	if n.isLeaf() {
		printer.AddNode(n.value)
		return
	}
	branch := printer.AddBranch(n.value)
	for _, ch := range [2]*node[T]{n.left, n.right} {
		if ch == nil {
			branch.AddNode(emptyMark)
			continue
		}
		sketch(branch, ch)
	}
}
