/*
Package bintree implements persistent binary trees with structural sharing.

A tree is made from three generators: the empty tree, a leaf, and Cons, which
combines a left subtree, a root value and a right subtree into a new tree.
Trees are never modified after construction. Cons does not copy its subtrees,
it links to them, so two trees (or a tree and one of its own subtrees) usually
share nodes:

    a := bintree.Leaf(1)
    b := bintree.Leaf(4)
    t := bintree.Cons(a, 5, b)      // t shares the nodes of a and b
    l, _ := t.Left()                // l shares the node of a, too

Nodes are reference counted. Every handle (*Tree) and every parent link
holds one reference to the node it points to. Clients own the handles they
receive from constructors, from Clone and from the subtree accessors, and
have to Release them when they are done:

    defer t.Release()

Releasing the last reference to a node releases the references the node
holds to its children, which may cascade further down. A child which is
still referenced from elsewhere just has its count lowered.

Trees are not safe for concurrent use. Reference counts are plain integers
and are not synchronized.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bintree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arbin.bintree'.
func tracer() tracing.Trace {
	return tracing.Select("arbin.bintree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("bintree: "+msg, msgargs...)
		panic(msg)
	}
}
