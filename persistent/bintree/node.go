package bintree

import "fmt"

/*
Implementation details:

- Each node is reference counted by the handles and by the parent nodes which
  link to it. A node is created with a count of zero and immediately adopted
  by its first owner.
- Payload and child links of a node are set at creation time and never change.
  The only mutation on a live node is the adjustment of its count.
- Functions which operate directly on nodes carry a notation in the form
  `foo(arg:+n) (ret:+m)`: each argument or return value is followed by the
  change applied to its reference count.
*/

type node[T comparable] struct {
	value T
	left  *node[T]
	right *node[T]
	refs  int
}

// newNode(l:+1, r:+1) (n:+0)
//
// newNode links to l and r, adding one reference to each of them. The caller
// has to adopt the new node with incref.
func newNode[T comparable](l *node[T], value T, r *node[T]) *node[T] {
	n := &node[T]{
		value: value,
		left:  l.incref(),
		right: r.incref(),
	}
	census.Allocated++
	tracer().Debugf("allocated node %v", n)
	return n
}

func (n *node[T]) String() string {
	if n == nil {
		return "(nil)"
	}
	return fmt.Sprintf("(%v #%d)", n.value, n.refs)
}

func (n *node[T]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// incref(n:+1) (n)
func (n *node[T]) incref() *node[T] {
	if n != nil {
		assertThat(n.refs >= 0, "incref on destroyed node %v", n)
		n.refs++
	}
	return n
}

// decref(n:-1)
//
// If the count of n drops to zero, n is destroyed and its references to its
// children are dropped as well, which may cascade. The cascade uses an
// explicit work list, as trees built from parsed input may be degenerate and
// arbitrarily deep.
func (n *node[T]) decref() {
	if n == nil {
		return
	}
	worklist := []*node[T]{n}
	for len(worklist) > 0 {
		top := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		assertThat(top.refs > 0, "decref on node %v without references", top)
		top.refs--
		if top.refs > 0 {
			continue
		}
		if top.right != nil {
			worklist = append(worklist, top.right)
		}
		if top.left != nil {
			worklist = append(worklist, top.left)
		}
		top.destroy()
	}
}

// destroy detaches a node with a count of zero from its children. The
// children's counts have to be taken care of by the caller.
func (n *node[T]) destroy() {
	tracer().Debugf("destroying node %v", n)
	var zero T
	n.value = zero
	n.left, n.right = nil, nil
	n.refs = -1 // tombstone, catches use after release
	census.Released++
}

// --- Census ----------------------------------------------------------------

// CensusReport is a snapshot of node allocation statistics for all trees
// of the running program.
type CensusReport struct {
	Allocated int // nodes created so far
	Released  int // nodes destroyed so far
}

// Live returns the number of nodes currently alive.
func (c CensusReport) Live() int {
	return c.Allocated - c.Released
}

// Sub returns the difference between two reports, i.e. the allocation
// activity between two points in time.
func (c CensusReport) Sub(earlier CensusReport) CensusReport {
	return CensusReport{
		Allocated: c.Allocated - earlier.Allocated,
		Released:  c.Released - earlier.Released,
	}
}

var census CensusReport

// Census returns the current node allocation statistics. Counters are never
// reset; clients interested in a section of work take two snapshots and
// compare them.
func Census() CensusReport {
	return census
}
