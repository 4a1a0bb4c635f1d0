package tasktree

import (
	"iter"

	"github.com/google/uuid"

	"github.com/baxromumarov/tasktree/ilist"
)

// Node is a vertex in a task hierarchy. A cooperative scheduler uses the
// hierarchy to track parent/child relationships between logical tasks,
// cascade stop and terminate requests down the tree, and collapse finished
// subtrees out of it via [Node.Consume].
//
// A node simultaneously acts as a tree vertex and as an intrusive-list
// member of its parent's [ChildList]; the sibling link slots live on the
// node itself.
//
// The parent reference is non-owning: a node does not keep its parent
// alive. Ownership of a child is expressed solely through membership in the
// parent's ChildList.
//
// Node is not safe for concurrent mutation; the whole hierarchy is expected
// to be driven from a single logical execution context (§ Concurrency in
// the package docs). Nested mutation from within a traversal of the same
// tree is supported: see [ChildList.Each].
type Node struct {
	ilist.Entry[*Node] // sibling links within the parent's ChildList

	id         uuid.UUID
	kind       string
	parent     *Node
	children   *ChildList
	transient  bool
	annotation string

	stopFn      StopFunc
	stoppedFn   StoppedFunc
	backtraceFn BacktraceFunc
}

// New creates a node. With no options it is a standalone, non-transient
// root with no annotation. Use [WithParent] to attach it immediately.
func New(opts ...Option) *Node {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := &Node{
		id:          uuid.New(),
		kind:        cfg.kind,
		transient:   cfg.transient,
		annotation:  cfg.annotation,
		stopFn:      cfg.stopFn,
		stoppedFn:   cfg.stoppedFn,
		backtraceFn: cfg.backtraceFn,
	}
	if cfg.parent != nil {
		n.SetParent(cfg.parent)
	}
	return n
}

// ID returns the node's unique identifier, assigned at construction.
func (n *Node) ID() uuid.UUID { return n.id }

// Kind returns the label given via [WithKind], "node" by default.
func (n *Node) Kind() string { return n.kind }

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Transient reports whether the node is excluded from its parent's
// finished determination.
func (n *Node) Transient() bool { return n.transient }

// Root walks parent links to the topmost ancestor. O(depth).
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Children returns the node's child collection, or nil if none was ever
// allocated. Treat the result as read-only; mutate the tree through
// [Node.SetParent] and [Node.Consume].
func (n *Node) Children() *ChildList { return n.children }

// HasChildren reports whether the node currently has any children.
func (n *Node) HasChildren() bool {
	return n.children != nil && !n.children.Empty()
}

// Finished reports whether the node has no outstanding non-transient child,
// regardless of how many transient children remain. Vacuously true for a
// node with no children.
func (n *Node) Finished() bool {
	return n.children == nil || n.children.Finished()
}

// SetParent moves the node under parent. It is a no-op if parent already is
// the node's parent. Otherwise the node is detached from its current parent
// (if any) and, when parent is non-nil, attached as parent's last child,
// lazily allocating parent's child collection. Passing nil detaches without
// reattaching.
func (n *Node) SetParent(parent *Node) {
	if n.parent == parent {
		return
	}
	if n.parent != nil {
		n.parent.children.Remove(n)
		n.parent = nil
	}
	if parent != nil {
		if parent.children == nil {
			parent.children = &ChildList{}
		}
		parent.children.Insert(n)
		n.parent = parent
	}
}

// Consume collapses the node out of the tree if it is finished and has a
// parent, so that ancestors do not accumulate dead intermediate nodes.
//
// The node is detached from its parent, then each of its own children is
// redistributed: a finished child is dropped outright, an unfinished child
// is re-homed under the former parent, preserving its pending work one
// level up. Consume then recurses onto the former parent, letting a whole
// chain of now-finished ancestors collapse in one call.
//
// Consume is a no-op on a root or on a node that is not finished.
func (n *Node) Consume() {
	parent := n.parent
	if parent == nil || !n.Finished() {
		return
	}

	parent.children.Remove(n)
	n.parent = nil

	if n.children != nil {
		for child := range n.children.Each() {
			if child.Finished() {
				n.children.Remove(child)
				child.parent = nil
			} else {
				child.SetParent(parent)
			}
		}
		n.children = nil
	}

	parent.Consume()
}

// Walk returns a depth-first pre-order iterator over the subtree rooted at
// the node, yielding each node with its depth relative to the walk root
// (the root itself has depth 0). Children are visited in insertion order.
//
// The walk itself does not mutate the tree; the loop body may, subject to
// the mutation-tolerance contract of [ChildList.Each].
func (n *Node) Walk() iter.Seq2[*Node, int] {
	return func(yield func(*Node, int) bool) {
		n.walk(yield, 0)
	}
}

func (n *Node) walk(yield func(*Node, int) bool, depth int) bool {
	if !yield(n, depth) {
		return false
	}
	if n.children != nil {
		for child := range n.children.Each() {
			if !child.walk(yield, depth+1) {
				return false
			}
		}
	}
	return true
}

// Stop requests the node stop its outstanding work. The base behavior
// cascades to every non-transient child, leaving transient children
// untouched; a concrete task type installs [WithStop] to additionally
// deliver cancellation to itself, and is expected to call
// [Node.StopChildren] to keep the cascade going.
//
// deferLater hints that stopping may be scheduled for a later point rather
// than performed synchronously. The base behavior forwards it to children
// without interpreting it.
func (n *Node) Stop(deferLater bool) {
	if n.stopFn != nil {
		n.stopFn(n, deferLater)
		return
	}
	n.StopChildren(deferLater)
}

// StopChildren invokes [Node.Stop] on every non-transient child. It is the
// base cascade behind [Node.Stop], exposed so custom stop hooks can invoke
// it.
func (n *Node) StopChildren(deferLater bool) {
	if n.children == nil {
		return
	}
	for child := range n.children.Each() {
		if !child.transient {
			child.Stop(deferLater)
		}
	}
}

// Terminate shuts the subtree down unconditionally. The node is asked to
// stop immediately (non-deferred), then, regardless of the stop outcome,
// every direct child is terminated, transient or not. This guarantees the
// whole subtree receives a termination signal even when intermediate stop
// calls are no-ops or deferred.
func (n *Node) Terminate() {
	n.Stop(false)
	if n.children == nil {
		return
	}
	for child := range n.children.Each() {
		child.Terminate()
	}
}

// Stopped reports whether the node has stopped. The base definition is a
// placeholder, true once no child collection exists; a concrete task type
// installs [WithStopped] to reflect its real execution state.
func (n *Node) Stopped() bool {
	if n.stoppedFn != nil {
		return n.stoppedFn(n)
	}
	return n.children == nil
}

// Backtrace returns up to length backtrace lines starting at frame offset
// from, or nil when the node has no backtrace supplier. Install one with
// [WithBacktrace] or [CapturedBacktrace].
func (n *Node) Backtrace(from, length int) []string {
	if n.backtraceFn == nil {
		return nil
	}
	return n.backtraceFn(from, length)
}
