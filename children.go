package tasktree

import (
	"iter"

	"github.com/baxromumarov/tasktree/ilist"
)

// ChildList is the child collection of a [Node]: an intrusive list of nodes
// that additionally counts its transient members, so that [ChildList.Finished]
// is O(1).
//
// A ChildList is owned by exactly one parent node. Mutate it only through
// [Node.SetParent] and [Node.Consume]; direct Insert/Remove calls bypass the
// parent back-reference bookkeeping.
type ChildList struct {
	list       ilist.List[*Node]
	transients int
}

// Insert appends n as the last child and returns the list. If n is
// transient, the transient count is incremented.
func (c *ChildList) Insert(n *Node) *ChildList {
	if n.transient {
		c.transients++
	}
	c.list.PushBack(n)
	return c
}

// Remove unlinks n from the list. If n is transient, the transient count is
// decremented. n must currently be a member.
func (c *ChildList) Remove(n *Node) {
	if n.transient {
		c.transients--
	}
	c.list.Remove(n)
}

// Len returns the number of children.
func (c *ChildList) Len() int { return c.list.Len() }

// Empty reports whether the list has no children.
func (c *ChildList) Empty() bool { return c.list.Empty() }

// First returns the first child, or nil.
func (c *ChildList) First() *Node { return c.list.First() }

// Last returns the last child, or nil.
func (c *ChildList) Last() *Node { return c.list.Last() }

// TransientCount returns the number of transient children currently present.
func (c *ChildList) TransientCount() int { return c.transients }

// Finished reports whether every currently-present child is transient.
// Vacuously true for an empty list.
func (c *ChildList) Finished() bool { return c.list.Len() == c.transients }

// Contains reports whether n is a member, by identity.
func (c *ChildList) Contains(n *Node) bool { return c.list.Contains(n) }

// Each returns an iterator over the children in insertion order. It carries
// the mutation-tolerance contract of [ilist.List.Each]: the body may detach
// the current child or any not-yet-visited child.
func (c *ChildList) Each() iter.Seq[*Node] { return c.list.Each() }
