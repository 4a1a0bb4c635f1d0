// Package ilist implements an intrusive doubly linked list: link pointers
// live on the member objects themselves, so membership costs no extra
// allocation and removal is O(1) given only the member.
//
// A member type embeds [Entry] parameterized over its own pointer type:
//
//	type Item struct {
//	    ilist.Entry[*Item]
//	    // ...
//	}
//
//	var l ilist.List[*Item]
//	l.PushBack(&Item{})
//
// The zero value of List is an empty list ready to use. A member may belong
// to at most one list at a time.
package ilist

import "iter"

// Element is the constraint for list members: a comparable pointer type
// giving access to its embedded [Entry].
type Element[T any] interface {
	comparable
	ListEntry() *Entry[T]
}

// Entry holds the link slots of a list member. Embed it in the member type
// to satisfy [Element]. The zero value is unlinked.
type Entry[T any] struct {
	next, prev T
}

// ListEntry returns the entry itself. It exists so that embedding types
// satisfy [Element].
func (e *Entry[T]) ListEntry() *Entry[T] { return e }

// List is an intrusive doubly linked list of T. The zero value is an empty
// list ready to use. List is not safe for concurrent mutation.
type List[T Element[T]] struct {
	first, last T
	size        int
}

// Len returns the number of members. O(1).
func (l *List[T]) Len() int { return l.size }

// Empty reports whether the list has no members.
func (l *List[T]) Empty() bool {
	var zero T
	return l.first == zero
}

// First returns the first member, or the zero value if the list is empty.
func (l *List[T]) First() T { return l.first }

// Last returns the last member, or the zero value if the list is empty.
func (l *List[T]) Last() T { return l.last }

// PushBack appends e as the new last member and returns the list.
//
// e must not currently belong to any list. Belonging to this list, or
// carrying stale links, is detected and panics; a sole member of another
// list is indistinguishable from an unlinked element and remains the
// caller's responsibility.
func (l *List[T]) PushBack(e T) *List[T] {
	var zero T
	ent := e.ListEntry()
	if ent.next != zero || ent.prev != zero || l.first == e {
		panic("ilist: PushBack of already-linked element")
	}

	ent.next = zero
	ent.prev = l.last
	if l.last != zero {
		l.last.ListEntry().next = e
	} else {
		l.first = e
	}
	l.last = e
	l.size++
	return l
}

// Remove unlinks e from the list and clears its link slots. O(1).
//
// e must currently be a member of this list. Removal of an unlinked element
// is detected and panics; removal of a member of a different list corrupts
// both lists and is not detected.
func (l *List[T]) Remove(e T) {
	var zero T
	ent := e.ListEntry()
	if ent.next == zero && ent.prev == zero && l.first != e {
		panic("ilist: Remove of non-member element")
	}

	if ent.prev != zero {
		ent.prev.ListEntry().next = ent.next
	} else {
		l.first = ent.next
	}
	if ent.next != zero {
		ent.next.ListEntry().prev = ent.prev
	} else {
		l.last = ent.prev
	}
	ent.next = zero
	ent.prev = zero
	l.size--
}

// Contains reports whether e is a member, by identity. O(n).
func (l *List[T]) Contains(e T) bool {
	for m := range l.Each() {
		if m == e {
			return true
		}
	}
	return false
}

// Each returns an iterator over the members in insertion order.
//
// The traversal tolerates mutation by the loop body: the body may remove
// the member it was just handed, or any member not yet visited, without
// causing skips or repeat visits. The cursor advances past a yielded member
// only while that member is still linked where the cursor left it;
// otherwise the next member is re-derived from the cursor's current
// position rather than from a stale snapshot.
func (l *List[T]) Each() iter.Seq[T] {
	return func(yield func(T) bool) {
		var zero T
		cur := zero // zero cursor stands for the list header
		for {
			next := l.first
			if cur != zero {
				next = cur.ListEntry().next
			}
			if next == zero {
				return
			}
			if !yield(next) {
				return
			}
			// Advance only if the yielded member is still immediately
			// reachable from the cursor; a member that unlinked itself
			// inside the body fails this check and the cursor stays put.
			if cur == zero {
				if l.first == next {
					cur = next
				}
			} else if cur.ListEntry().next == next {
				cur = next
			}
		}
	}
}
