// Package list implements a generic doubly linked list with insertion and
// removal at the front, back, or an arbitrary index, plus forward iteration
// and membership testing.
package list

import "fmt"

// node is an element of a List. Nodes are created by the push operations,
// unlinked by the pop operations and never move between lists.
type node[T any] struct {
	key  T
	prev *node[T]
	next *node[T]
}

// List is a doubly linked list. It keeps elements in insertion order and
// owns every node reachable from its head. A List is not safe for
// concurrent use; callers needing that must serialize access externally.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	len  int
	gen  uint64
}

// New returns an empty list. No nodes are allocated.
func New[T any]() *List[T] {
	return &List[T]{head: nil, tail: nil, len: 0}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.len
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.len == 0
}

// PushFront inserts key at the head of the list.
func (l *List[T]) PushFront(key T) {
	l.gen++
	l.len++
	n := &node[T]{key: key}
	if l.len == 1 {
		l.head, l.tail = n, n
		return
	}

	n.next = l.head
	l.head.prev = n
	l.head = n
}

// PushBack inserts key at the tail of the list.
func (l *List[T]) PushBack(key T) {
	l.gen++
	l.len++
	n := &node[T]{key: key}
	if l.len == 1 {
		l.head, l.tail = n, n
		return
	}

	n.prev = l.tail
	l.tail.next = n
	l.tail = n
}

// PushAt inserts key so that it ends up at position at, walking forward
// from the head. The index must satisfy 0 <= at <= Len(); anything else is
// a bug in the caller and panics.
func (l *List[T]) PushAt(at int, key T) {
	if at < 0 || at > l.len {
		panic(fmt.Sprintf("list: index out of bounds: len is %d but index is %d", l.len, at))
	}

	if at == 0 {
		l.PushFront(key)
		return
	}
	if at == l.len {
		l.PushBack(key)
		return
	}

	l.gen++
	prev := l.head
	for i := 1; i < at; i++ {
		prev = prev.next
	}
	post := prev.next

	n := &node[T]{key: key, prev: prev, next: post}
	prev.next = n
	post.prev = n
	l.len++
}

// PopFront removes and returns the element at the head. The second result
// is false when the list is empty.
func (l *List[T]) PopFront() (T, bool) {
	var zero T
	if l.len == 0 {
		return zero, false
	}

	l.gen++
	head := l.head
	if l.len == 1 {
		l.head, l.tail = nil, nil
	} else {
		l.head = head.next
		l.head.prev = nil
	}
	l.len--

	head.next = nil
	return head.key, true
}

// PopBack removes and returns the element at the tail. The second result
// is false when the list is empty.
func (l *List[T]) PopBack() (T, bool) {
	var zero T
	if l.len == 0 {
		return zero, false
	}

	l.gen++
	tail := l.tail
	if l.len == 1 {
		l.head, l.tail = nil, nil
	} else {
		l.tail = tail.prev
		l.tail.next = nil
	}
	l.len--

	tail.prev = nil
	return tail.key, true
}

// PopAt removes and returns the element at position at. The index must
// satisfy 0 <= at < Len(); anything else panics, so for a valid index the
// second result is always true.
func (l *List[T]) PopAt(at int) (T, bool) {
	if at < 0 || at >= l.len {
		panic(fmt.Sprintf("list: index out of bounds: len is %d but index is %d", l.len, at))
	}

	if at == 0 {
		return l.PopFront()
	}
	if at == l.len-1 {
		return l.PopBack()
	}

	l.gen++
	prev := l.head
	for i := 1; i < at; i++ {
		prev = prev.next
	}
	target := prev.next
	post := target.next

	prev.next = post
	post.prev = prev
	l.len--

	target.prev, target.next = nil, nil
	return target.key, true
}

// Front returns the element at the head without removing it.
func (l *List[T]) Front() (T, bool) {
	var zero T
	if l.len == 0 {
		return zero, false
	}
	return l.head.key, true
}

// Back returns the element at the tail without removing it.
func (l *List[T]) Back() (T, bool) {
	var zero T
	if l.len == 0 {
		return zero, false
	}
	return l.tail.key, true
}

// ToSlice returns the elements in front-to-back order.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.len)
	for n, left := l.head, l.len; left > 0; n, left = n.next, left-1 {
		out = append(out, n.key)
	}
	return out
}

// Clear unlinks and discards every node, leaving the list empty and ready
// for reuse. The walk captures next before severing the current node's
// links, so no pointer chain survives for the collector to trace, and it
// ends only when the current node is nil, even if the count is
// inconsistent mid-walk.
func (l *List[T]) Clear() {
	l.gen++
	n := l.head
	for n != nil {
		next := n.next
		n.prev, n.next = nil, nil
		n = next
	}

	l.head, l.tail = nil, nil
	l.len = 0
}
