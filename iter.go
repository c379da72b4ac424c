package list

// Iter is a one-shot forward cursor over a List. It walks next links from
// the head captured at construction and stops after exactly the element
// count captured at construction, not when a link runs out. Mutating the
// list while a cursor is live invalidates it: the next call to Next panics
// instead of traversing links that may no longer describe the list.
type Iter[T any] struct {
	list *List[T]
	node *node[T]
	left int
	gen  uint64
}

// Iter returns a cursor yielding the elements front to back.
func (l *List[T]) Iter() *Iter[T] {
	return &Iter[T]{list: l, node: l.head, left: l.len, gen: l.gen}
}

// Next returns the next element. The second result is false once the
// cursor is exhausted; exhausted cursors are not restartable.
func (it *Iter[T]) Next() (T, bool) {
	var zero T
	if it.left == 0 {
		return zero, false
	}
	if it.gen != it.list.gen {
		panic("list: list modified during iteration")
	}

	n := it.node
	it.node = n.next
	it.left--
	return n.key, true
}

// IterMut is the mutable counterpart of Iter: Next yields a pointer to the
// element stored in the node, so the caller can update it in place. The
// usual cursor contract applies, plus the pointer must not be held across
// any mutation of the list.
type IterMut[T any] struct {
	list *List[T]
	node *node[T]
	left int
	gen  uint64
}

// IterMut returns a cursor yielding pointers to the elements front to back.
func (l *List[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{list: l, node: l.head, left: l.len, gen: l.gen}
}

// Next returns a pointer to the next element, or false when exhausted.
func (it *IterMut[T]) Next() (*T, bool) {
	if it.left == 0 {
		return nil, false
	}
	if it.gen != it.list.gen {
		panic("list: list modified during iteration")
	}

	n := it.node
	it.node = n.next
	it.left--
	return &n.key, true
}

// Contains reports whether key appears in the list. Equality is a
// capability of the element type, not of List, so this is a function
// rather than a method.
func Contains[T comparable](l *List[T], key T) bool {
	it := l.Iter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if v == key {
			return true
		}
	}
	return false
}
