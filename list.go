/*
Package list implements a doubly linked list with 1-based positional access,
bulk insertion, sublist extraction and splicing of whole lists.

A List is not safe for concurrent use.
*/
package list

// List is a doubly linked list.
//
// The zero value is a ready to use empty list.
type List[T comparable] struct {
	head, tail *node[T]
	len        int
}

// New creates a list holding values in order.
func New[T comparable](values ...T) *List[T] {
	l := &List[T]{}
	l.PushSliceTail(values)
	return l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.len
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// Clear empties the list.
func (l *List[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.len = 0
}

// PushHead inserts a value at the head of the list.
func (l *List[T]) PushHead(value T) {
	var c chain[T]
	c.push(value)
	l.insertChain(nil, l.head, c)
}

// PushTail inserts a value at the tail of the list.
func (l *List[T]) PushTail(value T) {
	var c chain[T]
	c.push(value)
	l.insertChain(l.tail, nil, c)
}

// PushAt inserts a value so that it becomes the element at index.
// Valid indexes are 1 through Len()+1.
func (l *List[T]) PushAt(index int, value T) error {
	if err := CheckInsertIndex(index, l.len); err != nil {
		return err
	}

	var c chain[T]
	c.push(value)

	prev, next := l.neighbors(index)
	l.insertChain(prev, next, c)

	return nil
}

// PopHead removes the head element and returns its value.
// It returns false if the list is empty.
func (l *List[T]) PopHead() (value T, ok bool) {
	if l.head == nil {
		return value, false
	}
	return l.remove(l.head), true
}

// PopTail removes the tail element and returns its value.
// It returns false if the list is empty.
func (l *List[T]) PopTail() (value T, ok bool) {
	if l.tail == nil {
		return value, false
	}
	return l.remove(l.tail), true
}

// PopAt removes the element at index and returns its value.
func (l *List[T]) PopAt(index int) (value T, err error) {
	if err := CheckIndex(index, l.len); err != nil {
		return value, err
	}

	switch index {
	case 1:
		return l.remove(l.head), nil
	case l.len:
		return l.remove(l.tail), nil
	}

	return l.remove(l.seek(index)), nil
}

// PeekHead returns the head value or false if the list is empty.
func (l *List[T]) PeekHead() (value T, ok bool) {
	if l.head == nil {
		return value, false
	}
	return l.head.value, true
}

// PeekTail returns the tail value or false if the list is empty.
func (l *List[T]) PeekTail() (value T, ok bool) {
	if l.tail == nil {
		return value, false
	}
	return l.tail.value, true
}

// PeekAt returns the value at index.
func (l *List[T]) PeekAt(index int) (value T, err error) {
	if err := CheckIndex(index, l.len); err != nil {
		return value, err
	}

	switch index {
	case 1:
		return l.head.value, nil
	case l.len:
		return l.tail.value, nil
	}

	return l.seek(index).value, nil
}

// Contains reports whether value is in the list.
func (l *List[T]) Contains(value T) bool {
	for i, n := range l.nodes() {
		if i > l.len {
			break
		}
		if n.value == value {
			return true
		}
	}
	return false
}

// ToSlice returns the values of the list from head to tail.
func (l *List[T]) ToSlice() []T {
	s := make([]T, l.len)
	for i, n := range l.nodes() {
		if i > l.len {
			break
		}
		s[i-1] = n.value
	}
	return s
}

// seek returns the node at index. The index must be in bounds.
func (l *List[T]) seek(index int) *node[T] {
	for i, n := range l.nodes() {
		if i > l.len {
			break
		}
		if i == index {
			return n
		}
	}

	corrupt(index)

	return nil
}

// neighbors returns the nodes that surround a run inserted at index.
// The index must be a valid insertion index.
func (l *List[T]) neighbors(index int) (prev, next *node[T]) {
	switch index {
	case 1:
		return nil, l.head
	case l.len + 1:
		return l.tail, nil
	}

	n := l.seek(index)

	return n.prev, n
}

// insertChain links the chain c between prev and next.
// A nil prev makes the chain head the list head and a nil next
// makes the chain tail the list tail.
func (l *List[T]) insertChain(prev, next *node[T], c chain[T]) {
	if c.len == 0 {
		return
	}

	c.head.prev = prev
	c.tail.next = next

	if prev == nil {
		l.head = c.head
	} else {
		prev.next = c.head
	}

	if next == nil {
		l.tail = c.tail
	} else {
		next.prev = c.tail
	}

	l.len += c.len
}

// remove an element from the list.
func (l *List[T]) remove(n *node[T]) T {
	if n == l.head {
		l.head = n.next
	}
	if n == l.tail {
		l.tail = n.prev
	}
	n.unlink()
	l.len--
	return n.value
}
