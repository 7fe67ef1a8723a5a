/*
Package ringlist implements a circular doubly linked list.

The tail of a ring links back to its head, so the iterators of a List never
end on their own and positions keep growing past Len(). Callers must stop
ranging themselves. Every other operation is bounded by Len().

A List satisfies list.Readonly and can be used as a value source for the
copy operations of list.List.
*/
package ringlist

import (
	"iter"

	"github.com/mgnsk/list"
)

type element[T any] struct {
	next, prev *element[T]
	value      T
}

// link inserts s after e.
func (e *element[T]) link(s *element[T]) {
	n := e.next
	e.next = s
	s.prev = e
	n.prev = s
	s.next = n
}

// List is a circular doubly linked list.
//
// The zero value is a ready to use empty list.
type List[T comparable] struct {
	tail *element[T]
	len  int
}

var _ list.Readonly[int] = (*List[int])(nil)

// New creates a ring holding values in order.
func New[T comparable](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Len returns the number of elements in the ring.
func (l *List[T]) Len() int {
	return l.len
}

// IsEmpty reports whether the ring has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.len == 0
}

// PushBack inserts a value between the tail and the head and makes it the new tail.
func (l *List[T]) PushBack(value T) {
	l.PushFront(value)
	l.tail = l.tail.next
}

// PushFront inserts a value between the tail and the head and makes it the new head.
func (l *List[T]) PushFront(value T) {
	e := &element[T]{value: value}
	e.next = e
	e.prev = e

	if l.tail == nil {
		l.tail = e
	} else {
		l.tail.link(e)
	}

	l.len++
}

// PeekHead returns the head value or false if the ring is empty.
func (l *List[T]) PeekHead() (value T, ok bool) {
	if l.tail == nil {
		return value, false
	}
	return l.tail.next.value, true
}

// PeekTail returns the tail value or false if the ring is empty.
func (l *List[T]) PeekTail() (value T, ok bool) {
	if l.tail == nil {
		return value, false
	}
	return l.tail.value, true
}

// PeekAt returns the value at the 1-based index.
func (l *List[T]) PeekAt(index int) (value T, err error) {
	if err := list.CheckIndex(index, l.len); err != nil {
		return value, err
	}

	for i, v := range l.Forward() {
		if i == index {
			return v, nil
		}
	}

	panic("ringlist: unreachable")
}

// Contains reports whether value is in the ring.
func (l *List[T]) Contains(value T) bool {
	for i, v := range l.Forward() {
		if i > l.len {
			break
		}
		if v == value {
			return true
		}
	}
	return false
}

// Forward returns an endless sequence of positions and values starting at the head.
// Position 1 is the head, position Len()+1 is the head again.
func (l *List[T]) Forward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l.tail == nil {
			return
		}

		index := 0
		for e := l.tail.next; ; e = e.next {
			index++
			if !yield(index, e.value) {
				return
			}
		}
	}
}

// Backward returns an endless sequence of positions and values starting at the tail.
// Position Len() is the tail, position 0 is the tail again.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l.tail == nil {
			return
		}

		index := l.len + 1
		for e := l.tail; ; e = e.prev {
			index--
			if !yield(index, e.value) {
				return
			}
		}
	}
}

// Values returns an endless sequence of values starting at the head.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.Forward() {
			if !yield(v) {
				return
			}
		}
	}
}

// BackwardValues returns an endless sequence of values starting at the tail.
func (l *List[T]) BackwardValues() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.Backward() {
			if !yield(v) {
				return
			}
		}
	}
}

// ToSlice returns one lap of values from head to tail.
func (l *List[T]) ToSlice() []T {
	s := make([]T, 0, l.len)
	for i, v := range l.Forward() {
		if i > l.len {
			break
		}
		s = append(s, v)
	}
	return s
}

// CopySubList returns a new linear list with copies of the values
// in the inclusive range [startIndex, endIndex].
func (l *List[T]) CopySubList(startIndex, endIndex int) (*list.List[T], error) {
	if err := list.CheckRange(startIndex, endIndex, l.len); err != nil {
		return nil, err
	}

	sub := &list.List[T]{}
	for i, v := range l.Forward() {
		if i > endIndex {
			break
		}
		if i >= startIndex {
			sub.PushTail(v)
		}
	}

	return sub, nil
}
