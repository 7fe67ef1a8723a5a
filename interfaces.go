package list

import "iter"

// Readonly is the read-only capability of a linked list.
//
// Operations that only read values from another list, such as List.CopyListTail,
// accept a Readonly so that read-only or circular lists can be used as sources.
type Readonly[T comparable] interface {
	// Len returns the number of elements.
	Len() int

	// IsEmpty reports whether the list has no elements.
	IsEmpty() bool

	// PeekHead returns the first value or false if the list is empty.
	PeekHead() (T, bool)

	// PeekTail returns the last value or false if the list is empty.
	PeekTail() (T, bool)

	// PeekAt returns the value at the 1-based index.
	PeekAt(index int) (T, error)

	// Contains reports whether value is in the list.
	Contains(value T) bool

	// Forward returns a sequence of 1-based positions and values from head to tail.
	Forward() iter.Seq2[int, T]

	// Backward returns a sequence of 1-based positions and values from tail to head.
	Backward() iter.Seq2[int, T]

	// Values returns a sequence of values from head to tail.
	Values() iter.Seq[T]

	// BackwardValues returns a sequence of values from tail to head.
	BackwardValues() iter.Seq[T]

	// ToSlice returns all values from head to tail.
	ToSlice() []T

	// CopySubList returns a new list with copies of the values in the
	// inclusive range [startIndex, endIndex].
	CopySubList(startIndex, endIndex int) (*List[T], error)
}

// Interface is the mutable capability of a linked list.
type Interface[T comparable] interface {
	Readonly[T]

	Clear()

	PushHead(value T)
	PushTail(value T)
	PushAt(index int, value T) error

	PopHead() (T, bool)
	PopTail() (T, bool)
	PopAt(index int) (T, error)

	PushSliceHead(values []T)
	PushSliceTail(values []T)
	PushSliceAt(index int, values []T) error

	CopyListHead(src Readonly[T])
	CopyListTail(src Readonly[T])
	CopyListAt(index int, src Readonly[T]) error

	PopSubList(startIndex, endIndex int) (*List[T], error)
}

// Doubly is the capability of a doubly linked list. It can take over
// the nodes of another list without copying them.
type Doubly[T comparable] interface {
	Interface[T]

	MoveListHead(src *List[T])
	MoveListTail(src *List[T])
	MoveListAt(index int, src *List[T]) error
}

var _ Doubly[int] = (*List[int])(nil)
