package list

// PushSliceHead inserts values at the head of the list, keeping their order.
func (l *List[T]) PushSliceHead(values []T) {
	l.insertChain(nil, l.head, sliceChain(values))
}

// PushSliceTail inserts values at the tail of the list, keeping their order.
func (l *List[T]) PushSliceTail(values []T) {
	l.insertChain(l.tail, nil, sliceChain(values))
}

// PushSliceAt inserts values so that the first of them becomes the element at index.
// Valid indexes are 1 through Len()+1.
func (l *List[T]) PushSliceAt(index int, values []T) error {
	if err := CheckInsertIndex(index, l.len); err != nil {
		return err
	}

	if len(values) == 0 {
		return nil
	}

	prev, next := l.neighbors(index)
	l.insertChain(prev, next, sliceChain(values))

	return nil
}

// CopyListHead inserts copies of the values of src at the head of the list.
// src is not modified.
func (l *List[T]) CopyListHead(src Readonly[T]) {
	l.insertChain(nil, l.head, copyChain(src))
}

// CopyListTail inserts copies of the values of src at the tail of the list.
// src is not modified.
func (l *List[T]) CopyListTail(src Readonly[T]) {
	l.insertChain(l.tail, nil, copyChain(src))
}

// CopyListAt inserts copies of the values of src so that the first of them
// becomes the element at index. src is not modified.
func (l *List[T]) CopyListAt(index int, src Readonly[T]) error {
	if err := CheckInsertIndex(index, l.len); err != nil {
		return err
	}

	if src.IsEmpty() {
		return nil
	}

	c := copyChain(src)
	prev, next := l.neighbors(index)
	l.insertChain(prev, next, c)

	return nil
}

// MoveListHead moves all elements of src to the head of the list and clears src.
// The nodes of src are relinked, not copied.
func (l *List[T]) MoveListHead(src *List[T]) {
	l.insertChain(nil, l.head, l.take(src))
}

// MoveListTail moves all elements of src to the tail of the list and clears src.
// The nodes of src are relinked, not copied.
func (l *List[T]) MoveListTail(src *List[T]) {
	l.insertChain(l.tail, nil, l.take(src))
}

// MoveListAt moves all elements of src into the list so that the head of src
// becomes the element at index, and clears src.
// The nodes of src are relinked, not copied.
func (l *List[T]) MoveListAt(index int, src *List[T]) error {
	if err := CheckInsertIndex(index, l.len); err != nil {
		return err
	}

	if src == l || src.IsEmpty() {
		return nil
	}

	prev, next := l.neighbors(index)
	l.insertChain(prev, next, l.take(src))

	return nil
}

// take detaches the whole node chain of src. Taking from l itself yields an empty chain.
func (l *List[T]) take(src *List[T]) chain[T] {
	if src == l {
		return chain[T]{}
	}

	c := chain[T]{
		head: src.head,
		tail: src.tail,
		len:  src.len,
	}

	src.Clear()

	return c
}

func sliceChain[T any](values []T) (c chain[T]) {
	for _, v := range values {
		c.push(v)
	}
	return c
}

// copyChain copies at most src.Len() values so that a circular src
// does not loop forever.
func copyChain[T comparable](src Readonly[T]) (c chain[T]) {
	n := src.Len()
	if n == 0 {
		return c
	}

	for i, v := range src.Forward() {
		if i > n {
			break
		}
		c.push(v)
	}

	return c
}
