package list

// CopySubList returns a new list with copies of the values in the inclusive
// range [startIndex, endIndex]. The list is not modified.
func (l *List[T]) CopySubList(startIndex, endIndex int) (*List[T], error) {
	if err := CheckRange(startIndex, endIndex, l.len); err != nil {
		return nil, err
	}

	var c chain[T]

	// Stop on the range end rather than a nil link.
	for i, n := range l.nodes() {
		if i > endIndex {
			break
		}
		if i >= startIndex {
			c.push(n.value)
		}
	}

	sub := &List[T]{}
	sub.insertChain(nil, nil, c)

	return sub, nil
}

// PopSubList removes the elements in the inclusive range [startIndex, endIndex]
// and returns them as a new list. The nodes are relinked, not copied.
func (l *List[T]) PopSubList(startIndex, endIndex int) (*List[T], error) {
	if err := CheckRange(startIndex, endIndex, l.len); err != nil {
		return nil, err
	}

	var (
		priorToStart *node[T]
		afterEnd     *node[T]
		c            chain[T]
	)

	for i, n := range l.nodes() {
		if i > l.len {
			break
		}

		if i < startIndex {
			priorToStart = n
		} else if i == startIndex {
			c.head = n
			c.tail = n
		} else if i <= endIndex {
			c.tail = n
		} else {
			afterEnd = n
			break
		}
	}

	c.head.prev = nil
	c.tail.next = nil

	if priorToStart != nil {
		priorToStart.next = afterEnd
	} else {
		l.head = afterEnd
	}

	if afterEnd != nil {
		afterEnd.prev = priorToStart
	} else {
		l.tail = priorToStart
	}

	c.len = endIndex - startIndex + 1
	l.len -= c.len

	sub := &List[T]{}
	sub.insertChain(nil, nil, c)

	return sub, nil
}
