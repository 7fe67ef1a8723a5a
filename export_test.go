package list

// MakeCircular links the tail of l back to its head.
func MakeCircular[T comparable](l *List[T]) {
	if l.head == nil {
		return
	}
	l.tail.next = l.head
	l.head.prev = l.tail
}

// BreakLink points the previous link of the node at index to itself.
func BreakLink[T comparable](l *List[T], index int) {
	n := l.seek(index)
	n.prev = n
}

// SetLen overwrites the recorded length of l.
func SetLen[T comparable](l *List[T], n int) {
	l.len = n
}
