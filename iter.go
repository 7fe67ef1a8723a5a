package list

import "iter"

// Forward returns a sequence of 1-based positions and values from head to tail.
//
// Each call returns an independent sequence. The sequence follows links,
// so the list must not be changed while ranging over it.
func (l *List[T]) Forward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, n := range l.nodes() {
			if !yield(i, n.value) {
				return
			}
		}
	}
}

// Backward returns a sequence of 1-based positions and values from tail to head.
//
// Each call returns an independent sequence. The sequence follows links,
// so the list must not be changed while ranging over it.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, n := range l.nodesBackward() {
			if !yield(i, n.value) {
				return
			}
		}
	}
}

// Values returns a sequence of values from head to tail.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, n := range l.nodes() {
			if !yield(n.value) {
				return
			}
		}
	}
}

// BackwardValues returns a sequence of values from tail to head.
func (l *List[T]) BackwardValues() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, n := range l.nodesBackward() {
			if !yield(n.value) {
				return
			}
		}
	}
}

// nodes iterates nodes from head until a nil link.
func (l *List[T]) nodes() iter.Seq2[int, *node[T]] {
	return func(yield func(int, *node[T]) bool) {
		index := 0
		for n := l.head; n != nil; n = n.next {
			index++
			if !yield(index, n) {
				return
			}
		}
	}
}

// nodesBackward iterates nodes from tail until a nil link.
func (l *List[T]) nodesBackward() iter.Seq2[int, *node[T]] {
	return func(yield func(int, *node[T]) bool) {
		index := l.len + 1
		for n := l.tail; n != nil; n = n.prev {
			index--
			if !yield(index, n) {
				return
			}
		}
	}
}
