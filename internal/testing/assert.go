package testing

import (
	"slices"

	"github.com/mgnsk/list"
	. "github.com/onsi/gomega"
)

// ExpectValues asserts that every view of l holds exactly values in order:
// the forward and backward sequences with their positions, the value
// sequences, the slice, the size and the head and tail peeks.
// It also validates the links of l.
func ExpectValues[T comparable](g Gomega, l *list.List[T], values ...T) {
	if values == nil {
		values = []T{}
	}

	g.Expect(l.Validate()).To(Succeed())

	g.Expect(l.Len()).To(Equal(len(values)))
	g.Expect(l.IsEmpty()).To(Equal(len(values) == 0))
	g.Expect(l.ToSlice()).To(Equal(values))

	forward := []T{}
	for i, v := range l.Forward() {
		g.Expect(i).To(Equal(len(forward)+1), "forward position")
		forward = append(forward, v)
	}
	g.Expect(forward).To(Equal(values))

	backward := []T{}
	for i, v := range l.Backward() {
		g.Expect(i).To(Equal(len(values)-len(backward)), "backward position")
		backward = append(backward, v)
	}
	slices.Reverse(backward)
	g.Expect(backward).To(Equal(values))

	g.Expect(append([]T{}, slices.Collect(l.Values())...)).To(Equal(values))

	backwardValues := append([]T{}, slices.Collect(l.BackwardValues())...)
	slices.Reverse(backwardValues)
	g.Expect(backwardValues).To(Equal(values))

	head, ok := l.PeekHead()
	tail, tailOk := l.PeekTail()
	g.Expect(ok).To(Equal(len(values) > 0))
	g.Expect(tailOk).To(Equal(len(values) > 0))

	if len(values) > 0 {
		g.Expect(head).To(Equal(values[0]))
		g.Expect(tail).To(Equal(values[len(values)-1]))
	}
}

// ExpectEmpty asserts that l has no elements.
func ExpectEmpty[T comparable](g Gomega, l *list.List[T]) {
	ExpectValues[T](g, l)
}
