package list_test

import (
	"github.com/mgnsk/list"
	. "github.com/mgnsk/list/internal/testing"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("extracting sublists", func() {
	var l *list.List[string]

	BeforeEach(func() {
		l = list.New("a", "b", "c", "d", "e")
	})

	DescribeTable("copying a range",
		func(start, end int, expected ...string) {
			sub, err := l.CopySubList(start, end)
			Expect(err).NotTo(HaveOccurred())

			ExpectValues(Default, sub, expected...)
			ExpectValues(Default, l, "a", "b", "c", "d", "e")
		},
		Entry("a single element", 3, 3, "c"),
		Entry("from the head", 1, 2, "a", "b"),
		Entry("the middle", 2, 4, "b", "c", "d"),
		Entry("to the tail", 4, 5, "d", "e"),
		Entry("the whole list", 1, 5, "a", "b", "c", "d", "e"),
	)

	DescribeTable("popping a range",
		func(start, end int, expected, remaining []string) {
			sizeBefore := l.Len()

			sub, err := l.PopSubList(start, end)
			Expect(err).NotTo(HaveOccurred())

			ExpectValues(Default, sub, expected...)
			ExpectValues(Default, l, remaining...)
			Expect(sub.Len() + l.Len()).To(Equal(sizeBefore))
		},
		Entry("a single element", 3, 3, []string{"c"}, []string{"a", "b", "d", "e"}),
		Entry("from the head", 1, 2, []string{"a", "b"}, []string{"c", "d", "e"}),
		Entry("the middle", 2, 4, []string{"b", "c", "d"}, []string{"a", "e"}),
		Entry("to the tail", 4, 5, []string{"d", "e"}, []string{"a", "b", "c"}),
		Entry("the whole list", 1, 5, []string{"a", "b", "c", "d", "e"}, []string{}),
	)

	DescribeTable("invalid ranges",
		func(start, end int, kind error) {
			_, err := l.CopySubList(start, end)
			Expect(err).To(MatchError(kind))

			_, err = l.PopSubList(start, end)
			Expect(err).To(MatchError(kind))

			ExpectValues(Default, l, "a", "b", "c", "d", "e")
		},
		Entry("start after end", 3, 2, list.ErrInvalidRange),
		Entry("start after end and out of range", 7, 6, list.ErrInvalidRange),
		Entry("start below 1", 0, 2, list.ErrInvalidIndex),
		Entry("end past the tail", 4, 6, list.ErrIndexOutOfRange),
	)

	When("the sublist is popped", func() {
		Specify("moving it back restores the list", func() {
			sub, err := l.PopSubList(2, 3)
			Expect(err).NotTo(HaveOccurred())

			Expect(l.MoveListAt(2, sub)).To(Succeed())

			ExpectValues(Default, l, "a", "b", "c", "d", "e")
			ExpectEmpty(Default, sub)
		})

		Specify("both lists stay usable", func() {
			sub, err := l.PopSubList(2, 4)
			Expect(err).NotTo(HaveOccurred())

			sub.PushHead("x")
			sub.PushTail("y")
			l.PushTail("f")

			ExpectValues(Default, sub, "x", "b", "c", "d", "y")
			ExpectValues(Default, l, "a", "e", "f")
		})
	})

	When("the list is empty", func() {
		Specify("every range is out of range", func() {
			var empty list.List[string]

			_, err := empty.CopySubList(1, 1)
			Expect(err).To(MatchError(list.ErrIndexOutOfRange))

			_, err = empty.PopSubList(1, 1)
			Expect(err).To(MatchError(list.ErrIndexOutOfRange))
		})
	})
})
