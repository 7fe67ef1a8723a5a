package list

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Validate checks the linkage of the list and returns every broken invariant.
// Each returned error wraps ErrCorruptState. Traversal is bounded by Len(),
// so Validate terminates on circular lists.
func (l *List[T]) Validate() error {
	var result *multierror.Error

	if (l.len == 0) != (l.head == nil) || (l.head == nil) != (l.tail == nil) {
		result = multierror.Append(result, errors.Wrapf(ErrCorruptState,
			"length %d, head present: %t, tail present: %t", l.len, l.head != nil, l.tail != nil))
		return result.ErrorOrNil()
	}

	if l.len < 0 {
		result = multierror.Append(result, errors.Wrapf(ErrCorruptState, "negative length %d", l.len))
		return result.ErrorOrNil()
	}

	if l.head == nil {
		return nil
	}

	if l.head.prev != nil {
		result = multierror.Append(result, errors.Wrap(ErrCorruptState, "head has a previous node"))
	}

	if l.tail.next != nil {
		result = multierror.Append(result, errors.Wrap(ErrCorruptState, "tail has a next node"))
	}

	count := 0
	last := l.head
	for n := l.head; n != nil && count <= l.len; n = n.next {
		count++
		if n.next != nil && n.next.prev != n {
			result = multierror.Append(result, errors.Wrapf(ErrCorruptState,
				"node at position %d is not the previous node of its next node", count))
		}
		last = n
	}

	if count != l.len || last != l.tail {
		result = multierror.Append(result, errors.Wrapf(ErrCorruptState,
			"forward walk from head reached %d nodes, want %d ending at tail", count, l.len))
	}

	count = 0
	first := l.tail
	for n := l.tail; n != nil && count <= l.len; n = n.prev {
		count++
		if n.prev != nil && n.prev.next != n {
			result = multierror.Append(result, errors.Wrapf(ErrCorruptState,
				"node at position %d from tail is not the next node of its previous node", count))
		}
		first = n
	}

	if count != l.len || first != l.head {
		result = multierror.Append(result, errors.Wrapf(ErrCorruptState,
			"backward walk from tail reached %d nodes, want %d ending at head", count, l.len))
	}

	return result.ErrorOrNil()
}
