package list

import "github.com/pkg/errors"

var (
	// ErrInvalidIndex indicates an index less than 1.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrIndexOutOfRange indicates an index past the end of the list.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidRange indicates a sublist range whose start is greater than its end.
	ErrInvalidRange = errors.New("invalid range")

	// ErrCorruptState indicates a broken list invariant.
	// List operations panic with it instead of returning it.
	ErrCorruptState = errors.New("corrupt list state")
)

// CheckIndex validates the index of an existing element in a list of length elements.
func CheckIndex(index, length int) error {
	if index < 1 {
		return errors.Wrapf(ErrInvalidIndex, "index %d is less than 1", index)
	}

	if index > length {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, list has %d elements", index, length)
	}

	return nil
}

// CheckInsertIndex validates an index a new element may be inserted at
// in a list of length elements.
func CheckInsertIndex(index, length int) error {
	if index < 1 {
		return errors.Wrapf(ErrInvalidIndex, "index %d is less than 1", index)
	}

	if index > length+1 {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, list has %d elements", index, length)
	}

	return nil
}

// CheckRange validates the inclusive range [startIndex, endIndex]
// in a list of length elements.
func CheckRange(startIndex, endIndex, length int) error {
	if startIndex > endIndex {
		return errors.Wrapf(ErrInvalidRange, "start index %d is greater than end index %d", startIndex, endIndex)
	}

	if startIndex < 1 {
		return errors.Wrapf(ErrInvalidIndex, "start index %d is less than 1", startIndex)
	}

	if endIndex > length {
		return errors.Wrapf(ErrIndexOutOfRange, "end index %d, list has %d elements", endIndex, length)
	}

	return nil
}

func corrupt(index int) {
	panic(errors.Wrapf(ErrCorruptState, "failed to find index %d even though it is in bounds", index))
}
