package Array_View

import (
	"errors"
	"fmt"
)

// ErrNilSource 源不能为空错误
var ErrNilSource = errors.New("source must not be nil")

// ErrOutOfRange 越界错误
var ErrOutOfRange = errors.New("out of range")

// ErrInconsistentSequence 两次枚举长度不一致错误
var ErrInconsistentSequence = errors.New("sequence changed between enumeration passes")

// ErrInvalidState 枚举器状态错误
var ErrInvalidState = errors.New("invalid enumerator state")

func errNegative(name string, v int) error {
	return fmt.Errorf("%w: %s %d is negative", ErrOutOfRange, name, v)
}

// errOffsetBeyond is the "starts beyond the source" flavor of ErrOutOfRange.
func errOffsetBeyond(offset, length int) error {
	return fmt.Errorf("%w: offset %d is beyond source length %d", ErrOutOfRange, offset, length)
}

// errSpanPastEnd is the "extends past the source end" flavor of ErrOutOfRange.
func errSpanPastEnd(offset, spanLen, length int) error {
	return fmt.Errorf("%w: span [%d,%d) extends past source end %d", ErrOutOfRange, offset, offset+spanLen, length)
}

func errInconsistent(first, second int) error {
	return fmt.Errorf("%w: %d elements on the first pass, %d on the second", ErrInconsistentSequence, first, second)
}

// checkRange validates a half-open [offset, offset+length) window against a
// source of length n.
func checkRange(offset, length, n int) error {
	if offset < 0 {
		return errNegative("offset", offset)
	}
	if length < 0 {
		return errNegative("length", length)
	}
	if offset > n {
		return errOffsetBeyond(offset, n)
	}
	if offset+length > n {
		return errSpanPastEnd(offset, length, n)
	}
	return nil
}
