package imgweave

import "errors"

// Errors reported by a weave run. Every one of them aborts the run; callers
// match them with errors.Is.
var (
	// ErrDecode is returned when an input cannot be read or its format is
	// not supported.
	ErrDecode = errors.New("imgweave: cannot decode input")

	// ErrIncompatibleFormat is returned when the two inputs were encoded in
	// different container formats.
	ErrIncompatibleFormat = errors.New("imgweave: inputs have different formats")

	// ErrBufferTooSmall is returned when combined data exceeds the capacity
	// declared for the output image.
	ErrBufferTooSmall = errors.New("imgweave: output buffer too small")

	// ErrOutOfRange is returned when a block copy would read outside a
	// buffer.
	ErrOutOfRange = errors.New("imgweave: block out of range")

	// ErrEncode is returned when the output cannot be written.
	ErrEncode = errors.New("imgweave: cannot encode output")
)
