package imgweave

import "fmt"

// DefaultStride is the block size in bytes used by the weave. A period of
// two blocks (8 bytes) takes one block from each source.
const DefaultStride = 4

// Interleaver alternates fixed-size blocks from two equal-length buffers.
// The block starting at offset i comes from the first buffer when
// i%(2*Stride) == 0 and from the second buffer otherwise. Blocks are
// substituted whole; pixel values are never blended.
type Interleaver struct {
	Stride int
}

// NewInterleaver returns an Interleaver with the given stride.
func NewInterleaver(stride int) (*Interleaver, error) {
	if stride <= 0 {
		return nil, fmt.Errorf("%w: stride must be positive, got %d", ErrOutOfRange, stride)
	}
	return &Interleaver{Stride: stride}, nil
}

// Check reports whether a and b can be interleaved without reading past
// either buffer.
func (il *Interleaver) Check(a, b []byte) error {
	if il.Stride <= 0 {
		return fmt.Errorf("%w: stride must be positive, got %d", ErrOutOfRange, il.Stride)
	}
	if len(a) != len(b) {
		return fmt.Errorf("%w: buffer lengths differ (%d and %d)", ErrOutOfRange, len(a), len(b))
	}
	if len(a)%il.Stride != 0 {
		return fmt.Errorf("%w: length %d is not a multiple of stride %d (last block would read to %d)",
			ErrOutOfRange, len(a), il.Stride, len(a)-len(a)%il.Stride+il.Stride)
	}
	return nil
}

// Interleave returns a new buffer built from alternating blocks of a and b.
// Neither input is modified.
func (il *Interleaver) Interleave(a, b []byte) ([]byte, error) {
	if err := il.Check(a, b); err != nil {
		return nil, err
	}

	out := make([]byte, len(a))
	period := 2 * il.Stride
	for i := 0; i < len(a); i += il.Stride {
		src := b
		if i%period == 0 {
			src = a
		}
		copy(out[i:i+il.Stride], src[i:i+il.Stride])
	}
	return out, nil
}
