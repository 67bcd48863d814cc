package imgweave

import (
	"bytes"
	"errors"
	"testing"
)

func sequence(start byte, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = start + byte(i)
	}
	return b
}

func TestInterleaveAlternatesBlocks(t *testing.T) {
	a := sequence(0, 24)
	b := sequence(100, 24)

	il := &Interleaver{Stride: DefaultStride}
	got, err := il.Interleave(a, b)
	if err != nil {
		t.Fatalf("Interleave: %v", err)
	}

	want := make([]byte, 0, 24)
	want = append(want, a[0:4]...)
	want = append(want, b[4:8]...)
	want = append(want, a[8:12]...)
	want = append(want, b[12:16]...)
	want = append(want, a[16:20]...)
	want = append(want, b[20:24]...)
	if !bytes.Equal(got, want) {
		t.Errorf("Interleave =\n%v\nwant\n%v", got, want)
	}
}

func TestInterleavePeriod(t *testing.T) {
	a := bytes.Repeat([]byte{0xAA}, 64)
	b := bytes.Repeat([]byte{0xBB}, 64)

	got, err := (&Interleaver{Stride: 4}).Interleave(a, b)
	if err != nil {
		t.Fatalf("Interleave: %v", err)
	}
	for i := 0; i < len(got); i += 8 {
		if !bytes.Equal(got[i:i+4], a[i:i+4]) {
			t.Errorf("bytes [%d:%d) should come from the first buffer", i, i+4)
		}
		if !bytes.Equal(got[i+4:i+8], b[i+4:i+8]) {
			t.Errorf("bytes [%d:%d) should come from the second buffer", i+4, i+8)
		}
	}
}

func TestInterleaveIsNotCommutative(t *testing.T) {
	a := sequence(0, 32)
	b := sequence(50, 32)
	il := &Interleaver{Stride: DefaultStride}

	ab, err := il.Interleave(a, b)
	if err != nil {
		t.Fatalf("Interleave(a, b): %v", err)
	}
	ba, err := il.Interleave(b, a)
	if err != nil {
		t.Fatalf("Interleave(b, a): %v", err)
	}
	if bytes.Equal(ab, ba) {
		t.Error("Interleave(a, b) should differ from Interleave(b, a)")
	}
}

func TestInterleaveDoesNotMutateInputs(t *testing.T) {
	a := sequence(0, 16)
	b := sequence(16, 16)
	aCopy := append([]byte(nil), a...)
	bCopy := append([]byte(nil), b...)

	out, err := (&Interleaver{Stride: 4}).Interleave(a, b)
	if err != nil {
		t.Fatalf("Interleave: %v", err)
	}
	if !bytes.Equal(a, aCopy) || !bytes.Equal(b, bCopy) {
		t.Error("inputs were modified")
	}
	out[0] = 0xFF
	if a[0] == 0xFF {
		t.Error("output aliases the first input")
	}
}

func TestInterleaveCustomStride(t *testing.T) {
	a := sequence(0, 12)
	b := sequence(100, 12)

	got, err := (&Interleaver{Stride: 3}).Interleave(a, b)
	if err != nil {
		t.Fatalf("Interleave: %v", err)
	}
	want := []byte{0, 1, 2, 103, 104, 105, 6, 7, 8, 109, 110, 111}
	if !bytes.Equal(got, want) {
		t.Errorf("Interleave = %v, want %v", got, want)
	}
}

func TestInterleaveRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		stride int
		a, b   []byte
	}{
		{"length not a multiple of stride", 4, make([]byte, 6), make([]byte, 6)},
		{"one byte short of a block", 4, make([]byte, 23), make([]byte, 23)},
		{"lengths differ", 4, make([]byte, 8), make([]byte, 16)},
		{"second shorter", 4, make([]byte, 16), make([]byte, 12)},
		{"zero stride", 0, make([]byte, 8), make([]byte, 8)},
		{"negative stride", -4, make([]byte, 8), make([]byte, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			il := &Interleaver{Stride: tt.stride}
			out, err := il.Interleave(tt.a, tt.b)
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("Interleave error = %v, want ErrOutOfRange", err)
			}
			if out != nil {
				t.Error("no output should be produced on error")
			}
		})
	}
}

func TestInterleaveEmpty(t *testing.T) {
	out, err := (&Interleaver{Stride: 4}).Interleave(nil, nil)
	if err != nil {
		t.Fatalf("Interleave: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected empty output, got %d bytes", len(out))
	}
}

func TestNewInterleaver(t *testing.T) {
	if _, err := NewInterleaver(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("NewInterleaver(0) error = %v, want ErrOutOfRange", err)
	}
	il, err := NewInterleaver(6)
	if err != nil {
		t.Fatalf("NewInterleaver(6): %v", err)
	}
	if il.Stride != 6 {
		t.Errorf("Stride = %d, want 6", il.Stride)
	}
}
