package imgweave

import "fmt"

// Dimensions is a width and height in pixels. Dimensions are ordered by
// area, never lexicographically.
type Dimensions struct {
	Width  int
	Height int
}

// Area returns Width*Height, computed in 64 bits.
func (d Dimensions) Area() uint64 {
	return uint64(d.Width) * uint64(d.Height)
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Operand identifies which input of a reconciliation must be resized.
type Operand int

const (
	ResizeNone Operand = iota
	ResizeFirst
	ResizeSecond
)

func (o Operand) String() string {
	switch o {
	case ResizeFirst:
		return "first"
	case ResizeSecond:
		return "second"
	default:
		return "none"
	}
}

// Reconciliation is the common working size chosen for two images.
type Reconciliation struct {
	Target Dimensions
	Resize Operand
}

// Reconcile picks the smaller-area dimensions of a and b as the target;
// equal areas keep a. Images whose dimensions differ only in aspect ratio
// are not equal, so one of them is still resized to match the other.
func Reconcile(a, b Dimensions) Reconciliation {
	target := a
	if b.Area() < a.Area() {
		target = b
	}

	switch {
	case a == b:
		return Reconciliation{Target: target, Resize: ResizeNone}
	case target == a:
		return Reconciliation{Target: target, Resize: ResizeSecond}
	default:
		return Reconciliation{Target: target, Resize: ResizeFirst}
	}
}
