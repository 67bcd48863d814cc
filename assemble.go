package imgweave

import (
	"errors"
	"fmt"

	"github.com/wbrown/imgweave/imageutil"
)

// LegacyCapacity is the fixed output capacity, in bytes, of the first
// versions of the tool. Pass it as Options.Capacity to reproduce that limit.
const LegacyCapacity = 3_655_744

// RequiredCapacity returns the exact number of bytes an RGB image of the
// given size occupies.
func RequiredCapacity(width, height int) int {
	return width * height * imageutil.Channels
}

// Encoder writes a pixel grid to path in the given container format.
type Encoder interface {
	Encode(path string, grid *imageutil.PixelGrid, layout imageutil.ColorLayout, format imageutil.Format) error
}

// CombinedImage is the woven output waiting to be encoded. Data is set at
// most once and must fit the capacity declared at construction.
type CombinedImage struct {
	Width  int
	Height int
	Name   string
	Format imageutil.Format

	data []byte
}

// NewCombinedImage pre-allocates an output image holding up to capacity
// bytes.
func NewCombinedImage(width, height int, name string, format imageutil.Format, capacity int) *CombinedImage {
	return &CombinedImage{
		Width:  width,
		Height: height,
		Name:   name,
		Format: format,
		data:   make([]byte, 0, capacity),
	}
}

// Capacity returns the declared capacity in bytes.
func (c *CombinedImage) Capacity() int {
	return cap(c.data)
}

// Data returns the held pixel bytes.
func (c *CombinedImage) Data() []byte {
	return c.data
}

// SetData replaces the held buffer with data. Nothing is written when data
// does not fit the declared capacity.
func (c *CombinedImage) SetData(data []byte) error {
	if len(data) > cap(c.data) {
		return fmt.Errorf("%w: %d bytes of data, capacity %d", ErrBufferTooSmall, len(data), cap(c.data))
	}
	c.data = data
	return nil
}

// Grid returns the held data as a pixel grid.
func (c *CombinedImage) Grid() (*imageutil.PixelGrid, error) {
	return imageutil.NewPixelGrid(c.Width, c.Height, c.data)
}

// Encode hands the image to enc as 8-bit RGB in the image's format.
func (c *CombinedImage) Encode(enc Encoder) error {
	if len(c.data) == 0 {
		return fmt.Errorf("%w: %s has no data", ErrEncode, c.Name)
	}
	grid, err := c.Grid()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if err := enc.Encode(c.Name, grid, imageutil.LayoutRGB8, c.Format); err != nil {
		if errors.Is(err, ErrEncode) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}
