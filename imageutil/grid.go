package imageutil

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// Channels is the number of bytes stored per pixel in a PixelGrid.
const Channels = 3

var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("imageutil: invalid dimensions")

	// ErrDataSize is returned when a pixel buffer does not hold exactly
	// width*height*Channels bytes.
	ErrDataSize = errors.New("imageutil: pixel buffer size mismatch")
)

var _ image.Image = (*PixelGrid)(nil)

// PixelGrid is a decoded raster flattened to row-major R,G,B bytes.
// Pix always holds exactly Width*Height*Channels bytes.
type PixelGrid struct {
	Width  int
	Height int
	Pix    []byte
}

// NewPixelGrid wraps pix as a grid. The slice is not copied.
func NewPixelGrid(width, height int, pix []byte) (*PixelGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if want := width * height * Channels; len(pix) != want {
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes, got %d",
			ErrDataSize, width, height, want, len(pix))
	}
	return &PixelGrid{Width: width, Height: height, Pix: pix}, nil
}

// GridFromImage flattens img to 3-channel RGB. Alpha is discarded.
func GridFromImage(img image.Image) (*PixelGrid, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	pix := make([]byte, width*height*Channels)
	i := 0
	switch src := img.(type) {
	case *image.NRGBA:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			row := src.Pix[src.PixOffset(bounds.Min.X, y):]
			for x := 0; x < width; x++ {
				copy(pix[i:i+Channels], row[x*4:x*4+Channels])
				i += Channels
			}
		}
	default:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				c := RGBFromColor(img.At(x, y))
				pix[i], pix[i+1], pix[i+2] = c.R, c.G, c.B
				i += Channels
			}
		}
	}
	return &PixelGrid{Width: width, Height: height, Pix: pix}, nil
}

// Image expands the grid into an opaque RGBAImage.
func (g *PixelGrid) Image() *RGBAImage {
	img := NewRGBAImage(g.Width, g.Height)
	for i, j := 0, 0; i < len(g.Pix); i, j = i+Channels, j+4 {
		img.Pix[j] = g.Pix[i]
		img.Pix[j+1] = g.Pix[i+1]
		img.Pix[j+2] = g.Pix[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}

// RGBAt returns the pixel at (x, y).
func (g *PixelGrid) RGBAt(x, y int) RGB {
	i := (y*g.Width + x) * Channels
	return RGB{R: g.Pix[i], G: g.Pix[i+1], B: g.Pix[i+2]}
}

// Bounds returns the grid rectangle anchored at the origin.
func (g *PixelGrid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Width, g.Height)
}

// ColorModel reports the opaque RGBA model the grid converts to.
func (g *PixelGrid) ColorModel() color.Model {
	return color.RGBAModel
}

// At implements image.Image.
func (g *PixelGrid) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(g.Bounds()) {
		return color.RGBA{}
	}
	return g.RGBAt(x, y).ToColor()
}
