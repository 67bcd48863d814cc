package imageutil

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/chai2010/webp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// DefaultJPEGQuality is the quality used when EncodeOptions leaves it unset.
const DefaultJPEGQuality = 95

// ErrUnsupportedLayout is returned when an encoder is handed pixels in a
// layout it does not know.
var ErrUnsupportedLayout = errors.New("imageutil: unsupported color layout")

// EncodeOptions tunes the lossy encoders. A nil *EncodeOptions means
// defaults.
type EncodeOptions struct {
	JPEGQuality int
}

func (o *EncodeOptions) jpegQuality() int {
	if o == nil || o.JPEGQuality <= 0 || o.JPEGQuality > 100 {
		return DefaultJPEGQuality
	}
	return o.JPEGQuality
}

// Decode reads an image from r, detecting its container format from the
// content, and flattens it to a PixelGrid.
func Decode(r io.Reader) (*PixelGrid, Format, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	format, err := ParseFormat(name)
	if err != nil {
		return nil, "", err
	}
	grid, err := GridFromImage(img)
	if err != nil {
		return nil, "", err
	}
	return grid, format, nil
}

// LoadImage loads an image from the specified path.
// Supports PNG, JPEG, GIF, BMP, TIFF and WebP.
func LoadImage(path string) (*PixelGrid, Format, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Encode writes img to w in the given container format. WebP output is
// lossless.
func Encode(w io.Writer, img image.Image, format Format, opts *EncodeOptions) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: opts.jpegQuality()})
	case FormatGIF:
		return gif.Encode(w, img, nil)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case FormatWebP:
		return webp.Encode(w, img, &webp.Options{Lossless: true})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
	}
}

// SaveImage encodes img into path. The image is written to a temporary file
// in the destination directory and renamed into place, so a failed encode
// never leaves a partial file at path.
func SaveImage(img image.Image, path string, format Format, opts *EncodeOptions) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".imgweave-*")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if err := Encode(tmp, img, format, opts); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to flush file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to move file into place: %w", err)
	}
	return nil
}

// FileCodec decodes from and encodes to files on disk.
type FileCodec struct {
	Options EncodeOptions
}

// Decode loads the image at path.
func (c FileCodec) Decode(path string) (*PixelGrid, Format, error) {
	return LoadImage(path)
}

// Encode writes grid to path in format.
func (c FileCodec) Encode(path string, grid *PixelGrid, layout ColorLayout, format Format) error {
	if layout != LayoutRGB8 {
		return fmt.Errorf("%w: %s", ErrUnsupportedLayout, layout)
	}
	if want := grid.Width * grid.Height * layout.Channels(); len(grid.Pix) != want {
		return fmt.Errorf("%w: %dx%d needs %d bytes, got %d",
			ErrDataSize, grid.Width, grid.Height, want, len(grid.Pix))
	}
	opts := c.Options
	return SaveImage(grid.Image().RGBA, path, format, &opts)
}
