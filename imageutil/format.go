package imageutil

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for container formats imageutil cannot
// decode or encode.
var ErrUnsupportedFormat = errors.New("imageutil: unsupported format")

// Format names a container format. Values match the names registered with
// the standard image package, so the name returned by image.Decode parses
// directly.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatGIF  Format = "gif"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
	FormatWebP Format = "webp"
)

var formatExtensions = map[Format][]string{
	FormatPNG:  {".png"},
	FormatJPEG: {".jpg", ".jpeg"},
	FormatGIF:  {".gif"},
	FormatBMP:  {".bmp"},
	FormatTIFF: {".tif", ".tiff"},
	FormatWebP: {".webp"},
}

// ParseFormat maps a registered decoder name to a Format.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(name))
	if _, ok := formatExtensions[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	return f, nil
}

// FormatFromPath guesses a format from the file extension of path.
func FormatFromPath(path string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	for f, exts := range formatExtensions {
		for _, e := range exts {
			if e == ext {
				return f, true
			}
		}
	}
	return "", false
}

// Extensions returns the file extensions conventionally used for f.
func (f Format) Extensions() []string {
	return formatExtensions[f]
}

func (f Format) String() string {
	return string(f)
}

// ColorLayout describes how pixel bytes handed to an encoder are arranged.
type ColorLayout int

const (
	// LayoutRGB8 is three 8-bit channels per pixel, R then G then B.
	LayoutRGB8 ColorLayout = iota
)

// Channels returns the number of bytes per pixel in the layout.
func (l ColorLayout) Channels() int {
	switch l {
	case LayoutRGB8:
		return Channels
	default:
		return 0
	}
}

func (l ColorLayout) String() string {
	switch l {
	case LayoutRGB8:
		return "rgb8"
	default:
		return fmt.Sprintf("ColorLayout(%d)", int(l))
	}
}
