package imgweave

import (
	"fmt"
	"log/slog"

	"github.com/wbrown/imgweave/imageutil"
)

// Decoder reads an image file into a pixel grid and reports its container
// format.
type Decoder interface {
	Decode(path string) (*imageutil.PixelGrid, imageutil.Format, error)
}

// Codec is the image I/O collaborator a run reads from and writes to.
type Codec interface {
	Decoder
	Encoder
}

// Options controls a weave run. Zero fields take the defaults from
// DefaultOptions.
type Options struct {
	// Stride is the interleaved block size in bytes.
	Stride int
	// Capacity is the declared output capacity in bytes. Zero means the
	// exact size of the reconciled image.
	Capacity int
	// Resizer brings the larger input to the target dimensions.
	Resizer imageutil.Resizer
	// Codec decodes the inputs and encodes the output.
	Codec Codec
}

// DefaultOptions returns the options of the classic weave: 4-byte blocks,
// exact capacity, bilinear resizing and file I/O.
func DefaultOptions() Options {
	return Options{
		Stride:  DefaultStride,
		Resizer: imageutil.DrawResizer{Interpolation: imageutil.InterpolationLinear},
		Codec:   imageutil.FileCodec{},
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Stride == 0 {
		o.Stride = def.Stride
	}
	if o.Resizer == nil {
		o.Resizer = def.Resizer
	}
	if o.Codec == nil {
		o.Codec = def.Codec
	}
	return o
}

// Result describes a completed run.
type Result struct {
	Output  string
	Format  imageutil.Format
	Target  Dimensions
	Resized Operand
	Bytes   int
}

// Run weaves the images at imageOne and imageTwo into output. The output
// is written in the container format shared by both inputs. Any failure
// aborts the run before the output is written.
func Run(imageOne, imageTwo, output string, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	log := Logger()

	// 1. Decode both inputs
	first, firstFormat, err := decode(opts.Codec, imageOne)
	if err != nil {
		return nil, err
	}
	second, secondFormat, err := decode(opts.Codec, imageTwo)
	if err != nil {
		return nil, err
	}

	// 2. Both inputs must share a container format
	if firstFormat != secondFormat {
		return nil, fmt.Errorf("format: %w: %s is %s, %s is %s",
			ErrIncompatibleFormat, imageOne, firstFormat, imageTwo, secondFormat)
	}

	// 3. Reconcile sizes and interleave
	rec, combined, err := weave(first, second, opts)
	if err != nil {
		return nil, err
	}

	// 4. Assemble against the declared capacity
	capacity := opts.Capacity
	if capacity <= 0 {
		capacity = RequiredCapacity(rec.Target.Width, rec.Target.Height)
	}
	out := NewCombinedImage(rec.Target.Width, rec.Target.Height, output, firstFormat, capacity)
	if err := out.SetData(combined); err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}

	// 5. Encode
	if f, ok := imageutil.FormatFromPath(output); !ok || f != firstFormat {
		log.Warn("output extension does not match the input format",
			slog.String("output", output),
			slog.String("format", firstFormat.String()),
			slog.Any("extensions", firstFormat.Extensions()))
	}
	if err := out.Encode(opts.Codec); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	log.Info("wrote output",
		slog.String("path", output),
		slog.String("format", firstFormat.String()),
		slog.String("size", rec.Target.String()))

	return &Result{
		Output:  output,
		Format:  firstFormat,
		Target:  rec.Target,
		Resized: rec.Resize,
		Bytes:   len(combined),
	}, nil
}

func decode(dec Decoder, path string) (*imageutil.PixelGrid, imageutil.Format, error) {
	grid, format, err := dec.Decode(path)
	if err != nil {
		return nil, "", fmt.Errorf("decode: %w: %s: %w", ErrDecode, path, err)
	}
	Logger().Info("decoded input",
		slog.String("path", path),
		slog.String("format", format.String()),
		slog.Int("width", grid.Width),
		slog.Int("height", grid.Height))
	return grid, format, nil
}

func gridDimensions(g *imageutil.PixelGrid) Dimensions {
	return Dimensions{Width: g.Width, Height: g.Height}
}

// applyReconciliation resizes whichever grid rec names to the target.
func applyReconciliation(r imageutil.Resizer, rec Reconciliation, first, second *imageutil.PixelGrid) (*imageutil.PixelGrid, *imageutil.PixelGrid, error) {
	var err error
	switch rec.Resize {
	case ResizeFirst:
		first, err = r.Resize(first, rec.Target.Width, rec.Target.Height)
	case ResizeSecond:
		second, err = r.Resize(second, rec.Target.Width, rec.Target.Height)
	}
	if err != nil {
		return nil, nil, err
	}
	for _, g := range []*imageutil.PixelGrid{first, second} {
		if got := gridDimensions(g); got != rec.Target {
			return nil, nil, fmt.Errorf("resized grid is %s, want %s", got, rec.Target)
		}
	}
	return first, second, nil
}

// Weave reconciles two in-memory grids and interleaves them, returning the
// combined grid at the target size.
func Weave(first, second *imageutil.PixelGrid, opts Options) (*imageutil.PixelGrid, error) {
	rec, combined, err := weave(first, second, opts.withDefaults())
	if err != nil {
		return nil, err
	}
	return imageutil.NewPixelGrid(rec.Target.Width, rec.Target.Height, combined)
}

func weave(first, second *imageutil.PixelGrid, opts Options) (Reconciliation, []byte, error) {
	log := Logger()

	il, err := NewInterleaver(opts.Stride)
	if err != nil {
		return Reconciliation{}, nil, fmt.Errorf("interleave: %w", err)
	}

	rec := Reconcile(gridDimensions(first), gridDimensions(second))
	log.Info("reconciled dimensions",
		slog.String("target", rec.Target.String()),
		slog.String("resize", rec.Resize.String()))
	first, second, err = applyReconciliation(opts.Resizer, rec, first, second)
	if err != nil {
		return Reconciliation{}, nil, fmt.Errorf("resize: %w", err)
	}

	combined, err := il.Interleave(first.Pix, second.Pix)
	if err != nil {
		return Reconciliation{}, nil, fmt.Errorf("interleave: %w", err)
	}
	log.Debug("interleaved buffers", slog.Int("bytes", len(combined)), slog.Int("stride", il.Stride))
	return rec, combined, nil
}
