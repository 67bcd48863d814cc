package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wbrown/imgweave"
	"github.com/wbrown/imgweave/imageutil"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "imgweave <image-one> <image-two> <output>",
		Short: "Weave two images together by alternating pixel blocks",
		Long: "imgweave resizes the larger of two images to the size of the smaller one\n" +
			"and writes an image made of alternating byte blocks from each source.\n" +
			"Both inputs must use the same container format; the output is written in it.",
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runWeave,
	}

	cmd.Flags().Int("stride", imgweave.DefaultStride, "Interleaved block size in bytes")
	cmd.Flags().String("resizer", "draw",
		"Resize backend ("+strings.Join(imageutil.ResizerNames(), ", ")+")")
	cmd.Flags().Int("capacity", 0, "Output capacity in bytes (0 = exact size of the result)")
	cmd.Flags().Int("quality", imageutil.DefaultJPEGQuality, "JPEG quality (1-100)")
	cmd.Flags().BoolP("verbose", "v", false, "Log every pipeline stage")
	return cmd
}

func runWeave(cmd *cobra.Command, args []string) error {
	stride, _ := cmd.Flags().GetInt("stride")
	resizerName, _ := cmd.Flags().GetString("resizer")
	capacity, _ := cmd.Flags().GetInt("capacity")
	quality, _ := cmd.Flags().GetInt("quality")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if stride <= 0 {
		return fmt.Errorf("--stride must be positive, got %d", stride)
	}
	if capacity < 0 {
		return fmt.Errorf("--capacity must not be negative, got %d", capacity)
	}
	if quality < 1 || quality > 100 {
		return fmt.Errorf("--quality must be between 1 and 100, got %d", quality)
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	imgweave.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	resizer, err := imageutil.NewResizer(resizerName)
	if err != nil {
		return err
	}

	result, err := imgweave.Run(args[0], args[1], args[2], imgweave.Options{
		Stride:   stride,
		Capacity: capacity,
		Resizer:  resizer,
		Codec:    imageutil.FileCodec{Options: imageutil.EncodeOptions{JPEGQuality: quality}},
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wove %s + %s → %s (%s %s, resized %s)\n",
		args[0], args[1], result.Output, result.Target, result.Format, result.Resized)
	return nil
}
