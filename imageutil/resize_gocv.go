//go:build gocv

package imageutil

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

func init() {
	registerResizer("opencv", func() Resizer { return OpenCVResizer{} })
}

// OpenCVResizer resamples with OpenCV's INTER_LINEAR through gocv. It is
// only compiled with the gocv build tag since it needs OpenCV installed.
type OpenCVResizer struct{}

// Resize implements Resizer.
func (OpenCVResizer) Resize(g *PixelGrid, width, height int) (*PixelGrid, error) {
	if err := checkTarget(width, height); err != nil {
		return nil, err
	}
	src := gridToMat(g)
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()
	gocv.Resize(src, &dst, image.Point{X: width, Y: height}, 0, 0, gocv.InterpolationLinear)
	if dst.Cols() != width || dst.Rows() != height {
		return nil, fmt.Errorf("opencv resize produced %dx%d, want %dx%d",
			dst.Cols(), dst.Rows(), width, height)
	}
	return matToGrid(dst)
}

// gridToMat converts a grid to a BGR gocv.Mat.
func gridToMat(g *PixelGrid) gocv.Mat {
	mat := gocv.NewMatWithSize(g.Height, g.Width, gocv.MatTypeCV8UC3)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := g.RGBAt(x, y)
			mat.SetUCharAt(y, x*3, c.B)
			mat.SetUCharAt(y, x*3+1, c.G)
			mat.SetUCharAt(y, x*3+2, c.R)
		}
	}
	return mat
}

// matToGrid converts a BGR gocv.Mat back to a grid.
func matToGrid(mat gocv.Mat) (*PixelGrid, error) {
	height, width := mat.Rows(), mat.Cols()
	pix := make([]byte, 0, width*height*Channels)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := mat.GetVecbAt(y, x)
			pix = append(pix, v[2], v[1], v[0])
		}
	}
	return NewPixelGrid(width, height, pix)
}
