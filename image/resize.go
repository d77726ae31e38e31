package image

import (
	"fmt"
	"image"

	"github.com/nfnt/resize"
)

// ResizeOption ...
type ResizeOption struct {
	Width    uint // target width
	MinWidth uint // with Gated, originals at or above it are left alone
	Gated    bool
	WriteOption

	ctWidth, ctHeight uint
}

func (ropt ResizeOption) String() string {
	return fmt.Sprintf("w%d min%d q%d", ropt.Width, ropt.MinWidth, ropt.Quality)
}

// NeedResize reports whether an original of width ow passes the minimum width gate.
func (ropt ResizeOption) NeedResize(ow uint) bool {
	return !ropt.Gated || ow < ropt.MinWidth
}

// TargetSize keeps the aspect ratio: the height is t*h/w truncated.
func TargetSize(w, h, t uint) (uint, uint) {
	if w == 0 {
		return t, 0
	}
	return t, uint(uint64(t) * uint64(h) / uint64(w))
}

func (ropt *ResizeOption) calc(ow, oh uint) error {
	if ow == 0 || oh == 0 || ropt.Width == 0 {
		return ErrZeroDimension
	}
	ropt.ctWidth, ropt.ctHeight = TargetSize(ow, oh, ropt.Width)
	if ropt.ctHeight == 0 {
		return fmt.Errorf("%w: %dx%d to width %d", ErrZeroDimension, ow, oh, ropt.Width)
	}
	return nil
}

// ResizeImage scales img to the target width with Lanczos3.
// The minimum width gate is left to the caller.
func ResizeImage(img image.Image, ropt *ResizeOption) (image.Image, error) {
	ob := img.Bounds()
	err := ropt.calc(uint(ob.Dx()), uint(ob.Dy()))
	if err != nil {
		return nil, err
	}
	m := resize.Resize(ropt.ctWidth, ropt.ctHeight, img, resize.Lanczos3)
	return m, nil
}
