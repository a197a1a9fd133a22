package raster

import "math"

// FrameBuffer is the render target. Color and depth live in flat slices
// so the triangle fill loop indexes without bounds juggling.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // interleaved RGBA, 4 bytes per pixel
	ZBuf   []float64 // one depth per pixel; -inf marks never written
}

// NewFrameBuffer allocates a w*h target with every pixel transparent
// black and every depth at -inf.
func NewFrameBuffer(w, h int) *FrameBuffer {
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, w*h*4),
		ZBuf:   make([]float64, w*h),
	}
	for i := range fb.ZBuf {
		fb.ZBuf[i] = math.Inf(-1)
	}
	return fb
}
