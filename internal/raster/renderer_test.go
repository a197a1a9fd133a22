package raster

import (
	"testing"

	"emd-renderer/internal/emd"
)

func countOpaque(pix []uint8) int {
	n := 0
	for i := 3; i < len(pix); i += 4 {
		if pix[i] > 0 {
			n++
		}
	}
	return n
}

func TestRenderModel(t *testing.T) {
	m := &emd.Model{Objects: []emd.Object{{
		Verts: [][3]float32{{-1, -1, 0}, {1, -1, 0}, {0, 1, 0}},
		Faces: [][3]uint32{{0, 1, 2}},
	}}}

	img := RenderModel(m, 64, 1)
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("bounds = %v, want 64x64", b)
	}
	if countOpaque(img.Pix) == 0 {
		t.Error("rendered image has no opaque pixels")
	}
}

func TestRenderEmptyModel(t *testing.T) {
	img := RenderModel(&emd.Model{}, 32, 2)
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Fatalf("bounds = %v, want 32x32", b)
	}
	if countOpaque(img.Pix) != 0 {
		t.Error("empty model rendered visible pixels")
	}
}

func TestRenderSkipsOutOfRangeIndices(t *testing.T) {
	// Decoded face indices can point past the vertex list; those faces
	// are dropped instead of panicking.
	m := &emd.Model{Objects: []emd.Object{{
		Verts: [][3]float32{{-1, -1, 0}, {1, -1, 0}, {0, 1, 0}},
		Faces: [][3]uint32{{0, 1, 7}},
	}}}

	img := RenderModel(m, 32, 1)
	if countOpaque(img.Pix) != 0 {
		t.Error("out-of-range face was rasterized")
	}
}
