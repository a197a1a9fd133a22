package raster

import (
	"image"
	"math"

	"emd-renderer/internal/emd"
	"emd-renderer/internal/mathutil"
)

// Per-object flat colors so multi-object models stay readable. Decoded
// EMD geometry carries no material data.
var palette = [][4]uint8{
	{172, 172, 182, 255},
	{182, 152, 140, 255},
	{142, 172, 152, 255},
	{152, 152, 186, 255},
	{180, 172, 140, 255},
	{160, 142, 172, 255},
}

// viewRotation is the fixed preview camera: a slight orbit so axis-aligned
// geometry does not render edge-on.
func viewRotation() mathutil.Mat3 {
	return mathutil.Mat3Mul(
		mathutil.RotX(mathutil.Deg2Rad(-20)),
		mathutil.RotY(mathutil.Deg2Rad(35)),
	)
}

// RenderModel renders all decoded objects into one NRGBA image of
// size*supersample pixels, fit to the model's view-space bounding box.
func RenderModel(m *emd.Model, size, supersample int) *image.NRGBA {
	renderSize := size * supersample
	R := viewRotation()

	// Bounding box over every object's transformed vertices
	allMin := [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	allMax := [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	seen := false
	for _, obj := range m.Objects {
		for _, v := range obj.Verts {
			seen = true
			tv := R.MulVec3(mathutil.Vec3{float64(v[0]), float64(v[1]), float64(v[2])})
			for k := 0; k < 3; k++ {
				if tv[k] < allMin[k] {
					allMin[k] = tv[k]
				}
				if tv[k] > allMax[k] {
					allMax[k] = tv[k]
				}
			}
		}
	}
	if !seen {
		return image.NewNRGBA(image.Rect(0, 0, size, size))
	}

	center := [3]float64{
		(allMin[0] + allMax[0]) / 2,
		(allMin[1] + allMax[1]) / 2,
		(allMin[2] + allMax[2]) / 2,
	}
	span := allMax[0] - allMin[0]
	if s := allMax[1] - allMin[1]; s > span {
		span = s
	}
	if span < 0.001 {
		span = 0.001
	}

	margin := 16 * supersample
	scale := float64(renderSize-2*margin) / span
	half := float64(renderSize) / 2

	fb := NewFrameBuffer(renderSize, renderSize)
	lc := DefaultLightConfig()

	for oi, obj := range m.Objects {
		if len(obj.Verts) == 0 {
			continue
		}

		px := make([]float64, len(obj.Verts))
		py := make([]float64, len(obj.Verts))
		pz := make([]float64, len(obj.Verts))
		for i, v := range obj.Verts {
			tv := R.MulVec3(mathutil.Vec3{float64(v[0]), float64(v[1]), float64(v[2])})
			px[i] = (tv[0]-center[0])*scale + half
			py[i] = half - (tv[1]-center[1])*scale // screen Y grows downward
			pz[i] = (tv[2] - center[2]) * scale
		}

		col := palette[oi%len(palette)]
		for _, f := range obj.Faces {
			vi := [3]int{int(f[0]), int(f[1]), int(f[2])}
			RasterizeTriangle(fb, px, py, pz, vi, col[0], col[1], col[2], col[3], &lc)
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	copy(img.Pix, fb.Color)
	return img
}
