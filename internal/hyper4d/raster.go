package hyper4d

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Background of the preview canvas.
var Background = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Camera is a simple pinhole camera for previewing projected frames.
type Camera struct {
	View   mgl64.Mat4
	Proj   mgl64.Mat4
	Width  int
	Height int
}

// NewCamera looks at the origin from (0, 0, PreviewEyeZ) with a PreviewFOVDeg vertical FOV.
func NewCamera(width, height int) Camera {
	aspect := Real(width) / Real(height)
	return Camera{
		View:   mgl64.LookAtV(mgl64.Vec3{0, 0, PreviewEyeZ}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0}),
		Proj:   mgl64.Perspective(mgl64.DegToRad(PreviewFOVDeg), aspect, 0.1, 100),
		Width:  width,
		Height: height,
	}
}

// ToScreen maps a 3D point (after the model transform) to pixel coordinates.
// pxPerUnit is how many pixels one world unit spans at that depth.
// ok is false for points behind the camera.
func (c Camera) ToScreen(p mgl64.Vec3, model mgl64.Mat4) (x, y, pxPerUnit Real, ok bool) {
	clip := c.Proj.Mul4(c.View).Mul4(model).Mul4x1(p.Vec4(1))
	if clip.W() <= 1e-9 {
		return 0, 0, 0, false
	}
	ndcX, ndcY := clip.X()/clip.W(), clip.Y()/clip.W()
	x = (ndcX + 1) * 0.5 * Real(c.Width)
	y = (1 - ndcY) * 0.5 * Real(c.Height)
	pxPerUnit = c.Proj.At(1, 1) * 0.5 * Real(c.Height) / clip.W()
	return x, y, pxPerUnit, true
}

// DrawFrame clears img and draws edges first, then vertices on top.
// orbit rotates the whole 3D group around Y before viewing.
func DrawFrame(img *image.NRGBA, f Frame, cam Camera, orbit Real) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetNRGBA(x, y, Background)
		}
	}
	model := mgl64.HomogRotate3DY(orbit)
	for _, e := range f.Edges {
		x1, y1, _, ok1 := cam.ToScreen(e.Start, model)
		x2, y2, _, ok2 := cam.ToScreen(e.End, model)
		if !ok1 || !ok2 {
			continue
		}
		DrawLine(img, x1, y1, x2, y2, e.Width, e.Color.RGBA(e.Opacity))
	}
	for _, v := range f.Vertices {
		x, y, k, ok := cam.ToScreen(v.Pos, model)
		if !ok {
			continue
		}
		DrawDisc(img, x, y, math.Max(1, v.Size*k), v.Color.RGBA(v.Opacity))
	}
}

// DrawLine walks from (x1, y1) to (x2, y2) in unit steps (DDA) stamping a
// disc of diameter width at each step.
func DrawLine(img *image.NRGBA, x1, y1, x2, y2, width Real, col color.NRGBA) {
	if !isFinite(x1) || !isFinite(y1) || !isFinite(x2) || !isFinite(y2) {
		return
	}
	dx, dy := x2-x1, y2-y1
	steps := math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)))
	// keep runaway lines (points near the 4D camera) bounded
	limit := 4 * Real(img.Bounds().Dx()+img.Bounds().Dy())
	if steps > limit {
		steps = limit
	}
	if steps < 1 {
		steps = 1
	}
	xInc, yInc := dx/steps, dy/steps
	r := math.Max(0.5, width/2)
	x, y := x1, y1
	for i := 0; i <= int(steps); i++ {
		if r <= 0.5 {
			blend(img, int(x), int(y), col)
		} else {
			DrawDisc(img, x, y, r, col)
		}
		x += xInc
		y += yInc
	}
}

// DrawDisc fills a disc of radius r centered at (cx, cy).
func DrawDisc(img *image.NRGBA, cx, cy, r Real, col color.NRGBA) {
	if !isFinite(cx) || !isFinite(cy) {
		return
	}
	b := img.Bounds()
	x0 := imax(b.Min.X, int(math.Floor(cx-r)))
	y0 := imax(b.Min.Y, int(math.Floor(cy-r)))
	x1 := int(math.Ceil(cx + r))
	y1 := int(math.Ceil(cy + r))
	r2 := r * r
	for y := y0; y <= y1 && y < b.Max.Y; y++ {
		for x := x0; x <= x1 && x < b.Max.X; x++ {
			ddx, ddy := Real(x)+0.5-cx, Real(y)+0.5-cy
			if ddx*ddx+ddy*ddy <= r2 {
				blend(img, x, y, col)
			}
		}
	}
}

// blend composites col over the pixel at (x, y) with col.A as coverage.
func blend(img *image.NRGBA, x, y int, col color.NRGBA) {
	if !(image.Point{x, y}.In(img.Bounds())) {
		return
	}
	off := img.PixOffset(x, y)
	a := Real(col.A) / 255
	mix := func(dst, src uint8) uint8 {
		return uint8(math.Round(Real(src)*a + Real(dst)*(1-a)))
	}
	img.Pix[off+0] = mix(img.Pix[off+0], col.R)
	img.Pix[off+1] = mix(img.Pix[off+1], col.G)
	img.Pix[off+2] = mix(img.Pix[off+2], col.B)
	img.Pix[off+3] = 255
}
