package hyper4d

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func TestCameraCentersOrigin(t *testing.T) {
	cam := NewCamera(100, 80)
	x, y, k, ok := cam.ToScreen(mgl64.Vec3{}, mgl64.Ident4())
	require.True(t, ok)
	require.InDelta(t, 50, x, 1e-9)
	require.InDelta(t, 40, y, 1e-9)
	require.Greater(t, k, 0.0)

	// +Y is up on screen
	_, yUp, _, ok := cam.ToScreen(mgl64.Vec3{0, 1, 0}, mgl64.Ident4())
	require.True(t, ok)
	require.Less(t, yUp, y)

	// behind the eye
	_, _, _, ok = cam.ToScreen(mgl64.Vec3{0, 0, PreviewEyeZ + 1}, mgl64.Ident4())
	require.False(t, ok)
}

func TestDrawLineAndDisc(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	red := color.NRGBA{R: 255, A: 255}
	DrawLine(img, 2, 10, 17, 10, 1, red)
	require.Equal(t, red, img.NRGBAAt(10, 10))
	require.Equal(t, color.NRGBA{}, img.NRGBAAt(10, 2))

	DrawDisc(img, 5.5, 5.5, 2, red)
	require.Equal(t, red, img.NRGBAAt(5, 5))

	// off-canvas and non-finite input must not panic
	DrawLine(img, -100, -100, 1e9, 1e9, 3, red)
	DrawDisc(img, 1e12, -1e12, 50, red)
	DrawLine(img, 0, 0, nan(), 1, 1, red)
}

func TestBlendUsesAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	blend(img, 0, 0, color.NRGBA{A: 128})
	got := img.NRGBAAt(0, 0)
	require.InDelta(t, 127, int(got.R), 1)
	require.Equal(t, uint8(255), got.A)
}

func TestDrawFrameTouchesCanvas(t *testing.T) {
	cfg := DefaultFrameConfig()
	cfg.Color = ColorHeat
	f := Assemble(NewTesseract(), Rot4{XW: 0.3}, cfg)
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	DrawFrame(img, f, NewCamera(64, 64), 0.1)

	bg, drawn := 0, 0
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if img.NRGBAAt(x, y) == Background {
				bg++
			} else {
				drawn++
			}
		}
	}
	require.Greater(t, bg, 0)
	require.Greater(t, drawn, 0)
	require.Equal(t, Background, img.NRGBAAt(0, 0))
}

func nan() Real {
	var zero Real
	return zero / zero
}
