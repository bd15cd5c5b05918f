package hyper4d

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// ColorMode selects how the hidden W coordinate turns into a display color.
type ColorMode uint8

const (
	ColorSolid ColorMode = iota // fixed neutral color
	ColorDepth                  // grayscale, nearer (larger w) is darker
	ColorHeat                   // blue (far) to red (near), no green
)

var colorModeNames = [...]string{"solid", "depth", "heat"}

func (m ColorMode) String() string {
	if int(m) < len(colorModeNames) {
		return colorModeNames[m]
	}
	return fmt.Sprintf("ColorMode(%d)", uint8(m))
}

// ParseColorMode accepts "solid", "depth" or "heat" (case-insensitive).
func ParseColorMode(s string) (ColorMode, error) {
	for i, n := range colorModeNames {
		if strings.EqualFold(strings.TrimSpace(s), n) {
			return ColorMode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColorMode, s)
}

func (m ColorMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *ColorMode) UnmarshalText(b []byte) error {
	v, err := ParseColorMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Color is an 8-bit RGB display color.
type Color struct {
	R, G, B uint8
}

var (
	SolidVertexColor = Color{0x1f, 0x29, 0x37} // gray-800
	SolidEdgeColor   = Color{0, 0, 0}
)

// Hex formats the color as #rrggbb.
func (c Color) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// CSS formats the color as rgb(r, g, b).
func (c Color) CSS() string { return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B) }

func (c Color) MarshalText() ([]byte, error) { return []byte(c.Hex()), nil }

// RGBA converts to an image color with the given opacity in [0,1].
func (c Color) RGBA(opacity Real) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(clamp01(opacity) * 255))}
}

// NormalizeW maps w from [WRangeMin, WRangeMax] into [0,1], clamping both ends.
func NormalizeW(w Real) Real {
	return clamp01((w - WRangeMin) / (WRangeMax - WRangeMin))
}

// VertexColor is a pure function of (w, mode). Solid ignores w.
func VertexColor(w Real, mode ColorMode) Color {
	switch mode {
	case ColorHeat:
		n := NormalizeW(w)
		return Color{R: uint8(math.Floor(n * 255)), B: uint8(math.Floor((1 - n) * 255))}
	case ColorDepth:
		g := uint8(math.Floor((1 - NormalizeW(w)) * DepthMaxGray))
		return Color{g, g, g}
	}
	return SolidVertexColor
}

// EdgeColor colors an edge by the mean W of its endpoints. Solid edges are black.
func EdgeColor(w0, w1 Real, mode ColorMode) Color {
	if mode == ColorSolid {
		return SolidEdgeColor
	}
	return VertexColor((w0+w1)/2, mode)
}
