package hyper4d

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func TestProjectAtWZeroScalesByInverseDistance(t *testing.T) {
	for _, d := range []Real{2, 3, 4.5, 6} {
		p, err := NewProjector(d)
		require.NoError(t, err)
		got := p.Project(Vector4{1, -2, 0.5, 0})
		want := mgl64.Vec3{1 / d, -2 / d, 0.5 / d}
		require.True(t, got.ApproxEqualThreshold(want, 1e-12), "d=%v got %v want %v", d, got, want)
	}
}

func TestProjectTesseractCorner(t *testing.T) {
	p := Projector{Distance: 3}
	got := p.Project(Vector4{1, 1, 1, 1})
	require.Equal(t, mgl64.Vec3{0.5, 0.5, 0.5}, got)
}

func TestProjectClampNearCamera(t *testing.T) {
	p := Projector{Distance: 3}
	require.Equal(t, Real(ProjectionClamp), p.Scale(3))
	require.Equal(t, Real(ProjectionClamp), p.Scale(3.005))
	require.Equal(t, Real(ProjectionClamp), p.Scale(2.995))

	// sweep w through the camera plane
	for w := 2.9; w <= 3.1; w += 1e-4 {
		s := p.Scale(w)
		require.False(t, math.IsNaN(s) || math.IsInf(s, 0), "w=%v scale=%v", w, s)
		require.LessOrEqual(t, math.Abs(s), Real(ProjectionClamp), "w=%v", w)
		v := p.Project(Vector4{1, 1, 1, w})
		for _, c := range v {
			require.True(t, isFinite(c), "w=%v pos=%v", w, v)
		}
	}
	require.True(t, isFinite(p.Scale(math.Inf(1))))
}

func TestProjectBehindCamera(t *testing.T) {
	p := Projector{Distance: 2}
	// w beyond the camera flips the image
	require.InDelta(t, -1.0, p.Scale(3), 1e-12)
}

func TestNewProjectorRejectsBadDistance(t *testing.T) {
	for _, d := range []Real{0, -1, math.NaN(), math.Inf(1)} {
		_, err := NewProjector(d)
		require.Error(t, err, "d=%v", d)
		require.True(t, errors.Is(err, ErrInvalidDistance))
	}
}
