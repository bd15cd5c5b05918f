package hyper4d

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Projector maps rotated 4D points into 3D by perspective division along W.
// The 4D camera sits at w = Distance.
type Projector struct {
	Distance Real
}

// NewProjector validates the camera distance.
func NewProjector(distance Real) (Projector, error) {
	if !(distance > 0) || !isFinite(distance) {
		return Projector{}, fmt.Errorf("%w, got %v", ErrInvalidDistance, distance)
	}
	return Projector{Distance: distance}, nil
}

// Scale returns 1/(d - w), or ProjectionClamp when the point is within
// ProjectionEps of the camera. The result is finite for any finite w and
// |scale| <= ProjectionClamp.
func (p Projector) Scale(w Real) Real {
	dw := p.Distance - w
	if math.Abs(dw) < ProjectionEps || !isFinite(dw) {
		DebugLogOnce("Projection clamped: |d-w| = %v < %v", math.Abs(dw), ProjectionEps)
		return ProjectionClamp
	}
	return 1 / dw
}

// Project returns (x, y, z) * Scale(w).
func (p Projector) Project(v Vector4) mgl64.Vec3 {
	return v.XYZ().Mul(p.Scale(v.W))
}
