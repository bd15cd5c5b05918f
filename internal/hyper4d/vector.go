package hyper4d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector4 is a point (or direction) in 4D space.
type Vector4 struct {
	X Real `json:"x"`
	Y Real `json:"y"`
	Z Real `json:"z"`
	W Real `json:"w"`
}

// Vector functions
func (a Vector4) Add(b Vector4) Vector4 { return Vector4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W} }
func (a Vector4) Sub(b Vector4) Vector4 { return Vector4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W} }
func (v Vector4) Mul(s Real) Vector4    { return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s} }

// Dot returns the dot product between two 4D vectors.
func (a Vector4) Dot(b Vector4) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Len returns the Euclidean length of the vector.
func (v Vector4) Len() Real { return math.Sqrt(v.Dot(v)) }

// Norm returns a unit-length version of the vector.
func (v Vector4) Norm() Vector4 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vector4{v.X / l, v.Y / l, v.Z / l, v.W / l}
}

// XYZ drops the W coordinate.
func (v Vector4) XYZ() mgl64.Vec3 { return mgl64.Vec3{v.X, v.Y, v.Z} }

// ApproxEqual compares component-wise with an absolute tolerance.
func (a Vector4) ApproxEqual(b Vector4, tol Real) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol && math.Abs(a.W-b.W) <= tol
}
