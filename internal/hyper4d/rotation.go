package hyper4d

import "math"

// Angles in radians for rotations in coordinate planes.
// Rotate applies them in field order: XY, XZ, XW, YZ, YW, ZW.
type Rot4 struct {
	XY Real `json:"xy"`
	XZ Real `json:"xz"`
	XW Real `json:"xw"`
	YZ Real `json:"yz"`
	YW Real `json:"yw"`
	ZW Real `json:"zw"`
}

// rotPair is the 2D rotation of the (a, b) coordinate pair by theta.
func rotPair(a, b, theta Real) (Real, Real) {
	c, s := math.Cos(theta), math.Sin(theta)
	return a*c - b*s, a*s + b*c
}

// Rotate rotates p through the six coordinate planes in the fixed order
// xy, xz, xw, yz, yw, zw. Each step sees the coordinates produced by the previous one.
func Rotate(p Vector4, r Rot4) Vector4 {
	x, y, z, w := p.X, p.Y, p.Z, p.W
	if r.XY != 0 {
		x, y = rotPair(x, y, r.XY)
	}
	if r.XZ != 0 {
		x, z = rotPair(x, z, r.XZ)
	}
	if r.XW != 0 {
		x, w = rotPair(x, w, r.XW)
	}
	if r.YZ != 0 {
		y, z = rotPair(y, z, r.YZ)
	}
	if r.YW != 0 {
		y, w = rotPair(y, w, r.YW)
	}
	if r.ZW != 0 {
		z, w = rotPair(z, w, r.ZW)
	}
	return Vector4{x, y, z, w}
}

func rotXY(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[0][0], M.M[0][1] = c, -s
	M.M[1][0], M.M[1][1] = s, c
	return M
}
func rotXZ(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[0][0], M.M[0][2] = c, -s
	M.M[2][0], M.M[2][2] = s, c
	return M
}
func rotXW(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[0][0], M.M[0][3] = c, -s
	M.M[3][0], M.M[3][3] = s, c
	return M
}
func rotYZ(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[1][1], M.M[1][2] = c, -s
	M.M[2][1], M.M[2][2] = s, c
	return M
}
func rotYW(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[1][1], M.M[1][3] = c, -s
	M.M[3][1], M.M[3][3] = s, c
	return M
}
func rotZW(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[2][2], M.M[2][3] = c, -s
	M.M[3][2], M.M[3][3] = s, c
	return M
}

// RotationMatrix composes the six plane rotations into one matrix whose
// action on a column vector equals Rotate. XY is applied first, so it sits rightmost.
func RotationMatrix(r Rot4) Mat4 {
	R := I4()
	R = rotXY(r.XY).Mul(R)
	R = rotXZ(r.XZ).Mul(R)
	R = rotXW(r.XW).Mul(R)
	R = rotYZ(r.YZ).Mul(R)
	R = rotYW(r.YW).Mul(R)
	R = rotZW(r.ZW).Mul(R)
	return R
}

// IsZero reports whether every plane angle is zero.
func (r Rot4) IsZero() bool { return r == Rot4{} }

// WrapAngle maps a into [0, 2π).
func WrapAngle(a Real) Real {
	const twoPi = 2 * math.Pi
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	// tiny negative inputs round up to exactly 2π
	if a >= twoPi {
		a = 0
	}
	return a
}

// Wrapped returns r with every angle mapped into [0, 2π).
func (r Rot4) Wrapped() Rot4 {
	return Rot4{
		XY: WrapAngle(r.XY), XZ: WrapAngle(r.XZ), XW: WrapAngle(r.XW),
		YZ: WrapAngle(r.YZ), YW: WrapAngle(r.YW), ZW: WrapAngle(r.ZW),
	}
}

// Rot4Deg is a rotation in degrees, friendlier in config files.
type Rot4Deg struct {
	XY Real `yaml:"xy" json:"xy"`
	XZ Real `yaml:"xz" json:"xz"`
	XW Real `yaml:"xw" json:"xw"`
	YZ Real `yaml:"yz" json:"yz"`
	YW Real `yaml:"yw" json:"yw"`
	ZW Real `yaml:"zw" json:"zw"`
}

func (r Rot4Deg) Radians() Rot4 {
	const k = math.Pi / 180
	return Rot4{
		XY: r.XY * k, XZ: r.XZ * k, XW: r.XW * k,
		YZ: r.YZ * k, YW: r.YW * k, ZW: r.ZW * k,
	}
}
