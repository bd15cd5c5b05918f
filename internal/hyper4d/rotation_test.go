package hyper4d

import (
	"math"
	"testing"
)

func TestRotationMatrix_IsOrthonormal(t *testing.T) {
	R := RotationMatrix(Rot4{
		XY: math.Pi / 6,
		XZ: math.Pi / 7,
		XW: math.Pi / 5,
		YZ: math.Pi / 8,
		YW: math.Pi / 9,
		ZW: math.Pi / 10,
	})

	// Check R^T R ~ I
	if P := R.Transpose().Mul(R); !P.ApproxEqual(I4(), 1e-12) {
		t.Fatalf("R^T R != I: %+v", P)
	}
	if RotationMatrix(Rot4{}) != I4() {
		t.Fatal("zero rotation matrix must be the identity")
	}
}

func TestAxisRotations(t *testing.T) {
	// Single-plane rotations keep length and rotate only the intended coordinates.
	v := Vector4{1, 0, 0, 0}
	o := Rotate(v, Rot4{XY: math.Pi / 2})
	// 90° in XY: (1,0,0,0) -> (0,1,0,0)
	if !o.ApproxEqual(Vector4{0, 1, 0, 0}, 1e-12) {
		t.Fatalf("XY rotation failed: %+v", o)
	}
	o = Rotate(v, Rot4{XW: math.Pi / 2})
	if !o.ApproxEqual(Vector4{0, 0, 0, 1}, 1e-12) {
		t.Fatalf("XW rotation failed: %+v", o)
	}
	o = Rotate(Vector4{0, 0, 1, 0}, Rot4{ZW: math.Pi / 2})
	if !o.ApproxEqual(Vector4{0, 0, 0, 1}, 1e-12) {
		t.Fatalf("ZW rotation failed: %+v", o)
	}
	if math.Abs(float64(o.Len()-1)) > 1e-12 {
		t.Fatalf("rotation broke length: %.12g", o.Len())
	}
}

func TestRotate_ZeroIsIdentity(t *testing.T) {
	for _, v := range []Vector4{{}, {1, 2, 3, 4}, {-0.5, 7, 1e-9, -3}, {1, 1, 1, 1}} {
		if got := Rotate(v, Rot4{}); got != v {
			t.Fatalf("zero rotation changed %+v into %+v", v, got)
		}
	}
}

func TestRotate_FullTurnPerPlane(t *testing.T) {
	v := Vector4{0.3, -1.2, 2.5, 0.7}
	turns := []Rot4{
		{XY: 2 * math.Pi}, {XZ: 2 * math.Pi}, {XW: 2 * math.Pi},
		{YZ: 2 * math.Pi}, {YW: 2 * math.Pi}, {ZW: 2 * math.Pi},
	}
	for _, r := range turns {
		if got := Rotate(v, r); !got.ApproxEqual(v, 1e-9) {
			t.Fatalf("full turn %+v: got %+v want %+v", r, got, v)
		}
	}
}

func TestRotate_OrderIsFixed(t *testing.T) {
	v := Vector4{1, 2, 3, 4}
	r := Rot4{XY: 0.7, XW: 1.1}
	got := Rotate(v, r)

	// xy first, then xw
	want := rotXW(r.XW).Mul(rotXY(r.XY)).MulVec(v)
	if !got.ApproxEqual(want, 1e-12) {
		t.Fatalf("Rotate does not apply xy before xw: got %+v want %+v", got, want)
	}
	// reversed order must give a different point
	reversed := rotXY(r.XY).Mul(rotXW(r.XW)).MulVec(v)
	if got.ApproxEqual(reversed, 1e-6) {
		t.Fatalf("plane rotations commuted: %+v == %+v", got, reversed)
	}
}

func TestRotationMatrix_MatchesRotate(t *testing.T) {
	r := Rot4{XY: 0.1, XZ: -0.4, XW: 1.3, YZ: 2.2, YW: -0.9, ZW: 0.05}
	M := RotationMatrix(r)
	for _, v := range canonical24Verts() {
		a, b := Rotate(v, r), M.MulVec(v)
		if !a.ApproxEqual(b, 1e-12) {
			t.Fatalf("matrix and sequential rotation disagree for %+v: %+v vs %+v", v, a, b)
		}
	}
}

func TestWrapAngle(t *testing.T) {
	cases := []struct{ in, want Real }{
		{0, 0},
		{math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{2*math.Pi + 0.5, 0.5},
		{-0.5, 2*math.Pi - 0.5},
	}
	for _, c := range cases {
		if got := WrapAngle(c.in); math.Abs(got-c.want) > 1e-12 {
			t.Fatalf("WrapAngle(%v) = %v, want %v", c.in, got, c.want)
		}
	}
	for _, tiny := range []Real{-1e-17, -1e-300, math.Copysign(0, -1)} {
		if got := WrapAngle(tiny); got < 0 || got >= 2*math.Pi {
			t.Fatalf("WrapAngle(%v) = %v, outside [0, 2π)", tiny, got)
		}
	}
	w := Rot4{XY: 7, ZW: -1}.Wrapped()
	if w.XY < 0 || w.XY >= 2*math.Pi || w.ZW < 0 || w.ZW >= 2*math.Pi {
		t.Fatalf("Wrapped out of range: %+v", w)
	}
}

func TestRot4DegRadians(t *testing.T) {
	r := Rot4Deg{XY: 90, XZ: 180, XW: 0, YZ: 30, YW: -45, ZW: 10}.Radians()
	if math.Abs(float64(r.XY-math.Pi/2)) > 1e-12 || math.Abs(float64(r.XZ-math.Pi)) > 1e-12 {
		t.Fatal("degree->radian conversion wrong")
	}
	if !(Rot4Deg{}).Radians().IsZero() {
		t.Fatal("zero degrees must be a zero rotation")
	}
}
