package hyper4d

import "math"

// canonical5Verts: four alternating cube corners on the w = -1/√5 hyperplane
// plus an apex on the w axis at 3/√5.
func canonical5Verts() []Vector4 {
	s5 := 1 / math.Sqrt(5)
	return []Vector4{
		{1, 1, 1, -s5},
		{1, -1, -1, -s5},
		{-1, 1, -1, -s5},
		{-1, -1, 1, -s5},
		{0, 0, 0, 4*s5 - s5},
	}
}

// NewPentachoron builds the 5-cell as a complete graph. 5 vertices, 10 edges.
func NewPentachoron() *Shape {
	V := canonical5Verts()
	return &Shape{
		Key:         KeyPentachoron,
		Name:        "Pentachoron (5-Cell)",
		Description: "The simplest regular polychoron. 5 vertices, 10 edges. Analogous to a tetrahedron.",
		Complexity:  ComplexityLow,
		Vertices:    V,
		Edges:       pairsWhere(V, func(a, b Vector4) bool { return true }),
	}
}
