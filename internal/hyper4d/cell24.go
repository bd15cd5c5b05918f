package hyper4d

import "gonum.org/v1/gonum/floats/scalar"

// canonical24Verts: the D4 root set, all permutations of (±1, ±1, 0, 0).
// Axis pairs are walked in lexicographic order, signs as (-,-), (-,+), (+,-), (+,+).
func canonical24Verts() []Vector4 {
	pairs := [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	out := make([]Vector4, 0, 24)
	for _, p := range pairs {
		for _, s1 := range [2]Real{-1, 1} {
			for _, s2 := range [2]Real{-1, 1} {
				var v [4]Real
				v[p[0]] = s1
				v[p[1]] = s2
				out = append(out, Vector4{v[0], v[1], v[2], v[3]})
			}
		}
	}
	return out
}

// NewIcositetrachoron builds the 24-cell. Vertices at distance √2 (dot product
// exactly 1) are joined. 24 vertices, 96 edges.
func NewIcositetrachoron() *Shape {
	V := canonical24Verts()
	return &Shape{
		Key:         KeyIcositetrachoron,
		Name:        "Icositetrachoron (24-Cell)",
		Description: "A unique regular polychoron with no 3D analogue. 24 vertices, 96 edges. Self-dual.",
		Complexity:  ComplexityHigh,
		Vertices:    V,
		Edges: pairsWhere(V, func(a, b Vector4) bool {
			return scalar.EqualWithinAbs(a.Dot(b), 1, adjacencyEpsilon)
		}),
	}
}
