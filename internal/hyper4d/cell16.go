package hyper4d

import "gonum.org/v1/gonum/floats/scalar"

func canonical16Verts() []Vector4 {
	return []Vector4{
		{+1, 0, 0, 0},
		{-1, 0, 0, 0},
		{0, +1, 0, 0},
		{0, -1, 0, 0},
		{0, 0, +1, 0},
		{0, 0, -1, 0},
		{0, 0, 0, +1},
		{0, 0, 0, -1},
	}
}

// NewHexadecachoron builds the 16-cell (cross-polytope). Orthogonal vertices
// are joined, which excludes each vertex's own negation. 8 vertices, 24 edges.
func NewHexadecachoron() *Shape {
	V := canonical16Verts()
	return &Shape{
		Key:         KeyHexadecachoron,
		Name:        "Hexadecachoron (16-Cell)",
		Description: "The dual of the tesseract. 8 vertices, 24 edges. Composed of 16 tetrahedra.",
		Complexity:  ComplexityHigh,
		Vertices:    V,
		Edges: pairsWhere(V, func(a, b Vector4) bool {
			return scalar.EqualWithinAbs(a.Dot(b), 0, adjacencyEpsilon)
		}),
	}
}
