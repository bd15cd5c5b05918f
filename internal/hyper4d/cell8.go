package hyper4d

import "math/bits"

// canonical8Verts returns the 16 tesseract corners {-1,1}^4. Bit k of the index
// picks the sign of axis k (x=bit 0 … w=bit 3).
func canonical8Verts() []Vector4 {
	V := make([]Vector4, 16)
	sign := func(i, bit int) Real {
		if i&(1<<bit) != 0 {
			return 1
		}
		return -1
	}
	for i := range V {
		V[i] = Vector4{sign(i, 0), sign(i, 1), sign(i, 2), sign(i, 3)}
	}
	return V
}

// NewTesseract builds the 8-cell: corners differing in exactly one bit
// (Hamming distance 1) are joined. 16 vertices, 32 edges.
func NewTesseract() *Shape {
	V := canonical8Verts()
	edges := make([]Edge, 0, 32)
	for i := 0; i < len(V); i++ {
		for j := i + 1; j < len(V); j++ {
			if bits.OnesCount(uint(i^j)) == 1 {
				edges = append(edges, Edge{A: i, B: j})
			}
		}
	}
	return &Shape{
		Key:         KeyTesseract,
		Name:        "Tesseract",
		Description: "The 4D analogue of a cube. 16 vertices, 32 edges. It is composed of 8 cubical cells.",
		Complexity:  ComplexityMedium,
		Vertices:    V,
		Edges:       edges,
	}
}
