package hyper4d

import "fmt"

// NewHyperbolicSurface samples (u, v, k(u²-v²), k·uv) on a (steps+1)² grid over
// [-span, span]². Grid neighbors are joined without wraparound; the last row and
// column get their own closing edges.
func NewHyperbolicSurface(steps int, span, k Real) (*Shape, error) {
	if steps < 1 {
		return nil, fmt.Errorf("%w: hyperbolic surface needs >= 1 step, got %d", ErrInvalidResolution, steps)
	}
	row := steps + 1
	V := make([]Vector4, 0, row*row)
	for i := 0; i <= steps; i++ {
		u := Real(i)/Real(steps)*span*2 - span
		for j := 0; j <= steps; j++ {
			v := Real(j)/Real(steps)*span*2 - span
			V = append(V, Vector4{u, v, (u*u - v*v) * k, u * v * k})
		}
	}
	edges := make([]Edge, 0, 2*steps*row)
	for i := 0; i < steps; i++ {
		for j := 0; j < steps; j++ {
			idx := i*row + j
			edges = append(edges, Edge{idx, idx + 1}, Edge{idx, idx + row})
		}
	}
	// closing edges along the last row and the last column
	for i := 0; i < steps; i++ {
		edges = append(edges,
			Edge{steps*row + i, steps*row + i + 1},
			Edge{i*row + steps, (i+1)*row + steps},
		)
	}
	return &Shape{
		Key:         KeyHyperbola,
		Name:        "Hyperbolic Surface",
		Description: "A 4D surface patch exhibiting hyperbolic curvature (Saddle shape extended to 4D).",
		Complexity:  ComplexityMedium,
		Vertices:    V,
		Edges:       edges,
	}, nil
}
