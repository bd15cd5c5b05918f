package hyper4d

import (
	"fmt"
	"math"
)

// NewCliffordTorus samples (cos u, sin u, cos v, sin v) on a steps×steps angular
// grid. Every sample joins its next neighbor in u and in v, both wrapping.
func NewCliffordTorus(steps int) (*Shape, error) {
	if steps < 3 {
		return nil, fmt.Errorf("%w: clifford torus needs >= 3 steps, got %d", ErrInvalidResolution, steps)
	}
	V := make([]Vector4, 0, steps*steps)
	for i := 0; i < steps; i++ {
		u := Real(i) / Real(steps) * 2 * math.Pi
		for j := 0; j < steps; j++ {
			v := Real(j) / Real(steps) * 2 * math.Pi
			V = append(V, Vector4{math.Cos(u), math.Sin(u), math.Cos(v), math.Sin(v)})
		}
	}
	edges := make([]Edge, 0, 2*steps*steps)
	for i := 0; i < steps; i++ {
		for j := 0; j < steps; j++ {
			idx := i*steps + j
			nextU := ((i+1)%steps)*steps + j
			nextV := i*steps + (j+1)%steps
			edges = append(edges, NewEdge(idx, nextU), NewEdge(idx, nextV))
		}
	}
	return &Shape{
		Key:         KeyClifford,
		Name:        "Clifford Torus",
		Description: `A "flat" torus sitting inside the 3-sphere. It appears as a donut turning inside out when rotated in 4D.`,
		Complexity:  ComplexityHigh,
		Vertices:    V,
		Edges:       edges,
	}, nil
}
