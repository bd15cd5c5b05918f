package hyper4d

import (
	"fmt"
	"strings"
)

// Complexity is an informational tag shown next to a shape; nothing computes with it.
type Complexity uint8

const (
	ComplexityLow Complexity = iota
	ComplexityMedium
	ComplexityHigh
)

func (c Complexity) String() string {
	switch c {
	case ComplexityLow:
		return "Low"
	case ComplexityMedium:
		return "Medium"
	case ComplexityHigh:
		return "High"
	}
	return fmt.Sprintf("Complexity(%d)", uint8(c))
}

func (c Complexity) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// ParseComplexity accepts "Low", "Medium" or "High" (case-insensitive).
func ParseComplexity(s string) (Complexity, error) {
	for _, c := range []Complexity{ComplexityLow, ComplexityMedium, ComplexityHigh} {
		if strings.EqualFold(strings.TrimSpace(s), c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownComplexity, s)
}

func (c *Complexity) UnmarshalText(b []byte) error {
	v, err := ParseComplexity(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Edge is an unordered pair of vertex indices, stored with A < B.
type Edge struct {
	A int `json:"a"`
	B int `json:"b"`
}

// NewEdge orders the pair so that A < B.
func NewEdge(i, j int) Edge {
	if i > j {
		i, j = j, i
	}
	return Edge{A: i, B: j}
}

// Shape is the static vertex/edge data of one catalog entry.
// Shapes are built once and must not be mutated afterwards.
type Shape struct {
	Key         string     `json:"key"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Complexity  Complexity `json:"complexity"`
	Vertices    []Vector4  `json:"vertices"`
	Edges       []Edge     `json:"edges"`
}

// Validate checks edge indices, self-edges and duplicate pairs.
func (s *Shape) Validate() error {
	n := len(s.Vertices)
	seen := make(map[Edge]struct{}, len(s.Edges))
	for k, e := range s.Edges {
		if e.A < 0 || e.A >= n || e.B < 0 || e.B >= n {
			return fmt.Errorf("%w: %s edge #%d (%d,%d) out of range [0,%d)", ErrInvalidEdge, s.Key, k, e.A, e.B, n)
		}
		if e.A == e.B {
			return fmt.Errorf("%w: %s edge #%d is a self-edge on vertex %d", ErrInvalidEdge, s.Key, k, e.A)
		}
		key := NewEdge(e.A, e.B)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %s edge #%d (%d,%d) is a duplicate", ErrInvalidEdge, s.Key, k, e.A, e.B)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// HasEdge reports whether i and j are connected.
func (s *Shape) HasEdge(i, j int) bool {
	want := NewEdge(i, j)
	for _, e := range s.Edges {
		if e == want {
			return true
		}
	}
	return false
}

// Degree returns the number of edges touching vertex i.
func (s *Shape) Degree(i int) int {
	d := 0
	for _, e := range s.Edges {
		if e.A == i || e.B == i {
			d++
		}
	}
	return d
}

func (s *Shape) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s): %d vertices, %d edges, complexity %s",
		s.Name, s.Key, len(s.Vertices), len(s.Edges), s.Complexity)
	return b.String()
}

// pairsWhere enumerates i < j over verts and keeps the pairs accepted by connect.
func pairsWhere(verts []Vector4, connect func(a, b Vector4) bool) []Edge {
	edges := make([]Edge, 0, len(verts))
	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			if connect(verts[i], verts[j]) {
				edges = append(edges, Edge{A: i, B: j})
			}
		}
	}
	return edges
}
