package hyper4d

import (
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// WSource picks which W drives coloring. One choice applies to every vertex
// and edge of a frame.
type WSource uint8

const (
	WRotated  WSource = iota // w after rotation (default)
	WOriginal                // w of the catalog vertex
)

var wSourceNames = [...]string{"rotated", "original"}

func (s WSource) String() string {
	if int(s) < len(wSourceNames) {
		return wSourceNames[s]
	}
	return fmt.Sprintf("WSource(%d)", uint8(s))
}

func ParseWSource(s string) (WSource, error) {
	for i, n := range wSourceNames {
		if strings.EqualFold(strings.TrimSpace(s), n) {
			return WSource(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWSource, s)
}

func (s WSource) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *WSource) UnmarshalText(b []byte) error {
	v, err := ParseWSource(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// FrameConfig is the caller-owned render configuration for one frame.
// It is comparable so it can key the frame cache.
type FrameConfig struct {
	Distance   Real      `json:"distance"`
	Color      ColorMode `json:"colorMode"`
	WSource    WSource   `json:"wSource"`
	VertexSize Real      `json:"vertexSize"`
	LineWidth  Real      `json:"lineWidth"`
	Opacity    Real      `json:"opacity"`
}

func DefaultFrameConfig() FrameConfig {
	return FrameConfig{
		Distance:   DefaultDistance,
		Color:      ColorDepth,
		WSource:    WRotated,
		VertexSize: DefaultVertexSize,
		LineWidth:  DefaultLineWidth,
		Opacity:    DefaultOpacity,
	}
}

// Validate checks what the UI would normally guarantee.
func (c FrameConfig) Validate() error {
	if _, err := NewProjector(c.Distance); err != nil {
		return err
	}
	if int(c.Color) >= len(colorModeNames) {
		return fmt.Errorf("%w: %d", ErrUnknownColorMode, c.Color)
	}
	if int(c.WSource) >= len(wSourceNames) {
		return fmt.Errorf("%w: %d", ErrUnknownWSource, c.WSource)
	}
	if c.VertexSize < 0 || c.LineWidth < 0 {
		return fmt.Errorf("vertex size and line width must be >= 0, got %v and %v", c.VertexSize, c.LineWidth)
	}
	if c.Opacity < 0 || c.Opacity > 1 {
		return fmt.Errorf("opacity must be in [0,1], got %v", c.Opacity)
	}
	return nil
}

// VertexOut is one projected vertex ready for the renderer.
type VertexOut struct {
	Pos     mgl64.Vec3 `json:"pos"`
	W       Real       `json:"w"`
	Color   Color      `json:"color"`
	Size    Real       `json:"size"`
	Opacity Real       `json:"opacity"`
}

// EdgeOut is one projected edge ready for the renderer.
type EdgeOut struct {
	Edge
	Start   mgl64.Vec3 `json:"start"`
	End     mgl64.Vec3 `json:"end"`
	Color   Color      `json:"color"`
	Width   Real       `json:"width"`
	Opacity Real       `json:"opacity"`
}

// Frame is the renderable output of one animation frame. Vertices keep the
// shape's vertex order, edges keep its edge order.
type Frame struct {
	Shape    string      `json:"shape"`
	Rotation Rot4        `json:"rotation"`
	Vertices []VertexOut `json:"vertices"`
	Edges    []EdgeOut   `json:"edges"`
}

// Assemble rotates, projects and colors every vertex of s, then builds the edges.
// It is a pure function of its arguments.
func Assemble(s *Shape, r Rot4, cfg FrameConfig) Frame {
	f := Frame{
		Shape:    s.Key,
		Rotation: r,
		Vertices: make([]VertexOut, len(s.Vertices)),
	}
	fillVertices(f.Vertices, s.Vertices, r, cfg, Projector{Distance: cfg.Distance})
	f.Edges = assembleEdges(s.Edges, f.Vertices, cfg)
	return f
}

// AssembleParallel is Assemble with the per-vertex work split across workers.
// workers <= 0 means runtime.NumCPU(). Output order matches Assemble.
func AssembleParallel(s *Shape, r Rot4, cfg FrameConfig, workers int) Frame {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	n := len(s.Vertices)
	if workers > n {
		workers = imax(1, n)
	}
	if workers == 1 {
		return Assemble(s, r, cfg)
	}
	f := Frame{
		Shape:    s.Key,
		Rotation: r,
		Vertices: make([]VertexOut, n),
	}
	proj := Projector{Distance: cfg.Distance}
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fillVertices(f.Vertices[lo:hi], s.Vertices[lo:hi], r, cfg, proj)
		}(lo, hi)
	}
	wg.Wait()
	f.Edges = assembleEdges(s.Edges, f.Vertices, cfg)
	return f
}

func fillVertices(out []VertexOut, in []Vector4, r Rot4, cfg FrameConfig, proj Projector) {
	for i, v := range in {
		rv := Rotate(v, r)
		w := rv.W
		if cfg.WSource == WOriginal {
			w = v.W
		}
		out[i] = VertexOut{
			Pos:     proj.Project(rv),
			W:       w,
			Color:   VertexColor(w, cfg.Color),
			Size:    cfg.VertexSize,
			Opacity: cfg.Opacity,
		}
	}
}

func assembleEdges(edges []Edge, verts []VertexOut, cfg FrameConfig) []EdgeOut {
	out := make([]EdgeOut, len(edges))
	for i, e := range edges {
		a, b := verts[e.A], verts[e.B]
		out[i] = EdgeOut{
			Edge:    e,
			Start:   a.Pos,
			End:     b.Pos,
			Color:   EdgeColor(a.W, b.W, cfg.Color),
			Width:   cfg.LineWidth,
			Opacity: cfg.Opacity * EdgeOpacityFactor,
		}
	}
	return out
}
