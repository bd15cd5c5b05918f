package hyper4d

import (
	"fmt"
	"sync"
)

// Catalog keys.
const (
	KeyTesseract        = "tesseract"
	KeyPentachoron      = "pentachoron"
	KeyHexadecachoron   = "hexadecachoron"
	KeyIcositetrachoron = "icositetrachoron"
	KeyClifford         = "clifford"
	KeyHyperbola        = "hyperbola"
)

// Catalog holds the fixed set of shapes, generated once at construction.
// It is read-only afterwards and safe for concurrent use.
type Catalog struct {
	keys   []string
	shapes map[string]*Shape
}

type generator struct {
	key   string
	build func() (*Shape, error)
}

func builtinGenerators() []generator {
	ok := func(f func() *Shape) func() (*Shape, error) {
		return func() (*Shape, error) { return f(), nil }
	}
	return []generator{
		{KeyTesseract, ok(NewTesseract)},
		{KeyPentachoron, ok(NewPentachoron)},
		{KeyHexadecachoron, ok(NewHexadecachoron)},
		{KeyIcositetrachoron, ok(NewIcositetrachoron)},
		{KeyClifford, func() (*Shape, error) { return NewCliffordTorus(CliffordSteps) }},
		{KeyHyperbola, func() (*Shape, error) {
			return NewHyperbolicSurface(HyperbolicSteps, HyperbolicRange, HyperbolicScale)
		}},
	}
}

func newCatalog(gens []generator) (*Catalog, error) {
	c := &Catalog{
		keys:   make([]string, 0, len(gens)),
		shapes: make(map[string]*Shape, len(gens)),
	}
	for _, g := range gens {
		s, err := g.build()
		if err != nil {
			return nil, fmt.Errorf("building %s: %w", g.key, err)
		}
		if s.Key != g.key {
			return nil, fmt.Errorf("generator for %q produced shape keyed %q", g.key, s.Key)
		}
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.shapes[g.key]; dup {
			return nil, fmt.Errorf("duplicate catalog key %q", g.key)
		}
		c.keys = append(c.keys, g.key)
		c.shapes[g.key] = s
		DebugLog("Catalog: %s", s)
	}
	return c, nil
}

// NewCatalog generates every built-in shape. A generator producing invalid
// topology is a programming error and panics.
func NewCatalog() *Catalog {
	c, err := newCatalog(builtinGenerators())
	if err != nil {
		panic(err)
	}
	return c
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// DefaultCatalog returns the process-wide catalog, built on first use.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() { defaultCatalog = NewCatalog() })
	return defaultCatalog
}

// Lookup returns the shape stored under key or ErrShapeNotFound.
func (c *Catalog) Lookup(key string) (*Shape, error) {
	s, ok := c.shapes[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrShapeNotFound, key)
	}
	return s, nil
}

// Keys returns the catalog keys in their fixed display order.
func (c *Catalog) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Default is the shape selected when nothing else is asked for.
func (c *Catalog) Default() *Shape { return c.shapes[KeyTesseract] }

// LookupOrDefault falls back to Default for unknown keys.
func (c *Catalog) LookupOrDefault(key string) *Shape {
	if s, err := c.Lookup(key); err == nil {
		return s
	}
	DebugLog("Unknown shape %q, falling back to %s", key, KeyTesseract)
	return c.Default()
}
