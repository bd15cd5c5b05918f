package hyper4d

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes one render session.
type Config struct {
	Shape      string    `yaml:"shape"`
	RotDeg     Rot4Deg   `yaml:"rotDeg"`
	Distance   Real      `yaml:"distance"`
	ColorMode  ColorMode `yaml:"colorMode"`
	WSource    WSource   `yaml:"wSource"`
	AutoRotate bool      `yaml:"autoRotate"`
	VertexSize Real      `yaml:"vertexSize"`
	LineWidth  Real      `yaml:"lineWidth"`
	Opacity    Real      `yaml:"opacity"`
	Frames     int       `yaml:"frames"`
	Width      int       `yaml:"width"`
	Height     int       `yaml:"height"`
	GIFOut     string    `yaml:"gifOut"`
	GIFDelay   int       `yaml:"gifDelay,omitempty"`
	PNGPrefix  string    `yaml:"pngPrefix,omitempty"`
}

// DefaultConfig mirrors the explorer's initial settings.
func DefaultConfig() Config {
	fc := DefaultFrameConfig()
	return Config{
		Shape:      KeyTesseract,
		Distance:   fc.Distance,
		ColorMode:  fc.Color,
		WSource:    fc.WSource,
		AutoRotate: true,
		VertexSize: fc.VertexSize,
		LineWidth:  fc.LineWidth,
		Opacity:    fc.Opacity,
		Frames:     DefaultFrames,
		Width:      PreviewWidth,
		Height:     PreviewHeight,
		GIFOut:     GIFOut,
		GIFDelay:   GIFDelay,
	}
}

// ParseConfig decodes YAML on top of DefaultConfig, so missing keys keep defaults.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	DebugLog("Loaded config %s: %+v", path, *cfg)
	return cfg, nil
}

// FrameConfig extracts the per-frame settings.
func (c Config) FrameConfig() FrameConfig {
	return FrameConfig{
		Distance:   c.Distance,
		Color:      c.ColorMode,
		WSource:    c.WSource,
		VertexSize: c.VertexSize,
		LineWidth:  c.LineWidth,
		Opacity:    c.Opacity,
	}
}

// Validate checks the config against a catalog.
func (c Config) Validate(cat *Catalog) error {
	if _, err := cat.Lookup(c.Shape); err != nil {
		return err
	}
	if err := c.FrameConfig().Validate(); err != nil {
		return err
	}
	if c.Frames <= 0 {
		return fmt.Errorf("frames must be > 0, got %d", c.Frames)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.GIFDelay < 0 {
		return fmt.Errorf("gifDelay must be >= 0, got %d", c.GIFDelay)
	}
	return nil
}
