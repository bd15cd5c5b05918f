package hyper4d

import (
	"fmt"
	"image"
	"strings"
	"time"
)

// Run loads a YAML config and renders it.
func Run(cfgPath string) error {
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	return RunConfig(cfg)
}

// RunConfig renders cfg.Frames frames with the animator driving rotation, then
// writes an animated GIF (or a PNG sequence when PNG is set).
func RunConfig(cfg *Config) error {
	cat := DefaultCatalog()
	if err := cfg.Validate(cat); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	shape, _ := cat.Lookup(cfg.Shape)
	fc := cfg.FrameConfig()

	start := time.Now()
	frames := RenderFrames(shape, NewAnimator(cfg.RotDeg.Radians(), cfg.AutoRotate), fc, cfg.Frames, cfg.Width, cfg.Height)
	DebugLog("Rendered %d frames of %s in %s", len(frames), shape.Key, time.Since(start))

	if PNG {
		prefix := cfg.PNGPrefix
		if prefix == "" {
			prefix = strings.TrimSuffix(cfg.GIFOut, ".gif")
		}
		if err := SavePNGSequence(frames, prefix); err != nil {
			return fmt.Errorf("saving PNG sequence: %w", err)
		}
		DebugLog("Saved PNG sequence with prefix: %s", prefix)
		return nil
	}
	if err := SaveAnimatedGIF(frames, cfg.GIFOut, cfg.GIFDelay); err != nil {
		return fmt.Errorf("saving GIF: %w", err)
	}
	DebugLog("Saved animated GIF: %s", cfg.GIFOut)
	return nil
}

// RenderFrames ticks anim n times and rasterizes each assembled frame.
// A static rotation repeats the same key, so the cache skips reassembly.
func RenderFrames(shape *Shape, anim *Animator, fc FrameConfig, n, width, height int) []*image.NRGBA {
	cam := NewCamera(width, height)
	cache := NewFrameCache(0)
	out := make([]*image.NRGBA, 0, n)
	for k := 0; k < n; k++ {
		rot := anim.Tick()
		f := cache.Get(shape, rot, fc)
		img := image.NewNRGBA(image.Rect(0, 0, width, height))
		DrawFrame(img, f, cam, anim.Orbit)
		out = append(out, img)
	}
	if Debug {
		fmt.Println(cache)
	}
	return out
}
