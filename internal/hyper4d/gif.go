package hyper4d

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
)

// SaveAnimatedGIF writes one GIF frame per image.
// delay is in 100ths of a second (e.g., 4 => 25 fps).
func SaveAnimatedGIF(frames []*image.NRGBA, path string, delay int) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to write to %s", path)
	}
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0,
	}
	n := len(frames)
	for k, img := range frames {
		if k%imax(1, n/100) == 0 { // ~1% steps
			percent := Real(k+1) * 100 / Real(n)
			fmt.Printf("[GIF] %.2f%%\n", percent)
		}
		// Quantize to paletted for GIF
		pimg := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), img, image.Point{})

		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, out)
}
