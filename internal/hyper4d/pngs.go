package hyper4d

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
)

// SavePNGSequence writes one lossless PNG per image as <prefix>_<k>.png,
// zero-padded to the width of the last index.
func SavePNGSequence(frames []*image.NRGBA, prefix string) error {
	n := len(frames)
	width := 1
	if n > 1 {
		width = int(math.Log10(Real(n-1))) + 1
	}
	step := 1
	if n >= 100 {
		step = n / 100
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	for k, img := range frames {
		if k%step == 0 {
			percent := Real(k+1) * 100 / Real(n)
			fmt.Printf("[PNG]  %.2f%%\n", percent)
		}
		full := fmt.Sprintf("%s_%0*d.png", prefix, width, k)
		f, err := os.Create(full)
		if err != nil {
			return err
		}
		if err := enc.Encode(f, img); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}
