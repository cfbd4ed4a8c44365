package animation

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
)

// frameDelay is the per-frame delay in 10ms units
const frameDelay = 10

// WriteGIF assembles the accumulated frames into a looping animated GIF.
// Frames are quantized to the Plan9 palette, which is close enough for the
// flat-shaded output this renderer produces.
func (f *Frames) WriteGIF(path string) error {
	if len(f.images) == 0 {
		return fmt.Errorf("no frames to assemble")
	}

	out := &gif.GIF{LoopCount: 0}
	for _, img := range f.images {
		paletted := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(paletted, img.Bounds(), img, image.Point{})
		out.Image = append(out.Image, paletted)
		out.Delay = append(out.Delay, frameDelay)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	if err := gif.EncodeAll(file, out); err != nil {
		return fmt.Errorf("encoding GIF: %w", err)
	}

	return nil
}
