package animation

import (
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"
)

func solidFrame(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestFrames_WriteGIF(t *testing.T) {
	var frames Frames
	frames.Append(solidFrame(color.RGBA{R: 255, A: 255}))
	frames.Append(solidFrame(color.RGBA{B: 255, A: 255}))

	if frames.Count() != 2 {
		t.Fatalf("Expected 2 frames, got %d", frames.Count())
	}

	path := filepath.Join(t.TempDir(), "out.gif")
	if err := frames.WriteGIF(path); err != nil {
		t.Fatalf("WriteGIF failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Opening output: %v", err)
	}
	defer file.Close()

	decoded, err := gif.DecodeAll(file)
	if err != nil {
		t.Fatalf("Expected a valid GIF: %v", err)
	}
	if len(decoded.Image) != 2 {
		t.Errorf("Expected 2 GIF frames, got %d", len(decoded.Image))
	}
	if decoded.LoopCount != 0 {
		t.Errorf("Expected infinite loop, got LoopCount %d", decoded.LoopCount)
	}
}

func TestFrames_WriteGIF_Empty(t *testing.T) {
	var frames Frames
	if err := frames.WriteGIF(filepath.Join(t.TempDir(), "out.gif")); err == nil {
		t.Error("Expected error for an empty frame set")
	}
}
