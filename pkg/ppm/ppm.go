// Package ppm serializes images to the plain-text PPM (P3) pixel format.
package ppm

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Encode writes img to w as a plain PPM (P3) stream: magic token,
// dimensions, max channel value, then space-separated RGB triples, one
// image row per line, top to bottom.
func Encode(w io.Writer, img image.Image) error {
	bw := bufio.NewWriter(w)
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return err
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if _, err := fmt.Fprintf(bw, "%d %d %d ", r>>8, g>>8, b>>8); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile saves img to path as PPM. When compress is true the stream is
// gzipped and ".gz" is appended to the path unless already present; a full
// canvas frame is a few megabytes of ASCII otherwise.
func WriteFile(path string, img image.Image, compress bool) (string, error) {
	if compress && !strings.HasSuffix(path, ".gz") {
		path += ".gz"
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}

	var w io.Writer = file
	var gz *gzip.Writer
	if compress {
		gz = gzip.NewWriter(file)
		w = gz
	}

	if err := Encode(w, img); err != nil {
		file.Close()
		return "", fmt.Errorf("encoding %s: %w", path, err)
	}

	if gz != nil {
		if err := gz.Close(); err != nil {
			file.Close()
			return "", fmt.Errorf("closing gzip stream for %s: %w", path, err)
		}
	}

	if err := file.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}
