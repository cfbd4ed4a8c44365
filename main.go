package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rmercier/go-whitted-raytracer/pkg/animation"
	"github.com/rmercier/go-whitted-raytracer/pkg/loaders"
	"github.com/rmercier/go-whitted-raytracer/pkg/ppm"
	"github.com/rmercier/go-whitted-raytracer/pkg/renderer"
	"github.com/rmercier/go-whitted-raytracer/pkg/scene"
)

// sceneFiles maps scene names to their description files
var sceneFiles = map[string]string{
	"sphere":   "scenes/book_shapes.txt",
	"triangle": "scenes/triangle_scene.txt",
	"move":     "scenes/shapes_move.txt",
}

func main() {
	sceneType := flag.String("scene", "sphere", "Scene type: 'sphere', 'triangle' or 'move'")
	animate := flag.Bool("animate", false, "Render an animation instead of a single frame")
	frames := flag.Int("frames", 36, "Number of animation frames")
	width := flag.Int("width", 500, "Canvas width in pixels")
	height := flag.Int("height", 500, "Canvas height in pixels")
	output := flag.String("output", "output.ppm", "Output file for single-frame renders")
	compress := flag.Bool("gzip", false, "Gzip-compress PPM output")
	workers := flag.Int("workers", 0, "Parallel render workers (0 = CPU count, 1 = sequential)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  sphere   - Walled room with spheres from scenes/book_shapes.txt")
		fmt.Println("  triangle - Walled room with triangles from scenes/triangle_scene.txt")
		fmt.Println("  move     - Orbiting spheres from scenes/shapes_move.txt")
		return
	}

	fmt.Println("Creating scene...")
	selectedScene, mode, err := createScene(*sceneType)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Scene created with %d sphere(s), %d triangle(s) and %d light(s)\n",
		len(selectedScene.Spheres), len(selectedScene.Triangles), len(selectedScene.Lights))

	config := renderer.DefaultConfig()
	config.Width = *width
	config.Height = *height
	config.NumWorkers = *workers

	raytracer := renderer.NewRaytracer(selectedScene, config)

	if !*animate {
		fmt.Println("Rendering single static frame...")
		startTime := time.Now()
		img := raytracer.Render()
		fmt.Printf("Render completed in %v\n", time.Since(startTime))

		path, err := ppm.WriteFile(*output, img, *compress)
		if err != nil {
			fmt.Printf("Error saving image: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Image saved to %s\n", path)
		return
	}

	fmt.Printf("Starting animation with %d frames...\n", *frames)
	animator := animation.NewAnimator(selectedScene, mode)
	var collected animation.Frames

	for i := 0; i < *frames; i++ {
		animator.Advance(selectedScene, i, *frames)

		fmt.Printf("Rendering frame %d/%d\n", i+1, *frames)
		img := raytracer.Render()

		path, err := ppm.WriteFile(fmt.Sprintf("frame_%02d.ppm", i), img, *compress)
		if err != nil {
			fmt.Printf("Error saving frame: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Frame saved to %s\n", path)

		collected.Append(img)
	}

	fmt.Println("Rendering complete. Assembling GIF...")
	if err := collected.WriteGIF("animation.gif"); err != nil {
		fmt.Printf("Error assembling GIF: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Animation saved as animation.gif")
}

// createScene builds the named scene and returns the animation mode that
// goes with it
func createScene(sceneType string) (*scene.Scene, animation.Mode, error) {
	path, ok := sceneFiles[sceneType]
	if !ok {
		return nil, 0, fmt.Errorf("unknown scene type: %q", sceneType)
	}

	sf, err := loaders.LoadSceneFile(path)
	if err != nil {
		return nil, 0, err
	}

	mode := animation.OrbitLight
	if sceneType == "move" {
		mode = animation.MoveSpheres
	}

	return scene.NewBoxScene(sf.Spheres, sf.Triangles, sf.Lights), mode, nil
}
