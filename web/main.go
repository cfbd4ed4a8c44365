package main

import (
	"flag"
	"log"

	"github.com/rmercier/go-whitted-raytracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port for the preview server")
	flag.Parse()

	sceneFiles := map[string]string{
		"sphere":   "scenes/book_shapes.txt",
		"triangle": "scenes/triangle_scene.txt",
		"move":     "scenes/shapes_move.txt",
	}

	srv := server.NewServer(*port, sceneFiles)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
