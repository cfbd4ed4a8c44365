// Package server exposes the raytracer over HTTP, streaming rendered
// frames to the browser over a websocket connection.
package server

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rmercier/go-whitted-raytracer/pkg/animation"
	"github.com/rmercier/go-whitted-raytracer/pkg/loaders"
	"github.com/rmercier/go-whitted-raytracer/pkg/renderer"
	"github.com/rmercier/go-whitted-raytracer/pkg/scene"
)

// Server handles web requests for the raytracer
type Server struct {
	port       int
	sceneFiles map[string]string
	upgrader   websocket.Upgrader
}

// NewServer creates a new preview server
func NewServer(port int, sceneFiles map[string]string) *Server {
	return &Server{
		port:       port,
		sceneFiles: sceneFiles,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Local preview tool, same-machine clients only
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// RenderRequest is the first message the client sends on the websocket
type RenderRequest struct {
	Scene  string `json:"scene"`  // Scene name (sphere, triangle, move)
	Width  int    `json:"width"`  // Canvas width
	Height int    `json:"height"` // Canvas height
	Frames int    `json:"frames"` // Number of animation frames (1 = static)
}

// FrameUpdate is one rendered frame pushed to the client
type FrameUpdate struct {
	Frame       int    `json:"frame"`
	TotalFrames int    `json:"totalFrames"`
	ImageData   string `json:"imageData"` // Base64 encoded PNG
	ElapsedMs   int64  `json:"elapsedMs"`
	IsComplete  bool   `json:"isComplete"`
}

// ErrorMessage reports a render failure to the client
type ErrorMessage struct {
	Error string `json:"error"`
}

// Start starts the web server
func (s *Server) Start() error {
	http.HandleFunc("/", s.handleIndex)
	http.HandleFunc("/ws", s.handleRender)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting preview server on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// handleRender upgrades the connection, reads one render request, and
// streams frames back until the render completes or the client hangs up
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	var req RenderRequest
	if err := conn.ReadJSON(&req); err != nil {
		log.Printf("reading render request: %v", err)
		return
	}
	s.applyDefaults(&req)

	selectedScene, mode, err := s.createScene(req.Scene)
	if err != nil {
		conn.WriteJSON(ErrorMessage{Error: err.Error()})
		return
	}

	config := renderer.DefaultConfig()
	config.Width = req.Width
	config.Height = req.Height
	raytracer := renderer.NewRaytracer(selectedScene, config)
	animator := animation.NewAnimator(selectedScene, mode)

	startTime := time.Now()
	for frame := 0; frame < req.Frames; frame++ {
		if req.Frames > 1 {
			animator.Advance(selectedScene, frame, req.Frames)
		}

		img := raytracer.Render()

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			conn.WriteJSON(ErrorMessage{Error: fmt.Sprintf("encoding frame: %v", err)})
			return
		}

		update := FrameUpdate{
			Frame:       frame + 1,
			TotalFrames: req.Frames,
			ImageData:   base64.StdEncoding.EncodeToString(buf.Bytes()),
			ElapsedMs:   time.Since(startTime).Milliseconds(),
			IsComplete:  frame == req.Frames-1,
		}
		if err := conn.WriteJSON(update); err != nil {
			// Client disconnected mid-render
			log.Printf("client gone after frame %d: %v", frame+1, err)
			return
		}
	}
}

// applyDefaults fills in unset request fields
func (s *Server) applyDefaults(req *RenderRequest) {
	if req.Scene == "" {
		req.Scene = "sphere"
	}
	if req.Width <= 0 {
		req.Width = 500
	}
	if req.Height <= 0 {
		req.Height = 500
	}
	if req.Frames <= 0 {
		req.Frames = 1
	}
}

// createScene builds the named scene from its description file
func (s *Server) createScene(name string) (*scene.Scene, animation.Mode, error) {
	path, ok := s.sceneFiles[name]
	if !ok {
		return nil, 0, fmt.Errorf("unknown scene: %q", name)
	}

	sf, err := loaders.LoadSceneFile(path)
	if err != nil {
		return nil, 0, err
	}

	mode := animation.OrbitLight
	if name == "move" {
		mode = animation.MoveSpheres
	}

	return scene.NewBoxScene(sf.Spheres, sf.Triangles, sf.Lights), mode, nil
}

// handleIndex serves a minimal page that opens the websocket and displays
// streamed frames
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexHTML)
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>Whitted Raytracer Preview</title></head>
<body style="background:#111;color:#ddd;font-family:monospace">
<h3>Whitted Raytracer Preview</h3>
<label>Scene:
<select id="scene">
  <option>sphere</option><option>triangle</option><option>move</option>
</select></label>
<label>Frames: <input id="frames" type="number" value="1" min="1" max="120"></label>
<button onclick="render()">Render</button>
<div id="status"></div>
<img id="frame" width="500" height="500">
<script>
function render() {
  const ws = new WebSocket("ws://" + location.host + "/ws");
  ws.onopen = () => ws.send(JSON.stringify({
    scene: document.getElementById("scene").value,
    frames: parseInt(document.getElementById("frames").value),
  }));
  ws.onmessage = (e) => {
    const msg = JSON.parse(e.data);
    if (msg.error) { document.getElementById("status").textContent = msg.error; return; }
    document.getElementById("frame").src = "data:image/png;base64," + msg.imageData;
    document.getElementById("status").textContent =
      "frame " + msg.frame + "/" + msg.totalFrames + " (" + msg.elapsedMs + "ms)";
  };
}
</script>
</body>
</html>`
