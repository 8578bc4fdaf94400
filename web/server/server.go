package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-progressive-pathtracer/pkg/log"
	"github.com/df07/go-progressive-pathtracer/pkg/scene"
)

// Request limits shared by the render and inspect endpoints
const (
	DefaultWidth = 400
	MinWidth     = 16
	MaxWidth     = 2000

	DefaultPasses = 10
	MaxPasses     = 10000

	DefaultTileSize = 64
)

// Server serves the scene list and streams progressive renders over SSE
type Server struct {
	port      int
	staticDir string
	logger    log.Logger
}

// NewServer creates a new web server. Static files are served from staticDir
// when it is not empty.
func NewServer(port int, staticDir string) *Server {
	return &Server{
		port:      port,
		staticDir: staticDir,
		logger:    log.New("server"),
	}
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	if s.staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(s.staticDir)))
	}
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start listens on the configured port until the server fails
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Noticef("starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the registered scenes in display order
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.List())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// sceneRequest holds the parameters that select and size a scene
type sceneRequest struct {
	Scene string
	Width int
	Seed  int64
}

func parseSceneRequest(values url.Values) (sceneRequest, error) {
	req := sceneRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = "cornell-box"
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", DefaultWidth, MinWidth, MaxWidth); err != nil {
		return req, err
	}
	seed, err := parseIntParam(values, "seed", 42, 1, 1<<31-1)
	if err != nil {
		return req, err
	}
	req.Seed = int64(seed)
	return req, nil
}

func (r sceneRequest) build() (*scene.Scene, error) {
	return scene.New(r.Scene, scene.Options{Width: r.Width, Seed: r.Seed})
}

// parseIntParam parses an integer query parameter, falling back to def when
// it is absent and rejecting values outside [min, max].
func parseIntParam(values url.Values, key string, def, min, max int) (int, error) {
	str := values.Get(key)
	if str == "" {
		return def, nil
	}

	val, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter: %q", key, str)
	}
	if val < min || val > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}
	return val, nil
}
