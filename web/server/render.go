package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/df07/go-progressive-pathtracer/pkg/output"
	"github.com/df07/go-progressive-pathtracer/pkg/renderer"
	"github.com/df07/go-progressive-pathtracer/pkg/scene"
)

// SSEEvent is a single server-sent event
type SSEEvent struct {
	Type string
	Data string
}

// PassUpdate is sent after every completed pass
type PassUpdate struct {
	PassNumber      int    `json:"passNumber"`
	TotalPasses     int    `json:"totalPasses"`
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	ImageData       string `json:"imageData"` // Base64 encoded PNG
	SamplesPerPixel int    `json:"samplesPerPixel"`
	TotalSamples    int    `json:"totalSamples"`
	PassMs          int64  `json:"passMs"`
	ElapsedMs       int64  `json:"elapsedMs"`
	PrimitiveCount  int    `json:"primitiveCount"`
	IsComplete      bool   `json:"isComplete"`
}

// renderRequest adds the pass count to the scene parameters
type renderRequest struct {
	sceneRequest
	Passes int
}

func parseRenderRequest(r *http.Request) (renderRequest, error) {
	sr, err := parseSceneRequest(r.URL.Query())
	if err != nil {
		return renderRequest{}, err
	}
	req := renderRequest{sceneRequest: sr}
	if req.Passes, err = parseIntParam(r.URL.Query(), "passes", DefaultPasses, 1, MaxPasses); err != nil {
		return renderRequest{}, err
	}
	return req, nil
}

// handleRender streams a progressive render as SSE. Each pass produces a
// "pass" event, renderer log lines produce "console" events and the stream ends
// with "complete" or "error". A client disconnect cancels the render.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}

	sc, err := req.build()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, scene.ErrUnknownScene) {
			status = http.StatusNotFound
		}
		writeJSONError(w, status, err)
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	consoleChan := make(chan ConsoleMessage, 50)
	webLogger := NewWebLogger(renderID, consoleChan, s.logger)

	config := renderer.DefaultProgressiveConfig()
	config.TileSize = DefaultTileSize
	config.MaxPasses = req.Passes
	config.Seed = req.Seed
	pr, err := renderer.NewProgressiveRaytracer(sc, config, webLogger)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}

	setSSEHeaders(w)
	s.logger.Infof("%s: rendering %s at %dx%d, %d passes", renderID, sc.Name, sc.Camera.Width(), sc.Camera.Height(), pr.PassLimit())

	startTime := time.Now()
	primitives := sc.PrimitiveCount()
	passChan, errChan := pr.RenderProgressive(ctx)

	// The handler goroutine is the only writer to w
	send := func(event SSEEvent) {
		if ctx.Err() != nil {
			return
		}
		if err := writeSSEEvent(w, event); err != nil {
			cancel()
		}
	}

	for passChan != nil {
		select {
		case msg := <-consoleChan:
			send(consoleEvent(msg))
		case result, ok := <-passChan:
			if !ok {
				passChan = nil
				continue
			}
			event, err := passEvent(result, pr.PassLimit(), primitives, startTime)
			if err != nil {
				s.logger.Errorf("%s: encoding pass %d: %v", renderID, result.PassNumber, err)
				send(SSEEvent{Type: "error", Data: err.Error()})
				cancel()
				continue
			}
			send(event)
		}
	}

	// Flush log lines written after the last pass
	for drained := false; !drained; {
		select {
		case msg := <-consoleChan:
			send(consoleEvent(msg))
		default:
			drained = true
		}
	}

	if err := <-errChan; err != nil {
		if errors.Is(err, context.Canceled) {
			s.logger.Infof("%s: cancelled", renderID)
			return
		}
		s.logger.Errorf("%s: %v", renderID, err)
		send(SSEEvent{Type: "error", Data: err.Error()})
		return
	}
	send(SSEEvent{Type: "complete", Data: "Rendering completed"})
}

func passEvent(result renderer.PassResult, totalPasses, primitives int, startTime time.Time) (SSEEvent, error) {
	imageData, err := bufferToBase64PNG(result.Buffer)
	if err != nil {
		return SSEEvent{}, err
	}

	data, err := json.Marshal(PassUpdate{
		PassNumber:      result.PassNumber,
		TotalPasses:     totalPasses,
		Width:           result.Buffer.Width,
		Height:          result.Buffer.Height,
		ImageData:       imageData,
		SamplesPerPixel: result.Stats.SamplesPerPixel,
		TotalSamples:    result.Stats.TotalSamples,
		PassMs:          result.Stats.PassDuration.Milliseconds(),
		ElapsedMs:       time.Since(startTime).Milliseconds(),
		PrimitiveCount:  primitives,
		IsComplete:      result.IsLast,
	})
	if err != nil {
		return SSEEvent{}, err
	}
	return SSEEvent{Type: "pass", Data: string(data)}, nil
}

func consoleEvent(msg ConsoleMessage) SSEEvent {
	data, _ := json.Marshal(msg)
	return SSEEvent{Type: "console", Data: string(data)}
}

// bufferToBase64PNG converts a snapshot to a base64-encoded PNG
func bufferToBase64PNG(buf *renderer.PixelBuffer) (string, error) {
	var b bytes.Buffer
	if err := output.WritePNG(&b, buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b.Bytes()), nil
}

// setSSEHeaders sets the required headers for Server-Sent Events
func setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

func writeSSEEvent(w http.ResponseWriter, event SSEEvent) error {
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
		return err
	}
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
	return nil
}
