package server

import (
	"fmt"
	"strings"
	"time"

	"github.com/df07/go-progressive-pathtracer/pkg/log"
)

// ConsoleMessage is a renderer log line forwarded to the browser console
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
}

// WebLogger writes renderer progress to the server log and, when a console
// channel is attached, to the client that started the render.
type WebLogger struct {
	renderID    string
	consoleChan chan<- ConsoleMessage
	logger      log.Logger
}

// NewWebLogger creates a logger for one render
func NewWebLogger(renderID string, consoleChan chan<- ConsoleMessage, logger log.Logger) *WebLogger {
	return &WebLogger{
		renderID:    renderID,
		consoleChan: consoleChan,
		logger:      logger,
	}
}

// Printf logs at info level and forwards the line to the console channel.
// Messages are dropped rather than blocking the renderer when the channel is full.
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimSuffix(fmt.Sprintf(format, args...), "\n")

	if wl.logger != nil {
		wl.logger.Infof("[%s] %s", wl.renderID, message)
	}

	if wl.consoleChan == nil {
		return
	}
	select {
	case wl.consoleChan <- ConsoleMessage{
		RenderID:  wl.renderID,
		Message:   message,
		Timestamp: time.Now(),
		Level:     "info",
	}:
	default:
	}
}
