package server

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-progressive-pathtracer/pkg/log"
)

func TestWebLogger_BasicLogging(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("test-render-123", messageChan, nil)

	logger.Printf("Pass %d completed\n", 3)

	select {
	case msg := <-messageChan:
		if msg.Message != "Pass 3 completed" {
			t.Errorf("Expected message 'Pass 3 completed', got '%s'", msg.Message)
		}
		if msg.RenderID != "test-render-123" {
			t.Errorf("Expected render ID 'test-render-123', got '%s'", msg.RenderID)
		}
		if msg.Level != "info" {
			t.Errorf("Expected level 'info', got '%s'", msg.Level)
		}
		if time.Since(msg.Timestamp) > time.Second {
			t.Errorf("Timestamp seems too old: %v", msg.Timestamp)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("Timeout waiting for console message")
	}
}

func TestWebLogger_MultipleMessages(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("test-render-456", messageChan, nil)

	messages := []string{"Message 1", "Message 2", "Message 3"}
	for _, msg := range messages {
		logger.Printf("%s\n", msg)
	}

	for i, expected := range messages {
		select {
		case msg := <-messageChan:
			if msg.Message != expected {
				t.Errorf("Message %d: expected '%s', got '%s'", i, expected, msg.Message)
			}
		case <-time.After(200 * time.Millisecond):
			t.Fatalf("Timeout waiting for message %d", i+1)
		}
	}
}

func TestWebLogger_ChannelFull(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 1)
	logger := NewWebLogger("test-render-789", messageChan, nil)

	// The second and third messages are dropped instead of blocking
	done := make(chan struct{})
	go func() {
		logger.Printf("Message 1\n")
		logger.Printf("Message 2\n")
		logger.Printf("Message 3\n")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Printf blocked on a full channel")
	}

	if msg := <-messageChan; msg.Message != "Message 1" {
		t.Errorf("Expected the first message to be kept, got '%s'", msg.Message)
	}
}

func TestWebLogger_NilChannel(t *testing.T) {
	logger := NewWebLogger("test-render-nil", nil, nil)
	logger.Printf("Test message with nil channel\n")
}

func TestWebLogger_ServerLog(t *testing.T) {
	var buf bytes.Buffer
	log.SetSink(&buf)
	log.SetLevel(log.Info)
	defer func() {
		log.SetSink(os.Stdout)
		log.SetLevel(log.Notice)
	}()

	logger := NewWebLogger("render-42", nil, log.New("test"))
	logger.Printf("Starting progressive rendering: %dx%d\n", 400, 225)

	out := buf.String()
	if !strings.Contains(out, "[render-42] Starting progressive rendering: 400x225") {
		t.Errorf("Expected render line in server log, got %q", out)
	}
}
