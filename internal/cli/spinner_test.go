package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer guards a bytes.Buffer shared with the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerDraws(t *testing.T) {
	var out syncBuffer
	s := newSpinner(context.Background(), &out, "Laying out SVG...")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Update("Writing chart.svg")
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	text := out.String()
	if !strings.Contains(text, "Laying out SVG...") {
		t.Errorf("output missing first message: %q", text)
	}
	if !strings.Contains(text, "Writing chart.svg") {
		t.Errorf("output missing updated message: %q", text)
	}
	if !strings.HasSuffix(text, "\r") {
		t.Errorf("line should be cleared on stop: %q", text)
	}
	if s.Cancelled() {
		t.Error("Stop should not count as cancellation")
	}
	if s.Elapsed() < 400*time.Millisecond {
		t.Errorf("Elapsed() = %v, want at least 400ms", s.Elapsed())
	}
}

func TestSpinnerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinner(ctx, &syncBuffer{}, "Rendering...")
	s.Start()

	cancel()
	time.Sleep(50 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("spinner should report cancellation")
	}
	s.Stop()
}

func TestSpinnerTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s := newSpinner(ctx, &syncBuffer{}, "Rendering...")
	s.Start()
	time.Sleep(150 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("spinner should be cancelled after the timeout")
	}
	s.Stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner(context.Background(), &syncBuffer{}, "Rendering...")
	s.Start()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	var out syncBuffer
	s := newSpinner(nil, &out, "never shown")
	s.Stop()
	if out.String() != "" {
		t.Errorf("unstarted spinner wrote %q", out.String())
	}
	if s.Elapsed() != 0 {
		t.Error("Elapsed() should be zero before Start")
	}
}
