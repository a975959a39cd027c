package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func captureStatus(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := statusOut
	statusOut = &buf
	t.Cleanup(func() { statusOut = old })
	return &buf
}

func TestSpinnerWithContext(t *testing.T) {
	captureStatus(t)
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerWithContext(ctx, "Testing with context...")
	s.Start()
	cancel()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context cancellation")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	captureStatus(t)
	s := newSpinnerWithContext(context.Background(), "Testing idempotent stop...")
	s.Start()

	s.Stop()
	s.Stop()
}

func TestSpinnerUpdate(t *testing.T) {
	buf := captureStatus(t)
	s := newSpinnerWithContext(context.Background(), "first")
	s.Start()
	s.Update("second message")
	time.Sleep(200 * time.Millisecond)
	s.StopWithSuccess("Done!")

	out := buf.String()
	if !strings.Contains(out, "second message") {
		t.Errorf("spinner output missing updated message: %q", out)
	}
	if !strings.Contains(out, "Done!") {
		t.Errorf("spinner output missing success message: %q", out)
	}
}

func TestSpinnerStopWithError(t *testing.T) {
	buf := captureStatus(t)
	s := newSpinnerWithContext(context.Background(), "Testing error...")
	s.Start()
	s.StopWithError("Failed!")

	if !strings.Contains(buf.String(), "Failed!") {
		t.Errorf("missing error message: %q", buf.String())
	}
}
