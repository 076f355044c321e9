package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerBasic(t *testing.T) {
	s := newSpinner("Loading tournament...")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	// Stop cancels the internal context, so Cancelled reports true after a
	// manual stop as well.
	if !s.Cancelled() {
		t.Error("Cancelled should report true after Stop")
	}
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerWithContext(ctx, "Computing centralities...")
	s.Start()

	cancel()

	// Give the goroutine time to notice cancellation.
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context cancellation")
	}
}

func TestSpinnerWithTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s := newSpinnerWithContext(ctx, "Rendering artifacts...")
	s.Start()

	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context timeout")
	}
}

func TestSpinnerSetMessage(t *testing.T) {
	s := newSpinner("Loading tournament...")
	s.Start()
	time.Sleep(50 * time.Millisecond)

	// Shorter follow-up message must not leave residue from the longer one.
	s.SetMessage("Ranking...")
	time.Sleep(50 * time.Millisecond)
	s.SetMessage("Rendering network artifacts...")
	time.Sleep(50 * time.Millisecond)

	s.Stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner("Analyzing...")
	s.Start()

	// Repeated stops must not panic.
	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithSuccess(t *testing.T) {
	s := newSpinner("Analyzing...")
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithSuccess("Analysis complete")
}

func TestSpinnerStopWithError(t *testing.T) {
	s := newSpinner("Analyzing...")
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithError("Analysis failed")
}
