package batch

import (
	"context"
	"testing"
	"time"
)

func TestPacerEnforcesInterval(t *testing.T) {
	pacer := NewPacer(20 * time.Millisecond)

	start := time.Now()
	if err := pacer.Wait(context.Background()); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Errorf("first Wait returned after %v, want at least the interval", elapsed)
	}
}

func TestPacerWaitCancellable(t *testing.T) {
	pacer := NewPacer(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := pacer.Wait(ctx); err == nil {
		t.Fatal("Wait returned nil for a cancelled context")
	}
}
