package headless

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/neondrive/internal/config"
	"github.com/vovakirdan/neondrive/internal/games/drive"
)

func simOptions(t *testing.T, seed int64, ticks int, pattern string) Options {
	t.Helper()
	p, err := ParsePattern(pattern)
	if err != nil {
		t.Fatal(err)
	}
	return Options{
		Drive: config.DefaultDriveConfig(),
		Cols:  80,
		Rows:  24,
		Seed:  seed,
		Ticks: ticks,
		Steer: p,
	}
}

func TestRunDeterministic(t *testing.T) {
	opts := simOptions(t, 1234, 2000, "L:40,N:20,R:40")

	a, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	// Patterns are stateless; a fresh script is built per run
	b, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if a.Ticks != b.Ticks || a.Score != b.Score || a.Crashed != b.Crashed {
		t.Errorf("runs differ: %+v vs %+v", a, b)
	}
	if a.RunID == b.RunID {
		t.Error("each run should get its own id")
	}
	if a.Seed != 1234 {
		t.Errorf("Seed = %d, expected 1234", a.Seed)
	}
}

func TestRunTickLimit(t *testing.T) {
	opts := simOptions(t, 99, 10, "")

	r, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	// Nothing can reach the player in ten ticks
	if r.Crashed {
		t.Fatal("unexpected crash")
	}
	if r.Ticks != 10 {
		t.Errorf("Ticks = %d, expected 10", r.Ticks)
	}
	if r.Score <= 0 {
		t.Errorf("Score = %v, expected positive", r.Score)
	}
}

func TestRunUntilCrash(t *testing.T) {
	// With no steering the player eventually meets a car in its lane
	opts := simOptions(t, 7, 0, "N")

	r, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !r.Crashed {
		t.Fatal("an unsteered run should end in a crash")
	}
	if r.Ticks <= 0 || r.Score <= 0 {
		t.Errorf("unexpected report %+v", r)
	}
}

func TestRunSnapshot(t *testing.T) {
	opts := simOptions(t, 5, 30, "R")
	opts.Capture = true

	r, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	lines := strings.Split(r.Snapshot, "\n")
	if len(lines) != 24 {
		t.Fatalf("snapshot has %d lines, expected 24", len(lines))
	}
	if !strings.ContainsRune(r.Snapshot, drive.CarBody) {
		t.Error("snapshot should show the player car")
	}
	if !strings.ContainsRune(r.Snapshot, drive.RoadEdgeChar) {
		t.Error("snapshot should show the road edges")
	}
}

func TestRunDegenerateViewport(t *testing.T) {
	opts := simOptions(t, 1, 10, "")
	opts.Cols, opts.Rows = 3, 3

	_, err := Run(context.Background(), opts)
	if !errors.Is(err, drive.ErrDegenerateGeometry) {
		t.Errorf("Run() error = %v, expected ErrDegenerateGeometry", err)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, simOptions(t, 1, 0, ""))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
}
