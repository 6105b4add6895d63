package mcp

import (
	"io"
	"log/slog"
	"testing"

	"github.com/claude/stride/internal/coach"
	"github.com/claude/stride/internal/plan"
)

func newTestCoach(t *testing.T) *coach.Coach {
	t.Helper()
	c, err := coach.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("coach.New: %v", err)
	}
	return c
}

// TestNew verifies the server constructs with all tools and resources
// registered.
func TestNew(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := New(newTestCoach(t), "test", log)
	if s == nil {
		t.Fatal("New returned nil server")
	}
}

// TestMethodologySummaries verifies the listing payload covers every
// methodology with a complete per-phase target map.
func TestMethodologySummaries(t *testing.T) {
	summaries := methodologySummaries(newTestCoach(t))
	if len(summaries) != 3 {
		t.Fatalf("got %d summaries, want 3", len(summaries))
	}
	for _, s := range summaries {
		if s.ID == "" {
			t.Error("summary with empty id")
		}
		if len(s.Targets) != len(plan.AllPhases) {
			t.Errorf("%s: %d phase targets, want %d", s.ID, len(s.Targets), len(plan.AllPhases))
		}
		for phase, d := range s.Targets {
			if !d.IsComplete() {
				t.Errorf("%s/%s target %+v does not sum to 100", s.ID, phase, d)
			}
		}
	}
}
