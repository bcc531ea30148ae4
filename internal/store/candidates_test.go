package store

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rmalka/county-chairs/internal/candidate"
)

func testCandidateStore(t *testing.T) *CandidateStore {
	t.Helper()

	s, err := OpenCandidates(filepath.Join(t.TempDir(), "candidates.json"))
	if err != nil {
		t.Fatalf("failed to open candidate store: %v", err)
	}
	s.SetClock(func() time.Time {
		return time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	})
	return s
}

func TestCandidateCreateAssignsSequentialIDs(t *testing.T) {
	s := testCandidateStore(t)

	first, err := s.Create(candidate.Record{Name: "Jane Smith", County: "Fairfax County, VA", StateCode: "VA"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if first.ID != "candidate-001" {
		t.Errorf("expected candidate-001, got %q", first.ID)
	}
	if first.CreatedAt != "2026-02-01" || first.UpdatedAt != "2026-02-01" {
		t.Errorf("expected audit stamps from clock, got %q / %q", first.CreatedAt, first.UpdatedAt)
	}
	if first.Status != candidate.StatusPotential {
		t.Errorf("expected default status potential, got %q", first.Status)
	}

	second, _ := s.Create(candidate.Record{Name: "Al Lee", County: "Knox County, OH", StateCode: "OH"})
	if second.ID != "candidate-002" {
		t.Errorf("expected candidate-002, got %q", second.ID)
	}
}

func TestCandidateIDsSurviveDeletion(t *testing.T) {
	s := testCandidateStore(t)
	s.Create(candidate.Record{Name: "A"})
	s.Create(candidate.Record{Name: "B"})

	if err := s.Delete("candidate-002"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	// The freed number is not reused.
	third, _ := s.Create(candidate.Record{Name: "C"})
	if third.ID != "candidate-003" {
		t.Errorf("expected candidate-003 after deletion, got %q", third.ID)
	}
}

func TestCandidateUpdate(t *testing.T) {
	s := testCandidateStore(t)
	s.Create(candidate.Record{Name: "Jane Smith", Status: candidate.StatusPotential})

	s.SetClock(func() time.Time {
		return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	})

	rec, err := s.Update("candidate-001", map[string]json.RawMessage{
		"status":    json.RawMessage(`"contacted"`),
		"createdAt": json.RawMessage(`"1999-01-01"`),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if rec.Status != candidate.StatusContacted {
		t.Errorf("expected contacted, got %q", rec.Status)
	}
	if rec.CreatedAt != "2026-02-01" {
		t.Errorf("createdAt must be immutable, got %q", rec.CreatedAt)
	}
	if rec.UpdatedAt != "2026-03-10" {
		t.Errorf("expected updatedAt bumped, got %q", rec.UpdatedAt)
	}
}

func TestCandidateNotFound(t *testing.T) {
	s := testCandidateStore(t)

	if _, err := s.Get("candidate-099"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound from Get, got %v", err)
	}
	if _, err := s.Update("candidate-099", nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound from Update, got %v", err)
	}
	if err := s.Delete("candidate-099"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound from Delete, got %v", err)
	}
}
