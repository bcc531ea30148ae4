package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rmalka/county-chairs/internal/candidate"
	"github.com/rmalka/county-chairs/internal/chair"
	"github.com/rmalka/county-chairs/internal/logger"
)

// CandidateStore owns the candidate tracking document. It mirrors Store's
// whole-document read-modify-write model but assigns sequential IDs instead
// of deriving them, since candidates have no natural unique key.
type CandidateStore struct {
	path string
	now  func() time.Time
}

// OpenCandidates prepares a candidate store backed by the JSON document at
// path, creating an empty document if absent.
func OpenCandidates(path string) (*CandidateStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]\n"), 0644); err != nil {
			return nil, fmt.Errorf("initializing candidate document: %w", err)
		}
	}

	return &CandidateStore{
		path: path,
		now:  time.Now,
	}, nil
}

// SetClock overrides the time source used for audit timestamps. Intended for
// tests.
func (s *CandidateStore) SetClock(now func() time.Time) {
	s.now = now
}

func (s *CandidateStore) readAll() ([]candidate.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []candidate.Record{}, nil
		}
		return nil, fmt.Errorf("reading candidate document: %w", err)
	}

	var records []candidate.Record
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Warn("Candidate document is unparseable, treating as empty", logger.Fields{
			"path":  s.path,
			"error": err.Error(),
		})
		return []candidate.Record{}, nil
	}

	return records, nil
}

func (s *CandidateStore) writeAll(records []candidate.Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding candidate document: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing candidate document: %w", err)
	}

	return nil
}

// List returns all candidates in document order.
func (s *CandidateStore) List() ([]candidate.Record, error) {
	return s.readAll()
}

// Get returns the candidate with the given ID.
func (s *CandidateStore) Get(id string) (candidate.Record, error) {
	records, err := s.readAll()
	if err != nil {
		return candidate.Record{}, err
	}

	for _, rec := range records {
		if rec.ID == id {
			return rec, nil
		}
	}

	return candidate.Record{}, ErrNotFound
}

// Create adds a new candidate with a server-assigned sequential ID and audit
// timestamps.
func (s *CandidateStore) Create(rec candidate.Record) (candidate.Record, error) {
	records, err := s.readAll()
	if err != nil {
		return candidate.Record{}, err
	}

	rec.ID = candidate.FormatID(nextCandidateNumber(records))
	today := chair.DateStamp(s.now())
	rec.CreatedAt = today
	rec.UpdatedAt = today
	if rec.Status == "" {
		rec.Status = candidate.StatusPotential
	}
	if rec.Alignment == "" {
		rec.Alignment = candidate.AlignmentForScore(rec.AlignmentScore)
	}
	if rec.PreviousOffices == nil {
		rec.PreviousOffices = []string{}
	}

	records = append(records, rec)
	if err := s.writeAll(records); err != nil {
		return candidate.Record{}, err
	}

	return rec, nil
}

// nextCandidateNumber returns one past the highest numeric suffix in use, so
// IDs stay unique even after deletions.
func nextCandidateNumber(records []candidate.Record) int {
	max := 0
	for _, rec := range records {
		suffix, ok := strings.CutPrefix(rec.ID, "candidate-")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(suffix); err == nil && n > max {
			max = n
		}
	}
	return max + 1
}

// Update merges the provided fields into the candidate with the given ID,
// bumping the updatedAt stamp. The ID and createdAt are immutable.
func (s *CandidateStore) Update(id string, patch map[string]json.RawMessage) (candidate.Record, error) {
	records, err := s.readAll()
	if err != nil {
		return candidate.Record{}, err
	}

	for i, rec := range records {
		if rec.ID != id {
			continue
		}

		merged, err := mergeCandidate(rec, patch)
		if err != nil {
			return candidate.Record{}, err
		}
		merged.UpdatedAt = chair.DateStamp(s.now())

		records[i] = merged
		if err := s.writeAll(records); err != nil {
			return candidate.Record{}, err
		}
		return merged, nil
	}

	return candidate.Record{}, ErrNotFound
}

func mergeCandidate(existing candidate.Record, patch map[string]json.RawMessage) (candidate.Record, error) {
	base, err := json.Marshal(existing)
	if err != nil {
		return candidate.Record{}, fmt.Errorf("encoding existing candidate: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(base, &fields); err != nil {
		return candidate.Record{}, fmt.Errorf("decoding existing candidate: %w", err)
	}

	for k, v := range patch {
		fields[k] = v
	}
	fields["id"], _ = json.Marshal(existing.ID)
	fields["createdAt"], _ = json.Marshal(existing.CreatedAt)

	combined, err := json.Marshal(fields)
	if err != nil {
		return candidate.Record{}, fmt.Errorf("encoding merged candidate: %w", err)
	}

	var merged candidate.Record
	if err := json.Unmarshal(combined, &merged); err != nil {
		return candidate.Record{}, fmt.Errorf("invalid field in update: %w", err)
	}

	return merged, nil
}

// Delete removes the candidate with the given ID.
func (s *CandidateStore) Delete(id string) error {
	records, err := s.readAll()
	if err != nil {
		return err
	}

	for i, rec := range records {
		if rec.ID == id {
			records = append(records[:i], records[i+1:]...)
			return s.writeAll(records)
		}
	}

	return ErrNotFound
}
