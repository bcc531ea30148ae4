package store

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rmalka/county-chairs/internal/chair"
	"github.com/rmalka/county-chairs/internal/logger"
)

//go:embed seed.json
var seedData []byte

// Store owns the contact record document. All mutation goes through its
// methods so the uniqueness invariant on (stateCode, county) and ID
// immutability are enforced in one place.
type Store struct {
	path string
	now  func() time.Time
}

// Open prepares a store backed by the JSON document at path. If the document
// does not exist it is initialized from the bundled seed dataset.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, seedData, 0644); err != nil {
			return nil, fmt.Errorf("writing seed data: %w", err)
		}
	}

	return &Store{
		path: path,
		now:  time.Now,
	}, nil
}

// SetClock overrides the time source used for lastVerified stamps. Intended
// for tests.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// readAll loads the full document. A missing or unparseable document reads as
// an empty collection so a corrupt file degrades to "no data" instead of
// taking down every endpoint.
func (s *Store) readAll() ([]chair.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []chair.Record{}, nil
		}
		return nil, fmt.Errorf("reading document: %w", err)
	}

	var records []chair.Record
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Warn("Contact document is unparseable, treating as empty", logger.Fields{
			"path":  s.path,
			"error": err.Error(),
		})
		return []chair.Record{}, nil
	}

	return records, nil
}

func (s *Store) writeAll(records []chair.Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}

	return nil
}

// List returns all records in document order.
func (s *Store) List() ([]chair.Record, error) {
	return s.readAll()
}

// Get returns the record with the given ID.
func (s *Store) Get(id string) (chair.Record, error) {
	records, err := s.readAll()
	if err != nil {
		return chair.Record{}, err
	}

	for _, rec := range records {
		if rec.ID == id {
			return rec, nil
		}
	}

	return chair.Record{}, ErrNotFound
}

// Create adds a new record. The ID is always computed server-side from
// (stateCode, county); any caller-supplied ID is ignored. Creating a second
// record for the same normalized county fails with a DuplicateError.
func (s *Store) Create(rec chair.Record) (chair.Record, error) {
	records, err := s.readAll()
	if err != nil {
		return chair.Record{}, err
	}

	rec.ID = chair.GenerateID(rec.StateCode, rec.County)
	if rec.LastVerified == "" {
		rec.LastVerified = chair.DateStamp(s.now())
	}
	if rec.ChairName == "" {
		rec.ChairName = chair.NameTBD
	}

	for _, existing := range records {
		if existing.ID == rec.ID {
			return chair.Record{}, &DuplicateError{ID: rec.ID}
		}
	}

	records = append(records, rec)
	if err := s.writeAll(records); err != nil {
		return chair.Record{}, err
	}

	return rec, nil
}

// Update merges the provided fields into the record with the given ID. The ID
// itself is immutable; a patch that tries to change it is overridden.
func (s *Store) Update(id string, patch map[string]json.RawMessage) (chair.Record, error) {
	records, err := s.readAll()
	if err != nil {
		return chair.Record{}, err
	}

	for i, rec := range records {
		if rec.ID != id {
			continue
		}

		merged, err := mergeRecord(rec, patch)
		if err != nil {
			return chair.Record{}, err
		}

		records[i] = merged
		if err := s.writeAll(records); err != nil {
			return chair.Record{}, err
		}
		return merged, nil
	}

	return chair.Record{}, ErrNotFound
}

// mergeRecord applies a sparse JSON patch over an existing record. Fields
// absent from the patch keep their current values; explicit nulls clear
// optional fields.
func mergeRecord(existing chair.Record, patch map[string]json.RawMessage) (chair.Record, error) {
	base, err := json.Marshal(existing)
	if err != nil {
		return chair.Record{}, fmt.Errorf("encoding existing record: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(base, &fields); err != nil {
		return chair.Record{}, fmt.Errorf("decoding existing record: %w", err)
	}

	for k, v := range patch {
		fields[k] = v
	}
	fields["id"], _ = json.Marshal(existing.ID)

	combined, err := json.Marshal(fields)
	if err != nil {
		return chair.Record{}, fmt.Errorf("encoding merged record: %w", err)
	}

	var merged chair.Record
	if err := json.Unmarshal(combined, &merged); err != nil {
		return chair.Record{}, fmt.Errorf("invalid field in update: %w", err)
	}

	return merged, nil
}

// Delete removes the record with the given ID.
func (s *Store) Delete(id string) error {
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

// Upsert inserts the record or replaces an existing one with the same ID.
// Used by the merge command, where a later scrape overwrites stale entries.
// Reports whether the record was newly created.
func (s *Store) Upsert(rec chair.Record) (bool, error) {
	records, err := s.readAll()
	if err != nil {
		return false, err
	}

	if rec.ID == "" {
		rec.ID = chair.GenerateID(rec.StateCode, rec.County)
	}

	for i, existing := range records {
		if existing.ID == rec.ID {
			records[i] = rec
			return false, s.writeAll(records)
		}
	}

	records = append(records, rec)
	return true, s.writeAll(records)
}

// SortByStateCounty orders the document by (stateCode, county) and rewrites
// it, matching the layout humans expect when reviewing the file.
func (s *Store) SortByStateCounty() error {
	records, err := s.readAll()
	if err != nil {
		return err
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].StateCode != records[j].StateCode {
			return records[i].StateCode < records[j].StateCode
		}
		return records[i].County < records[j].County
	})

	return s.writeAll(records)
}

// StateSummary aggregates record coverage for one state.
type StateSummary struct {
	StateCode string `json:"stateCode"`
	State     string `json:"state"`
	Total     int    `json:"total"`
	WithChair int    `json:"withChair"`
	WithEmail int    `json:"withEmail"`
	WithPhone int    `json:"withPhone"`
}

// Summary returns per-state coverage counts, sorted by state code.
func (s *Store) Summary() ([]StateSummary, error) {
	records, err := s.readAll()
	if err != nil {
		return nil, err
	}

	byState := make(map[string]*StateSummary)
	for _, rec := range records {
		sum, ok := byState[rec.StateCode]
		if !ok {
			sum = &StateSummary{StateCode: rec.StateCode, State: rec.State}
			byState[rec.StateCode] = sum
		}
		sum.Total++
		if chair.HasChair(rec) {
			sum.WithChair++
		}
		if rec.Email != nil && *rec.Email != "" {
			sum.WithEmail++
		}
		if rec.Phone != nil && *rec.Phone != "" {
			sum.WithPhone++
		}
	}

	summaries := make([]StateSummary, 0, len(byState))
	for _, sum := range byState {
		summaries = append(summaries, *sum)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return strings.Compare(summaries[i].StateCode, summaries[j].StateCode) < 0
	})

	return summaries, nil
}
