package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rmalka/county-chairs/internal/chair"
	"github.com/rmalka/county-chairs/internal/candidate"
	"github.com/rmalka/county-chairs/internal/store"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dir := t.TempDir()

	// Start from an empty document so tests control the contents.
	if err := os.WriteFile(filepath.Join(dir, "chairs.json"), []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}

	chairs, err := store.Open(filepath.Join(dir, "chairs.json"))
	if err != nil {
		t.Fatal(err)
	}
	chairs.SetClock(func() time.Time {
		return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	})

	candidates, err := store.OpenCandidates(filepath.Join(dir, "candidates.json"))
	if err != nil {
		t.Fatal(err)
	}
	candidates.SetClock(func() time.Time {
		return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	})

	return New(chairs, candidates)
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	return resp, payload
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	resp, payload := doJSON(t, app, http.MethodGet, "/api/health", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body map[string]string
	if err := json.Unmarshal(payload, &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
	if body["timestamp"] == "" {
		t.Error("timestamp missing")
	}
}

func TestChairLifecycle(t *testing.T) {
	app := newTestApp(t)

	// Create.
	resp, payload := doJSON(t, app, http.MethodPost, "/api/chairs", map[string]interface{}{
		"state":     "Ohio",
		"stateCode": "OH",
		"county":    "Knox County",
		"chairName": "Jane Roe",
		"email":     "jane@example.com",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201: %s", resp.StatusCode, payload)
	}

	var created chair.Record
	if err := json.Unmarshal(payload, &created); err != nil {
		t.Fatal(err)
	}
	if created.ID != "oh-knox" {
		t.Errorf("created ID = %q, want oh-knox", created.ID)
	}
	if created.LastVerified != "2025-06-15" {
		t.Errorf("lastVerified = %q, want 2025-06-15", created.LastVerified)
	}

	// Duplicate county is a conflict that names the existing record.
	resp, payload = doJSON(t, app, http.MethodPost, "/api/chairs", map[string]interface{}{
		"state":     "Ohio",
		"stateCode": "OH",
		"county":    "Knox",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate status = %d, want 409", resp.StatusCode)
	}
	var conflict map[string]string
	if err := json.Unmarshal(payload, &conflict); err != nil {
		t.Fatal(err)
	}
	if conflict["id"] != "oh-knox" {
		t.Errorf("conflict id = %q, want oh-knox", conflict["id"])
	}

	// Read back.
	resp, payload = doJSON(t, app, http.MethodGet, "/api/chairs/oh-knox", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d, want 200", resp.StatusCode)
	}

	// Partial update leaves untouched fields alone.
	resp, payload = doJSON(t, app, http.MethodPut, "/api/chairs/oh-knox", map[string]interface{}{
		"phone": "(614) 555-0100",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d, want 200: %s", resp.StatusCode, payload)
	}
	var updated chair.Record
	if err := json.Unmarshal(payload, &updated); err != nil {
		t.Fatal(err)
	}
	if updated.ChairName != "Jane Roe" {
		t.Errorf("update clobbered chairName: %q", updated.ChairName)
	}
	if updated.Phone == nil || *updated.Phone != "(614) 555-0100" {
		t.Errorf("phone not updated: %v", updated.Phone)
	}

	// Delete confirms with a message, then the record is gone.
	resp, payload = doJSON(t, app, http.MethodDelete, "/api/chairs/oh-knox", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", resp.StatusCode)
	}
	var deleted map[string]string
	if err := json.Unmarshal(payload, &deleted); err != nil {
		t.Fatal(err)
	}
	if deleted["message"] != "Chair deleted successfully" {
		t.Errorf("delete message = %q", deleted["message"])
	}
	resp, _ = doJSON(t, app, http.MethodGet, "/api/chairs/oh-knox", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", resp.StatusCode)
	}
}

func TestCreateChairValidation(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/chairs", map[string]interface{}{
		"state": "Ohio",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestListChairsStateFilter(t *testing.T) {
	app := newTestApp(t)

	for _, rec := range []map[string]interface{}{
		{"state": "Ohio", "stateCode": "OH", "county": "Knox"},
		{"state": "Ohio", "stateCode": "OH", "county": "Adams"},
		{"state": "Pennsylvania", "stateCode": "PA", "county": "Erie"},
	} {
		resp, payload := doJSON(t, app, http.MethodPost, "/api/chairs", rec)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("seed create failed: %d %s", resp.StatusCode, payload)
		}
	}

	resp, payload := doJSON(t, app, http.MethodGet, "/api/chairs?state=oh", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var records []chair.Record
	if err := json.Unmarshal(payload, &records); err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Errorf("filtered list has %d records, want 2", len(records))
	}
}

func TestStatesSummary(t *testing.T) {
	app := newTestApp(t)

	for _, rec := range []map[string]interface{}{
		{"state": "Ohio", "stateCode": "OH", "county": "Knox", "chairName": "Jane Roe", "email": "jane@example.com"},
		{"state": "Ohio", "stateCode": "OH", "county": "Adams", "chairName": "TBD"},
		{"state": "Arizona", "stateCode": "AZ", "county": "Pima", "chairName": "VACANT"},
	} {
		doJSON(t, app, http.MethodPost, "/api/chairs", rec)
	}

	resp, payload := doJSON(t, app, http.MethodGet, "/api/states", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var summary []store.StateSummary
	if err := json.Unmarshal(payload, &summary); err != nil {
		t.Fatal(err)
	}
	if len(summary) != 2 {
		t.Fatalf("summary has %d states, want 2", len(summary))
	}
	// Sorted by state code: AZ before OH.
	if summary[0].StateCode != "AZ" || summary[1].StateCode != "OH" {
		t.Errorf("summary order = %s, %s", summary[0].StateCode, summary[1].StateCode)
	}
	oh := summary[1]
	if oh.Total != 2 || oh.WithChair != 1 || oh.WithEmail != 1 {
		t.Errorf("OH summary = %+v", oh)
	}
}

func TestExportIsAttachment(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/export", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	got := resp.Header.Get("Content-Disposition")
	want := `attachment; filename="county-chairs.json"`
	if got != want {
		t.Errorf("Content-Disposition = %q, want %q", got, want)
	}
}

func TestCandidateLifecycle(t *testing.T) {
	app := newTestApp(t)

	resp, payload := doJSON(t, app, http.MethodPost, "/api/candidates", map[string]interface{}{
		"name":      "Alex Park",
		"county":    "Knox",
		"stateCode": "OH",
		"position":  "County Chair",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201: %s", resp.StatusCode, payload)
	}

	var created candidate.Record
	if err := json.Unmarshal(payload, &created); err != nil {
		t.Fatal(err)
	}
	if created.ID != "candidate-001" {
		t.Errorf("created ID = %q, want candidate-001", created.ID)
	}
	if created.Status != candidate.StatusPotential {
		t.Errorf("default status = %q, want potential", created.Status)
	}

	resp, payload = doJSON(t, app, http.MethodPut, "/api/candidates/candidate-001", map[string]interface{}{
		"status": "contacted",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d, want 200: %s", resp.StatusCode, payload)
	}
	var updated candidate.Record
	if err := json.Unmarshal(payload, &updated); err != nil {
		t.Fatal(err)
	}
	if updated.Status != candidate.StatusContacted {
		t.Errorf("status = %q, want contacted", updated.Status)
	}
	if updated.Name != "Alex Park" {
		t.Errorf("update clobbered name: %q", updated.Name)
	}

	resp, payload = doJSON(t, app, http.MethodDelete, "/api/candidates/candidate-001", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", resp.StatusCode)
	}
	var deleted map[string]string
	if err := json.Unmarshal(payload, &deleted); err != nil {
		t.Fatal(err)
	}
	if deleted["message"] != "Candidate deleted successfully" {
		t.Errorf("delete message = %q", deleted["message"])
	}
	resp, _ = doJSON(t, app, http.MethodGet, "/api/candidates/candidate-001", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", resp.StatusCode)
	}
}

func TestListCandidatesCountyFilter(t *testing.T) {
	app := newTestApp(t)

	for _, rec := range []map[string]interface{}{
		{"name": "Alex Park", "county": "Knox County, OH", "stateCode": "OH"},
		{"name": "Dana Reed", "county": "Knox", "stateCode": "OH"},
		{"name": "Erin Wolf", "county": "Adams", "stateCode": "OH"},
	} {
		resp, payload := doJSON(t, app, http.MethodPost, "/api/candidates", rec)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("seed create failed: %d %s", resp.StatusCode, payload)
		}
	}

	// Matching is normalized: suffix and trailing state qualifier ignored.
	resp, payload := doJSON(t, app, http.MethodGet, "/api/candidates?county=Knox%20County", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var records []candidate.Record
	if err := json.Unmarshal(payload, &records); err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("filtered list has %d candidates, want 2", len(records))
	}
	for _, rec := range records {
		if rec.Name == "Erin Wolf" {
			t.Error("Adams candidate leaked through the Knox filter")
		}
	}
}

func TestCreateCandidateRejectsUnknownStatus(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/candidates", map[string]interface{}{
		"name":      "Alex Park",
		"county":    "Knox",
		"stateCode": "OH",
		"status":    "maybe",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
