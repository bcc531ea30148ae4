package candidate

import (
	"testing"

	"github.com/rmalka/county-chairs/internal/chair"
)

func TestStatusPriority(t *testing.T) {
	ordered := []Status{
		StatusPotential,
		StatusContacted,
		StatusInterested,
		StatusRecruited,
		StatusDeclined,
		StatusNotInterested,
	}

	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Priority() >= ordered[i].Priority() {
			t.Errorf("expected %s to rank before %s", ordered[i-1], ordered[i])
		}
	}

	if Status("bogus").Priority() <= StatusNotInterested.Priority() {
		t.Error("unknown status should sort after all defined statuses")
	}
}

func TestStatusValid(t *testing.T) {
	if !StatusRecruited.Valid() {
		t.Error("expected recruited to be valid")
	}
	if Status("maybe").Valid() {
		t.Error("did not expect 'maybe' to be valid")
	}
}

func TestAlignmentScoreRange(t *testing.T) {
	tests := []struct {
		alignment Alignment
		min, max  int
	}{
		{AlignmentHigh, 8, 10},
		{AlignmentMedium, 5, 7},
		{AlignmentLow, 1, 4},
		{AlignmentUnknown, 0, 0},
	}

	for _, tt := range tests {
		min, max := tt.alignment.ScoreRange()
		if min != tt.min || max != tt.max {
			t.Errorf("%s.ScoreRange() = (%d, %d), expected (%d, %d)", tt.alignment, min, max, tt.min, tt.max)
		}
	}
}

func TestAlignmentForScore(t *testing.T) {
	tests := []struct {
		score    int
		expected Alignment
	}{
		{10, AlignmentHigh},
		{8, AlignmentHigh},
		{7, AlignmentMedium},
		{5, AlignmentMedium},
		{4, AlignmentLow},
		{1, AlignmentLow},
		{0, AlignmentUnknown},
	}

	for _, tt := range tests {
		if got := AlignmentForScore(tt.score); got != tt.expected {
			t.Errorf("AlignmentForScore(%d) = %s, expected %s", tt.score, got, tt.expected)
		}
	}
}

func TestFormatID(t *testing.T) {
	if got := FormatID(7); got != "candidate-007" {
		t.Errorf("FormatID(7) = %q", got)
	}
	if got := FormatID(123); got != "candidate-123" {
		t.Errorf("FormatID(123) = %q", got)
	}
}

func TestMatchCounty(t *testing.T) {
	tests := []struct {
		name            string
		candidateCounty string
		contactCounty   string
		expected        bool
	}{
		{"state qualifier stripped", "Fairfax County, VA", "Fairfax County", true},
		{"case insensitive", "maricopa county, AZ", "Maricopa County", true},
		{"no qualifier", "Knox County", "Knox County", true},
		{"different county", "Knox County, OH", "Licking County", false},
		{"empty candidate county", "", "Knox County", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchCounty(tt.candidateCounty, tt.contactCounty); got != tt.expected {
				t.Errorf("MatchCounty(%q, %q) = %v, expected %v", tt.candidateCounty, tt.contactCounty, got, tt.expected)
			}
		})
	}
}

func TestLinkedTo(t *testing.T) {
	contacts := []chair.Record{
		{ID: "va-fairfax", StateCode: "VA", County: "Fairfax County"},
		{ID: "oh-fairfield", StateCode: "OH", County: "Fairfield County"},
		{ID: "tx-montgomery", StateCode: "TX", County: "Montgomery County"},
	}

	c := Record{Name: "Jane Smith", County: "Fairfax County, VA", StateCode: "VA"}
	linked := LinkedTo(c, contacts)
	if len(linked) != 1 || linked[0].ID != "va-fairfax" {
		t.Fatalf("expected single link to va-fairfax, got %v", linked)
	}

	// State mismatch blocks the link even when county names collide.
	c2 := Record{Name: "Al Lee", County: "Montgomery County, PA", StateCode: "PA"}
	if linked := LinkedTo(c2, contacts); len(linked) != 0 {
		t.Errorf("expected no links for PA candidate, got %v", linked)
	}
}
