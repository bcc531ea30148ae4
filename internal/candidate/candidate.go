package candidate

import (
	"fmt"
	"strings"

	"github.com/rmalka/county-chairs/internal/chair"
)

// Status is a candidate's position in the recruitment funnel.
type Status string

const (
	StatusPotential     Status = "potential"
	StatusContacted     Status = "contacted"
	StatusInterested    Status = "interested"
	StatusRecruited     Status = "recruited"
	StatusDeclined      Status = "declined"
	StatusNotInterested Status = "not_interested"
)

// statusOrder defines display priority, most actionable first.
var statusOrder = map[Status]int{
	StatusPotential:     0,
	StatusContacted:     1,
	StatusInterested:    2,
	StatusRecruited:     3,
	StatusDeclined:      4,
	StatusNotInterested: 5,
}

// Priority returns the display rank of a status. Unknown statuses sort last.
func (s Status) Priority() int {
	if p, ok := statusOrder[s]; ok {
		return p
	}
	return len(statusOrder)
}

// Valid reports whether s is one of the defined statuses.
func (s Status) Valid() bool {
	_, ok := statusOrder[s]
	return ok
}

// Alignment is a coarse bucket over the 0-10 alignment score.
type Alignment string

const (
	AlignmentHigh    Alignment = "high"
	AlignmentMedium  Alignment = "medium"
	AlignmentLow     Alignment = "low"
	AlignmentUnknown Alignment = "unknown"
)

// ScoreRange returns the inclusive score bounds associated with an alignment.
func (a Alignment) ScoreRange() (min, max int) {
	switch a {
	case AlignmentHigh:
		return 8, 10
	case AlignmentMedium:
		return 5, 7
	case AlignmentLow:
		return 1, 4
	default:
		return 0, 0
	}
}

// AlignmentForScore maps a numeric score back to its bucket.
func AlignmentForScore(score int) Alignment {
	switch {
	case score >= 8:
		return AlignmentHigh
	case score >= 5:
		return AlignmentMedium
	case score >= 1:
		return AlignmentLow
	default:
		return AlignmentUnknown
	}
}

// Record tracks one prospective candidate.
type Record struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	County          string    `json:"county"`
	StateCode       string    `json:"stateCode"`
	Position        string    `json:"position"`
	Status          Status    `json:"status"`
	Alignment       Alignment `json:"alignment"`
	AlignmentScore  int       `json:"alignmentScore"`
	Source          string    `json:"source"`
	LastContact     *string   `json:"lastContact"`
	Notes           string    `json:"notes"`
	Email           *string   `json:"email"`
	Phone           *string   `json:"phone"`
	Experience      int       `json:"experience"`
	PreviousOffices []string  `json:"previousOffices"`
	CreatedAt       string    `json:"createdAt"`
	UpdatedAt       string    `json:"updatedAt"`
}

// FormatID builds the sequential candidate ID, e.g. FormatID(7) ==
// "candidate-007".
func FormatID(n int) string {
	return fmt.Sprintf("candidate-%03d", n)
}

// MatchCounty reports whether a candidate's county display string refers to
// the same county as a contact record. Candidate counties may carry a
// trailing state qualifier ("Fairfax County, VA"); both sides are normalized
// before comparison. This is a fuzzy display-only link, not a foreign key.
func MatchCounty(candidateCounty, contactCounty string) bool {
	c := candidateCounty
	if i := strings.LastIndex(c, ","); i >= 0 {
		c = c[:i]
	}
	a := chair.NormalizeCounty(c)
	b := chair.NormalizeCounty(contactCounty)
	return a != "" && a == b
}

// LinkedTo returns the contact records whose county matches the candidate,
// restricted to the candidate's state when it is set.
func LinkedTo(c Record, contacts []chair.Record) []chair.Record {
	var linked []chair.Record
	for _, rec := range contacts {
		if c.StateCode != "" && !strings.EqualFold(c.StateCode, rec.StateCode) {
			continue
		}
		if MatchCounty(c.County, rec.County) {
			linked = append(linked, rec)
		}
	}
	return linked
}
