package chair

import (
	"regexp"
	"strings"
	"time"
)

// Sentinel values for ChairName. Absence of a known name is always
// represented by NameTBD, never by an empty field.
const (
	NameTBD    = "TBD"
	NameVacant = "VACANT"
)

// Record is one county's party leadership contact entry.
type Record struct {
	ID           string  `json:"id"`
	State        string  `json:"state"`
	StateCode    string  `json:"stateCode"`
	County       string  `json:"county"`
	ChairName    string  `json:"chairName"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	ElectionDate *string `json:"electionDate"`
	Source       string  `json:"source"`
	LastVerified string  `json:"lastVerified"`
	Notes        *string `json:"notes"`
}

var (
	suffixPattern   = regexp.MustCompile(`\s+county|\s+parish|\s+borough|\s+city`)
	spacePattern    = regexp.MustCompile(`\s+`)
	nonSlugPattern  = regexp.MustCompile(`[^a-z0-9-]`)
	multiDashPattern = regexp.MustCompile(`-{2,}`)
)

// NormalizeCounty reduces a county display name to a comparison key:
// lowercase, jurisdiction suffix removed, spaces collapsed to dashes,
// anything outside [a-z0-9-] dropped.
func NormalizeCounty(county string) string {
	n := strings.ToLower(strings.TrimSpace(county))
	n = suffixPattern.ReplaceAllString(n, "")
	n = spacePattern.ReplaceAllString(n, "-")
	n = nonSlugPattern.ReplaceAllString(n, "")
	n = multiDashPattern.ReplaceAllString(n, "-")
	return strings.Trim(n, "-")
}

// GenerateID creates the deterministic record ID for a (stateCode, county)
// pair, e.g. GenerateID("OH", "Knox County") == "oh-knox". It is a pure
// function: the same inputs always yield the same ID regardless of casing.
func GenerateID(stateCode, county string) string {
	return strings.ToLower(strings.TrimSpace(stateCode)) + "-" + NormalizeCounty(county)
}

// HasChair reports whether the record names an actual person rather than a
// sentinel value.
func HasChair(r Record) bool {
	return r.ChairName != "" && r.ChairName != NameTBD && r.ChairName != NameVacant
}

// IsSentinel reports whether a name is one of the reserved status tokens.
func IsSentinel(name string) bool {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case NameTBD, NameVacant, "OPEN":
		return true
	}
	return false
}

// DateStamp formats a time as the ISO 8601 date (no time component) used by
// LastVerified and ElectionDate.
func DateStamp(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
