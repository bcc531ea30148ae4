package parser

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// MinNameLength and MaxNameLength bound a plausible extracted name;
	// anything outside is discarded, never emitted as-is.
	MinNameLength = 2
	MaxNameLength = 50

	// emailWindow bounds how far past the county name the email scan looks.
	emailWindow = 300
)

// rule is one extraction strategy: a county-specific pattern, a cleanup pass
// over the raw capture, and a name for provenance notes. Rules are tried in
// slice order; the first valid capture wins.
type rule struct {
	name    string
	weak    bool
	pattern func(county string) *regexp.Regexp
	cleanup func(raw string) string
}

// nameRules in precedence order: the rich county+Chair+name pattern first,
// the loose county+freetext pattern as fallback.
var nameRules = []rule{
	{
		name: "county-chair",
		pattern: func(county string) *regexp.Regexp {
			return regexp.MustCompile(
				`(?i:` + regexp.QuoteMeta(county) + suffixOpt + `[^.]{0,200}?chair[^.]{0,100}?)` + namePattern)
		},
		cleanup: cleanName,
	},
	{
		name: "county-freeform",
		weak: true,
		pattern: func(county string) *regexp.Regexp {
			return regexp.MustCompile(
				`(?i)` + regexp.QuoteMeta(county) + `[:\-\s]+([^\n]{0,100})`)
		},
		cleanup: func(raw string) string {
			return cleanName(looseLeadIn.ReplaceAllString(strings.TrimRight(raw, ". "), ""))
		},
	},
}

const (
	suffixOpt   = `(?:\s+(?:county|parish|borough))?`
	namePattern = `([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`
)

var (
	chairPrefix = regexp.MustCompile(`(?i)^chair[^:]*:?\s*`)
	multiSpace  = regexp.MustCompile(`\s{2,}`)
	// looseLeadIn strips the jurisdiction suffix and separators the loose
	// pattern drags along when the page text reads "X County - ...".
	looseLeadIn = regexp.MustCompile(`(?i)^(?:county|parish|borough)\b[\s:–—-]*`)

	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-\s]\d{4}|\d{3}[-.\s]\d{3}[-.\s]\d{4}|\d{10}`)

	// fragmentName matches a trailing capitalized name, optionally tagged
	// with a role word, at the end of a fragment line.
	fragmentName = regexp.MustCompile(namePattern + `[,\s]*(?:Chair|Contact|Person)?$`)
)

// cleanName strips a leading "Chair:"-style prefix and collapses runs of
// whitespace.
func cleanName(raw string) string {
	name := strings.TrimSpace(raw)
	name = chairPrefix.ReplaceAllString(name, "")
	name = multiSpace.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// validName applies the shared validity check: non-empty and a plausible
// length for a person's name.
func validName(name string) bool {
	return len(name) >= MinNameLength && len(name) <= MaxNameLength
}

// emailNear returns the first email address within the bounded window after
// the county name, or "".
func emailNear(county, body string) string {
	re := regexp.MustCompile(fmt.Sprintf(
		`(?i)%s%s[^.]{0,%d}?(%s)`, regexp.QuoteMeta(county), suffixOpt, emailWindow, emailPattern.String()))
	if m := re.FindStringSubmatch(body); m != nil {
		return m[1]
	}
	return ""
}

// phoneNear returns the first phone number within the bounded window after
// the county name, or "".
func phoneNear(county, body string) string {
	re := regexp.MustCompile(fmt.Sprintf(
		`(?i)%s%s[^.]{0,%d}?(%s)`, regexp.QuoteMeta(county), suffixOpt, emailWindow, phonePattern.String()))
	if m := re.FindStringSubmatch(body); m != nil {
		return m[1]
	}
	return ""
}
