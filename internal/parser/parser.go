package parser

import (
	"strings"
	"time"

	"github.com/rmalka/county-chairs/internal/chair"
	"github.com/rmalka/county-chairs/internal/extractor"
)

// NameKind distinguishes how a record's name field was resolved.
type NameKind int

const (
	// NameUnknown means no name was extracted; the record exists because an
	// email was found.
	NameUnknown NameKind = iota
	// NamePerson is a name believed to refer to a person.
	NamePerson
	// NameSentinel is a status token (VACANT) preserved verbatim.
	NameSentinel
)

// Match is the parser's verdict for one county.
type Match struct {
	County string
	Name   string
	Kind   NameKind
	Email  string
	Phone  string
	Rule   string
}

// Options configures a Parser.
type Options struct {
	// KeepStatusTokens stores a captured status token (VACANT, OPEN) as a
	// sentinel name instead of discarding it as noise. Both behaviors are
	// legitimate readings of source pages that list vacancies inline, so
	// the choice stays a flag.
	KeepStatusTokens bool

	// Now supplies the lastVerified stamp; defaults to time.Now.
	Now func() time.Time
}

// Parser produces contact records from extracted page data.
type Parser struct {
	opts Options
	now  func() time.Time
}

// New creates a Parser.
func New(opts Options) *Parser {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Parser{opts: opts, now: now}
}

// Request is one page's worth of parsing work.
type Request struct {
	State     string
	StateCode string
	SourceURL string
	// Counties is the state's canonical county list, bare names without
	// jurisdiction suffix, in canonical order.
	Counties []string
	// Suffix is the jurisdiction suffix for display names: "County",
	// "Parish", or "Borough". Empty defaults to "County".
	Suffix string
	Page   *extractor.PageData
}

// Parse scans the page for each county in order and returns zero or one
// record per county. A record is emitted when a name or an email was found,
// or when a fragment line mentions the county at all.
func (p *Parser) Parse(req Request) []chair.Record {
	suffix := req.Suffix
	if suffix == "" {
		suffix = "County"
	}

	today := chair.DateStamp(p.now())
	records := make([]chair.Record, 0)

	for _, county := range req.Counties {
		m := p.matchCounty(county, req.Page)
		if m == nil {
			continue
		}

		display := county + " " + suffix
		rec := chair.Record{
			ID:           chair.GenerateID(req.StateCode, display),
			State:        req.State,
			StateCode:    req.StateCode,
			County:       display,
			ChairName:    chair.NameTBD,
			Source:       req.SourceURL,
			LastVerified: today,
		}

		if m.Name != "" {
			rec.ChairName = m.Name
		}
		if m.Email != "" {
			email := m.Email
			rec.Email = &email
		}
		if m.Phone != "" {
			phone := m.Phone
			rec.Phone = &phone
		}
		if note := provenanceNote(m); note != "" {
			n := note
			rec.Notes = &n
		}

		records = append(records, rec)
	}

	return records
}

// provenanceNote flags low-confidence extractions for human review.
func provenanceNote(m *Match) string {
	switch {
	case m.Rule == "fragment":
		return "Extracted from page text"
	case m.Kind == NameUnknown:
		return "Could not extract chair name from page"
	case m.Kind == NameSentinel:
		return ""
	case m.Rule == "county-freeform":
		return "Low-confidence name extraction"
	}
	return ""
}

// matchCounty runs the rule chain for one county. Returns nil when no
// evidence was found at all.
func (p *Parser) matchCounty(county string, page *extractor.PageData) *Match {
	m := &Match{County: county}

	for _, r := range nameRules {
		sub := r.pattern(county).FindStringSubmatch(page.BodyText)
		if sub == nil {
			continue
		}

		name := r.cleanup(sub[1])
		if chair.IsSentinel(name) {
			if p.opts.KeepStatusTokens {
				m.Name = strings.ToUpper(strings.TrimSpace(name))
				m.Kind = NameSentinel
				m.Rule = r.name
			}
			// Discarded as noise otherwise; later rules get no say since
			// the page genuinely talks about this county.
			break
		}
		if !validName(name) {
			continue
		}

		m.Name = name
		m.Kind = NamePerson
		m.Rule = r.name
		break
	}

	m.Email = emailNear(county, page.BodyText)
	if m.Email != "" || m.Name != "" {
		m.Phone = phoneNear(county, page.BodyText)
	}

	if m.Name == "" && m.Email == "" {
		p.fragmentFallback(county, page, m)
	}

	if m.Name == "" && m.Email == "" && m.Rule != "fragment" {
		return nil
	}
	return m
}

// fragmentFallback scans the fragment bag for a line mentioning the county.
// The mention alone is evidence: a record is emitted even when no trailing
// name-shaped capture follows, defaulting to TBD. First fragment, first
// line wins.
func (p *Parser) fragmentFallback(county string, page *extractor.PageData, m *Match) {
	for _, frag := range page.Fragments {
		if !strings.Contains(frag.Text, county) {
			continue
		}

		for _, line := range strings.Split(frag.Text, "\n") {
			line = strings.TrimSpace(line)
			if len(line) <= 5 || len(line) >= 150 || !strings.Contains(line, county) {
				continue
			}

			m.Rule = "fragment"
			if sub := fragmentName.FindStringSubmatch(line); sub != nil {
				if name := cleanName(sub[1]); validName(name) {
					m.Name = name
					m.Kind = NamePerson
				}
			}
			return
		}
	}
}
