// Package prober finds the live leadership page for sites whose canonical
// URL is unknown or unstable.
//
// Candidate URLs are tried in the caller-supplied priority order; the first
// one that responds successfully and looks like county data wins, and the
// remaining candidates are never touched. The content heuristic is
// intentionally permissive: false positives are filtered later by the
// parser, false negatives just move probing to the next candidate.
package prober

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rmalka/county-chairs/internal/fetcher"
	"github.com/rmalka/county-chairs/internal/logger"
)

const (
	// MinContentLength rejects near-empty placeholder pages.
	MinContentLength = 1000

	// MinKeywordScore is the number of vocabulary hits a page needs to
	// count as county data.
	MinKeywordScore = 5

	// DefaultProbeDelay spaces out consecutive probes against the same
	// host.
	DefaultProbeDelay = time.Second
)

// keywords is the fixed vocabulary scored by the content heuristic.
var keywords = []string{
	"county",
	"chair",
	"chairman",
	"gop",
	"republican",
	"contact",
	"email",
	"@",
	".com",
	".org",
}

// notFoundPhrases mark soft 404s served with a 200 status.
var notFoundPhrases = []string{
	"page not found",
	"cannot be found",
}

// ErrNoWorkingURL is returned when every candidate URL fails the probe.
var ErrNoWorkingURL = errors.New("no working URL found")

// Prober tries candidate URLs in order until one yields county data.
type Prober struct {
	fetcher *fetcher.Static
	delay   time.Duration
}

// New creates a Prober using the given fetcher. A negative delay disables
// inter-probe spacing (tests only); zero uses DefaultProbeDelay.
func New(f *fetcher.Static, delay time.Duration) *Prober {
	if delay == 0 {
		delay = DefaultProbeDelay
	}
	return &Prober{fetcher: f, delay: delay}
}

// Probe fetches each candidate URL in priority order and returns the first
// whose content passes HasCountyData. Fetch failures and content misses are
// logged and probing moves on; ErrNoWorkingURL is returned once the list is
// exhausted.
func (p *Prober) Probe(ctx context.Context, state string, urls []string) (*fetcher.Result, error) {
	for i, url := range urls {
		if i > 0 && p.delay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(p.delay):
			}
		}

		result, err := p.fetcher.Fetch(ctx, url)
		if err != nil {
			logger.Debug("Probe attempt failed", logger.Fields{
				"state": state,
				"url":   url,
				"error": err.Error(),
			})
			continue
		}

		if !HasCountyData(result.HTML) {
			logger.Debug("Probe returned no county data", logger.Fields{
				"state": state,
				"url":   url,
				"bytes": len(result.HTML),
			})
			continue
		}

		logger.Info("Found working URL", logger.Fields{
			"state": state,
			"url":   url,
			"bytes": len(result.HTML),
		})
		return result, nil
	}

	return nil, ErrNoWorkingURL
}

// HasCountyData is the permissive "looks like county data" heuristic:
// minimum content length, no not-found phrasing, and enough keyword hits.
func HasCountyData(html string) bool {
	if len(html) < MinContentLength {
		return false
	}

	lower := strings.ToLower(html)
	for _, phrase := range notFoundPhrases {
		if strings.Contains(lower, phrase) {
			return false
		}
	}

	score := 0
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			score++
		}
	}

	return score >= MinKeywordScore
}
