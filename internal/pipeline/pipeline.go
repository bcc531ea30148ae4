// Package pipeline orchestrates the scraping batch: fetch or probe each
// configured state, extract and parse the page, and write per-state
// artifacts plus a cross-state summary.
//
// States are processed one at a time with a fixed delay in between to stay
// polite to target hosts. A single state's failure is logged and recorded as
// "no data"; the batch always runs to completion.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rmalka/county-chairs/internal/chair"
	"github.com/rmalka/county-chairs/internal/extractor"
	"github.com/rmalka/county-chairs/internal/fetcher"
	"github.com/rmalka/county-chairs/internal/logger"
	"github.com/rmalka/county-chairs/internal/parser"
	"github.com/rmalka/county-chairs/internal/prober"
	"github.com/rmalka/county-chairs/internal/states"
	"github.com/rmalka/county-chairs/internal/store"
)

// DefaultStateDelay spaces out consecutive state loads.
const DefaultStateDelay = 2 * time.Second

// Config tunes a batch run.
type Config struct {
	// OutDir receives the per-state artifacts and the summary document.
	OutDir string

	// StateDelay overrides DefaultStateDelay; negative disables (tests).
	StateDelay time.Duration

	// KeepStatusTokens is passed through to the parser.
	KeepStatusTokens bool

	// Now supplies the lastVerified stamp; defaults to time.Now.
	Now func() time.Time
}

// Pipeline runs the extraction batch.
type Pipeline struct {
	renderer fetcher.Renderer
	parser   *parser.Parser
	cfg      Config
	metrics  *logger.Metrics
}

// New creates a Pipeline. The renderer may be nil if only RunProbes is used.
func New(renderer fetcher.Renderer, cfg Config) *Pipeline {
	if cfg.StateDelay == 0 {
		cfg.StateDelay = DefaultStateDelay
	}

	return &Pipeline{
		renderer: renderer,
		parser:   parser.New(parser.Options{KeepStatusTokens: cfg.KeepStatusTokens, Now: cfg.Now}),
		cfg:      cfg,
		metrics:  logger.NewMetrics(),
	}
}

// RunSummary is the outcome of a batch.
type RunSummary struct {
	// ByState maps state codes to the records extracted for them. States
	// that yielded nothing are absent.
	ByState map[string][]chair.Record

	// WorkingURLs records which candidate URL won per probed state.
	WorkingURLs map[string]string

	// Failures maps state codes to the failure that stopped them.
	Failures map[string]string
}

// Total counts all extracted records.
func (s *RunSummary) Total() int {
	n := 0
	for _, records := range s.ByState {
		n += len(records)
	}
	return n
}

func newSummary() *RunSummary {
	return &RunSummary{
		ByState:     make(map[string][]chair.Record),
		WorkingURLs: make(map[string]string),
		Failures:    make(map[string]string),
	}
}

// Run processes the targets sequentially in rendered mode. Failures are
// per-state and never abort the batch.
func (p *Pipeline) Run(ctx context.Context, targets []states.Target) (*RunSummary, error) {
	if err := os.MkdirAll(p.cfg.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	summary := newSummary()

	for i, target := range targets {
		if i > 0 {
			if err := p.pause(ctx); err != nil {
				return summary, err
			}
		}

		p.scrapeTarget(ctx, target, summary)
	}

	if err := p.writeSummary(summary); err != nil {
		return summary, err
	}

	return summary, nil
}

// scrapeTarget renders one state page and runs extraction end to end.
func (p *Pipeline) scrapeTarget(ctx context.Context, target states.Target, summary *RunSummary) {
	logger.Info("Scraping state", logger.Fields{
		"state": target.Code,
		"url":   target.URL,
	})

	start := time.Now()
	html, bodyText, err := p.renderer.Render(ctx, target.URL)
	p.metrics.RecordTiming("render", time.Since(start))

	if err != nil {
		// Non-fatal: the state is recorded as "no data" and never retried
		// within this run.
		logger.Error("Failed to render page", logger.Fields{
			"state": target.Code,
			"url":   target.URL,
		}, err)
		summary.Failures[target.Code] = err.Error()
		p.metrics.IncrCounter("states.failed")
		return
	}
	p.metrics.IncrCounter("pages.rendered")

	p.writeArtifact(target.Code+"_full.html", []byte(html))

	data, err := extractor.Extract(html)
	if err != nil {
		logger.Error("Failed to extract page data", logger.Fields{
			"state": target.Code,
		}, err)
		summary.Failures[target.Code] = err.Error()
		p.metrics.IncrCounter("states.failed")
		return
	}
	data.SetBodyText(bodyText)

	if encoded, err := json.MarshalIndent(data, "", "  "); err == nil {
		p.writeArtifact(target.Code+"_extracted.json", encoded)
	}

	p.parseAndRecord(target.Code, target.Name, target.URL, data, summary)
}

// parseAndRecord runs the chair parser over extracted data and files the
// results under the state code.
func (p *Pipeline) parseAndRecord(code, name, url string, data *extractor.PageData, summary *RunSummary) {
	counties, ok := states.Counties[code]
	if !ok {
		logger.Warn("No county list configured, skipping parse", logger.Fields{
			"state": code,
		})
		return
	}

	records := p.parser.Parse(parser.Request{
		State:     name,
		StateCode: code,
		SourceURL: url,
		Counties:  counties,
		Suffix:    states.Suffix(code),
		Page:      data,
	})

	logger.Info("Parsed state page", logger.Fields{
		"state":     code,
		"records":   len(records),
		"fragments": len(data.Fragments),
	})
	p.metrics.AddCounter("records.extracted", int64(len(records)))

	if len(records) == 0 {
		return
	}

	if encoded, err := json.MarshalIndent(records, "", "  "); err == nil {
		p.writeArtifact(code+"_chairs.json", encoded)
	}
	summary.ByState[code] = records
}

// RunProbes processes states whose leadership URL is unknown, trying each
// configured candidate URL in order and extracting from the first hit. The
// winning URL per state is recorded in the summary and persisted.
func (p *Pipeline) RunProbes(ctx context.Context, pr *prober.Prober, patterns map[string][]string) (*RunSummary, error) {
	if err := os.MkdirAll(p.cfg.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	summary := newSummary()

	// Stable order for reproducible runs.
	codes := make([]string, 0, len(patterns))
	for code := range patterns {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for i, code := range codes {
		if i > 0 {
			if err := p.pause(ctx); err != nil {
				return summary, err
			}
		}

		result, err := pr.Probe(ctx, code, patterns[code])
		if err != nil {
			logger.Warn("No working URL found", logger.Fields{
				"state": code,
			})
			summary.Failures[code] = err.Error()
			p.metrics.IncrCounter("states.failed")
			continue
		}

		summary.WorkingURLs[code] = result.URL
		p.metrics.IncrCounter("pages.fetched")
		p.writeArtifact(code+"_found.html", []byte(result.HTML))

		data, err := extractor.Extract(result.HTML)
		if err != nil {
			summary.Failures[code] = err.Error()
			continue
		}

		if encoded, err := json.MarshalIndent(data, "", "  "); err == nil {
			p.writeArtifact(code+"_extracted.json", encoded)
		}

		p.parseAndRecord(code, states.Names[code], result.URL, data, summary)
	}

	if len(summary.WorkingURLs) > 0 {
		if encoded, err := json.MarshalIndent(summary.WorkingURLs, "", "  "); err == nil {
			p.writeArtifact("working_urls.json", encoded)
		}
	}

	if err := p.writeSummary(summary); err != nil {
		return summary, err
	}

	return summary, nil
}

// pause waits the inter-state delay, bailing out early on cancellation.
func (p *Pipeline) pause(ctx context.Context) error {
	if p.cfg.StateDelay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(p.cfg.StateDelay):
		return nil
	}
}

func (p *Pipeline) writeArtifact(name string, data []byte) {
	path := filepath.Join(p.cfg.OutDir, strings.ToLower(name))
	if err := os.WriteFile(path, data, 0644); err != nil {
		logger.Error("Failed to write artifact", logger.Fields{
			"path": path,
		}, err)
	}
}

func (p *Pipeline) writeSummary(summary *RunSummary) error {
	encoded, err := json.MarshalIndent(summary.ByState, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}

	path := filepath.Join(p.cfg.OutDir, "summary.json")
	if err := os.WriteFile(path, encoded, 0644); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	return nil
}

// Report renders the end-of-run console summary, listing every state that
// produced records, every failure, and the total.
func (p *Pipeline) Report(summary *RunSummary) string {
	var b strings.Builder

	b.WriteString(strings.Repeat("=", 60) + "\n")
	b.WriteString("SUMMARY\n")
	b.WriteString(strings.Repeat("=", 60) + "\n")

	codes := make([]string, 0, len(summary.ByState))
	for code := range summary.ByState {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		fmt.Fprintf(&b, "%s: %d chairs\n", code, len(summary.ByState[code]))
	}

	failed := make([]string, 0, len(summary.Failures))
	for code := range summary.Failures {
		failed = append(failed, code)
	}
	sort.Strings(failed)
	for _, code := range failed {
		fmt.Fprintf(&b, "%s: failed (%s)\n", code, summary.Failures[code])
	}

	fmt.Fprintf(&b, "\nTotal chairs extracted: %d\n", summary.Total())
	fmt.Fprintf(&b, "Output saved to: %s\n", p.cfg.OutDir)

	b.WriteString(p.metricsReport())

	return b.String()
}

// metricsReport formats the run's counters and timing aggregates.
func (p *Pipeline) metricsReport() string {
	snapshot := p.metrics.GetSnapshot()

	var b strings.Builder

	if counters, ok := snapshot["counters"].(map[string]int64); ok && len(counters) > 0 {
		names := make([]string, 0, len(counters))
		for name := range counters {
			names = append(names, name)
		}
		sort.Strings(names)

		b.WriteString("\nMetrics:\n")
		for _, name := range names {
			fmt.Fprintf(&b, "  %s: %d\n", name, counters[name])
		}
	}

	if timings, ok := snapshot["timings"].(map[string]map[string]interface{}); ok && len(timings) > 0 {
		names := make([]string, 0, len(timings))
		for name := range timings {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			stats := timings[name]
			fmt.Fprintf(&b, "  %s: avg %v (min %v, max %v, n=%v)\n",
				name, stats["average"], stats["min"], stats["max"], stats["count"])
		}
	}

	return b.String()
}

// MergeArtifacts loads every *_chairs.json artifact in dir and upserts the
// records into the store, then rewrites the document sorted by state and
// county. Returns how many records were created versus replaced.
func MergeArtifacts(dir string, st *store.Store) (created, updated int, err error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*_chairs.json"))
	if err != nil {
		return 0, 0, fmt.Errorf("listing artifacts: %w", err)
	}
	sort.Strings(matches)

	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return created, updated, fmt.Errorf("reading artifact %s: %w", path, err)
		}

		var records []chair.Record
		if err := json.Unmarshal(data, &records); err != nil {
			return created, updated, fmt.Errorf("parsing artifact %s: %w", path, err)
		}

		for _, rec := range records {
			wasCreated, err := st.Upsert(rec)
			if err != nil {
				return created, updated, err
			}
			if wasCreated {
				created++
			} else {
				updated++
			}
		}
	}

	if err := st.SortByStateCounty(); err != nil {
		return created, updated, err
	}

	return created, updated, nil
}
