// Package cli wires the county-chairs commands: serve the API, run the
// scraping batch, and merge scraped artifacts into the contact document.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rmalka/county-chairs/internal/fetcher"
	"github.com/rmalka/county-chairs/internal/logger"
	"github.com/rmalka/county-chairs/internal/pipeline"
	"github.com/rmalka/county-chairs/internal/prober"
	"github.com/rmalka/county-chairs/internal/server"
	"github.com/rmalka/county-chairs/internal/states"
	"github.com/rmalka/county-chairs/internal/store"
)

var (
	flagDataDir string
	flagVerbose bool

	flagPort string

	flagOutDir     string
	flagStates     string
	flagProbe      bool
	flagKeepStatus bool
	flagDelay      time.Duration

	flagFrom string
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "county-chairs",
		Short: "County GOP leadership contact directory",
		Long: `Maintains a directory of county Republican party leadership contacts.
Scrapes state party sites for county chair names, serves the collected
records over a JSON API, and merges scrape output into the directory.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
			}
		},
	}

	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "data", "Directory holding the JSON documents")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newScrapeCmd())
	cmd.AddCommand(newMergeCmd())

	return cmd
}

func openStores() (*store.Store, *store.CandidateStore, error) {
	chairs, err := store.Open(filepath.Join(flagDataDir, "county_chairs.json"))
	if err != nil {
		return nil, nil, fmt.Errorf("opening chair store: %w", err)
	}

	candidates, err := store.OpenCandidates(filepath.Join(flagDataDir, "candidates.json"))
	if err != nil {
		return nil, nil, fmt.Errorf("opening candidate store: %w", err)
	}

	return chairs, candidates, nil
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the contacts API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			// PORT env wins over the default but not over an explicit flag.
			if envPort := os.Getenv("PORT"); envPort != "" && !cmd.Flags().Changed("port") {
				flagPort = envPort
			}

			chairs, candidates, err := openStores()
			if err != nil {
				return err
			}

			app := server.New(chairs, candidates)

			logger.Info("Starting server", logger.Fields{
				"port": flagPort,
			})
			if err := app.Listen(":" + flagPort); err != nil {
				return fmt.Errorf("starting server: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagPort, "port", "p", "3000", "Port to listen on")

	return cmd
}

func newScrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Scrape state party sites for county chair contacts",
		Long: `Loads each configured state party page, extracts county chair names and
contact details, and writes per-state artifacts plus a summary under the
output directory. With --probe, states without a known leadership URL are
located by trying candidate URL patterns instead of rendering.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := pipeline.Config{
				OutDir:           flagOutDir,
				StateDelay:       flagDelay,
				KeepStatusTokens: flagKeepStatus,
			}

			if flagProbe {
				return runProbe(cmd, cfg)
			}
			return runScrape(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&flagOutDir, "out", "o", "scraped_data", "Artifact output directory")
	cmd.Flags().StringVar(&flagStates, "states", "", "Comma-separated state codes to limit the run")
	cmd.Flags().BoolVar(&flagProbe, "probe", false, "Probe candidate URLs instead of rendering known pages")
	cmd.Flags().BoolVar(&flagKeepStatus, "keep-status", false, "Keep VACANT/OPEN markers as chair names")
	cmd.Flags().DurationVar(&flagDelay, "delay", 0, "Delay between states (default 2s)")

	return cmd
}

func runScrape(cmd *cobra.Command, cfg pipeline.Config) error {
	targets := selectTargets(flagStates)
	if len(targets) == 0 {
		return fmt.Errorf("no configured states match %q", flagStates)
	}

	renderer, err := fetcher.NewChromeRenderer(cmd.Context())
	if err != nil {
		return fmt.Errorf("starting browser: %w", err)
	}
	defer renderer.Close()

	p := pipeline.New(renderer, cfg)
	summary, err := p.Run(cmd.Context(), targets)
	if summary != nil {
		fmt.Fprint(cmd.OutOrStdout(), p.Report(summary))
	}
	return err
}

func runProbe(cmd *cobra.Command, cfg pipeline.Config) error {
	patterns := selectPatterns(flagStates)
	if len(patterns) == 0 {
		return fmt.Errorf("no configured URL patterns match %q", flagStates)
	}

	pr := prober.New(fetcher.NewStatic(fetcher.DefaultTimeout), 0)

	p := pipeline.New(nil, cfg)
	summary, err := p.RunProbes(cmd.Context(), pr, patterns)
	if summary != nil {
		fmt.Fprint(cmd.OutOrStdout(), p.Report(summary))
	}
	return err
}

// selectTargets filters the configured rendered-mode targets by a
// comma-separated code list; empty means all.
func selectTargets(filter string) []states.Target {
	if filter == "" {
		return states.Targets
	}

	wanted := codeSet(filter)
	var targets []states.Target
	for _, t := range states.Targets {
		if wanted[t.Code] {
			targets = append(targets, t)
		}
	}
	return targets
}

func selectPatterns(filter string) map[string][]string {
	if filter == "" {
		return states.URLPatterns
	}

	wanted := codeSet(filter)
	patterns := make(map[string][]string)
	for code, urls := range states.URLPatterns {
		if wanted[code] {
			patterns[code] = urls
		}
	}
	return patterns
}

func codeSet(filter string) map[string]bool {
	set := make(map[string]bool)
	for _, code := range strings.Split(filter, ",") {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code != "" {
			set[code] = true
		}
	}
	return set
}

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge scraped artifacts into the contact document",
		Long: `Reads every per-state chairs artifact in the scrape output directory and
upserts the records into the contact document, then reports coverage per
state. Scraped records replace existing entries for the same county.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			chairs, _, err := openStores()
			if err != nil {
				return err
			}

			created, updated, err := pipeline.MergeArtifacts(flagFrom, chairs)
			if err != nil {
				return fmt.Errorf("merging artifacts: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Merged %d new and %d updated records\n", created, updated)

			summary, err := chairs.Summary()
			if err != nil {
				return err
			}
			for _, s := range summary {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s: %d counties, %d with chair, %d with email\n",
					s.StateCode, s.Total, s.WithChair, s.WithEmail)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flagFrom, "from", "scraped_data", "Directory containing scrape artifacts")

	return cmd
}
