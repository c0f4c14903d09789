package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"modern-podcast/internal/navcheck"
)

var (
	targetURL       string
	preset          string
	links           []string
	headless        bool
	controlURL      string
	navTimeout      time.Duration
	overall         time.Duration
	jsonOutput      bool
	noFetchFallback bool
)

var rootCmd = &cobra.Command{
	Use:   "navcheck",
	Short: "Browser smoke checks for a site's top navigation",
	Long: `navcheck drives a headless Chromium against a page and verifies that
the top navigation is visible and labelled as expected. Every failed
assertion is reported and the command exits non-zero.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&targetURL, "url", "", "page to check (defaults to the preset's URL)")
	flags.StringVar(&preset, "preset", "default", `check preset: "default" or "site"`)
	flags.StringSliceVar(&links, "link", nil, "expected navigation link name (repeatable, replaces the preset's links)")
	flags.BoolVar(&headless, "headless", true, "run the browser headless")
	flags.StringVar(&controlURL, "control-url", "", "DevTools URL of an already running browser")
	flags.DurationVar(&navTimeout, "nav-timeout", 60*time.Second, "navigation timeout")
	flags.DurationVar(&overall, "timeout", 120*time.Second, "overall timeout per script (0 disables it)")
	flags.BoolVar(&jsonOutput, "json", false, "print the report as JSON")
	flags.BoolVar(&noFetchFallback, "no-fetch-fallback", false, "do not fetch the page directly when navigation fails")
}

func resolveConfig() (navcheck.Config, error) {
	cfg, err := navcheck.Preset(preset, targetURL)
	if err != nil {
		return navcheck.Config{}, err
	}
	if targetURL != "" {
		cfg.URL = targetURL
	}
	if len(links) > 0 {
		cfg.Links = links
	}
	cfg.NavigationTimeout = navTimeout
	cfg.OverallTimeout = overall
	return cfg, nil
}

// scriptContext bounds a run by timeout; zero or less means no limit.
func scriptContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}

type script func(r *navcheck.Runner, ctx context.Context, page navcheck.Page) *navcheck.Report

func runScript(cmd *cobra.Command, run script) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	logger := log.New(os.Stderr, "navcheck ", log.LstdFlags|log.Lmsgprefix)

	ctx, cancel := scriptContext(cmd.Context(), cfg.OverallTimeout)
	defer cancel()

	session, err := navcheck.Launch(ctx, headless, controlURL)
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Close(); err != nil {
			logger.Printf("error closing browser: %v", err)
		}
	}()

	var fetch navcheck.FetchFunc
	if !noFetchFallback {
		fetch = navcheck.HTTPFetch(nil)
	}

	report := run(navcheck.NewRunner(cfg, fetch, logger), ctx, session.Page())

	out := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else if err := report.Write(out); err != nil {
		return err
	}

	if report.Failed() {
		failed := 0
		for _, c := range report.Checks {
			if !c.Passed {
				failed++
			}
		}
		return fmt.Errorf("%d of %d checks failed", failed, len(report.Checks))
	}
	return nil
}
