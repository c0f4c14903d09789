package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"modern-podcast/internal/navcheck"
)

func resetFlags(t *testing.T) {
	t.Helper()
	saved := []any{targetURL, preset, links, navTimeout, overall}
	t.Cleanup(func() {
		targetURL = saved[0].(string)
		preset = saved[1].(string)
		links = saved[2].([]string)
		navTimeout = saved[3].(time.Duration)
		overall = saved[4].(time.Duration)
	})
	targetURL, preset, links = "", "default", nil
	navTimeout, overall = 60*time.Second, 120*time.Second
}

func TestResolveConfigDefault(t *testing.T) {
	resetFlags(t)

	cfg, err := resolveConfig()
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg.URL != navcheck.DefaultURL || !cfg.RequireSearch {
		t.Fatalf("unexpected default config %+v", cfg)
	}
	if diff := cmp.Diff(navcheck.DefaultLinks, cfg.Links); diff != "" {
		t.Fatalf("links mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveConfigOverrides(t *testing.T) {
	resetFlags(t)
	preset = "site"
	targetURL = "http://127.0.0.1:9999/"
	links = []string{"Home", "Episodes"}
	navTimeout = 5 * time.Second

	cfg, err := resolveConfig()
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg.URL != "http://127.0.0.1:9999/" || cfg.NavigationTimeout != 5*time.Second || cfg.RequireSearch {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if diff := cmp.Diff([]string{"Home", "Episodes"}, cfg.Links); diff != "" {
		t.Fatalf("links mismatch (-want +got):\n%s", diff)
	}

	preset = "unknown"
	if _, err := resolveConfig(); err == nil {
		t.Fatalf("expected error for unknown preset")
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.HasPrefix(out.String(), "navcheck ") {
		t.Fatalf("unexpected version output %q", out.String())
	}
}

func TestScriptContextWithoutLimit(t *testing.T) {
	for _, timeout := range []time.Duration{0, -time.Second} {
		ctx, cancel := scriptContext(context.Background(), timeout)
		if _, ok := ctx.Deadline(); ok {
			t.Fatalf("expected no deadline for timeout %s", timeout)
		}
		if ctx.Err() != nil {
			t.Fatalf("expected live context for timeout %s, got %v", timeout, ctx.Err())
		}
		cancel()
		if ctx.Err() == nil {
			t.Fatalf("expected cancel to end the context")
		}
	}

	ctx, cancel := scriptContext(context.Background(), time.Minute)
	defer cancel()
	if _, ok := ctx.Deadline(); !ok {
		t.Fatalf("expected a deadline for a positive timeout")
	}
}
