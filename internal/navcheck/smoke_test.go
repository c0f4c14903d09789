package navcheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"
)

const smokePage = `<!DOCTYPE html>
<html><head><title>smoke</title><script src="/analytics.js"></script></head>
<body>
<button id="cassie_accept_all_pre_banner" onclick="this.remove()">Accept all</button>
<nav>
<a href="/">Home</a> <a href="/episodes">Episodes</a> <a href="/about">About</a> <a href="/faq">FAQ</a>
<a href="/search" aria-label="Search">Search</a>
</nav>
</body></html>`

func TestBrowserSmoke(t *testing.T) {
	if os.Getenv("NAVCHECK_BROWSER") != "1" {
		t.Skip("set NAVCHECK_BROWSER=1 to run against a local Chromium")
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(smokePage))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	session, err := Launch(ctx, true, os.Getenv("NAVCHECK_CONTROL_URL"))
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}
	defer session.Close()

	cfg, err := Preset("site", srv.URL+"/")
	if err != nil {
		t.Fatalf("Preset: %v", err)
	}
	cfg.RequireSearch = true

	report := NewRunner(cfg, HTTPFetch(srv.Client()), quietLogger()).Presence(ctx, session.Page())
	if report.Failed() {
		t.Fatalf("smoke checks failed: %v", failedChecks(report))
	}
}
