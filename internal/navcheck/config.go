// Package navcheck runs browser smoke checks against a site's top
// navigation: the page loads, the cookie banner can be dismissed, and the
// expected navigation links and search control are visible.
package navcheck

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DefaultURL is the page checked when no target is given.
const DefaultURL = "https://www.itv.com/"

const (
	defaultNavigationTimeout = 60 * time.Second
	defaultCookieTimeout     = 5 * time.Second
	defaultFallbackDetach    = 3 * time.Second
	defaultAssertTimeout     = 5 * time.Second
	defaultOverallTimeout    = 120 * time.Second
)

// DefaultLinks are the link names expected in the default target's navigation.
var DefaultLinks = []string{"Live", "Film", "Categories", "News", "My List", "Stream Ad-Free", "Sign in"}

// SiteLinks are the link names of this site's own navigation.
var SiteLinks = []string{"Home", "Episodes", "About", "FAQ"}

// Config controls a check run.
type Config struct {
	URL   string
	Links []string

	// RequireSearch asserts a search control inside the navigation.
	RequireSearch bool

	NavigationTimeout time.Duration
	CookieTimeout     time.Duration
	FallbackDetach    time.Duration
	AssertTimeout     time.Duration
	OverallTimeout    time.Duration
}

// DefaultConfig returns the configuration for the default target.
func DefaultConfig() Config {
	return Config{
		URL:               DefaultURL,
		Links:             append([]string(nil), DefaultLinks...),
		RequireSearch:     true,
		NavigationTimeout: defaultNavigationTimeout,
		CookieTimeout:     defaultCookieTimeout,
		FallbackDetach:    defaultFallbackDetach,
		AssertTimeout:     defaultAssertTimeout,
		OverallTimeout:    defaultOverallTimeout,
	}
}

// Preset returns the configuration registered under name. "default" checks
// DefaultURL; "site" checks this site's navigation at baseURL.
func Preset(name, baseURL string) (Config, error) {
	cfg := DefaultConfig()
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return cfg, nil
	case "site":
		if baseURL == "" {
			baseURL = "http://127.0.0.1:8080/"
		}
		cfg.URL = baseURL
		cfg.Links = append([]string(nil), SiteLinks...)
		cfg.RequireSearch = false
		return cfg, nil
	default:
		return Config{}, fmt.Errorf("unknown preset %q", name)
	}
}

// TelemetryPattern matches request URLs of third-party telemetry and
// analytics services.
var TelemetryPattern = regexp.MustCompile(`(?i)doubleclick|google-analytics|googletagmanager|gstatic|recaptcha|sentry|hotjar|segment|analytics`)

// ShouldBlock reports whether a request to rawURL is aborted during a
// presence run.
func ShouldBlock(rawURL string) bool {
	return TelemetryPattern.MatchString(rawURL)
}
