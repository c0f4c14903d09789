package navcheck

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

// FetchFunc retrieves the HTML of url without a browser.
type FetchFunc func(ctx context.Context, url string) (string, error)

var (
	navSelector    = Selector{CSS: "nav"}
	cookieSelector = Selector{CSS: "button#cassie_accept_all_pre_banner"}

	fallbackCookieSelectors = []Selector{
		{CSS: "button", Text: "Accept all"},
		{CSS: "button", Text: "Accept all cookies"},
		{CSS: "button", Text: "Accept cookies"},
		{CSS: "button", Text: "Accept"},
		{CSS: "button#onetrust-accept-btn-handler"},
		{CSS: "button", Text: "Agree"},
		{CSS: "a, button, span, div", Text: "Accept"},
	}

	searchSelectors = []Selector{
		{CSS: "*", Text: "open search bar"},
		{CSS: "a", Text: "search"},
		{CSS: `a[aria-label*="search" i]`},
	}
)

const pollInterval = 100 * time.Millisecond

var errNotFound = errors.New("not found")

// Runner executes check scripts against a Page.
type Runner struct {
	Config Config
	Fetch  FetchFunc
	Logger *log.Logger
}

// NewRunner returns a Runner for cfg. fetch may be nil, in which case the
// navigation fallback is skipped.
func NewRunner(cfg Config, fetch FetchFunc, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Config: cfg, Fetch: fetch, Logger: logger}
}

// Seed navigates to the target and reports whether the page loaded.
func (r *Runner) Seed(ctx context.Context, page Page) *Report {
	report := &Report{Script: "seed", URL: r.Config.URL}
	start := time.Now()
	defer func() { report.Duration = time.Since(start) }()

	ctx, cancel := r.overall(ctx)
	defer cancel()

	navCtx, navCancel := context.WithTimeout(ctx, r.Config.NavigationTimeout)
	defer navCancel()

	if err := page.Navigate(navCtx, r.Config.URL); err != nil {
		report.fail("navigate", err)
		return report
	}
	report.pass("navigate", "")
	return report
}

// Presence checks the navigation landmark, its links and its search control.
// Failures are collected in the report; the run continues after each one.
func (r *Runner) Presence(ctx context.Context, page Page) *Report {
	report := &Report{Script: "presence", URL: r.Config.URL}
	start := time.Now()
	defer func() { report.Duration = time.Since(start) }()

	ctx, cancel := r.overall(ctx)
	defer cancel()

	if err := page.BlockRequests(ShouldBlock); err != nil {
		report.note("request blocking unavailable: %v", err)
	}

	r.load(ctx, page, report)
	r.acceptCookies(ctx, page, report)

	nav, err := r.waitVisible(ctx, func(ctx context.Context) (Element, error) {
		return page.Query(ctx, navSelector)
	})
	if err != nil {
		report.fail("nav visible", err)
		for _, name := range r.Config.Links {
			report.fail(linkCheckName(name), errors.New("navigation not visible"))
		}
		if r.Config.RequireSearch {
			report.fail("search control", errors.New("navigation not visible"))
		}
		return report
	}
	report.pass("nav visible", "")

	for _, name := range r.Config.Links {
		sel := Selector{CSS: "a", Text: name}
		if _, err := r.waitVisible(ctx, func(ctx context.Context) (Element, error) {
			return nav.Query(ctx, sel)
		}); err != nil {
			report.fail(linkCheckName(name), err)
			continue
		}
		report.pass(linkCheckName(name), "")
	}

	if r.Config.RequireSearch {
		if sel, ok := r.findSearch(ctx, nav); ok {
			report.pass("search control", sel.String())
		} else {
			report.fail("search control", errors.New("no visible search trigger in navigation"))
		}
	}

	return report
}

func linkCheckName(name string) string {
	return fmt.Sprintf("link %q visible", name)
}

func (r *Runner) overall(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.Config.OverallTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.Config.OverallTimeout)
}

// load navigates to the target, falling back to fetching the HTML directly
// and loading it into the page.
func (r *Runner) load(ctx context.Context, page Page, report *Report) {
	navCtx, cancel := context.WithTimeout(ctx, r.Config.NavigationTimeout)
	err := page.Navigate(navCtx, r.Config.URL)
	cancel()
	if err == nil {
		report.pass("page loaded", "")
		return
	}

	r.Logger.Printf("navigation to %s failed or timed out; continuing with assertions: %v", r.Config.URL, err)
	report.note("navigation failed: %v", err)

	if r.Fetch == nil {
		report.fail("page loaded", err)
		return
	}

	html, fetchErr := r.Fetch(ctx, r.Config.URL)
	if fetchErr != nil {
		r.Logger.Printf("fallback fetch failed: %v", fetchErr)
		report.fail("page loaded", fmt.Errorf("navigate: %v; fallback fetch: %w", err, fetchErr))
		return
	}
	if err := page.SetContent(ctx, html); err != nil {
		report.fail("page loaded", fmt.Errorf("set fetched content: %w", err))
		return
	}

	r.Logger.Printf("fetched HTML directly and loaded it into the page")
	report.pass("page loaded", "via direct fetch")
}

// acceptCookies dismisses a cookie banner when one is present. It never
// fails the run.
func (r *Runner) acceptCookies(ctx context.Context, page Page, report *Report) {
	banner, err := r.waitFor(ctx, r.Config.CookieTimeout, func(ctx context.Context) (Element, error) {
		return page.Query(ctx, cookieSelector)
	})
	if err == nil {
		if err := banner.Click(ctx); err != nil {
			report.note("cookie banner click failed: %v", err)
		}
		_ = r.waitGone(ctx, page, cookieSelector, r.Config.CookieTimeout)
		report.note("cookie banner accepted via %s", cookieSelector)
		return
	}

	for _, sel := range fallbackCookieSelectors {
		el, err := page.Query(ctx, sel)
		if err != nil || el == nil {
			continue
		}
		if err := el.Click(ctx); err != nil {
			continue
		}
		_ = r.waitGone(ctx, page, sel, r.Config.FallbackDetach)
		report.note("cookie banner accepted via %s", sel)
		return
	}

	report.note("no cookie banner found")
}

func (r *Runner) findSearch(ctx context.Context, nav Element) (Selector, bool) {
	for _, sel := range searchSelectors {
		el, err := nav.Query(ctx, sel)
		if err != nil || el == nil {
			continue
		}
		if visible, err := el.Visible(ctx); err == nil && visible {
			return sel, true
		}
	}
	return Selector{}, false
}

// waitVisible polls find until it yields a visible element or the assertion
// timeout elapses.
func (r *Runner) waitVisible(ctx context.Context, find func(context.Context) (Element, error)) (Element, error) {
	var lastErr error = errNotFound
	el, err := r.waitFor(ctx, r.Config.AssertTimeout, func(ctx context.Context) (Element, error) {
		el, err := find(ctx)
		if err != nil || el == nil {
			return el, err
		}
		visible, err := el.Visible(ctx)
		if err != nil {
			return nil, err
		}
		if !visible {
			lastErr = errors.New("present but not visible")
			return nil, nil
		}
		return el, nil
	})
	if err != nil && errors.Is(err, context.DeadlineExceeded) {
		return nil, lastErr
	}
	return el, err
}

// waitFor polls find until it yields an element or timeout elapses. Errors
// from find are retried.
func (r *Runner) waitFor(ctx context.Context, timeout time.Duration, find func(context.Context) (Element, error)) (Element, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		if el, err := find(ctx); err == nil && el != nil {
			return el, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (r *Runner) waitGone(ctx context.Context, page Page, sel Selector, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		if el, err := page.Query(ctx, sel); err == nil && el == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
