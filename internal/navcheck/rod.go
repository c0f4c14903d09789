package navcheck

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Session is a launched browser with a single open tab.
type Session struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rodPage
}

// Launch starts a local Chromium and opens a blank tab. When controlURL is
// non-empty it connects to that running browser instead.
func Launch(ctx context.Context, headless bool, controlURL string) (*Session, error) {
	s := &Session{}

	if controlURL == "" {
		s.launcher = launcher.New().Context(ctx).Headless(headless)
		u, err := s.launcher.Launch()
		if err != nil {
			return nil, fmt.Errorf("launch browser: %w", err)
		}
		controlURL = u
	}

	s.browser = rod.New().ControlURL(controlURL).Context(ctx)
	if err := s.browser.Connect(); err != nil {
		s.cleanupLauncher()
		return nil, fmt.Errorf("connect browser: %w", err)
	}

	page, err := s.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = s.browser.Close()
		s.cleanupLauncher()
		return nil, fmt.Errorf("open page: %w", err)
	}
	s.page = &rodPage{page: page}

	return s, nil
}

// Page returns the session's tab.
func (s *Session) Page() Page {
	return s.page
}

// Close stops request hijacking and shuts the browser down.
func (s *Session) Close() error {
	if s.page != nil && s.page.router != nil {
		_ = s.page.router.Stop()
	}
	err := s.browser.Close()
	s.cleanupLauncher()
	return err
}

func (s *Session) cleanupLauncher() {
	if s.launcher != nil {
		s.launcher.Cleanup()
	}
}

type rodPage struct {
	page   *rod.Page
	router *rod.HijackRouter
}

func (p *rodPage) BlockRequests(match func(url string) bool) error {
	router := p.page.HijackRequests()
	err := router.Add("*", "", func(h *rod.Hijack) {
		if match(h.Request.URL().String()) {
			h.Response.Fail(proto.NetworkErrorReasonBlockedByClient)
			return
		}
		h.ContinueRequest(&proto.FetchContinueRequest{})
	})
	if err != nil {
		return fmt.Errorf("add hijack route: %w", err)
	}
	go router.Run()
	p.router = router
	return nil
}

func (p *rodPage) Navigate(ctx context.Context, url string) error {
	page := p.page.Context(ctx)
	wait := page.WaitNavigation(proto.PageLifecycleEventNameDOMContentLoaded)
	if err := page.Navigate(url); err != nil {
		return err
	}
	wait()
	return ctx.Err()
}

func (p *rodPage) SetContent(ctx context.Context, html string) error {
	return p.page.Context(ctx).SetDocumentContent(html)
}

func (p *rodPage) Query(ctx context.Context, sel Selector) (Element, error) {
	page := p.page.Context(ctx)

	var (
		found bool
		el    *rod.Element
		err   error
	)
	if sel.Text == "" {
		found, el, err = page.Has(sel.CSS)
	} else {
		found, el, err = page.HasR(sel.CSS, sel.jsRegex())
	}
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &rodElement{el: el}, nil
}

type rodElement struct {
	el *rod.Element
}

func (e *rodElement) Click(ctx context.Context) error {
	return e.el.Context(ctx).Click(proto.InputMouseButtonLeft, 1)
}

func (e *rodElement) Visible(ctx context.Context) (bool, error) {
	return e.el.Context(ctx).Visible()
}

func (e *rodElement) Query(ctx context.Context, sel Selector) (Element, error) {
	el := e.el.Context(ctx)

	var (
		found bool
		child *rod.Element
		err   error
	)
	if sel.Text == "" {
		found, child, err = el.Has(sel.CSS)
	} else {
		found, child, err = el.HasR(sel.CSS, sel.jsRegex())
	}
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &rodElement{el: child}, nil
}
