package navcheck

import (
	"context"
	"regexp"
	"strings"
)

// Selector locates an element by CSS selector and, when Text is set, by a
// case-insensitive substring of its text.
type Selector struct {
	CSS  string
	Text string
}

func (s Selector) String() string {
	if s.Text == "" {
		return s.CSS
	}
	return s.CSS + ` with text "` + s.Text + `"`
}

// jsRegex renders Text as a JavaScript regular expression literal.
func (s Selector) jsRegex() string {
	pattern := strings.ReplaceAll(regexp.QuoteMeta(s.Text), "/", `\/`)
	return "/" + pattern + "/i"
}

// Page is a browser tab the checks drive.
type Page interface {
	// BlockRequests aborts every subsequent request whose URL matches.
	BlockRequests(match func(url string) bool) error
	// Navigate loads url and returns once the DOM content is loaded.
	Navigate(ctx context.Context, url string) error
	// SetContent replaces the document with html.
	SetContent(ctx context.Context, html string) error
	// Query returns the first element matching sel, or nil when none does.
	Query(ctx context.Context, sel Selector) (Element, error)
}

// Element is a node of a Page.
type Element interface {
	Click(ctx context.Context) error
	Visible(ctx context.Context) (bool, error)
	// Query returns the first descendant matching sel, or nil when none does.
	Query(ctx context.Context, sel Selector) (Element, error)
}
