package views

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"modern-podcast/internal/faq"
)

// ViewState is the per-view UI state of a rendered page. It is decoded from
// the request query on every request so each view starts from its own copy.
type ViewState struct {
	Path     string
	Query    string
	Open     faq.Accordion
	Expanded map[int]bool
	Playing  int
	MenuOpen bool
}

// ParseState decodes the UI state carried in a page URL.
func ParseState(path string, values url.Values) ViewState {
	state := ViewState{
		Path:     path,
		Query:    values.Get("q"),
		Open:     faq.ParseAccordion(values.Get("open")),
		Expanded: make(map[int]bool),
		MenuOpen: values.Get("menu") == "open",
	}

	for _, raw := range values["expand"] {
		if id, err := strconv.Atoi(raw); err == nil {
			state.Expanded[id] = true
		}
	}

	if id, err := strconv.Atoi(values.Get("play")); err == nil && id > 0 {
		state.Playing = id
	}

	return state
}

func (s ViewState) clone() ViewState {
	expanded := make(map[int]bool, len(s.Expanded))
	for id, ok := range s.Expanded {
		if ok {
			expanded[id] = true
		}
	}
	s.Expanded = expanded
	return s
}

// WithQuery returns a copy with the search text replaced.
func (s ViewState) WithQuery(q string) ViewState {
	next := s.clone()
	next.Query = q
	return next
}

// WithMenu returns a copy with the mobile menu opened or closed.
func (s ViewState) WithMenu(open bool) ViewState {
	next := s.clone()
	next.MenuOpen = open
	return next
}

// WithFAQ returns a copy with the accordion advanced by a click on index.
func (s ViewState) WithFAQ(index int) ViewState {
	next := s.clone()
	next.Open = s.Open.After(index)
	return next
}

// WithExpanded returns a copy with the description of episode id toggled.
func (s ViewState) WithExpanded(id int) ViewState {
	next := s.clone()
	if next.Expanded[id] {
		delete(next.Expanded, id)
	} else {
		next.Expanded[id] = true
	}
	return next
}

// WithPlaying returns a copy that plays episode id.
func (s ViewState) WithPlaying(id int) ViewState {
	next := s.clone()
	next.Playing = id
	return next
}

// Values encodes the state; parameters at their default are omitted.
func (s ViewState) Values() url.Values {
	values := url.Values{}
	if s.Query != "" {
		values.Set("q", s.Query)
	}
	if open := s.Open.Encode(); open != "" {
		values.Set("open", open)
	}
	if len(s.Expanded) > 0 {
		ids := make([]int, 0, len(s.Expanded))
		for id, ok := range s.Expanded {
			if ok {
				ids = append(ids, id)
			}
		}
		sort.Ints(ids)
		for _, id := range ids {
			values.Add("expand", strconv.Itoa(id))
		}
	}
	if s.Playing > 0 {
		values.Set("play", strconv.Itoa(s.Playing))
	}
	if s.MenuOpen {
		values.Set("menu", "open")
	}
	return values
}

// Href returns the URL of the page at s.Path with the state encoded. The
// optional fragment is appended after '#'.
func (s ViewState) Href(fragment string) string {
	path := s.Path
	if path == "" {
		path = "/"
	}
	var b strings.Builder
	b.WriteString(path)
	if encoded := s.Values().Encode(); encoded != "" {
		b.WriteString("?")
		b.WriteString(encoded)
	}
	if fragment != "" {
		b.WriteString("#")
		b.WriteString(fragment)
	}
	return b.String()
}
