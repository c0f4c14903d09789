package views

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"

	"modern-podcast/internal/content"
	"modern-podcast/internal/faq"
	"modern-podcast/internal/models"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}

func testSite() Site {
	return Site{Title: "Modern Podcast", Tagline: "Exploring ideas that shape our future", Language: "en"}
}

func TestIsActive(t *testing.T) {
	cases := []struct {
		path, href string
		want       bool
	}{
		{"/", "/", true},
		{"/episodes", "/", false},
		{"/episodes", "/episodes", true},
		{"/episodes/3", "/episodes", true},
		{"/about", "/faq", false},
	}
	for _, tc := range cases {
		if got := IsActive(tc.path, tc.href); got != tc.want {
			t.Fatalf("IsActive(%q, %q) = %t, want %t", tc.path, tc.href, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	short := strings.Repeat("a", PreviewLength)
	if got := Truncate(short); got != short {
		t.Fatalf("expected description of exactly %d chars unchanged", PreviewLength)
	}

	long := strings.Repeat("b", PreviewLength+1)
	got := Truncate(long)
	if got != strings.Repeat("b", PreviewLength)+"..." {
		t.Fatalf("unexpected truncation %q", got)
	}
}

func TestBadgeAndDate(t *testing.T) {
	season := 2
	ep := models.Episode{EpisodeNumber: 7, Season: &season}
	if got := Badge(ep); got != "Episode 7 • Season 2" {
		t.Fatalf("unexpected badge %q", got)
	}
	if got := Badge(models.Episode{EpisodeNumber: 3}); got != "Episode 3" {
		t.Fatalf("unexpected badge without season %q", got)
	}

	if got := FormatDate(time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)); got != "January 15, 2025" {
		t.Fatalf("unexpected date %q", got)
	}
	if got := FormatDate(time.Time{}); got != "" {
		t.Fatalf("expected empty date for zero time, got %q", got)
	}
}

func TestParseStateRoundTrip(t *testing.T) {
	values := url.Values{}
	values.Set("q", "ai")
	values.Set("open", "4")
	values.Add("expand", "9")
	values.Add("expand", "2")
	values.Add("expand", "oops")
	values.Set("play", "3")
	values.Set("menu", "open")

	state := ParseState("/episodes", values)
	if state.Query != "ai" || !state.Open.IsOpen(4) || state.Playing != 3 || !state.MenuOpen {
		t.Fatalf("unexpected state %+v", state)
	}
	if !state.Expanded[9] || !state.Expanded[2] || len(state.Expanded) != 2 {
		t.Fatalf("unexpected expanded set %+v", state.Expanded)
	}

	want := "/episodes?expand=2&expand=9&menu=open&open=4&play=3&q=ai#top"
	if got := state.Href("top"); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestStateTogglesDoNotMutate(t *testing.T) {
	state := ParseState("/faq", url.Values{})

	opened := state.WithFAQ(2)
	if _, ok := state.Open.Open(); ok {
		t.Fatalf("WithFAQ mutated the receiver")
	}
	if got := opened.Href(""); got != "/faq?open=2" {
		t.Fatalf("unexpected href %s", got)
	}
	if got := opened.WithFAQ(2).Href(""); got != "/faq" {
		t.Fatalf("expected toggling twice to close, got %s", got)
	}

	expanded := state.WithExpanded(5)
	if state.Expanded[5] {
		t.Fatalf("WithExpanded mutated the receiver")
	}
	if !expanded.Expanded[5] || expanded.WithExpanded(5).Expanded[5] {
		t.Fatalf("expected expand toggle semantics")
	}

	if got := state.WithMenu(true).Href(""); got != "/faq?menu=open" {
		t.Fatalf("unexpected menu href %s", got)
	}
}

func TestLayoutNavigation(t *testing.T) {
	state := ParseState("/episodes", url.Values{})
	out := render(t, Layout(testSite(), PageMeta{Title: "Episodes"}, state, templ.NopComponent))

	for _, want := range []string{
		"<title>Episodes | Modern Podcast</title>",
		`href="/episodes" class="nav-link active" aria-current="page"`,
		`href="/" class="nav-link"`,
		`href="/episodes?menu=open"`,
		`aria-expanded="false"`,
		`href="#main-content"`,
		`type="application/rss+xml"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected layout to contain %q\n%s", want, out)
		}
	}
	if strings.Contains(out, `id="mobile-menu"`) {
		t.Fatalf("mobile menu should be hidden by default")
	}

	open := render(t, Layout(testSite(), PageMeta{}, state.WithMenu(true), templ.NopComponent))
	if !strings.Contains(open, `id="mobile-menu"`) || !strings.Contains(open, `aria-expanded="true"`) {
		t.Fatalf("expected mobile menu when open")
	}
}

func TestEpisodesPageSearchResults(t *testing.T) {
	cat := content.Default()
	ep, _ := cat.EpisodeByID(3)
	state := ParseState("/episodes", url.Values{"q": {"digital"}})

	out := render(t, EpisodesPage(EpisodesPageData{
		Results: []models.Episode{ep},
		Total:   20,
		State:   state,
	}))

	for _, want := range []string{
		"Search Results",
		"Found 1 episode",
		"Creativity in the Digital Age",
		"Episode 3 • Season 1",
		"January 29, 2025",
		"Read More",
		`value="digital"`,
		`aria-label="Clear search"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected episodes page to contain %q", want)
		}
	}
	if strings.Contains(out, ep.Description) {
		t.Fatalf("collapsed card should show the truncated description")
	}
}

func TestEpisodesPageEmptyAndPlaying(t *testing.T) {
	cat := content.Default()
	ep, _ := cat.EpisodeByID(5)
	state := ParseState("/episodes", url.Values{"play": {"5"}, "expand": {"5"}})

	out := render(t, EpisodesPage(EpisodesPageData{
		Results: []models.Episode{ep},
		Total:   20,
		Playing: &ep,
		State:   state,
	}))
	if !strings.Contains(out, `id="audio-player"`) || !strings.Contains(out, `src="/audio/episode-005.mp3"`) {
		t.Fatalf("expected audio player for playing episode")
	}
	if !strings.Contains(out, "Show Less") || !strings.Contains(out, "All Episodes") {
		t.Fatalf("expected expanded card under All Episodes")
	}
	if strings.Contains(out, "Found ") {
		t.Fatalf("no summary expected without a query")
	}

	empty := render(t, EpisodesPage(EpisodesPageData{Total: 20, State: ParseState("/episodes", url.Values{"q": {"zzz"}})}))
	if !strings.Contains(empty, "No episodes found matching &#34;zzz&#34;") || !strings.Contains(empty, "Found 0 episodes") {
		t.Fatalf("expected empty state echoing the query, got:\n%s", empty)
	}

	hostile := render(t, EpisodesPage(EpisodesPageData{Total: 20, State: ParseState("/episodes", url.Values{"q": {"<b>x</b>"}})}))
	if strings.Contains(hostile, "<b>x</b>") || !strings.Contains(hostile, "&lt;b&gt;x&lt;/b&gt;") {
		t.Fatalf("expected echoed query to be escaped")
	}
}

func TestFAQPageAccordion(t *testing.T) {
	items := content.Default().FAQ()
	sections := faq.Group(items)

	closed := render(t, FAQPage(sections, ParseState("/faq", url.Values{})))
	if strings.Contains(closed, `aria-expanded="true"`) {
		t.Fatalf("expected every answer collapsed initially")
	}
	if !strings.Contains(closed, `href="/faq?open=0#faq-1"`) {
		t.Fatalf("expected question 1 to link to its open state")
	}
	for _, label := range []string{"General Questions", "Listening to Episodes", "Guest Submissions", "Technical Support"} {
		if !strings.Contains(closed, label) {
			t.Fatalf("expected section %q", label)
		}
	}

	open := render(t, FAQPage(sections, ParseState("/faq", url.Values{"open": {"2"}})))
	if strings.Count(open, `aria-expanded="true"`) != 1 {
		t.Fatalf("expected exactly one expanded answer")
	}
	if !strings.Contains(open, `<div id="faq-answer-3" class="faq-answer">`) {
		t.Fatalf("expected answer 3 visible")
	}
	if !strings.Contains(open, `href="/faq#faq-3"`) {
		t.Fatalf("expected open question to link back to the closed state")
	}
}

func TestAboutPage(t *testing.T) {
	out := render(t, AboutPage(content.Default().About()))
	for _, want := range []string{
		"About Modern Podcast",
		"Jordan Rivers",
		"Co-Host &amp; Research Lead",
		`src="/images/host-alex.jpg"`,
		`href="mailto:hello@modernpodcast.com"`,
		`href="https://twitter.com/modernpodcast"`,
		`id="contact"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected about page to contain %q", want)
		}
	}
	if strings.Contains(out, "LinkedIn") {
		t.Fatalf("empty social links should be skipped")
	}
	if strings.Count(out, "<p>") < 4 {
		t.Fatalf("expected story paragraphs rendered from markdown")
	}
}

func TestHomeAndNotFound(t *testing.T) {
	featured, _ := content.Default().Featured()
	out := render(t, HomePage(testSite(), &featured, 20))
	if !strings.Contains(out, "Featured Episode") || !strings.Contains(out, "Season Finale: Looking Forward") {
		t.Fatalf("expected featured episode on home page")
	}
	if !strings.Contains(out, "Browse All 20 Episodes") {
		t.Fatalf("expected episode count link")
	}

	empty := render(t, HomePage(testSite(), nil, 0))
	if strings.Contains(empty, "Featured Episode") {
		t.Fatalf("no featured section expected without episodes")
	}

	notFound := render(t, NotFoundPage())
	if !strings.Contains(notFound, "Page Not Found") || !strings.Contains(notFound, `href="/episodes"`) {
		t.Fatalf("unexpected not found page")
	}
}

func TestTextIsEscaped(t *testing.T) {
	ep := models.Episode{ID: 1, EpisodeNumber: 1, Title: "<b>bold</b>", Description: "x"}
	out := render(t, EpisodeCard(ep, ParseState("/episodes", url.Values{})))
	if strings.Contains(out, "<b>bold</b>") {
		t.Fatalf("title should be escaped")
	}
	if !strings.Contains(out, "&lt;b&gt;bold&lt;/b&gt;") {
		t.Fatalf("expected escaped title")
	}
}
