package views

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"
)

// IsActive reports whether the navigation link href should be highlighted
// for the current path. The home link only matches exactly.
func IsActive(path, href string) bool {
	if href == "/" {
		return path == "/"
	}
	return strings.HasPrefix(path, href)
}

// Layout wraps body in the document shell shared by every page.
func Layout(site Site, meta PageMeta, state ViewState, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)

		title := site.Title
		if meta.Title != "" {
			title = meta.Title + " | " + site.Title
		} else if site.Tagline != "" {
			title = site.Title + " | " + site.Tagline
		}
		description := meta.Description
		if description == "" {
			description = site.Description
		}
		lang := site.Language
		if lang == "" {
			lang = "en"
		}

		h.raw("<!DOCTYPE html>")
		h.open("html", "lang", lang)
		h.raw("<head>")
		h.raw(`<meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.element("title", title)
		h.raw("<meta")
		h.attr("name", "description")
		h.attr("content", description)
		h.raw(">")
		writeSocialMeta(h, site, description)
		h.raw("<link")
		h.attr("rel", "alternate")
		h.attr("type", "application/rss+xml")
		h.attr("title", site.Title)
		h.href("/feed.xml")
		h.raw(">")
		h.raw("</head><body>")

		h.element("a", "Skip to main content", "href", "#main-content", "class", "skip-link")
		writeNavigation(h, site, state)

		h.open("main", "id", "main-content")
		h.component(body)
		h.close("main")

		writeFooter(h, site)
		h.raw("</body></html>")
		return h.err
	})
}

func writeSocialMeta(h *htmlWriter, site Site, description string) {
	tags := [][2]string{
		{"og:title", site.Title},
		{"og:description", site.Tagline},
		{"og:type", "website"},
		{"og:image", "/images/og-image.jpg"},
	}
	for _, tag := range tags {
		h.raw("<meta")
		h.attr("property", tag[0])
		h.attr("content", tag[1])
		h.raw(">")
	}
	twitter := [][2]string{
		{"twitter:card", "summary_large_image"},
		{"twitter:title", site.Title},
		{"twitter:description", description},
	}
	for _, tag := range twitter {
		h.raw("<meta")
		h.attr("name", tag[0])
		h.attr("content", tag[1])
		h.raw(">")
	}
}

func writeNavigation(h *htmlWriter, site Site, state ViewState) {
	h.open("nav", "aria-label", "Primary")
	h.open("div", "class", "brand")
	h.element("a", site.Title, "href", "/", "aria-label", site.Title+" Home")
	h.close("div")

	h.open("div", "class", "nav-desktop")
	writeNavLinks(h, state.Path)
	h.close("div")

	expanded := "false"
	label := "☰"
	if state.MenuOpen {
		expanded = "true"
		label = "✕"
	}
	h.element("a", label,
		"href", state.WithMenu(!state.MenuOpen).Href(""),
		"class", "nav-toggle",
		"role", "button",
		"aria-expanded", expanded,
		"aria-label", "Toggle navigation menu",
		"aria-controls", "mobile-menu",
	)

	if state.MenuOpen {
		h.open("div", "id", "mobile-menu", "class", "nav-mobile")
		writeNavLinks(h, state.Path)
		h.close("div")
	}
	h.close("nav")
}

// writeNavLinks emits plain links; the target URLs carry no menu state, so
// following one from the mobile menu closes it.
func writeNavLinks(h *htmlWriter, path string) {
	for _, link := range NavLinks {
		active := IsActive(path, link.Href)
		class := "nav-link"
		if active {
			class += " active"
		}
		h.raw("<a")
		h.href(link.Href)
		h.attr("class", class)
		if active {
			h.attr("aria-current", "page")
		}
		h.raw(">")
		h.text(link.Label)
		h.close("a")
	}
}

func writeFooter(h *htmlWriter, site Site) {
	h.open("footer")
	h.element("p", site.Title, "class", "footer-brand")
	h.element("p", "Exploring ideas that shape our future, one conversation at a time.")
	h.open("p", "class", "footer-copy")
	h.text("© " + itoa(time.Now().Year()) + " " + site.Title + ". All rights reserved.")
	h.close("p")
	h.close("footer")
}
