package server

import (
	"fmt"
	"net/http"

	"modern-podcast/internal/feed"
)

func (h *serverHandler) handleFeed(w http.ResponseWriter, r *http.Request) {
	if !readOnly(r) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	base := h.baseURL(r)
	if base == nil {
		h.logger.Printf("unable to determine request base URL")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	meta := feed.Metadata{
		Title:       h.site.Title,
		Description: h.site.Description,
		Language:    h.site.Language,
		Author:      h.site.Author,
	}

	var lookup feed.AudioLookup
	if h.audio != nil {
		lookup = h.audio.Lookup
	}

	data, err := feed.BuildRSS(meta, base, h.catalog.Episodes(), lookup)
	if err != nil {
		h.logger.Printf("failed to build RSS feed: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write(data); err != nil {
		h.logger.Printf("failed to write RSS feed: %v", err)
	}
}

func (h *serverHandler) handleSitemap(w http.ResponseWriter, r *http.Request) {
	if !readOnly(r) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	base := h.baseURL(r)
	if base == nil {
		h.logger.Printf("unable to determine request base URL")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	data, err := feed.BuildSitemap(base, h.catalog.LastPublished())
	if err != nil {
		h.logger.Printf("failed to build sitemap: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	if _, err := w.Write(data); err != nil {
		h.logger.Printf("failed to write sitemap: %v", err)
	}
}

func (h *serverHandler) handleRobots(w http.ResponseWriter, r *http.Request) {
	if !readOnly(r) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	body := "User-agent: *\nAllow: /\nDisallow: /api/\n"
	if base := h.baseURL(r); base != nil {
		sitemap := *base
		sitemap.Path = "/sitemap.xml"
		body += fmt.Sprintf("\nSitemap: %s\n", sitemap.String())
	}
	if _, err := w.Write([]byte(body)); err != nil {
		h.logger.Printf("failed to write robots.txt: %v", err)
	}
}
