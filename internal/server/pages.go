package server

import (
	"net/http"

	"github.com/a-h/templ"

	"modern-podcast/internal/faq"
	"modern-podcast/internal/models"
	"modern-podcast/internal/search"
	"modern-podcast/internal/views"
)

func (h *serverHandler) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.notFound(w, r)
		return
	}
	if !readOnly(r) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var featured *models.Episode
	if ep, ok := h.catalog.Featured(); ok {
		featured = &ep
	}

	meta := views.PageMeta{Title: "Home", Description: h.site.Description, Path: "/"}
	h.render(w, r, http.StatusOK, meta, views.HomePage(h.viewSite(), featured, len(h.catalog.Episodes())))
}

func (h *serverHandler) handleEpisodes(w http.ResponseWriter, r *http.Request) {
	if !readOnly(r) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	state := views.ParseState(r.URL.Path, r.URL.Query())
	all := h.catalog.Episodes()

	data := views.EpisodesPageData{
		Results: search.Episodes(all, state.Query),
		Total:   len(all),
		State:   state,
	}
	if state.Playing != 0 {
		if ep, ok := h.catalog.EpisodeByID(state.Playing); ok {
			data.Playing = &ep
		}
	}

	meta := views.PageMeta{
		Title:       "Episodes",
		Description: "Browse all episodes of " + h.site.Title + ".",
		Path:        "/episodes",
	}
	h.render(w, r, http.StatusOK, meta, views.EpisodesPage(data))
}

func (h *serverHandler) handleAbout(w http.ResponseWriter, r *http.Request) {
	if !readOnly(r) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	about := h.catalog.About()
	meta := views.PageMeta{Title: "About", Description: about.Tagline, Path: "/about"}
	h.render(w, r, http.StatusOK, meta, views.AboutPage(about))
}

func (h *serverHandler) handleFAQ(w http.ResponseWriter, r *http.Request) {
	if !readOnly(r) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	state := views.ParseState(r.URL.Path, r.URL.Query())
	meta := views.PageMeta{
		Title:       "FAQ",
		Description: "Answers to common questions about " + h.site.Title + ".",
		Path:        "/faq",
	}
	h.render(w, r, http.StatusOK, meta, views.FAQPage(faq.Group(h.catalog.FAQ()), state))
}

func (h *serverHandler) notFound(w http.ResponseWriter, r *http.Request) {
	meta := views.PageMeta{Title: "Page Not Found", Description: h.site.Description, Path: r.URL.Path}
	h.render(w, r, http.StatusNotFound, meta, views.NotFoundPage())
}

// render writes body inside the site layout as an HTML response.
func (h *serverHandler) render(w http.ResponseWriter, r *http.Request, status int, meta views.PageMeta, body templ.Component) {
	state := views.ParseState(r.URL.Path, r.URL.Query())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := views.Layout(h.viewSite(), meta, state, body).Render(r.Context(), w); err != nil {
		h.logger.Printf("failed to render %s: %v", r.URL.Path, err)
	}
}

func (h *serverHandler) viewSite() views.Site {
	return views.Site{
		Title:       h.site.Title,
		Tagline:     h.site.Tagline,
		Description: h.site.Description,
		URL:         h.site.URL,
		Language:    h.site.Language,
	}
}
