package server

import (
	"net/http"
	"strconv"

	"modern-podcast/internal/faq"
	"modern-podcast/internal/models"
	"modern-podcast/internal/search"
)

type episodeList struct {
	Query    string           `json:"query,omitempty"`
	Summary  string           `json:"summary,omitempty"`
	Total    int              `json:"total"`
	Episodes []models.Episode `json:"episodes"`
}

type episodeDetail struct {
	models.Episode
	Audio *models.AudioFile `json:"audio,omitempty"`
}

type faqEntry struct {
	Index int `json:"index"`
	models.FAQItem
}

type faqSection struct {
	Category models.Category `json:"category"`
	Label    string          `json:"label"`
	Items    []faqEntry      `json:"items"`
}

type apiError struct {
	Error string `json:"error"`
}

func (h *serverHandler) handleAPIEpisodes(w http.ResponseWriter, r *http.Request) {
	if !readOnly(r) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	all := h.catalog.Episodes()
	results := search.Episodes(all, query)

	payload := episodeList{
		Query:    query,
		Total:    len(all),
		Episodes: results,
	}
	if query != "" {
		payload.Summary = search.ResultSummary(len(results))
	}
	if payload.Episodes == nil {
		payload.Episodes = []models.Episode{}
	}

	h.writeJSON(w, http.StatusOK, payload)
}

func (h *serverHandler) handleAPIEpisode(w http.ResponseWriter, r *http.Request) {
	if !readOnly(r) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, apiError{Error: "episode id must be an integer"})
		return
	}

	ep, ok := h.catalog.EpisodeByID(id)
	if !ok {
		h.writeJSON(w, http.StatusNotFound, apiError{Error: "episode not found"})
		return
	}

	detail := episodeDetail{Episode: ep}
	if h.audio != nil {
		if file, ok := h.audio.Lookup(ep.AudioURL); ok {
			detail.Audio = &file
		}
	}

	h.writeJSON(w, http.StatusOK, detail)
}

func (h *serverHandler) handleAPIFAQ(w http.ResponseWriter, r *http.Request) {
	if !readOnly(r) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	sections := faq.Group(h.catalog.FAQ())
	payload := make([]faqSection, 0, len(sections))
	for _, s := range sections {
		out := faqSection{Category: s.Category, Label: s.Label}
		for _, e := range s.Entries {
			out.Items = append(out.Items, faqEntry{Index: e.Index, FAQItem: e.Item})
		}
		payload = append(payload, out)
	}

	h.writeJSON(w, http.StatusOK, payload)
}

func (h *serverHandler) handleAPIAudio(w http.ResponseWriter, r *http.Request) {
	if !readOnly(r) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	files := []models.AudioFile{}
	if h.audio != nil {
		if listed := h.audio.List(); len(listed) > 0 {
			files = listed
		}
	}

	h.writeJSON(w, http.StatusOK, files)
}

func (h *serverHandler) handleAPIAbout(w http.ResponseWriter, r *http.Request) {
	if !readOnly(r) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, h.catalog.About())
}
