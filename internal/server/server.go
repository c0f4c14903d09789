package server

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"modern-podcast/internal/models"
)

// CatalogProvider abstracts the site content for the HTTP handlers.
type CatalogProvider interface {
	Episodes() []models.Episode
	Featured() (models.Episode, bool)
	EpisodeByID(id int) (models.Episode, bool)
	FAQ() []models.FAQItem
	About() models.AboutContent
	LastPublished() time.Time
}

// AudioIndex resolves measured audio files by their served path.
type AudioIndex interface {
	List() []models.AudioFile
	Lookup(assetPath string) (models.AudioFile, bool)
	Len() int
}

// SiteMetadata describes the site-wide values used by pages, the feed and
// the sitemap.
type SiteMetadata struct {
	Title       string
	Tagline     string
	Description string
	URL         string
	Language    string
	Author      string
}

type serverHandler struct {
	catalog    CatalogProvider
	audio      AudioIndex
	audioRoot  string
	imagesRoot string
	site       SiteMetadata
	logger     *log.Logger
}

// New creates the HTTP handler serving the website, its JSON API, the RSS
// feed and the static assets found under staticDir. audio may be nil.
func New(catalog CatalogProvider, audio AudioIndex, staticDir string, site SiteMetadata, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.Default()
	}

	cleanRoot := filepath.Clean(staticDir)
	absRoot, err := filepath.Abs(cleanRoot)
	if err != nil {
		logger.Printf("warning: unable to resolve absolute static root %q: %v", staticDir, err)
		absRoot = cleanRoot
	}

	if site.Title == "" {
		site.Title = "Modern Podcast"
	}
	if site.Description == "" {
		site.Description = site.Title
	}
	site.URL = strings.TrimRight(site.URL, "/")

	h := &serverHandler{
		catalog:    catalog,
		audio:      audio,
		audioRoot:  filepath.Join(absRoot, "audio"),
		imagesRoot: filepath.Join(absRoot, "images"),
		site:       site,
		logger:     logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", h.handleHome)
	mux.HandleFunc("/episodes", h.handleEpisodes)
	mux.HandleFunc("/about", h.handleAbout)
	mux.HandleFunc("/faq", h.handleFAQ)
	mux.HandleFunc("/health", h.handleHealth)
	mux.HandleFunc("/api/episodes", h.handleAPIEpisodes)
	mux.HandleFunc("/api/episodes/{id}", h.handleAPIEpisode)
	mux.HandleFunc("/api/faq", h.handleAPIFAQ)
	mux.HandleFunc("/api/about", h.handleAPIAbout)
	mux.HandleFunc("/api/audio", h.handleAPIAudio)
	mux.HandleFunc("/feed", h.handleFeed)
	mux.HandleFunc("/feed.xml", h.handleFeed)
	mux.HandleFunc("/rss", h.handleFeed)
	mux.HandleFunc("/sitemap.xml", h.handleSitemap)
	mux.HandleFunc("/robots.txt", h.handleRobots)
	mux.HandleFunc("/audio/", h.staticHandler("/audio/", h.audioRoot))
	mux.HandleFunc("/images/", h.staticHandler("/images/", h.imagesRoot))

	return logRequests(recoverPanics(securityHeaders(cacheControl(mux)), logger), logger)
}

func (h *serverHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !readOnly(r) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	audioFiles := 0
	if h.audio != nil {
		audioFiles = h.audio.Len()
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"episodes":    len(h.catalog.Episodes()),
		"audio_files": audioFiles,
	})
}

// readOnly reports whether r is a GET or HEAD request.
func readOnly(r *http.Request) bool {
	return r.Method == http.MethodGet || r.Method == http.MethodHead
}

func (h *serverHandler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Printf("failed to encode response: %v", err)
	}
}

// baseURL returns the configured site URL, or the URL the request was made
// against when none is configured.
func (h *serverHandler) baseURL(r *http.Request) *url.URL {
	if h.site.URL != "" {
		if parsed, err := url.Parse(h.site.URL); err == nil && parsed.Host != "" {
			return parsed
		}
	}
	return requestBaseURL(r)
}

func requestBaseURL(r *http.Request) *url.URL {
	scheme := "http"
	if forwarded := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		if candidate := strings.TrimSpace(parts[0]); candidate != "" {
			scheme = candidate
		}
	} else if r.TLS != nil {
		scheme = "https"
	}

	host := strings.TrimSpace(r.Host)
	if host == "" {
		return nil
	}

	return &url.URL{Scheme: scheme, Host: host}
}
