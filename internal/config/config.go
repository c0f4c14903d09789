package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var allowedExtensions = []string{
	".mp3",
	".m4a",
	".aac",
	".wav",
	".flac",
	".ogg",
}

const (
	defaultListenAddr        = "127.0.0.1:8080"
	defaultStaticDir         = "public"
	defaultRefreshDebounceMS = 500
	defaultSiteTitle         = "Modern Podcast"
	defaultSiteTagline       = "Conversations about technology, creativity, and the future"
	defaultSiteDescription   = "A modern podcast exploring the intersection of technology, creativity, and innovation."
	defaultSiteLanguage      = "en"
)

// AudioSubdir and ImagesSubdir are created inside the static directory.
const (
	AudioSubdir  = "audio"
	ImagesSubdir = "images"
)

// AllowedExtensions returns the list of supported audio file extensions (lowercase).
func AllowedExtensions() []string {
	result := make([]string, len(allowedExtensions))
	copy(result, allowedExtensions)
	return result
}

// ResolveStaticDir returns the directory holding audio and image assets.
// The directory and its audio and images subdirectories are created when missing.
func ResolveStaticDir() (string, error) {
	dir := strings.TrimSpace(os.Getenv("PODCAST_STATIC_DIR"))
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(cwd, defaultStaticDir)
	}

	abs, err := expandPath(dir)
	if err != nil {
		return "", err
	}

	for _, sub := range []string{AudioSubdir, ImagesSubdir} {
		if err := os.MkdirAll(filepath.Join(abs, sub), 0o755); err != nil {
			return "", fmt.Errorf("create %s directory: %w", sub, err)
		}
	}

	return abs, nil
}

// ListenAddr returns the TCP address the HTTP server should bind to.
func ListenAddr() string {
	addr := strings.TrimSpace(os.Getenv("PODCAST_LISTEN_ADDR"))
	if addr == "" {
		return defaultListenAddr
	}
	return addr
}

// ValidateListenAddr ensures addr is a host:port pair with a numeric port.
func ValidateListenAddr(addr string) error {
	_, port, err := net.SplitHostPort(strings.TrimSpace(addr))
	if err != nil {
		return fmt.Errorf("listen address must be host:port: %w", err)
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("invalid listen port %q", port)
	}
	return nil
}

// RefreshDebounce returns the duration to wait before refreshing the audio
// index after file-system change events.
func RefreshDebounce() time.Duration {
	value := strings.TrimSpace(os.Getenv("PODCAST_REFRESH_DEBOUNCE_MS"))
	if value == "" {
		return time.Duration(defaultRefreshDebounceMS) * time.Millisecond
	}

	ms, err := strconv.Atoi(value)
	if err != nil || ms < 0 {
		return time.Duration(defaultRefreshDebounceMS) * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}

// SiteMetadata holds the site-wide values rendered into pages and feeds.
type SiteMetadata struct {
	Title       string
	Tagline     string
	Description string
	URL         string
	Language    string
	Author      string
}

type siteMetadataYAML struct {
	Title       string `yaml:"title"`
	Tagline     string `yaml:"tagline"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
	Language    string `yaml:"language"`
	Author      string `yaml:"author"`
}

// ResolveSiteMetadata returns the site metadata after applying defaults,
// YAML configuration (when PODCAST_SITE_CONFIG is set), and environment
// variable overrides.
func ResolveSiteMetadata() (SiteMetadata, error) {
	meta := SiteMetadata{
		Title:       defaultSiteTitle,
		Tagline:     defaultSiteTagline,
		Description: defaultSiteDescription,
		Language:    defaultSiteLanguage,
	}

	if configPath := strings.TrimSpace(os.Getenv("PODCAST_SITE_CONFIG")); configPath != "" {
		resolved, err := expandPath(configPath)
		if err != nil {
			return SiteMetadata{}, err
		}
		data, err := os.ReadFile(resolved)
		if err != nil {
			return SiteMetadata{}, fmt.Errorf("read site config: %w", err)
		}
		var doc siteMetadataYAML
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return SiteMetadata{}, fmt.Errorf("parse site config: %w", err)
		}
		overlay(&meta, doc.Title, doc.Tagline, doc.Description, doc.URL, doc.Language, doc.Author)
	}

	overlay(&meta,
		os.Getenv("PODCAST_SITE_TITLE"),
		os.Getenv("PODCAST_SITE_TAGLINE"),
		os.Getenv("PODCAST_SITE_DESCRIPTION"),
		os.Getenv("PODCAST_SITE_URL"),
		os.Getenv("PODCAST_SITE_LANGUAGE"),
		os.Getenv("PODCAST_SITE_AUTHOR"),
	)

	// An empty URL makes the server derive links from the request host.
	if meta.URL != "" {
		meta.URL = strings.TrimRight(meta.URL, "/")
		parsed, err := url.Parse(meta.URL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return SiteMetadata{}, fmt.Errorf("site url %q must be absolute", meta.URL)
		}
	}

	return meta, nil
}

func overlay(meta *SiteMetadata, title, tagline, description, siteURL, language, author string) {
	set := func(dst *string, value string) {
		if value = strings.TrimSpace(value); value != "" {
			*dst = value
		}
	}
	set(&meta.Title, title)
	set(&meta.Tagline, tagline)
	set(&meta.Description, description)
	set(&meta.URL, siteURL)
	set(&meta.Language, language)
	set(&meta.Author, author)
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[1:])
		}
	}

	return filepath.Abs(path)
}
