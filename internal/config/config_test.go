package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestAllowedExtensionsIsolation(t *testing.T) {
	first := AllowedExtensions()
	second := AllowedExtensions()

	if len(first) == 0 {
		t.Fatalf("expected allowed extensions to be non-empty")
	}

	first[0] = ".doesnotexist"
	if first[0] == second[0] {
		t.Fatalf("mutating returned slice should not affect internal configuration")
	}
}

func TestResolveStaticDirDefaultAndCustom(t *testing.T) {
	temp := t.TempDir()

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(cwd)
	})

	if err := os.Chdir(temp); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	t.Setenv("PODCAST_STATIC_DIR", "")

	path, err := ResolveStaticDir()
	if err != nil {
		t.Fatalf("ResolveStaticDir default: %v", err)
	}

	assertSamePath(t, path, filepath.Join(temp, "public"))

	for _, sub := range []string{AudioSubdir, ImagesSubdir} {
		info, err := os.Stat(filepath.Join(path, sub))
		if err != nil {
			t.Fatalf("stat %s dir: %v", sub, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %s to be a directory", sub)
		}
	}

	tempHome := filepath.Join(temp, "home")
	if err := os.Mkdir(tempHome, 0o755); err != nil {
		t.Fatalf("mkdir temp home: %v", err)
	}

	t.Setenv("HOME", tempHome)
	t.Setenv("PODCAST_STATIC_DIR", "~/site")

	path, err = ResolveStaticDir()
	if err != nil {
		t.Fatalf("ResolveStaticDir tilde: %v", err)
	}

	assertSamePath(t, path, filepath.Join(tempHome, "site"))
}

func TestListenAddr(t *testing.T) {
	t.Setenv("PODCAST_LISTEN_ADDR", "")
	if ListenAddr() != "127.0.0.1:8080" {
		t.Fatalf("expected default listen address")
	}

	t.Setenv("PODCAST_LISTEN_ADDR", "0.0.0.0:9000")
	if ListenAddr() != "0.0.0.0:9000" {
		t.Fatalf("expected custom listen address")
	}
}

func TestRefreshDebounce(t *testing.T) {
	t.Setenv("PODCAST_REFRESH_DEBOUNCE_MS", "")
	if RefreshDebounce() != 500*time.Millisecond {
		t.Fatalf("expected default debounce")
	}

	t.Setenv("PODCAST_REFRESH_DEBOUNCE_MS", "1500")
	if RefreshDebounce() != 1500*time.Millisecond {
		t.Fatalf("expected custom debounce")
	}

	t.Setenv("PODCAST_REFRESH_DEBOUNCE_MS", "not-a-number")
	if RefreshDebounce() != 500*time.Millisecond {
		t.Fatalf("expected fallback debounce on parse error")
	}

	t.Setenv("PODCAST_REFRESH_DEBOUNCE_MS", "-10")
	if RefreshDebounce() != 500*time.Millisecond {
		t.Fatalf("expected fallback debounce on negative value")
	}
}

func TestValidateListenAddr(t *testing.T) {
	valid := []string{"127.0.0.1:8080", "localhost:9000", "[::1]:7000", "0.0.0.0:80", ":8080"}
	for _, addr := range valid {
		if err := ValidateListenAddr(addr); err != nil {
			t.Fatalf("expected %s to be valid: %v", addr, err)
		}
	}

	invalid := []string{"localhost", "127.0.0.1:http", "127.0.0.1:70000", ""}
	for _, addr := range invalid {
		if err := ValidateListenAddr(addr); err == nil {
			t.Fatalf("expected %q to be rejected", addr)
		}
	}
}

func clearSiteEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PODCAST_SITE_CONFIG",
		"PODCAST_SITE_TITLE",
		"PODCAST_SITE_TAGLINE",
		"PODCAST_SITE_DESCRIPTION",
		"PODCAST_SITE_URL",
		"PODCAST_SITE_LANGUAGE",
		"PODCAST_SITE_AUTHOR",
	} {
		t.Setenv(key, "")
	}
}

func TestResolveSiteMetadataDefaultsAndEnv(t *testing.T) {
	clearSiteEnv(t)

	meta, err := ResolveSiteMetadata()
	if err != nil {
		t.Fatalf("ResolveSiteMetadata: %v", err)
	}

	if meta.Title != defaultSiteTitle || meta.Description != defaultSiteDescription || meta.Language != defaultSiteLanguage || meta.URL != "" || meta.Author != "" {
		t.Fatalf("expected defaults, got %+v", meta)
	}

	t.Setenv("PODCAST_SITE_TITLE", "My Cast")
	t.Setenv("PODCAST_SITE_TAGLINE", "Weekly talks")
	t.Setenv("PODCAST_SITE_DESCRIPTION", "All the episodes")
	t.Setenv("PODCAST_SITE_URL", "https://cast.example/")
	t.Setenv("PODCAST_SITE_LANGUAGE", "fr")
	t.Setenv("PODCAST_SITE_AUTHOR", "Jane Doe")

	meta, err = ResolveSiteMetadata()
	if err != nil {
		t.Fatalf("ResolveSiteMetadata overrides: %v", err)
	}

	want := SiteMetadata{
		Title:       "My Cast",
		Tagline:     "Weekly talks",
		Description: "All the episodes",
		URL:         "https://cast.example",
		Language:    "fr",
		Author:      "Jane Doe",
	}
	if meta != want {
		t.Fatalf("expected env overrides, got %+v", meta)
	}
}

func TestResolveSiteMetadataFromFile(t *testing.T) {
	temp := t.TempDir()
	configPath := filepath.Join(temp, "site.yaml")
	content := "" +
		"title: File Title\n" +
		"description: File Description\n" +
		"url: https://file.example\n" +
		"language: es\n" +
		"author: File Author\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	clearSiteEnv(t)
	t.Setenv("PODCAST_SITE_CONFIG", configPath)

	meta, err := ResolveSiteMetadata()
	if err != nil {
		t.Fatalf("ResolveSiteMetadata: %v", err)
	}

	if meta.Title != "File Title" || meta.Description != "File Description" || meta.URL != "https://file.example" || meta.Language != "es" || meta.Author != "File Author" {
		t.Fatalf("expected file-derived metadata, got %+v", meta)
	}
	if meta.Tagline != defaultSiteTagline {
		t.Fatalf("expected default tagline to survive, got %q", meta.Tagline)
	}

	t.Setenv("PODCAST_SITE_TITLE", "Env Title")
	meta, err = ResolveSiteMetadata()
	if err != nil {
		t.Fatalf("ResolveSiteMetadata env override: %v", err)
	}
	if meta.Title != "Env Title" {
		t.Fatalf("expected env override to win, got %s", meta.Title)
	}
}

func TestResolveSiteMetadataErrors(t *testing.T) {
	clearSiteEnv(t)
	t.Setenv("PODCAST_SITE_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := ResolveSiteMetadata(); err == nil {
		t.Fatalf("expected error for missing config file")
	}

	broken := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(broken, []byte("title: [unterminated\n"), 0o644); err != nil {
		t.Fatalf("write broken config: %v", err)
	}
	t.Setenv("PODCAST_SITE_CONFIG", broken)
	if _, err := ResolveSiteMetadata(); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}

	t.Setenv("PODCAST_SITE_CONFIG", "")
	t.Setenv("PODCAST_SITE_URL", "not a url")
	if _, err := ResolveSiteMetadata(); err == nil {
		t.Fatalf("expected error for relative site url")
	}
}

func assertSamePath(t *testing.T, got, want string) {
	t.Helper()
	resolvedGot, err := filepath.EvalSymlinks(got)
	if err != nil {
		t.Fatalf("eval symlinks for %s: %v", got, err)
	}
	resolvedWant, err := filepath.EvalSymlinks(want)
	if err != nil {
		t.Fatalf("eval symlinks for %s: %v", want, err)
	}
	if resolvedGot != resolvedWant {
		t.Fatalf("expected %s, got %s", resolvedWant, resolvedGot)
	}
}
