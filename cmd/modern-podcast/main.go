package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"modern-podcast/internal/config"
	"modern-podcast/internal/content"
	"modern-podcast/internal/library"
	"modern-podcast/internal/server"
)

func main() {
	logger := log.New(os.Stdout, "modern-podcast ", log.LstdFlags|log.Lmsgprefix)

	staticDir, err := config.ResolveStaticDir()
	if err != nil {
		logger.Fatalf("resolve static directory: %v", err)
	}

	listenAddr := config.ListenAddr()
	if err := config.ValidateListenAddr(listenAddr); err != nil {
		logger.Fatalf("invalid listen address %q: %v", listenAddr, err)
	}

	site, err := config.ResolveSiteMetadata()
	if err != nil {
		logger.Fatalf("resolve site metadata: %v", err)
	}

	catalog := content.Default()

	audioDir := filepath.Join(staticDir, config.AudioSubdir)
	lib, err := library.NewLibrary(audioDir, "/"+config.AudioSubdir, config.AllowedExtensions(), config.RefreshDebounce(), logger)
	if err != nil {
		logger.Fatalf("initialise audio index: %v", err)
	}
	defer func() {
		if err := lib.Close(); err != nil {
			logger.Printf("error closing audio index: %v", err)
		}
	}()

	for _, ep := range catalog.Episodes() {
		if _, ok := lib.Lookup(ep.AudioURL); !ok {
			logger.Printf("episode %d: audio file %s not found", ep.ID, ep.AudioURL)
		}
	}

	handler := server.New(catalog, lib, staticDir, server.SiteMetadata{
		Title:       site.Title,
		Tagline:     site.Tagline,
		Description: site.Description,
		URL:         site.URL,
		Language:    site.Language,
		Author:      site.Author,
	}, logger)

	httpServer := &http.Server{
		Addr:              listenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Printf("graceful shutdown error: %v", err)
		}
	}()

	logger.Printf("listening on %s (static directory: %s, %d episodes)", listenAddr, staticDir, len(catalog.Episodes()))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("http server error: %v", err)
	}
	logger.Println("shutdown complete")
}
