package server

import (
	"errors"
	"net/http"
	"os"
	pathpkg "path"
	"path/filepath"
	"strings"
)

// staticHandler serves files below root for request paths starting with prefix.
func (h *serverHandler) staticHandler(prefix, root string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !readOnly(r) {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		rel := strings.TrimPrefix(r.URL.Path, prefix)
		rel = pathpkg.Clean("/" + rel)
		rel = strings.TrimPrefix(rel, "/")
		if rel == "" || rel == "." {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		target := filepath.Join(root, filepath.FromSlash(rel))
		resolved, err := filepath.Abs(target)
		if err != nil {
			h.logger.Printf("failed to resolve static path %s: %v", target, err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if !pathWithinRoot(root, resolved) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		info, err := os.Stat(resolved)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			h.logger.Printf("failed to stat static file %s: %v", resolved, err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if info.IsDir() {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		http.ServeFile(w, r, resolved)
	}
}

func pathWithinRoot(root, target string) bool {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	return rel != ".." && !strings.HasPrefix(rel, "../")
}
