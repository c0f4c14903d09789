// Package library indexes the audio files under the static audio directory
// and keeps the index current while files are added, replaced or removed.
package library

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"modern-podcast/internal/metadata"
	"modern-podcast/internal/models"
)

// Library watches an audio directory and keeps measured metadata in memory.
type Library struct {
	root    string
	mount   string
	allowed map[string]struct{}
	watcher *fsnotify.Watcher
	logger  *log.Logger

	mu     sync.RWMutex
	files  []models.AudioFile
	byPath map[string]int

	refreshMu    sync.Mutex
	refreshTimer *time.Timer
	refreshDelay time.Duration

	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
	closeErr  error
}

// NewLibrary scans root, whose files are served under the URL prefix mount,
// and starts watching it for changes.
func NewLibrary(root, mount string, allowed []string, debounce time.Duration, logger *log.Logger) (*Library, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = log.Default()
	}

	lib := &Library{
		root:         root,
		mount:        mount,
		allowed:      make(map[string]struct{}, len(allowed)),
		watcher:      watcher,
		logger:       logger,
		byPath:       make(map[string]int),
		refreshDelay: debounce,
		done:         make(chan struct{}),
	}

	for _, ext := range allowed {
		lib.allowed[strings.ToLower(ext)] = struct{}{}
	}

	lib.addWatchRecursive(root)

	if err := lib.refresh(); err != nil {
		watcher.Close()
		return nil, err
	}

	lib.wg.Add(1)
	go lib.run()

	return lib, nil
}

// Close stops the watcher and cleans up resources.
func (l *Library) Close() error {
	l.closeOnce.Do(func() {
		close(l.done)

		l.refreshMu.Lock()
		if l.refreshTimer != nil {
			l.refreshTimer.Stop()
			l.refreshTimer = nil
		}
		l.refreshMu.Unlock()

		l.closeErr = l.watcher.Close()
		l.wg.Wait()
	})
	return l.closeErr
}

// List returns a snapshot of the indexed files ordered by asset path.
func (l *Library) List() []models.AudioFile {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]models.AudioFile, len(l.files))
	copy(result, l.files)
	return result
}

// Lookup returns the file served at assetPath, e.g. /audio/episode-001.mp3.
func (l *Library) Lookup(assetPath string) (models.AudioFile, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	idx, ok := l.byPath[assetPath]
	if !ok {
		return models.AudioFile{}, false
	}
	return l.files[idx], true
}

// Len returns the number of indexed files.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.files)
}

func (l *Library) run() {
	defer l.wg.Done()

	for {
		select {
		case event, ok := <-l.watcher.Events:
			if !ok {
				return
			}
			l.handleEvent(event)
		case err, ok := <-l.watcher.Errors:
			if !ok {
				return
			}
			l.logger.Printf("audio watcher error: %v", err)
		case <-l.done:
			return
		}
	}
}

func (l *Library) handleEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Create == fsnotify.Create {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			l.addWatchRecursive(event.Name)
		}
	}

	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
		if l.isAllowed(event.Name) || event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
			l.scheduleRefresh()
		}
	}
}

func (l *Library) refresh() error {
	var files []models.AudioFile

	err := filepath.WalkDir(l.root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			l.logger.Printf("walk error for %s: %v", path, err)
			return nil
		}

		if d.IsDir() || !l.isAllowed(path) {
			return nil
		}

		file, err := metadata.Probe(path, l.root, l.mount)
		if err != nil {
			l.logger.Printf("metadata error for %s: %v", path, err)
			return nil
		}

		files = append(files, file)
		return nil
	})
	if err != nil {
		return err
	}

	sort.SliceStable(files, func(i, j int) bool {
		return files[i].AssetPath < files[j].AssetPath
	})

	byPath := make(map[string]int, len(files))
	for i, f := range files {
		byPath[f.AssetPath] = i
	}

	l.mu.Lock()
	l.files = files
	l.byPath = byPath
	l.mu.Unlock()

	l.logger.Printf("audio index refreshed with %d files", len(files))
	return nil
}

func (l *Library) scheduleRefresh() {
	select {
	case <-l.done:
		return
	default:
	}

	l.refreshMu.Lock()
	defer l.refreshMu.Unlock()

	if l.refreshTimer != nil {
		l.refreshTimer.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(l.refreshDelay, func() {
		if err := l.refresh(); err != nil {
			l.logger.Printf("refresh error: %v", err)
		}

		l.refreshMu.Lock()
		if l.refreshTimer == timer {
			l.refreshTimer = nil
		}
		l.refreshMu.Unlock()
	})

	l.refreshTimer = timer
}

func (l *Library) addWatchRecursive(path string) {
	filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			l.logger.Printf("walk error for %s: %v", p, err)
			return nil
		}

		if d.IsDir() {
			if err := l.watcher.Add(p); err != nil {
				l.logger.Printf("watcher add failure for %s: %v", p, err)
			}
		}
		return nil
	})
}

func (l *Library) isAllowed(path string) bool {
	_, ok := l.allowed[strings.ToLower(filepath.Ext(path))]
	return ok
}
