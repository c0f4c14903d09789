package library

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestLibrary(t *testing.T, root string, allowed ...string) *Library {
	t.Helper()
	lib, err := NewLibrary(root, "/audio", allowed, 10*time.Millisecond, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("NewLibrary: %v", err)
	}
	t.Cleanup(func() {
		if err := lib.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	})
	return lib
}

func TestLibraryWatchesAndRefreshes(t *testing.T) {
	root := t.TempDir()
	initial := filepath.Join(root, "episode-001.mp3")
	if err := os.WriteFile(initial, []byte("one"), 0o644); err != nil {
		t.Fatalf("write initial file: %v", err)
	}

	lib := newTestLibrary(t, root, ".mp3")

	waitFor(t, func() bool { return lib.Len() == 1 }, "initial scan")

	if _, ok := lib.Lookup("/audio/episode-001.mp3"); !ok {
		t.Fatalf("expected lookup by asset path to succeed")
	}

	second := filepath.Join(root, "episode-002.mp3")
	if err := os.WriteFile(second, []byte("two"), 0o644); err != nil {
		t.Fatalf("write second file: %v", err)
	}
	waitFor(t, func() bool { return lib.Len() == 2 }, "detect second file")

	subdir := filepath.Join(root, "bonus")
	if err := os.MkdirAll(subdir, 0o755); err != nil {
		t.Fatalf("mkdir bonus: %v", err)
	}
	time.Sleep(150 * time.Millisecond)

	nested := filepath.Join(subdir, "extra.mp3")
	if err := os.WriteFile(nested, []byte("three"), 0o644); err != nil {
		t.Fatalf("write nested file: %v", err)
	}
	waitFor(t, func() bool {
		_, ok := lib.Lookup("/audio/bonus/extra.mp3")
		return ok
	}, "detect nested file")

	if err := os.Remove(second); err != nil {
		t.Fatalf("remove file: %v", err)
	}
	waitFor(t, func() bool {
		_, ok := lib.Lookup("/audio/episode-002.mp3")
		return !ok && lib.Len() == 2
	}, "reflect removal")

	files := lib.List()
	files[0].Title = "mutated"
	if lib.List()[0].Title == "mutated" {
		t.Fatalf("expected List to return a defensive copy")
	}
}

func TestLibraryIgnoresOtherExtensions(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("text"), 0o644); err != nil {
		t.Fatalf("write txt: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "episode-003.MP3"), []byte("audio"), 0o644); err != nil {
		t.Fatalf("write mp3: %v", err)
	}

	lib := newTestLibrary(t, root, ".mp3")
	waitFor(t, func() bool { return lib.Len() == 1 }, "initial scan")

	if lib.List()[0].Filename != "episode-003.MP3" {
		t.Fatalf("unexpected file %s", lib.List()[0].Filename)
	}

	if err := os.WriteFile(filepath.Join(root, "readme.md"), []byte("doc"), 0o644); err != nil {
		t.Fatalf("write md: %v", err)
	}
	time.Sleep(100 * time.Millisecond)

	if lib.Len() != 1 {
		t.Fatalf("expected still 1 file, got %d", lib.Len())
	}
}

func TestLibraryEmptyDirectory(t *testing.T) {
	root := t.TempDir()
	lib := newTestLibrary(t, root, ".mp3")

	if lib.Len() != 0 {
		t.Fatalf("expected empty index, got %d", lib.Len())
	}
	if _, ok := lib.Lookup("/audio/episode-001.mp3"); ok {
		t.Fatalf("expected lookup to fail on empty index")
	}

	if err := os.WriteFile(filepath.Join(root, "episode-001.mp3"), []byte("audio"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	waitFor(t, func() bool { return lib.Len() == 1 }, "detect new file")
}

func TestLibraryCloseIsIdempotent(t *testing.T) {
	lib, err := NewLibrary(t.TempDir(), "/audio", []string{".mp3"}, time.Millisecond, nil)
	if err != nil {
		t.Fatalf("NewLibrary: %v", err)
	}
	first := lib.Close()
	if second := lib.Close(); second != first {
		t.Fatalf("expected repeated Close to return the same result")
	}
}

func waitFor(t *testing.T, predicate func() bool, label string) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if predicate() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timeout waiting for %s", label)
}
