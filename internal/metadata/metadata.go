// Package metadata measures the audio assets served from the static
// directory.
package metadata

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	pathpkg "path"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"github.com/tcolgate/mp3"

	"modern-podcast/internal/models"
)

var errNoFrames = errors.New("no mp3 frames decoded")

// Probe builds the metadata snapshot of the audio file at path. root is the
// directory mounted at the URL prefix mount, so a file root/episode-001.mp3
// mounted at /audio gets the asset path /audio/episode-001.mp3.
func Probe(path, root, mount string) (models.AudioFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return models.AudioFile{}, err
	}

	relative, err := filepath.Rel(root, path)
	if err != nil {
		relative = filepath.Base(path)
	}

	title, artist, album := readTags(path)
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	file := models.AudioFile{
		AssetPath:     AssetPath(mount, filepath.ToSlash(relative)),
		Filename:      filepath.Base(path),
		Title:         title,
		Artist:        artist,
		Album:         album,
		FilesizeBytes: info.Size(),
		ModifiedAt:    info.ModTime().UTC().Round(time.Second),
	}

	if strings.EqualFold(filepath.Ext(path), ".mp3") {
		if dur, err := computeMP3Duration(path); err == nil && dur > 0 {
			duration := dur
			file.DurationSeconds = &duration

			bitrate := int(math.Round((float64(info.Size()) * 8) / duration / 1000))
			if bitrate > 0 {
				file.BitrateKbps = &bitrate
			}
		}
	}

	return file, nil
}

// AssetPath joins a mount prefix and a slash-separated relative path into the
// URL path the file is served under.
func AssetPath(mount, relative string) string {
	return pathpkg.Join("/", mount, relative)
}

func readTags(path string) (string, *string, *string) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, nil
	}
	defer f.Close()

	meta, err := tag.ReadFrom(f)
	if err != nil {
		return "", nil, nil
	}

	return strings.TrimSpace(meta.Title()), optionalString(meta.Artist()), optionalString(meta.Album())
}

func optionalString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

func computeMP3Duration(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	decoder := mp3.NewDecoder(f)
	var frame mp3.Frame
	var skipped int
	var total float64
	frames := 0

	for {
		if err := decoder.Decode(&frame, &skipped); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return 0, err
		}
		frames++
		total += frame.Duration().Seconds()
	}

	if frames == 0 {
		return 0, errNoFrames
	}
	return total, nil
}

// FormatDuration renders seconds as HH:MM:SS, or "" for non-positive input.
func FormatDuration(seconds float64) string {
	if seconds <= 0 {
		return ""
	}
	total := int64(seconds + 0.5)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
