package content

import (
	"fmt"
	"strings"
	"time"
)

// AudioPath returns the static asset path of an episode's audio file.
func AudioPath(episodeNumber int) string {
	return fmt.Sprintf("/audio/episode-%03d.mp3", episodeNumber)
}

// CoverPath returns the static asset path of an episode's cover art.
func CoverPath(episodeNumber int) string {
	return fmt.Sprintf("/images/episode-%03d.jpg", episodeNumber)
}

// HostPhotoPath returns the static asset path of a host portrait.
func HostPhotoPath(name string) string {
	return "/images/host-" + strings.ToLower(strings.TrimSpace(name)) + ".jpg"
}

func date(value string) time.Time {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(fmt.Sprintf("content: invalid publish date %q", value))
	}
	return t
}

func season(n int) *int {
	return &n
}
