package views

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"

	"modern-podcast/internal/models"
)

// PreviewLength is the number of characters of a description shown before
// "Read More".
const PreviewLength = 150

// FormatDate renders a publish date the way episode cards show it.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}

// Truncate shortens a description to PreviewLength characters followed by
// an ellipsis. Shorter descriptions are returned unchanged.
func Truncate(description string) string {
	runes := []rune(description)
	if len(runes) <= PreviewLength {
		return description
	}
	return string(runes[:PreviewLength]) + "..."
}

// Badge returns the "Episode N • Season S" label of an episode.
func Badge(ep models.Episode) string {
	badge := "Episode " + itoa(ep.EpisodeNumber)
	if ep.Season != nil && *ep.Season != 0 {
		badge += " • Season " + itoa(*ep.Season)
	}
	return badge
}

// EpisodeCard renders one entry of the episode list.
func EpisodeCard(ep models.Episode, state ViewState) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		expanded := state.Expanded[ep.ID]

		h.open("article", "class", "episode-card", "id", "episode-"+itoa(ep.ID))

		h.open("div", "class", "episode-cover")
		h.raw("<img")
		h.attr("src", string(templ.URL(ep.CoverArt)))
		h.attr("alt", "Cover art for "+ep.Title)
		h.attr("loading", "lazy")
		h.raw(">")
		h.element("a", "▶",
			"href", state.WithPlaying(ep.ID).Href("audio-player"),
			"class", "play-button",
			"aria-label", "Play episode "+itoa(ep.EpisodeNumber)+": "+ep.Title,
		)
		h.close("div")

		h.open("div", "class", "episode-body")
		h.element("div", Badge(ep), "class", "episode-badge")
		h.element("h3", ep.Title)

		h.open("div", "class", "episode-meta")
		h.open("time", "datetime", ep.PublishDate.Format(time.DateOnly))
		h.text(FormatDate(ep.PublishDate))
		h.close("time")
		h.element("span", ep.Duration, "class", "episode-duration")
		h.close("div")

		description := ep.Description
		if !expanded {
			description = Truncate(description)
		}
		h.element("p", description, "class", "episode-description")

		if len([]rune(ep.Description)) > PreviewLength {
			label := "Read More"
			if expanded {
				label = "Show Less"
			}
			h.element("a", label,
				"href", state.WithExpanded(ep.ID).Href("episode-"+itoa(ep.ID)),
				"class", "episode-toggle",
			)
		}
		h.close("div")

		h.close("article")
		return h.err
	})
}

// AudioPlayer renders a native audio element for an episode.
func AudioPlayer(ep models.Episode) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.open("figure", "class", "audio-player")
		h.element("figcaption", ep.Title)
		h.raw("<audio controls preload=\"none\"")
		h.attr("src", string(templ.URL(ep.AudioURL)))
		h.raw(">")
		h.open("a", "href", ep.AudioURL)
		h.text("Download " + ep.Title)
		h.close("a")
		h.raw("</audio>")
		h.close("figure")
		return h.err
	})
}
