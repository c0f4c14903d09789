// Package feed renders the podcast RSS feed and the site map.
package feed

import (
	"encoding/xml"
	"fmt"
	"mime"
	"net/url"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"modern-podcast/internal/metadata"
	"modern-podcast/internal/models"
)

const generator = "modern-podcast"

// Metadata describes the channel-level information of the feed.
type Metadata struct {
	Title       string
	Description string
	Language    string
	Author      string
}

// AudioLookup resolves the measured file behind an episode's audio path.
// A nil AudioLookup means no file information is available.
type AudioLookup func(assetPath string) (models.AudioFile, bool)

// BuildRSS renders an RSS 2.0 document for episodes. base is the absolute
// site URL used for the channel link and enclosure URLs.
func BuildRSS(meta Metadata, base *url.URL, episodes []models.Episode, lookup AudioLookup) ([]byte, error) {
	if base == nil || base.Host == "" {
		return nil, fmt.Errorf("feed base URL must be absolute")
	}

	channelLink := *base
	channelLink.Path = "/"
	channelLink.RawQuery = ""
	channelLink.Fragment = ""

	selfLink := channelLink
	selfLink.Path = "/feed.xml"

	sorted := make([]models.Episode, len(episodes))
	copy(sorted, episodes)
	sort.SliceStable(sorted, func(i, j int) bool {
		iTime := sorted[i].PublishDate
		jTime := sorted[j].PublishDate
		if iTime.Equal(jTime) {
			return sorted[i].ID > sorted[j].ID
		}
		return iTime.After(jTime)
	})

	lastBuild := time.Time{}
	for _, ep := range sorted {
		if !ep.PublishDate.IsZero() && ep.PublishDate.After(lastBuild) {
			lastBuild = ep.PublishDate.UTC()
		}
	}
	if lastBuild.IsZero() {
		lastBuild = time.Now().UTC()
	}

	if meta.Description == "" {
		meta.Description = meta.Title
	}

	rss := rssFeed{
		Version:  "2.0",
		AtomNS:   "http://www.w3.org/2005/Atom",
		ITunesNS: "http://www.itunes.com/dtds/podcast-1.0.dtd",
		Channel: rssChannel{
			Title:         meta.Title,
			Link:          channelLink.String(),
			Description:   meta.Description,
			Language:      meta.Language,
			LastBuildDate: lastBuild.Format(time.RFC1123Z),
			Generator:     generator,
			AtomLink: rssAtomLink{
				Href: selfLink.String(),
				Rel:  "self",
				Type: "application/rss+xml",
			},
			ITunesAuthor: meta.Author,
		},
	}

	for _, ep := range sorted {
		rss.Channel.Items = append(rss.Channel.Items, buildItem(base, ep, meta.Author, lookup))
	}

	output, err := xml.MarshalIndent(rss, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode rss: %w", err)
	}

	return append([]byte(xml.Header), output...), nil
}

func buildItem(base *url.URL, ep models.Episode, author string, lookup AudioLookup) rssItem {
	link := *base
	link.Path = "/episodes"
	link.RawQuery = url.Values{"play": {strconv.Itoa(ep.ID)}}.Encode()
	link.Fragment = "audio-player"

	item := rssItem{
		Title:        ep.Title,
		Link:         link.String(),
		GUID:         rssGUID{IsPermaLink: "false", Value: strconv.Itoa(ep.ID)},
		Description:  ep.Description,
		Duration:     ep.Duration,
		Episode:      ep.EpisodeNumber,
		ITunesAuthor: author,
		Enclosure: rssEnclosure{
			URL:  resolve(base, ep.AudioURL),
			Type: mimeTypeForFilename(ep.AudioURL),
		},
	}

	if !ep.PublishDate.IsZero() {
		item.PubDate = ep.PublishDate.UTC().Format(time.RFC1123Z)
	}
	if ep.Season != nil {
		item.Season = *ep.Season
	}

	if lookup != nil {
		if file, ok := lookup(ep.AudioURL); ok {
			item.Enclosure.Length = file.FilesizeBytes
			if item.Duration == "" && file.DurationSeconds != nil {
				item.Duration = metadata.FormatDuration(*file.DurationSeconds)
			}
			if item.ITunesAuthor == "" && file.Artist != nil {
				item.ITunesAuthor = *file.Artist
			}
		}
	}

	return item
}

func resolve(base *url.URL, ref string) string {
	parsed, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(parsed).String()
}

func mimeTypeForFilename(name string) string {
	ext := strings.ToLower(path.Ext(name))
	if ext != "" {
		if fallback, ok := audioMIMETypes[ext]; ok {
			return fallback
		}
		if value := mime.TypeByExtension(ext); value != "" {
			return value
		}
	}
	return "application/octet-stream"
}

var audioMIMETypes = map[string]string{
	".mp3":  "audio/mpeg",
	".m4a":  "audio/mp4",
	".aac":  "audio/aac",
	".wav":  "audio/wav",
	".flac": "audio/flac",
	".ogg":  "audio/ogg",
}

type rssFeed struct {
	XMLName  xml.Name   `xml:"rss"`
	Version  string     `xml:"version,attr"`
	AtomNS   string     `xml:"xmlns:atom,attr"`
	ITunesNS string     `xml:"xmlns:itunes,attr"`
	Channel  rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string      `xml:"title"`
	Link          string      `xml:"link"`
	Description   string      `xml:"description"`
	Language      string      `xml:"language,omitempty"`
	LastBuildDate string      `xml:"lastBuildDate"`
	Generator     string      `xml:"generator"`
	AtomLink      rssAtomLink `xml:"atom:link"`
	ITunesAuthor  string      `xml:"itunes:author,omitempty"`
	Items         []rssItem   `xml:"item"`
}

type rssAtomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type rssItem struct {
	Title        string       `xml:"title"`
	Link         string       `xml:"link"`
	GUID         rssGUID      `xml:"guid"`
	PubDate      string       `xml:"pubDate,omitempty"`
	Description  string       `xml:"description"`
	Enclosure    rssEnclosure `xml:"enclosure"`
	Duration     string       `xml:"itunes:duration,omitempty"`
	Episode      int          `xml:"itunes:episode,omitempty"`
	Season       int          `xml:"itunes:season,omitempty"`
	ITunesAuthor string       `xml:"itunes:author,omitempty"`
}

type rssGUID struct {
	IsPermaLink string `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

type rssEnclosure struct {
	URL    string `xml:"url,attr"`
	Length int64  `xml:"length,attr"`
	Type   string `xml:"type,attr"`
}
