package models

import "time"

// Episode is a published show episode as listed on the website.
type Episode struct {
	ID            int       `json:"id"`
	EpisodeNumber int       `json:"episode_number"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	PublishDate   time.Time `json:"publish_date"`
	Duration      string    `json:"duration"`
	AudioURL      string    `json:"audio_url"`
	CoverArt      string    `json:"cover_art"`
	Season        *int      `json:"season,omitempty"`
}

// AudioFile represents the metadata measured from a static audio asset.
type AudioFile struct {
	AssetPath       string    `json:"asset_path"`
	Filename        string    `json:"filename"`
	Title           string    `json:"title"`
	Artist          *string   `json:"artist,omitempty"`
	Album           *string   `json:"album,omitempty"`
	DurationSeconds *float64  `json:"duration_seconds,omitempty"`
	BitrateKbps     *int      `json:"bitrate_kbps,omitempty"`
	FilesizeBytes   int64     `json:"filesize_bytes"`
	ModifiedAt      time.Time `json:"modified_at"`
}
