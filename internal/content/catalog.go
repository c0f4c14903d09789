// Package content holds the site's compiled-in episodes, FAQ entries and
// about page, and derives the read-only views the pages are built from.
package content

import (
	"fmt"
	"sort"
	"time"

	"modern-podcast/internal/models"
)

// Catalog is the immutable content snapshot built once at start-up.
type Catalog struct {
	episodes []models.Episode
	faq      []models.FAQItem
	about    models.AboutContent
}

// NewCatalog validates the supplied content and sorts a copy of the episodes
// newest first. The input slices are not modified.
func NewCatalog(episodes []models.Episode, faq []models.FAQItem, about models.AboutContent) (*Catalog, error) {
	seenEpisodes := make(map[int]struct{}, len(episodes))
	for _, ep := range episodes {
		if _, ok := seenEpisodes[ep.ID]; ok {
			return nil, fmt.Errorf("duplicate episode id %d", ep.ID)
		}
		seenEpisodes[ep.ID] = struct{}{}
	}

	seenFAQ := make(map[int]struct{}, len(faq))
	for _, item := range faq {
		if _, ok := seenFAQ[item.ID]; ok {
			return nil, fmt.Errorf("duplicate faq id %d", item.ID)
		}
		seenFAQ[item.ID] = struct{}{}
	}

	sorted := make([]models.Episode, len(episodes))
	copy(sorted, episodes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishDate.After(sorted[j].PublishDate)
	})

	items := make([]models.FAQItem, len(faq))
	copy(items, faq)

	return &Catalog{
		episodes: sorted,
		faq:      items,
		about:    cloneAbout(about),
	}, nil
}

// Default returns the catalog built from the compiled-in content.
func Default() *Catalog {
	c, err := NewCatalog(episodes, faqItems, about)
	if err != nil {
		panic(fmt.Sprintf("content: built-in catalog is invalid: %v", err))
	}
	return c
}

// Episodes returns the episodes, newest first.
func (c *Catalog) Episodes() []models.Episode {
	result := make([]models.Episode, len(c.episodes))
	copy(result, c.episodes)
	return result
}

// Featured returns the most recent episode. The boolean is false when the
// catalog has no episodes.
func (c *Catalog) Featured() (models.Episode, bool) {
	if len(c.episodes) == 0 {
		return models.Episode{}, false
	}
	return c.episodes[0], true
}

// EpisodeByID looks up a single episode.
func (c *Catalog) EpisodeByID(id int) (models.Episode, bool) {
	for _, ep := range c.episodes {
		if ep.ID == id {
			return ep, true
		}
	}
	return models.Episode{}, false
}

// FAQ returns the FAQ items in their authored order.
func (c *Catalog) FAQ() []models.FAQItem {
	result := make([]models.FAQItem, len(c.faq))
	copy(result, c.faq)
	return result
}

// About returns the about page content.
func (c *Catalog) About() models.AboutContent {
	return cloneAbout(c.about)
}

// LastPublished returns the publish date of the featured episode, or the
// zero time for an empty catalog.
func (c *Catalog) LastPublished() time.Time {
	if ep, ok := c.Featured(); ok {
		return ep.PublishDate
	}
	return time.Time{}
}

func cloneAbout(a models.AboutContent) models.AboutContent {
	hosts := make([]models.Host, len(a.Hosts))
	copy(hosts, a.Hosts)
	a.Hosts = hosts
	return a
}
