// Package search implements the free-text episode filter used by the
// episodes page and the episodes API.
package search

import (
	"fmt"
	"strings"

	"modern-podcast/internal/models"
)

// Episodes returns the episodes whose title or description contains query,
// compared case-insensitively. The relative order of the input is kept and
// an empty query returns every episode. The query is matched literally:
// surrounding whitespace is significant.
func Episodes(episodes []models.Episode, query string) []models.Episode {
	if query == "" {
		result := make([]models.Episode, len(episodes))
		copy(result, episodes)
		return result
	}

	needle := strings.ToLower(query)
	result := make([]models.Episode, 0, len(episodes))
	for _, ep := range episodes {
		if matches(ep, needle) {
			result = append(result, ep)
		}
	}
	return result
}

func matches(ep models.Episode, needle string) bool {
	return strings.Contains(strings.ToLower(ep.Title), needle) ||
		strings.Contains(strings.ToLower(ep.Description), needle)
}

// ResultSummary describes the number of matches for display under the
// search box.
func ResultSummary(n int) string {
	if n == 1 {
		return "Found 1 episode"
	}
	return fmt.Sprintf("Found %d episodes", n)
}
