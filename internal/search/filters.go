package search

import (
	"strings"

	"github.com/lumiere/lumiere/internal/catalog"
)

// FilterByGenres keeps items carrying at least one of the given genres
// (case-insensitive substring match). An empty filter keeps everything.
func FilterByGenres(items []catalog.ContentItem, genres []string) []catalog.ContentItem {
	if len(genres) == 0 {
		return items
	}

	filtered := make([]catalog.ContentItem, 0, len(items))
	for _, item := range items {
		if hasAnyGenre(item, genres) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func hasAnyGenre(item catalog.ContentItem, genres []string) bool {
	for _, genre := range item.Genres {
		g := NormalizeText(genre)
		for _, filter := range genres {
			if strings.Contains(g, NormalizeText(filter)) {
				return true
			}
		}
	}
	return false
}

// FilterByType keeps items of the given content type. An empty type keeps
// everything.
func FilterByType(items []catalog.ContentItem, contentType catalog.ContentType) []catalog.ContentItem {
	if contentType == "" {
		return items
	}

	filtered := make([]catalog.ContentItem, 0, len(items))
	for _, item := range items {
		if item.Type == contentType {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// FilterByYear keeps items released within [minYear, maxYear]. Items
// without a year always pass.
func FilterByYear(items []catalog.ContentItem, minYear, maxYear int) []catalog.ContentItem {
	filtered := make([]catalog.ContentItem, 0, len(items))
	for _, item := range items {
		if item.Year == 0 || (item.Year >= minYear && item.Year <= maxYear) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// FilterByRating keeps items rated at or above minRating.
func FilterByRating(items []catalog.ContentItem, minRating float64) []catalog.ContentItem {
	filtered := make([]catalog.ContentItem, 0, len(items))
	for _, item := range items {
		if item.Rating >= minRating {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
