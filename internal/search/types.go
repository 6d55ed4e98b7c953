// Package search provides text-search relevance ranking over the content
// catalog, plus autocomplete suggestions and popular-search derivation.
package search

import "github.com/lumiere/lumiere/internal/catalog"

// MatchType classifies which field of an item matched the query.
type MatchType string

const (
	MatchTypeTitle       MatchType = "title"
	MatchTypeGenre       MatchType = "genre"
	MatchTypeDescription MatchType = "description"
)

// Result is a single ranked search hit. Results are derived per query and
// never persisted.
type Result struct {
	Item      catalog.ContentItem `json:"item"`
	Relevance float64             `json:"relevance"`
	MatchType MatchType           `json:"matchType"`
}

// UserPreferences carries optional caller-supplied personalization signals
// for ranking.
type UserPreferences struct {
	FavoriteGenres []string
}

// RankerConfig holds configurable weights for the relevance algorithm.
type RankerConfig struct {
	// Title matching. The three bonuses stack: an exact match also earns
	// the prefix and contains bonuses.
	ExactTitlePoints    float64 // default: 1000
	TitlePrefixPoints   float64 // default: 500
	TitleContainsPoints float64 // default: 300

	// Field matching
	GenreMatchPoints  float64 // default: 200, per matching genre
	DescriptionPoints float64 // default: 100

	// Secondary signals
	RatingFactor        float64 // default: 10, score += rating * factor
	FavoriteGenrePoints float64 // default: 50, per genre overlapping preferences

	// Age penalty: items released before OldYearCutoff have their whole
	// score multiplied by OldYearFactor, after all additive terms.
	OldYearCutoff int     // default: 2020
	OldYearFactor float64 // default: 0.95
}

// DefaultConfig returns the default relevance weights.
func DefaultConfig() RankerConfig {
	return RankerConfig{
		ExactTitlePoints:    1000,
		TitlePrefixPoints:   500,
		TitleContainsPoints: 300,

		GenreMatchPoints:  200,
		DescriptionPoints: 100,

		RatingFactor:        10,
		FavoriteGenrePoints: 50,

		OldYearCutoff: 2020,
		OldYearFactor: 0.95,
	}
}
