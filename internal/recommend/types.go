// Package recommend scores unseen catalog items against accumulated
// user-behavior signals and tracks those signals in the key-value store.
package recommend

import "github.com/lumiere/lumiere/internal/catalog"

// UserBehavior is the persisted per-profile accumulation of viewing,
// favoriting and rating actions. Created lazily with empty defaults;
// persists indefinitely.
type UserBehavior struct {
	ViewedItems    []string           `json:"viewedItems"`
	FavoriteGenres []string           `json:"favoriteGenres"`
	FavoritedItems []string           `json:"favoritedItems"`
	LastViewed     string             `json:"lastViewed"`
	ViewedAt       map[string]int64   `json:"viewedAt"`
	RatingGiven    map[string]float64 `json:"ratingGiven"`
}

// DefaultBehavior returns an empty behavior record.
func DefaultBehavior() UserBehavior {
	return UserBehavior{
		ViewedItems:    []string{},
		FavoriteGenres: []string{},
		FavoritedItems: []string{},
		ViewedAt:       map[string]int64{},
		RatingGiven:    map[string]float64{},
	}
}

// Recommendation is a single scored suggestion. Derived per call, never
// persisted.
type Recommendation struct {
	Item   catalog.ContentItem `json:"item"`
	Score  float64             `json:"score"`
	Reason string              `json:"reason"`
}

// Statistics is a read-only summary of a behavior record.
type Statistics struct {
	TotalViewed    int      `json:"totalViewed"`
	FavoriteGenres []string `json:"favoriteGenres"`
	FavoritedCount int      `json:"favoritedCount"`
	AvgRating      float64  `json:"avgRating"`
}

// EngineConfig holds configurable weights for the recommendation and
// similarity algorithms.
type EngineConfig struct {
	// Recommendation scoring
	GenreMatchPoints  float64 // default: 100, per matching favorite genre
	RatingFactor      float64 // default: 30, score += rating * factor
	RecencyPoints     float64 // default: 50, for items from the last year
	PopularPoints     float64 // default: 50, for items rated >= PopularThreshold
	PopularThreshold  float64 // default: 8
	ExplorationPoints float64 // default: 20, for any user with viewing history

	// Related-content similarity
	RelatedGenrePoints    float64 // default: 50, per overlapping genre
	YearClosePoints       float64 // default: 30, |Δyear| <= 2
	YearNearPoints        float64 // default: 15, |Δyear| <= 5
	RatingProximityPoints float64 // default: 20, |Δrating| < 1
	SameTypePoints        float64 // default: 10

	// Tracking limits
	MaxViewedItems int     // default: 100
	MinRating      float64 // default: 0
	MaxRating      float64 // default: 10
}

// DefaultConfig returns the default recommendation weights.
func DefaultConfig() EngineConfig {
	return EngineConfig{
		GenreMatchPoints:  100,
		RatingFactor:      30,
		RecencyPoints:     50,
		PopularPoints:     50,
		PopularThreshold:  8,
		ExplorationPoints: 20,

		RelatedGenrePoints:    50,
		YearClosePoints:       30,
		YearNearPoints:        15,
		RatingProximityPoints: 20,
		SameTypePoints:        10,

		MaxViewedItems: 100,
		MinRating:      0,
		MaxRating:      10,
	}
}
