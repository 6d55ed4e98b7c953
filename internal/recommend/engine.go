package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/lumiere/lumiere/internal/catalog"
)

// Engine computes personalized recommendations and related-content
// similarity. Pure computation; persistence lives in Service.
type Engine struct {
	config EngineConfig
}

// NewEngine creates an engine with the given config.
func NewEngine(config EngineConfig) *Engine {
	return &Engine{config: config}
}

// NewDefaultEngine creates an engine with default weights.
func NewDefaultEngine() *Engine {
	return NewEngine(DefaultConfig())
}

// Recommendations scores every catalog item the user has not yet viewed or
// favorited and returns at most limit suggestions, highest score first.
// Seen content is excluded outright, never re-ranked.
func (e *Engine) Recommendations(items []catalog.ContentItem, behavior UserBehavior, limit int) []Recommendation {
	seen := make(map[string]struct{}, len(behavior.ViewedItems)+len(behavior.FavoritedItems))
	for _, id := range behavior.ViewedItems {
		seen[id] = struct{}{}
	}
	for _, id := range behavior.FavoritedItems {
		seen[id] = struct{}{}
	}

	currentYear := time.Now().Year()
	recommendations := make([]Recommendation, 0, len(items))

	for _, item := range items {
		if _, ok := seen[item.ID]; ok {
			continue
		}

		var score float64
		var reasons []string

		if len(behavior.FavoriteGenres) > 0 {
			matching := countMatchingGenres(item.Genres, behavior.FavoriteGenres)
			if matching > 0 {
				score += float64(matching) * e.config.GenreMatchPoints
				if matching == 1 {
					reasons = append(reasons, "Matches a favorite genre")
				} else {
					reasons = append(reasons, fmt.Sprintf("Matches %d favorite genres", matching))
				}
			}
		}

		score += item.Rating * e.config.RatingFactor

		if item.Year != 0 && item.Year >= currentYear-1 {
			score += e.config.RecencyPoints
			reasons = append(reasons, "New release")
		}

		if item.Rating >= e.config.PopularThreshold {
			score += e.config.PopularPoints
			reasons = append(reasons, "Popular")
		}

		// Flat exploration bonus for anyone with viewing history,
		// regardless of similarity to what they watched.
		if len(behavior.ViewedItems) > 0 {
			score += e.config.ExplorationPoints
		}

		if score > 0 {
			reason := "Recommended"
			if len(reasons) > 0 {
				reason = strings.Join(reasons, ", ")
			}
			recommendations = append(recommendations, Recommendation{
				Item:   item,
				Score:  score,
				Reason: reason,
			})
		}
	}

	sort.Slice(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	if len(recommendations) > limit {
		recommendations = recommendations[:limit]
	}
	return recommendations
}

// countMatchingGenres counts item genres overlapping the favorites as
// case-insensitive substrings in either direction.
func countMatchingGenres(genres, favorites []string) int {
	count := 0
	for _, genre := range genres {
		g := strings.ToLower(genre)
		for _, fav := range favorites {
			f := strings.ToLower(fav)
			if strings.Contains(g, f) || strings.Contains(f, g) {
				count++
				break
			}
		}
	}
	return count
}

// RelatedContent scores every catalog item (except the reference itself)
// for similarity to reference and returns at most limit items, most
// similar first. Without a reference item the first limit catalog items
// pass through unranked.
func (e *Engine) RelatedContent(items []catalog.ContentItem, reference *catalog.ContentItem, limit int) []catalog.ContentItem {
	if reference == nil {
		if len(items) > limit {
			return items[:limit]
		}
		return items
	}

	type scored struct {
		item       catalog.ContentItem
		similarity float64
	}

	related := make([]scored, 0, len(items))

	for _, item := range items {
		if item.ID == reference.ID {
			continue
		}

		var similarity float64

		similarity += float64(countSharedGenres(reference.Genres, item.Genres)) * e.config.RelatedGenrePoints

		if reference.Year != 0 && item.Year != 0 {
			yearDiff := reference.Year - item.Year
			if yearDiff < 0 {
				yearDiff = -yearDiff
			}
			switch {
			case yearDiff <= 2:
				similarity += e.config.YearClosePoints
			case yearDiff <= 5:
				similarity += e.config.YearNearPoints
			}
		}

		if math.Abs(reference.Rating-item.Rating) < 1 {
			similarity += e.config.RatingProximityPoints
		}

		if reference.Type == item.Type {
			similarity += e.config.SameTypePoints
		}

		if similarity > 0 {
			related = append(related, scored{item: item, similarity: similarity})
		}
	}

	sort.Slice(related, func(i, j int) bool {
		return related[i].similarity > related[j].similarity
	})

	if len(related) > limit {
		related = related[:limit]
	}

	result := make([]catalog.ContentItem, 0, len(related))
	for _, r := range related {
		result = append(result, r.item)
	}
	return result
}

// countSharedGenres counts exact genre string overlap between two items.
func countSharedGenres(a, b []string) int {
	set := make(map[string]struct{}, len(b))
	for _, genre := range b {
		set[genre] = struct{}{}
	}

	count := 0
	for _, genre := range a {
		if _, ok := set[genre]; ok {
			count++
		}
	}
	return count
}

// Statistics derives a read-only summary of a behavior record. The mean
// rating is rounded to one decimal; no ratings means zero.
func (e *Engine) Statistics(behavior UserBehavior) Statistics {
	var avg float64
	if len(behavior.RatingGiven) > 0 {
		var sum float64
		for _, rating := range behavior.RatingGiven {
			sum += rating
		}
		avg = math.Round(sum/float64(len(behavior.RatingGiven))*10) / 10
	}

	return Statistics{
		TotalViewed:    len(behavior.ViewedItems),
		FavoriteGenres: behavior.FavoriteGenres,
		FavoritedCount: len(behavior.FavoritedItems),
		AvgRating:      avg,
	}
}
