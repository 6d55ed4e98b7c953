package search

import (
	"sort"
	"strings"

	"github.com/lumiere/lumiere/internal/catalog"
)

// Ranker scores catalog items against free-text queries.
type Ranker struct {
	config RankerConfig
}

// NewRanker creates a ranker with the given config.
func NewRanker(config RankerConfig) *Ranker {
	return &Ranker{config: config}
}

// NewDefaultRanker creates a ranker with default weights.
func NewDefaultRanker() *Ranker {
	return NewRanker(DefaultConfig())
}

// NormalizeText lowercases text, collapses whitespace runs to single spaces
// and trims. It is the universal key for all string comparison in this
// package.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// CalculateRelevance computes the additive relevance score of item against
// an already-normalized query. Stronger textual matches dominate, rating
// acts as a tie-breaker, and preference overlap nudges the result. The
// old-year penalty multiplies last, after all additive terms.
func (r *Ranker) CalculateRelevance(item catalog.ContentItem, normalizedQuery string, prefs *UserPreferences) float64 {
	var score float64

	title := NormalizeText(item.Title)

	if title == normalizedQuery {
		score += r.config.ExactTitlePoints
	}
	if strings.HasPrefix(title, normalizedQuery) {
		score += r.config.TitlePrefixPoints
	}
	if strings.Contains(title, normalizedQuery) {
		score += r.config.TitleContainsPoints
	}

	for _, genre := range item.Genres {
		if genreMatches(genre, normalizedQuery) {
			score += r.config.GenreMatchPoints
		}
	}

	// The description side is matched raw, not normalized.
	if item.Description != "" && strings.Contains(item.Description, normalizedQuery) {
		score += r.config.DescriptionPoints
	}

	score += item.Rating * r.config.RatingFactor

	if prefs != nil {
		for _, genre := range item.Genres {
			for _, fav := range prefs.FavoriteGenres {
				if strings.Contains(NormalizeText(genre), NormalizeText(fav)) {
					score += r.config.FavoriteGenrePoints
					break
				}
			}
		}
	}

	if item.Year != 0 && item.Year < r.config.OldYearCutoff {
		score *= r.config.OldYearFactor
	}

	return score
}

// Search ranks items against query and returns at most limit results,
// highest relevance first. Items scoring zero are excluded. A blank query
// is the browse fallback: the catalog sorted by rating descending.
func (r *Ranker) Search(items []catalog.ContentItem, query string, prefs *UserPreferences, limit int) []Result {
	normalizedQuery := NormalizeText(query)

	if normalizedQuery == "" {
		return browseFallback(items, limit)
	}

	results := make([]Result, 0, len(items))
	for _, item := range items {
		relevance := r.CalculateRelevance(item, normalizedQuery, prefs)
		if relevance <= 0 {
			continue
		}

		results = append(results, Result{
			Item:      item,
			Relevance: relevance,
			MatchType: classifyMatch(item, normalizedQuery),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// browseFallback returns the top-rated items when no query is given.
func browseFallback(items []catalog.ContentItem, limit int) []Result {
	sorted := make([]catalog.ContentItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	results := make([]Result, 0, len(sorted))
	for _, item := range sorted {
		results = append(results, Result{
			Item:      item,
			Relevance: item.Rating,
			MatchType: MatchTypeTitle,
		})
	}
	return results
}

// classifyMatch picks the match type by priority: title, then genre, then
// description. Title is the default when no field matched despite a
// nonzero score (e.g. rating-only contribution).
func classifyMatch(item catalog.ContentItem, normalizedQuery string) MatchType {
	if strings.Contains(NormalizeText(item.Title), normalizedQuery) {
		return MatchTypeTitle
	}
	for _, genre := range item.Genres {
		if genreMatches(genre, normalizedQuery) {
			return MatchTypeGenre
		}
	}
	if item.Description != "" && strings.Contains(item.Description, normalizedQuery) {
		return MatchTypeDescription
	}
	return MatchTypeTitle
}

// genreMatches reports whether genre and query match as case-insensitive
// substrings in either direction.
func genreMatches(genre, normalizedQuery string) bool {
	g := NormalizeText(genre)
	return strings.Contains(g, normalizedQuery) || strings.Contains(normalizedQuery, g)
}

// Autocomplete collects every title and genre whose normalized form starts
// with the normalized query, deduplicated in encounter order, up to limit.
// A blank query yields no suggestions.
func (r *Ranker) Autocomplete(items []catalog.ContentItem, query string, limit int) []string {
	normalizedQuery := NormalizeText(query)
	if normalizedQuery == "" {
		return []string{}
	}

	seen := make(map[string]struct{})
	suggestions := make([]string, 0, limit)

	add := func(s string) {
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		suggestions = append(suggestions, s)
	}

	for _, item := range items {
		if strings.HasPrefix(NormalizeText(item.Title), normalizedQuery) {
			add(item.Title)
		}
		for _, genre := range item.Genres {
			if strings.HasPrefix(NormalizeText(genre), normalizedQuery) {
				add(genre)
			}
		}
	}

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

// PopularSearches tallies genre frequency across the catalog and returns
// the top limit genre names, most frequent first. Ties keep encounter
// order.
func (r *Ranker) PopularSearches(items []catalog.ContentItem, limit int) []string {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, item := range items {
		for _, genre := range item.Genres {
			if _, ok := counts[genre]; !ok {
				order = append(order, genre)
			}
			counts[genre]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}
	return order
}
