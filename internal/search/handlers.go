package search

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lumiere/lumiere/internal/catalog"
)

const (
	defaultSearchLimit  = 10
	defaultSuggestLimit = 8
	defaultPopularLimit = 5
	maxSearchLimit      = 100
)

// PreferenceSource supplies the caller's favorite genres for personalized
// ranking. Optional; nil means no personalization.
type PreferenceSource interface {
	FavoriteGenres() []string
}

// Handlers provides HTTP handlers for search operations.
type Handlers struct {
	ranker  *Ranker
	catalog *catalog.Service
	prefs   PreferenceSource
}

// NewHandlers creates a new search handlers instance.
func NewHandlers(ranker *Ranker, catalogService *catalog.Service) *Handlers {
	return &Handlers{ranker: ranker, catalog: catalogService}
}

// SetPreferenceSource wires a favorite-genre source for personalized
// ranking.
func (h *Handlers) SetPreferenceSource(prefs PreferenceSource) {
	h.prefs = prefs
}

// RegisterRoutes registers search routes on an Echo group.
func (h *Handlers) RegisterRoutes(g *echo.Group) {
	g.GET("/search", h.Search)
	g.GET("/search/suggest", h.Suggest)
	g.GET("/search/popular", h.Popular)
}

// Search ranks catalog items against a free-text query.
// GET /api/v1/search?q=dune&limit=10&type=movie&genres=Drama,Comedy&minYear=2000&maxYear=2024&minRating=7
func (h *Handlers) Search(c echo.Context) error {
	items := h.catalog.All()

	if t := c.QueryParam("type"); t != "" {
		items = FilterByType(items, catalog.ContentType(t))
	}
	if g := c.QueryParam("genres"); g != "" {
		items = FilterByGenres(items, strings.Split(g, ","))
	}
	minYear := intParam(c, "minYear", 0)
	maxYear := intParam(c, "maxYear", 0)
	if minYear > 0 || maxYear > 0 {
		if maxYear == 0 {
			maxYear = 1<<31 - 1
		}
		items = FilterByYear(items, minYear, maxYear)
	}
	if mr := c.QueryParam("minRating"); mr != "" {
		if v, err := strconv.ParseFloat(mr, 64); err == nil {
			items = FilterByRating(items, v)
		}
	}

	var prefs *UserPreferences
	if h.prefs != nil {
		if genres := h.prefs.FavoriteGenres(); len(genres) > 0 {
			prefs = &UserPreferences{FavoriteGenres: genres}
		}
	}

	limit := intParam(c, "limit", defaultSearchLimit)
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	results := h.ranker.Search(items, c.QueryParam("q"), prefs, limit)
	return c.JSON(http.StatusOK, results)
}

// Suggest returns autocomplete suggestions for a query prefix.
// GET /api/v1/search/suggest?q=dr&limit=8
func (h *Handlers) Suggest(c echo.Context) error {
	limit := intParam(c, "limit", defaultSuggestLimit)
	suggestions := h.ranker.Autocomplete(h.catalog.All(), c.QueryParam("q"), limit)
	return c.JSON(http.StatusOK, suggestions)
}

// Popular returns the most frequent catalog genres as search terms.
// GET /api/v1/search/popular?limit=5
func (h *Handlers) Popular(c echo.Context) error {
	limit := intParam(c, "limit", defaultPopularLimit)
	return c.JSON(http.StatusOK, h.ranker.PopularSearches(h.catalog.All(), limit))
}

func intParam(c echo.Context, name string, fallback int) int {
	if raw := c.QueryParam(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}
