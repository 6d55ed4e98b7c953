package recommend

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lumiere/lumiere/internal/catalog"
)

const (
	defaultRecommendLimit = 10
	defaultRelatedLimit   = 8
)

// Handlers provides HTTP handlers for recommendations and behavior
// tracking.
type Handlers struct {
	service *Service
	catalog *catalog.Service
}

// NewHandlers creates a new recommend handlers instance.
func NewHandlers(service *Service, catalogService *catalog.Service) *Handlers {
	return &Handlers{service: service, catalog: catalogService}
}

// RegisterRoutes registers recommendation and profile routes on an Echo
// group.
func (h *Handlers) RegisterRoutes(g *echo.Group) {
	g.GET("/recommendations", h.Recommendations)
	g.GET("/recommendations/related/:id", h.Related)

	g.GET("/profile/stats", h.Stats)
	g.POST("/profile/viewed/:id", h.TrackViewed)
	g.POST("/profile/genres/:genre", h.AddGenre)
	g.POST("/profile/favorites/:id", h.AddFavorite)
	g.DELETE("/profile/favorites/:id", h.RemoveFavorite)
	g.POST("/profile/ratings/:id", h.Rate)
}

// Recommendations returns personalized suggestions. When nothing
// qualifies, it falls back to the catalog's top-rated items.
// GET /api/v1/recommendations?limit=10
func (h *Handlers) Recommendations(c echo.Context) error {
	limit := limitParam(c, defaultRecommendLimit)
	items := h.catalog.All()

	recommendations := h.service.Recommendations(items, limit)
	if len(recommendations) == 0 {
		recommendations = topRatedFallback(items, limit)
	}

	return c.JSON(http.StatusOK, recommendations)
}

// Related returns items similar to the given catalog item.
// GET /api/v1/recommendations/related/:id
func (h *Handlers) Related(c echo.Context) error {
	reference := h.catalog.GetByID(c.Param("id"))
	if reference == nil {
		return echo.NewHTTPError(http.StatusNotFound, "content not found")
	}

	limit := limitParam(c, defaultRelatedLimit)
	return c.JSON(http.StatusOK, h.service.RelatedContent(h.catalog.All(), reference, limit))
}

// Stats returns the user's behavior summary.
// GET /api/v1/profile/stats
func (h *Handlers) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Statistics())
}

// TrackViewed records a content view.
// POST /api/v1/profile/viewed/:id
func (h *Handlers) TrackViewed(c echo.Context) error {
	if err := h.service.TrackViewedItem(c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update profile")
	}
	return c.NoContent(http.StatusNoContent)
}

// AddGenre adds a favorite genre.
// POST /api/v1/profile/genres/:genre
func (h *Handlers) AddGenre(c echo.Context) error {
	if err := h.service.AddFavoriteGenre(c.Param("genre")); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update profile")
	}
	return c.NoContent(http.StatusNoContent)
}

// AddFavorite adds an item to the favorites.
// POST /api/v1/profile/favorites/:id
func (h *Handlers) AddFavorite(c echo.Context) error {
	if err := h.service.AddFavoritedItem(c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update profile")
	}
	return c.NoContent(http.StatusNoContent)
}

// RemoveFavorite removes an item from the favorites.
// DELETE /api/v1/profile/favorites/:id
func (h *Handlers) RemoveFavorite(c echo.Context) error {
	if err := h.service.RemoveFavoritedItem(c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update profile")
	}
	return c.NoContent(http.StatusNoContent)
}

// Rate stores an explicit rating for an item.
// POST /api/v1/profile/ratings/:id?value=7.5
func (h *Handlers) Rate(c echo.Context) error {
	rating, err := strconv.ParseFloat(c.QueryParam("value"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid rating value")
	}

	if err := h.service.RateItem(c.Param("id"), rating); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update profile")
	}
	return c.NoContent(http.StatusNoContent)
}

// topRatedFallback returns the catalog's best-rated items as unscored
// recommendations.
func topRatedFallback(items []catalog.ContentItem, limit int) []Recommendation {
	ranked := make([]catalog.ContentItem, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rating > ranked[j].Rating
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	fallback := make([]Recommendation, 0, len(ranked))
	for _, item := range ranked {
		fallback = append(fallback, Recommendation{
			Item:   item,
			Score:  item.Rating,
			Reason: "Top rated",
		})
	}
	return fallback
}

func limitParam(c echo.Context, fallback int) int {
	if raw := c.QueryParam("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}
