package catalog

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handlers provides HTTP handlers for catalog browsing.
type Handlers struct {
	service *Service
}

// NewHandlers creates a new catalog handlers instance.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes registers catalog routes on an Echo group.
func (h *Handlers) RegisterRoutes(g *echo.Group) {
	g.GET("/catalog", h.List)
	g.GET("/catalog/:id", h.Get)
	g.GET("/categories", h.Categories)
	g.GET("/collections", h.Collections)
	g.GET("/sport", h.SportEvents)
	g.GET("/channels", h.TVChannels)
}

// List returns a catalog shelf.
// GET /api/v1/catalog?shelf=premiers|popular|kids|free
func (h *Handlers) List(c echo.Context) error {
	var items []ContentItem
	switch c.QueryParam("shelf") {
	case "premiers":
		items = h.service.Premiers()
	case "popular":
		items = h.service.Popular()
	case "kids":
		items = h.service.Kids()
	case "free":
		items = h.service.Free()
	default:
		items = h.service.All()
	}
	return c.JSON(http.StatusOK, items)
}

// Get returns a single catalog item.
// GET /api/v1/catalog/:id
func (h *Handlers) Get(c echo.Context) error {
	item := h.service.GetByID(c.Param("id"))
	if item == nil {
		return echo.NewHTTPError(http.StatusNotFound, "content not found")
	}
	return c.JSON(http.StatusOK, item)
}

// Categories returns the top-level categories.
// GET /api/v1/categories
func (h *Handlers) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Categories())
}

// Collections returns the curated collections.
// GET /api/v1/collections
func (h *Handlers) Collections(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Collections())
}

// SportEvents returns sport broadcasts.
// GET /api/v1/sport
func (h *Handlers) SportEvents(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.SportEvents())
}

// TVChannels returns the TV channel list.
// GET /api/v1/channels
func (h *Handlers) TVChannels(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.TVChannels())
}
