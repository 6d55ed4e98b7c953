package blocks

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handlers exposes page configurations over HTTP.
type Handlers struct {
	service *Service
}

// NewHandlers creates HTTP handlers for the page configuration service.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes registers page configuration endpoints on the given group.
func (h *Handlers) RegisterRoutes(g *echo.Group) {
	g.GET("/pages/:id", h.getPage)
	g.PUT("/pages/:id", h.savePage)
	g.DELETE("/pages/:id", h.deletePage)
}

// getPage serves the stored configuration, falling back to the built-in
// page when nothing is stored.
func (h *Handlers) getPage(c echo.Context) error {
	pageID := c.Param("id")

	config := h.service.Load(pageID)
	if config == nil {
		config = DefaultPage(pageID)
	}
	if config == nil {
		return echo.NewHTTPError(http.StatusNotFound, "page not found")
	}
	return c.JSON(http.StatusOK, config)
}

func (h *Handlers) savePage(c echo.Context) error {
	var config PageConfig
	if err := c.Bind(&config); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid page config payload")
	}
	config.ID = c.Param("id")

	if err := h.service.Save(&config); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, config)
}

func (h *Handlers) deletePage(c echo.Context) error {
	if err := h.service.Delete(c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete page config")
	}
	return c.NoContent(http.StatusNoContent)
}
