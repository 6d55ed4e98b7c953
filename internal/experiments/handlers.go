package experiments

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handlers exposes experiment management and variant selection over HTTP.
type Handlers struct {
	service *Service
}

// NewHandlers creates HTTP handlers for the experiments service.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes registers experiment endpoints on the given group.
func (h *Handlers) RegisterRoutes(g *echo.Group) {
	g.GET("/experiments", h.listTests)
	g.POST("/experiments", h.createTest)
	g.PUT("/experiments/:id", h.updateTest)
	g.DELETE("/experiments/:id", h.deleteTest)
	g.GET("/experiments/:id/variant", h.selectVariant)
	g.POST("/experiments/:id/clicks/:variant", h.recordClick)
	g.POST("/experiments/:id/conversions/:variant", h.recordConversion)
	g.GET("/experiments/:id/stats", h.testStats)
	g.GET("/experiments/:id/best", h.bestVariant)
}

func (h *Handlers) listTests(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.All())
}

func (h *Handlers) createTest(c echo.Context) error {
	var test Test
	if err := c.Bind(&test); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid experiment payload")
	}
	if test.ID == "" || len(test.Variants) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "experiment requires an id and at least one variant")
	}
	if err := h.service.Create(test); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to store experiment")
	}
	return c.JSON(http.StatusCreated, test)
}

func (h *Handlers) updateTest(c echo.Context) error {
	var test Test
	if err := c.Bind(&test); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid experiment payload")
	}
	test.ID = c.Param("id")
	if err := h.service.Update(test); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to store experiment")
	}
	return c.JSON(http.StatusOK, test)
}

func (h *Handlers) deleteTest(c echo.Context) error {
	if err := h.service.Delete(c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete experiment")
	}
	return c.NoContent(http.StatusNoContent)
}

// selectVariant draws a variant for the caller and records the impression.
func (h *Handlers) selectVariant(c echo.Context) error {
	test := h.service.Active(c.Param("id"))
	if test == nil {
		return echo.NewHTTPError(http.StatusNotFound, "experiment not found or inactive")
	}

	variant := h.service.SelectVariant(test)
	if variant == nil {
		return echo.NewHTTPError(http.StatusNotFound, "experiment has no variants")
	}

	if err := h.service.RecordResult(test.ID, variant.ID, c.Request().UserAgent()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to record impression")
	}

	return c.JSON(http.StatusOK, variant)
}

func (h *Handlers) recordClick(c echo.Context) error {
	if err := h.service.RecordClick(c.Param("id"), c.Param("variant")); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to record click")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handlers) recordConversion(c echo.Context) error {
	if err := h.service.RecordConversion(c.Param("id"), c.Param("variant")); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to record conversion")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handlers) testStats(c echo.Context) error {
	stats := h.service.TestStats(c.Param("id"))
	if stats == nil {
		return echo.NewHTTPError(http.StatusNotFound, "experiment not found or inactive")
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handlers) bestVariant(c echo.Context) error {
	variant := h.service.BestVariant(c.Param("id"))
	if variant == nil {
		return echo.NewHTTPError(http.StatusNotFound, "experiment not found or inactive")
	}
	return c.JSON(http.StatusOK, variant)
}
