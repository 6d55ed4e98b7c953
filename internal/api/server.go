// Package api wires the HTTP surface: one echo server hosting the
// catalog, search, recommendation, experiment and page-layout endpoints.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/lumiere/lumiere/internal/blocks"
	"github.com/lumiere/lumiere/internal/catalog"
	"github.com/lumiere/lumiere/internal/config"
	"github.com/lumiere/lumiere/internal/experiments"
	"github.com/lumiere/lumiere/internal/recommend"
	"github.com/lumiere/lumiere/internal/scheduler"
	"github.com/lumiere/lumiere/internal/search"
	"github.com/lumiere/lumiere/internal/storage"
)

// Server handles HTTP requests for the Lumiere API.
type Server struct {
	echo      *echo.Echo
	store     storage.Store
	logger    zerolog.Logger
	cfg       *config.Config
	scheduler *scheduler.Scheduler
	startTime time.Time

	catalogService     *catalog.Service
	searchRanker       *search.Ranker
	recommendService   *recommend.Service
	experimentsService *experiments.Service
	blocksService      *blocks.Service
}

// NewServer creates a new API server instance.
func NewServer(store storage.Store, cfg *config.Config, logger zerolog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:      e,
		store:     store,
		logger:    logger,
		cfg:       cfg,
		startTime: time.Now(),
	}

	s.catalogService = catalog.NewService(logger)
	s.searchRanker = search.NewRanker(search.DefaultConfig())
	s.recommendService = recommend.NewService(store, recommend.NewEngine(recommend.DefaultConfig()), logger)
	s.experimentsService = experiments.NewService(store, logger)
	s.blocksService = blocks.NewService(store, logger)

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// SetScheduler attaches the background scheduler so its tasks can be
// listed and triggered over the API.
func (s *Server) SetScheduler(sched *scheduler.Scheduler) {
	s.scheduler = sched
}

// Experiments exposes the experiments service for startup wiring.
func (s *Server) Experiments() *experiments.Service {
	return s.experimentsService
}

// setupMiddleware configures Echo middleware.
func (s *Server) setupMiddleware() {
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.BodyLimit("2M"))
	s.echo.Use(securityHeaders())

	s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogMethod:   true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				s.logger.Error().
					Str("method", v.Method).
					Str("uri", v.URI).
					Int("status", v.Status).
					Dur("latency", v.Latency).
					Err(v.Error).
					Msg("request error")
			} else {
				s.logger.Info().
					Str("method", v.Method).
					Str("uri", v.URI).
					Int("status", v.Status).
					Dur("latency", v.Latency).
					Msg("request")
			}
			return nil
		},
	}))

	s.echo.Use(middleware.GzipWithConfig(middleware.GzipConfig{Level: 5}))
}

// setupRoutes configures API routes.
func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)

	api := s.echo.Group("/api/v1")
	api.GET("/health", s.healthCheck)
	api.GET("/status", s.getStatus)

	catalogHandlers := catalog.NewHandlers(s.catalogService)
	catalogHandlers.RegisterRoutes(api)

	searchHandlers := search.NewHandlers(s.searchRanker, s.catalogService)
	searchHandlers.SetPreferenceSource(s.recommendService)
	searchHandlers.RegisterRoutes(api)

	recommendHandlers := recommend.NewHandlers(s.recommendService, s.catalogService)
	recommendHandlers.RegisterRoutes(api)

	experimentHandlers := experiments.NewHandlers(s.experimentsService)
	experimentHandlers.RegisterRoutes(api)

	blockHandlers := blocks.NewHandlers(s.blocksService)
	blockHandlers.RegisterRoutes(api)

	tasks := api.Group("/scheduler/tasks")
	tasks.GET("", s.listTasks)
	tasks.POST("/:id/run", s.runTask)
}

// Start begins listening for HTTP requests.
func (s *Server) Start(address string) error {
	s.logger.Info().Str("address", address).Msg("starting HTTP server")
	return s.echo.Start(address)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

// Echo returns the underlying Echo instance.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"version":   config.Version,
		"startTime": s.startTime.Format(time.RFC3339),
		"items":     len(s.catalogService.All()),
		"session":   s.experimentsService.SessionID(),
	})
}

func (s *Server) listTasks(c echo.Context) error {
	if s.scheduler == nil {
		return c.JSON(http.StatusOK, []scheduler.TaskInfo{})
	}
	return c.JSON(http.StatusOK, s.scheduler.Tasks())
}

func (s *Server) runTask(c echo.Context) error {
	if s.scheduler == nil {
		return echo.NewHTTPError(http.StatusNotFound, "scheduler not running")
	}
	if err := s.scheduler.RunNow(c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusAccepted, map[string]string{"taskId": c.Param("id")})
}
