package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"github.com/tourism-route-service/internal/config"
	"github.com/tourism-route-service/internal/delivery/http/handler"
	"github.com/tourism-route-service/internal/delivery/http/middleware"
	"github.com/tourism-route-service/internal/domain/repository"
	"github.com/tourism-route-service/internal/pkg/errors"
	"github.com/tourism-route-service/internal/pkg/metrics"
	"go.uber.org/zap"
)

// HealthCheck - проверка зависимости для /health
type HealthCheck func(ctx context.Context) error

// Handlers - обработчики API
type Handlers struct {
	Route    *handler.RouteHandler
	Geocode  *handler.GeocodeHandler
	Estimate *handler.EstimateHandler
	Planner  *handler.PlannerHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app       *fiber.App
	config    *config.Config
	logger    *zap.Logger
	collector *metrics.Collector
	sessions  repository.SessionRepository
	checks    map[string]HealthCheck
	handlers  Handlers
}

// NewServer - создание нового HTTP сервера. collector может быть nil.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	collector *metrics.Collector,
	sessions repository.SessionRepository,
	checks map[string]HealthCheck,
	handlers Handlers,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Tourism Route Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:       app,
		config:    cfg,
		logger:    logger,
		collector: collector,
		sessions:  sessions,
		checks:    checks,
		handlers:  handlers,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	if s.collector != nil && s.config.Metrics.Enabled {
		s.app.Use(s.collector.Middleware())
	}
	s.app.Use(middleware.CORS(s.config.Server.AllowOrigins, s.config.Session.HeaderName))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
	s.app.Get("/health", s.health)
	if s.collector != nil && s.config.Metrics.Enabled {
		s.app.Get(s.config.Metrics.Path, s.collector.Handler())
	}

	api := s.app.Group("/api/v1", middleware.Session(
		s.sessions,
		s.config.Session.CookieName,
		s.config.Session.HeaderName,
		s.logger,
	))

	// Routes. Статические пути регистрируются до /:id.
	routes := api.Group("/routes")
	routes.Get("/", s.handlers.Route.List)
	routes.Get("/mine", s.handlers.Route.Mine)
	routes.Get("/stats", s.handlers.Route.Stats)
	routes.Post("/", s.handlers.Route.Create)
	routes.Get("/:id/geojson", s.handlers.Route.GeoJSON)
	routes.Post("/:id/delete", s.handlers.Route.Delete)
	routes.Get("/:id", s.handlers.Route.Get)
	routes.Post("/:id", s.handlers.Route.Update)

	// Geocoding
	api.Get("/geocode/search", s.handlers.Geocode.Search)
	api.Get("/geocode/reverse", s.handlers.Geocode.Reverse)

	// Estimate
	api.Post("/estimate", s.handlers.Estimate.Estimate)

	// Planner
	plannerGroup := api.Group("/planner")
	plannerGroup.Post("/", s.handlers.Planner.Open)
	plannerGroup.Get("/:id", s.handlers.Planner.Get)
	plannerGroup.Delete("/:id", s.handlers.Planner.Discard)
	plannerGroup.Put("/:id/mode", s.handlers.Planner.SetMode)
	plannerGroup.Put("/:id/details", s.handlers.Planner.SetDetails)
	plannerGroup.Post("/:id/click", s.handlers.Planner.Click)
	plannerGroup.Post("/:id/address", s.handlers.Planner.Address)
	plannerGroup.Put("/:id/waypoints", s.handlers.Planner.SetWaypoints)
	plannerGroup.Post("/:id/load/:routeId", s.handlers.Planner.Load)
	plannerGroup.Post("/:id/submit", s.handlers.Planner.Submit)
}

// health godoc
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (s *Server) health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := "healthy"
	code := fiber.StatusOK
	deps := make(map[string]string, len(s.checks))
	for name, check := range s.checks {
		if err := check(ctx); err != nil {
			s.logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			deps[name] = "unavailable"
			status = "degraded"
			code = fiber.StatusServiceUnavailable
			continue
		}
		deps[name] = "ok"
	}

	return c.Status(code).JSON(fiber.Map{
		"status":       status,
		"dependencies": deps,
		"time":         time.Now(),
	})
}

// App - fiber приложение (тесты)
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки, не обработанные хендлерами (404 fiber, паники)
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		appErr := errors.ErrInternalServer

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			appErr = errors.New(httpErrorCode(code), e.Message, code)
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   appErr,
		})
	}
}

func httpErrorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "REQUEST_TOO_LARGE"
	case fiber.StatusBadRequest:
		return "INVALID_REQUEST"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}
