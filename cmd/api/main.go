package main

// @title Tourism Route Service API
// @version 1.0.0
// @description Сервис туристических маршрутов. Планирование маршрута по карте и адресам,
// @description оценка дистанции и времени, хранение маршрутов с правами владельца.
// @description
// @description Основные возможности:
// @description - Черновики маршрутов с выбором начальной и конечной точки
// @description - Прямое и обратное геокодирование (Nominatim)
// @description - Оценка дистанции по прямой или по дорогам (OSRM)
// @description - Публичный каталог маршрутов и статистика

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tourism-route-service/docs/swagger"
	"github.com/tourism-route-service/internal/config"
	httpDelivery "github.com/tourism-route-service/internal/delivery/http"
	"github.com/tourism-route-service/internal/delivery/http/handler"
	"github.com/tourism-route-service/internal/estimator"
	"github.com/tourism-route-service/internal/infrastructure/nominatim"
	"github.com/tourism-route-service/internal/infrastructure/osrm"
	"github.com/tourism-route-service/internal/pkg/logger"
	"github.com/tourism-route-service/internal/pkg/metrics"
	"github.com/tourism-route-service/internal/planner"
	"github.com/tourism-route-service/internal/repository/cache"
	"github.com/tourism-route-service/internal/repository/postgres"
	redisRepo "github.com/tourism-route-service/internal/repository/redis"
	"github.com/tourism-route-service/internal/usecase"
	"github.com/tourism-route-service/internal/worker"
	"github.com/tourism-route-service/internal/worker/route"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "route-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Tourism Route Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("estimator", cfg.Estimator.Strategy),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	log.Info("Redis connected")

	// 5. Metrics
	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector, err = metrics.NewCollector(nil)
		if err != nil {
			log.Fatal("Failed to register metrics", zap.Error(err))
		}
	}

	// 6. Initialize Repositories
	routeRepo := postgres.NewRouteRepository(db)
	statsRepo := postgres.NewStatsRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient)
	sessionRepo := cache.NewSessionRepository(redisClient, cfg.Session.KeyPrefix)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), cfg.RedisStreams.MaxLen, log)

	// Внешние сервисы
	geocodingRepo := nominatim.NewClient(&cfg.Geocoding, collector, log)
	routingRepo := osrm.NewClient(&cfg.Routing, collector, log)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	est, err := estimator.New(&cfg.Estimator, routingRepo, log)
	if err != nil {
		log.Fatal("Failed to initialize estimator", zap.Error(err))
	}

	geocodingUC := usecase.NewGeocodingUseCase(geocodingRepo, cacheRepo, log, cfg.Cache.GeocodeCacheTTL)
	statsUC := usecase.NewRouteStatsUseCase(statsRepo, cacheRepo, log, cfg.Cache.StatsCacheTTL)
	routeUC := usecase.NewRouteUseCase(
		routeRepo,
		streamRepo,
		cacheRepo,
		est,
		cfg.RedisStreams.RouteEventsStream,
		log,
	)

	registry := planner.NewRegistry(
		est,
		geocodingUC,
		func() planner.MapView { return planner.NewGeoJSONMapView() },
		cfg.Planner.DraftTTL,
		collector,
		log,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	handlers := httpDelivery.Handlers{
		Route:    handler.NewRouteHandler(routeUC, statsUC, log),
		Geocode:  handler.NewGeocodeHandler(geocodingUC, log),
		Estimate: handler.NewEstimateHandler(est, log),
		Planner:  handler.NewPlannerHandler(registry, routeUC, log),
	}

	checks := map[string]httpDelivery.HealthCheck{
		"postgres": db.Health,
		"redis":    redisClient.Health,
	}

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, collector, sessionRepo, checks, handlers)

	// 10. Background workers
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	workerManager := worker.NewWorkerManager(log, cfg.Worker.ShutdownTimeout)
	workerManager.Register(route.NewDraftSweeper(registry, cfg.Planner.SweepInterval, log))
	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	cancel()
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close PostgreSQL", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
