package main

import (
	"context"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	_ "weather-dashboard/configs"
	"weather-dashboard/internal/application/controller"
	"weather-dashboard/internal/application/listener"
	"weather-dashboard/internal/application/middleware"
	"weather-dashboard/internal/application/schedule"
	"weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/internal/domain/gateway/db"
	"weather-dashboard/internal/domain/gateway/queue"
	"weather-dashboard/internal/domain/usecase/catalog"
	"weather-dashboard/internal/domain/usecase/dashboard"
	"weather-dashboard/internal/domain/usecase/health"
	"weather-dashboard/internal/domain/usecase/pipeline"
	"weather-dashboard/internal/infra/aws"
	"weather-dashboard/internal/infra/database/gorm"
	"weather-dashboard/internal/infra/database/postgres"
	"weather-dashboard/pkg/http"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/redis"
	"weather-dashboard/pkg/resource"
)

func main() {
	log.Info(msg.GetMessage("app.start"))

	ctx := context.Background()

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.RequestID())
	contextPath := resource.GetString("app.server.context-path")
	ui := e.Group(contextPath)

	redisClient := redis.NewClient(redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithDefaultCacheTTL(resource.GetDuration("app.redis.cache.default-ttl")).
		WithCacheTTL("dashboard-series", resource.GetDuration("app.redis.cache.series-ttl")).
		WithCacheTTL("warehouse-catalog", resource.GetDuration("app.redis.cache.catalog-ttl")).
		WithCacheTTL("pipeline-status", resource.GetDuration("app.redis.cache.pipeline-ttl")))

	seriesCache := redis.NewCache(redisClient, redis.NewCacheOptions().WithCacheName("dashboard-series"))
	catalogCache := redis.NewCache(redisClient, redis.NewCacheOptions().WithCacheName("warehouse-catalog"))
	pipelineCache := redis.NewCache(redisClient, redis.NewCacheOptions().WithCacheName("pipeline-status"))

	// Init Gateways
	warehouseGateway := db.NewSQLWarehouseGateway(postgres.Db)
	catalogGateway := db.NewGormCatalogGateway(gorm.Db)
	warehouseHealthGateway := db.NewGormWarehouseHealthGateway(gorm.Db)
	queueGateway := queue.NewSqsPipelineQueueGateway(aws.NewSqsClient(), resource.GetString("app.pipeline.ingest-queue"))
	pipelineGateway := api.NewPipelineGateway(resource.GetString("app.pipeline.api-url"), http.ClientOptions{})
	cacheChecker := redis.NewHealthChecker(redisClient)

	// Init UseCases
	dashboardUseCase := dashboard.NewDashboardUseCase(
		resource.GetInt("app.dashboard.export-row-limit"), warehouseGateway, seriesCache)
	catalogUseCase := catalog.NewCatalogUseCase(
		resource.GetInt("app.dashboard.table-preview-limit"), catalogGateway, catalogCache)
	pipelineUseCase := pipeline.NewPipelineUseCase(pipelineGateway, queueGateway, pipelineCache)
	healthUseCase := health.NewHealthUseCase(warehouseHealthGateway, cacheChecker, queueGateway, pipelineGateway)

	// Init Controllers
	pageController := controller.NewPageController(e, ui, contextPath, dashboardUseCase)
	dashboardController := controller.NewDashboardController(
		ui, resource.GetInt("app.dashboard.observation-page-size"), dashboardUseCase)
	catalogController := controller.NewCatalogController(ui, catalogUseCase)
	pipelineController := controller.NewPipelineController(ui, pipelineUseCase)
	healthController := controller.NewHealthController(ui, healthUseCase)

	// Init Routes
	pageController.InitPageRoutes()
	dashboardController.InitDashboardRoutes()
	catalogController.InitCatalogRoutes()
	pipelineController.InitPipelineRoutes()
	healthController.InitHealthRoutes()

	// Init Middleware
	middleware.SetupRequestLogger(e)
	middleware.SetupRateLimiter(e, redis.NewRateLimiter(redisClient, redis.NewRateLimiterOptions().
		WithMaxRequests(resource.GetInt("app.dashboard.rate-limit.max-requests")).
		WithWindow(resource.GetDuration("app.dashboard.rate-limit.window")).
		WithNamespace("dashboard")))

	// Init Schedules
	cacheWarmScheduler := schedule.NewCacheWarmScheduler(
		dashboardUseCase,
		redisClient,
		resource.GetString("app.cache-warm.cron"),
		resource.GetInt("app.cache-warm.lock-ttl"),
		resource.GetInt("app.cache-warm.lock-refresh-interval"),
	)
	cacheWarmScheduler.InitCacheWarmScheduleTasks(ctx)

	freshnessScheduler, err := schedule.NewFreshnessScheduler(
		pipelineUseCase, resource.GetDuration("app.pipeline.freshness-poll-interval"))
	if err != nil {
		log.Fatalf("Failed to create pipeline freshness poller: %v", err)
	}
	if err := freshnessScheduler.InitFreshnessScheduleTasks(); err != nil {
		log.Fatalf("Failed to start pipeline freshness poller: %v", err)
	}

	// Init Listener
	refreshListener := listener.NewRefreshListener(
		resource.GetString("app.redis.refresh-channel"), redisClient, dashboardUseCase, pipelineUseCase)
	refreshListener.InitRefreshListener(ctx)

	// Start Routes
	log.Info(msg.GetMessage("app.started"))
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
}
