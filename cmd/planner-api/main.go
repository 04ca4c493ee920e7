package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bruinplan/planner-api/internal/handler"
	"github.com/bruinplan/planner-api/internal/middleware"
	"github.com/bruinplan/planner-api/internal/repository"
	"github.com/bruinplan/planner-api/internal/service"
	"github.com/bruinplan/planner-api/pkg/cache"
	"github.com/bruinplan/planner-api/pkg/config"
	"github.com/bruinplan/planner-api/pkg/logger"
	corsmiddleware "github.com/bruinplan/planner-api/pkg/middleware/cors"
	reqidmiddleware "github.com/bruinplan/planner-api/pkg/middleware/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Planner.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, plan caching disabled", zap.Error(err))
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Planner.CacheTTL, logr, true)
		}
	}

	planSvc := service.NewPlanService(cacheSvc, metricsSvc, nil, logr, service.PlanConfig{
		MaxCourses:    cfg.Planner.MaxCourses,
		MaxCandidates: cfg.Planner.MaxCandidates,
		ResultTTL:     cfg.Planner.ResultTTL,
		CacheTTL:      cfg.Planner.CacheTTL,
	})

	catalogRepo, err := repository.NewCatalogRepository(cfg.Catalog.CoursesFile, cfg.Catalog.DiscussionsFile)
	if err != nil {
		logr.Warn("course catalog unavailable", zap.Error(err))
	}
	var catalogSvc *service.CatalogService
	if catalogRepo != nil {
		catalogSvc = service.NewCatalogService(catalogRepo, logr)
	} else {
		catalogSvc = service.NewCatalogService(nil, logr)
	}

	planHandler := handler.NewPlanHandler(planSvc)
	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/plans", planHandler.Generate)
		api.GET("/plans/:id", planHandler.Get)
		api.GET("/plans/:id/best", planHandler.Best)
		api.DELETE("/plans/:id", planHandler.Delete)

		api.GET("/catalog/courses", catalogHandler.List)
		api.GET("/catalog/courses/:id", catalogHandler.Get)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
