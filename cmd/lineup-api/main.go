package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/daehyun-dev/lineup-api/api/swagger"
	"github.com/daehyun-dev/lineup-api/internal/handler"
	"github.com/daehyun-dev/lineup-api/internal/middleware"
	"github.com/daehyun-dev/lineup-api/internal/repository"
	"github.com/daehyun-dev/lineup-api/internal/service"
	"github.com/daehyun-dev/lineup-api/pkg/config"
	"github.com/daehyun-dev/lineup-api/pkg/logger"
	corsmiddleware "github.com/daehyun-dev/lineup-api/pkg/middleware/cors"
	reqidmiddleware "github.com/daehyun-dev/lineup-api/pkg/middleware/requestid"
)

// @title Lineup API
// @version 0.3.0
// @description Slot-conflict validation and replacement search for multi-venue DJ lineups
// @BasePath /
// @schemes http

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

	metrics := service.NewMetricsService()
	geo := service.NewGeographyService(cfg.Geography)
	conflicts := service.NewConflictService(geo, metrics)
	replacements := service.NewReplacementService(conflicts, geo, cfg.Schedules.PoolDJs, metrics, logr)
	store := repository.NewScheduleStore(cfg.Schedules.SessionTTL)
	parser := service.NewParserService(logr)
	schedules := service.NewScheduleService(store, parser, conflicts, replacements, validator.New(), logr)

	scheduleHandler := handler.NewScheduleHandler(schedules)
	switchHandler := handler.NewSwitchHandler(schedules)
	geographyHandler := handler.NewGeographyHandler(geo)
	metricsHandler := handler.NewMetricsHandler(metrics)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metrics))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)
	r.GET("/metrics/snapshot", metricsHandler.Snapshot)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/schedules", scheduleHandler.Submit)
		api.GET("/schedules/:id", scheduleHandler.Get)
		api.DELETE("/schedules/:id", scheduleHandler.Delete)
		api.GET("/schedules/:id/export", scheduleHandler.Export)
		api.POST("/schedules/:id/absences", scheduleHandler.RemoveDJ)
		api.POST("/schedules/:id/assignments", scheduleHandler.Assign)

		api.POST("/schedules/:id/switch-check", switchHandler.CheckSwitch)
		api.POST("/schedules/:id/replacements", switchHandler.Replacements)
		api.POST("/schedules/:id/replacements/cascade", switchHandler.Cascade)

		api.GET("/geography/venues/:venue/area", geographyHandler.Area)
		api.GET("/geography/travel-time", geographyHandler.TravelTime)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
