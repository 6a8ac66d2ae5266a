package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"menu-engine/internal/logger"
)

type RouterConfig struct {
	CronSecret         string
	Production         bool
	AllowManualTrigger bool
	CORSAllowedOrigins []string
	ServiceName        string
	Log                *logger.Logger

	GenerateHandler *GenerateHandler
	RunsHandler     *RunsHandler
	HealthHandler   *HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	if cfg.HealthHandler != nil {
		r.GET("/health", cfg.HealthHandler.HealthCheck)
	}

	menus := r.Group("/api/weekly-menus")
	menus.Use(RequireCronSecret(cfg.CronSecret, cfg.Log))
	{
		if cfg.GenerateHandler != nil {
			menus.POST("/generate", cfg.GenerateHandler.Generate)
			menus.GET("/generate", ManualTriggerGuard(cfg.Production, cfg.AllowManualTrigger), cfg.GenerateHandler.Generate)
		}
		if cfg.RunsHandler != nil {
			menus.GET("/runs", cfg.RunsHandler.List)
		}
	}
	return r
}
