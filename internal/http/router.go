package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/juntas_vecinales/backend/internal/config"
	"github.com/juntas_vecinales/backend/internal/http/handlers"
	"github.com/juntas_vecinales/backend/internal/http/middleware"
	"github.com/juntas_vecinales/backend/internal/service"

	_ "github.com/juntas_vecinales/backend/docs"
)

func Router(cfg config.Config, store handlers.Pinger, dashboard *service.DashboardService, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.APIKeyHeader, middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Store:     store,
		Dashboard: dashboard,
		Validator: validator.New(),
		Logger:    logger,
		Location:  cfg.Location(),
	}

	r.GET("/healthz", h.Healthz)

	api := r.Group("/api")
	api.Use(middleware.APIKey(cfg.APIKey))
	if cfg.RequestTimeout > 0 {
		api.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	stats := api.Group("/estadisticas")
	{
		stats.GET("/resumen", h.Summary)
		stats.GET("/mensual-categorias", h.ByMonthAndCategory)
		stats.GET("/categorias", h.ByCategory)
		stats.GET("/recibidos-resueltos", h.ResolvedVsReceived)
		stats.GET("/departamentos", h.ByDepartment)
		stats.GET("/dashboard", h.DashboardAll)
	}

	rankings := api.Group("/rankings")
	{
		rankings.GET("/eficiencia", h.EfficiencyRanking)
		rankings.GET("/criticidad", h.CriticalityRanking)
		rankings.GET("/calor", h.HeatRanking)
	}

	juntas := api.Group("/juntas")
	{
		juntas.GET("/cercana", h.NearestJunta)
		juntas.GET("/distancia", h.Distance)
		juntas.GET("/:id/distancia", h.JuntaDistance)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
