package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/juntas_vecinales/backend/internal/analytics"
	"github.com/juntas_vecinales/backend/internal/config"
	"github.com/juntas_vecinales/backend/internal/db"
	"github.com/juntas_vecinales/backend/internal/geocode"
	httpapi "github.com/juntas_vecinales/backend/internal/http"
	"github.com/juntas_vecinales/backend/internal/service"
)

// @title Juntas Vecinales Analytics
// @version 1.0
// @description Statistics, rankings and geolocation over municipal complaints
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Api-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := log.Level(level).With().Str("service", "juntas-analytics").Logger()

	ctx := context.Background()
	store, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect db")
	}
	defer store.Close()

	loc := cfg.Location()
	if cfg.UnknownTimezone() {
		logger.Warn().Str("timezone", cfg.Timezone).Msg("unknown timezone, using UTC")
	}

	var geocoder geocode.Geocoder
	if cfg.GeocoderURL == "" {
		logger.Info().Msg("geocoder disabled")
	} else {
		geocoder = &geocode.NominatimGeocoder{
			BaseURL:      cfg.GeocoderURL,
			UserAgent:    cfg.GeocoderUserAgent,
			CountryCodes: "cl",
		}
	}

	dashboard := &service.DashboardService{
		Source:   store,
		Engine:   analytics.NewEngine(cfg.PendingStatusID, loc, logger),
		Geocoder: geocoder,
		TopN:     cfg.RankingTopN,
		Comuna:   cfg.ComunaDefault,
		Country:  cfg.CountryDefault,
		Logger:   logger,
	}

	router := httpapi.Router(cfg, store, dashboard, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Str("timezone", loc.String()).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}
