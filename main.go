package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"restaurant/configs"
	"restaurant/routes"
)

func main() {
	cfg := configs.LoadConfig()
	configs.SetupLogger(cfg)
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stores, err := configs.OpenStores(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("open stores failed")
	}
	defer stores.Close()

	menu, err := configs.LoadMenu(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("load menu failed")
	}
	log.Info().Int("items", len(menu.All())).Strs("categories", menu.Categories()).Msg("menu loaded")

	svc := routes.NewServices(cfg, stores, menu)
	go svc.Hub.Run(ctx)

	if err := configs.SeedAdmin(ctx, cfg, svc.Auth); err != nil {
		log.Fatal().Err(err).Msg("seed admin failed")
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           routes.NewRouter(cfg, svc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("store", cfg.StoreDriver).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
