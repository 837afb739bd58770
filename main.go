package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"gleamgallery/internal/config"
	"gleamgallery/internal/genai"
	"gleamgallery/internal/kv"
	"gleamgallery/internal/logger"
	"gleamgallery/internal/router"
	"gleamgallery/internal/store"
)

func main() {
	cfg := config.LoadConfig()

	log := logger.InitLogger()
	log.Info().Msg("Starting Gleam Gallery")

	// The catalog lives in memory only and is re-seeded from fixed
	// data on every start.
	seedUsers, err := store.SeedUsers()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed user accounts")
	}

	products := store.NewProductStore(store.SeedProducts())
	categories := store.NewCategoryStore(store.SeedCategories())
	users := store.NewUserStore(seedUsers)
	cartSlots := kv.NewMemory()
	generator := genai.NewClient(cfg.GenAIEndpoint, cfg.GenAIAPIKey, log)

	r := router.SetupRouter(cfg, products, categories, users, cartSlots, generator, log)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Msgf("Server listening on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info().Msg("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}

	log.Info().Msg("Server stopped")
}
