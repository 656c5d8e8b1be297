package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/poketeam-api/internal/config"
	"github.com/bagdasarian/poketeam-api/internal/db"
	"github.com/bagdasarian/poketeam-api/internal/generator"
	"github.com/bagdasarian/poketeam-api/internal/handler"
	"github.com/bagdasarian/poketeam-api/internal/handler/server"
	"github.com/bagdasarian/poketeam-api/internal/pokeapi"
	"github.com/bagdasarian/poketeam-api/internal/repository/postgres"
	"github.com/bagdasarian/poketeam-api/internal/service"
)

func main() {
	cfg := config.Load()

	database := db.MustLoad(cfg)
	log.Println("Successfully connected to database!")
	defer database.Close()

	teamRepo := postgres.NewTeamRepository(database)

	resolver := pokeapi.NewClient(cfg.PokeAPI.BaseURL, pokeapi.WithTimeout(cfg.PokeAPI.Timeout))
	teamGenerator := generator.NewTeamGenerator(resolver)
	policy := service.NewEnvMutationPolicy(cfg.App.Env)

	teamService := service.NewTeamService(teamRepo, teamGenerator, policy)

	h := handler.NewHandler(teamService)
	srv := server.NewServer(h, cfg.App.HTTPAddr)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
