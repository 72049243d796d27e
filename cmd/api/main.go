package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/skinchef/backend/config"
	"github.com/skinchef/backend/internal/database"
	"github.com/skinchef/backend/internal/server"
	"github.com/skinchef/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	llmService, err := service.NewLLMService()
	if err != nil {
		log.Fatalf("Failed to initialize LLM service: %v", err)
	}

	var redisClient *redis.Client
	if cfg.HasRedis() {
		redisClient, err = database.NewRedisClient(cfg)
		if err != nil {
			log.Printf("Warning: failed to connect to Redis, rate limiting disabled: %v", err)
			redisClient = nil
		}
	}

	srv := server.New(cfg, db, llmService, redisClient)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Printf("Starting server on port %s...", cfg.ServerPort)
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
