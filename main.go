package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/brandloom/brandloom/internal/adapter/llm"
	"github.com/brandloom/brandloom/internal/config"
	"github.com/brandloom/brandloom/internal/extract"
	"github.com/brandloom/brandloom/internal/service"
	"github.com/brandloom/brandloom/internal/store"
	v1 "github.com/brandloom/brandloom/internal/transport/http/v1"
	"github.com/brandloom/brandloom/policy"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	cfg := config.Load()

	log.Printf("Starting brandloom...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("Database: %s", cfg.DatabaseURL)

	ctx := context.Background()

	// Initialize store
	db, err := store.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer db.Close()

	// Initialize generation client
	llmClient, err := llm.NewClient(ctx, cfg.Mode, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.LLMRPS, cfg.LLMBurst)
	if err != nil {
		log.Fatalf("Failed to initialize generation client: %v", err)
	}
	defer llmClient.Close()

	// Initialize content extractor
	extractor := extract.New(extract.Options{
		MinContentLength: cfg.ExtractMinContentLength,
		UserAgent:        cfg.ExtractUserAgent,
	})

	// Initialize outbound fetch policy engine
	policyEngine, err := policy.NewEngine(ctx, policy.DefaultPolicy)
	if err != nil {
		log.Fatalf("Failed to initialize policy engine: %v", err)
	}

	// Initialize service
	svc := service.New(db, llmClient, extractor, policyEngine, cfg)

	// Initialize handler
	h := v1.NewHandler(svc)

	// Create Echo server
	server := echo.New()
	server.HideBanner = true

	// Middleware
	server.Use(middleware.Logger())
	server.Use(middleware.Recover())
	server.Use(middleware.CORS())

	// Register routes
	h.RegisterRoutes(server)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("API started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down brandloom...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Brandloom stopped")
}
