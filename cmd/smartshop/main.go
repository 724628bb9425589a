package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/smartshop-app/smartshop/internal/ai"
	"github.com/smartshop-app/smartshop/internal/config"
	"github.com/smartshop-app/smartshop/internal/database"
	"github.com/smartshop-app/smartshop/internal/logging"
	"github.com/smartshop-app/smartshop/internal/server"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	var aiOpts []ai.Option
	if cfg.GeminiModel != "" {
		aiOpts = append(aiOpts, ai.WithModel(cfg.GeminiModel))
	}
	assistant := ai.NewClient(cfg.GeminiAPIKey, aiOpts...)
	if !assistant.Configured() {
		logger.Warn("GEMINI_API_KEY not set; suggestions and auto-categorization are disabled")
	}

	srv := server.New(db, assistant, logger)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("smartshop running", "addr", "http://localhost:"+cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
