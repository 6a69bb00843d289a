package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ndewijer/ynab-compass/internal/api"
	"github.com/ndewijer/ynab-compass/internal/config"
	"github.com/ndewijer/ynab-compass/internal/service"
	"github.com/ndewijer/ynab-compass/internal/ynab"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create remote budgeting service client
	client := ynab.NewAPIClient(cfg.YNAB.BaseURL, cfg.YNAB.Token)

	log.Printf("Using budgeting service at %s", cfg.YNAB.BaseURL)

	// Create services
	budgetService := service.NewBudgetService(client)
	transactionService := service.NewTransactionService(client, cfg.View.DefaultTimeline)

	// Create router
	router := api.NewRouter(budgetService, transactionService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
