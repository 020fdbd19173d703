package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"task-bidding-api/internal/config"
	"task-bidding-api/internal/database"
	"task-bidding-api/internal/realtime"
	"task-bidding-api/internal/routes"
	"task-bidding-api/internal/store"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	st := store.New(db, cfg.FeeRate)
	hub := realtime.NewHub()

	ginRoutes := routes.SetupRoutes(st, hub, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: ginRoutes,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server starting on port :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server: ", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("Forced shutdown: ", err)
	}
}
