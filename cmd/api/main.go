// Package main is the entry point for the Church Companion API server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jpbalagtas/church-companion-api/internal/database"
	"github.com/jpbalagtas/church-companion-api/internal/server"
	"github.com/jpbalagtas/church-companion-api/pkg/config"
)

func main() {
	cfg := config.LoadConfig()

	var db database.Service
	if cfg.HasDatabase() {
		var err error
		db, err = database.New(cfg)
		if err != nil {
			log.Fatalf("could not connect to database: %v", err)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := db.Migrate(ctx); err != nil {
			cancel()
			log.Fatalf("could not run migrations: %v", err)
		}
		cancel()
	} else {
		log.Println("DB_HOST not set, starting without storage")
	}

	srv, err := server.NewServer(db, cfg)
	if err != nil {
		log.Fatalf("could not create server: %v", err)
	}

	srv.StartBackgroundJobs()
	defer srv.StopBackgroundJobs()

	httpServer := srv.HTTPServer()

	go func() {
		log.Printf("listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
}
