package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/jpbalagtas/church-companion-api/internal/database"
	"github.com/jpbalagtas/church-companion-api/internal/devotion"
	"github.com/jpbalagtas/church-companion-api/pkg/config"
)

type Server struct {
	port        string
	db          database.Service // nil when storage is not configured
	handler     http.Handler
	cfg         *config.Config
	devotionSvc devotion.DevotionService
	cancel      context.CancelFunc
}

// NewServer constructs the app server with all dependencies injected.
// db may be nil: the server then runs in a degraded mode where
// generation works but persistence endpoints report a configuration
// error, matching how the app behaves without storage credentials.
func NewServer(db database.Service, cfg *config.Config) (*Server, error) {
	var devotionRepo devotion.DevotionRepo
	if db != nil {
		stats := db.Health()
		fmt.Println("Database Health:", stats)
		if stats["status"] != "up" {
			return nil, fmt.Errorf("database connection failed: %s", stats["error"])
		}
		log.Println("Database connection successful")
		devotionRepo = devotion.NewDevotionRepo(db)
	} else {
		log.Println("No storage configured, running without persistence")
	}

	gen, err := devotion.NewGenerator(cfg)
	if err != nil {
		return nil, fmt.Errorf("create devotion generator: %w", err)
	}

	devotionSvc := devotion.NewDevotionService(devotionRepo, gen, cfg)

	s := &Server{
		port:        cfg.Port,
		db:          db,
		cfg:         cfg,
		devotionSvc: devotionSvc,
	}

	s.handler = s.RegisterRoutes()
	return s, nil
}

// HTTPServer returns the actual *http.Server instance
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", s.port),
		Handler:      s.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// StartBackgroundJobs runs scheduled jobs
func (s *Server) StartBackgroundJobs() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.devotionSvc.StartScheduler(ctx)
	log.Println("Devotion scheduler started")
}

func (s *Server) StopBackgroundJobs() {
	if s.cancel != nil {
		s.cancel()
		log.Println("Background jobs stopped gracefully")
	}
}
