package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jpbalagtas/church-companion-api/internal/devotion"
	"github.com/jpbalagtas/church-companion-api/internal/prayer"
	"github.com/jpbalagtas/church-companion-api/pkg/response"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", s.ServerIsWorking)
	r.Get("/health", s.HealthHandler)

	r.Route("/church-api/v1", func(r chi.Router) {
		s.loadDevotionRoutes(r)
		s.loadPrayerRoutes(r)
	})
	r.Get("/church-api/v1", s.ServerIsWorking)

	return r
}

func (s *Server) ServerIsWorking(w http.ResponseWriter, r *http.Request) {
	resp := make(map[string]string)
	resp["message"] = "Welcome to the Church Companion api"
	response.Success(w, resp, "Success")
}

func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		response.Success(w, map[string]string{"status": "up", "storage": "not configured"}, "Success")
		return
	}
	response.Success(w, s.db.Health(), "Success")
}

func (s *Server) loadDevotionRoutes(router chi.Router) {
	devotionHandler := devotion.NewDevotionHandler(s.devotionSvc)

	router.Get("/devotions/today", devotionHandler.DashboardHandler)
	router.Post("/devotions/generate", devotionHandler.GenerateHandler)
	router.Post("/devotions/save", devotionHandler.SaveHandler)
}

func (s *Server) loadPrayerRoutes(router chi.Router) {
	if s.db == nil {
		return
	}

	prayerRepo := prayer.NewPrayerRepo(s.db)
	prayerService := prayer.NewPrayerService(prayerRepo)
	prayerHandler := prayer.NewPrayerHandler(prayerService)

	router.Get("/prayer/requests", prayerHandler.PublicRequestsHandler)
	router.Post("/prayer/requests", prayerHandler.SubmitRequestHandler)
	router.Get("/prayer/assignments", prayerHandler.MonthAssignmentsHandler)
}
