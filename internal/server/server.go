package server

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"stagecraftAi/internal/staging"
)

// New constructs the HTTP server with routes and middleware.
func New(port string, handler staging.Handler) *http.Server {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	router.Get("/health", handler.Health)
	router.Get("/styles", handler.Styles)
	router.Post("/stage", handler.Stage)
	router.Post("/analyze", handler.Analyze)
	router.Post("/generate-image", handler.GenerateImage)
	router.Get("/api/events", handler.StreamEvents)

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     router,
		ReadTimeout: 30 * time.Second,
		// Image generation holds the response open for up to the render
		// timeout, so the write timeout must exceed it.
		WriteTimeout: 3 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	log.Println("server ready on", srv.Addr)
	return srv
}
