package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/medassist/medassist/internal/handlers"
	"github.com/medassist/medassist/internal/middleware"
)

// New assembles the HTTP surface: the widget page, a health probe and the
// chat endpoint.
func New(chatHandler *handlers.ChatHandler) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
	}).Handler)

	r.Get("/", handlers.Index)
	r.Get("/health", handlers.Health)
	r.Post("/api/chat", chatHandler.Chat)

	return r
}
