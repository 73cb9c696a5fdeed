package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/advancedmkt/leads-api/internal/infra/http/middleware"
)

// NewRouter monta as rotas. POST e o pre-flight OPTIONS são os únicos
// métodos aceitos nos endpoints de formulário; o resto leva 405.
func NewRouter(lead *LeadHandler, booking *BookingHandler, health *HealthHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	})

	r.Post("/submit-lead", lead.Handle)
	r.Options("/submit-lead", preflight)
	r.Post("/booking", booking.Handle)
	r.Options("/booking", preflight)

	r.Get("/health", health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// preflight cobre o OPTIONS que chega sem os headers de pre-flight (o CORS
// middleware já responde o pre-flight de navegador antes de chegar aqui).
func preflight(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.WriteHeader(http.StatusOK)
}
