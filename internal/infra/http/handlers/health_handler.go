package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/advancedmkt/leads-api/internal/config"
)

type HealthHandler struct {
	DB        *sql.DB
	Cfg       *config.Config
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(db *sql.DB, cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		DB:        db,
		Cfg:       cfg,
		StartTime: time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	if h.DB != nil {
		if err := h.DB.Ping(); err != nil {
			deps["database"] = fmt.Sprintf("unhealthy: %v", err)
		} else {
			deps["database"] = "healthy"
		}
	} else {
		deps["database"] = "not configured"
	}

	deps["gohighlevel"] = configured(h.Cfg.GHLEnabled())
	deps["airwallex"] = configured(h.Cfg.AirwallexEnabled())
	deps["rabbitmq"] = configured(h.Cfg.QueueEnabled())
	deps["smtp"] = configured(h.Cfg.MailEnabled())

	status := "healthy"
	for _, v := range deps {
		if v != "healthy" && v != "configured" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	response := HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	code := http.StatusOK
	if status == "degraded" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, response)
}

func configured(enabled bool) string {
	if enabled {
		return "configured"
	}
	return "not configured"
}
