package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/advancedmkt/leads-api/internal/usecase"
)

type LeadHandler struct {
	SubmitLeadUC *usecase.SubmitLeadUseCase
	rateLimiter  *RateLimiter
}

func NewLeadHandler(uc *usecase.SubmitLeadUseCase) *LeadHandler {
	return &LeadHandler{
		SubmitLeadUC: uc,
		rateLimiter:  NewRateLimiter(10, time.Minute), // 10 req/min por IP
	}
}

type leadErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Handle recebe o form da landing page. Aceita JSON ou form urlencoded —
// o form nativo do HTML posta urlencoded.
func (h *LeadHandler) Handle(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeJSON(w, http.StatusTooManyRequests, leadErrorResponse{
			Success: false,
			Error:   "Too many requests. Please try again later.",
		})
		return
	}

	input, err := parseLeadBody(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, leadErrorResponse{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	output, err := h.SubmitLeadUC.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsDomainError(err) {
			writeJSON(w, http.StatusBadRequest, leadErrorResponse{
				Success: false,
				Error:   err.Error(),
			})
			return
		}

		writeJSON(w, http.StatusInternalServerError, leadErrorResponse{
			Success: false,
			Error:   "Failed to save your inquiry. Please try again.",
		})
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func parseLeadBody(r *http.Request) (usecase.SubmitLeadInput, error) {
	var input usecase.SubmitLeadInput

	contentType := r.Header.Get("Content-Type")
	if strings.Contains(contentType, "application/json") {
		err := json.NewDecoder(r.Body).Decode(&input)
		return input, err
	}

	if err := r.ParseForm(); err != nil {
		return input, err
	}

	input = usecase.SubmitLeadInput{
		Name:    r.PostForm.Get("name"),
		Company: r.PostForm.Get("company"),
		Email:   r.PostForm.Get("email"),
		Phone:   r.PostForm.Get("phone"),
		Budget:  r.PostForm.Get("budget"),
		Project: r.PostForm.Get("project"),
	}
	return input, nil
}
