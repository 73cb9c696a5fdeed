package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/advancedmkt/leads-api/internal/usecase"
)

type BookingHandler struct {
	BookCallUC *usecase.BookCallUseCase
}

func NewBookingHandler(uc *usecase.BookCallUseCase) *BookingHandler {
	return &BookingHandler{BookCallUC: uc}
}

// As mensagens daqui são faladas por um agente de voz, não lidas por uma
// pessoa num formulário. Erro nunca expõe detalhe cru pro caller: o texto
// manda o agente transferir pra um humano e o erro real vai em "details",
// que o agente não fala.
type bookingErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (h *BookingHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.BookCallInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, bookingErrorResponse{
			Success: false,
			Error:   "Invalid JSON",
			Message: "I need your name and phone number to book the appointment.",
		})
		return
	}

	output, err := h.BookCallUC.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsDomainError(err) {
			writeJSON(w, http.StatusBadRequest, bookingErrorResponse{
				Success: false,
				Error:   "Name and phone number are required",
				Message: err.Error(),
			})
			return
		}

		log.Printf("❌ Booking: %v", err)
		writeJSON(w, http.StatusInternalServerError, bookingErrorResponse{
			Success: false,
			Error:   "Failed to book appointment",
			Message: "I apologize, but I encountered an issue booking your appointment. Let me transfer you to a team member who can help you directly.",
			Details: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, output)
}
