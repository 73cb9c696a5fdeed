package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/advancedmkt/leads-api/internal/entity"
	"github.com/advancedmkt/leads-api/internal/infra/http/middleware"
	"github.com/advancedmkt/leads-api/internal/infra/integration/gohighlevel"
	"github.com/advancedmkt/leads-api/internal/schedule"
)

const bookingSource = "Phone Call - ElevenLabs AI"

type BookCallInput struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Notes         string `json:"notes"`
}

type BookCallOutput struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	ContactID       string `json:"contactId"`
	AppointmentID   string `json:"appointmentId"`
	AppointmentTime string `json:"appointmentTime"`
}

// BookCallUseCase atende o webhook do agente de voz: resolve o contato no
// CRM e agenda a discovery call. Aqui o CRM não é opcional — sem ele não
// tem agendamento, e qualquer falha sobe pro handler virar o 500 com
// instrução de hand-off.
type BookCallUseCase struct {
	CRM CRMGateway
	Now func() time.Time
}

func NewBookCallUseCase(crm CRMGateway) *BookCallUseCase {
	return &BookCallUseCase{
		CRM: crm,
		Now: time.Now,
	}
}

func (uc *BookCallUseCase) Execute(ctx context.Context, input BookCallInput) (*BookCallOutput, error) {
	validationErrors := ValidateBookCallInput(input)
	if len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    "MISSING_FIELDS",
			Message: "I need your name and phone number to book the appointment.",
		}
	}

	if uc.CRM == nil {
		return nil, &TechnicalError{
			Code:    "CRM_NOT_CONFIGURED",
			Message: "GHL credentials are not configured",
		}
	}

	first, last := entity.SplitName(input.Name)

	contact, err := uc.CRM.UpsertContactByPhone(ctx, gohighlevel.ContactInput{
		FirstName: first,
		LastName:  last,
		Email:     input.Email,
		Phone:     input.Phone,
		Source:    bookingSource,
		Tags:      []string{"phone-lead", "elevenlabs-ai", "discovery-call-requested"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve contact: %w", err)
	}

	window := schedule.Resolve(input.PreferredDate, input.PreferredTime, uc.Now())

	notes := input.Notes
	if notes == "" {
		notes = "Booked via phone call with ElevenLabs AI agent"
	}

	appointment, err := uc.CRM.CreateAppointment(ctx, gohighlevel.AppointmentInput{
		ContactID: contact.ID,
		Title:     strings.TrimSpace(fmt.Sprintf("Discovery Call - %s %s", first, last)),
		StartTime: window.Start.Format(time.RFC3339),
		EndTime:   window.End.Format(time.RFC3339),
		Notes:     notes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	middleware.RecordBooking()

	appointmentID := appointment.ID
	if appointmentID == "" {
		appointmentID = "created"
	}
	appointmentTime := appointment.StartTime
	if appointmentTime == "" {
		appointmentTime = window.Start.Format(time.RFC3339)
	}

	return &BookCallOutput{
		Success:         true,
		Message:         confirmationMessage(input),
		ContactID:       contact.ID,
		AppointmentID:   appointmentID,
		AppointmentTime: appointmentTime,
	}, nil
}

// confirmationMessage é falada pelo agente de voz; só menciona data/hora
// quando o caller pediu uma.
func confirmationMessage(input BookCallInput) string {
	when := ""
	if input.PreferredDate != "" {
		when = fmt.Sprintf(" for %s at %s", input.PreferredDate, input.PreferredTime)
	}

	email := input.Email
	if email == "" {
		email = "the email we have on file"
	}

	return fmt.Sprintf(
		"Perfect! I've scheduled your discovery call%s. You'll receive a confirmation email shortly at %s. Looking forward to speaking with you!",
		when, email,
	)
}
