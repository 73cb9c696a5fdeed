package usecase

import (
	"context"

	"github.com/advancedmkt/leads-api/internal/infra/integration/airwallex"
	"github.com/advancedmkt/leads-api/internal/infra/integration/gohighlevel"
	"github.com/advancedmkt/leads-api/internal/infra/queue"
)

type CRMGateway interface {
	CreateContact(ctx context.Context, input gohighlevel.ContactInput) (*gohighlevel.Contact, error)
	UpsertContactByPhone(ctx context.Context, input gohighlevel.ContactInput) (*gohighlevel.Contact, error)
	CreateOpportunity(ctx context.Context, input gohighlevel.OpportunityInput) (string, error)
	CreateAppointment(ctx context.Context, input gohighlevel.AppointmentInput) (*gohighlevel.Appointment, error)
}

type PaymentGateway interface {
	CreatePaymentLink(ctx context.Context, input airwallex.PaymentLinkInput) (*airwallex.PaymentLink, error)
}

type QueueProducerInterface interface {
	PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error
}
