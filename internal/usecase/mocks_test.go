package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/advancedmkt/leads-api/internal/entity"
	"github.com/advancedmkt/leads-api/internal/infra/integration/airwallex"
	"github.com/advancedmkt/leads-api/internal/infra/integration/gohighlevel"
	"github.com/advancedmkt/leads-api/internal/infra/queue"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	if args.Error(0) == nil {
		lead.ID = 42
		lead.CreatedAt = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	}
	return args.Error(0)
}

type MockCRMGateway struct {
	mock.Mock
}

func (m *MockCRMGateway) CreateContact(ctx context.Context, input gohighlevel.ContactInput) (*gohighlevel.Contact, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gohighlevel.Contact), args.Error(1)
}

func (m *MockCRMGateway) UpsertContactByPhone(ctx context.Context, input gohighlevel.ContactInput) (*gohighlevel.Contact, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gohighlevel.Contact), args.Error(1)
}

func (m *MockCRMGateway) CreateOpportunity(ctx context.Context, input gohighlevel.OpportunityInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockCRMGateway) CreateAppointment(ctx context.Context, input gohighlevel.AppointmentInput) (*gohighlevel.Appointment, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gohighlevel.Appointment), args.Error(1)
}

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreatePaymentLink(ctx context.Context, input airwallex.PaymentLinkInput) (*airwallex.PaymentLink, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*airwallex.PaymentLink), args.Error(1)
}

type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
