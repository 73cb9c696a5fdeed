package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/advancedmkt/leads-api/internal/infra/integration/gohighlevel"
	"github.com/advancedmkt/leads-api/internal/usecase"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
}

func TestBookCallSuccess(t *testing.T) {
	crm := new(MockCRMGateway)

	crm.On("UpsertContactByPhone", mock.Anything, mock.MatchedBy(func(input gohighlevel.ContactInput) bool {
		return input.FirstName == "Mary" && input.LastName == "Jane Smith" && input.Phone == "+1 555 0100"
	})).Return(&gohighlevel.Contact{ID: "ghl-contact-9"}, nil)

	crm.On("CreateAppointment", mock.Anything, mock.MatchedBy(func(input gohighlevel.AppointmentInput) bool {
		return input.ContactID == "ghl-contact-9" &&
			input.Title == "Discovery Call - Mary Jane Smith" &&
			input.StartTime == "2026-03-15T14:00:00Z" &&
			input.EndTime == "2026-03-15T14:45:00Z"
	})).Return(&gohighlevel.Appointment{ID: "appt-1", StartTime: "2026-03-15T14:00:00Z"}, nil)

	uc := usecase.NewBookCallUseCase(crm)
	uc.Now = fixedNow

	output, err := uc.Execute(context.Background(), usecase.BookCallInput{
		Name:          "Mary Jane Smith",
		Email:         "mary@example.com",
		Phone:         "+1 555 0100",
		PreferredDate: "2026-03-15",
		PreferredTime: "2pm",
	})

	assert.NoError(t, err)
	assert.True(t, output.Success)
	assert.Equal(t, "ghl-contact-9", output.ContactID)
	assert.Equal(t, "appt-1", output.AppointmentID)
	assert.Equal(t, "2026-03-15T14:00:00Z", output.AppointmentTime)
	assert.Contains(t, output.Message, "for 2026-03-15 at 2pm")
	assert.Contains(t, output.Message, "mary@example.com")

	crm.AssertExpectations(t)
}

func TestBookCallWithoutPreferredDate(t *testing.T) {
	crm := new(MockCRMGateway)

	crm.On("UpsertContactByPhone", mock.Anything, mock.Anything).Return(&gohighlevel.Contact{ID: "c1"}, nil)
	// Sem data/hora, o agendamento cai no padrão: dia seguinte às 14h.
	crm.On("CreateAppointment", mock.Anything, mock.MatchedBy(func(input gohighlevel.AppointmentInput) bool {
		return input.StartTime == "2026-03-11T14:00:00Z"
	})).Return(&gohighlevel.Appointment{}, nil)

	uc := usecase.NewBookCallUseCase(crm)
	uc.Now = fixedNow

	output, err := uc.Execute(context.Background(), usecase.BookCallInput{
		Name:  "Madonna",
		Phone: "555",
	})

	assert.NoError(t, err)
	assert.Equal(t, "created", output.AppointmentID)
	assert.Equal(t, "2026-03-11T14:00:00Z", output.AppointmentTime)
	assert.NotContains(t, output.Message, " for ")
	assert.Contains(t, output.Message, "the email we have on file")
}

func TestBookCallMissingFields(t *testing.T) {
	uc := usecase.NewBookCallUseCase(new(MockCRMGateway))

	for _, input := range []usecase.BookCallInput{
		{Phone: "555"},
		{Name: "John"},
		{},
	} {
		output, err := uc.Execute(context.Background(), input)

		assert.Nil(t, output)
		assert.True(t, usecase.IsDomainError(err))
		assert.Equal(t, "I need your name and phone number to book the appointment.", err.Error())
	}
}

func TestBookCallContactFailurePropagates(t *testing.T) {
	crm := new(MockCRMGateway)
	crm.On("UpsertContactByPhone", mock.Anything, mock.Anything).Return(nil, errors.New("ghl outage"))

	uc := usecase.NewBookCallUseCase(crm)
	uc.Now = fixedNow

	output, err := uc.Execute(context.Background(), usecase.BookCallInput{Name: "John", Phone: "555"})

	assert.Nil(t, output)
	assert.Error(t, err)
	assert.False(t, usecase.IsDomainError(err))
	crm.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}

func TestBookCallWithoutCRMConfigured(t *testing.T) {
	uc := usecase.NewBookCallUseCase(nil)

	output, err := uc.Execute(context.Background(), usecase.BookCallInput{Name: "John", Phone: "555"})

	assert.Nil(t, output)
	assert.True(t, usecase.IsTechnicalError(err))
}
