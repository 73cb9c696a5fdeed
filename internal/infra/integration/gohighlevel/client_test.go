package gohighlevel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateContact(t *testing.T) {
	var gotAuth, gotVersion string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotVersion = r.Header.Get("Version")

		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/contacts/", r.URL.Path)

		var payload map[string]interface{}
		json.NewDecoder(r.Body).Decode(&payload)
		assert.Equal(t, "John", payload["firstName"])
		assert.Equal(t, "loc-1", payload["locationId"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"contact": map[string]string{"id": "contact-123", "firstName": "John"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "loc-1")
	contact, err := client.CreateContact(context.Background(), ContactInput{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Phone:     "555",
	})

	assert.NoError(t, err)
	assert.Equal(t, "contact-123", contact.ID)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "2021-07-28", gotVersion)
}

func TestErrorStatusCarriesProviderMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "phone is invalid"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "loc-1")
	_, err := client.CreateContact(context.Background(), ContactInput{FirstName: "John"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "phone is invalid")
	assert.Contains(t, err.Error(), "422")
}

func TestUpsertContactUpdatesFirstMatch(t *testing.T) {
	var updatedID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/contacts/search":
			assert.Equal(t, "+1 555 0100", r.URL.Query().Get("phone"))
			json.NewEncoder(w).Encode(map[string]interface{}{
				"contacts": []map[string]string{
					{"id": "existing-1", "firstName": "Old"},
					{"id": "existing-2"},
				},
			})
		case r.Method == "PUT":
			updatedID = r.URL.Path
			json.NewEncoder(w).Encode(map[string]string{})
		default:
			t.Errorf("request inesperada: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "loc-1")
	contact, err := client.UpsertContactByPhone(context.Background(), ContactInput{
		FirstName: "John",
		Phone:     "+1 555 0100",
	})

	assert.NoError(t, err)
	assert.Equal(t, "existing-1", contact.ID)
	assert.Equal(t, "/contacts/existing-1", updatedID)
}

func TestUpsertContactCreatesWhenNoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/contacts/search":
			json.NewEncoder(w).Encode(map[string]interface{}{"contacts": []map[string]string{}})
		case "/contacts/":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"contact": map[string]string{"id": "new-1"},
			})
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "loc-1")
	contact, err := client.UpsertContactByPhone(context.Background(), ContactInput{Phone: "555"})

	assert.NoError(t, err)
	assert.Equal(t, "new-1", contact.ID)
}

func TestCreateAppointmentToleratesNonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "loc-1")
	client.CalendarID = "cal-1"

	appointment, err := client.CreateAppointment(context.Background(), AppointmentInput{
		ContactID: "c1",
		StartTime: "2026-03-15T14:00:00Z",
		EndTime:   "2026-03-15T14:45:00Z",
	})

	assert.NoError(t, err)
	assert.NotNil(t, appointment)
	assert.Empty(t, appointment.ID)
}

func TestCreateOpportunityUsesPipelineConfig(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		json.NewDecoder(r.Body).Decode(&payload)

		assert.Equal(t, "pipe-1", payload["pipelineId"])
		assert.Equal(t, "stage-1", payload["pipelineStageId"])
		assert.Equal(t, "open", payload["status"])
		assert.Equal(t, float64(3500), payload["monetaryValue"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"opportunity": map[string]string{"id": "opp-1"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "loc-1")
	client.PipelineID = "pipe-1"
	client.PipelineStageID = "stage-1"

	id, err := client.CreateOpportunity(context.Background(), OpportunityInput{
		Name:          "Advanced Marketing - John Doe",
		ContactID:     "c1",
		MonetaryValue: 3500,
	})

	assert.NoError(t, err)
	assert.Equal(t, "opp-1", id)
}
