package airwallex

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreatePaymentLinkLogsInFirst(t *testing.T) {
	logins := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/authentication/login":
			logins++
			assert.Equal(t, "client-1", r.Header.Get("x-client-id"))
			assert.Equal(t, "key-1", r.Header.Get("x-api-key"))
			json.NewEncoder(w).Encode(map[string]string{"token": "session-token"})

		case "/api/v1/pa/payment_links/create":
			assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))

			var payload map[string]interface{}
			json.NewDecoder(r.Body).Decode(&payload)
			assert.Equal(t, float64(100), payload["amount"])
			assert.Equal(t, "USD", payload["currency"])
			assert.Equal(t, "LEAD-42", payload["reference"])
			assert.Equal(t, false, payload["reusable"])

			shopper := payload["shopper"].(map[string]interface{})
			assert.Equal(t, "John", shopper["first_name"])

			json.NewEncoder(w).Encode(map[string]string{
				"id":  "plink-1",
				"url": "https://checkout.airwallex.com/abc",
			})

		default:
			t.Errorf("request inesperada: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "client-1", "key-1")
	link, err := client.CreatePaymentLink(context.Background(), PaymentLinkInput{
		Reference: "LEAD-42",
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, "plink-1", link.ID)
	assert.Equal(t, "https://checkout.airwallex.com/abc", link.URL)
	assert.Equal(t, 1, logins)
}

func TestTokenIsReusedAcrossCalls(t *testing.T) {
	logins := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/authentication/login" {
			logins++
			json.NewEncoder(w).Encode(map[string]string{"token": "session-token"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"id": "plink", "url": "https://x"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "client-1", "key-1")

	for i := 0; i < 3; i++ {
		_, err := client.CreatePaymentLink(context.Background(), PaymentLinkInput{Reference: "LEAD-1"})
		assert.NoError(t, err)
	}

	assert.Equal(t, 1, logins)
}

func TestLoginFailureFailsTheCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "invalid api key"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "client-1", "bad-key")
	link, err := client.CreatePaymentLink(context.Background(), PaymentLinkInput{Reference: "LEAD-1"})

	assert.Nil(t, link)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
