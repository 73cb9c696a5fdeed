package gohighlevel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

const apiVersion = "2021-07-28"

type Client struct {
	baseURL    string
	apiKey     string
	locationID string

	PipelineID      string
	PipelineStageID string
	CalendarID      string

	http *http.Client
}

func NewClient(baseURL, apiKey, locationID string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		locationID: locationID,
		http:       &http.Client{Timeout: 15 * time.Second},
	}
}

// do executa a request autenticada e devolve o corpo bruto.
// Status >= 400 vira erro com a mensagem do provedor; resposta que não é
// JSON é tolerada (o corpo volta do mesmo jeito, quem chamou decide).
func (c *Client) do(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar json: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro na conexão com GHL: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("api GHL rejeitou (status %d): %s", resp.StatusCode, apiErr.Message)
		}
		return nil, fmt.Errorf("api GHL rejeitou (status %d): %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// SearchContactsByPhone busca contatos pelo telefone exatamente como veio do
// formulário. O número NÃO é normalizado antes da busca ("+1 555..." e
// "555..." não casam entre si); a deduplicação fica por conta do GHL.
func (c *Client) SearchContactsByPhone(ctx context.Context, phone string) ([]Contact, error) {
	path := fmt.Sprintf("/contacts/search?locationId=%s&phone=%s", c.locationID, url.QueryEscape(phone))

	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var result contactSearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		// Corpo não-JSON: trata como nenhum resultado.
		return nil, nil
	}

	return result.Contacts, nil
}

func (c *Client) CreateContact(ctx context.Context, input ContactInput) (*Contact, error) {
	body, err := c.do(ctx, http.MethodPost, "/contacts/", c.contactPayload(input))
	if err != nil {
		return nil, err
	}

	var result contactResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("erro ao ler resposta do GHL: %w", err)
	}

	log.Printf("✅ GHL: contato criado %s", result.Contact.ID)
	return &result.Contact, nil
}

func (c *Client) UpdateContact(ctx context.Context, id string, input ContactInput) error {
	_, err := c.do(ctx, http.MethodPut, "/contacts/"+id, c.contactPayload(input))
	return err
}

// UpsertContactByPhone: se o telefone já tem contato, atualiza o primeiro
// match e devolve ele; senão cria um novo.
func (c *Client) UpsertContactByPhone(ctx context.Context, input ContactInput) (*Contact, error) {
	if input.Phone != "" {
		existing, err := c.SearchContactsByPhone(ctx, input.Phone)
		if err == nil && len(existing) > 0 {
			contact := existing[0]
			log.Printf("📱 GHL: contato existente encontrado %s", contact.ID)
			if err := c.UpdateContact(ctx, contact.ID, input); err != nil {
				return nil, err
			}
			return &contact, nil
		}
	}

	return c.CreateContact(ctx, input)
}

func (c *Client) CreateOpportunity(ctx context.Context, input OpportunityInput) (string, error) {
	payload := opportunityRequest{
		PipelineID:      c.PipelineID,
		LocationID:      c.locationID,
		Name:            input.Name,
		PipelineStageID: c.PipelineStageID,
		Status:          "open",
		ContactID:       input.ContactID,
		MonetaryValue:   input.MonetaryValue,
		Source:          "Landing Page",
	}

	body, err := c.do(ctx, http.MethodPost, "/opportunities/", payload)
	if err != nil {
		return "", err
	}

	var result opportunityResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("erro ao ler resposta do GHL: %w", err)
	}

	log.Printf("✅ GHL: oportunidade criada %s", result.Opportunity.ID)
	return result.Opportunity.ID, nil
}

func (c *Client) CreateAppointment(ctx context.Context, input AppointmentInput) (*Appointment, error) {
	payload := appointmentRequest{
		LocationID:        c.locationID,
		CalendarID:        c.CalendarID,
		ContactID:         input.ContactID,
		Title:             input.Title,
		AppointmentStatus: "confirmed",
		StartTime:         input.StartTime,
		EndTime:           input.EndTime,
		Notes:             input.Notes,
	}

	body, err := c.do(ctx, http.MethodPost, "/appointments/", payload)
	if err != nil {
		return nil, err
	}

	var result appointmentResponse
	if err := json.Unmarshal(body, &result); err != nil {
		// O endpoint às vezes devolve corpo que não é JSON; o agendamento
		// foi aceito (status 2xx), então seguimos sem os detalhes.
		return &Appointment{}, nil
	}

	if result.Appointment != nil {
		return result.Appointment, nil
	}
	return &Appointment{ID: result.ID, StartTime: result.StartTime, EndTime: result.EndTime}, nil
}

func (c *Client) contactPayload(input ContactInput) contactRequest {
	return contactRequest{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		CompanyName:  input.CompanyName,
		LocationID:   c.locationID,
		Source:       input.Source,
		Tags:         input.Tags,
		CustomFields: input.CustomFields,
	}
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Version", apiVersion)
}
