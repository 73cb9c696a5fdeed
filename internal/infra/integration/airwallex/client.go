package airwallex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"
)

type Client struct {
	baseURL  string
	clientID string
	apiKey   string
	http     *http.Client

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewClient(baseURL, clientID, apiKey string) *Client {
	return &Client{
		baseURL:  baseURL,
		clientID: clientID,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

// ensureToken troca client-id/api-key por um bearer token de sessão.
// O token fica em cache até perto de expirar.
func (c *Client) ensureToken(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Add(30*time.Second).Before(c.tokenExpiry) {
		return nil
	}

	log.Println("🔄 Airwallex: renovando token...")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/authentication/login", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-client-id", c.clientID)
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("erro na conexão com airwallex: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("erro auth airwallex (status %d): %s", resp.StatusCode, string(body))
	}

	var data loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return fmt.Errorf("erro decode auth airwallex: %w", err)
	}

	c.token = data.Token
	c.tokenExpiry = time.Now().Add(25 * time.Minute)
	if exp, err := time.Parse(time.RFC3339, data.ExpiresAt); err == nil {
		c.tokenExpiry = exp
	}

	return nil
}

// CreatePaymentLink cria o link da taxa fixa de consultoria ($100).
func (c *Client) CreatePaymentLink(ctx context.Context, input PaymentLinkInput) (*PaymentLink, error) {
	if err := c.ensureToken(ctx); err != nil {
		return nil, err
	}

	payload := paymentLinkRequest{
		Amount:      ConsultationFeeAmount,
		Currency:    ConsultationCurrency,
		Title:       ConsultationTitle,
		Description: ConsultationDesc,
		Reusable:    false,
		Reference:   input.Reference,
		Shopper: shopper{
			Email:     input.Email,
			FirstName: input.FirstName,
			LastName:  input.LastName,
		},
		CollectableShopperInfo: collectableShopperInfo{
			PhoneNumber:     false,
			ShippingAddress: false,
		},
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar json: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/pa/payment_links/create", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	c.mu.Unlock()
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro na conexão com airwallex: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("api airwallex rejeitou (status %d): %s", resp.StatusCode, string(body))
	}

	var link PaymentLink
	if err := json.NewDecoder(resp.Body).Decode(&link); err != nil {
		return nil, fmt.Errorf("erro ao ler resposta airwallex: %w", err)
	}

	log.Printf("✅ Airwallex: link de pagamento criado %s", link.ID)
	return &link, nil
}
