package airwallex

// Valores fixos da taxa de consultoria cobrada no submit do lead.
const (
	ConsultationFeeAmount = 100
	ConsultationCurrency  = "USD"
	ConsultationTitle     = "Web Design Consultation Fee"
	ConsultationDesc      = "Non-refundable $100 consultation fee to schedule your discovery call with Advanced Marketing."
)

type PaymentLinkInput struct {
	Reference string // ex: "LEAD-42"
	FirstName string
	LastName  string
	Email     string
}

type PaymentLink struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// --- Payloads internos ---

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

type paymentLinkRequest struct {
	Amount      int     `json:"amount"`
	Currency    string  `json:"currency"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Reusable    bool    `json:"reusable"`
	Reference   string  `json:"reference"`
	Shopper     shopper `json:"shopper"`

	CollectableShopperInfo collectableShopperInfo `json:"collectable_shopper_info"`
}

type shopper struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type collectableShopperInfo struct {
	PhoneNumber     bool `json:"phone_number"`
	ShippingAddress bool `json:"shipping_address"`
}
