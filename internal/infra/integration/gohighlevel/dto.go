package gohighlevel

// --- DTOs de entrada (o que os use cases nos entregam) ---

type ContactInput struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	CompanyName  string
	Source       string
	Tags         []string
	CustomFields []CustomField
}

type CustomField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type OpportunityInput struct {
	Name          string
	ContactID     string
	MonetaryValue int
}

type AppointmentInput struct {
	ContactID string
	Title     string
	StartTime string // RFC3339
	EndTime   string // RFC3339
	Notes     string
}

// --- Payloads internos (o que mandamos pro GHL) ---

type contactRequest struct {
	FirstName    string        `json:"firstName"`
	LastName     string        `json:"lastName"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	CompanyName  string        `json:"companyName,omitempty"`
	LocationID   string        `json:"locationId"`
	Source       string        `json:"source"`
	Tags         []string      `json:"tags,omitempty"`
	CustomFields []CustomField `json:"customFields,omitempty"`
}

type opportunityRequest struct {
	PipelineID      string `json:"pipelineId"`
	LocationID      string `json:"locationId"`
	Name            string `json:"name"`
	PipelineStageID string `json:"pipelineStageId"`
	Status          string `json:"status"`
	ContactID       string `json:"contactId"`
	MonetaryValue   int    `json:"monetaryValue"`
	Source          string `json:"source"`
}

type appointmentRequest struct {
	LocationID        string `json:"locationId"`
	CalendarID        string `json:"calendarId"`
	ContactID         string `json:"contactId"`
	Title             string `json:"title"`
	AppointmentStatus string `json:"appointmentStatus"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	Notes             string `json:"notes"`
}

// --- Responses (o que o GHL devolve) ---

type Contact struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type Appointment struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type contactResponse struct {
	Contact Contact `json:"contact"`
}

type contactSearchResponse struct {
	Contacts []Contact `json:"contacts"`
}

type opportunityResponse struct {
	Opportunity struct {
		ID string `json:"id"`
	} `json:"opportunity"`
}

type appointmentResponse struct {
	Appointment *Appointment `json:"appointment"`
	ID          string       `json:"id"`
	StartTime   string       `json:"startTime"`
	EndTime     string       `json:"endTime"`
}
