package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/advancedmkt/leads-api/internal/entity"
	"github.com/advancedmkt/leads-api/internal/infra/http/middleware"
	"github.com/advancedmkt/leads-api/internal/infra/integration/airwallex"
	"github.com/advancedmkt/leads-api/internal/infra/integration/gohighlevel"
	"github.com/advancedmkt/leads-api/internal/infra/queue"
)

const leadSource = "Advanced Marketing Landing Page"

// Valor estimado da oportunidade por faixa de orçamento. Faixa desconhecida
// ou ausente cai no valor médio.
var opportunityValues = map[string]int{
	"1000-2500": 1500,
	"2500-5000": 3500,
	"5000+":     7500,
	"not-sure":  2500,
}

const defaultOpportunityValue = 2500

func OpportunityValue(budget string) int {
	if v, ok := opportunityValues[budget]; ok {
		return v
	}
	return defaultOpportunityValue
}

type SubmitLeadInput struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Budget  string `json:"budget"`
	Project string `json:"project"`
}

type SubmitLeadOutput struct {
	Success          bool    `json:"success"`
	Message          string  `json:"message"`
	LeadID           int64   `json:"lead_id"`
	GHLContactID     *string `json:"ghl_contact_id"`
	GHLOpportunityID *string `json:"ghl_opportunity_id"`
	PaymentURL       *string `json:"payment_url"`
	PaymentRequired  bool    `json:"payment_required"`
}

// SubmitLeadUseCase: grava o lead e dispara as integrações opcionais.
// Gateway nil = integração desligada por configuração. Só a gravação no
// banco é obrigatória; o resto é best-effort e nunca derruba a request.
type SubmitLeadUseCase struct {
	Repo            entity.LeadRepositoryInterface
	CRM             CRMGateway
	PipelineEnabled bool
	Payment         PaymentGateway
	Producer        QueueProducerInterface
}

func NewSubmitLeadUseCase(
	repo entity.LeadRepositoryInterface,
	crm CRMGateway,
	pipelineEnabled bool,
	payment PaymentGateway,
	producer QueueProducerInterface,
) *SubmitLeadUseCase {
	return &SubmitLeadUseCase{
		Repo:            repo,
		CRM:             crm,
		PipelineEnabled: pipelineEnabled,
		Payment:         payment,
		Producer:        producer,
	}
}

func (uc *SubmitLeadUseCase) Execute(ctx context.Context, input SubmitLeadInput) (*SubmitLeadOutput, error) {
	validationErrors := ValidateSubmitLeadInput(input)
	if len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "Name, email, and phone are required (missing: " + joinFields(validationErrors) + ")",
		}
	}

	lead := &entity.Lead{
		Name:           input.Name,
		Company:        input.Company,
		Email:          input.Email,
		Phone:          input.Phone,
		Budget:         input.Budget,
		ProjectDetails: input.Project,
	}

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist lead: " + err.Error(),
		}
	}
	middleware.RecordLeadCaptured("landing-page")

	contact := uc.createContact(ctx, input)
	opportunity := uc.createOpportunity(ctx, contact, input)
	link := uc.createPaymentLink(ctx, lead)

	uc.publishCaptured(ctx, lead)

	message := "Thank you! We'll be in touch within 24 hours."
	if link != nil {
		message = "Please complete your $100 consultation fee to secure your meeting slot."
	}

	var paymentURL *string
	if link != nil {
		paymentURL = &link.URL
	}

	return &SubmitLeadOutput{
		Success:          true,
		Message:          message,
		LeadID:           lead.ID,
		GHLContactID:     contact.IDOrNil(),
		GHLOpportunityID: opportunity.IDOrNil(),
		PaymentURL:       paymentURL,
		PaymentRequired:  link != nil,
	}, nil
}

func (uc *SubmitLeadUseCase) createContact(ctx context.Context, input SubmitLeadInput) IntegrationResult {
	if uc.CRM == nil {
		log.Println("⚠️ GHL desligado - sem credenciais")
		return IntegrationResult{}
	}

	first, last := entity.SplitName(input.Name)

	budgetTag := "budget-unknown"
	if input.Budget != "" {
		budgetTag = "budget-" + input.Budget
	}

	budgetField := input.Budget
	if budgetField == "" {
		budgetField = "Not specified"
	}
	projectField := input.Project
	if projectField == "" {
		projectField = "Not provided"
	}

	contact, err := uc.CRM.CreateContact(ctx, gohighlevel.ContactInput{
		FirstName:   first,
		LastName:    last,
		Email:       input.Email,
		Phone:       input.Phone,
		CompanyName: input.Company,
		Source:      leadSource,
		Tags:        []string{"web-design-lead", "pending-payment", budgetTag},
		CustomFields: []gohighlevel.CustomField{
			{Key: "budget", Value: budgetField},
			{Key: "project_details", Value: projectField},
		},
	})
	if err != nil {
		log.Printf("❌ GHL: erro ao criar contato: %v", err)
		middleware.RecordIntegrationError("gohighlevel")
		return IntegrationResult{Err: err}
	}

	return IntegrationResult{ID: contact.ID}
}

func (uc *SubmitLeadUseCase) createOpportunity(ctx context.Context, contact IntegrationResult, input SubmitLeadInput) IntegrationResult {
	if uc.CRM == nil || !uc.PipelineEnabled || !contact.OK() {
		return IntegrationResult{}
	}

	first, last := entity.SplitName(input.Name)

	id, err := uc.CRM.CreateOpportunity(ctx, gohighlevel.OpportunityInput{
		Name:          strings.TrimSpace(fmt.Sprintf("Advanced Marketing - %s %s", first, last)),
		ContactID:     contact.ID,
		MonetaryValue: OpportunityValue(input.Budget),
	})
	if err != nil {
		log.Printf("❌ GHL: erro ao criar oportunidade: %v", err)
		middleware.RecordIntegrationError("gohighlevel")
		return IntegrationResult{Err: err}
	}

	return IntegrationResult{ID: id}
}

func (uc *SubmitLeadUseCase) createPaymentLink(ctx context.Context, lead *entity.Lead) *airwallex.PaymentLink {
	if uc.Payment == nil {
		log.Println("⚠️ Airwallex desligado - sem credenciais")
		return nil
	}

	first, last := entity.SplitName(lead.Name)

	link, err := uc.Payment.CreatePaymentLink(ctx, airwallex.PaymentLinkInput{
		Reference: fmt.Sprintf("LEAD-%d", lead.ID),
		FirstName: first,
		LastName:  last,
		Email:     lead.Email,
	})
	if err != nil {
		log.Printf("❌ Airwallex: erro ao criar link: %v", err)
		middleware.RecordIntegrationError("airwallex")
		return nil
	}

	middleware.RecordPaymentLink()
	return link
}

func (uc *SubmitLeadUseCase) publishCaptured(ctx context.Context, lead *entity.Lead) {
	if uc.Producer == nil {
		return
	}

	err := uc.Producer.PublishLeadCaptured(ctx, queue.LeadCapturedPayload{
		EventID:        uuid.New().String(),
		LeadID:         lead.ID,
		Name:           lead.Name,
		Company:        lead.Company,
		Email:          lead.Email,
		Phone:          lead.Phone,
		Budget:         lead.Budget,
		ProjectDetails: lead.ProjectDetails,
		Source:         leadSource,
		CapturedAt:     lead.CreatedAt,
	})
	if err != nil {
		log.Printf("❌ Fila: erro ao publicar lead capturado: %v", err)
		middleware.RecordIntegrationError("rabbitmq")
	}
}
