package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/advancedmkt/leads-api/internal/config"
	"github.com/advancedmkt/leads-api/internal/infra/database"
	"github.com/advancedmkt/leads-api/internal/infra/http/handlers"
	"github.com/advancedmkt/leads-api/internal/infra/integration/airwallex"
	"github.com/advancedmkt/leads-api/internal/infra/integration/gohighlevel"
	"github.com/advancedmkt/leads-api/internal/infra/mail"
	"github.com/advancedmkt/leads-api/internal/infra/queue"
	"github.com/advancedmkt/leads-api/internal/usecase"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Banco indisponível: %v", err)
	}
	defer db.Close()

	leadRepo := database.NewLeadRepository(db)

	// Integrações opcionais: sem credencial, a variável fica nil e o use
	// case pula a etapa.
	var crm usecase.CRMGateway
	if cfg.GHLEnabled() {
		client := gohighlevel.NewClient(cfg.GHLAPIURL, cfg.GHLAPIKey, cfg.GHLLocationID)
		client.PipelineID = cfg.GHLPipelineID
		client.PipelineStageID = cfg.GHLStageNewLead
		client.CalendarID = cfg.GHLCalendarID
		crm = client
	} else {
		log.Println("⚠️ GHL desligado - sem credenciais")
	}

	var payment usecase.PaymentGateway
	if cfg.AirwallexEnabled() {
		payment = airwallex.NewClient(cfg.AirwallexAPIURL, cfg.AirwallexClientID, cfg.AirwallexAPIKey)
	} else {
		log.Println("⚠️ Airwallex desligado - sem credenciais")
	}

	var producer usecase.QueueProducerInterface
	if cfg.QueueEnabled() {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			log.Fatalf("❌ RabbitMQ indisponível: %v", err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		if cfg.MailEnabled() {
			sender := mail.NewSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.SalesInbox)
			worker := queue.NewWorker(rabbitMQ.Ch, sender)
			go worker.Start(queue.QueueName)
		} else {
			log.Println("⚠️ SMTP desligado - fila sem consumidor de notificação")
		}
	} else {
		log.Println("⚠️ RabbitMQ desligado - sem fan-out de eventos")
	}

	submitLeadUC := usecase.NewSubmitLeadUseCase(leadRepo, crm, cfg.PipelineEnabled(), payment, producer)
	bookCallUC := usecase.NewBookCallUseCase(crm)

	router := handlers.NewRouter(
		handlers.NewLeadHandler(submitLeadUC),
		handlers.NewBookingHandler(bookCallUC),
		handlers.NewHealthHandler(db, cfg),
	)

	log.Printf("🔥 Leads API rodando em %s", cfg.ServerAddr)
	if err := http.ListenAndServe(cfg.ServerAddr, router); err != nil {
		log.Fatal(err)
	}
}
