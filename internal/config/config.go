package config

import (
	"os"
	"strconv"
)

// Config reúne toda a configuração vinda do ambiente. Cada integração
// opcional é ligada pela presença das suas credenciais: faltando, o fluxo
// segue sem ela em vez de falhar.
type Config struct {
	ServerAddr  string
	DatabaseURL string

	// GoHighLevel CRM
	GHLAPIURL       string
	GHLAPIKey       string
	GHLLocationID   string
	GHLPipelineID   string
	GHLStageNewLead string
	GHLCalendarID   string

	// Airwallex (link de pagamento)
	AirwallexAPIURL   string
	AirwallexClientID string
	AirwallexAPIKey   string

	// SMTP (notificação para o time de vendas)
	MailHost   string
	MailPort   int
	MailUser   string
	MailPass   string
	SalesInbox string

	// RabbitMQ (fan-out de eventos de lead)
	RabbitMQURL string
}

func Load() *Config {
	return &Config{
		ServerAddr:  getEnv("SERVER_ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		GHLAPIURL:       getEnv("GHL_API_URL", "https://services.leadconnectorhq.com"),
		GHLAPIKey:       os.Getenv("GHL_API_KEY"),
		GHLLocationID:   os.Getenv("GHL_LOCATION_ID"),
		GHLPipelineID:   os.Getenv("GHL_PIPELINE_ID"),
		GHLStageNewLead: os.Getenv("GHL_STAGE_NEW_LEAD"),
		GHLCalendarID:   os.Getenv("GHL_CALENDAR_ID"),

		AirwallexAPIURL:   getEnv("AIRWALLEX_API_URL", "https://api.airwallex.com"),
		AirwallexClientID: os.Getenv("AIRWALLEX_CLIENT_ID"),
		AirwallexAPIKey:   os.Getenv("AIRWALLEX_API_KEY"),

		MailHost:   os.Getenv("MAIL_HOST"),
		MailPort:   getEnvInt("MAIL_PORT", 587),
		MailUser:   os.Getenv("MAIL_USER"),
		MailPass:   os.Getenv("MAIL_PASS"),
		SalesInbox: os.Getenv("SALES_INBOX"),

		RabbitMQURL: os.Getenv("RABBITMQ_URL"),
	}
}

// GHLEnabled: contato e oportunidade só são tentados com chave + location.
func (c *Config) GHLEnabled() bool {
	return c.GHLAPIKey != "" && c.GHLLocationID != ""
}

// PipelineEnabled: a oportunidade exige um pipeline configurado.
func (c *Config) PipelineEnabled() bool {
	return c.GHLEnabled() && c.GHLPipelineID != ""
}

// CalendarEnabled: agendamento precisa do calendário do GHL.
func (c *Config) CalendarEnabled() bool {
	return c.GHLEnabled() && c.GHLCalendarID != ""
}

func (c *Config) AirwallexEnabled() bool {
	return c.AirwallexClientID != "" && c.AirwallexAPIKey != ""
}

func (c *Config) MailEnabled() bool {
	return c.MailHost != "" && c.SalesInbox != ""
}

func (c *Config) QueueEnabled() bool {
	return c.RabbitMQURL != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
