package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/advancedmkt/leads-api/internal/infra/queue"
)

type Sender struct {
	Host       string
	Port       int
	User       string
	Password   string
	SalesInbox string
}

func NewSender(host string, port int, user, password, salesInbox string) *Sender {
	return &Sender{
		Host:       host,
		Port:       port,
		User:       user,
		Password:   password,
		SalesInbox: salesInbox,
	}
}

// Template embutido: sem dependência de arquivo em runtime.
var leadTemplate = template.Must(template.New("lead").Parse(`
<h2>New lead: {{.Name}}</h2>
<ul>
  <li><strong>Email:</strong> {{.Email}}</li>
  <li><strong>Phone:</strong> {{.Phone}}</li>
  {{if .Company}}<li><strong>Company:</strong> {{.Company}}</li>{{end}}
  {{if .Budget}}<li><strong>Budget:</strong> {{.Budget}}</li>{{end}}
  {{if .ProjectDetails}}<li><strong>Project:</strong> {{.ProjectDetails}}</li>{{end}}
</ul>
<p>Source: {{.Source}} (lead #{{.LeadID}})</p>
`))

// SendLeadNotification avisa o time de vendas que caiu um lead novo.
func (s *Sender) SendLeadNotification(payload queue.LeadCapturedPayload) error {
	var body bytes.Buffer
	if err := leadTemplate.Execute(&body, payload); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "no-reply@advancedmarketing.com")
	m.SetHeader("To", s.SalesInbox)
	m.SetHeader("Subject", fmt.Sprintf("🔥 New lead #%d: %s", payload.LeadID, payload.Name))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
