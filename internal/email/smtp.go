package email

import (
	"context"
	"fmt"
	"net"
	"time"

	gomail "github.com/wneessen/go-mail"

	"refuge_backend/platform/config"
)

// SMTPSender implements Sender over a direct SMTP connection via go-mail.
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
}

// NewSMTPSender creates a new SMTPSender from the email configuration.
func NewSMTPSender(cfg config.EmailConfig) *SMTPSender {
	return &SMTPSender{
		host:      cfg.GetSMTPHost(),
		port:      cfg.GetSMTPPort(),
		username:  cfg.GetSMTPUsername(),
		password:  cfg.GetSMTPPassword(),
		fromName:  cfg.GetEmailFromName(),
		fromEmail: cfg.GetEmailFromAddress(),
	}
}

func (s *SMTPSender) send(ctx context.Context, toEmail, subject, htmlContent string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlContent)

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
		gomail.WithDialContextFunc(func(dctx context.Context, _ string, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(dctx, "tcp4", addr)
		}),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func (s *SMTPSender) SendApplicationValidatedEmail(ctx context.Context, toEmail, contactName, structureName, portalURL string) error {
	content, err := renderEmailTemplate("application_validated.html", applicationValidatedEmailData{
		baseEmailData: baseEmailData{
			Title:    subjectApplicationValidated,
			Heading:  "Candidature acceptée",
			CTALabel: "Accéder à mon espace exposant",
			CTAURL:   portalURL,
		},
		ContactName:   contactName,
		StructureName: structureName,
	})
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, subjectApplicationValidated, content)
}

func (s *SMTPSender) SendApplicationRefusedEmail(ctx context.Context, toEmail, contactName, structureName, refusalMessage string) error {
	content, err := renderEmailTemplate("application_refused.html", applicationRefusedEmailData{
		baseEmailData: baseEmailData{
			Title:   subjectApplicationRefused,
			Heading: "Candidature non retenue",
		},
		ContactName:    contactName,
		StructureName:  structureName,
		RefusalMessage: refusalMessage,
	})
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, subjectApplicationRefused, content)
}

func (s *SMTPSender) SendAnimalAssignedEmail(ctx context.Context, toEmail, managerName, animalName, animalURL string) error {
	subject := fmt.Sprintf(subjectAnimalAssignedFmt, animalName)
	content, err := renderEmailTemplate("animal_assigned.html", animalAssignedEmailData{
		baseEmailData: baseEmailData{
			Title:    subject,
			Heading:  "Nouvel animal référent",
			CTALabel: "Voir la fiche",
			CTAURL:   animalURL,
		},
		ManagerName: managerName,
		AnimalName:  animalName,
	})
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, subject, content)
}

var _ Sender = (*SMTPSender)(nil)
