package email

import (
	"fmt"

	"kirismor_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider delivers mail through an SMTP relay via gomail.
type SMTPProvider struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
	siteURL  string
	ttlHours int
	renderer TemplateRenderer
}

func NewSMTPProvider(cfg *config.Config, renderer TemplateRenderer) (*SMTPProvider, error) {
	if cfg.Email.SMTPHost == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if cfg.Email.SMTPPort <= 0 || cfg.Email.SMTPPort > 65535 {
		return nil, fmt.Errorf("invalid SMTP port: %d", cfg.Email.SMTPPort)
	}

	return &SMTPProvider{
		dialer:   gomail.NewDialer(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPUsername, cfg.Email.SMTPPassword),
		from:     cfg.Email.FromEmail,
		fromName: cfg.Email.FromName,
		siteURL:  cfg.Site.URL,
		ttlHours: cfg.Tokens.VerificationTTLHours,
		renderer: renderer,
	}, nil
}

func (p *SMTPProvider) Send(to []string, subject, htmlBody string) error {
	m := gomail.NewMessage()
	if p.fromName != "" {
		m.SetAddressHeader("From", p.from, p.fromName)
	} else {
		m.SetHeader("From", p.from)
	}
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (p *SMTPProvider) SendTemplate(to []string, subject, templateName string, data TemplateData) error {
	if p.renderer == nil {
		return fmt.Errorf("template renderer is not configured")
	}

	htmlBody, err := p.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	return p.Send(to, subject, htmlBody)
}

func (p *SMTPProvider) SendAccountVerification(to, token string) error {
	data := TemplateData{
		"VerifyURL": fmt.Sprintf("%s/api/auth/verify?token=%s", p.siteURL, token),
		"TTLHours":  p.ttlHours,
	}
	return p.SendTemplate([]string{to}, "Activate your account", "account_verification", data)
}

func (p *SMTPProvider) SendFeedbackVerification(to, token string) error {
	data := TemplateData{
		"VerifyURL": fmt.Sprintf("%s/api/feedback/verify?token=%s", p.siteURL, token),
	}
	return p.SendTemplate([]string{to}, "Confirm your comment", "feedback_verification", data)
}

func (p *SMTPProvider) Close() error {
	return nil
}
