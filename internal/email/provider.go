package email

// TemplateData carries the values rendered into an email template.
type TemplateData map[string]interface{}

// Provider sends transactional mail. Implementations must be safe for
// concurrent use since services send in goroutines.
type Provider interface {
	Send(to []string, subject, htmlBody string) error
	SendTemplate(to []string, subject, templateName string, data TemplateData) error

	// SendAccountVerification mails the activation link for a new account.
	SendAccountVerification(to, token string) error

	// SendFeedbackVerification mails the confirm link for a guest comment.
	SendFeedbackVerification(to, token string) error

	Close() error
}

// TemplateRenderer renders a named template with data.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name, templateStr string) error
	LoadTemplates(dirPath string) error
}
