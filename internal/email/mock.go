package email

import "sync"

// SentMail records one delivery made through the MockProvider.
type SentMail struct {
	To       []string
	Subject  string
	Template string
	Token    string
}

// MockProvider records sends instead of delivering. Used in tests and
// when no SMTP relay is configured.
type MockProvider struct {
	mu   sync.Mutex
	Sent []SentMail
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Send(to []string, subject, htmlBody string) error {
	p.record(SentMail{To: to, Subject: subject})
	return nil
}

func (p *MockProvider) SendTemplate(to []string, subject, templateName string, data TemplateData) error {
	p.record(SentMail{To: to, Subject: subject, Template: templateName})
	return nil
}

func (p *MockProvider) SendAccountVerification(to, token string) error {
	p.record(SentMail{To: []string{to}, Template: "account_verification", Token: token})
	return nil
}

func (p *MockProvider) SendFeedbackVerification(to, token string) error {
	p.record(SentMail{To: []string{to}, Template: "feedback_verification", Token: token})
	return nil
}

func (p *MockProvider) Close() error {
	return nil
}

// LastSent returns the most recent delivery, or nil.
func (p *MockProvider) LastSent() *SentMail {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.Sent) == 0 {
		return nil
	}
	last := p.Sent[len(p.Sent)-1]
	return &last
}

func (p *MockProvider) record(mail SentMail) {
	p.mu.Lock()
	p.Sent = append(p.Sent, mail)
	p.mu.Unlock()
}
