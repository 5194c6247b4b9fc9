package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltInTemplatesRender(t *testing.T) {
	tm := NewTemplateManager()

	html, err := tm.Render("account_verification", TemplateData{
		"VerifyURL": "https://example.com/api/auth/verify?token=abc",
		"TTLHours":  48,
	})
	require.NoError(t, err)
	assert.Contains(t, html, "https://example.com/api/auth/verify?token=abc")
	assert.Contains(t, html, "48 hours")

	html, err = tm.Render("feedback_verification", TemplateData{
		"VerifyURL": "https://example.com/api/feedback/verify?token=def",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "https://example.com/api/feedback/verify?token=def")
}

func TestRenderUnknownTemplate(t *testing.T) {
	tm := NewTemplateManager()

	_, err := tm.Render("no_such_template", TemplateData{})
	assert.Error(t, err)
}

func TestAddTemplateOverrides(t *testing.T) {
	tm := NewTemplateManager()

	require.NoError(t, tm.AddTemplate("greeting", "<p>Hello {{.Name}}</p>"))

	html, err := tm.Render("greeting", TemplateData{"Name": "Aruzhan"})
	require.NoError(t, err)
	assert.Equal(t, "<p>Hello Aruzhan</p>", html)
}

func TestMockProviderRecordsSends(t *testing.T) {
	p := NewMockProvider()

	require.NoError(t, p.SendAccountVerification("user@test.com", "tok-1"))
	require.NoError(t, p.SendFeedbackVerification("guest@test.com", "tok-2"))

	last := p.LastSent()
	require.NotNil(t, last)
	assert.Equal(t, []string{"guest@test.com"}, last.To)
	assert.Equal(t, "tok-2", last.Token)
}
