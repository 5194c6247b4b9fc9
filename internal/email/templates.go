package email

import (
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TemplateManager keeps parsed templates keyed by name.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}

	// Built-in fallbacks so mail still goes out when the templates
	// directory is missing or incomplete.
	for name, body := range defaultTemplates {
		_ = tm.AddTemplate(name, body)
	}

	return tm
}

func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

func (tm *TemplateManager) AddTemplate(name, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}

// LoadTemplates walks dirPath and registers every .html file under its
// base name, overriding built-ins of the same name.
func (tm *TemplateManager) LoadTemplates(dirPath string) error {
	return filepath.WalkDir(dirPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".html") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", path, err)
		}

		name := strings.TrimSuffix(d.Name(), ".html")
		return tm.AddTemplate(name, string(content))
	})
}

var defaultTemplates = map[string]string{
	"account_verification": `<html><body>
<h2>Welcome to Kirismor</h2>
<p>Please confirm your email address to activate your account:</p>
<p><a href="{{.VerifyURL}}">Activate account</a></p>
<p>The link expires in {{.TTLHours}} hours. If you did not register, ignore this message.</p>
</body></html>`,

	"feedback_verification": `<html><body>
<h2>Confirm your comment</h2>
<p>You left a comment on a job posting. It will be published once you confirm your email:</p>
<p><a href="{{.VerifyURL}}">Publish my comment</a></p>
<p>If you did not leave a comment, ignore this message.</p>
</body></html>`,
}
