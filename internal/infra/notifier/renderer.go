package notifier

import (
	"bytes"
	_ "embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"rentx-api/internal/pkg/errs"
	"rentx-api/internal/usecase/jobs"
	"rentx-api/internal/usecase/shared"

	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var defaultTemplates []byte

type templateSource struct {
	Subject string `yaml:"subject"`
	Text    string `yaml:"text"`
	HTML    string `yaml:"html"`
}

type compiledTemplate struct {
	subject *texttemplate.Template
	text    *texttemplate.Template
	html    *htmltemplate.Template
}

// Renderer turns an email job into a ready-to-send message. Templates are
// parsed once at construction.
type Renderer struct {
	templates map[shared.TemplateKind]compiledTemplate
}

func NewRenderer() (*Renderer, error) {
	return NewRendererFromYAML(defaultTemplates)
}

func NewRendererFromYAML(src []byte) (*Renderer, error) {
	var sources map[string]templateSource
	if err := yaml.Unmarshal(src, &sources); err != nil {
		return nil, errs.Wrap(err, "parse email templates")
	}

	r := &Renderer{templates: make(map[shared.TemplateKind]compiledTemplate, len(sources))}
	for name, s := range sources {
		subject, err := texttemplate.New(name + ".subject").Option("missingkey=zero").Parse(s.Subject)
		if err != nil {
			return nil, errs.Wrapf(err, "parse subject of %s", name)
		}
		text, err := texttemplate.New(name + ".text").Option("missingkey=zero").Parse(s.Text)
		if err != nil {
			return nil, errs.Wrapf(err, "parse text body of %s", name)
		}
		html, err := htmltemplate.New(name + ".html").Option("missingkey=zero").Parse(s.HTML)
		if err != nil {
			return nil, errs.Wrapf(err, "parse html body of %s", name)
		}
		r.templates[shared.TemplateKind(name)] = compiledTemplate{subject: subject, text: text, html: html}
	}
	return r, nil
}

func (r *Renderer) Render(kind shared.TemplateKind, data map[string]any) (jobs.Email, error) {
	t, ok := r.templates[kind]
	if !ok {
		return jobs.Email{}, fmt.Errorf("unknown email template %q", kind)
	}

	var subject, text, html bytes.Buffer
	if err := t.subject.Execute(&subject, data); err != nil {
		return jobs.Email{}, errs.Wrapf(err, "render subject of %s", kind)
	}
	if err := t.text.Execute(&text, data); err != nil {
		return jobs.Email{}, errs.Wrapf(err, "render text body of %s", kind)
	}
	if err := t.html.Execute(&html, data); err != nil {
		return jobs.Email{}, errs.Wrapf(err, "render html body of %s", kind)
	}

	return jobs.Email{
		Subject:  subject.String(),
		TextBody: text.String(),
		HTMLBody: html.String(),
	}, nil
}
