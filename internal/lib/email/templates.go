package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/pkg/errors"
)

// Template names an HTML file under templates/, without extension.
type Template string

const (
	TemplateAtletaCadastrado Template = "atleta_cadastrado"
)

//go:embed templates/*.html
var templateFS embed.FS

// RenderTemplate executes the named template with data and returns the HTML body.
func RenderTemplate(name Template, data any) (string, error) {
	tmpl, err := template.ParseFS(templateFS, fmt.Sprintf("templates/%s.html", name))
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse email template %s", name)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", name)
	}

	return body.String(), nil
}
