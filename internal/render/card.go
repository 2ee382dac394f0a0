package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"semantic_router_site/internal/models"
)

// CardProps is the input of a single card render.
type CardProps struct {
	Publication models.PublicationRecord
}

// CardRenderer turns one publication into its card markup.
type CardRenderer struct {
	styles Styles
	tmpl   *template.Template
}

func NewCardRenderer(styles Styles) (*CardRenderer, error) {
	tmpl, err := parseWithStyles(styles, "templates/card.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse card template: %w", err)
	}
	return &CardRenderer{styles: styles, tmpl: tmpl}, nil
}

// Render writes the card for props.Publication to w.
func (r *CardRenderer) Render(w io.Writer, props CardProps) error {
	if err := r.tmpl.ExecuteTemplate(w, "card", props); err != nil {
		return fmt.Errorf("failed to render publication %d: %w", props.Publication.ID, err)
	}
	return nil
}

// HTML renders the card into a fragment that can be embedded in another template.
func (r *CardRenderer) HTML(props CardProps) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, props); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func parseWithStyles(styles Styles, patterns ...string) (*template.Template, error) {
	funcs := template.FuncMap{
		"class":     styles.Class,
		"linkClass": styles.LinkClass,
	}
	return template.New("").Funcs(funcs).ParseFS(templateFS, patterns...)
}
