package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"semantic_router_site/internal/models"
)

const (
	PublicationsTitle       = "🎓 Publications"
	PublicationsSubtitle    = "Discover community-driven latest research contributions in LLM and intelligent routing systems. Our work pushes the boundaries of efficient LLM inference."
	PublicationsMetaTitle   = "Publications"
	PublicationsDescription = "Latest research publications and scientific contributions from the vLLM Semantic Router project"
	PublicationsPath        = "/publications"
)

// PublicationSource is anything that yields publications in display order.
type PublicationSource interface {
	Publications() []models.PublicationRecord
}

// PageRenderer renders the publications page inside a layout.
type PageRenderer struct {
	layout Layout
	cards  *CardRenderer
	tmpl   *template.Template
}

type pageData struct {
	Title    string
	Subtitle string
	Cards    []template.HTML
}

func NewPageRenderer(styles Styles, layout Layout) (*PageRenderer, error) {
	cards, err := NewCardRenderer(styles)
	if err != nil {
		return nil, err
	}
	tmpl, err := parseWithStyles(styles, "templates/page.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}
	return &PageRenderer{layout: layout, cards: cards, tmpl: tmpl}, nil
}

// Cards exposes the card renderer used by the page.
func (r *PageRenderer) Cards() *CardRenderer {
	return r.cards
}

// Render writes the full page for every publication in source, in order.
func (r *PageRenderer) Render(w io.Writer, source PublicationSource) error {
	publications := source.Publications()
	data := pageData{
		Title:    PublicationsTitle,
		Subtitle: PublicationsSubtitle,
		Cards:    make([]template.HTML, 0, len(publications)),
	}
	for _, p := range publications {
		card, err := r.cards.HTML(CardProps{Publication: p})
		if err != nil {
			return err
		}
		data.Cards = append(data.Cards, card)
	}

	var content bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&content, "page", data); err != nil {
		return fmt.Errorf("failed to render publications page: %w", err)
	}

	meta := PageMeta{
		Title:       PublicationsMetaTitle,
		Description: PublicationsDescription,
		Path:        PublicationsPath,
	}
	if err := r.layout.Render(w, meta, template.HTML(content.String())); err != nil {
		return fmt.Errorf("failed to render layout: %w", err)
	}
	return nil
}
