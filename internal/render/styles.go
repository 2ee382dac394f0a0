package render

import "semantic_router_site/internal/models"

// Styles maps semantic names used by the templates to CSS class names.
type Styles map[string]string

// DefaultStyles matches the selectors in assets/publications.css.
var DefaultStyles = Styles{
	"container":      "container",
	"header":         "header",
	"page-title":     "title",
	"subtitle":       "subtitle",
	"list":           "publications-list",
	"card":           "publication-card",
	"title":          "paper-title",
	"authors":        "paper-authors",
	"venue":          "paper-venue",
	"abstract":       "paper-abstract",
	"links":          "paper-links",
	"link":           "paper-link",
	"link-primary":   "paper-link-primary",
	"link-secondary": "paper-link-secondary",
}

// Class returns the CSS class for a semantic name, or the name itself when unmapped.
func (s Styles) Class(name string) string {
	if class, ok := s[name]; ok {
		return class
	}
	return name
}

// LinkVariant is "link-primary" for paper links and "link-secondary" otherwise.
func LinkVariant(link models.LinkRecord) string {
	if link.IsPrimary() {
		return "link-primary"
	}
	return "link-secondary"
}

// LinkClass is the full class attribute of a rendered link.
func (s Styles) LinkClass(link models.LinkRecord) string {
	return s.Class("link") + " " + s.Class(LinkVariant(link))
}
