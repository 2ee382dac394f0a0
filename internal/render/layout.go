package render

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"
)

// PageMeta is the head metadata a page hands to its layout.
type PageMeta struct {
	Title       string
	Description string
	// Path is the page's path on the site, used for the canonical URL.
	Path string
}

// Layout wraps rendered page content in the site chrome.
type Layout interface {
	Render(w io.Writer, meta PageMeta, children template.HTML) error
}

type NavItem struct {
	Label string
	URL   string
}

// SiteLayout is the default layout: head metadata, navbar and footer.
type SiteLayout struct {
	SiteName    string
	HomeURL     string
	BaseURL     string
	Stylesheets []string
	Nav         []NavItem
	// Now is used for the footer year; defaults to time.Now.
	Now func() time.Time

	tmpl *template.Template
}

type layoutData struct {
	Meta        PageMeta
	SiteName    string
	HomeURL     string
	Canonical   string
	Stylesheets []string
	Nav         []NavItem
	Year        int
	Children    template.HTML
}

func NewSiteLayout(siteName, baseURL string, stylesheets []string, nav []NavItem) (*SiteLayout, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout template: %w", err)
	}
	return &SiteLayout{
		SiteName:    siteName,
		HomeURL:     "/",
		BaseURL:     strings.TrimRight(baseURL, "/"),
		Stylesheets: stylesheets,
		Nav:         nav,
		Now:         time.Now,
		tmpl:        tmpl,
	}, nil
}

func (l *SiteLayout) Render(w io.Writer, meta PageMeta, children template.HTML) error {
	data := layoutData{
		Meta:        meta,
		SiteName:    l.SiteName,
		HomeURL:     l.HomeURL,
		Stylesheets: l.Stylesheets,
		Nav:         l.Nav,
		Year:        l.Now().Year(),
		Children:    children,
	}
	if l.BaseURL != "" && meta.Path != "" {
		data.Canonical = l.BaseURL + meta.Path
	}
	return l.tmpl.ExecuteTemplate(w, "layout", data)
}
