package site

import (
	"io"
	"os"
	"time"

	"semantic_router_site/internal/render"
	"semantic_router_site/internal/services"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// StylesheetURL is the stylesheet linked from every rendered page.
const StylesheetURL = "/static/publications.css"

// Site holds every service needed to serve or export the publications page.
type Site struct {
	Publications *services.PublicationService
	Citations    *services.CitationService
	PDF          *services.PDFService
	Page         *render.PageRenderer
}

// DefaultNav links the pages served by cmd/api.
var DefaultNav = []render.NavItem{
	{Label: "Publications", URL: render.PublicationsPath},
	{Label: "BibTeX", URL: "/publications.bib"},
	{Label: "PDF", URL: "/publications.pdf"},
}

type Options struct {
	SiteName string
	BaseURL  string
	// Stylesheet overrides StylesheetURL, e.g. with a relative path for static exports.
	Stylesheet string
	// Nav overrides DefaultNav and HomeURL overrides "/", for the same reason.
	Nav     []render.NavItem
	HomeURL string
}

func New(publications *services.PublicationService, opts Options) (*Site, error) {
	stylesheet := opts.Stylesheet
	if stylesheet == "" {
		stylesheet = StylesheetURL
	}

	nav := opts.Nav
	if nav == nil {
		nav = DefaultNav
	}

	layout, err := render.NewSiteLayout(opts.SiteName, opts.BaseURL, []string{stylesheet}, nav)
	if err != nil {
		return nil, err
	}
	if opts.HomeURL != "" {
		layout.HomeURL = opts.HomeURL
	}

	page, err := render.NewPageRenderer(render.DefaultStyles, layout)
	if err != nil {
		return nil, err
	}

	return &Site{
		Publications: publications,
		Citations:    services.NewCitationService(publications),
		PDF:          services.NewPDFService(publications, opts.SiteName),
		Page:         page,
	}, nil
}

// SetupLogger builds the process logger and installs it as the global
// zerolog logger used by internal/errors.
func SetupLogger(development bool) zerolog.Logger {
	logger := NewLogger(development)
	log.Logger = logger
	return logger
}

// NewLogger returns a console logger for development and a JSON logger otherwise.
func NewLogger(development bool) zerolog.Logger {
	var out io.Writer = os.Stdout
	level := zerolog.InfoLevel
	if development {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		level = zerolog.DebugLevel
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
