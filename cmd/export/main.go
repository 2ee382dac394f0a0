package main

import (
	"bytes"
	"flag"
	"io/fs"
	"os"
	"path/filepath"

	"semantic_router_site/cmd/api/config"
	"semantic_router_site/internal/render"
	"semantic_router_site/internal/services"
	"semantic_router_site/internal/site"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.NewConfig()
	outDir := flag.String("out", cfg.ExportDir, "directory to write the exported files to")
	flag.Parse()

	logger := site.SetupLogger(cfg.IsDevelopment())
	if envErr != nil {
		logger.Debug().Msg("No .env file found")
	}

	s, err := site.New(services.NewDefaultPublicationService(), exportOptions(cfg))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to build site")
	}

	if err := export(s, *outDir, logger); err != nil {
		logger.Fatal().Err(err).Str("dir", *outDir).Msg("Export failed")
	}
	logger.Info().Str("dir", *outDir).Msg("Export complete")
}

// exportOptions links every page asset relatively so the output works from any directory.
func exportOptions(cfg *config.Config) site.Options {
	return site.Options{
		SiteName:   cfg.SiteName,
		BaseURL:    cfg.SiteBaseURL,
		Stylesheet: "publications.css",
		HomeURL:    "publications.html",
		Nav: []render.NavItem{
			{Label: "Publications", URL: "publications.html"},
			{Label: "BibTeX", URL: "publications.bib"},
			{Label: "PDF", URL: "publications.pdf"},
		},
	}
}

func export(s *site.Site, outDir string, logger zerolog.Logger) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	var page bytes.Buffer
	if err := s.Page.Render(&page, s.Publications); err != nil {
		return err
	}

	css, err := fs.ReadFile(render.Assets, "assets/publications.css")
	if err != nil {
		return err
	}

	var bib bytes.Buffer
	if err := s.Citations.WriteBibTeX(&bib); err != nil {
		return err
	}

	var doc bytes.Buffer
	if err := s.PDF.WritePDF(&doc); err != nil {
		return err
	}
	_, pages, err := s.PDF.ExtractText(doc.Bytes())
	if err != nil {
		return err
	}

	files := map[string][]byte{
		"publications.html": page.Bytes(),
		"publications.css":  css,
		"publications.bib":  bib.Bytes(),
		"publications.pdf":  doc.Bytes(),
	}
	for name, data := range files {
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
		logger.Info().Str("file", path).Int("bytes", len(data)).Msg("Wrote file")
	}
	logger.Info().Int("pages", pages).Int("publications", s.Publications.Len()).Msg("Rendered PDF")

	return nil
}
