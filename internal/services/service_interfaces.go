package services

import (
	"io"

	"semantic_router_site/internal/models"
)

type PublicationRegistry interface {
	Publications() []models.PublicationRecord
	Len() int
}

type BibliographyWriter interface {
	WriteBibTeX(w io.Writer) error
}

type DocumentWriter interface {
	WritePDF(w io.Writer) error
}

var (
	_ PublicationRegistry = (*PublicationService)(nil)
	_ BibliographyWriter  = (*CitationService)(nil)
	_ DocumentWriter      = (*PDFService)(nil)
)
