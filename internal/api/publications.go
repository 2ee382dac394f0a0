package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	apperrors "semantic_router_site/internal/errors"
	"semantic_router_site/internal/models"
	"semantic_router_site/internal/render"
	"semantic_router_site/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	contentTypeHTML   = "text/html; charset=utf-8"
	contentTypeBibTeX = "application/x-bibtex; charset=utf-8"
	contentTypePDF    = "application/pdf"
)

func getPublicationsPage(pageRenderer *render.PageRenderer, publicationService services.PublicationRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		var buf bytes.Buffer
		if err := pageRenderer.Render(&buf, publicationService); err != nil {
			apperrors.HandleError(c, apperrors.New500Error(err))
			return
		}
		c.Data(http.StatusOK, contentTypeHTML, buf.Bytes())
	}
}

func listPublications(publicationService services.PublicationRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"publications": publicationService.Publications()})
	}
}

func getPublication(publicationService services.PublicationRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			apperrors.HandleError(c, apperrors.New400Error("Publication id must be an integer"))
			return
		}

		publication, ok := findPublication(publicationService, id)
		if !ok {
			apperrors.HandleError(c, apperrors.New404Error(fmt.Sprintf("Publication %d not found", id)))
			return
		}

		c.JSON(http.StatusOK, publication)
	}
}

// findPublication scans the registry in order; the registry itself only iterates.
func findPublication(publicationService services.PublicationRegistry, id int) (models.PublicationRecord, bool) {
	for _, p := range publicationService.Publications() {
		if p.ID == id {
			return p, true
		}
	}
	return models.PublicationRecord{}, false
}

func getBibliography(citationService services.BibliographyWriter) gin.HandlerFunc {
	return func(c *gin.Context) {
		var buf bytes.Buffer
		if err := citationService.WriteBibTeX(&buf); err != nil {
			apperrors.HandleError(c, apperrors.New500Error(err))
			return
		}
		c.Header("Content-Disposition", `inline; filename="publications.bib"`)
		c.Data(http.StatusOK, contentTypeBibTeX, buf.Bytes())
	}
}

func getPublicationsPDF(pdfService services.DocumentWriter) gin.HandlerFunc {
	return func(c *gin.Context) {
		var buf bytes.Buffer
		if err := pdfService.WritePDF(&buf); err != nil {
			apperrors.HandleError(c, apperrors.New500Error(err))
			return
		}
		c.Header("Content-Disposition", `inline; filename="publications.pdf"`)
		c.Data(http.StatusOK, contentTypePDF, buf.Bytes())
	}
}
