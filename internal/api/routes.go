package api

import (
	"io/fs"
	"net/http"

	apperrors "semantic_router_site/internal/errors"
	"semantic_router_site/internal/render"
	"semantic_router_site/internal/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, publicationService services.PublicationRegistry, pageRenderer *render.PageRenderer, citationService services.BibliographyWriter, pdfService services.DocumentWriter) {
	r.HandleMethodNotAllowed = true
	r.NoRoute(apperrors.NotFoundHandler)
	r.NoMethod(apperrors.MethodNotAllowedHandler)

	assets, err := fs.Sub(render.Assets, "assets")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/static", http.FS(assets))

	r.GET("/", getPublicationsPage(pageRenderer, publicationService))
	r.GET(render.PublicationsPath, getPublicationsPage(pageRenderer, publicationService))
	r.GET("/publications.bib", getBibliography(citationService))
	r.GET("/publications.pdf", getPublicationsPDF(pdfService))

	api := r.Group("/api")
	{
		api.GET("/publications", listPublications(publicationService))
		api.GET("/publications/:id", getPublication(publicationService))
	}
}
