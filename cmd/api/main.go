package main

import (
	"semantic_router_site/cmd/api/config"
	"semantic_router_site/internal/api"
	"semantic_router_site/internal/services"
	"semantic_router_site/internal/site"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.NewConfig()
	logger := site.SetupLogger(cfg.IsDevelopment())
	if envErr != nil {
		logger.Info().Msg("No .env file found")
	}

	publicationService := services.NewDefaultPublicationService()
	s, err := site.New(publicationService, site.Options{
		SiteName: cfg.SiteName,
		BaseURL:  cfg.SiteBaseURL,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to build site")
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), api.RequestLogger(logger))

	// CORS middleware configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           cfg.CORSMaxAge,
	}))

	api.SetupRoutes(r, s.Publications, s.Page, s.Citations, s.PDF)

	logger.Info().
		Str("port", cfg.Port).
		Int("publications", publicationService.Len()).
		Msg("Server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start server")
	}
}
