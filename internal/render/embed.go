package render

import "embed"

//go:embed templates/*.html
var templateFS embed.FS

// Assets holds the static files referenced by rendered pages.
//
//go:embed assets/*
var Assets embed.FS
