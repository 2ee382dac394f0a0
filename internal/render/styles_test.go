package render

import (
	"io/fs"
	"regexp"
	"testing"

	"semantic_router_site/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkVariant(t *testing.T) {
	assert.Equal(t, "link-primary", LinkVariant(models.LinkRecord{Type: models.LinkTypePaper}))
	assert.Equal(t, "link-secondary", LinkVariant(models.LinkRecord{Type: models.LinkTypeCode}))
	assert.Equal(t, "link-secondary", LinkVariant(models.LinkRecord{Type: "poster"}))
	assert.Equal(t, "link-secondary", LinkVariant(models.LinkRecord{}))
}

func TestStyles_Class(t *testing.T) {
	assert.Equal(t, "publication-card", DefaultStyles.Class("card"))
	assert.Equal(t, "unknown", DefaultStyles.Class("unknown"))
	assert.Equal(t, "paper-link paper-link-secondary", DefaultStyles.LinkClass(models.LinkRecord{Type: models.LinkTypeVideo}))
}

func TestDefaultStyles_DefinedInStylesheet(t *testing.T) {
	css, err := fs.ReadFile(Assets, "assets/publications.css")
	require.NoError(t, err)

	for name, class := range DefaultStyles {
		pattern := regexp.MustCompile(`(?m)^\.` + regexp.QuoteMeta(class) + `\s*\{`)
		assert.True(t, pattern.Match(css), "class %q for %q missing from stylesheet", class, name)
	}
}
