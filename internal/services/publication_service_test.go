package services

import (
	"errors"
	"testing"

	"semantic_router_site/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPublications() []models.PublicationRecord {
	return []models.PublicationRecord{
		{
			ID:      2,
			Title:   "Second",
			Authors: "Ada Lovelace",
			Year:    "2024",
			Links: []models.LinkRecord{
				{Type: models.LinkTypeCode, URL: "https://example.com/code", Label: "Code"},
				{Type: models.LinkTypePaper, URL: "https://example.com/paper", Label: "Paper"},
			},
		},
		{ID: 1, Title: "First", Authors: "Alan Turing", Year: "2023"},
	}
}

func TestDefaultPublicationService_SeedRecord(t *testing.T) {
	s := NewDefaultPublicationService()
	require.Equal(t, 1, s.Len())

	p := s.Publications()[0]
	assert.Equal(t, 1, p.ID)
	assert.Equal(t, "When to Reason: Semantic Router for vLLM", p.Title)
	assert.Equal(t, "NeurIPS - MLForSys", p.Venue)
	assert.Equal(t, "2025", p.Year)
	assert.True(t, p.Featured)
	require.Len(t, p.Links, 1)
	assert.Equal(t, models.LinkRecord{Type: models.LinkTypePaper, URL: "https://mlforsystems.org", Label: "📄 Paper"}, p.Links[0])
}

func TestPublicationService_PreservesOrder(t *testing.T) {
	s, err := NewPublicationService(testPublications())
	require.NoError(t, err)

	var ids []int
	require.NoError(t, s.Each(func(p models.PublicationRecord) error {
		ids = append(ids, p.ID)
		return nil
	}))
	assert.Equal(t, []int{2, 1}, ids)

	got := s.Publications()
	assert.Equal(t, "Code", got[0].Links[0].Label)
	assert.Equal(t, "Paper", got[0].Links[1].Label)
}

func TestPublicationService_IsImmutable(t *testing.T) {
	input := testPublications()
	s, err := NewPublicationService(input)
	require.NoError(t, err)

	input[0].Title = "changed"
	input[0].Links[0].URL = "https://changed.example"

	out := s.Publications()
	out[0].Title = "changed again"
	out[0].Links[0].Label = "changed"

	again := s.Publications()
	assert.Equal(t, "Second", again[0].Title)
	assert.Equal(t, "https://example.com/code", again[0].Links[0].URL)
	assert.Equal(t, "Code", again[0].Links[0].Label)
}

func TestPublicationService_Each_StopsOnError(t *testing.T) {
	s, err := NewPublicationService(testPublications())
	require.NoError(t, err)

	stop := errors.New("stop")
	calls := 0
	err = s.Each(func(models.PublicationRecord) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestPublicationService_Empty(t *testing.T) {
	s, err := NewPublicationService(nil)
	require.NoError(t, err)

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Publications())
}

func TestValidatePublications(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func([]models.PublicationRecord) []models.PublicationRecord
		wantErr string
	}{
		{
			name: "duplicate id",
			mutate: func(p []models.PublicationRecord) []models.PublicationRecord {
				p[1].ID = p[0].ID
				return p
			},
			wantErr: "duplicate id 2",
		},
		{
			name: "empty title",
			mutate: func(p []models.PublicationRecord) []models.PublicationRecord {
				p[1].Title = ""
				return p
			},
			wantErr: "title is empty",
		},
		{
			name: "two digit year",
			mutate: func(p []models.PublicationRecord) []models.PublicationRecord {
				p[0].Year = "24"
				return p
			},
			wantErr: `year "24" is not a four digit year`,
		},
		{
			name: "relative url",
			mutate: func(p []models.PublicationRecord) []models.PublicationRecord {
				p[0].Links[0].URL = "/papers/1"
				return p
			},
			wantErr: "is not an absolute http(s) url",
		},
		{
			name: "non http scheme",
			mutate: func(p []models.PublicationRecord) []models.PublicationRecord {
				p[0].Links[1].URL = "javascript:alert(1)"
				return p
			},
			wantErr: "is not an absolute http(s) url",
		},
		{
			name: "empty label",
			mutate: func(p []models.PublicationRecord) []models.PublicationRecord {
				p[0].Links[1].Label = ""
				return p
			},
			wantErr: "label is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePublications(tt.mutate(testPublications()))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	assert.NoError(t, ValidatePublications(testPublications()))
	assert.NoError(t, ValidatePublications(sitePublications))
}

func TestMustNewPublicationService_PanicsOnInvalidRecords(t *testing.T) {
	assert.Panics(t, func() {
		MustNewPublicationService([]models.PublicationRecord{{ID: 1, Year: "2025"}})
	})
}
