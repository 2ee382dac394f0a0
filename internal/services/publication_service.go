package services

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"

	"semantic_router_site/internal/models"
)

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// PublicationService is the read-only, ordered registry of publications.
// It is built once and never mutated; every accessor hands out copies.
type PublicationService struct {
	publications []models.PublicationRecord
}

// NewPublicationService validates the records and freezes them in the given order.
func NewPublicationService(publications []models.PublicationRecord) (*PublicationService, error) {
	if err := ValidatePublications(publications); err != nil {
		return nil, err
	}

	s := &PublicationService{
		publications: make([]models.PublicationRecord, len(publications)),
	}
	for i, p := range publications {
		s.publications[i] = copyPublication(p)
	}
	return s, nil
}

// MustNewPublicationService panics on malformed records. A bad record is a
// programming error in the static data, not something to recover from.
func MustNewPublicationService(publications []models.PublicationRecord) *PublicationService {
	s, err := NewPublicationService(publications)
	if err != nil {
		panic(fmt.Sprintf("invalid publication registry: %v", err))
	}
	return s
}

// NewDefaultPublicationService returns the registry for the site's own publications.
func NewDefaultPublicationService() *PublicationService {
	return MustNewPublicationService(sitePublications)
}

// Publications returns every record in registry order.
func (s *PublicationService) Publications() []models.PublicationRecord {
	out := make([]models.PublicationRecord, len(s.publications))
	for i, p := range s.publications {
		out[i] = copyPublication(p)
	}
	return out
}

// Each calls fn for every record in registry order and stops at the first error.
func (s *PublicationService) Each(fn func(models.PublicationRecord) error) error {
	for _, p := range s.publications {
		if err := fn(copyPublication(p)); err != nil {
			return err
		}
	}
	return nil
}

func (s *PublicationService) Len() int {
	return len(s.publications)
}

// ValidatePublications checks the invariants of a registry and reports all violations at once.
func ValidatePublications(publications []models.PublicationRecord) error {
	var errs []error
	seen := make(map[int]bool, len(publications))

	for i, p := range publications {
		if seen[p.ID] {
			errs = append(errs, fmt.Errorf("publication %d: duplicate id %d", i, p.ID))
		}
		seen[p.ID] = true

		if p.Title == "" {
			errs = append(errs, fmt.Errorf("publication %d: title is empty", p.ID))
		}
		if !yearPattern.MatchString(p.Year) {
			errs = append(errs, fmt.Errorf("publication %d: year %q is not a four digit year", p.ID, p.Year))
		}
		for j, link := range p.Links {
			if err := validateLink(link); err != nil {
				errs = append(errs, fmt.Errorf("publication %d: link %d: %w", p.ID, j, err))
			}
		}
	}

	return errors.Join(errs...)
}

func validateLink(link models.LinkRecord) error {
	if link.Label == "" {
		return errors.New("label is empty")
	}
	u, err := url.Parse(link.URL)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", link.URL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("url %q is not an absolute http(s) url", link.URL)
	}
	return nil
}

func copyPublication(p models.PublicationRecord) models.PublicationRecord {
	if p.Links != nil {
		p.Links = append([]models.LinkRecord(nil), p.Links...)
	}
	return p
}
