package models

import "strings"

// LinkType selects how an outbound link is styled on a publication card.
type LinkType string

const (
	LinkTypePaper  LinkType = "paper"
	LinkTypeCode   LinkType = "code"
	LinkTypeSlides LinkType = "slides"
	LinkTypeVideo  LinkType = "video"
)

type LinkRecord struct {
	Type  LinkType `json:"type"`
	URL   string   `json:"url"`
	Label string   `json:"label"`
}

// IsPrimary reports whether the link gets the primary style variant.
// Only links to the paper itself are primary.
func (l LinkRecord) IsPrimary() bool {
	return l.Type == LinkTypePaper
}

type PublicationRecord struct {
	ID       int          `json:"id"`
	Title    string       `json:"title"`
	Authors  string       `json:"authors"`
	Venue    string       `json:"venue"`
	Year     string       `json:"year"`
	Abstract string       `json:"abstract"`
	Links    []LinkRecord `json:"links"`
	// Featured is carried for consumers of the JSON listing; rendering ignores it.
	Featured bool `json:"featured"`
}

// AuthorList splits the free-form authors line on commas.
func (p PublicationRecord) AuthorList() []string {
	var names []string
	for _, name := range strings.Split(p.Authors, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// PrimaryLink returns the first paper link, falling back to the first link.
func (p PublicationRecord) PrimaryLink() (LinkRecord, bool) {
	for _, link := range p.Links {
		if link.IsPrimary() {
			return link, true
		}
	}
	if len(p.Links) > 0 {
		return p.Links[0], true
	}
	return LinkRecord{}, false
}
