package services

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"semantic_router_site/internal/models"

	"github.com/nickng/bibtex"
)

const bibEntryType = "inproceedings"

// citationFieldOrder keeps exported entries stable between runs.
var citationFieldOrder = []string{"title", "author", "booktitle", "year", "abstract", "url"}

type CitationService struct {
	publications *PublicationService
}

func NewCitationService(publications *PublicationService) *CitationService {
	return &CitationService{publications: publications}
}

// Bibliography builds one entry per publication, in registry order.
func (s *CitationService) Bibliography() *bibtex.BibTex {
	bib := bibtex.NewBibTex()
	issued := make(map[string]bool)
	for _, p := range s.publications.Publications() {
		key := uniqueCiteKey(CiteKey(p), issued)
		issued[key] = true
		bib.AddEntry(s.entryFor(p, key))
	}
	return bib
}

// WriteBibTeX writes the bibliography of every publication to w.
func (s *CitationService) WriteBibTeX(w io.Writer) error {
	for i, entry := range s.Bibliography().Entries {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, formatEntry(entry)); err != nil {
			return fmt.Errorf("failed to write entry %s: %w", entry.CiteName, err)
		}
	}
	return nil
}

// ParseBibTeX reads a bibliography back, as produced by WriteBibTeX.
func ParseBibTeX(r io.Reader) (*bibtex.BibTex, error) {
	bib, err := bibtex.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bibtex: %w", err)
	}
	return bib, nil
}

func (s *CitationService) entryFor(p models.PublicationRecord, citeKey string) *bibtex.BibEntry {
	entry := bibtex.NewBibEntry(bibEntryType, citeKey)

	addField := func(name, value string) {
		if value = sanitizeBibValue(value); value != "" {
			entry.AddField(name, bibtex.NewBibConst(value))
		}
	}

	addField("title", p.Title)
	addField("author", strings.Join(p.AuthorList(), " and "))
	addField("booktitle", p.Venue)
	addField("year", p.Year)
	addField("abstract", p.Abstract)
	if link, ok := p.PrimaryLink(); ok {
		addField("url", link.URL)
	}

	return entry
}

// CiteKey derives a key of the form <first author surname><year><first title word>.
func CiteKey(p models.PublicationRecord) string {
	var surname string
	if authors := p.AuthorList(); len(authors) > 0 {
		parts := strings.Fields(authors[0])
		surname = parts[len(parts)-1]
	}

	var firstWord string
	for _, word := range strings.Fields(p.Title) {
		if w := asciiAlnum(word); w != "" {
			firstWord = w
			break
		}
	}

	key := asciiAlnum(surname) + p.Year + firstWord
	if key == "" {
		return fmt.Sprintf("publication%d", p.ID)
	}
	return key
}

// uniqueCiteKey appends a, b, ... z, aa, ab, ... to a key that was already issued.
func uniqueCiteKey(key string, issued map[string]bool) string {
	if !issued[key] {
		return key
	}
	for n := 0; ; n++ {
		if candidate := key + alphaSuffix(n); !issued[candidate] {
			return candidate
		}
	}
}

// alphaSuffix maps 0, 1, ... to a, b, ... z, aa, ab, ...
func alphaSuffix(n int) string {
	var b []byte
	for n++; n > 0; n = (n - 1) / 26 {
		b = append([]byte{byte('a' + (n-1)%26)}, b...)
	}
	return string(b)
}

func asciiAlnum(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// sanitizeBibValue drops characters that would unbalance a braced value and
// writes @ as the TeX \char64 command, since a bare @ starts a new entry.
func sanitizeBibValue(value string) string {
	value = strings.NewReplacer("{", "", "}", "", "\n", " ", "\t", " ", "@", `\char64 `).Replace(value)
	return strings.Join(strings.Fields(value), " ")
}

func formatEntry(entry *bibtex.BibEntry) string {
	var fields []string
	for _, name := range citationFieldOrder {
		if value, ok := entry.Fields[name]; ok && value != nil {
			fields = append(fields, fmt.Sprintf("  %s = {%s}", name, value.String()))
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "@%s{%s,\n", entry.Type, entry.CiteName)
	b.WriteString(strings.Join(fields, ",\n"))
	b.WriteString("\n}\n")
	return b.String()
}
