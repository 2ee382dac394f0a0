package services

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"semantic_router_site/internal/models"

	"github.com/jung-kurt/gofpdf"
	"github.com/ledongthuc/pdf"
	"golang.org/x/text/encoding/charmap"
)

const (
	pdfFont        = "Arial"
	pdfLineHeight  = 6.0
	pdfTitleHeight = 8.0
)

// PDFService renders a printable listing of the registry.
type PDFService struct {
	publications *PublicationService
	siteName     string
}

func NewPDFService(publications *PublicationService, siteName string) *PDFService {
	return &PDFService{publications: publications, siteName: siteName}
}

// WritePDF writes an A4 document with one section per publication in registry order.
func (s *PDFService) WritePDF(w io.Writer) error {
	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	text := func(value string) string {
		return tr(coreFontText(value))
	}

	doc.SetTitle(text(s.siteName+" Publications"), false)
	doc.SetCreator(text(s.siteName), false)
	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont(pdfFont, "I", 8)
		doc.CellFormat(0, 10, fmt.Sprintf("Page %d", doc.PageNo()), "", 0, "C", false, 0, "")
	})
	doc.AddPage()

	doc.SetFont(pdfFont, "B", 20)
	doc.CellFormat(0, 12, text("Publications"), "", 1, "L", false, 0, "")
	doc.Ln(4)

	err := s.publications.Each(func(p models.PublicationRecord) error {
		doc.SetFont(pdfFont, "B", 14)
		doc.MultiCell(0, pdfTitleHeight, text(p.Title), "", "L", false)

		doc.SetFont(pdfFont, "", 10)
		doc.MultiCell(0, pdfLineHeight, text(p.Authors), "", "L", false)

		doc.SetFont(pdfFont, "I", 10)
		doc.CellFormat(0, pdfLineHeight, text(p.Venue+" "+p.Year), "", 1, "L", false, 0, "")

		doc.SetFont(pdfFont, "", 10)
		doc.MultiCell(0, pdfLineHeight, text(p.Abstract), "", "L", false)

		doc.SetTextColor(0, 0, 180)
		for _, link := range p.Links {
			label := strings.TrimSpace(coreFontText(link.Label))
			doc.CellFormat(0, pdfLineHeight, text(label+": "+link.URL), "", 1, "L", false, 0, link.URL)
		}
		doc.SetTextColor(0, 0, 0)
		doc.Ln(6)

		return doc.Error()
	})
	if err != nil {
		return fmt.Errorf("failed to lay out publications: %w", err)
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

// ExtractText returns the plain text of a PDF and its page count.
func (s *PDFService) ExtractText(data []byte) (string, int, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("failed to open PDF: %w", err)
	}

	var content strings.Builder
	totalPage := r.NumPage()
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		p := r.Page(pageIndex)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return "", 0, fmt.Errorf("failed to read page %d: %w", pageIndex, err)
		}
		content.WriteString(text)
		content.WriteString("\n\n")
	}

	return content.String(), totalPage, nil
}

// coreFontText drops glyphs outside cp1252, the encoding of the built-in
// PDF fonts, such as emoji.
func coreFontText(s string) string {
	return strings.Map(func(r rune) rune {
		if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
			return -1
		}
		return r
	}, s)
}
