package extractor

import (
	"bytes"
	"sort"
	"strings"

	"forceskill/internal/analyzer"
	"forceskill/internal/domain"
	"forceskill/internal/logger"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

const (
	maxPDFPages = 50

	// A fragment row is a heading when its font exceeds this size, it is
	// visually isolated from the next row, and it stays short.
	headingMinFontSize = 14.0
	headingMinGap      = 18.0
	headingFragmentMax = 100
	rowYTolerance      = 2.0
)

type pdfRow struct {
	text     string
	y        float64
	fontSize float64
}

// extractPDF walks positioned text fragments page by page, up to 50 pages.
// Rows classified as headings flush the running section; all rows join into
// the raw text with page breaks between pages.
func (s *Service) extractPDF(data []byte) (*Document, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, domain.NewError(domain.CodeEmptyContent, "The document contains no extractable text", err)
	}

	doc := &Document{}
	var pages []string
	var current strings.Builder

	flushSection := func() {
		if body := strings.TrimSpace(current.String()); body != "" {
			doc.Sections = append(doc.Sections, body)
		}
		current.Reset()
	}

	numPages := reader.NumPage()
	if numPages > maxPDFPages {
		logger.Get().Info("PDF page cap applied",
			zap.Int("pages", numPages), zap.Int("cap", maxPDFPages))
		numPages = maxPDFPages
	}

	for pageNum := 1; pageNum <= numPages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		rows := groupRows(page.Content().Text)
		var pageText []string
		for i, row := range rows {
			gap := 0.0
			if i+1 < len(rows) {
				gap = row.y - rows[i+1].y
			}
			if isPDFHeading(row, gap) {
				flushSection()
				doc.Headings = append(doc.Headings, row.text)
			} else {
				current.WriteString(row.text)
				current.WriteString("\n")
			}
			pageText = append(pageText, row.text)
		}
		if len(pageText) > 0 {
			pages = append(pages, strings.Join(pageText, "\n"))
		}
	}
	flushSection()

	doc.Text = strings.Join(pages, "\n\n")
	if strings.TrimSpace(doc.Text) == "" {
		return nil, domain.NewEmptyContentError()
	}
	return doc, nil
}

func isPDFHeading(row pdfRow, gapBelow float64) bool {
	if analyzer.IsHeading(row.text) {
		return true
	}
	return row.fontSize > headingMinFontSize &&
		gapBelow > headingMinGap &&
		len([]rune(row.text)) < headingFragmentMax
}

// groupRows merges positioned fragments into reading-order rows: fragments
// within yTolerance share a row, rows are ordered top to bottom, fragments
// within a row left to right.
func groupRows(fragments []pdf.Text) []pdfRow {
	byY := make(map[float64][]pdf.Text)
	var ys []float64
	for _, f := range fragments {
		if strings.TrimSpace(f.S) == "" {
			continue
		}
		matched := false
		for _, y := range ys {
			if f.Y >= y-rowYTolerance && f.Y <= y+rowYTolerance {
				byY[y] = append(byY[y], f)
				matched = true
				break
			}
		}
		if !matched {
			ys = append(ys, f.Y)
			byY[f.Y] = append(byY[f.Y], f)
		}
	}

	// PDF y grows upward, so descending y is reading order.
	sort.Sort(sort.Reverse(sort.Float64Slice(ys)))

	rows := make([]pdfRow, 0, len(ys))
	for _, y := range ys {
		frags := byY[y]
		sort.Slice(frags, func(i, j int) bool { return frags[i].X < frags[j].X })

		var b strings.Builder
		maxFont := 0.0
		for _, f := range frags {
			b.WriteString(f.S)
			if f.FontSize > maxFont {
				maxFont = f.FontSize
			}
		}
		text := strings.TrimSpace(b.String())
		if text == "" {
			continue
		}
		rows = append(rows, pdfRow{text: text, y: y, fontSize: maxFont})
	}
	return rows
}
