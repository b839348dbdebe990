package extractor

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"forceskill/internal/analyzer"
	"forceskill/internal/domain"
)

// extractWord pulls paragraph text out of a .docx archive, then re-derives
// headings line by line with the standalone heading heuristic and segments
// the text into sections wherever a line matches a detected heading.
//
// A .docx file is a zip holding WordprocessingML; the paragraphs live in
// word/document.xml as <w:p> elements containing <w:t> text runs.
func (s *Service) extractWord(data []byte) (*Document, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, domain.NewError(domain.CodeEmptyContent, "The document contains no extractable text", err)
	}

	var docXML io.ReadCloser
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			docXML, err = f.Open()
			if err != nil {
				return nil, domain.NewError(domain.CodeEmptyContent, "The document contains no extractable text", err)
			}
			break
		}
	}
	if docXML == nil {
		return nil, domain.NewEmptyContentError()
	}
	defer docXML.Close()

	paragraphs, err := readParagraphs(docXML)
	if err != nil {
		return nil, domain.NewError(domain.CodeEmptyContent, "The document contains no extractable text", err)
	}

	text := strings.Join(paragraphs, "\n")
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewEmptyContentError()
	}

	doc := &Document{Text: text}
	doc.Headings = analyzer.ExtractHeadings(text)
	doc.Sections = sectionsByHeadings(paragraphs, doc.Headings)
	return doc, nil
}

// readParagraphs streams document.xml, emitting one line per <w:p> element.
// Tabs and line breaks inside a paragraph become single spaces.
func readParagraphs(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)

	var paragraphs []string
	var current strings.Builder
	inParagraph := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "tab", "br":
				if inParagraph {
					current.WriteString(" ")
				}
			}
		case xml.CharData:
			if inParagraph {
				current.Write(t)
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				inParagraph = false
				if line := strings.TrimSpace(current.String()); line != "" {
					paragraphs = append(paragraphs, line)
				}
			}
		}
	}
	return paragraphs, nil
}

// sectionsByHeadings splits the paragraph stream into section bodies
// delimited by lines that exactly match a detected heading.
func sectionsByHeadings(paragraphs, headings []string) []string {
	headingSet := make(map[string]bool, len(headings))
	for _, h := range headings {
		headingSet[h] = true
	}

	var sections []string
	var current strings.Builder
	flush := func() {
		if body := strings.TrimSpace(current.String()); body != "" {
			sections = append(sections, body)
		}
		current.Reset()
	}

	for _, p := range paragraphs {
		if headingSet[p] {
			flush()
			continue
		}
		current.WriteString(p)
		current.WriteString("\n")
	}
	flush()
	return sections
}
