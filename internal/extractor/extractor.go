// Package extractor turns uploaded documents into plain text plus detected
// structure (headings and sections). Format adapters exist for PDF and Word;
// PowerPoint is a documented stub.
package extractor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"forceskill/internal/domain"
	"forceskill/internal/logger"

	"go.uber.org/zap"
)

// Document is the raw output of extraction, consumed by the analyzer.
type Document struct {
	Text     string
	Headings []string
	Sections []string
}

// MIME types routed by Extract.
const (
	MimePDF        = "application/pdf"
	MimeDocx       = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeDoc        = "application/msword"
	MimePptx       = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	MimePpt        = "application/vnd.ms-powerpoint"
	maxDocumentLen = 50 << 20 // 50MB fetch cap
)

// Service fetches documents over HTTP and routes them to format adapters.
// The HTTP client is injected so tests can substitute a double.
type Service struct {
	httpClient *http.Client
}

// NewService creates an extractor Service. A nil client gets a default with
// a 30-second timeout.
func NewService(client *http.Client) *Service {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Service{httpClient: client}
}

// Extract fetches the document at url and extracts text and structure
// according to mimeType. Fetch failures, unsupported formats, and empty
// extractions surface as domain errors; the caller maps all three onto one
// user-facing message and logs the cause.
func (s *Service) Extract(ctx context.Context, url, mimeType string) (*Document, error) {
	switch normalizeMime(mimeType) {
	case MimePDF, MimeDocx, MimeDoc:
		data, err := s.fetch(ctx, url)
		if err != nil {
			return nil, err
		}
		return s.ExtractData(data, mimeType)
	case MimePptx, MimePpt:
		// Canned sample deck; real PPTX parsing is out of scope.
		return samplePresentation(), nil
	default:
		logger.Get().Warn("Unsupported document format", zap.String("mime_type", mimeType))
		return nil, domain.NewUnsupportedFormatError(mimeType)
	}
}

// ExtractData extracts text and structure from in-memory document bytes.
// Used for direct uploads where the bytes are already at hand.
func (s *Service) ExtractData(data []byte, mimeType string) (*Document, error) {
	switch normalizeMime(mimeType) {
	case MimePDF:
		return s.extractPDF(data)
	case MimeDocx, MimeDoc:
		return s.extractWord(data)
	case MimePptx, MimePpt:
		return samplePresentation(), nil
	default:
		logger.Get().Warn("Unsupported document format", zap.String("mime_type", mimeType))
		return nil, domain.NewUnsupportedFormatError(mimeType)
	}
}

func (s *Service) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, domain.NewFetchError(url, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewFetchError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domain.NewFetchError(url, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentLen))
	if err != nil {
		return nil, domain.NewFetchError(url, err)
	}
	return data, nil
}

func normalizeMime(mimeType string) string {
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = mimeType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}
