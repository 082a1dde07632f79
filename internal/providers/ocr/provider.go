// Package ocr extracts invoice fields from scanned documents.
package ocr

import (
	"context"
	"errors"
)

// ErrExtractionUnavailable is returned when no extraction backend is
// configured. Callers fall back to manual entry.
var ErrExtractionUnavailable = errors.New("ocr extraction unavailable")

// ExtractedFields carries the best-effort fields read off a scan. Every
// field is optional; absent values stay empty rather than guessed.
type ExtractedFields struct {
	Number     string  `json:"number,omitempty"`
	ClientName string  `json:"client_name,omitempty"`
	IssuedAt   string  `json:"issued_at,omitempty"`
	TotalTTC   float64 `json:"total_ttc,omitempty"`
	Confidence float64 `json:"confidence"`
}

// Extractor reads fields from a scanned invoice image or PDF.
type Extractor interface {
	Extract(ctx context.Context, document []byte) (ExtractedFields, error)
}

// NoOpExtractor is the default backend: extraction is declared
// unavailable and the caller keys the invoice in manually.
type NoOpExtractor struct{}

func (NoOpExtractor) Extract(ctx context.Context, document []byte) (ExtractedFields, error) {
	return ExtractedFields{}, ErrExtractionUnavailable
}
