package services

import (
	"errors"
	"fmt"
)

// Base error types for the analysis pipeline. Handlers map these to HTTP
// statuses with errors.Is; nothing is persisted when any of them occurs.
var (
	// ErrNoReadableText: both direct extraction and OCR failed or produced
	// empty output.
	ErrNoReadableText = errors.New("no readable text found in document")
	// ErrEmbeddingFailed: the scoring model could not process the text.
	ErrEmbeddingFailed = errors.New("failed to embed text")
	// ErrUnknownRole: the target role is not in the catalogue.
	ErrUnknownRole = errors.New("unknown target role")
	// ErrUnsupportedFormat: the uploaded file is not a supported document type.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

// AnalysisError wraps a base error with the operation and document that
// produced it, so callers keep errors.Is semantics while logs carry detail.
type AnalysisError struct {
	Op      string
	Source  string
	BaseErr error
	Detail  string
}

func (e *AnalysisError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (op:%s, source:%s): %s", e.BaseErr, e.Op, e.Source, e.Detail)
	}
	return fmt.Sprintf("%s (op:%s, source:%s)", e.BaseErr, e.Op, e.Source)
}

func (e *AnalysisError) Unwrap() error {
	return e.BaseErr
}

func (e *AnalysisError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

func newExtractionError(source, detail string) error {
	return &AnalysisError{Op: "extract", Source: source, BaseErr: ErrNoReadableText, Detail: detail}
}

func newEmbeddingError(source, detail string) error {
	return &AnalysisError{Op: "embed", Source: source, BaseErr: ErrEmbeddingFailed, Detail: detail}
}
