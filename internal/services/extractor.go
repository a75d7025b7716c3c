package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"prepvault/resume-analyzer/internal/logger"
)

type ExtractionMethod string

const (
	MethodDirectText ExtractionMethod = "direct_text"
	MethodOCR        ExtractionMethod = "ocr"
)

// ExtractedDocument is the normalized text of one uploaded resume. Text is
// always lowercase: downstream keyword matching is case-insensitive substring
// containment.
type ExtractedDocument struct {
	Text   string
	Method ExtractionMethod
}

type DocumentExtractor interface {
	Extract(ctx context.Context, filePath string) (*ExtractedDocument, error)
}

type documentExtractor struct {
	ocr      OCRClient
	readPDF  func(filePath string) (string, error)
	readDocx func(filePath string) (string, error)
}

// NewDocumentExtractor builds the extractor. ocr may be nil, in which case
// image-only PDFs fail with ErrNoReadableText instead of falling back.
func NewDocumentExtractor(ocr OCRClient) DocumentExtractor {
	return &documentExtractor{
		ocr:      ocr,
		readPDF:  readPDFText,
		readDocx: readDocxText,
	}
}

// Extract tries the document's text layer first and falls back to OCR for
// PDFs whose pages carry no text. It reads the input and nothing else; the
// raw file is left untouched.
func (e *documentExtractor) Extract(ctx context.Context, filePath string) (*ExtractedDocument, error) {
	ext := strings.ToLower(filepath.Ext(filePath))

	switch ext {
	case ".docx":
		text, err := e.readDocx(filePath)
		if err != nil {
			return nil, newExtractionError(filePath, err.Error())
		}
		text = normalizeText(text)
		if text == "" {
			return nil, newExtractionError(filePath, "document contains no text")
		}
		return &ExtractedDocument{Text: text, Method: MethodDirectText}, nil

	case ".pdf":
		text, err := e.readPDF(filePath)
		if err == nil {
			if normalized := normalizeText(text); normalized != "" {
				return &ExtractedDocument{Text: normalized, Method: MethodDirectText}, nil
			}
		} else {
			logger.Warn().Err(err).Str("file", filePath).Msg("direct text extraction failed, trying OCR")
		}
		return e.extractWithOCR(ctx, filePath)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

func (e *documentExtractor) extractWithOCR(ctx context.Context, filePath string) (*ExtractedDocument, error) {
	if e.ocr == nil {
		return nil, newExtractionError(filePath, "no text layer and OCR is not configured")
	}

	text, err := e.ocr.RecognizeFile(ctx, filePath)
	if err != nil {
		return nil, newExtractionError(filePath, fmt.Sprintf("OCR failed: %v", err))
	}

	text = normalizeText(text)
	if text == "" {
		return nil, newExtractionError(filePath, "OCR produced no text")
	}
	return &ExtractedDocument{Text: text, Method: MethodOCR}, nil
}

// readPDFText concatenates the text layer of every page, separated by
// whitespace. Pages that fail to decode are skipped; an entirely empty result
// means the caller should try OCR.
func readPDFText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString(" ")
	}

	return textBuilder.String(), nil
}

func readDocxText(filePath string) (string, error) {
	doc, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}

func normalizeText(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
