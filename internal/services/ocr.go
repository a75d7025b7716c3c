package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// OCRClient recognizes text in documents whose pages carry no text layer.
type OCRClient interface {
	RecognizeFile(ctx context.Context, filePath string) (string, error)
}

// tikaOCRClient runs OCR through an Apache Tika server. Tika rasterizes each
// PDF page and feeds it to tesseract server-side; the ocr_only strategy skips
// the (already failed) text-layer pass.
type tikaOCRClient struct {
	serverURL string
	client    *http.Client
}

const ocrDPI = "300"

func NewTikaOCRClient(serverURL string, timeout time.Duration) OCRClient {
	return &tikaOCRClient{
		serverURL: serverURL,
		client:    &http.Client{Timeout: timeout},
	}
}

func (t *tikaOCRClient) RecognizeFile(ctx context.Context, filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}

	url := fmt.Sprintf("%s/tika", t.serverURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create OCR request: %w", err)
	}

	req.Header.Set("Content-Type", "application/pdf")
	req.Header.Set("Accept", "text/plain")
	req.Header.Set("X-Tika-PDFOcrStrategy", "ocr_only")
	req.Header.Set("X-Tika-PDFOcrDPI", ocrDPI)

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach OCR server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("OCR server returned status %d", resp.StatusCode)
	}

	textBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read OCR response: %w", err)
	}

	return string(textBytes), nil
}
