package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempPDF(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scan.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 fake"), 0644))
	return path
}

func TestTikaOCRClientSendsOCRDirectives(t *testing.T) {
	var gotMethod, gotPath, gotStrategy, gotDPI, gotAccept string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotStrategy = r.Header.Get("X-Tika-PDFOcrStrategy")
		gotDPI = r.Header.Get("X-Tika-PDFOcrDPI")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte("Recognized Text"))
	}))
	defer server.Close()

	client := NewTikaOCRClient(server.URL, 5*time.Second)
	text, err := client.RecognizeFile(context.Background(), writeTempPDF(t))
	require.NoError(t, err)

	assert.Equal(t, "Recognized Text", text)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/tika", gotPath)
	assert.Equal(t, "ocr_only", gotStrategy)
	assert.Equal(t, "300", gotDPI)
	assert.Equal(t, "text/plain", gotAccept)
}

func TestTikaOCRClientFailsOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := NewTikaOCRClient(server.URL, 5*time.Second)
	_, err := client.RecognizeFile(context.Background(), writeTempPDF(t))
	assert.Error(t, err)
}

func TestTikaOCRClientFailsOnMissingFile(t *testing.T) {
	client := NewTikaOCRClient("http://localhost:9998", time.Second)
	_, err := client.RecognizeFile(context.Background(), "/nonexistent/scan.pdf")
	assert.Error(t, err)
}
