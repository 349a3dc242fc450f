package ocr

import (
	"context"
	"errors"
	"testing"

	"github.com/microcred/credential-vault/constants"
)

type stubRunner struct {
	stdout []byte
	err    error
}

func (s stubRunner) Run(context.Context, string, ...string) ([]byte, []byte, error) {
	return s.stdout, nil, s.err
}

func TestExtractImage(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	e.runner = stubRunner{stdout: []byte("Certificate of Completion\n----\nJane Doe")}

	res, err := e.Extract(context.Background(), "scan.png")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.SourceType != constants.IMAGE || res.Method != "image-ocr" {
		t.Fatalf("unexpected result meta: %#v", res)
	}
	if res.Text != "Certificate of Completion\n\nJane Doe" {
		t.Fatalf("text = %q", res.Text)
	}
}

func TestExtractImageRunnerError(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	e.runner = stubRunner{err: errors.New("tesseract missing")}

	if _, err := e.Extract(context.Background(), "scan.jpg"); err == nil {
		t.Fatal("expected error when OCR binary fails")
	}
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	if _, err := e.Extract(context.Background(), "notes.docx"); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}
