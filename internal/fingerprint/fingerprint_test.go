package fingerprint

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestSumDeterministic(t *testing.T) {
	b := []byte("national skills certificate no. 4421")
	first := Sum(b)
	second := Sum(b)
	if first != second {
		t.Fatalf("same bytes produced different digests: %s vs %s", first, second)
	}
	if len(first) != 64 {
		t.Fatalf("want 64 hex chars, got %d", len(first))
	}
}

func TestSumDiffersForDifferentContent(t *testing.T) {
	a := Sum([]byte("certificate A"))
	b := Sum([]byte("certificate B"))
	if a == b {
		t.Fatalf("distinct bytes produced identical digest %s", a)
	}
}

func TestSumReaderMatchesSum(t *testing.T) {
	b := []byte("streamed content")
	got, err := SumReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("SumReader: %v", err)
	}
	if want := Sum(b); got != want {
		t.Fatalf("SumReader = %s, want %s", got, want)
	}
}

func TestSumFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cred.pdf")
	content := []byte("%PDF-1.4 fake credential")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := SumFile(path)
	if err != nil {
		t.Fatalf("SumFile: %v", err)
	}
	if want := Sum(content); got != want {
		t.Fatalf("SumFile = %s, want %s", got, want)
	}

	if _, err := SumFile(filepath.Join(dir, "missing.pdf")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
