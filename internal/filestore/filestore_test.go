package filestore

import (
	"bytes"
	"crypto/sha256"
	"os"
	"testing"
)

func TestSaveAndRead(t *testing.T) {
	s, err := NewStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	content := []byte("%PDF-1.4 credential bytes")
	f, err := s.Save("certificate.PDF", content)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if f.FileExt != "pdf" {
		t.Fatalf("ext = %q, want normalized pdf", f.FileExt)
	}
	if f.Size != len(content) {
		t.Fatalf("size = %d, want %d", f.Size, len(content))
	}
	want := sha256.Sum256(content)
	if !bytes.Equal(f.ContentHash, want[:]) {
		t.Fatal("content hash mismatch")
	}

	got, err := s.Read(f.Path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Fatal("read-back bytes differ")
	}
}

func TestSaveUniqueNames(t *testing.T) {
	s, _ := NewStore(t.TempDir(), nil)
	a, err := s.Save("same.png", []byte("one"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Save("same.png", []byte("two"))
	if err != nil {
		t.Fatal(err)
	}
	if a.Path == b.Path {
		t.Fatalf("two uploads stored at the same path %s", a.Path)
	}
}

func TestSaveRejections(t *testing.T) {
	s, _ := NewStore(t.TempDir(), nil)

	if _, err := s.Save("cert.pdf", nil); err == nil {
		t.Fatal("empty upload accepted")
	}
	if _, err := s.Save("cert.exe", []byte("x")); err == nil {
		t.Fatal("disallowed extension accepted")
	}
	if _, err := s.Save("noext", []byte("x")); err == nil {
		t.Fatal("missing extension accepted")
	}
}

func TestRemove(t *testing.T) {
	s, _ := NewStore(t.TempDir(), nil)
	f, err := s.Save("cert.jpg", []byte("img"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Remove(f.Path); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(f.Path); !os.IsNotExist(err) {
		t.Fatal("file still present after Remove")
	}
	// removing again is not an error
	if err := s.Remove(f.Path); err != nil {
		t.Fatalf("second Remove: %v", err)
	}
}
