// Package filestore owns the on-disk storage of uploaded credential
// documents. The stored file belongs to the request until the verification
// record is persisted; on hard failure the caller deletes it via Remove.
package filestore

import (
	"crypto/sha256"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/microcred/credential-vault/constants"
)

// StoredFile describes an accepted upload.
type StoredFile struct {
	Path        string
	Filename    string // original client filename
	FileExt     string // normalized, without dot
	Size        int
	ContentHash []byte // sha256 of the raw bytes
	StoredAt    time.Time
}

// Store writes uploads under a base directory.
type Store struct {
	baseDir string
	logger  *slog.Logger
}

func NewStore(baseDir string, logger *slog.Logger) (*Store, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("filestore: base directory is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create %s: %w", baseDir, err)
	}
	return &Store{baseDir: baseDir, logger: logger}, nil
}

// Save validates and writes the uploaded bytes under a unique name, returning
// the stored file description. Rejects empty content, disallowed extensions,
// and uploads over constants.MaxUploadBytes.
func (s *Store) Save(filename string, content []byte) (StoredFile, error) {
	if len(content) == 0 {
		return StoredFile{}, fmt.Errorf("filestore: empty upload")
	}
	if len(content) > constants.MaxUploadBytes {
		return StoredFile{}, fmt.Errorf("filestore: upload exceeds %d bytes", constants.MaxUploadBytes)
	}
	ext := constants.NormalizeExt(filepath.Ext(filename))
	if !constants.IsAllowedExt(ext) {
		return StoredFile{}, fmt.Errorf("filestore: unsupported extension %q", ext)
	}

	name := fmt.Sprintf("%d-%s.%s", time.Now().UnixNano(), uuid.NewString(), ext)
	path := filepath.Join(s.baseDir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return StoredFile{}, fmt.Errorf("filestore: write %s: %w", path, err)
	}

	sum := sha256.Sum256(content)
	s.logger.Info("filestore.saved", "path", path, "bytes", len(content))
	return StoredFile{
		Path:        path,
		Filename:    filename,
		FileExt:     ext,
		Size:        len(content),
		ContentHash: sum[:],
		StoredAt:    time.Now().UTC(),
	}, nil
}

// Remove deletes a stored file. Best-effort cleanup path; a missing file is
// not an error.
func (s *Store) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("filestore.remove_failed", "path", path, "error", err)
		return err
	}
	s.logger.Info("filestore.removed", "path", path)
	return nil
}

// Read returns the raw bytes of a stored file.
func (s *Store) Read(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("filestore: read %s: %w", path, err)
	}
	return b, nil
}
