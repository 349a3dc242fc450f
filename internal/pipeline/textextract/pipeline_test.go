package textextract

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/microcred/credential-vault/gen/ent"
	"github.com/microcred/credential-vault/internal/extract"
)

type stubFilesRepo struct {
	row *ent.CredentialFile
	err error
}

func (s *stubFilesRepo) GetByID(_ context.Context, _ uuid.UUID) (*ent.CredentialFile, error) {
	return s.row, s.err
}

func (s *stubFilesRepo) GetByProfileAndHash(_ context.Context, _ uuid.UUID, _ []byte) (*ent.CredentialFile, error) {
	return s.row, s.err
}

func (s *stubFilesRepo) Create(_ context.Context, _ uuid.UUID, _, _, _ string, _ int, _ []byte, _ time.Time) (*ent.CredentialFile, error) {
	return s.row, s.err
}

func (s *stubFilesRepo) UpsertByHash(_ context.Context, _ uuid.UUID, _, _, _ string, _ int, _ []byte, _ time.Time) (*ent.CredentialFile, bool, error) {
	return s.row, false, s.err
}

func (s *stubFilesRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type stubJobsRepo struct {
	started      int
	markedText   string
	markedMethod string
	failed       int
}

func (s *stubJobsRepo) Start(_ context.Context, _, _ uuid.UUID, _ string) (*ent.VerificationJob, error) {
	s.started++
	return &ent.VerificationJob{ID: uuid.New()}, nil
}

func (s *stubJobsRepo) MarkExtracted(_ context.Context, _ uuid.UUID, text, method string, _ int, _ int64) error {
	s.markedText = text
	s.markedMethod = method
	return nil
}

func (s *stubJobsRepo) FinishSuccess(_ context.Context, _, _ uuid.UUID) error { return nil }

func (s *stubJobsRepo) FinishFailure(_ context.Context, _ uuid.UUID, _ string) error {
	s.failed++
	return nil
}

func (s *stubJobsRepo) GetByID(_ context.Context, id uuid.UUID) (*ent.VerificationJob, error) {
	return &ent.VerificationJob{ID: id}, nil
}

type stubExtractor struct {
	res extract.TextExtractionResult
	err error
}

func (s *stubExtractor) Extract(_ context.Context, _ string) (extract.TextExtractionResult, error) {
	return s.res, s.err
}

func pdfRow() *ent.CredentialFile {
	return &ent.CredentialFile{ID: uuid.New(), ProfileID: uuid.New(), StoredPath: "/tmp/x.pdf", FileExt: "pdf"}
}

func TestRunRecordsExtractedText(t *testing.T) {
	jobs := &stubJobsRepo{}
	p := NewPipeline(&stubFilesRepo{row: pdfRow()}, jobs, &stubExtractor{
		res: extract.TextExtractionResult{Text: "certificate body", Method: "pdf-text", Pages: 2},
	}, nil)

	jobID, res, err := p.Run(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if jobID == uuid.Nil {
		t.Error("job ID is nil")
	}
	if res.Text != "certificate body" {
		t.Errorf("text = %q", res.Text)
	}
	if jobs.markedText != "certificate body" || jobs.markedMethod != "pdf-text" {
		t.Errorf("job recorded %q via %q", jobs.markedText, jobs.markedMethod)
	}
}

// Extraction failure must degrade to an empty text result, not an error, so
// the orchestrator can reject the document instead of aborting.
func TestRunExtractionFailureDegradesToEmpty(t *testing.T) {
	jobs := &stubJobsRepo{}
	p := NewPipeline(&stubFilesRepo{row: pdfRow()}, jobs, &stubExtractor{
		err: errors.New("tesseract: exit status 1"),
	}, nil)

	_, res, err := p.Run(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Run returned error for a soft extraction failure: %v", err)
	}
	if res.Text != "" {
		t.Errorf("text = %q, want empty", res.Text)
	}
	if len(res.Warnings) == 0 {
		t.Error("extraction failure not surfaced as a warning")
	}
	if jobs.markedText != "" {
		t.Errorf("job recorded text %q for a failed extraction", jobs.markedText)
	}
}

func TestRunUnknownFileRowFails(t *testing.T) {
	p := NewPipeline(&stubFilesRepo{err: errors.New("not found")}, &stubJobsRepo{}, &stubExtractor{}, nil)

	if _, _, err := p.Run(context.Background(), uuid.New()); err == nil {
		t.Fatal("expected error for missing file row")
	}
}

func TestRunUnsupportedExtensionFails(t *testing.T) {
	row := pdfRow()
	row.FileExt = "docx"
	jobs := &stubJobsRepo{}
	p := NewPipeline(&stubFilesRepo{row: row}, jobs, &stubExtractor{}, nil)

	if _, _, err := p.Run(context.Background(), uuid.New()); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	if jobs.started != 0 {
		t.Error("job started for an unsupported format")
	}
}
