package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/microcred/credential-vault/constants"
	"github.com/microcred/credential-vault/gen/ent"
	"github.com/microcred/credential-vault/internal/corroborate"
	"github.com/microcred/credential-vault/internal/entity"
	"github.com/microcred/credential-vault/internal/extract"
	"github.com/microcred/credential-vault/internal/filestore"
	"github.com/microcred/credential-vault/internal/skills"
	"github.com/microcred/credential-vault/internal/verify"
)

const longText = "This certifies that Jane Example has successfully completed the Cloud Practitioner program with certificate number EX-1001, issued and verified by Example Institute in good standing."

type fakeStore struct {
	dir     string
	saved   []filestore.StoredFile
	removed []string
	saveErr error
}

func (f *fakeStore) Save(filename string, content []byte) (filestore.StoredFile, error) {
	if f.saveErr != nil {
		return filestore.StoredFile{}, f.saveErr
	}
	path := filepath.Join(f.dir, filename)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return filestore.StoredFile{}, err
	}
	sf := filestore.StoredFile{
		Path:        path,
		Filename:    filename,
		FileExt:     "pdf",
		Size:        len(content),
		ContentHash: []byte{0x01},
		StoredAt:    time.Now(),
	}
	f.saved = append(f.saved, sf)
	return sf, nil
}

func (f *fakeStore) Remove(path string) error {
	f.removed = append(f.removed, path)
	return nil
}

type fakeFilesRepo struct {
	row   *ent.CredentialFile
	dedup bool
}

func (f *fakeFilesRepo) GetByID(_ context.Context, _ uuid.UUID) (*ent.CredentialFile, error) {
	return f.row, nil
}

func (f *fakeFilesRepo) GetByProfileAndHash(_ context.Context, _ uuid.UUID, _ []byte) (*ent.CredentialFile, error) {
	return f.row, nil
}

func (f *fakeFilesRepo) Create(_ context.Context, _ uuid.UUID, _, _, _ string, _ int, _ []byte, _ time.Time) (*ent.CredentialFile, error) {
	return f.row, nil
}

func (f *fakeFilesRepo) UpsertByHash(_ context.Context, _ uuid.UUID, storedPath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.CredentialFile, bool, error) {
	if f.row == nil {
		f.row = &ent.CredentialFile{
			ID:          uuid.New(),
			StoredPath:  storedPath,
			Filename:    filename,
			FileExt:     ext,
			FileSize:    size,
			ContentHash: hash,
			UploadedAt:  uploadedAt,
		}
	}
	return f.row, f.dedup, nil
}

func (f *fakeFilesRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type fakeCredsRepo struct {
	created   []*entity.Credential
	createErr error
}

func (f *fakeCredsRepo) Create(_ context.Context, rec *entity.Credential) (*ent.Credential, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, rec)
	return &ent.Credential{
		ID:          uuid.New(),
		ProfileID:   rec.ProfileID,
		FileID:      rec.FileID,
		Status:      rec.Status,
		AnchorState: rec.AnchorState,
	}, nil
}

func (f *fakeCredsRepo) GetByID(_ context.Context, _ uuid.UUID) (*ent.Credential, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCredsRepo) ListByProfile(_ context.Context, _ uuid.UUID) ([]*ent.Credential, error) {
	return nil, nil
}

func (f *fakeCredsRepo) DeleteOwned(_ context.Context, _, _ uuid.UUID) error { return nil }

type fakeJobsRepo struct {
	finishedOK   int
	failures     []string
	markErr      error
	startedJobID uuid.UUID
}

func (f *fakeJobsRepo) Start(_ context.Context, _, _ uuid.UUID, _ string) (*ent.VerificationJob, error) {
	f.startedJobID = uuid.New()
	return &ent.VerificationJob{ID: f.startedJobID}, nil
}

func (f *fakeJobsRepo) MarkExtracted(_ context.Context, _ uuid.UUID, _, _ string, _ int, _ int64) error {
	return f.markErr
}

func (f *fakeJobsRepo) FinishSuccess(_ context.Context, _, _ uuid.UUID) error {
	f.finishedOK++
	return nil
}

func (f *fakeJobsRepo) FinishFailure(_ context.Context, _ uuid.UUID, message string) error {
	f.failures = append(f.failures, message)
	return nil
}

func (f *fakeJobsRepo) GetByID(_ context.Context, id uuid.UUID) (*ent.VerificationJob, error) {
	return &ent.VerificationJob{ID: id}, nil
}

type fakeExtract struct {
	text string
	err  error
}

func (f *fakeExtract) Run(_ context.Context, _ uuid.UUID) (uuid.UUID, extract.TextExtractionResult, error) {
	if f.err != nil {
		return uuid.Nil, extract.TextExtractionResult{}, f.err
	}
	return uuid.New(), extract.TextExtractionResult{Text: f.text, Method: "pdf-text", Pages: 1}, nil
}

type fakeMatcher struct {
	judgment verify.Judgment
}

func (f *fakeMatcher) Analyze(_ context.Context, text string, _ verify.Claim) verify.Judgment {
	if len(text) < verify.MinAnalyzableLength {
		return verify.Judgment{Matched: false, Reason: "document unreadable or too short"}
	}
	return f.judgment
}

type fakeChecker struct {
	judgment corroborate.Judgment
	calls    int
}

func (f *fakeChecker) Check(_ context.Context, _, _ string) corroborate.Judgment {
	f.calls++
	return f.judgment
}

type fakeAnchorer struct {
	txRef    string
	err      error
	payloads [][]byte
}

func (f *fakeAnchorer) Anchor(_ context.Context, _ string, payload []byte) (string, error) {
	f.payloads = append(f.payloads, payload)
	if f.err != nil {
		return "", f.err
	}
	return f.txRef, nil
}

type harness struct {
	proc     *Processor
	store    *fakeStore
	files    *fakeFilesRepo
	creds    *fakeCredsRepo
	jobs     *fakeJobsRepo
	checker  *fakeChecker
	anchorer *fakeAnchorer
}

func newHarness(t *testing.T, matched bool, anchorErr error) *harness {
	t.Helper()
	h := &harness{
		store:    &fakeStore{dir: t.TempDir()},
		files:    &fakeFilesRepo{},
		creds:    &fakeCredsRepo{},
		jobs:     &fakeJobsRepo{},
		checker:  &fakeChecker{},
		anchorer: &fakeAnchorer{txRef: "0xabc123", err: anchorErr},
	}
	h.proc = NewProcessor(
		h.store, h.files, h.creds, h.jobs,
		&fakeExtract{text: longText},
		&fakeMatcher{judgment: verify.Judgment{Matched: matched, Reason: "analysis complete"}},
		h.checker,
		skills.NewInferencer(nil),
		h.anchorer,
		nil,
	)
	return h
}

func baseRequest() Request {
	return Request{
		ProfileID: uuid.New(),
		Filename:  "certificate.pdf",
		Content:   []byte("%PDF-1.4 fake"),
		Claim: verify.Claim{
			CertificateName:   "Cloud Practitioner",
			Issuer:            "Example Institute",
			CertificateNumber: "EX-1001",
		},
	}
}

func TestProcessMatchedWithoutURLVerifies(t *testing.T) {
	h := newHarness(t, true, nil)

	row, err := h.proc.Process(context.Background(), baseRequest())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if row.Status != string(constants.StatusVerified) {
		t.Errorf("status = %q, want verified", row.Status)
	}
	if h.checker.calls != 0 {
		t.Errorf("checker ran %d times without a URL", h.checker.calls)
	}
	if len(h.creds.created) != 1 {
		t.Fatalf("created %d records, want exactly 1", len(h.creds.created))
	}
	rec := h.creds.created[0]
	if rec.Fingerprint == nil || len(*rec.Fingerprint) != 64 {
		t.Errorf("fingerprint = %v, want 64-char hex", rec.Fingerprint)
	}
	if rec.AnchorState != string(constants.AnchorSucceeded) {
		t.Errorf("anchor state = %q, want ANCHORED", rec.AnchorState)
	}
	if rec.AnchorTxRef == nil || *rec.AnchorTxRef != "0xabc123" {
		t.Errorf("anchor tx ref = %v", rec.AnchorTxRef)
	}
	if h.jobs.finishedOK != 1 {
		t.Errorf("job finished %d times, want 1", h.jobs.finishedOK)
	}
}

func TestProcessContradictedURLDemotes(t *testing.T) {
	h := newHarness(t, true, nil)
	h.checker.judgment = corroborate.Judgment{
		Outcome: constants.CorroborationContradicted,
		Note:    "URL check failed: HTTP 404",
	}

	req := baseRequest()
	req.CertificateURL = "https://registry.example.com/cert/EX-1001"

	row, err := h.proc.Process(context.Background(), req)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if row.Status != string(constants.StatusPending) {
		t.Errorf("status = %q, want pending", row.Status)
	}
	rec := h.creds.created[0]
	if !strings.Contains(rec.VerificationNote, "Demoted") {
		t.Errorf("note %q missing demotion marker", rec.VerificationNote)
	}
	if rec.CorroborationOutcome == nil || *rec.CorroborationOutcome != string(constants.CorroborationContradicted) {
		t.Errorf("corroboration outcome = %v", rec.CorroborationOutcome)
	}
}

func TestProcessNonMatchSkipsCorroboration(t *testing.T) {
	h := newHarness(t, false, nil)

	req := baseRequest()
	req.CertificateURL = "https://registry.example.com/cert/EX-1001"

	row, err := h.proc.Process(context.Background(), req)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if row.Status != string(constants.StatusPending) {
		t.Errorf("status = %q, want pending", row.Status)
	}
	if h.checker.calls != 0 {
		t.Errorf("checker ran %d times for a non-match", h.checker.calls)
	}
	if h.creds.created[0].CorroborationOutcome != nil {
		t.Error("non-match record carries a corroboration outcome")
	}
}

func TestProcessAnchorFailureLeavesStatusAlone(t *testing.T) {
	h := newHarness(t, true, errors.New("gateway unreachable"))

	row, err := h.proc.Process(context.Background(), baseRequest())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if row.Status != string(constants.StatusVerified) {
		t.Errorf("status = %q, anchor failure must not change it", row.Status)
	}
	rec := h.creds.created[0]
	if rec.AnchorState != string(constants.AnchorFailed) {
		t.Errorf("anchor state = %q, want FAILED", rec.AnchorState)
	}
	if rec.AnchorTxRef != nil {
		t.Errorf("anchor tx ref = %q, want absent", *rec.AnchorTxRef)
	}
	if rec.AnchorError == nil || !strings.Contains(*rec.AnchorError, "unreachable") {
		t.Errorf("anchor error = %v", rec.AnchorError)
	}
}

func TestProcessAnchorPayloadIsFingerprintPrefix(t *testing.T) {
	h := newHarness(t, true, nil)

	if _, err := h.proc.Process(context.Background(), baseRequest()); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(h.anchorer.payloads) != 1 {
		t.Fatalf("anchored %d times, want 1", len(h.anchorer.payloads))
	}
	payload := h.anchorer.payloads[0]
	fp := h.creds.created[0].Fingerprint
	if fp == nil || string(payload) != (*fp)[:64] {
		t.Errorf("payload %q is not the fingerprint prefix", payload)
	}
}

func TestProcessNoAnchorerRecordsNotAttempted(t *testing.T) {
	h := newHarness(t, true, nil)
	h.proc.anchorer = nil

	if _, err := h.proc.Process(context.Background(), baseRequest()); err != nil {
		t.Fatalf("Process: %v", err)
	}
	rec := h.creds.created[0]
	if rec.AnchorState != string(constants.AnchorNotAttempted) {
		t.Errorf("anchor state = %q, want NOT_ATTEMPTED", rec.AnchorState)
	}
}

func TestProcessPersistFailureCleansUpStoredFile(t *testing.T) {
	h := newHarness(t, true, nil)
	h.creds.createErr = errors.New("connection refused")

	_, err := h.proc.Process(context.Background(), baseRequest())
	if err == nil {
		t.Fatal("expected persistence error")
	}
	if len(h.store.removed) == 0 {
		t.Error("stored file was not cleaned up after persist failure")
	}
	if len(h.jobs.failures) != 1 {
		t.Errorf("job failure recorded %d times, want 1", len(h.jobs.failures))
	}
	if h.jobs.finishedOK != 0 {
		t.Error("job marked DONE despite persist failure")
	}
}

func TestProcessInvalidUploadRejectedBeforePipeline(t *testing.T) {
	h := newHarness(t, true, nil)
	h.store.saveErr = errors.New("filestore: unsupported extension \"exe\"")

	_, err := h.proc.Process(context.Background(), baseRequest())
	if err == nil {
		t.Fatal("expected save error")
	}
	if len(h.creds.created) != 0 {
		t.Error("record persisted for a rejected upload")
	}
}

func TestProcessDedupKeepsOriginalCopy(t *testing.T) {
	h := newHarness(t, true, nil)

	original := filepath.Join(t.TempDir(), "original.pdf")
	if err := os.WriteFile(original, []byte("%PDF-1.4 fake"), 0o600); err != nil {
		t.Fatal(err)
	}
	h.files.row = &ent.CredentialFile{ID: uuid.New(), StoredPath: original, FileExt: "pdf"}
	h.files.dedup = true

	if _, err := h.proc.Process(context.Background(), baseRequest()); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(h.store.removed) != 1 {
		t.Fatalf("removed %d paths, want just the duplicate", len(h.store.removed))
	}
	if h.store.removed[0] == original {
		t.Error("dedup removed the original stored copy")
	}
}
