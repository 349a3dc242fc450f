package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/microcred/credential-vault/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for
// verification report exports.
type Service struct {
	credsRepo repository.CredentialRepository
	filesRepo repository.CredentialFileRepository
	logger    *slog.Logger
}

func NewService(credsRepo repository.CredentialRepository, filesRepo repository.CredentialFileRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{credsRepo: credsRepo, filesRepo: filesRepo, logger: logger}
}

// ExportCredentialsXLSX returns an XLSX workbook (as bytes) with every
// verification record for the given profile, newest first.
func (s *Service) ExportCredentialsXLSX(ctx context.Context, profileID uuid.UUID) ([]byte, error) {
	start := time.Now()

	recs, err := s.credsRepo.ListByProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("query credentials: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Credentials"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Uploaded",
		"Certificate",
		"Issuer",
		"Certificate No.",
		"Status",
		"Verification Note",
		"Skills",
		"Level",
		"Fingerprint",
		"Anchor Tx",
		"File",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		filename := ""
		if fileRow, err := s.filesRepo.GetByID(ctx, r.FileID); err == nil && fileRow != nil {
			filename = fileRow.Filename
		}

		skillList := ""
		for i, sk := range r.Skills {
			if i > 0 {
				skillList += ", "
			}
			skillList += sk
		}

		fp := ""
		if r.Fingerprint != nil {
			fp = *r.Fingerprint
		}
		txRef := ""
		if r.AnchorTxRef != nil {
			txRef = *r.AnchorTxRef
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.CreatedAt.Format("2006-01-02"))
		write(2, r.CertificateName)
		write(3, r.Issuer)
		write(4, r.CertificateNumber)
		write(5, r.Status)
		write(6, truncate(r.VerificationNote, 140))
		write(7, skillList)
		write(8, r.Level)
		write(9, fp)
		write(10, txRef)
		write(11, filename)

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 12) // date
	_ = f.SetColWidth(sheet, "B", "C", 28) // certificate, issuer
	_ = f.SetColWidth(sheet, "D", "E", 16) // number, status
	_ = f.SetColWidth(sheet, "F", "F", 48) // note
	_ = f.SetColWidth(sheet, "G", "G", 32) // skills
	_ = f.SetColWidth(sheet, "I", "J", 40) // fingerprint, tx
	_ = f.SetColWidth(sheet, "K", "K", 32) // file

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"profile_id", profileID.String(),
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
