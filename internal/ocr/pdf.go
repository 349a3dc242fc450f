package ocr

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/gen2brain/go-fitz"

	"github.com/microcred/credential-vault/constants"
)

// thinTextThreshold decides when a PDF text layer is too sparse to be real
// content and the pages should be rasterized and OCR'd instead.
const thinTextThreshold = 32

func (e *Extractor) extractPDF(ctx context.Context, path string) (ExtractionResult, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return ExtractionResult{SourceType: constants.PDF}, fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	pages := doc.NumPage()
	if e.cfg.MaxPages > 0 && pages > e.cfg.MaxPages {
		pages = e.cfg.MaxPages
	}

	text, warns := e.pdfTextLayer(doc, pages)
	if len(strings.TrimSpace(text)) >= thinTextThreshold {
		return ExtractionResult{
			Text:       Normalize(text),
			Pages:      pages,
			SourceType: constants.PDF,
			Method:     "pdf-text",
			Language:   e.cfg.TesseractLang,
			Warnings:   warns,
		}, nil
	}

	// no usable text layer: rasterize and OCR each page
	text, ocrWarns, err := e.pdfOCR(ctx, doc, pages)
	warns = append(warns, ocrWarns...)
	if err != nil {
		return ExtractionResult{SourceType: constants.PDF, Warnings: warns}, err
	}
	return ExtractionResult{
		Text:       Normalize(text),
		Pages:      pages,
		SourceType: constants.PDF,
		Method:     "pdf-ocr",
		Language:   e.cfg.TesseractLang,
		Warnings:   warns,
	}, nil
}

func (e *Extractor) pdfTextLayer(doc *fitz.Document, pages int) (string, []string) {
	var b strings.Builder
	var warns []string
	for n := 0; n < pages; n++ {
		txt, err := doc.Text(n)
		if err != nil {
			warns = append(warns, fmt.Sprintf("page %d text: %v", n+1, err))
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\f\n") // keep a clear page break marker
		}
		b.WriteString(txt)
	}
	return b.String(), warns
}

func (e *Extractor) pdfOCR(ctx context.Context, doc *fitz.Document, pages int) (string, []string, error) {
	var b strings.Builder
	var warns []string
	rendered := 0

	for n := 0; n < pages; n++ {
		img, err := doc.Image(n)
		if err != nil {
			warns = append(warns, fmt.Sprintf("page %d render: %v", n+1, err))
			continue
		}

		tmpPath, err := writeTempPNG(img)
		if err != nil {
			warns = append(warns, fmt.Sprintf("page %d: %v", n+1, err))
			continue
		}

		txt, w, err := e.tesseractOCR(ctx, tmpPath)
		_ = os.Remove(tmpPath)
		warns = append(warns, w...)
		if err != nil {
			warns = append(warns, err.Error())
			continue
		}
		rendered++
		if b.Len() > 0 {
			b.WriteString("\n\f\n")
		}
		b.WriteString(txt)
	}

	if rendered == 0 {
		return "", warns, fmt.Errorf("no pages rendered")
	}
	return b.String(), warns, nil
}

func writeTempPNG(img image.Image) (string, error) {
	tmp, err := os.CreateTemp("", "cv-page-*.png")
	if err != nil {
		return "", fmt.Errorf("create temp png: %w", err)
	}
	if err := png.Encode(tmp, img); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("encode png: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
