package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/tmcgee/glossdex/internal/fragment"
	pdflib "github.com/ledongthuc/pdf"
)

// Reader yields positioned text fragments from a PDF, page by page, in
// content-stream order.
type Reader struct {
	file *os.File
	pdf  *pdflib.Reader
}

// Open opens a PDF file on disk.
func Open(path string) (*Reader, error) {
	f, r, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return &Reader{file: f, pdf: r}, nil
}

// FromBytes reads a PDF already held in memory, e.g. an upload.
func FromBytes(data []byte) (*Reader, error) {
	r, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}
	return &Reader{pdf: r}, nil
}

func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

func (r *Reader) NumPages() int { return r.pdf.NumPage() }

// Fragments returns one page's text runs as fragments. Pages with no content
// yield nil; a page the library cannot decode yields an error.
func (r *Reader) Fragments(ctx context.Context, page int) (frags []fragment.TextFragment, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// ledongthuc/pdf panics on malformed content streams.
	defer func() {
		if rec := recover(); rec != nil {
			frags, err = nil, fmt.Errorf("malformed page content: %v", rec)
		}
	}()

	p := r.pdf.Page(page)
	if p.V.IsNull() {
		return nil, nil
	}
	return mergeRuns(p.Content().Text), nil
}

// mergeRuns coalesces consecutive runs sharing font identity and size into
// single fragments. The library emits one Text per glyph cluster; a line
// styled uniformly is one run for classification purposes.
func mergeRuns(texts []pdflib.Text) []fragment.TextFragment {
	var frags []fragment.TextFragment
	for _, t := range texts {
		if n := len(frags); n > 0 && frags[n-1].FontID == t.Font && frags[n-1].Height == t.FontSize {
			frags[n-1].Text += t.S
			continue
		}
		frags = append(frags, fragment.TextFragment{Text: t.S, FontID: t.Font, Height: t.FontSize})
	}
	return frags
}
