package pdftext

import (
	"context"

	"github.com/tmcgee/glossdex/internal/fragment"
	"github.com/tmcgee/glossdex/internal/glossary"
)

type pageResult struct {
	frags []fragment.TextFragment
	err   error
}

// Prefetcher wraps a fragment source and fetches one page ahead of the
// caller on a background goroutine. Pages are still delivered strictly in
// the order requested; only the retrieval overlaps with processing.
type Prefetcher struct {
	src      glossary.Source
	nextPage int
	pending  chan pageResult
}

func NewPrefetcher(src glossary.Source) *Prefetcher {
	return &Prefetcher{src: src}
}

func (p *Prefetcher) NumPages() int { return p.src.NumPages() }

func (p *Prefetcher) Fragments(ctx context.Context, page int) ([]fragment.TextFragment, error) {
	var frags []fragment.TextFragment
	var err error

	if p.pending != nil && page == p.nextPage {
		res := <-p.pending
		p.pending = nil
		frags, err = res.frags, res.err
	} else {
		// Non-sequential access falls back to a direct fetch.
		if p.pending != nil {
			<-p.pending
			p.pending = nil
		}
		frags, err = p.src.Fragments(ctx, page)
	}

	if err == nil && page < p.src.NumPages() {
		p.nextPage = page + 1
		ch := make(chan pageResult, 1)
		p.pending = ch
		go func() {
			f, e := p.src.Fragments(ctx, page+1)
			ch <- pageResult{frags: f, err: e}
		}()
	}

	return frags, err
}
