package glossary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tmcgee/glossdex/internal/fragment"
)

// Source produces positioned text fragments page by page, in reading order.
// Ordering fidelity is assumed, not verified: both region tracking and title
// accumulation depend on fragments arriving in original document order.
type Source interface {
	NumPages() int
	Fragments(ctx context.Context, page int) ([]fragment.TextFragment, error)
}

// Extract walks every page of src in order, forwards glossary-region
// fragments to an Assembler, and returns the completed term mapping.
//
// Region tracking: a banner fragment whose text equals rules.RegionStartText
// opens the region; any other banner closes it. Banners themselves are never
// forwarded. A page extraction failure aborts the whole run — skipping a page
// would silently corrupt sections spanning the gap.
func Extract(ctx context.Context, src Source, rules fragment.StyleRules, log *slog.Logger) (map[string][]string, error) {
	asm := NewAssembler()
	inRegion := false

	numPages := src.NumPages()
	for pageNum := 1; pageNum <= numPages; pageNum++ {
		frags, err := src.Fragments(ctx, pageNum)
		if err != nil {
			return nil, fmt.Errorf("extract page %d: %w", pageNum, err)
		}
		for _, f := range frags {
			c := rules.Classify(f)
			if c.IsRegionBanner {
				inRegion = c.Text == rules.RegionStartText
				continue
			}
			if inRegion {
				asm.Add(c)
			}
		}
		log.Debug("page processed", "page", pageNum, "fragments", len(frags), "in_region", inRegion)
	}

	asm.Complete()
	return asm.Entries(), nil
}
