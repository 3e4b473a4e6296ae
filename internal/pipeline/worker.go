package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tmcgee/glossdex/internal/fragment"
	"github.com/tmcgee/glossdex/internal/glossary"
	"github.com/tmcgee/glossdex/internal/pdftext"
)

// Worker processes a single extraction job.
type Worker struct {
	styles fragment.StyleRules
	log    *slog.Logger
}

func NewWorker(styles fragment.StyleRules, log *slog.Logger) *Worker {
	return &Worker{styles: styles, log: log}
}

// Process runs the full extraction for a job. A page that cannot be
// extracted fails the job outright: skipping it would silently corrupt
// sections spanning the gap, so there is no partial result and no retry.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID)

	job.SetStatus(StatusExtracting, "opening document")
	src, err := pdftext.FromBytes(job.FileData())
	if err != nil {
		log.Error("open failed", "error", err)
		job.AddError(fmt.Sprintf("open: %s", err))
		job.SetStatus(StatusFailed, "opening document")
		return
	}
	defer src.Close()

	job.SetPagesTotal(src.NumPages())
	job.SetStatus(StatusExtracting, "walking pages")

	entries, err := glossary.Extract(ctx, pdftext.NewPrefetcher(src), w.styles, log)
	if err != nil {
		log.Error("extraction failed", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "walking pages")
		return
	}

	job.SetResult(entries)
	job.SetStatus(StatusCompleted, "done")
	log.Info("extraction complete", "pages", src.NumPages(), "terms", len(entries))
}
