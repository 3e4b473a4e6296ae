package pipeline

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/tmcgee/glossdex/internal/config"
	"github.com/tmcgee/glossdex/internal/fragment"
)

func TestWorker_FailsOnInvalidPDF(t *testing.T) {
	job := &Job{ID: "bad-doc", Status: StatusQueued}
	job.SetFileData([]byte("this is not a pdf"))

	w := NewWorker(fragment.DefaultStyleRules(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	w.Process(context.Background(), job)

	snap := job.Snapshot()
	if snap.Status != StatusFailed {
		t.Errorf("expected status %q, got %q", StatusFailed, snap.Status)
	}
	if len(snap.Progress.Errors) == 0 {
		t.Error("expected a recorded error")
	}
	if job.Result() != nil {
		t.Error("failed job must not carry a result")
	}
}

func TestOrchestrator_SubmitQueueFull(t *testing.T) {
	cfg := config.Config{WorkerCount: 1, MaxQueueSize: 1, JobTTL: time.Hour}
	// Not started: nothing drains the queue.
	o := NewOrchestrator(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	if err := o.Submit(&Job{ID: "first"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second := &Job{ID: "second"}
	if err := o.Submit(second); err == nil {
		t.Fatal("expected queue-full error")
	}
	if second.Snapshot().Status != StatusFailed {
		t.Errorf("expected rejected job marked failed, got %q", second.Snapshot().Status)
	}
	// Both jobs remain queryable.
	if o.GetJob("first") == nil || o.GetJob("second") == nil {
		t.Error("expected submitted jobs to be registered")
	}
	if o.QueueDepth() != 1 {
		t.Errorf("expected queue depth 1, got %d", o.QueueDepth())
	}
}
