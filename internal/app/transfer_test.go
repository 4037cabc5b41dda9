package app

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	appErrors "droidbridge/internal/errors"
)

func TestStageMoveExcludesHiddenAndFailedFromDeleteSet(t *testing.T) {
	bridge := newFakeBridge()
	bridge.files["/sdcard/DCIM"] = []string{
		"/sdcard/DCIM/a.jpg",
		"/sdcard/DCIM/sub/b.jpg",
		"/sdcard/DCIM/.thumbnails/c.jpg",
		"/sdcard/DCIM/bad.jpg",
	}
	bridge.pullErr["/sdcard/DCIM/bad.jpg"] = errors.New("device reset")

	engine := &TransferEngine{Bridge: bridge, Log: zerolog.Nop()}
	job, err := engine.StageMove(context.Background(), "/sdcard/DCIM", "/local")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(job.Files) != 3 {
		t.Fatalf("hidden entries must not be enumerated, got %d files", len(job.Files))
	}
	if job.CopiedCount() != 2 || job.FailedCount() != 1 {
		t.Fatalf("expected 2 copied / 1 failed, got %d / %d", job.CopiedCount(), job.FailedCount())
	}

	report, err := engine.CommitMove(context.Background(), job)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Deleted != 2 {
		t.Fatalf("expected 2 deletions, got %d", report.Deleted)
	}

	// Deleted set must be a subset of the successfully copied set.
	copied := map[string]bool{}
	for _, f := range job.Copied() {
		copied[f.RemotePath] = true
	}
	for _, deleted := range bridge.deleted {
		if !copied[deleted] {
			t.Fatalf("%s was deleted without a confirmed copy", deleted)
		}
	}
	if len(bridge.pruned) == 0 {
		t.Fatal("expected empty-directory pruning after deletion")
	}
}

func TestStageMoveEmptyEnumerationIsSuccess(t *testing.T) {
	bridge := newFakeBridge()

	engine := &TransferEngine{Bridge: bridge, Log: zerolog.Nop()}
	job, err := engine.StageMove(context.Background(), "/sdcard/Download", "/local")
	if err != nil {
		t.Fatalf("nothing to move must not be an error: %v", err)
	}
	if !job.Empty() {
		t.Fatal("expected empty job")
	}
}

func TestStageMoveFailsWhenNothingCopied(t *testing.T) {
	bridge := newFakeBridge()
	bridge.files["/sdcard/DCIM"] = []string{"/sdcard/DCIM/a.jpg"}
	bridge.pullErr["/sdcard/DCIM/a.jpg"] = errors.New("io error")

	engine := &TransferEngine{Bridge: bridge, Log: zerolog.Nop()}
	job, err := engine.StageMove(context.Background(), "/sdcard/DCIM", "/local")
	if err == nil {
		t.Fatal("zero copies must fail the whole job")
	}
	if job.CopiedCount() != 0 {
		t.Fatalf("expected no copies, got %d", job.CopiedCount())
	}

	report, err := engine.CommitMove(context.Background(), job)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Deleted != 0 || len(bridge.deleted) != 0 {
		t.Fatal("nothing may be deleted when nothing was copied")
	}
}

func TestCommitMoveTreatsPartialDeleteAsWarning(t *testing.T) {
	bridge := newFakeBridge()
	bridge.files["/r"] = []string{"/r/a", "/r/b"}
	bridge.deleteErr["/r/b"] = errors.New("read-only filesystem")

	engine := &TransferEngine{Bridge: bridge, Log: zerolog.Nop()}
	job, err := engine.StageMove(context.Background(), "/r", "/local")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report, err := engine.CommitMove(context.Background(), job)
	if err != nil {
		t.Fatalf("partial delete must not be fatal: %v", err)
	}
	if report.Deleted != 1 || report.DeleteFailed != 1 {
		t.Fatalf("expected 1 deleted / 1 failed, got %d / %d", report.Deleted, report.DeleteFailed)
	}
	if !appErrors.Is(report.Warning, appErrors.PartialFailure) {
		t.Fatalf("a partial delete must surface as a partial-failure warning, got %v", report.Warning)
	}
}

func TestStageMoveReportsProgress(t *testing.T) {
	bridge := newFakeBridge()
	bridge.files["/r"] = []string{"/r/a", "/r/b"}

	var seen int
	engine := &TransferEngine{Bridge: bridge, Log: zerolog.Nop(), OnProgress: func(current, total int, _ string) {
		seen++
		if total != 2 {
			t.Errorf("expected total 2, got %d", total)
		}
	}}
	if _, err := engine.StageMove(context.Background(), "/r", "/local"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen != 2 {
		t.Fatalf("expected 2 progress reports, got %d", seen)
	}
}

func TestPullVerifiesExistenceFirst(t *testing.T) {
	bridge := newFakeBridge()

	engine := &TransferEngine{Bridge: bridge, Log: zerolog.Nop()}
	err := engine.Pull(context.Background(), "/sdcard/missing", "/local/missing")
	if !appErrors.Is(err, appErrors.Unreachable) {
		t.Fatalf("expected unreachable for a missing source, got %v", err)
	}
	if len(bridge.pulled) != 0 {
		t.Fatal("no pull may happen for a missing source")
	}
}

func TestListDirFiltersHiddenEntries(t *testing.T) {
	bridge := newFakeBridge()
	bridge.entries["/sdcard"] = []string{"DCIM", ".hidden", "Download"}

	engine := &TransferEngine{Bridge: bridge, Log: zerolog.Nop()}
	entries, err := engine.ListDir(context.Background(), "/sdcard")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 visible entries, got %v", entries)
	}
}
