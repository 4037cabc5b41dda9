package presentation

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"droidbridge/internal/domain"
)

func TestPrintMovePlanWarnsAboutFailedCopies(t *testing.T) {
	var buf bytes.Buffer
	p := Printer{Writer: &buf}

	job := &domain.MoveJob{
		RemoteRoot: "/sdcard/DCIM",
		LocalRoot:  "/local",
		Files: []domain.MoveFile{
			{RelPath: "a.jpg", Copied: true},
			{RelPath: "b.jpg", Copied: false, Err: errors.New("device reset")},
		},
	}
	p.PrintMovePlan(job)

	out := buf.String()
	if !strings.Contains(out, "1 of 2") {
		t.Fatalf("expected copy counts, got %q", out)
	}
	if !strings.Contains(out, "b.jpg") || !strings.Contains(out, "NOT be deleted") {
		t.Fatalf("failed files must be called out, got %q", out)
	}
}

func TestPrintWorldsShowsIDAndName(t *testing.T) {
	var buf bytes.Buffer
	p := Printer{Writer: &buf}

	p.PrintWorlds([]domain.WorldEntry{
		{ID: "AbCd=", Name: "Survival Base"},
		{ID: "EfGh="},
	})

	out := buf.String()
	if !strings.Contains(out, "AbCd=") || !strings.Contains(out, "Survival Base") {
		t.Fatalf("expected id and display name, got %q", out)
	}
	if !strings.Contains(out, "2 world(s)") {
		t.Fatalf("expected count, got %q", out)
	}
}

func TestPrintMoveReportWarnsOnPartialDelete(t *testing.T) {
	var buf bytes.Buffer
	p := Printer{Writer: &buf}

	job := &domain.MoveJob{LocalRoot: "/local"}
	p.PrintMoveReport(job, &domain.MoveReport{Deleted: 2, DeleteFailed: 1})

	out := buf.String()
	if !strings.Contains(out, "Deleted 2") || !strings.Contains(out, "Warning") {
		t.Fatalf("expected partial-delete warning, got %q", out)
	}
}
