package presentation

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"droidbridge/internal/domain"
)

// Printer renders operation results for the operator.
type Printer struct {
	Writer io.Writer
}

func (p Printer) PrintDevices(serials []string) {
	if len(serials) == 0 {
		fmt.Fprintln(p.Writer, "No devices attached.")
		return
	}
	fmt.Fprintf(p.Writer, "%d device(s) attached:\n", len(serials))
	for _, s := range serials {
		fmt.Fprintln(p.Writer, "  "+s)
	}
}

func (p Printer) PrintEntries(names []string) {
	for _, name := range names {
		fmt.Fprintln(p.Writer, name)
	}
}

func (p Printer) PrintWorlds(entries []domain.WorldEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(p.Writer, "No worlds found on the device.")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(p.Writer, "%-32s %s\n", e.ID, e.DisplayName())
	}
	fmt.Fprintf(p.Writer, "\n%d world(s).\n", len(entries))
}

func (p Printer) PrintMovePlan(job *domain.MoveJob) {
	if job.Empty() {
		fmt.Fprintln(p.Writer, "Nothing to move.")
		return
	}
	fmt.Fprintf(p.Writer, "Copied %d of %d file(s) to %s.\n", job.CopiedCount(), len(job.Files), job.LocalRoot)
	if job.FailedCount() > 0 {
		fmt.Fprintf(p.Writer, "Warning: %d file(s) failed to copy and will NOT be deleted:\n", job.FailedCount())
		for _, f := range job.Files {
			if !f.Copied {
				fmt.Fprintf(p.Writer, "  %s (%v)\n", f.RelPath, f.Err)
			}
		}
	}
}

func (p Printer) PrintMoveReport(job *domain.MoveJob, report *domain.MoveReport) {
	fmt.Fprintf(p.Writer, "Deleted %d file(s) from the device.\n", report.Deleted)
	if report.DeleteFailed > 0 {
		fmt.Fprintf(p.Writer, "Warning: %d file(s) could not be deleted remotely; the copies in %s are intact.\n",
			report.DeleteFailed, job.LocalRoot)
	}
}

func (p Printer) PrintMoveAborted(job *domain.MoveJob) {
	fmt.Fprintf(p.Writer, "Aborted. The copies in %s are kept; the device was not touched.\n", job.LocalRoot)
}

func (p Printer) PrintMountSession(s *domain.MountSession) {
	fmt.Fprintf(p.Writer, "Mounted %s at %s (%s@%s:%d).\n",
		s.RemoteRoot, s.MountPoint, s.Transport.User, s.Transport.Host, s.Transport.Port)
}

func (p Printer) PrintManifest(m domain.Manifest) {
	fmt.Fprintf(p.Writer, "Retrieved %d item(s) from %s:\n", len(m.Items), m.Host)
	for _, item := range m.Items {
		status := "ok"
		if !item.Complete {
			status = "INCOMPLETE"
		}
		fmt.Fprintf(p.Writer, "  %-32s %4d files  %10s  %s\n",
			item.Name, item.Files, humanize.Bytes(uint64(item.Bytes)), status)
	}
}
