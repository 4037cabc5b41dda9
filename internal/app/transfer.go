package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"droidbridge/internal/domain"
	appErrors "droidbridge/internal/errors"
)

// TransferEngine implements pull, push and the transactional move over the
// bridge channel. Move is two explicit phases with the operator checkpoint
// between them: StageMove copies, CommitMove deletes.
type TransferEngine struct {
	Bridge     Bridge
	Log        zerolog.Logger
	OnProgress ProgressFunc
}

func (e *TransferEngine) Pull(ctx context.Context, remote, local string) error {
	ok, err := e.Bridge.Exists(ctx, remote)
	if err != nil {
		return appErrors.Wrap(appErrors.Unreachable, "pull", remote, err)
	}
	if !ok {
		return appErrors.New(appErrors.Unreachable, "pull", remote, "remote path does not exist")
	}
	if err := e.Bridge.Pull(ctx, remote, local); err != nil {
		return appErrors.Wrap(appErrors.IOFailure, "pull", remote, err)
	}
	return nil
}

func (e *TransferEngine) Push(ctx context.Context, local, remote string) error {
	// No existence precondition: the destination may legitimately not exist yet.
	if err := e.Bridge.Push(ctx, local, remote); err != nil {
		return appErrors.Wrap(appErrors.IOFailure, "push", remote, err)
	}
	return nil
}

// ListDir lists a remote directory with hidden entries filtered out.
func (e *TransferEngine) ListDir(ctx context.Context, remote string) ([]string, error) {
	entries, err := e.Bridge.List(ctx, remote)
	if err != nil {
		return nil, appErrors.Wrap(appErrors.Unreachable, "ls", remote, err)
	}
	var out []string
	for _, name := range entries {
		if strings.HasPrefix(name, ".") {
			continue
		}
		out = append(out, name)
	}
	return out, nil
}

// StageMove enumerates the non-hidden files under remote and copies them to
// local, preserving relative structure. An empty enumeration is a successful
// no-op job. If not a single file copies, the whole job fails. Files that
// failed to copy are recorded but can never enter the delete set.
func (e *TransferEngine) StageMove(ctx context.Context, remote, local string) (*domain.MoveJob, error) {
	remote = strings.TrimRight(remote, "/")
	files, err := e.Bridge.ListFiles(ctx, remote)
	if err != nil {
		return nil, appErrors.Wrap(appErrors.Unreachable, "move", remote, err)
	}

	job := &domain.MoveJob{
		ID:         uuid.NewString(),
		RemoteRoot: remote,
		LocalRoot:  local,
	}

	var selected []string
	for _, f := range files {
		rel := strings.TrimPrefix(strings.TrimPrefix(f, remote), "/")
		if rel == "" || domain.Hidden(rel) {
			continue
		}
		selected = append(selected, rel)
	}
	if len(selected) == 0 {
		e.Log.Info().Str("remote", remote).Msg("nothing to move")
		return job, nil
	}

	for i, rel := range selected {
		remotePath := remote + "/" + rel
		localPath := filepath.Join(local, filepath.FromSlash(rel))
		err := e.Bridge.Pull(ctx, remotePath, localPath)
		if err != nil {
			e.Log.Warn().Str("file", rel).Err(err).Msg("copy failed, excluded from delete set")
		}
		job.Files = append(job.Files, domain.MoveFile{
			RemotePath: remotePath,
			RelPath:    rel,
			LocalPath:  localPath,
			Copied:     err == nil,
			Err:        err,
		})
		if e.OnProgress != nil {
			e.OnProgress(i+1, len(selected), rel)
		}
	}

	if job.CopiedCount() == 0 {
		return job, appErrors.Newf(appErrors.IOFailure, "move", remote,
			"none of %d files copied, aborting without deleting anything", len(job.Files))
	}
	return job, nil
}

// CommitMove deletes, on the device, exactly the files the job confirmed
// copied. The hidden filter is applied again as a second safety net. Partial
// deletion is a warning, not a failure: the copies are already durable.
func (e *TransferEngine) CommitMove(ctx context.Context, job *domain.MoveJob) (*domain.MoveReport, error) {
	report := &domain.MoveReport{}
	for _, f := range job.Copied() {
		if domain.Hidden(f.RelPath) {
			continue
		}
		if err := e.Bridge.Delete(ctx, f.RemotePath); err != nil {
			e.Log.Warn().Str("file", f.RelPath).Err(err).Msg("remote delete failed")
			report.DeleteFailed++
			continue
		}
		report.Deleted++
	}
	if report.Deleted > 0 {
		if err := e.Bridge.PruneEmptyDirs(ctx, job.RemoteRoot); err != nil {
			e.Log.Debug().Err(err).Msg("empty directory pruning")
		}
	}
	if report.DeleteFailed > 0 {
		report.Warning = appErrors.Newf(appErrors.PartialFailure, "move", job.RemoteRoot,
			"%d of %d deletions failed; the copies are durable and the failed files remain on the device",
			report.DeleteFailed, report.Deleted+report.DeleteFailed)
	}
	return report, nil
}
