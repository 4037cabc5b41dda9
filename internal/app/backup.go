package app

import (
	"context"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"droidbridge/internal/domain"
	appErrors "droidbridge/internal/errors"
)

const manifestFile = "manifest.yaml"

// Backuper stages world directories on the local side and records a manifest
// for the completed retrieval.
type Backuper struct {
	Bridge Bridge
	FS     afero.Fs
	Log    zerolog.Logger
	// Now is split out so staging folder names are deterministic in tests.
	Now func() time.Time
}

func (b Backuper) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

// PullWorld copies one world into a timestamped folder under stagingRoot and
// returns the local directory plus its manifest item. A failed pull still
// yields an item, flagged incomplete, so the caller can report it without
// aborting the whole retrieval.
func (b Backuper) PullWorld(ctx context.Context, entry domain.WorldEntry, stagingRoot string) (string, domain.ManifestItem, error) {
	folder := domain.SanitizeName(entry.Name, entry.ID) + "-" + b.now().Format("20060102-150405")
	localDir := filepath.Join(stagingRoot, folder)

	item := domain.ManifestItem{
		ID:   entry.ID,
		Name: entry.DisplayName(),
	}

	if err := b.FS.MkdirAll(stagingRoot, 0o755); err != nil {
		return "", item, appErrors.Wrap(appErrors.IOFailure, "backup", stagingRoot, err)
	}

	if err := b.Bridge.Pull(ctx, entry.RemotePath, localDir); err != nil {
		return "", item, appErrors.Wrap(appErrors.IOFailure, "backup", entry.RemotePath, err)
	}

	files, bytes, digest, err := b.summarize(localDir)
	if err != nil {
		b.Log.Warn().Str("world", entry.ID).Err(err).Msg("staged copy could not be summarized")
		return localDir, item, nil
	}

	item.Files = files
	item.Bytes = bytes
	item.Digest = digest
	item.Complete = files > 0
	return localDir, item, nil
}

// summarize walks the staged copy and folds per-file xxhash digests into one
// integrity token for the manifest.
func (b Backuper) summarize(localDir string) (int, int64, string, error) {
	var files int
	var total int64
	sum := xxhash.New()

	err := afero.Walk(b.FS, localDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		f, err := b.FS.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		fileSum := xxhash.New()
		n, err := io.Copy(fileSum, f)
		if err != nil {
			return err
		}
		sum.Write(fileSum.Sum(nil))
		files++
		total += n
		return nil
	})
	if err != nil {
		return 0, 0, "", err
	}
	return files, total, hex.EncodeToString(sum.Sum(nil)), nil
}

// WriteManifest records the retrieval summary next to the staged copies.
func (b Backuper) WriteManifest(m domain.Manifest, stagingRoot string) error {
	raw, err := yaml.Marshal(m)
	if err != nil {
		return appErrors.Wrap(appErrors.Internal, "manifest", stagingRoot, err)
	}
	path := filepath.Join(stagingRoot, manifestFile)
	if err := afero.WriteFile(b.FS, path, raw, 0o644); err != nil {
		return appErrors.Wrap(appErrors.IOFailure, "manifest", path, err)
	}
	return nil
}
