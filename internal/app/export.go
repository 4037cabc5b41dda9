package app

import (
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"droidbridge/internal/domain"
	appErrors "droidbridge/internal/errors"
)

// worldArchiveExt is the portable world archive format: a zip whose top-level
// entries are the world's files directly. The importing game rejects archives
// with a wrapper folder.
const worldArchiveExt = ".mcworld"

// Exporter repackages a staged world directory into a portable archive.
type Exporter struct {
	Archiver Archiver
	FS       afero.Fs
	Log      zerolog.Logger
}

func (e Exporter) Export(localDir, displayName, fallbackID, outputRoot string) (string, error) {
	name := domain.SanitizeName(displayName, fallbackID)
	if err := e.FS.MkdirAll(outputRoot, 0o755); err != nil {
		return "", appErrors.Wrap(appErrors.IOFailure, "export", outputRoot, err)
	}
	archivePath := filepath.Join(outputRoot, name+worldArchiveExt)
	if err := e.Archiver.Archive(localDir, archivePath); err != nil {
		return "", appErrors.Wrap(appErrors.IOFailure, "export", archivePath, err)
	}
	e.Log.Info().Str("archive", archivePath).Msg("world exported")
	return archivePath, nil
}
