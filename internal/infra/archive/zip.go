package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ZipWriter writes contents-only zip archives: the entries of contentRoot
// appear at the top level of the archive, never wrapped in a folder.
type ZipWriter struct {
	FS afero.Fs
}

func (z ZipWriter) Archive(contentRoot, archivePath string) error {
	out, err := z.FS.Create(archivePath)
	if err != nil {
		return err
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	err = afero.Walk(z.FS, contentRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(contentRoot, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		name := filepath.ToSlash(rel)

		if info.IsDir() {
			_, err := zw.Create(name + "/")
			return err
		}

		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     name,
			Method:   zip.Deflate,
			Modified: info.ModTime(),
		})
		if err != nil {
			return err
		}
		f, err := z.FS.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(w, f)
		return err
	})
	if err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}
