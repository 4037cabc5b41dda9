package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/spf13/afero"
)

func TestArchiveContainsContentsAtTopLevel(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/world/a.txt", []byte("alpha"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "/world/sub/b.txt", []byte("beta"), 0o644); err != nil {
		t.Fatal(err)
	}

	writer := ZipWriter{FS: fs}
	if err := writer.Archive("/world", "/out.mcworld"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := afero.ReadFile(fs, "/out.mcworld")
	if err != nil {
		t.Fatalf("archive not written: %v", err)
	}
	reader, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		t.Fatalf("invalid zip: %v", err)
	}

	names := map[string]bool{}
	for _, f := range reader.File {
		names[f.Name] = true
		if f.Name == "world/a.txt" {
			t.Fatal("archive must not wrap the directory itself")
		}
	}
	if !names["a.txt"] {
		t.Fatalf("expected a.txt at the archive root, got %v", names)
	}
	if !names["sub/b.txt"] {
		t.Fatalf("expected sub/b.txt, got %v", names)
	}

	f, err := reader.Open("a.txt")
	if err != nil {
		t.Fatalf("cannot open entry: %v", err)
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "alpha" {
		t.Fatalf("unexpected content: %q", content)
	}
}
