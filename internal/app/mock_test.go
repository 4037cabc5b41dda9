package app

import (
	"context"
	"path/filepath"

	"github.com/spf13/afero"

	"droidbridge/internal/domain"
)

type fakeBridge struct {
	exists    map[string]bool
	dirs      map[string]bool
	entries   map[string][]string
	files     map[string][]string
	fileData  map[string][]byte
	readErr   map[string]error
	pullErr   map[string]error
	deleteErr map[string]error
	listErr   error

	existsCalls []string
	pulled      map[string]string
	deleted     []string
	pruned      []string

	// When fs is set, Pull materializes pullTree entries under the local
	// path, mimicking a directory-tree pull.
	fs       afero.Fs
	pullTree map[string][]string
}

func newFakeBridge() *fakeBridge {
	return &fakeBridge{
		exists:    map[string]bool{},
		dirs:      map[string]bool{},
		entries:   map[string][]string{},
		files:     map[string][]string{},
		fileData:  map[string][]byte{},
		readErr:   map[string]error{},
		pullErr:   map[string]error{},
		deleteErr: map[string]error{},
		pulled:    map[string]string{},
		pullTree:  map[string][]string{},
	}
}

func (b *fakeBridge) Devices(context.Context) ([]string, error) {
	return []string{"emulator-5554"}, nil
}

func (b *fakeBridge) Exists(_ context.Context, remote string) (bool, error) {
	b.existsCalls = append(b.existsCalls, remote)
	return b.exists[remote], nil
}

func (b *fakeBridge) IsDir(_ context.Context, remote string) (bool, error) {
	return b.dirs[remote], nil
}

func (b *fakeBridge) List(_ context.Context, remote string) ([]string, error) {
	if b.listErr != nil {
		return nil, b.listErr
	}
	return b.entries[remote], nil
}

func (b *fakeBridge) ListFiles(_ context.Context, remote string) ([]string, error) {
	if b.listErr != nil {
		return nil, b.listErr
	}
	return b.files[remote], nil
}

func (b *fakeBridge) ReadFile(_ context.Context, remote string) ([]byte, error) {
	if err := b.readErr[remote]; err != nil {
		return nil, err
	}
	return b.fileData[remote], nil
}

func (b *fakeBridge) Pull(_ context.Context, remote, local string) error {
	if err := b.pullErr[remote]; err != nil {
		return err
	}
	b.pulled[remote] = local
	if b.fs != nil {
		for _, rel := range b.pullTree[remote] {
			path := filepath.Join(local, filepath.FromSlash(rel))
			if err := afero.WriteFile(b.fs, path, []byte("data:"+rel), 0o644); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *fakeBridge) Push(context.Context, string, string) error {
	return nil
}

func (b *fakeBridge) Delete(_ context.Context, remote string) error {
	if err := b.deleteErr[remote]; err != nil {
		return err
	}
	b.deleted = append(b.deleted, remote)
	return nil
}

func (b *fakeBridge) PruneEmptyDirs(_ context.Context, root string) error {
	b.pruned = append(b.pruned, root)
	return nil
}

func (b *fakeBridge) InteractiveShell(context.Context) error {
	return nil
}

type fakeMounter struct {
	preMounted bool
	probe      bool
	mountErr   map[string]error
	verify     map[string]bool
	unmountErr error
	forceErr   error

	current string
	ops     []string
}

func newFakeMounter() *fakeMounter {
	return &fakeMounter{
		mountErr: map[string]error{},
		verify:   map[string]bool{},
	}
}

func (m *fakeMounter) Mount(_ context.Context, _ domain.Transport, remoteRoot, _ string, _ bool) error {
	m.ops = append(m.ops, "mount "+remoteRoot)
	if err := m.mountErr[remoteRoot]; err != nil {
		return err
	}
	m.current = remoteRoot
	return nil
}

func (m *fakeMounter) Unmount(context.Context, string) error {
	m.ops = append(m.ops, "unmount")
	if m.unmountErr != nil {
		return m.unmountErr
	}
	m.current = ""
	return nil
}

func (m *fakeMounter) ForceUnmount(context.Context, string) error {
	m.ops = append(m.ops, "force-unmount")
	if m.forceErr != nil {
		return m.forceErr
	}
	m.current = ""
	return nil
}

func (m *fakeMounter) InMountTable(string) (bool, error) {
	if m.preMounted {
		return true, nil
	}
	return m.current != "" && m.verify[m.current], nil
}

func (m *fakeMounter) ProbePoint(string) (bool, error) {
	return m.probe, nil
}

func (m *fakeMounter) Listable(string) bool {
	return false
}

func (m *fakeMounter) EnsurePoint(string) error {
	m.ops = append(m.ops, "ensure")
	return nil
}

func (m *fakeMounter) RemovePoint(string) error {
	m.ops = append(m.ops, "remove")
	return nil
}

type fakeArchiver struct {
	contentRoot string
	archivePath string
	err         error
}

func (a *fakeArchiver) Archive(contentRoot, archivePath string) error {
	a.contentRoot = contentRoot
	a.archivePath = archivePath
	return a.err
}
