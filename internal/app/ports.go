package app

import (
	"context"

	"droidbridge/internal/domain"
)

// Bridge is the debug-bridge channel to the device. Implementations own all
// process execution and text parsing; callers only see typed results.
type Bridge interface {
	// Devices returns the serials of attached devices.
	Devices(ctx context.Context) ([]string, error)
	Exists(ctx context.Context, remote string) (bool, error)
	IsDir(ctx context.Context, remote string) (bool, error)
	// List returns the immediate entries of a remote directory, in
	// device-reported order.
	List(ctx context.Context, remote string) ([]string, error)
	// ListFiles returns every regular file under remote, recursively, as
	// absolute remote paths.
	ListFiles(ctx context.Context, remote string) ([]string, error)
	ReadFile(ctx context.Context, remote string) ([]byte, error)
	// Pull copies a remote file or directory tree to exactly the given local
	// path. For directories the local path must not exist yet.
	Pull(ctx context.Context, remote, local string) error
	Push(ctx context.Context, local, remote string) error
	Delete(ctx context.Context, remote string) error
	// PruneEmptyDirs removes now-empty directories under root, deepest first.
	PruneEmptyDirs(ctx context.Context, root string) error
	InteractiveShell(ctx context.Context) error
}

// Mounter is the SSHFS channel: the mount/unmount tool plus the independent
// mounted-state detection signals. No single signal is authoritative for
// FUSE mounts, which is why three are exposed separately.
type Mounter interface {
	Mount(ctx context.Context, t domain.Transport, remoteRoot, mountPoint string, sudo bool) error
	Unmount(ctx context.Context, mountPoint string) error
	ForceUnmount(ctx context.Context, mountPoint string) error
	// InMountTable scans the kernel mount table for the mount point.
	InMountTable(mountPoint string) (bool, error)
	// ProbePoint asks the mount-point probe whether the path is a mount.
	ProbePoint(mountPoint string) (bool, error)
	// Listable reports whether the directory can be read without error.
	Listable(mountPoint string) bool
	EnsurePoint(mountPoint string) error
	// RemovePoint removes the mount-point directory; it must fail on a
	// non-empty directory.
	RemovePoint(mountPoint string) error
}

// Archiver writes a contents-only archive of a directory.
type Archiver interface {
	Archive(contentRoot, archivePath string) error
}

// ProgressFunc reports per-item progress of a long operation. Purely
// observational.
type ProgressFunc func(current, total int, name string)
