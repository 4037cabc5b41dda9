package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"droidbridge/internal/domain"
	appErrors "droidbridge/internal/errors"
)

// MountManager drives the SSHFS mount lifecycle: probe each candidate remote
// root in order, mount, re-verify, and roll back half-established mounts
// before moving on to the next candidate.
type MountManager struct {
	Mounter Mounter
	Log     zerolog.Logger
	// Settle is how long to wait after a mount attempt before re-verifying.
	// FUSE mounts can take a moment to show up in the mount table.
	Settle time.Duration
}

const defaultSettle = time.Second

// mounted OR-combines the two independent detection signals. Either signal
// answering positive counts; a failing signal is logged and treated as
// negative, never as an error.
func (m *MountManager) mounted(mountPoint string) bool {
	inTable, err := m.Mounter.InMountTable(mountPoint)
	if err != nil {
		m.Log.Debug().Str("mount_point", mountPoint).Err(err).Msg("mount table scan failed")
	}
	if inTable {
		return true
	}
	probed, err := m.Mounter.ProbePoint(mountPoint)
	if err != nil {
		m.Log.Debug().Str("mount_point", mountPoint).Err(err).Msg("mount point probe failed")
	}
	return probed
}

func (m *MountManager) Mount(ctx context.Context, candidates []string, mountPoint string, t domain.Transport, sudo bool) (*domain.MountSession, error) {
	if !t.Valid() {
		return nil, appErrors.New(appErrors.InvalidConfig, "mount", mountPoint,
			"transport host, port and user are required")
	}
	if m.mounted(mountPoint) {
		return nil, appErrors.New(appErrors.AlreadyMounted, "mount", mountPoint,
			"mount point is already active")
	}
	if err := m.Mounter.EnsurePoint(mountPoint); err != nil {
		return nil, appErrors.Wrap(appErrors.IOFailure, "mount", mountPoint, err)
	}

	settle := m.Settle
	if settle <= 0 {
		settle = defaultSettle
	}

	session := &domain.MountSession{
		MountPoint: mountPoint,
		Transport:  t,
		Sudo:       sudo,
		State:      domain.MountIdle,
	}

	verifyFailed := false
	for _, candidate := range candidates {
		session.RemoteRoot = candidate
		session.State = domain.MountProbing
		m.Log.Info().Str("remote", candidate).Str("mount_point", mountPoint).Msg("attempting mount")

		session.State = domain.MountMounting
		if err := m.Mounter.Mount(ctx, t, candidate, mountPoint, sudo); err != nil {
			m.Log.Warn().Str("remote", candidate).Err(err).Msg("mount attempt failed")
			// A failed sshfs run can leave the point in a disconnected
			// FUSE state that blocks the next attempt.
			if err := m.Mounter.ForceUnmount(ctx, mountPoint); err != nil {
				m.Log.Debug().Err(err).Msg("post-failure cleanup")
			}
			continue
		}

		session.State = domain.MountVerifying
		select {
		case <-ctx.Done():
			m.rollback(ctx, session)
			return nil, ctx.Err()
		case <-time.After(settle):
		}

		if m.mounted(mountPoint) || m.Mounter.Listable(mountPoint) {
			session.State = domain.MountMounted
			m.Log.Info().Str("remote", candidate).Str("mount_point", mountPoint).Msg("mounted")
			return session, nil
		}

		verifyFailed = true
		m.Log.Warn().Str("remote", candidate).Msg("mount reported success but verification failed")
		m.rollback(ctx, session)
	}

	session.State = domain.MountFailed
	// The reserved-path guard applies to failure cleanup the same way it
	// applies to unmount: never remove a system-managed directory.
	if !reservedMountPoint(mountPoint) {
		if err := m.Mounter.RemovePoint(mountPoint); err != nil {
			m.Log.Debug().Err(err).Msg("mount point cleanup")
		}
	}
	kind := appErrors.Unreachable
	if verifyFailed {
		// At least one candidate mounted but no detection signal confirmed
		// it. That outcome is never trusted optimistically.
		kind = appErrors.VerificationMismatch
	}
	return nil, appErrors.Newf(kind, "mount", mountPoint,
		"all candidates failed: %s (likely causes: storage permission not granted on the device, or wrong SSH host/port/user)",
		strings.Join(candidates, ", "))
}

// rollback tears a half-established mount down so no candidate attempt leaves
// state behind.
func (m *MountManager) rollback(ctx context.Context, session *domain.MountSession) {
	session.State = domain.MountRollingBack
	if err := m.Mounter.Unmount(ctx, session.MountPoint); err != nil {
		if err := m.Mounter.ForceUnmount(ctx, session.MountPoint); err != nil {
			m.Log.Debug().Err(err).Msg("rollback unmount")
		}
	}
}

func (m *MountManager) Unmount(ctx context.Context, mountPoint string) error {
	if !m.mounted(mountPoint) {
		m.Log.Info().Str("mount_point", mountPoint).Msg("not mounted, nothing to do")
		return nil
	}

	m.Log.Info().Str("mount_point", mountPoint).
		Str("state", domain.MountUnmounting.String()).Msg("unmounting")
	if err := m.Mounter.Unmount(ctx, mountPoint); err != nil {
		m.Log.Warn().Err(err).Msg("unmount failed, trying forced variant")
		if err := m.Mounter.ForceUnmount(ctx, mountPoint); err != nil {
			return appErrors.Wrap(appErrors.IOFailure, "unmount", mountPoint, err)
		}
	}

	if reservedMountPoint(mountPoint) {
		return nil
	}
	if err := m.Mounter.RemovePoint(mountPoint); err != nil {
		m.Log.Debug().Err(err).Msg("mount point not removed")
	}
	return nil
}

// reservedMountPoint guards system-managed locations from directory removal
// after unmount.
func reservedMountPoint(mountPoint string) bool {
	clean := filepath.Clean(mountPoint)
	switch clean {
	case "/", "/mnt", "/media", "/home", "/tmp", "/run", "/var":
		return true
	}
	if home, err := os.UserHomeDir(); err == nil && clean == filepath.Clean(home) {
		return true
	}
	return strings.HasPrefix(clean, "/run/media/") && strings.Count(clean, "/") <= 3
}
