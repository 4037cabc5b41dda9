package sshfs

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"droidbridge/internal/domain"
	appErrors "droidbridge/internal/errors"
)

const sshfsOptions = "reconnect,ServerAliveInterval=15,ServerAliveCountMax=3"

// Tool wraps the sshfs/fusermount/umount binaries and the mounted-state
// detection signals. Exit code zero from sshfs is necessary but not
// sufficient; callers re-verify through the detection signals.
type Tool struct {
	Log        zerolog.Logger
	MountsFile string
}

func New(log zerolog.Logger) *Tool {
	return &Tool{Log: log, MountsFile: "/proc/self/mounts"}
}

func (t *Tool) Mount(ctx context.Context, tr domain.Transport, remoteRoot, mountPoint string, sudo bool) error {
	if _, err := exec.LookPath("sshfs"); err != nil {
		return appErrors.Wrap(appErrors.ToolMissing, "mount", "sshfs", err)
	}

	opts := sshfsOptions
	if sudo {
		opts += ",allow_other"
	}
	args := []string{
		tr.Target(remoteRoot),
		mountPoint,
		"-p", strconv.Itoa(tr.Port),
		"-o", opts,
	}

	bin := "sshfs"
	if sudo {
		bin = "sudo"
		args = append([]string{"sshfs"}, args...)
	}

	t.Log.Debug().Str("bin", bin).Strs("args", args).Msg("running mount tool")
	out, err := exec.CommandContext(ctx, bin, args...).CombinedOutput()
	if err != nil {
		return appErrors.Wrap(appErrors.IOFailure, "mount", mountPoint, cmdError(err, out))
	}
	return nil
}

func (t *Tool) Unmount(ctx context.Context, mountPoint string) error {
	bin := "fusermount"
	args := []string{"-u", mountPoint}
	if _, err := exec.LookPath(bin); err != nil {
		bin = "umount"
		args = []string{mountPoint}
	}
	out, err := exec.CommandContext(ctx, bin, args...).CombinedOutput()
	if err != nil {
		return appErrors.Wrap(appErrors.IOFailure, "unmount", mountPoint, cmdError(err, out))
	}
	return nil
}

// ForceUnmount detaches lazily, for mounts stuck in a disconnected FUSE
// state.
func (t *Tool) ForceUnmount(ctx context.Context, mountPoint string) error {
	out, err := exec.CommandContext(ctx, "umount", "-l", mountPoint).CombinedOutput()
	if err != nil {
		return appErrors.Wrap(appErrors.IOFailure, "unmount", mountPoint, cmdError(err, out))
	}
	return nil
}

// InMountTable scans the kernel mount table. FUSE mounts are not always
// visible here, so a negative answer is not trusted on its own.
func (t *Tool) InMountTable(mountPoint string) (bool, error) {
	raw, err := os.ReadFile(t.MountsFile)
	if err != nil {
		return false, err
	}
	target := unescapeMountPath(mountPoint)
	for _, line := range strings.Split(string(raw), "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && unescapeMountPath(fields[1]) == target {
			return true, nil
		}
	}
	return false, nil
}

// ProbePoint asks mountpoint(1), the second independent signal.
func (t *Tool) ProbePoint(mountPoint string) (bool, error) {
	bin, err := exec.LookPath("mountpoint")
	if err != nil {
		return false, err
	}
	if err := exec.Command(bin, "-q", mountPoint).Run(); err != nil {
		return false, nil
	}
	return true, nil
}

// Listable is the third, fallback signal: the directory reads without error.
func (t *Tool) Listable(mountPoint string) bool {
	_, err := os.ReadDir(mountPoint)
	return err == nil
}

func (t *Tool) EnsurePoint(mountPoint string) error {
	return os.MkdirAll(mountPoint, 0o755)
}

// RemovePoint removes the mount-point directory. os.Remove refuses non-empty
// directories, which is exactly the guard wanted here.
func (t *Tool) RemovePoint(mountPoint string) error {
	return os.Remove(mountPoint)
}

// unescapeMountPath undoes the octal escapes /proc/self/mounts applies to
// spaces and friends.
func unescapeMountPath(s string) string {
	replacer := strings.NewReplacer(`\040`, " ", `\011`, "\t", `\012`, "\n", `\134`, `\`)
	return replacer.Replace(s)
}

func cmdError(err error, out []byte) error {
	msg := strings.TrimSpace(string(out))
	if msg == "" {
		return err
	}
	return fmt.Errorf("%w: %s", err, msg)
}
