package adb

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	appErrors "droidbridge/internal/errors"
)

// Client talks to the device through the adb binary. All remote paths are
// single-quoted before they reach a device shell, and all output is parsed
// line-oriented with trailing carriage returns stripped (older devices emit
// CRLF over `adb shell`).
type Client struct {
	Bin string
	Log zerolog.Logger
}

func New(log zerolog.Logger) (*Client, error) {
	bin, err := exec.LookPath("adb")
	if err != nil {
		return nil, appErrors.Wrap(appErrors.ToolMissing, "adb", "adb", err)
	}
	return &Client{Bin: bin, Log: log}, nil
}

// quote makes a remote path safe for the device shell.
func quote(remote string) string {
	return "'" + strings.ReplaceAll(remote, "'", `'\''`) + "'"
}

func (c *Client) shell(ctx context.Context, script string) (string, error) {
	c.Log.Debug().Str("script", script).Msg("adb shell")
	out, err := exec.CommandContext(ctx, c.Bin, "shell", script).Output()
	return string(out), err
}

// lines splits command output into trimmed, non-empty lines.
func lines(out string) []string {
	var result []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line != "" {
			result = append(result, line)
		}
	}
	return result
}

func (c *Client) Devices(ctx context.Context) ([]string, error) {
	out, err := exec.CommandContext(ctx, c.Bin, "devices").Output()
	if err != nil {
		return nil, appErrors.Wrap(appErrors.Unreachable, "devices", "", err)
	}
	var serials []string
	for _, line := range lines(string(out)) {
		fields := strings.Fields(line)
		if len(fields) == 2 && fields[1] == "device" {
			serials = append(serials, fields[0])
		}
	}
	return serials, nil
}

// test runs a shell predicate in a way that always exits zero, because exit
// code propagation over `adb shell` is unreliable on older devices. The
// answer travels in the output instead.
func (c *Client) test(ctx context.Context, flag, remote string) (bool, error) {
	script := fmt.Sprintf("if [ %s %s ]; then echo OK; else echo NO; fi", flag, quote(remote))
	out, err := c.shell(ctx, script)
	if err != nil {
		return false, appErrors.Wrap(appErrors.Unreachable, "test", remote, err)
	}
	return confirmed(out), nil
}

// confirmed reads an output-carried OK marker.
func confirmed(out string) bool {
	return strings.TrimSpace(out) == "OK"
}

func (c *Client) Exists(ctx context.Context, remote string) (bool, error) {
	return c.test(ctx, "-e", remote)
}

func (c *Client) IsDir(ctx context.Context, remote string) (bool, error) {
	return c.test(ctx, "-d", remote)
}

func (c *Client) List(ctx context.Context, remote string) ([]string, error) {
	out, err := c.shell(ctx, "ls -1 "+quote(remote))
	if err != nil {
		return nil, appErrors.Wrap(appErrors.Unreachable, "ls", remote, err)
	}
	return lines(out), nil
}

func (c *Client) ListFiles(ctx context.Context, remote string) ([]string, error) {
	out, err := c.shell(ctx, "find "+quote(remote)+" -type f")
	if err != nil {
		return nil, appErrors.Wrap(appErrors.Unreachable, "find", remote, err)
	}
	return lines(out), nil
}

func (c *Client) ReadFile(ctx context.Context, remote string) ([]byte, error) {
	out, err := c.shell(ctx, "cat "+quote(remote))
	if err != nil {
		return nil, appErrors.Wrap(appErrors.IOFailure, "cat", remote, err)
	}
	return []byte(out), nil
}

func (c *Client) Pull(ctx context.Context, remote, local string) error {
	out, err := exec.CommandContext(ctx, c.Bin, "pull", remote, local).CombinedOutput()
	if err != nil {
		return appErrors.Wrap(appErrors.IOFailure, "pull", remote, cmdError(err, out))
	}
	return nil
}

func (c *Client) Push(ctx context.Context, local, remote string) error {
	out, err := exec.CommandContext(ctx, c.Bin, "push", local, remote).CombinedOutput()
	if err != nil {
		return appErrors.Wrap(appErrors.IOFailure, "push", remote, cmdError(err, out))
	}
	return nil
}

func (c *Client) Delete(ctx context.Context, remote string) error {
	// rm's exit code would be lost over `adb shell` on older devices, so the
	// confirmation travels in the output like the predicates above.
	out, err := c.shell(ctx, "rm -f "+quote(remote)+" && echo OK")
	if err != nil {
		return appErrors.Wrap(appErrors.IOFailure, "rm", remote, err)
	}
	if !confirmed(out) {
		return appErrors.New(appErrors.IOFailure, "rm", remote, "device did not confirm the deletion")
	}
	return nil
}

func (c *Client) PruneEmptyDirs(ctx context.Context, root string) error {
	_, err := c.shell(ctx, "find "+quote(root)+" -depth -type d -empty -exec rmdir {} \\;")
	if err != nil {
		return appErrors.Wrap(appErrors.IOFailure, "prune", root, err)
	}
	return nil
}

func (c *Client) InteractiveShell(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, c.Bin, "shell")
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// cmdError folds captured output into the error so failures name what the
// tool actually said, not just an exit code.
func cmdError(err error, out []byte) error {
	msg := strings.TrimSpace(string(out))
	if msg == "" {
		return err
	}
	return fmt.Errorf("%w: %s", err, msg)
}
