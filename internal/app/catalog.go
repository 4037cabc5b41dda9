package app

import (
	"context"
	"path"
	"strings"

	"github.com/rs/zerolog"

	"droidbridge/internal/domain"
	appErrors "droidbridge/internal/errors"
)

// worldNameFile holds the human-readable world title inside each save
// directory.
const worldNameFile = "levelname.txt"

// Catalog enumerates the world save store on the device. Listing is always
// fresh, never cached, and strictly read-only towards the device.
type Catalog struct {
	Bridge Bridge
	Log    zerolog.Logger
}

// ListWorlds returns the immediate subdirectories of root as world entries,
// in device-reported order. An unreadable name file degrades to the directory
// name; it never fails the listing.
func (c Catalog) ListWorlds(ctx context.Context, root string) ([]domain.WorldEntry, error) {
	names, err := c.Bridge.List(ctx, root)
	if err != nil {
		return nil, appErrors.Wrap(appErrors.Unreachable, "worlds", root, err)
	}

	var entries []domain.WorldEntry
	for _, name := range names {
		if name == "" || strings.HasPrefix(name, ".") {
			continue
		}
		remotePath := path.Join(root, name)
		isDir, err := c.Bridge.IsDir(ctx, remotePath)
		if err != nil || !isDir {
			continue
		}

		display := ""
		raw, err := c.Bridge.ReadFile(ctx, path.Join(remotePath, worldNameFile))
		if err != nil {
			c.Log.Debug().Str("world", name).Err(err).Msg("name file unreadable, using directory name")
		} else {
			display = firstLine(string(raw))
		}

		entries = append(entries, domain.WorldEntry{
			ID:         name,
			Name:       display,
			RemotePath: remotePath,
		})
	}
	return entries, nil
}

// Select produces the explicit export list: everything currently listed, or
// one entry matched by id or display name.
func (c Catalog) Select(entries []domain.WorldEntry, id string, all bool) ([]domain.WorldEntry, error) {
	if all {
		out := make([]domain.WorldEntry, len(entries))
		copy(out, entries)
		return out, nil
	}
	for _, e := range entries {
		if e.ID == id || e.DisplayName() == id {
			return []domain.WorldEntry{e}, nil
		}
	}
	return nil, appErrors.Newf(appErrors.InvalidConfig, "worlds", id,
		"unknown world %q, run `backup list` to see what is on the device", id)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(strings.TrimSuffix(s, "\r"))
}
