package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	appErrors "droidbridge/internal/errors"
)

// Resolver picks the active remote storage root out of an ordered candidate
// list. First candidate that exists and is a directory wins; later candidates
// are never preferred over an earlier hit.
type Resolver struct {
	Bridge Bridge
	Log    zerolog.Logger
}

func (r Resolver) Resolve(ctx context.Context, candidates []string) (string, error) {
	for _, candidate := range candidates {
		ok, err := r.Bridge.Exists(ctx, candidate)
		if err != nil {
			r.Log.Debug().Str("candidate", candidate).Err(err).Msg("existence probe failed")
			continue
		}
		if !ok {
			r.Log.Debug().Str("candidate", candidate).Msg("not present")
			continue
		}
		isDir, err := r.Bridge.IsDir(ctx, candidate)
		if err != nil || !isDir {
			r.Log.Debug().Str("candidate", candidate).Err(err).Msg("not a directory")
			continue
		}
		r.Log.Debug().Str("root", candidate).Msg("storage root resolved")
		return candidate, nil
	}
	return "", appErrors.Newf(appErrors.Unreachable, "resolve", "",
		"no storage root reachable, tried: %s", strings.Join(candidates, ", "))
}
