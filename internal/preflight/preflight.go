package preflight

import (
	"context"
	"path/filepath"

	"annig/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	// State directory (always checked)
	results = append(results, CheckDirectoryAccess("State directory", cfg.Paths.StateDir))

	if albumDir, err := cfg.AlbumDir(); err != nil {
		results = append(results, Result{Name: "Repository", Detail: "not set (only --dry-run is available)"})
	} else {
		results = append(results, CheckDirectoryAccess("Repository", albumDir))
	}

	if cfg.ArtistCache.Enabled {
		results = append(results, CheckDirectoryAccess("Artist cache", filepath.Dir(cfg.ArtistCache.Path)))
	}

	results = append(results, CheckMusicBrainz(ctx, cfg.MusicBrainz.BaseURL, cfg.MusicBrainz.UserAgent))
	return results
}

// Failed reports whether any result did not pass.
func Failed(results []Result) bool {
	for _, result := range results {
		if !result.Passed {
			return true
		}
	}
	return false
}
