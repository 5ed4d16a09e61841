package config

import "path/filepath"

const (
	defaultConfigPath            = "~/.config/annig/config.toml"
	defaultStateDir              = "~/.local/share/annig"
	defaultMusicBrainzBaseURL    = "https://musicbrainz.org/ws/2"
	defaultMusicBrainzUserAgent  = "annig/dev ( https://github.com/ProjectAnni/anni )"
	defaultRequestDelayMS        = 1500
	defaultRequestTimeoutSeconds = 30
	defaultArtistCacheFile       = "artists.json"
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		MusicBrainz: MusicBrainz{
			BaseURL:        defaultMusicBrainzBaseURL,
			UserAgent:      defaultMusicBrainzUserAgent,
			RequestDelayMS: defaultRequestDelayMS,
			TimeoutSeconds: defaultRequestTimeoutSeconds,
		},
		ArtistCache: ArtistCache{
			Path: filepath.Join(defaultCacheDir(), defaultArtistCacheFile),
		},
		Paths: Paths{
			StateDir: defaultStateDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
