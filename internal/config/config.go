package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"annig/internal/services"
)

//go:embed sample_config.toml
var sampleConfig string

// Repo locates the Anni metadata repository that receives album records.
type Repo struct {
	Path string `toml:"path" env:"ANNI_REPO"`
}

// MusicBrainz contains configuration for the MusicBrainz web service.
type MusicBrainz struct {
	BaseURL        string `toml:"base_url" env:"MUSICBRAINZ_BASE_URL"`
	UserAgent      string `toml:"user_agent" env:"MUSICBRAINZ_USER_AGENT"`
	RequestDelayMS int    `toml:"request_delay_ms" env:"MUSICBRAINZ_REQUEST_DELAY_MS"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// ArtistCache controls persistence of the character and group member caches.
type ArtistCache struct {
	Enabled bool   `toml:"enabled"` // Default: false, caches live for one run
	Path    string `toml:"path"`    // Default: ~/.cache/annig/artists.json
}

// Paths contains directories owned by annig itself.
type Paths struct {
	StateDir string `toml:"state_dir"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level" env:"ANNIG_LOG_LEVEL"`
}

// Config encapsulates all configuration values for annig.
//
// Configuration sections by subsystem:
//   - Repo: the Anni repository the album TOML is written into
//   - MusicBrainz: web service endpoint, user agent, and courtesy delay
//   - ArtistCache: optional on-disk persistence of resolved artists
//   - Paths: state directory (generation history)
//   - Logging: log format and level
type Config struct {
	Repo        Repo        `toml:"repo"`
	MusicBrainz MusicBrainz `toml:"musicbrainz"`
	ArtistCache ArtistCache `toml:"artist_cache"`
	Paths       Paths       `toml:"paths"`
	Logging     Logging     `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. Environment
// variables (optionally seeded from a .env file in the working directory)
// override file values. The returned config has all path fields expanded.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	// A missing .env is the common case.
	_ = godotenv.Load()
	if err := env.Parse(&cfg); err != nil {
		return nil, "", false, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("annig.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the state directory.
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(c.Paths.StateDir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", c.Paths.StateDir, err)
	}
	return nil
}

// AlbumDir returns the directory album records are written into. It fails with
// a configuration error when no repository is configured.
func (c *Config) AlbumDir() (string, error) {
	if strings.TrimSpace(c.Repo.Path) == "" {
		return "", services.Wrap(services.ErrConfiguration, "config", "repo", "repo.path is not set; export ANNI_REPO or edit the config file", nil)
	}
	return filepath.Join(c.Repo.Path, "album"), nil
}

// HistoryPath returns the generation history database location.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.Paths.StateDir, "history.db")
}

// RequestDelay returns the courtesy delay applied after each MusicBrainz call.
func (c *Config) RequestDelay() time.Duration {
	return time.Duration(c.MusicBrainz.RequestDelayMS) * time.Millisecond
}

// RequestTimeout returns the HTTP timeout for MusicBrainz requests.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.MusicBrainz.TimeoutSeconds) * time.Second
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

func defaultCacheDir() string {
	if base, ok := os.LookupEnv("XDG_CACHE_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "annig")
	}
	return "~/.cache/annig"
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
