package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"annig/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// Pacing is disabled so tests never sleep between MusicBrainz calls.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Repo.Path = filepath.Join(base, "repo")
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.ArtistCache.Path = filepath.Join(base, "cache", "artists.json")
	cfgVal.MusicBrainz.RequestDelayMS = 0

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithMusicBrainz points the test config at a fake MusicBrainz server.
func WithMusicBrainz(baseURL string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.MusicBrainz.BaseURL = baseURL
	}
}

// WithoutRepo clears the repository path.
func WithoutRepo() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Repo.Path = ""
	}
}

// WithPersistentArtistCache enables the on-disk artist cache.
func WithPersistentArtistCache() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.ArtistCache.Enabled = true
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.StateDir)
}

// WriteConfig encodes cfg as a TOML config file at path.
func WriteConfig(t testing.TB, path string, cfg *config.Config) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}
