// Package albumtoml writes album records in the layout of the Anni metadata
// repository: one [album] table followed by [[discs]] and [[discs.tracks]].
package albumtoml

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"annig/internal/release"
	"annig/internal/services"
)

type document struct {
	Album albumTable  `toml:"album"`
	Discs []discTable `toml:"discs"`
}

type albumTable struct {
	AlbumID string   `toml:"album_id"`
	Title   string   `toml:"title"`
	Artist  string   `toml:"artist"`
	Date    any      `toml:"date"`
	Type    string   `toml:"type"`
	Edition string   `toml:"edition,omitempty"`
	Catalog string   `toml:"catalog"`
	Tags    []string `toml:"tags"`
}

type discTable struct {
	Catalog string       `toml:"catalog"`
	Tracks  []trackTable `toml:"tracks"`
}

type trackTable struct {
	Title  string `toml:"title"`
	Artist string `toml:"artist,omitempty"`
	Type   string `toml:"type,omitempty"`
}

// Encode writes album to w. Track artists equal to the album artist and
// normal track types are left out, since readers inherit them.
func Encode(w io.Writer, album *release.Album) error {
	if album == nil {
		return services.Wrap(services.ErrValidation, "albumtoml", "encode", "album is nil", nil)
	}
	doc := document{
		Album: albumTable{
			AlbumID: album.ID,
			Title:   album.Title,
			Artist:  album.Artist,
			Date:    dateValue(album.Date),
			Type:    album.Type,
			Edition: album.Edition,
			Catalog: album.Catalog,
			Tags:    album.Tags,
		},
		Discs: make([]discTable, 0, len(album.Discs)),
	}
	if doc.Album.Type == "" {
		doc.Album.Type = release.TypeNormal
	}
	if doc.Album.Tags == nil {
		doc.Album.Tags = []string{}
	}

	for _, disc := range album.Discs {
		table := discTable{Catalog: disc.Catalog, Tracks: make([]trackTable, 0, len(disc.Tracks))}
		for _, track := range disc.Tracks {
			entry := trackTable{Title: track.Title}
			if track.Artist != album.Artist {
				entry.Artist = track.Artist
			}
			if track.Type != "" && track.Type != release.TypeNormal {
				entry.Type = track.Type
			}
			table.Tracks = append(table.Tracks, entry)
		}
		doc.Discs = append(doc.Discs, table)
	}

	encoder := toml.NewEncoder(w)
	if err := encoder.Encode(doc); err != nil {
		return services.Wrap(services.ErrValidation, "albumtoml", "encode", "encode album", err)
	}
	return nil
}

// Marshal returns the encoded album.
func Marshal(album *release.Album) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, album); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile encodes album to path, replacing any existing file atomically.
func WriteFile(path string, album *release.Album) error {
	data, err := Marshal(album)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return services.Wrap(services.ErrConfiguration, "albumtoml", "write", fmt.Sprintf("create %s", dir), err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "albumtoml", "write", "create temp file", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return services.Wrap(services.ErrConfiguration, "albumtoml", "write", "write temp file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return services.Wrap(services.ErrConfiguration, "albumtoml", "write", "close temp file", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return services.Wrap(services.ErrConfiguration, "albumtoml", "write", "chmod temp file", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return services.Wrap(services.ErrConfiguration, "albumtoml", "write", fmt.Sprintf("rename to %s", path), err)
	}
	return nil
}

// dateValue emits full dates as TOML local dates and keeps partial dates
// (year or year-month) as strings.
func dateValue(value string) any {
	var date toml.LocalDate
	if len(value) == len("2006-01-02") {
		if err := date.UnmarshalText([]byte(value)); err == nil {
			return date
		}
	}
	return value
}
