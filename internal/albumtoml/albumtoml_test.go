package albumtoml_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"annig/internal/albumtoml"
	"annig/internal/release"
)

func sampleAlbum() *release.Album {
	return &release.Album{
		ID:      "6a6ea3a4-7c34-4bc8-8f15-18aa3b8e0d2b",
		Title:   "Album",
		Artist:  "Band（Alice、Bob）",
		Date:    "2016-05-01",
		Type:    release.TypeNormal,
		Catalog: "LACA-0001~2",
		Discs: []release.Disc{
			{Catalog: "LACA-0001", Tracks: []release.Track{
				{Title: "Song", Artist: "Band（Alice、Bob）", Type: release.TypeNormal},
				{Title: "Solo", Artist: "Alice", Type: release.TypeNormal},
			}},
			{Catalog: "LACA-0002", Tracks: []release.Track{
				{Title: "Song (Off Vocal)", Artist: "Band（Alice、Bob）", Type: release.TypeInstrumental},
			}},
		},
	}
}

func decode(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not valid TOML: %v\n%s", err, data)
	}
	return doc
}

func TestMarshalLayout(t *testing.T) {
	data, err := albumtoml.Marshal(sampleAlbum())
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	text := string(data)

	albumAt := strings.Index(text, "[album]")
	discsAt := strings.Index(text, "[[discs]]")
	tracksAt := strings.Index(text, "[[discs.tracks]]")
	if albumAt < 0 || discsAt < albumAt || tracksAt < discsAt {
		t.Fatalf("unexpected table layout:\n%s", text)
	}
	for _, want := range []string{"date = 2016-05-01", "tags = []"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output:\n%s", want, text)
		}
	}
	if strings.Contains(text, "edition") {
		t.Fatalf("expected empty edition to be omitted:\n%s", text)
	}

	doc := decode(t, data)
	album := doc["album"].(map[string]any)
	if album["album_id"] != "6a6ea3a4-7c34-4bc8-8f15-18aa3b8e0d2b" || album["type"] != "normal" || album["catalog"] != "LACA-0001~2" {
		t.Fatalf("unexpected album table %#v", album)
	}
	if _, ok := album["date"].(toml.LocalDate); !ok {
		t.Fatalf("expected local date, got %T", album["date"])
	}

	discs := doc["discs"].([]any)
	if len(discs) != 2 {
		t.Fatalf("expected 2 discs, got %d", len(discs))
	}
	first := discs[0].(map[string]any)
	tracks := first["tracks"].([]any)
	song := tracks[0].(map[string]any)
	if _, ok := song["artist"]; ok {
		t.Fatalf("expected album artist to be inherited, got %#v", song)
	}
	if _, ok := song["type"]; ok {
		t.Fatalf("expected normal type to be omitted, got %#v", song)
	}
	solo := tracks[1].(map[string]any)
	if solo["artist"] != "Alice" {
		t.Fatalf("expected differing artist, got %#v", solo)
	}
	instrumental := discs[1].(map[string]any)["tracks"].([]any)[0].(map[string]any)
	if instrumental["type"] != "instrumental" {
		t.Fatalf("unexpected instrumental track %#v", instrumental)
	}
	if discs[1].(map[string]any)["catalog"] != "LACA-0002" {
		t.Fatalf("unexpected disc catalog %#v", discs[1])
	}
}

func TestMarshalPartialDateAndEdition(t *testing.T) {
	album := sampleAlbum()
	album.Date = "2016-05"
	album.Edition = "Limited"
	doc := decode(t, mustMarshal(t, album))
	header := doc["album"].(map[string]any)
	if header["date"] != "2016-05" {
		t.Fatalf("expected partial date kept as string, got %#v", header["date"])
	}
	if header["edition"] != "Limited" {
		t.Fatalf("expected edition, got %#v", header["edition"])
	}
}

func TestWriteFileReplacesAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "album", "LACA-0001~2.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := albumtoml.WriteFile(path, sampleAlbum()); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[album]") || strings.Contains(string(data), "stale") {
		t.Fatalf("unexpected file content:\n%s", data)
	}
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Fatalf("expected temp files cleaned up, found %d entries", len(entries))
	}
}

func mustMarshal(t *testing.T, album *release.Album) []byte {
	t.Helper()
	data, err := albumtoml.Marshal(album)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	return data
}
