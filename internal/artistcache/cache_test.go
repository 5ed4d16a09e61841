package artistcache_test

import (
	"os"
	"path/filepath"
	"testing"

	"annig/internal/artistcache"
)

func TestStoreCharacterFirstWriterWins(t *testing.T) {
	store := artistcache.New(nil)

	if _, ok := store.Character("Chara"); ok {
		t.Fatal("expected empty cache")
	}
	if !store.StoreCharacter("Chara", "Alice") {
		t.Fatal("expected first store to succeed")
	}
	if store.StoreCharacter("Chara", "Bob") {
		t.Fatal("expected second store to be ignored")
	}
	person, ok := store.Character("Chara")
	if !ok || person != "Alice" {
		t.Fatalf("expected Alice, got %q (ok=%v)", person, ok)
	}
}

func TestStoreGroupFirstWriterWinsAndCopies(t *testing.T) {
	store := artistcache.New(nil)
	members := []artistcache.Member{{ID: "p1", Name: "Alice"}, {ID: "p2", Name: "Bob"}}

	if !store.StoreGroup("Band", members) {
		t.Fatal("expected first store to succeed")
	}
	members[0].Name = "mutated"
	if store.StoreGroup("Band", []artistcache.Member{{ID: "p3", Name: "Carol"}}) {
		t.Fatal("expected second store to be ignored")
	}

	got, ok := store.Group("Band")
	if !ok || len(got) != 2 || got[0].Name != "Alice" || got[1].Name != "Bob" {
		t.Fatalf("unexpected cached members: %#v", got)
	}
	got[1].Name = "changed"
	again, _ := store.Group("Band")
	if again[1].Name != "Bob" {
		t.Fatal("expected Group to return a copy")
	}
}

func TestKeysAreNormalized(t *testing.T) {
	store := artistcache.New(nil)
	store.StoreCharacter("\u304b\u3099", "Alice")
	if person, ok := store.Character("\u304c"); !ok || person != "Alice" {
		t.Fatalf("expected composed lookup to hit, got %q (ok=%v)", person, ok)
	}
}

func TestMemoryStoreSaveIsNoop(t *testing.T) {
	store := artistcache.New(nil)
	store.StoreCharacter("Chara", "Alice")
	if err := store.Save(); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if store.Path() != "" {
		t.Fatalf("expected empty path, got %q", store.Path())
	}
}

func TestSaveAndReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "artists.json")

	store := artistcache.Open(path, nil)
	store.StoreCharacter("Chara", "Alice")
	store.StoreGroup("Band", []artistcache.Member{{ID: "p1", Name: "Alice"}})
	if err := store.Save(); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	reopened := artistcache.Open(path, nil)
	if person, ok := reopened.Character("Chara"); !ok || person != "Alice" {
		t.Fatalf("expected persisted character, got %q (ok=%v)", person, ok)
	}
	if members, ok := reopened.Group("Band"); !ok || len(members) != 1 {
		t.Fatalf("expected persisted group, got %#v", members)
	}
}

func TestSaveMergesWithoutOverwriting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artists.json")

	first := artistcache.Open(path, nil)
	second := artistcache.Open(path, nil)

	first.StoreCharacter("Chara", "Alice")
	first.StoreCharacter("Only First", "Carol")
	if err := first.Save(); err != nil {
		t.Fatalf("first Save: %v", err)
	}

	second.StoreCharacter("Chara", "Bob")
	if err := second.Save(); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	if person, _ := second.Character("Chara"); person != "Bob" {
		t.Fatalf("expected in-memory value kept, got %q", person)
	}
	if person, ok := second.Character("Only First"); !ok || person != "Carol" {
		t.Fatalf("expected merged entry, got %q (ok=%v)", person, ok)
	}
}

func TestOpenCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artists.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	store := artistcache.Open(path, nil)
	if len(store.Characters()) != 0 || len(store.Groups()) != 0 {
		t.Fatal("expected empty store for corrupt file")
	}
}

func TestClearRemovesEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artists.json")
	store := artistcache.Open(path, nil)
	store.StoreCharacter("B", "Bob")
	store.StoreCharacter("A", "Alice")
	if got := store.Characters(); len(got) != 2 || got[0].Character != "A" {
		t.Fatalf("expected sorted listing, got %#v", got)
	}
	if err := store.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if len(store.Characters()) != 0 {
		t.Fatal("expected memory cleared")
	}
	if reopened := artistcache.Open(path, nil); len(reopened.Characters()) != 0 {
		t.Fatal("expected file cleared")
	}
}
