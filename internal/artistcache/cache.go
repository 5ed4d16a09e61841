package artistcache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"annig/internal/logging"
	"annig/internal/textutil"
)

// Member is a resolved group member: the artist id and its final display name.
type Member struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type snapshot struct {
	SavedAt    time.Time           `json:"saved_at"`
	Characters map[string]string   `json:"characters"`
	Groups     map[string][]Member `json:"groups"`
}

// Store holds the character→person and group→members caches. The first value
// stored for a key is authoritative; later stores for the same key are ignored
// and nothing is ever evicted.
type Store struct {
	path   string
	logger *slog.Logger

	mu         sync.RWMutex
	characters map[string]string
	groups     map[string][]Member
}

// New creates an in-memory store that lives as long as the process.
func New(logger *slog.Logger) *Store {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Store{
		logger:     logging.NewComponentLogger(logger, "artistcache"),
		characters: make(map[string]string),
		groups:     make(map[string][]Member),
	}
}

// Open creates a store backed by a JSON file. Existing entries are loaded
// immediately; Save writes the store back. A missing or unreadable file yields
// an empty store.
func Open(path string, logger *slog.Logger) *Store {
	s := New(logger)
	s.path = path
	if path == "" {
		return s
	}

	if err := s.load(); err != nil {
		logging.WarnWithContext(s.logger, "failed to load artist cache", "artistcache_load_failed",
			logging.Error(err),
			logging.String("path", path),
			logging.String(logging.FieldErrorHint, "delete the cache file if it is corrupt"),
			logging.String(logging.FieldImpact, "characters and groups will be looked up again"))
	}
	return s
}

// Path returns the backing file, or "" for a memory-only store.
func (s *Store) Path() string {
	return s.path
}

// Character returns the cached voicing person for a character name.
func (s *Store) Character(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	person, ok := s.characters[textutil.NormalizeKey(name)]
	return person, ok
}

// StoreCharacter records the voicing person for a character unless one is
// already cached. It reports whether the value was stored.
func (s *Store) StoreCharacter(name, person string) bool {
	key := textutil.NormalizeKey(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.characters[key]; exists {
		return false
	}
	s.characters[key] = person
	s.logger.Debug("cached character voice actor",
		logging.String("character", name),
		logging.String("person", person))
	return true
}

// Group returns a copy of the cached members of a group.
func (s *Store) Group(name string) ([]Member, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	members, ok := s.groups[textutil.NormalizeKey(name)]
	if !ok {
		return nil, false
	}
	return append([]Member(nil), members...), true
}

// StoreGroup records the members of a group unless the group is already
// cached. It reports whether the value was stored.
func (s *Store) StoreGroup(name string, members []Member) bool {
	key := textutil.NormalizeKey(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.groups[key]; exists {
		return false
	}
	s.groups[key] = append([]Member(nil), members...)
	s.logger.Debug("cached group members",
		logging.String("group", name),
		logging.Int("member_count", len(members)))
	return true
}

// CharacterEntry is a character mapping for listing.
type CharacterEntry struct {
	Character string
	Person    string
}

// GroupEntry is a group mapping for listing.
type GroupEntry struct {
	Group   string
	Members []Member
}

// Characters lists cached character mappings sorted by character name.
func (s *Store) Characters() []CharacterEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]CharacterEntry, 0, len(s.characters))
	for character, person := range s.characters {
		entries = append(entries, CharacterEntry{Character: character, Person: person})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Character < entries[j].Character
	})
	return entries
}

// Groups lists cached groups sorted by group name.
func (s *Store) Groups() []GroupEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]GroupEntry, 0, len(s.groups))
	for group, members := range s.groups {
		entries = append(entries, GroupEntry{Group: group, Members: append([]Member(nil), members...)})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Group < entries[j].Group
	})
	return entries
}

// Save persists the store. Entries another process saved in the meantime are
// merged in without replacing keys this store already holds. It is a no-op for
// memory-only stores.
func (s *Store) Save() error {
	if s.path == "" {
		return nil
	}
	return s.withFileLock(func() error {
		s.mu.Lock()
		defer s.mu.Unlock()

		onDisk, err := readSnapshot(s.path)
		if err != nil {
			s.logger.Debug("ignoring unreadable cache file during save", logging.Error(err))
		} else {
			for key, person := range onDisk.Characters {
				if _, exists := s.characters[key]; !exists {
					s.characters[key] = person
				}
			}
			for key, members := range onDisk.Groups {
				if _, exists := s.groups[key]; !exists {
					s.groups[key] = members
				}
			}
		}
		if err := s.write(); err != nil {
			return fmt.Errorf("persist cache: %w", err)
		}
		s.logger.Debug("saved artist cache",
			logging.Int("character_count", len(s.characters)),
			logging.Int("group_count", len(s.groups)),
			logging.String("path", s.path))
		return nil
	})
}

// Clear removes every entry from memory and, for file-backed stores, from disk.
// It is an operator action, not part of resolution.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.characters = make(map[string]string)
	s.groups = make(map[string][]Member)
	s.mu.Unlock()
	if s.path == "" {
		return nil
	}
	return s.withFileLock(func() error {
		s.mu.Lock()
		defer s.mu.Unlock()
		if err := s.write(); err != nil {
			return fmt.Errorf("persist cache: %w", err)
		}
		s.logger.Debug("cleared artist cache")
		return nil
	})
}

func (s *Store) withFileLock(fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}
	lock := flock.New(s.path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("acquire cache lock: %w", err)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			s.logger.Warn("failed to release cache lock", logging.Error(err))
		}
	}()
	return fn()
}

func (s *Store) load() error {
	snap, err := readSnapshot(s.path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, person := range snap.Characters {
		s.characters[key] = person
	}
	for key, members := range snap.Groups {
		s.groups[key] = members
	}
	s.logger.Debug("loaded artist cache",
		logging.Int("character_count", len(s.characters)),
		logging.Int("group_count", len(s.groups)),
		logging.String("path", s.path))
	return nil
}

func readSnapshot(path string) (snapshot, error) {
	var snap snapshot
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return snap, nil // fresh start
		}
		return snap, fmt.Errorf("read cache file: %w", err)
	}
	if len(data) == 0 {
		return snap, nil
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return snapshot{}, fmt.Errorf("parse cache file: %w", err)
	}
	return snap, nil
}

// write stores the snapshot atomically; callers hold s.mu and the file lock.
func (s *Store) write() error {
	data, err := json.MarshalIndent(snapshot{
		SavedAt:    time.Now().UTC(),
		Characters: s.characters,
		Groups:     s.groups,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cache: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath) // cleanup on failure
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
