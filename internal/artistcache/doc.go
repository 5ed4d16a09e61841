// Package artistcache holds the two caches the credit resolver consults before
// asking MusicBrainz: character name to voicing person, and group name to its
// resolved members.
//
// Both follow first-writer-wins semantics. Once a key is stored it is never
// overwritten or evicted, so a character keeps the first voice actor it was
// paired with for the rest of the run even if a later credit pairs it
// differently. This is an accepted approximation.
//
// # Storage
//
// By default the store lives in memory for one process. When persistence is
// enabled in config.toml the store is loaded from a JSON file at start and
// written back with Save:
//
//	[artist_cache]
//	enabled = true
//	path = "~/.cache/annig/artists.json"
//
// Writes take an exclusive lock on "<path>.lock" and merge entries saved by
// other processes. CLI commands for inspection and management:
//
//	annig cache show     # List cached characters and groups
//	annig cache clear    # Remove all entries
package artistcache
