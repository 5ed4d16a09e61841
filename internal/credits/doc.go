// Package credits reconstructs the artist hierarchy hidden in a flat
// MusicBrainz artist-credit list and renders it as one display string.
//
// A credit list is processed in order. A Group opens a new top-level artist
// that collects every following Person, Character, and Other entry until the
// next Group. A Character is paired with the Person at the same position among
// the list's Persons (PairByPosition); that Person is folded into the
// character's name as Character（Person） instead of being listed on its own.
// Characters without a positional Person, and Groups whose members are not
// credited, are enriched through a Directory, with results memoized in an
// artistcache.Store shared across calls.
//
// Rendering joins top-level artists with the ideographic comma and wraps
// members in full-width parentheses, e.g. Band（Alice、Bob）、Solo. Names are
// escaped with textutil.EscapeArtist so separators inside names survive.
package credits
