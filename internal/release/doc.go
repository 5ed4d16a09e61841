// Package release turns a MusicBrainz release into the album model written to
// the Anni repository.
//
// Builder fetches the release, resolves the album artist and every track
// artist through a credits.Resolver, and classifies tracks as normal,
// instrumental, or drama. Paced wraps the MusicBrainz client so that every
// successful call is followed by the courtesy delay MusicBrainz asks of
// clients; Directory adapts the paced client to the resolver's lookups.
package release
