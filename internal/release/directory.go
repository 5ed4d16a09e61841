package release

import (
	"context"

	"annig/internal/credits"
	"annig/internal/musicbrainz"
)

// Directory serves the resolver's enrichment lookups from MusicBrainz.
type Directory struct {
	api musicbrainz.API
}

var _ credits.Directory = (*Directory)(nil)

// NewDirectory adapts api to credits.Directory.
func NewDirectory(api musicbrainz.API) *Directory {
	return &Directory{api: api}
}

// GroupMembers implements credits.Directory.
func (d *Directory) GroupMembers(ctx context.Context, groupID string) ([]credits.Member, error) {
	relations, err := d.api.GroupMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}
	members := make([]credits.Member, 0, len(relations))
	for _, relation := range relations {
		members = append(members, credits.Member{
			Entry: entryFromArtist(relation.Artist),
			Begin: relation.Begin,
			End:   relation.End,
		})
	}
	return members, nil
}

// VoiceActor implements credits.Directory.
func (d *Directory) VoiceActor(ctx context.Context, characterID string) (credits.Entry, error) {
	actor, err := d.api.VoiceActor(ctx, characterID)
	if err != nil {
		return credits.Entry{}, err
	}
	return entryFromArtist(actor), nil
}

func entryFromArtist(artist musicbrainz.Artist) credits.Entry {
	return credits.Entry{ID: artist.ID, Name: artist.Name, Role: credits.ParseRole(artist.Type)}
}

// FromArtistCredits converts a MusicBrainz artist-credit list into resolver
// entries, keeping order. The artist's own name is used rather than the
// credited-as name so cache keys stay stable across releases.
func FromArtistCredits(list []musicbrainz.ArtistCredit) []credits.Entry {
	entries := make([]credits.Entry, 0, len(list))
	for _, credit := range list {
		entry := entryFromArtist(credit.Artist)
		if entry.Name == "" {
			entry.Name = credit.Name
		}
		entries = append(entries, entry)
	}
	return entries
}

// ChooseCredits picks the credit list of a track: the track's own list when it
// is at least as long as the recording's, otherwise the recording's.
func ChooseCredits(track musicbrainz.Track) []musicbrainz.ArtistCredit {
	if track.Recording == nil || len(track.ArtistCredit) >= len(track.Recording.ArtistCredit) {
		return track.ArtistCredit
	}
	return track.Recording.ArtistCredit
}
