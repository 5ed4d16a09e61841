package release

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"annig/internal/catalog"
	"annig/internal/credits"
	"annig/internal/logging"
	"annig/internal/musicbrainz"
	"annig/internal/textutil"
)

var (
	instrumentalMarkers = []string{"off vocal", "instrumental"}
	dramaMarkers        = []string{"drama", "ドラマ"}
)

// Builder assembles albums from MusicBrainz releases.
type Builder struct {
	api      musicbrainz.API
	resolver *credits.Resolver
	logger   *slog.Logger
}

// NewBuilder creates a builder. api should already be paced; resolver carries
// the caches shared by every credit list of the run.
func NewBuilder(api musicbrainz.API, resolver *credits.Resolver, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Builder{
		api:      api,
		resolver: resolver,
		logger:   logging.NewComponentLogger(logger, "release"),
	}
}

// ResolveReleaseID finds the release issued under catalog.
func (b *Builder) ResolveReleaseID(ctx context.Context, catalogNumber string) (string, error) {
	b.logger.Info("searching musicbrainz by catalog", logging.String(logging.FieldCatalog, catalogNumber))
	summary, err := b.api.ReleaseByCatalog(ctx, catalogNumber)
	if err != nil {
		return "", err
	}
	b.logger.Info("release found",
		logging.String(logging.FieldCatalog, catalogNumber),
		logging.String(logging.FieldReleaseID, summary.ID),
		logging.String("title", summary.Title))
	return summary.ID, nil
}

// Build fetches releaseID and resolves every credit on it. albumCatalog is the
// catalog of the album directory; disc catalogs are taken from its expansion.
// The returned album has no ID yet.
func (b *Builder) Build(ctx context.Context, releaseID, albumCatalog string) (*Album, error) {
	discCatalogs, err := catalog.Expand(albumCatalog)
	if err != nil {
		return nil, err
	}

	b.logger.Info("fetching release", logging.String(logging.FieldReleaseID, releaseID))
	mbRelease, err := b.api.GetRelease(ctx, releaseID)
	if err != nil {
		return nil, err
	}
	b.logger.Info("release fetched",
		logging.String(logging.FieldReleaseID, releaseID),
		logging.String("title", mbRelease.Title),
		logging.String("release_date", mbRelease.Date),
		logging.Int("discs", len(mbRelease.Media)))

	if len(mbRelease.Media) > len(discCatalogs) && len(discCatalogs) > 1 {
		logging.WarnWithContext(b.logger, "release has more discs than the catalog range", "disc_catalog_shortfall",
			logging.String(logging.FieldCatalog, albumCatalog),
			logging.Int("discs", len(mbRelease.Media)),
			logging.Int("catalogs", len(discCatalogs)),
			logging.String(logging.FieldErrorHint, "check the catalog range in the directory name"),
			logging.String(logging.FieldImpact, "extra discs reuse the directory catalog"))
	}

	albumArtist, err := b.resolver.Credit(ctx, FromArtistCredits(mbRelease.ArtistCredit), mbRelease.Date)
	if err != nil {
		return nil, fmt.Errorf("resolve album artist: %w", err)
	}

	album := &Album{
		Title:   textutil.EscapeFilename(mbRelease.Title),
		Artist:  albumArtist,
		Date:    mbRelease.Date,
		Type:    TypeNormal,
		Edition: strings.TrimSpace(mbRelease.Disambiguation),
		Catalog: albumCatalog,
		Tags:    []string{},
		Discs:   make([]Disc, 0, len(mbRelease.Media)),
	}

	for index, medium := range mbRelease.Media {
		disc := Disc{
			Catalog: catalog.ForDisc(discCatalogs, index, albumCatalog),
			Tracks:  make([]Track, 0, len(medium.Tracks)),
		}
		for _, mbTrack := range medium.Tracks {
			track, err := b.buildTrack(ctx, mbTrack, albumArtist, mbRelease.Date)
			if err != nil {
				return nil, fmt.Errorf("resolve artist of disc %d track %q: %w", index+1, mbTrack.Title, err)
			}
			disc.Tracks = append(disc.Tracks, track)
		}
		album.Discs = append(album.Discs, disc)
	}

	b.logger.Info("album assembled",
		logging.String(logging.FieldReleaseID, releaseID),
		logging.String("artist", album.Artist),
		logging.Int("tracks", album.TrackCount()))
	return album, nil
}

func (b *Builder) buildTrack(ctx context.Context, mbTrack musicbrainz.Track, albumArtist, releaseDate string) (Track, error) {
	artist, err := b.resolver.Credit(ctx, FromArtistCredits(ChooseCredits(mbTrack)), releaseDate)
	if err != nil {
		return Track{}, err
	}
	trackType := ClassifyTrack(mbTrack.Title, artist)
	if artist == DialoguePlaceholder {
		artist = albumArtist
	}
	return Track{
		Title:  textutil.EscapeTrackName(mbTrack.Title),
		Artist: artist,
		Type:   trackType,
	}, nil
}

// ClassifyTrack derives a track type from its title and resolved artist.
// Instrumental markers win over drama markers.
func ClassifyTrack(title, artist string) string {
	switch {
	case textutil.ContainsAnyFold(title, instrumentalMarkers...):
		return TypeInstrumental
	case textutil.ContainsAnyFold(title, dramaMarkers...) || artist == DialoguePlaceholder:
		return TypeDrama
	default:
		return TypeNormal
	}
}
