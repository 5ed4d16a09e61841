package release

import (
	"context"
	"log/slog"
	"time"

	"annig/internal/logging"
	"annig/internal/musicbrainz"
)

// Paced is a musicbrainz.API that waits after every successful call. Failed
// calls return immediately and nothing is retried.
type Paced struct {
	api    musicbrainz.API
	delay  time.Duration
	logger *slog.Logger
	sleep  func(context.Context, time.Duration) error
}

var _ musicbrainz.API = (*Paced)(nil)

// NewPaced wraps api with the given courtesy delay.
func NewPaced(api musicbrainz.API, delay time.Duration, logger *slog.Logger) *Paced {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Paced{
		api:    api,
		delay:  delay,
		logger: logging.NewComponentLogger(logger, "musicbrainz-pacing"),
		sleep:  sleepContext,
	}
}

// GetRelease implements musicbrainz.API.
func (p *Paced) GetRelease(ctx context.Context, releaseID string) (*musicbrainz.Release, error) {
	release, err := p.api.GetRelease(ctx, releaseID)
	if err != nil {
		return nil, err
	}
	return release, p.wait(ctx)
}

// GroupMembers implements musicbrainz.API.
func (p *Paced) GroupMembers(ctx context.Context, groupID string) ([]musicbrainz.Relation, error) {
	members, err := p.api.GroupMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return members, p.wait(ctx)
}

// VoiceActor implements musicbrainz.API.
func (p *Paced) VoiceActor(ctx context.Context, characterID string) (musicbrainz.Artist, error) {
	actor, err := p.api.VoiceActor(ctx, characterID)
	if err != nil {
		return musicbrainz.Artist{}, err
	}
	return actor, p.wait(ctx)
}

// ReleaseByCatalog implements musicbrainz.API.
func (p *Paced) ReleaseByCatalog(ctx context.Context, catalog string) (*musicbrainz.ReleaseSummary, error) {
	summary, err := p.api.ReleaseByCatalog(ctx, catalog)
	if err != nil {
		return nil, err
	}
	return summary, p.wait(ctx)
}

func (p *Paced) wait(ctx context.Context) error {
	if p.delay <= 0 {
		return nil
	}
	p.logger.Debug("pacing musicbrainz requests", logging.Duration("delay", p.delay))
	return p.sleep(ctx, p.delay)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
