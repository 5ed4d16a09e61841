package musicbrainz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"annig/internal/services"
)

// API defines the MusicBrainz lookups used to build album records.
type API interface {
	GetRelease(ctx context.Context, releaseID string) (*Release, error)
	GroupMembers(ctx context.Context, groupID string) ([]Relation, error)
	VoiceActor(ctx context.Context, characterID string) (Artist, error)
	ReleaseByCatalog(ctx context.Context, catalog string) (*ReleaseSummary, error)
}

// Client provides access to the MusicBrainz web service (JSON flavour).
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

var _ API = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// New creates a MusicBrainz client. MusicBrainz rejects anonymous clients, so a
// user agent is required.
func New(baseURL, userAgent string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("musicbrainz base url required")
	}
	userAgent = strings.TrimSpace(userAgent)
	if userAgent == "" {
		return nil, errors.New("musicbrainz user agent required")
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// GetRelease fetches a release with recordings, artist credits, and labels.
func (c *Client) GetRelease(ctx context.Context, releaseID string) (*Release, error) {
	releaseID = strings.TrimSpace(releaseID)
	if releaseID == "" {
		return nil, services.Wrap(services.ErrValidation, "musicbrainz", "get release", "release id must not be empty", nil)
	}
	params := url.Values{}
	params.Set("inc", "recordings artist-credits labels")
	var payload Release
	if err := c.get(ctx, "/release/"+url.PathEscape(releaseID), params, "get release", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// GetArtistRelations fetches an artist with its artist-to-artist relations.
func (c *Client) GetArtistRelations(ctx context.Context, artistID string) (*ArtistDetails, error) {
	artistID = strings.TrimSpace(artistID)
	if artistID == "" {
		return nil, services.Wrap(services.ErrValidation, "musicbrainz", "get artist", "artist id must not be empty", nil)
	}
	params := url.Values{}
	params.Set("inc", "artist-rels")
	var payload ArtistDetails
	if err := c.get(ctx, "/artist/"+url.PathEscape(artistID), params, "get artist", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// GroupMembers returns the member-of-band relations of a group in the order
// MusicBrainz lists them. Validity windows are left to the caller.
func (c *Client) GroupMembers(ctx context.Context, groupID string) ([]Relation, error) {
	details, err := c.GetArtistRelations(ctx, groupID)
	if err != nil {
		return nil, err
	}
	members := make([]Relation, 0, len(details.Relations))
	for _, relation := range details.Relations {
		if relation.TypeID == RelationMemberOfBand {
			members = append(members, relation)
		}
	}
	return members, nil
}

// VoiceActor returns the first person credited as voicing the character.
func (c *Client) VoiceActor(ctx context.Context, characterID string) (Artist, error) {
	details, err := c.GetArtistRelations(ctx, characterID)
	if err != nil {
		return Artist{}, err
	}
	for _, relation := range details.Relations {
		if relation.TypeID == RelationVoiceActor {
			return relation.Artist, nil
		}
	}
	return Artist{}, services.Wrap(services.ErrNotFound, "musicbrainz", "voice actor", fmt.Sprintf("no voice actor for character %s", characterID), nil)
}

// ReleaseByCatalog searches releases by catalog number and accepts the best hit
// only when its first label catalog number matches exactly.
func (c *Client) ReleaseByCatalog(ctx context.Context, catalog string) (*ReleaseSummary, error) {
	catalog = strings.TrimSpace(catalog)
	if catalog == "" {
		return nil, services.Wrap(services.ErrValidation, "musicbrainz", "search release", "catalog must not be empty", nil)
	}
	params := url.Values{}
	params.Set("query", "catno:"+catalog)
	var payload SearchResponse
	if err := c.get(ctx, "/release", params, "search release", &payload); err != nil {
		return nil, err
	}
	if payload.Count == 0 || len(payload.Releases) == 0 {
		return nil, services.Wrap(services.ErrNotFound, "musicbrainz", "search release", fmt.Sprintf("no release found for catalog %s", catalog), nil)
	}
	best := payload.Releases[0]
	if len(best.LabelInfo) == 0 || best.LabelInfo[0].CatalogNumber != catalog {
		return nil, services.Wrap(services.ErrNotFound, "musicbrainz", "search release", fmt.Sprintf("no release found for catalog %s", catalog), nil)
	}
	return &best, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, operation string, out any) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return services.Wrap(services.ErrValidation, "musicbrainz", operation, "parse url", err)
	}
	params.Set("fmt", "json")
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return services.Wrap(services.ErrValidation, "musicbrainz", operation, "build request", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return services.Wrap(services.ErrTransport, "musicbrainz", operation, fmt.Sprintf("execute request (latency=%v)", latency), err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return services.Wrap(services.ErrNotFound, "musicbrainz", operation, fmt.Sprintf("%s not found", path), nil)
	case resp.StatusCode != http.StatusOK:
		return services.Wrap(services.ErrTransport, "musicbrainz", operation, fmt.Sprintf("returned %d (latency=%v)", resp.StatusCode, latency), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return services.Wrap(services.ErrTransport, "musicbrainz", operation, "decode response", err)
	}
	return nil
}
