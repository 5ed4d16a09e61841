package testsupport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// MusicBrainzServer is a fake ws/2 endpoint serving canned JSON documents.
type MusicBrainzServer struct {
	*httptest.Server

	mu       sync.Mutex
	releases map[string]any
	artists  map[string]any
	searches map[string]any
	requests []string
}

// NewMusicBrainzServer starts a fake server that is closed on cleanup. Its
// URL is the ws/2 base URL.
func NewMusicBrainzServer(t testing.TB) *MusicBrainzServer {
	t.Helper()

	fake := &MusicBrainzServer{
		releases: map[string]any{},
		artists:  map[string]any{},
		searches: map[string]any{},
	}
	fake.Server = httptest.NewServer(http.HandlerFunc(fake.serve))
	t.Cleanup(fake.Close)
	return fake
}

// AddRelease registers a release lookup payload.
func (f *MusicBrainzServer) AddRelease(id string, payload any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.releases[id] = payload
}

// AddArtist registers an artist lookup payload (with relations).
func (f *MusicBrainzServer) AddArtist(id string, payload any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.artists[id] = payload
}

// AddSearch registers a release search payload for a catno query.
func (f *MusicBrainzServer) AddSearch(catalog string, payload any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches[catalog] = payload
}

// Requests returns the request paths served so far.
func (f *MusicBrainzServer) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func (f *MusicBrainzServer) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r.URL.Path)
	var (
		payload any
		ok      bool
	)
	switch {
	case r.URL.Path == "/release":
		payload, ok = f.searches[strings.TrimPrefix(r.URL.Query().Get("query"), "catno:")]
	case strings.HasPrefix(r.URL.Path, "/release/"):
		payload, ok = f.releases[strings.TrimPrefix(r.URL.Path, "/release/")]
	case strings.HasPrefix(r.URL.Path, "/artist/"):
		payload, ok = f.artists[strings.TrimPrefix(r.URL.Path, "/artist/")]
	}
	f.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}
