package preflight

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/sys/unix"
)

// probeArtistID is the MusicBrainz "Various Artists" special purpose artist,
// which always exists.
const probeArtistID = "89ad4ac3-39f7-470e-963a-56509c546377"

// CheckMusicBrainz verifies that the web service answers a lookup with the
// configured user agent. It uses a single attempt and a short timeout.
func CheckMusicBrainz(ctx context.Context, baseURL, userAgent string) Result {
	const name = "MusicBrainz"

	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return Result{Name: name, Detail: "missing base url"}
	}

	checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(checkCtx, http.MethodGet, base+"/artist/"+probeArtistID+"?fmt=json", nil)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("lookup failed (%v)", err)}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return Result{Name: name, Detail: summarizeNetworkError(err)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s reachable", base)}
	case resp.StatusCode == http.StatusServiceUnavailable:
		return Result{Name: name, Detail: "rate limited (503); wait and retry"}
	case resp.StatusCode == http.StatusForbidden:
		return Result{Name: name, Detail: "request rejected (403); check musicbrainz.user_agent"}
	default:
		return Result{Name: name, Detail: fmt.Sprintf("lookup failed (%d)", resp.StatusCode)}
	}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

func summarizeNetworkError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "lookup timed out (MusicBrainz unresponsive)"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "lookup timed out (MusicBrainz unreachable)"
	}
	return fmt.Sprintf("lookup failed (%v)", err)
}
