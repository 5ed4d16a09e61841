// Package preflight provides readiness checks for the filesystem paths and the
// web service annig depends on.
//
// The CLI "annig status" command runs RunAll and prints one line per check:
// the state directory, the repository album directory (when configured), the
// artist cache directory (when persistence is on), and MusicBrainz
// reachability with the configured user agent.
package preflight
