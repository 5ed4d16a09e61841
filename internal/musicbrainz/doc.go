// Package musicbrainz provides the minimal MusicBrainz web service client used
// to build album records.
//
// It covers four lookups: a release with recordings, artist credits, and
// labels; the member-of-band relations of a group; the voice actor of a
// character; and a release search by catalog number that only accepts an exact
// catalog match. Failures are tagged with the services markers (404 as
// ErrNotFound, everything else as ErrTransport). The client never sleeps or
// retries; rate-limit courtesy is the caller's job.
package musicbrainz
