// Package services defines the error markers shared by the MusicBrainz client,
// the credit resolver, and the CLI.
//
// Failures are tagged with one of the sentinel markers through Wrap so callers
// can decide with errors.Is whether a failure aborts the run (release and
// catalog lookups) or degrades to missing display data (voice actor and group
// membership enrichment). Hint turns a classified failure into a one-line
// suggestion for the operator.
package services
