// Package logging assembles the structured slog loggers used across annig.
//
// It owns the console and JSON handlers, level parsing, and output routing,
// and exposes helpers that keep warnings uniform: WarnWithContext injects the
// event_type, error_hint, and impact fields so every non-fatal diagnostic
// (a character without a voice actor, a member outside the release window)
// says what happened and what it costs. NewNop serves tests and wiring code
// that cannot fail.
package logging
