package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldEventType is the standardized key naming what happened, for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint is the standardized key for the suggested next step.
	FieldErrorHint = "error_hint"
	// FieldReleaseID is the standardized key for MusicBrainz release identifiers.
	FieldReleaseID = "release_id"
	// FieldArtistID is the standardized key for MusicBrainz artist identifiers.
	FieldArtistID = "artist_id"
	// FieldCatalog is the standardized key for catalog numbers.
	FieldCatalog = "catalog"
)
