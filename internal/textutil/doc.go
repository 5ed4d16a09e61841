// Package textutil provides the display-safe text transforms used when building
// artist credits and album records.
//
// EscapeArtist protects the ideographic comma that separates artists in a
// rendered credit string. EscapeFilename and EscapeTrackName map punctuation
// that the Anni repository layout cannot carry to full-width equivalents.
// ContainsAnyFold backs the case-insensitive track title markers.
package textutil
