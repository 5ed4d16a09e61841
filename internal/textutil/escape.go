package textutil

import "strings"

// ArtistSeparator joins artist names in rendered credit strings.
const ArtistSeparator = "、"

var artistReplacer = strings.NewReplacer(ArtistSeparator, ArtistSeparator+ArtistSeparator)

// fileNameReplacer maps filesystem-unsafe punctuation to full-width lookalikes.
var fileNameReplacer = strings.NewReplacer(
	"*", "＊",
	":", "：",
	"<", "＜",
	">", "＞",
	"?", "？",
	"/", "／",
	"〜", "～",
)

var trackNameReplacer = strings.NewReplacer("〜", "～")

// EscapeArtist doubles every artist separator so a name containing one is not
// split into several artists once joined. Applying it twice doubles again.
func EscapeArtist(name string) string {
	return artistReplacer.Replace(name)
}

// EscapeFilename replaces characters that are unsafe in file names or in the
// Anni repository layout with visually similar full-width glyphs.
func EscapeFilename(name string) string {
	return fileNameReplacer.Replace(name)
}

// EscapeTrackName normalizes the wave dash used in track titles.
func EscapeTrackName(name string) string {
	return trackNameReplacer.Replace(name)
}
