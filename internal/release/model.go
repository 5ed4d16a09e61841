package release

// Track types written to album records.
const (
	TypeNormal       = "normal"
	TypeInstrumental = "instrumental"
	TypeDrama        = "drama"
)

// DialoguePlaceholder is the artist MusicBrainz uses for spoken tracks.
const DialoguePlaceholder = "[dialogue]"

// Album is a release ready to be written as an album record. Artist fields
// hold rendered credit strings.
type Album struct {
	ID      string
	Title   string
	Artist  string
	Date    string
	Type    string
	Edition string
	Catalog string
	Tags    []string
	Discs   []Disc
}

// Disc is one medium of an album.
type Disc struct {
	Catalog string
	Tracks  []Track
}

// Track is one track of a disc.
type Track struct {
	Title  string
	Artist string
	Type   string
}

// TrackCount returns the number of tracks across all discs.
func (a *Album) TrackCount() int {
	total := 0
	for _, disc := range a.Discs {
		total += len(disc.Tracks)
	}
	return total
}
