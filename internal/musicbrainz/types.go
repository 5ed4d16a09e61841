package musicbrainz

// Relation type identifiers used by the credit resolver.
const (
	RelationMemberOfBand = "5be4c609-9afa-4ea0-910b-12ffb71e3821"
	RelationVoiceActor   = "e259a3f5-ce8e-45c1-9ef7-90ff7d0c7589"
)

// Artist is the artist object embedded in credits and relations.
type Artist struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	SortName       string `json:"sort-name"`
	Type           string `json:"type"`
	Disambiguation string `json:"disambiguation"`
}

// ArtistCredit is one entry of an artist-credit list.
type ArtistCredit struct {
	Name       string `json:"name"`
	JoinPhrase string `json:"joinphrase"`
	Artist     Artist `json:"artist"`
}

// Label identifies a record label.
type Label struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LabelInfo pairs a label with the catalog number it issued the release under.
type LabelInfo struct {
	CatalogNumber string `json:"catalog-number"`
	Label         *Label `json:"label"`
}

// Recording is the recording a track points at.
type Recording struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	ArtistCredit []ArtistCredit `json:"artist-credit"`
}

// Track is a single track on a medium.
type Track struct {
	ID           string         `json:"id"`
	Number       string         `json:"number"`
	Position     int            `json:"position"`
	Title        string         `json:"title"`
	ArtistCredit []ArtistCredit `json:"artist-credit"`
	Recording    *Recording     `json:"recording"`
}

// Medium is a disc of a release.
type Medium struct {
	Position int     `json:"position"`
	Format   string  `json:"format"`
	Title    string  `json:"title"`
	Tracks   []Track `json:"tracks"`
}

// Release is the release lookup payload with recordings, artist credits, and labels included.
type Release struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Date           string         `json:"date"`
	Disambiguation string         `json:"disambiguation"`
	ArtistCredit   []ArtistCredit `json:"artist-credit"`
	LabelInfo      []LabelInfo    `json:"label-info"`
	Media          []Medium       `json:"media"`
}

// CatalogNumber returns the first label catalog number, if any.
func (r Release) CatalogNumber() string {
	if len(r.LabelInfo) == 0 {
		return ""
	}
	return r.LabelInfo[0].CatalogNumber
}

// Relation is an artist-to-artist relationship.
type Relation struct {
	Type      string `json:"type"`
	TypeID    string `json:"type-id"`
	Direction string `json:"direction"`
	Begin     string `json:"begin"`
	End       string `json:"end"`
	Ended     bool   `json:"ended"`
	Artist    Artist `json:"artist"`
}

// ArtistDetails is the artist lookup payload with artist relations included.
type ArtistDetails struct {
	Artist
	Relations []Relation `json:"relations"`
}

// ReleaseSummary is a release search hit.
type ReleaseSummary struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Date      string      `json:"date"`
	Score     int         `json:"score"`
	LabelInfo []LabelInfo `json:"label-info"`
}

// SearchResponse models the release search payload.
type SearchResponse struct {
	Count    int              `json:"count"`
	Offset   int              `json:"offset"`
	Releases []ReleaseSummary `json:"releases"`
}
