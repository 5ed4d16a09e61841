package credits

import (
	"strings"
	"time"
)

// Member is a group member as reported by the directory, with its optional
// membership window in MusicBrainz partial-date form.
type Member struct {
	Entry
	Begin string
	End   string
}

var dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

// ParseDate parses a full or partial (year, year-month) date.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// MemberActive reports whether a member belonged to the group on the release
// date. Without a usable release date every member counts. With both bounds
// the window is [begin, end); with only a begin it is open-ended.
func MemberActive(begin, end, releaseDate string) bool {
	date, ok := ParseDate(releaseDate)
	if !ok {
		return true
	}
	from, hasBegin := ParseDate(begin)
	until, hasEnd := ParseDate(end)
	switch {
	case hasBegin && hasEnd:
		return !date.Before(from) && date.Before(until)
	case hasBegin:
		return !date.Before(from)
	default:
		return true
	}
}
