package catalog

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"

	"annig/internal/services"
)

var directoryPattern = regexp.MustCompile(`^\[(\d{4}|\d{2})-?(\d{2})-?(\d{2})\]\[([^\]]+)\] (.+?)(?: \[(\d+) Discs\])?$`)

// Directory holds the fields encoded in an album directory name.
type Directory struct {
	// Date is YYYY-MM-DD, or YY-MM-DD when the name used a two-digit year.
	Date    string
	Catalog string
	Title   string
	// Discs is the declared disc count, 1 when the suffix is absent.
	Discs int
}

// ParseDirectoryName parses the base name of an album directory.
func ParseDirectoryName(name string) (Directory, error) {
	base := filepath.Base(name)
	match := directoryPattern.FindStringSubmatch(base)
	if match == nil {
		return Directory{}, services.Wrap(
			services.ErrConfiguration,
			"catalog",
			"parse directory",
			fmt.Sprintf("%q is not an album directory; run inside a directory named like [YYYY-MM-DD][CATALOG] Title", base),
			nil,
		)
	}
	dir := Directory{
		Date:    match[1] + "-" + match[2] + "-" + match[3],
		Catalog: match[4],
		Title:   match[5],
		Discs:   1,
	}
	if match[6] != "" {
		if discs, err := strconv.Atoi(match[6]); err == nil && discs > 0 {
			dir.Discs = discs
		}
	}
	return dir, nil
}
