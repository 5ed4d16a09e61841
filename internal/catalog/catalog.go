package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"annig/internal/services"
)

// Expand returns the per-disc catalog numbers named by catalog. A plain
// catalog yields itself. A range LABEL-start~end yields every number from
// start to end, where end replaces the trailing digits of start and the
// result keeps the width of start: LABEL-001~3 is LABEL-001, LABEL-002,
// LABEL-003.
func Expand(catalog string) ([]string, error) {
	catalog = strings.TrimSpace(catalog)
	if !strings.Contains(catalog, "~") {
		return []string{catalog}, nil
	}

	invalid := func(reason string) error {
		return services.Wrap(services.ErrValidation, "catalog", "expand", fmt.Sprintf("%q: %s", catalog, reason), nil)
	}

	dash := strings.LastIndex(catalog, "-")
	if dash <= 0 {
		return nil, invalid("range needs a LABEL-number prefix")
	}
	label, numbers := catalog[:dash], catalog[dash+1:]
	start, end, ok := strings.Cut(numbers, "~")
	if !ok || !isDigits(start) || !isDigits(end) {
		return nil, invalid("range bounds must be numeric")
	}

	last := end
	if len(end) < len(start) {
		last = start[:len(start)-len(end)] + end
	}
	from, err := strconv.Atoi(start)
	if err != nil {
		return nil, invalid(err.Error())
	}
	to, err := strconv.Atoi(last)
	if err != nil {
		return nil, invalid(err.Error())
	}
	if to < from {
		return nil, invalid("range end precedes start")
	}

	width := len(start)
	expanded := make([]string, 0, to-from+1)
	for n := from; n <= to; n++ {
		expanded = append(expanded, fmt.Sprintf("%s-%0*d", label, width, n))
	}
	return expanded, nil
}

// ForDisc returns the catalog of the disc at index, falling back to the
// directory catalog when the expansion has fewer entries.
func ForDisc(expanded []string, index int, fallback string) string {
	if index >= 0 && index < len(expanded) {
		return expanded[index]
	}
	return fallback
}

func isDigits(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
