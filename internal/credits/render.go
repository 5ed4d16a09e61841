package credits

import (
	"strings"

	"annig/internal/textutil"
)

const (
	openParen  = "（"
	closeParen = "）"
)

// Render turns resolved top-level nodes into the display string: a node is its
// name, or name（child、child…） when it has children, and nodes are joined with
// the artist separator.
func Render(nodes []*Node) string {
	parts := make([]string, 0, len(nodes))
	for _, node := range nodes {
		if len(node.Children) == 0 {
			parts = append(parts, node.Name)
			continue
		}
		names := make([]string, 0, len(node.Children))
		for _, child := range node.Children {
			names = append(names, child.Name)
		}
		parts = append(parts, node.Name+openParen+strings.Join(names, textutil.ArtistSeparator)+closeParen)
	}
	return strings.Join(parts, textutil.ArtistSeparator)
}

// characterDisplayName merges the voicing person into a character's name.
func characterDisplayName(character, person string) string {
	if person == "" {
		return textutil.EscapeArtist(character)
	}
	return textutil.EscapeArtist(character) + openParen + textutil.EscapeArtist(person) + closeParen
}
