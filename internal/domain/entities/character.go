// Package entities contains core domain data structures.
package entities

import (
	"regexp"
	"strings"
	"time"
)

var (
	// reNonWord matches runs of characters that aren't alphanumeric or underscore.
	reNonWord = regexp.MustCompile(`[^a-z0-9_]+`)
	// reMultipleUnderscores matches consecutive underscores.
	reMultipleUnderscores = regexp.MustCompile(`_+`)
)

// DefaultColor is used when a character is created without an explicit color.
const DefaultColor = "#ffd700"

// Character represents a person in the relationship network. Inactive
// characters are excluded from the current view but their rows are never
// physically removed.
type Character struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Group     string    `json:"group,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// CharacterID derives a stable identifier from a display name: lower-cased,
// with non-word runs collapsed to a single underscore.
func CharacterID(name string) string {
	id := strings.ToLower(strings.TrimSpace(name))
	id = reNonWord.ReplaceAllString(id, "_")
	id = reMultipleUnderscores.ReplaceAllString(id, "_")
	return strings.Trim(id, "_")
}
