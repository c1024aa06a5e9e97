package utils

import (
	"strings"

	"github.com/google/uuid"
)

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(s))
}

// ShortID returns the first eight characters of an id, for log prefixes and
// terminal tables
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
