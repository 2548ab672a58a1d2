package models

import (
	"encoding/hex"
	"regexp"

	"github.com/google/uuid"
)

// IDLength is the length of every entity identifier.
const IDLength = 32

var idPattern = regexp.MustCompile(`^[0-9a-fA-F]{32}$`)

// NewID returns a fresh random identifier: a UUIDv4 rendered as 32 hex characters.
func NewID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

// IsID reports whether s has the shape of an entity identifier.
func IsID(s string) bool {
	return idPattern.MatchString(s)
}
