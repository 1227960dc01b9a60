package types

import (
	"github.com/google/uuid"
)

// NewRuleID generates a UUIDv7 rule identifier.
// Time-ordered IDs keep revision history and store indexes append-friendly.
// Panics on clock regression (uuid.Must); acceptable for ID generation.
func NewRuleID() RuleID {
	return RuleID(uuid.Must(uuid.NewV7()).String())
}

// NewSymbolizerID generates a UUIDv7 symbolizer identifier.
// Panics on clock regression (uuid.Must); acceptable for ID generation.
func NewSymbolizerID() SymbolizerID {
	return SymbolizerID(uuid.Must(uuid.NewV7()).String())
}

// NewCollectionID generates a UUIDv7 collection identifier.
func NewCollectionID() CollectionID {
	return CollectionID(uuid.Must(uuid.NewV7()).String())
}

// ParseRuleID validates and converts a string to RuleID.
// Rejects malformed UUIDs to prevent invalid IDs from entering the system.
func ParseRuleID(s string) (RuleID, error) {
	_, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return RuleID(s), nil
}

// ParseSymbolizerID validates and converts a string to SymbolizerID.
func ParseSymbolizerID(s string) (SymbolizerID, error) {
	_, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return SymbolizerID(s), nil
}

// ParseCollectionID validates and converts a string to CollectionID.
func ParseCollectionID(s string) (CollectionID, error) {
	_, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return CollectionID(s), nil
}
