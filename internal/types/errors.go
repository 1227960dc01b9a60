package types

import "errors"

// Sentinel errors for cartorule operations.
//
// The pure edit engine never returns these: addressing misses are silent
// no-ops by policy. They surface at the session boundary and the store.
var (
	// ErrMandatoryRule indicates an attempt to remove a rule flagged mandatory.
	ErrMandatoryRule = errors.New("rule is mandatory and cannot be removed")

	// ErrUnknownIntent indicates an intent kind the dispatcher does not recognize.
	ErrUnknownIntent = errors.New("unknown edit intent")

	// ErrTooManyRules indicates the collection exceeds MaxRulesPerCollection.
	ErrTooManyRules = errors.New("collection exceeds maximum rule count")

	// ErrTooManySymbolizers indicates a rule exceeds MaxSymbolizersPerRule.
	ErrTooManySymbolizers = errors.New("rule exceeds maximum symbolizer count")

	// ErrPropertyKeyTooLong indicates a symbolizer property key exceeds MaxPropertyKeyLength.
	ErrPropertyKeyTooLong = errors.New("symbolizer property key too long")

	// ErrNameTooLong indicates a display name exceeds MaxNameLength.
	ErrNameTooLong = errors.New("name too long")

	// ErrCollectionNotFound indicates the store has no collection for the given ID.
	ErrCollectionNotFound = errors.New("collection not found")
)
