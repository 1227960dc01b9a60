// Package types provides domain models shared across cartorule components.
//
// Zero-dependency design: types.go, rules.go and errors.go use only
// encoding/json so embedders of the editing core pull in nothing beyond the
// standard library. ID utilities in ids.go import uuid but are isolated for
// selective inclusion.
package types

import "encoding/json"

// RuleID represents a UUIDv7 style-rule identifier.
// String alias enables type safety while maintaining JSON string serialization.
// The identifier is assigned at creation and is the sole addressing key for
// update, removal and replacement; it never changes for the rule's lifetime.
type RuleID string

// SymbolizerID represents a UUIDv7 symbolizer identifier.
// Unique within its parent rule's symbolizer sequence; global uniqueness is
// not required but holds in practice since identifiers are minted from a
// single generator.
type SymbolizerID string

// CollectionID represents a UUIDv7 identifier for a stored rule collection.
type CollectionID string

// GeometryType tags the geometry a capability block applies to.
type GeometryType string

// Geometry type tags. Raster is included because raster-channel symbolizers
// share the same capability machinery as vector ones.
const (
	GeometryUnknown GeometryType = "unknown"
	GeometryPoint   GeometryType = "point"
	GeometryLine    GeometryType = "line"
	GeometryPolygon GeometryType = "polygon"
	GeometryRaster  GeometryType = "raster"
)

// Filter represents an opaque filter expression owned by a rule.
// json.RawMessage wrapper preserves original bytes; the editing core treats
// filters as whole units and never inspects their structure.
type Filter json.RawMessage

// MarshalJSON implements json.Marshaler.
// Delegates to json.RawMessage to preserve original filter bytes unchanged.
func (f Filter) MarshalJSON() ([]byte, error) {
	if f == nil {
		return []byte("null"), nil
	}
	return json.RawMessage(f).MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
// Delegates to json.RawMessage to capture raw bytes without parsing.
func (f *Filter) UnmarshalJSON(data []byte) error {
	return (*json.RawMessage)(f).UnmarshalJSON(data)
}

// Resource limits enforced at the session boundary to keep edit operations
// and persisted snapshots bounded.
const (
	// MaxRulesPerCollection bounds collection size so every edit, which
	// copies the collection, stays cheap. 1024 rules is far beyond any
	// practical style document.
	MaxRulesPerCollection = 1024

	// MaxSymbolizersPerRule bounds the nested sequence for the same reason.
	MaxSymbolizersPerRule = 64

	// MaxPropertyKeyLength prevents unbounded symbolizer property keys.
	MaxPropertyKeyLength = 128

	// MaxNameLength bounds user-editable display labels.
	MaxNameLength = 256
)
