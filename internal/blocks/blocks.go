// Package blocks provides the capability-block registry and resolver.
//
// A capability block is a configuration record describing which geometry
// types, parameters and affordances apply to a rule or symbolizer kind. The
// registry is supplied once per session and never mutated by the editing
// core; resolution is a pure function of (registry, geometry type, kind).
package blocks

import (
	"github.com/solatis/cartorule/internal/types"
)

// ParamSpec describes one editable parameter of a block.
// The presentation layer renders a widget per spec; the editing core only
// uses Name and Default when seeding new entities.
type ParamSpec struct {
	Name    string   `yaml:"name"`
	Type    string   `yaml:"type"` // color, number, text, bool, select
	Default any      `yaml:"default,omitempty"`
	Options []string `yaml:"options,omitempty"` // for select
}

// Block is one capability record.
// Kind is the discriminator the block serves; the registry key it sits under
// may differ when several geometry-scoped variants declare the same kind.
type Block struct {
	Kind              string               `yaml:"kind"`
	SupportedTypes    []types.GeometryType `yaml:"supportedTypes"`
	DefaultProperties map[string]any       `yaml:"defaultProperties,omitempty"`
	Params            []ParamSpec          `yaml:"params,omitempty"`
	Icon              string               `yaml:"icon,omitempty"`
	TitleKey          string               `yaml:"titleKey,omitempty"`

	// Add gates whether the kind is offered for adding at all. DisableAdd,
	// when non-nil, suppresses the affordance based on current state (e.g. a
	// second raster rule). Predicates are never serialized.
	Add        bool                          `yaml:"add"`
	DisableAdd func(rules []types.Rule) bool `yaml:"-"`
}

// Supports reports whether the block applies to the given geometry type.
func (b Block) Supports(geom types.GeometryType) bool {
	for _, t := range b.SupportedTypes {
		if t == geom {
			return true
		}
	}
	return false
}

// symbolizerEntry preserves registration order, which the resolver's first
// stage depends on.
type symbolizerEntry struct {
	key   string
	block Block
}

// Registry holds the capability blocks for one editing session.
type Registry struct {
	symbolizers []symbolizerEntry
	rules       map[string]Block
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Block)}
}

// RegisterSymbolizer adds or replaces a symbolizer block under key.
// Re-registering an existing key updates it in place, keeping its position.
func (r *Registry) RegisterSymbolizer(key string, b Block) {
	for i, e := range r.symbolizers {
		if e.key == key {
			r.symbolizers[i].block = b
			return
		}
	}
	r.symbolizers = append(r.symbolizers, symbolizerEntry{key: key, block: b})
}

// RegisterRule adds or replaces a rule block under its kind.
// Rule kinds are unique per registry, so a plain map suffices.
func (r *Registry) RegisterRule(kind string, b Block) {
	r.rules[kind] = b
}

// SymbolizerKeys returns registered symbolizer keys in registration order.
func (r *Registry) SymbolizerKeys() []string {
	keys := make([]string, len(r.symbolizers))
	for i, e := range r.symbolizers {
		keys[i] = e.key
	}
	return keys
}

// ResolveSymbolizerBlock selects the capability block for a symbolizer kind
// under the given geometry type.
//
// Two-stage fallback: first the registration-ordered scan for a block whose
// SupportedTypes contains geom and whose declared Kind equals kind (this is
// how geometry-specific variants of the same kind win); then a direct lookup
// of a block registered under the kind itself. The zero Block with false is
// the explicit not-found sentinel, so callers can distinguish "no capability"
// from "capability with no parameters" and treat the symbolizer as
// unrenderable rather than failing.
func (r *Registry) ResolveSymbolizerBlock(kind string, geom types.GeometryType) (Block, bool) {
	for _, e := range r.symbolizers {
		if e.block.Kind == kind && e.block.Supports(geom) {
			return e.block, true
		}
	}
	for _, e := range r.symbolizers {
		if e.key == kind {
			return e.block, true
		}
	}
	return Block{}, false
}

// ResolveRuleBlock selects the capability block for a rule kind.
// Direct key lookup; rule kinds carry no geometry ambiguity.
func (r *Registry) ResolveRuleBlock(kind string) (Block, bool) {
	b, ok := r.rules[kind]
	return b, ok
}

// AddableSymbolizers returns the symbolizer keys whose block supports geom
// and whose add affordance is currently available. An incompatible geometry
// hides the kind instead of producing a runtime error.
func (r *Registry) AddableSymbolizers(geom types.GeometryType, rules []types.Rule) []string {
	var keys []string
	for _, e := range r.symbolizers {
		if !e.block.Add || !e.block.Supports(geom) {
			continue
		}
		if e.block.DisableAdd != nil && e.block.DisableAdd(rules) {
			continue
		}
		keys = append(keys, e.key)
	}
	return keys
}

// AddableRules returns the rule kinds currently offered for adding.
func (r *Registry) AddableRules(geom types.GeometryType, rules []types.Rule) []string {
	var kinds []string
	for kind, b := range r.rules {
		if !b.Add || !b.Supports(geom) {
			continue
		}
		if b.DisableAdd != nil && b.DisableAdd(rules) {
			continue
		}
		kinds = append(kinds, kind)
	}
	return kinds
}
