// internal/types/rules.go
package types

/*
 * Domain types for style rule editing.
 *
 * Provides Rule, Symbolizer and ScaleDenominator structures used by
 * internal/edit for collection transforms and by internal/blocks for
 * capability resolution. These types are wire-format agnostic; the snapshot
 * store serializes them as JSON documents but attaches no meaning to the
 * encoding.
 *
 * Key types:
 *   - Rule: One style rule with filter, scale bounds and symbolizer sequence
 *   - Symbolizer: One visual rendering instruction nested inside a rule
 *   - ScaleDenominator: Optional min/max scale bounds owned by the rule
 *
 * Dependencies: None (zero external dependencies, encoding/json only)
 */

// ScaleDenominator holds optional scale bounds for a rule.
// Nil pointer means the bound is unset; zero is a valid bound value.
type ScaleDenominator struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Symbolizer represents one visual rendering instruction nested in a rule.
// Kind selects its capability block (point, line, polygon, text, raster
// channel rendering). Properties is a free-form bag whose valid keys are
// determined by the resolved block's parameter list.
type Symbolizer struct {
	SymbolizerID SymbolizerID   `json:"symbolizerId"`
	Kind         string         `json:"kind"`
	Properties   map[string]any `json:"properties,omitempty"`
}

// Rule represents one style rule in a collection.
// Kind discriminates which capability block governs it; empty means a plain
// rule with a symbolizer sequence. Kind-specific fields (Attribute, Method)
// are stored flat on the rule; anything else kind-specific lands in Extra.
type Rule struct {
	RuleID           RuleID            `json:"ruleId"`
	Kind             string            `json:"kind,omitempty"`
	Name             string            `json:"name"`
	Filter           Filter            `json:"filter,omitempty"`
	ScaleDenominator *ScaleDenominator `json:"scaleDenominator,omitempty"`
	Symbolizers      []Symbolizer      `json:"symbolizers,omitempty"`
	Mandatory        bool              `json:"mandatory,omitempty"`
	Attribute        string            `json:"attribute,omitempty"`
	Method           string            `json:"method,omitempty"`
	Extra            map[string]any    `json:"extra,omitempty"`
}

// Clone returns a deep copy of the symbolizer.
// Properties are copied one level deep; nested values are shared, which is
// safe because edits replace property values wholesale rather than mutating
// them in place.
func (s Symbolizer) Clone() Symbolizer {
	out := s
	if s.Properties != nil {
		out.Properties = make(map[string]any, len(s.Properties))
		for k, v := range s.Properties {
			out.Properties[k] = v
		}
	}
	return out
}

// Clone returns a deep copy of the rule.
// Every edit yields a new rule value; Clone is how the engine guarantees the
// caller's previous snapshot is never mutated in place.
func (r Rule) Clone() Rule {
	out := r
	if r.Filter != nil {
		out.Filter = append(Filter(nil), r.Filter...)
	}
	if r.ScaleDenominator != nil {
		sd := *r.ScaleDenominator
		if r.ScaleDenominator.Min != nil {
			min := *r.ScaleDenominator.Min
			sd.Min = &min
		}
		if r.ScaleDenominator.Max != nil {
			max := *r.ScaleDenominator.Max
			sd.Max = &max
		}
		out.ScaleDenominator = &sd
	}
	if r.Symbolizers != nil {
		out.Symbolizers = make([]Symbolizer, len(r.Symbolizers))
		for i, s := range r.Symbolizers {
			out.Symbolizers[i] = s.Clone()
		}
	}
	if r.Extra != nil {
		out.Extra = make(map[string]any, len(r.Extra))
		for k, v := range r.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

// CloneRules returns a deep copy of a rule collection.
func CloneRules(rules []Rule) []Rule {
	if rules == nil {
		return nil
	}
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = r.Clone()
	}
	return out
}
