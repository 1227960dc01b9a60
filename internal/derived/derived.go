// Package derived computes UI-agnostic facts from rules.
//
// These helpers are pure and advisory: they never gate an edit, they only
// tell the presentation layer what to flag or disable.
package derived

import (
	"github.com/solatis/cartorule/internal/blocks"
	"github.com/solatis/cartorule/internal/types"
)

/*
 * Derived-state helpers.
 *
 * OrderWarning: some rendering engines draw labels above all other rules
 * regardless of declared order, so a text rule anywhere but first may render
 * out of its declared order. Non-blocking advisory, never a validation error.
 *
 * AttributeEligibility: classification correctness depends on attribute type
 * compatibility with the selected method. The three-way method branch below
 * is load-bearing; changing it silently breaks custom-interval editing.
 */

// Attribute describes one candidate classification attribute.
type Attribute struct {
	Name string `json:"attribute"`
	Type string `json:"type"` // number, string, boolean, date
}

// Eligibility is the per-attribute disabled flag for classification input.
type Eligibility struct {
	Attribute Attribute
	Disabled  bool
}

// OrderWarning reports whether the rule at index may render out of declared
// order. True iff the rule carries at least one text symbolizer and is not
// already first.
func OrderWarning(rule types.Rule, index int) bool {
	if index == 0 {
		return false
	}
	for _, s := range rule.Symbolizers {
		if s.Kind == blocks.KindText {
			return true
		}
	}
	return false
}

// AttributeEligibility computes the disabled flag per candidate attribute
// for a classification rule.
//
// Method branches:
//   - customInterval: attributes whose type differs from the selected
//     attribute's numeric-ness are disabled; if the selected attribute is
//     itself non-numeric, only that exact attribute stays enabled.
//   - uniqueInterval: every attribute is eligible.
//   - anything else (the numeric classification methods): non-numeric
//     attributes are disabled.
func AttributeEligibility(attrs []Attribute, rule types.Rule) []Eligibility {
	out := make([]Eligibility, len(attrs))

	switch rule.Method {
	case blocks.MethodCustomInterval:
		selected, found := findAttribute(attrs, rule.Attribute)
		selectedNumeric := found && isNumeric(selected.Type)
		for i, a := range attrs {
			if !found {
				out[i] = Eligibility{Attribute: a}
				continue
			}
			if selectedNumeric {
				out[i] = Eligibility{Attribute: a, Disabled: !isNumeric(a.Type)}
			} else {
				out[i] = Eligibility{Attribute: a, Disabled: a.Name != selected.Name}
			}
		}
	case blocks.MethodUniqueInterval:
		for i, a := range attrs {
			out[i] = Eligibility{Attribute: a}
		}
	default:
		for i, a := range attrs {
			out[i] = Eligibility{Attribute: a, Disabled: !isNumeric(a.Type)}
		}
	}
	return out
}

// ActiveRuleBlock resolves the capability block governing a rule, if any.
// A rule of unknown kind is preserved but not editable.
func ActiveRuleBlock(reg *blocks.Registry, rule types.Rule) (blocks.Block, bool) {
	return reg.ResolveRuleBlock(rule.Kind)
}

func findAttribute(attrs []Attribute, name string) (Attribute, bool) {
	for _, a := range attrs {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

func isNumeric(t string) bool {
	return t == "number"
}
