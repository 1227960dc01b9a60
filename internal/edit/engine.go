// internal/edit/engine.go
package edit

import (
	"github.com/solatis/cartorule/internal/types"
)

/*
 * Rule collection edit engine.
 *
 * Implements the identifier-addressed transforms over an ordered rule
 * collection: field update (rule and symbolizer), add, remove, replace and
 * position-addressed reorder. All functions are total: they accept any
 * collection and any identifier and return a complete new collection.
 *
 * Addressing policy: unknown identifiers are silent no-ops, never errors.
 * The collection visible to a UI can drift from the one an intent was minted
 * against (external reload between render and dispatch); treating a miss as
 * benign preserves data integrity without surfacing spurious failures.
 *
 * Immutability: inputs are never mutated. Touched rules are cloned before
 * modification; untouched rules share structure with the input slice. Each
 * dispatched intent therefore yields an independent snapshot.
 *
 * Why function-based: the five operations are plain slice transforms with
 * minimal behavior variation; a method set over a collection type would add
 * state without adding meaning.
 */

// UpdateRuleFields merges fields into the rule addressed by ruleID.
// Shallow defined-field merge: only non-nil members of fields overwrite;
// everything else on the rule persists. Order is preserved. Returns the input
// unchanged (same backing array) when no rule matches.
func UpdateRuleFields(rules []types.Rule, ruleID types.RuleID, fields RuleFields) []types.Rule {
	idx := indexOf(rules, ruleID)
	if idx < 0 {
		return rules
	}
	out := snapshot(rules)
	updated := rules[idx].Clone()
	fields.applyTo(&updated)
	out[idx] = updated
	return out
}

// UpdateSymbolizerFields merges fields into one symbolizer nested in the rule
// addressed by ruleID. Rules lacking a symbolizer sequence, and sequences
// lacking the symbolizer, pass through untouched.
func UpdateSymbolizerFields(rules []types.Rule, ruleID types.RuleID, symbolizerID types.SymbolizerID, fields SymbolizerFields) []types.Rule {
	idx := indexOf(rules, ruleID)
	if idx < 0 {
		return rules
	}
	sidx := -1
	for i, s := range rules[idx].Symbolizers {
		if s.SymbolizerID == symbolizerID {
			sidx = i
			break
		}
	}
	if sidx < 0 {
		return rules
	}
	out := snapshot(rules)
	updated := rules[idx].Clone()
	fields.applyTo(&updated.Symbolizers[sidx])
	out[idx] = updated
	return out
}

// AddRule prepends a fully-formed rule to the collection.
// The caller mints the identifier and seeds defaults from the resolved
// capability block. Prepending keeps the most recently added rule most
// visible.
func AddRule(rules []types.Rule, rule types.Rule) []types.Rule {
	out := make([]types.Rule, 0, len(rules)+1)
	out = append(out, rule.Clone())
	out = append(out, rules...)
	return out
}

// RemoveRule filters out the rule addressed by ruleID.
// Mandatory rules are enforced at the dispatch boundary, not here: the engine
// removes whatever it is asked to remove.
func RemoveRule(rules []types.Rule, ruleID types.RuleID) []types.Rule {
	idx := indexOf(rules, ruleID)
	if idx < 0 {
		return rules
	}
	out := make([]types.Rule, 0, len(rules)-1)
	out = append(out, rules[:idx]...)
	out = append(out, rules[idx+1:]...)
	return out
}

// ReplaceRule swaps the entire field set of the rule addressed by ruleID,
// preserving only the identifier and the rule's position. This is how a
// rule's kind changes while in-flight references stay valid.
func ReplaceRule(rules []types.Rule, ruleID types.RuleID, replacement types.Rule) []types.Rule {
	idx := indexOf(rules, ruleID)
	if idx < 0 {
		return rules
	}
	out := snapshot(rules)
	next := replacement.Clone()
	next.RuleID = ruleID
	out[idx] = next
	return out
}

// ReorderRules moves the element at from adjacent to the element at to.
// Moving downward (from < to) inserts after the target; moving upward
// (from > to) inserts before it, mirroring drag-and-drop "insert at drop
// point" semantics. Indices out of range, and from == to, are no-ops.
func ReorderRules(rules []types.Rule, from, to int) []types.Rule {
	if from == to || from < 0 || to < 0 || from >= len(rules) || to >= len(rules) {
		return rules
	}
	moved := rules[from]
	rest := make([]types.Rule, 0, len(rules)-1)
	rest = append(rest, rules[:from]...)
	rest = append(rest, rules[from+1:]...)

	// Downward moves target an element that shifted left by one after the
	// removal, so "insert after" and the upward "insert before" both land at
	// index to.
	out := make([]types.Rule, 0, len(rules))
	out = append(out, rest[:to]...)
	out = append(out, moved)
	out = append(out, rest[to:]...)
	return out
}

// AddSymbolizer appends a symbolizer to the rule addressed by ruleID.
// The caller mints the identifier and seeds block defaults, as with AddRule.
func AddSymbolizer(rules []types.Rule, ruleID types.RuleID, sym types.Symbolizer) []types.Rule {
	idx := indexOf(rules, ruleID)
	if idx < 0 {
		return rules
	}
	out := snapshot(rules)
	updated := rules[idx].Clone()
	updated.Symbolizers = append(updated.Symbolizers, sym.Clone())
	out[idx] = updated
	return out
}

// RemoveSymbolizer filters one symbolizer out of the rule addressed by ruleID.
func RemoveSymbolizer(rules []types.Rule, ruleID types.RuleID, symbolizerID types.SymbolizerID) []types.Rule {
	idx := indexOf(rules, ruleID)
	if idx < 0 {
		return rules
	}
	sidx := -1
	for i, s := range rules[idx].Symbolizers {
		if s.SymbolizerID == symbolizerID {
			sidx = i
			break
		}
	}
	if sidx < 0 {
		return rules
	}
	out := snapshot(rules)
	updated := rules[idx].Clone()
	updated.Symbolizers = append(updated.Symbolizers[:sidx], updated.Symbolizers[sidx+1:]...)
	if len(updated.Symbolizers) == 0 {
		updated.Symbolizers = nil
	}
	out[idx] = updated
	return out
}

// indexOf returns the position of ruleID in rules, or -1.
func indexOf(rules []types.Rule, ruleID types.RuleID) int {
	for i, r := range rules {
		if r.RuleID == ruleID {
			return i
		}
	}
	return -1
}

// snapshot copies the top-level slice so element assignment cannot alias the
// caller's collection. Elements are shared until individually cloned.
func snapshot(rules []types.Rule) []types.Rule {
	out := make([]types.Rule, len(rules))
	copy(out, rules)
	return out
}
