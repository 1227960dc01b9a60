// internal/edit/intent.go
package edit

import (
	"github.com/solatis/cartorule/internal/types"
)

/*
 * Edit intent representation and dispatch.
 *
 * An Intent is one discrete edit request against the rule collection. The
 * session boundary, the CLI and the store all handle intents as values, so
 * they can be logged, serialized and replayed; the dispatcher maps each
 * intent onto the corresponding engine transform.
 *
 * Structural vs field-level: AddRule, RemoveRule, ReplaceRule, ReorderRules,
 * AddSymbolizer and RemoveSymbolizer are structural; UpdateRuleFields and
 * UpdateSymbolizerFields are field-level. The session uses the distinction
 * to route OnChange vs OnUpdate notifications.
 */

// IntentKind discriminates edit intents.
type IntentKind string

const (
	IntentUpdateRuleFields       IntentKind = "update_rule_fields"
	IntentUpdateSymbolizerFields IntentKind = "update_symbolizer_fields"
	IntentAddRule                IntentKind = "add_rule"
	IntentRemoveRule             IntentKind = "remove_rule"
	IntentReplaceRule            IntentKind = "replace_rule"
	IntentReorderRules           IntentKind = "reorder_rules"
	IntentAddSymbolizer          IntentKind = "add_symbolizer"
	IntentRemoveSymbolizer       IntentKind = "remove_symbolizer"
)

// Intent represents one discrete edit request.
// Only the members relevant to Kind are read; the rest stay zero.
type Intent struct {
	Kind IntentKind

	RuleID       types.RuleID
	SymbolizerID types.SymbolizerID

	RuleFields       RuleFields
	SymbolizerFields SymbolizerFields

	Rule       types.Rule
	Symbolizer types.Symbolizer

	From int
	To   int
}

// Structural reports whether the intent changes collection structure rather
// than individual fields.
func (in Intent) Structural() bool {
	switch in.Kind {
	case IntentUpdateRuleFields, IntentUpdateSymbolizerFields:
		return false
	default:
		return true
	}
}

// Apply dispatches an intent onto the engine transform it names.
// Returns ErrUnknownIntent for unrecognized kinds; all recognized kinds
// succeed unconditionally per the silent no-op addressing policy.
func Apply(rules []types.Rule, in Intent) ([]types.Rule, error) {
	switch in.Kind {
	case IntentUpdateRuleFields:
		return UpdateRuleFields(rules, in.RuleID, in.RuleFields), nil
	case IntentUpdateSymbolizerFields:
		return UpdateSymbolizerFields(rules, in.RuleID, in.SymbolizerID, in.SymbolizerFields), nil
	case IntentAddRule:
		return AddRule(rules, in.Rule), nil
	case IntentRemoveRule:
		return RemoveRule(rules, in.RuleID), nil
	case IntentReplaceRule:
		return ReplaceRule(rules, in.RuleID, in.Rule), nil
	case IntentReorderRules:
		return ReorderRules(rules, in.From, in.To), nil
	case IntentAddSymbolizer:
		return AddSymbolizer(rules, in.RuleID, in.Symbolizer), nil
	case IntentRemoveSymbolizer:
		return RemoveSymbolizer(rules, in.RuleID, in.SymbolizerID), nil
	default:
		return rules, types.ErrUnknownIntent
	}
}
