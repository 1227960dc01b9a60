// internal/edit/engine_test.go
package edit

import (
	"reflect"
	"testing"

	"github.com/solatis/cartorule/internal/types"
)

func strp(s string) *string { return &s }

// collection builds rules named rule-0..rule-n-1 with matching IDs.
func collection(n int) []types.Rule {
	rules := make([]types.Rule, n)
	for i := range rules {
		rules[i] = types.Rule{
			RuleID: types.RuleID(string(rune('a' + i))),
			Name:   "rule-" + string(rune('a'+i)),
		}
	}
	return rules
}

func ids(rules []types.Rule) []types.RuleID {
	out := make([]types.RuleID, len(rules))
	for i, r := range rules {
		out[i] = r.RuleID
	}
	return out
}

func TestUpdateRuleFields(t *testing.T) {
	rules := []types.Rule{
		{RuleID: "r1", Name: "roads", Attribute: "surface"},
		{RuleID: "r2", Name: "water"},
	}

	got := UpdateRuleFields(rules, "r1", RuleFields{Name: strp("highways")})

	if got[0].Name != "highways" {
		t.Errorf("Name = %q, want highways", got[0].Name)
	}
	if got[0].Attribute != "surface" {
		t.Errorf("Attribute = %q, want surface (unsupplied fields must persist)", got[0].Attribute)
	}
	if got[0].RuleID != "r1" {
		t.Errorf("RuleID = %q, want r1", got[0].RuleID)
	}
	if !reflect.DeepEqual(got[1], rules[1]) {
		t.Errorf("untouched rule changed: %+v", got[1])
	}
	if rules[0].Name != "roads" {
		t.Errorf("input mutated: Name = %q", rules[0].Name)
	}
}

func TestUpdateRuleFields_UnknownID(t *testing.T) {
	rules := collection(3)
	got := UpdateRuleFields(rules, "missing", RuleFields{Name: strp("x")})
	if !reflect.DeepEqual(got, rules) {
		t.Errorf("unknown id must be a no-op")
	}
}

func TestUpdateRuleFields_ZeroValueOverwrite(t *testing.T) {
	rules := []types.Rule{{RuleID: "r1", Name: "roads", Mandatory: true}}
	f := false
	got := UpdateRuleFields(rules, "r1", RuleFields{Mandatory: &f})
	if got[0].Mandatory {
		t.Errorf("supplied false must overwrite true")
	}
}

func TestUpdateSymbolizerFields(t *testing.T) {
	rules := []types.Rule{
		{RuleID: "r1", Symbolizers: []types.Symbolizer{
			{SymbolizerID: "s1", Kind: "Fill", Properties: map[string]any{"color": "#000000", "fillOpacity": 0.5}},
			{SymbolizerID: "s2", Kind: "Line"},
		}},
		{RuleID: "r2"},
	}

	got := UpdateSymbolizerFields(rules, "r1", "s1", SymbolizerFields{
		Properties: map[string]any{"color": "#ff0000"},
	})

	props := got[0].Symbolizers[0].Properties
	if props["color"] != "#ff0000" {
		t.Errorf("color = %v, want #ff0000", props["color"])
	}
	if props["fillOpacity"] != 0.5 {
		t.Errorf("fillOpacity = %v, want 0.5 (merge must preserve other keys)", props["fillOpacity"])
	}
	if rules[0].Symbolizers[0].Properties["color"] != "#000000" {
		t.Errorf("input symbolizer mutated")
	}
	if !reflect.DeepEqual(got[0].Symbolizers[1], rules[0].Symbolizers[1]) {
		t.Errorf("sibling symbolizer changed")
	}
}

func TestUpdateSymbolizerFields_NoSymbolizers(t *testing.T) {
	rules := []types.Rule{{RuleID: "r1", Kind: "Classification"}}
	got := UpdateSymbolizerFields(rules, "r1", "s1", SymbolizerFields{Kind: strp("Mark")})
	if !reflect.DeepEqual(got, rules) {
		t.Errorf("rule without symbolizers must pass through")
	}
}

func TestUpdateSymbolizerFields_DeleteKey(t *testing.T) {
	rules := []types.Rule{
		{RuleID: "r1", Symbolizers: []types.Symbolizer{
			{SymbolizerID: "s1", Kind: "Line", Properties: map[string]any{"dasharray": "2 2"}},
		}},
	}
	got := UpdateSymbolizerFields(rules, "r1", "s1", SymbolizerFields{
		Properties: map[string]any{"dasharray": nil},
	})
	if got[0].Symbolizers[0].Properties != nil {
		t.Errorf("nil value must delete the key, got %v", got[0].Symbolizers[0].Properties)
	}
}

func TestAddRule_Prepends(t *testing.T) {
	rules := collection(2)
	got := AddRule(rules, types.Rule{RuleID: "new", Name: "newest"})

	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].RuleID != "new" {
		t.Errorf("new rule must be first, got %v", ids(got))
	}
	if got[1].RuleID != rules[0].RuleID || got[2].RuleID != rules[1].RuleID {
		t.Errorf("existing order changed: %v", ids(got))
	}
}

func TestRemoveRule(t *testing.T) {
	rules := collection(3)
	got := RemoveRule(rules, rules[1].RuleID)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].RuleID != rules[0].RuleID || got[1].RuleID != rules[2].RuleID {
		t.Errorf("order after removal = %v", ids(got))
	}
}

func TestRemoveRule_UnknownID(t *testing.T) {
	rules := collection(3)
	got := RemoveRule(rules, "missing")
	if !reflect.DeepEqual(got, rules) {
		t.Errorf("unknown id must be a no-op")
	}
}

func TestReplaceRule_PreservesIDAndPosition(t *testing.T) {
	rules := collection(3)
	target := rules[1].RuleID

	got := ReplaceRule(rules, target, types.Rule{
		RuleID: "ignored",
		Kind:   "Classification",
		Name:   "population",
		Method: "jenks",
	})

	if got[1].RuleID != target {
		t.Errorf("RuleID = %q, want %q (identity must survive replacement)", got[1].RuleID, target)
	}
	if got[1].Kind != "Classification" || got[1].Method != "jenks" {
		t.Errorf("replacement fields not applied: %+v", got[1])
	}
	if got[0].RuleID != rules[0].RuleID || got[2].RuleID != rules[2].RuleID {
		t.Errorf("positions changed: %v", ids(got))
	}
}

func TestReorderRules(t *testing.T) {
	tests := []struct {
		name string
		from int
		to   int
		want string
	}{
		{"downward inserts after target", 0, 2, "bcad"},
		{"upward inserts before target", 3, 1, "adbc"},
		{"adjacent swap down", 1, 2, "acbd"},
		{"adjacent swap up", 2, 1, "acbd"},
		{"to front", 3, 0, "dabc"},
		{"to back", 0, 3, "bcda"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := collection(4) // ids a b c d
			got := ReorderRules(rules, tt.from, tt.to)

			var order string
			for _, r := range got {
				order += string(r.RuleID)
			}
			if order != tt.want {
				t.Errorf("ReorderRules(%d, %d) = %s, want %s", tt.from, tt.to, order, tt.want)
			}
		})
	}
}

func TestReorderRules_SamePosition(t *testing.T) {
	rules := collection(4)
	got := ReorderRules(rules, 2, 2)
	if !reflect.DeepEqual(got, rules) {
		t.Errorf("from == to must be a no-op")
	}
}

func TestReorderRules_OutOfRange(t *testing.T) {
	rules := collection(3)
	for _, pair := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		got := ReorderRules(rules, pair[0], pair[1])
		if !reflect.DeepEqual(got, rules) {
			t.Errorf("ReorderRules(%d, %d) must be a no-op", pair[0], pair[1])
		}
	}
}

func TestAddRemoveSymbolizer(t *testing.T) {
	rules := []types.Rule{{RuleID: "r1"}}

	withSym := AddSymbolizer(rules, "r1", types.Symbolizer{SymbolizerID: "s1", Kind: "Mark"})
	if len(withSym[0].Symbolizers) != 1 {
		t.Fatalf("symbolizer not added")
	}
	if len(rules[0].Symbolizers) != 0 {
		t.Errorf("input mutated")
	}

	without := RemoveSymbolizer(withSym, "r1", "s1")
	if without[0].Symbolizers != nil {
		t.Errorf("symbolizer not removed: %+v", without[0].Symbolizers)
	}
}

func TestApply_UnknownIntent(t *testing.T) {
	rules := collection(2)
	got, err := Apply(rules, Intent{Kind: "no_such_intent"})
	if err != types.ErrUnknownIntent {
		t.Errorf("err = %v, want ErrUnknownIntent", err)
	}
	if !reflect.DeepEqual(got, rules) {
		t.Errorf("collection must be unchanged on unknown intent")
	}
}

func TestApply_DispatchesAllKinds(t *testing.T) {
	rules := []types.Rule{
		{RuleID: "r1", Name: "one", Symbolizers: []types.Symbolizer{{SymbolizerID: "s1", Kind: "Fill"}}},
		{RuleID: "r2", Name: "two"},
	}

	tests := []struct {
		name   string
		intent Intent
		check  func(t *testing.T, got []types.Rule)
	}{
		{
			name:   "update rule fields",
			intent: Intent{Kind: IntentUpdateRuleFields, RuleID: "r2", RuleFields: RuleFields{Name: strp("renamed")}},
			check: func(t *testing.T, got []types.Rule) {
				if got[1].Name != "renamed" {
					t.Errorf("Name = %q", got[1].Name)
				}
			},
		},
		{
			name: "update symbolizer fields",
			intent: Intent{
				Kind: IntentUpdateSymbolizerFields, RuleID: "r1", SymbolizerID: "s1",
				SymbolizerFields: SymbolizerFields{Properties: map[string]any{"color": "#fff"}},
			},
			check: func(t *testing.T, got []types.Rule) {
				if got[0].Symbolizers[0].Properties["color"] != "#fff" {
					t.Errorf("property not merged")
				}
			},
		},
		{
			name:   "add rule",
			intent: Intent{Kind: IntentAddRule, Rule: types.Rule{RuleID: "r3"}},
			check: func(t *testing.T, got []types.Rule) {
				if len(got) != 3 || got[0].RuleID != "r3" {
					t.Errorf("rule not prepended: %v", ids(got))
				}
			},
		},
		{
			name:   "remove rule",
			intent: Intent{Kind: IntentRemoveRule, RuleID: "r1"},
			check: func(t *testing.T, got []types.Rule) {
				if len(got) != 1 || got[0].RuleID != "r2" {
					t.Errorf("rule not removed: %v", ids(got))
				}
			},
		},
		{
			name:   "replace rule",
			intent: Intent{Kind: IntentReplaceRule, RuleID: "r1", Rule: types.Rule{Kind: "RasterLayer"}},
			check: func(t *testing.T, got []types.Rule) {
				if got[0].RuleID != "r1" || got[0].Kind != "RasterLayer" {
					t.Errorf("replace failed: %+v", got[0])
				}
			},
		},
		{
			name:   "reorder rules",
			intent: Intent{Kind: IntentReorderRules, From: 0, To: 1},
			check: func(t *testing.T, got []types.Rule) {
				if got[0].RuleID != "r2" || got[1].RuleID != "r1" {
					t.Errorf("reorder failed: %v", ids(got))
				}
			},
		},
		{
			name:   "add symbolizer",
			intent: Intent{Kind: IntentAddSymbolizer, RuleID: "r2", Symbolizer: types.Symbolizer{SymbolizerID: "s2", Kind: "Line"}},
			check: func(t *testing.T, got []types.Rule) {
				if len(got[1].Symbolizers) != 1 {
					t.Errorf("symbolizer not added")
				}
			},
		},
		{
			name:   "remove symbolizer",
			intent: Intent{Kind: IntentRemoveSymbolizer, RuleID: "r1", SymbolizerID: "s1"},
			check: func(t *testing.T, got []types.Rule) {
				if len(got[0].Symbolizers) != 0 {
					t.Errorf("symbolizer not removed")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(rules, tt.intent)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			tt.check(t, got)
		})
	}
}
