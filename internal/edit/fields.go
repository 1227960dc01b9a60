package edit

import (
	"github.com/solatis/cartorule/internal/types"
)

// RuleFields is a partial rule record for field-level updates.
// Pointer members distinguish "not supplied" (nil, field persists) from
// "supplied" (non-nil, field overwritten), including overwrites to zero
// values. Extra merges key by key; a key mapped to nil deletes it.
type RuleFields struct {
	Kind             *string
	Name             *string
	Filter           *types.Filter
	ScaleDenominator **types.ScaleDenominator
	Symbolizers      *[]types.Symbolizer
	Mandatory        *bool
	Attribute        *string
	Method           *string
	Extra            map[string]any
}

// applyTo merges the defined fields into r.
// Shallow merge: supplied members overwrite, the rest persist. RuleID is not
// part of RuleFields and can never change through an update.
func (f RuleFields) applyTo(r *types.Rule) {
	if f.Kind != nil {
		r.Kind = *f.Kind
	}
	if f.Name != nil {
		r.Name = *f.Name
	}
	if f.Filter != nil {
		r.Filter = append(types.Filter(nil), *f.Filter...)
	}
	if f.ScaleDenominator != nil {
		r.ScaleDenominator = cloneScale(*f.ScaleDenominator)
	}
	if f.Symbolizers != nil {
		syms := make([]types.Symbolizer, len(*f.Symbolizers))
		for i, s := range *f.Symbolizers {
			syms[i] = s.Clone()
		}
		r.Symbolizers = syms
	}
	if f.Mandatory != nil {
		r.Mandatory = *f.Mandatory
	}
	if f.Attribute != nil {
		r.Attribute = *f.Attribute
	}
	if f.Method != nil {
		r.Method = *f.Method
	}
	if len(f.Extra) > 0 {
		if r.Extra == nil {
			r.Extra = make(map[string]any, len(f.Extra))
		}
		for k, v := range f.Extra {
			if v == nil {
				delete(r.Extra, k)
				continue
			}
			r.Extra[k] = v
		}
		if len(r.Extra) == 0 {
			r.Extra = nil
		}
	}
}

// SymbolizerFields is a partial symbolizer record for field-level updates.
// Kind changes go through ReplaceRule-style replacement in practice, but the
// member exists for completeness. Properties merge key by key; a key mapped
// to nil deletes it.
type SymbolizerFields struct {
	Kind       *string
	Properties map[string]any
}

// applyTo merges the defined fields into s. SymbolizerID never changes.
func (f SymbolizerFields) applyTo(s *types.Symbolizer) {
	if f.Kind != nil {
		s.Kind = *f.Kind
	}
	if len(f.Properties) > 0 {
		if s.Properties == nil {
			s.Properties = make(map[string]any, len(f.Properties))
		}
		for k, v := range f.Properties {
			if v == nil {
				delete(s.Properties, k)
				continue
			}
			s.Properties[k] = v
		}
		if len(s.Properties) == 0 {
			s.Properties = nil
		}
	}
}

func cloneScale(sd *types.ScaleDenominator) *types.ScaleDenominator {
	if sd == nil {
		return nil
	}
	out := *sd
	if sd.Min != nil {
		min := *sd.Min
		out.Min = &min
	}
	if sd.Max != nil {
		max := *sd.Max
		out.Max = &max
	}
	return &out
}
