// Package session provides the intent-dispatch boundary around the edit engine.
//
// Thin orchestration layer: it owns the latest-snapshot cell, enforces the
// policies that belong at the boundary rather than in the pure engine
// (mandatory rules, resource limits) and notifies the caller after each
// dispatched intent.
package session

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/solatis/cartorule/internal/blocks"
	"github.com/solatis/cartorule/internal/edit"
	"github.com/solatis/cartorule/internal/types"
)

// Session owns one rule collection under edit.
//
// Handlers that close over a Session always see the latest snapshot because
// Dispatch reads from the cell under the mutex immediately before computing
// its transform; callers never thread a possibly-stale captured collection.
type Session struct {
	mu       sync.Mutex
	rules    []types.Rule
	registry *blocks.Registry
	geometry types.GeometryType
	logger   *zap.Logger

	// OnChange fires synchronously after every applied intent with the
	// complete new collection. OnUpdate additionally fires for field-level
	// intents, for callers that route incremental updates separately.
	//
	// Callbacks run while the session lock is held: they must not call
	// Dispatch or Snapshot on the same session, or they deadlock. The
	// collection passed to OnChange is already a copy; use it instead.
	OnChange func(rules []types.Rule)
	OnUpdate func(intent edit.Intent)
}

// Option configures a Session.
type Option func(*Session)

// WithRegistry overrides the built-in capability registry.
func WithRegistry(reg *blocks.Registry) Option {
	return func(s *Session) { s.registry = reg }
}

// WithGeometry sets the session geometry type. Defaults to unknown, which
// hides every geometry-scoped add affordance.
func WithGeometry(geom types.GeometryType) Option {
	return func(s *Session) { s.geometry = geom }
}

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// New creates a session over an initial collection.
// The initial collection is deep-copied; the caller's slice stays untouched.
func New(initial []types.Rule, opts ...Option) *Session {
	s := &Session{
		rules:    types.CloneRules(initial),
		registry: blocks.Default(),
		geometry: types.GeometryUnknown,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a deep copy of the latest collection.
func (s *Session) Snapshot() []types.Rule {
	s.mu.Lock()
	defer s.mu.Unlock()
	return types.CloneRules(s.rules)
}

// Registry returns the session's capability registry.
func (s *Session) Registry() *blocks.Registry {
	return s.registry
}

// Geometry returns the session geometry type.
func (s *Session) Geometry() types.GeometryType {
	return s.geometry
}

// Dispatch validates and applies one edit intent against the latest snapshot.
//
// Boundary policies enforced here, not in the pure engine:
//   - removing a mandatory rule fails with ErrMandatoryRule
//   - collection and symbolizer counts stay within resource limits
//
// On success the new snapshot replaces the cell and callbacks fire while the
// lock is held, so intents cannot interleave and each callback observes a
// complete snapshot.
func (s *Session) Dispatch(intent edit.Intent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validate(intent); err != nil {
		return err
	}

	next, err := edit.Apply(s.rules, intent)
	if err != nil {
		return err
	}
	s.rules = next

	s.logger.Debug("intent applied",
		zap.String("kind", string(intent.Kind)),
		zap.String("rule_id", string(intent.RuleID)),
		zap.Int("rules", len(next)))

	if s.OnChange != nil {
		s.OnChange(types.CloneRules(next))
	}
	if !intent.Structural() && s.OnUpdate != nil {
		s.OnUpdate(intent)
	}
	return nil
}

// validate applies boundary policies to an intent before it reaches the
// engine. Addressing misses stay out of scope: an intent naming an unknown
// rule validates cleanly and no-ops in the engine.
func (s *Session) validate(intent edit.Intent) error {
	switch intent.Kind {
	case edit.IntentRemoveRule:
		for _, r := range s.rules {
			if r.RuleID == intent.RuleID && r.Mandatory {
				return fmt.Errorf("remove rule %s: %w", intent.RuleID, types.ErrMandatoryRule)
			}
		}
	case edit.IntentAddRule:
		if len(s.rules) >= types.MaxRulesPerCollection {
			return types.ErrTooManyRules
		}
		if len(intent.Rule.Name) > types.MaxNameLength {
			return types.ErrNameTooLong
		}
	case edit.IntentAddSymbolizer:
		for _, r := range s.rules {
			if r.RuleID == intent.RuleID && len(r.Symbolizers) >= types.MaxSymbolizersPerRule {
				return types.ErrTooManySymbolizers
			}
		}
		for k := range intent.Symbolizer.Properties {
			if len(k) > types.MaxPropertyKeyLength {
				return types.ErrPropertyKeyTooLong
			}
		}
	}
	return nil
}

// NewRule mints a rule of the given kind, seeded with the registry block's
// default properties. Returns false when the kind has no block supporting
// the session geometry; the add affordance should have been hidden.
func (s *Session) NewRule(kind string) (types.Rule, bool) {
	block, ok := s.registry.ResolveRuleBlock(kind)
	if !ok || !block.Supports(s.geometry) {
		return types.Rule{}, false
	}
	rule := types.Rule{
		RuleID: types.NewRuleID(),
		Kind:   kind,
		Name:   "Untitled rule",
	}
	if method, ok := block.DefaultProperties["method"].(string); ok {
		rule.Method = method
	}
	return rule, true
}

// NewSymbolizer mints a symbolizer of the given kind, seeded with the
// resolved block's default properties.
func (s *Session) NewSymbolizer(kind string) (types.Symbolizer, bool) {
	block, ok := s.registry.ResolveSymbolizerBlock(kind, s.geometry)
	if !ok {
		return types.Symbolizer{}, false
	}
	props := make(map[string]any, len(block.DefaultProperties))
	for k, v := range block.DefaultProperties {
		props[k] = v
	}
	return types.Symbolizer{
		SymbolizerID: types.NewSymbolizerID(),
		Kind:         kind,
		Properties:   props,
	}, true
}
