// internal/blocks/overlay.go
package blocks

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overlay is the YAML document shape for registry customization.
// Symbolizer entries are an ordered list because resolution order is
// significant; rule entries are a plain map.
type Overlay struct {
	Symbolizers []OverlayEntry   `yaml:"symbolizers"`
	Rules       map[string]Block `yaml:"rules"`
}

// OverlayEntry pairs a registry key with its block definition.
type OverlayEntry struct {
	Key   string `yaml:"key"`
	Block Block  `yaml:"block"`
}

// LoadOverlay reads a YAML overlay file and merges it over the registry.
// Entries replace same-keyed blocks in place and append otherwise, so an
// overlay can both restrict built-in parameter sets and register extra
// kinds. Predicates (DisableAdd) cannot be expressed in YAML and survive
// only on blocks the overlay does not touch.
func LoadOverlay(r *Registry, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read registry overlay: %w", err)
	}

	var ov Overlay
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return fmt.Errorf("failed to parse registry overlay: %w", err)
	}

	for _, e := range ov.Symbolizers {
		if e.Key == "" {
			return fmt.Errorf("registry overlay: symbolizer entry missing key")
		}
		b := e.Block
		if b.Kind == "" {
			b.Kind = e.Key
		}
		r.RegisterSymbolizer(e.Key, b)
	}
	for kind, b := range ov.Rules {
		if b.Kind == "" {
			b.Kind = kind
		}
		r.RegisterRule(kind, b)
	}
	return nil
}
