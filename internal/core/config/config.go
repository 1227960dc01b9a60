// Package config provides configuration management for the cartorule editor host.
package config

import (
	"fmt"

	"github.com/solatis/cartorule/internal/types"
)

// AttributeConfig describes one candidate classification attribute made
// available to the editor.
type AttributeConfig struct {
	Name string
	Type string // number, string, boolean, date
}

// ClassificationConfig holds the classification sub-configuration.
type ClassificationConfig struct {
	Methods       []string
	MaxClasses    int
	DefaultMethod string
}

// EditorConfig holds the host configuration handed to an editing session.
type EditorConfig struct {
	GeometryType      types.GeometryType
	Attributes        []AttributeConfig
	Bands             []string
	ScalePresets      []float64
	Fonts             []string
	DashPatterns      []string
	SymbolLibraryPath string
	RegistryOverlay   string
	Simplified        bool
	Classification    ClassificationConfig
	DatabaseURL       string
}

// DefaultEditorConfig returns configuration with default values.
func DefaultEditorConfig() *EditorConfig {
	return &EditorConfig{
		GeometryType: types.GeometryUnknown,
		ScalePresets: []float64{1000, 10000, 50000, 100000, 500000, 1000000},
		Fonts:        []string{"Arial", "Verdana", "Times New Roman"},
		DashPatterns: []string{"2 2", "4 2", "8 4", "1 4"},
		Classification: ClassificationConfig{
			Methods: []string{
				"equalInterval", "quantile", "jenks",
				"uniqueInterval", "customInterval",
			},
			MaxClasses:    32,
			DefaultMethod: "equalInterval",
		},
		DatabaseURL: "sqlite://cartorule.db",
	}
}

// validateConfig checks geometry tags, attribute shapes and classification bounds.
func validateConfig(cfg *EditorConfig) error {
	switch cfg.GeometryType {
	case types.GeometryUnknown, types.GeometryPoint, types.GeometryLine,
		types.GeometryPolygon, types.GeometryRaster:
	default:
		return fmt.Errorf("unknown geometry type %q", cfg.GeometryType)
	}
	for _, a := range cfg.Attributes {
		if a.Name == "" {
			return fmt.Errorf("attribute with empty name")
		}
	}
	if cfg.Classification.MaxClasses <= 0 {
		return fmt.Errorf("classification max_classes must be positive, got %d", cfg.Classification.MaxClasses)
	}
	if len(cfg.Classification.Methods) == 0 {
		return fmt.Errorf("classification methods must not be empty")
	}
	found := false
	for _, m := range cfg.Classification.Methods {
		if m == cfg.Classification.DefaultMethod {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("classification default method %q not in methods list", cfg.Classification.DefaultMethod)
	}
	return nil
}
