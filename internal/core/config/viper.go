package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/solatis/cartorule/internal/types"
)

// LoadConfig loads configuration from file using viper.
// CLI flags > environment > config file > defaults precedence.
func LoadConfig(configPath string) (*EditorConfig, error) {
	v := viper.New()

	def := DefaultEditorConfig()

	// Set defaults matching DefaultEditorConfig
	v.SetDefault("editor.geometry_type", string(def.GeometryType))
	v.SetDefault("editor.scale_presets", def.ScalePresets)
	v.SetDefault("editor.fonts", def.Fonts)
	v.SetDefault("editor.dash_patterns", def.DashPatterns)
	v.SetDefault("editor.symbol_library_path", "")
	v.SetDefault("editor.registry_overlay", "")
	v.SetDefault("editor.simplified", false)
	v.SetDefault("editor.classification.methods", def.Classification.Methods)
	v.SetDefault("editor.classification.max_classes", def.Classification.MaxClasses)
	v.SetDefault("editor.classification.default_method", def.Classification.DefaultMethod)
	v.SetDefault("editor.database_url", def.DatabaseURL)

	// Bind environment variables with CARTO_ prefix
	v.SetEnvPrefix("CARTO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Load config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &EditorConfig{
		GeometryType:      types.GeometryType(v.GetString("editor.geometry_type")),
		Bands:             v.GetStringSlice("editor.bands"),
		ScalePresets:      floatSlice(v, "editor.scale_presets"),
		Fonts:             v.GetStringSlice("editor.fonts"),
		DashPatterns:      v.GetStringSlice("editor.dash_patterns"),
		SymbolLibraryPath: v.GetString("editor.symbol_library_path"),
		RegistryOverlay:   v.GetString("editor.registry_overlay"),
		Simplified:        v.GetBool("editor.simplified"),
		Classification: ClassificationConfig{
			Methods:       v.GetStringSlice("editor.classification.methods"),
			MaxClasses:    v.GetInt("editor.classification.max_classes"),
			DefaultMethod: v.GetString("editor.classification.default_method"),
		},
		DatabaseURL: v.GetString("editor.database_url"),
	}

	// Attributes are name/type pairs; viper exposes them as a slice of maps.
	var attrs []AttributeConfig
	if err := v.UnmarshalKey("editor.attributes", &attrs); err != nil {
		return nil, fmt.Errorf("failed to parse attributes: %w", err)
	}
	cfg.Attributes = attrs

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// floatSlice reads a key as []float64; GetStringSlice-style helper viper lacks.
func floatSlice(v *viper.Viper, key string) []float64 {
	raw := v.Get(key)
	switch vals := raw.(type) {
	case []float64:
		return vals
	case []any:
		out := make([]float64, 0, len(vals))
		for _, x := range vals {
			switch n := x.(type) {
			case float64:
				out = append(out, n)
			case int:
				out = append(out, float64(n))
			}
		}
		return out
	default:
		return nil
	}
}
