package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/solatis/cartorule/internal/types"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.GeometryType != types.GeometryUnknown {
		t.Errorf("GeometryType = %q, want unknown", cfg.GeometryType)
	}
	if len(cfg.ScalePresets) == 0 {
		t.Errorf("expected default scale presets")
	}
	if cfg.Classification.DefaultMethod != "equalInterval" {
		t.Errorf("DefaultMethod = %q, want equalInterval", cfg.Classification.DefaultMethod)
	}
	if cfg.DatabaseURL == "" {
		t.Errorf("expected default database URL")
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	content := `editor:
  geometry_type: polygon
  simplified: true
  symbol_library_path: /srv/symbols
  attributes:
    - name: pop
      type: number
    - name: label
      type: string
  classification:
    methods: [jenks, customInterval]
    max_classes: 9
    default_method: jenks
  database_url: sqlite://test.db
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.GeometryType != types.GeometryPolygon {
		t.Errorf("GeometryType = %q, want polygon", cfg.GeometryType)
	}
	if !cfg.Simplified {
		t.Errorf("Simplified = false, want true")
	}
	if cfg.SymbolLibraryPath != "/srv/symbols" {
		t.Errorf("SymbolLibraryPath = %q", cfg.SymbolLibraryPath)
	}
	if len(cfg.Attributes) != 2 || cfg.Attributes[0].Name != "pop" || cfg.Attributes[0].Type != "number" {
		t.Errorf("Attributes = %+v", cfg.Attributes)
	}
	if cfg.Classification.MaxClasses != 9 {
		t.Errorf("MaxClasses = %d, want 9", cfg.Classification.MaxClasses)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	os.Setenv("CARTO_EDITOR_GEOMETRY_TYPE", "line")
	defer os.Unsetenv("CARTO_EDITOR_GEOMETRY_TYPE")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.GeometryType != types.GeometryLine {
		t.Errorf("GeometryType = %q, want line (env override)", cfg.GeometryType)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "unknown geometry type",
			content: `editor:
  geometry_type: hexagon
`,
		},
		{
			name: "attribute without name",
			content: `editor:
  attributes:
    - type: number
`,
		},
		{
			name: "default method outside methods list",
			content: `editor:
  classification:
    methods: [jenks]
    default_method: quantile
`,
		},
		{
			name: "non-positive max classes",
			content: `editor:
  classification:
    max_classes: 0
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}
