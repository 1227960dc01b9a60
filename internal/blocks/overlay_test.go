package blocks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/solatis/cartorule/internal/types"
)

func TestLoadOverlay(t *testing.T) {
	overlay := `
symbolizers:
  - key: Fill
    block:
      supportedTypes: [polygon]
      params:
        - name: color
          type: color
          default: "#123456"
  - key: Heatmap
    block:
      kind: Heatmap
      supportedTypes: [point]
      add: true
rules:
  Chart:
    supportedTypes: [point, polygon]
    add: true
`
	path := filepath.Join(t.TempDir(), "registry.yaml")
	if err := os.WriteFile(path, []byte(overlay), 0644); err != nil {
		t.Fatal(err)
	}

	r := Default()
	if err := LoadOverlay(r, path); err != nil {
		t.Fatalf("LoadOverlay() error = %v", err)
	}

	// Existing key replaced: restricted to one parameter
	fill, ok := r.ResolveSymbolizerBlock(KindFill, types.GeometryPolygon)
	if !ok {
		t.Fatalf("Fill block missing after overlay")
	}
	if len(fill.Params) != 1 || fill.Params[0].Name != "color" {
		t.Errorf("overlay must replace params, got %+v", fill.Params)
	}

	// New symbolizer kind appended
	if _, ok := r.ResolveSymbolizerBlock("Heatmap", types.GeometryPoint); !ok {
		t.Errorf("Heatmap block not registered")
	}

	// New rule kind registered
	if _, ok := r.ResolveRuleBlock("Chart"); !ok {
		t.Errorf("Chart rule block not registered")
	}
}

func TestLoadOverlay_MissingKey(t *testing.T) {
	overlay := `
symbolizers:
  - block:
      supportedTypes: [point]
`
	path := filepath.Join(t.TempDir(), "registry.yaml")
	if err := os.WriteFile(path, []byte(overlay), 0644); err != nil {
		t.Fatal(err)
	}

	if err := LoadOverlay(Default(), path); err == nil {
		t.Errorf("expected error for entry without key")
	}
}

func TestLoadOverlay_FileMissing(t *testing.T) {
	if err := LoadOverlay(Default(), filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
