// internal/blocks/defaults.go
package blocks

import (
	"github.com/solatis/cartorule/internal/types"
)

/*
 * Built-in capability registry.
 *
 * Registers the standard symbolizer kinds (Mark, Icon, Line, Fill, Text,
 * Raster) and rule kinds (plain, Classification, RasterLayer). Geometry
 * scoping follows SLD conventions: marks and icons render points, strokes
 * render lines and polygon outlines, fills render polygons, text renders
 * everywhere, raster channels render raster only.
 *
 * Callers replace or extend this registry per session; LoadOverlay merges a
 * YAML overlay on top for deployments that restrict parameters or register
 * extra kinds without recompiling.
 */

// Symbolizer kind discriminators.
const (
	KindMark   = "Mark"
	KindIcon   = "Icon"
	KindLine   = "Line"
	KindFill   = "Fill"
	KindText   = "Text"
	KindRaster = "Raster"
)

// Rule kind discriminators. The empty kind is a plain rule with a symbolizer
// sequence; Classification rules are governed by a composite editor and carry
// no symbolizer sequence of their own.
const (
	RuleKindPlain          = ""
	RuleKindClassification = "Classification"
	RuleKindRaster         = "RasterLayer"
)

// Classification method discriminators, stored flat on classification rules.
const (
	MethodCustomInterval = "customInterval"
	MethodUniqueInterval = "uniqueInterval"
	MethodEqualInterval  = "equalInterval"
	MethodQuantile       = "quantile"
	MethodJenks          = "jenks"
)

// Default returns the built-in registry.
func Default() *Registry {
	r := NewRegistry()

	r.RegisterSymbolizer(KindMark, Block{
		Kind:           KindMark,
		SupportedTypes: []types.GeometryType{types.GeometryPoint},
		DefaultProperties: map[string]any{
			"wellKnownName": "circle",
			"color":         "#0E1058",
			"radius":        6.0,
		},
		Params: []ParamSpec{
			{Name: "wellKnownName", Type: "select", Default: "circle", Options: []string{"circle", "square", "triangle", "star", "cross", "x"}},
			{Name: "color", Type: "color", Default: "#0E1058"},
			{Name: "radius", Type: "number", Default: 6.0},
			{Name: "opacity", Type: "number", Default: 1.0},
			{Name: "rotate", Type: "number", Default: 0.0},
		},
		Icon: "point",
		Add:  true,
	})

	r.RegisterSymbolizer(KindIcon, Block{
		Kind:           KindIcon,
		SupportedTypes: []types.GeometryType{types.GeometryPoint},
		DefaultProperties: map[string]any{
			"image": "",
			"size":  16.0,
		},
		Params: []ParamSpec{
			{Name: "image", Type: "text"},
			{Name: "size", Type: "number", Default: 16.0},
			{Name: "opacity", Type: "number", Default: 1.0},
			{Name: "rotate", Type: "number", Default: 0.0},
		},
		Icon: "icon",
		Add:  true,
	})

	r.RegisterSymbolizer(KindLine, Block{
		Kind:           KindLine,
		SupportedTypes: []types.GeometryType{types.GeometryLine, types.GeometryPolygon},
		DefaultProperties: map[string]any{
			"color": "#0E1058",
			"width": 1.0,
		},
		Params: []ParamSpec{
			{Name: "color", Type: "color", Default: "#0E1058"},
			{Name: "width", Type: "number", Default: 1.0},
			{Name: "opacity", Type: "number", Default: 1.0},
			{Name: "dasharray", Type: "text"},
			{Name: "cap", Type: "select", Default: "round", Options: []string{"butt", "round", "square"}},
			{Name: "join", Type: "select", Default: "round", Options: []string{"bevel", "round", "miter"}},
		},
		Icon: "line",
		Add:  true,
	})

	r.RegisterSymbolizer(KindFill, Block{
		Kind:           KindFill,
		SupportedTypes: []types.GeometryType{types.GeometryPolygon},
		DefaultProperties: map[string]any{
			"color": "#0E1058",
		},
		Params: []ParamSpec{
			{Name: "color", Type: "color", Default: "#0E1058"},
			{Name: "fillOpacity", Type: "number", Default: 1.0},
			{Name: "outlineColor", Type: "color"},
			{Name: "outlineWidth", Type: "number", Default: 1.0},
		},
		Icon: "polygon",
		Add:  true,
	})

	r.RegisterSymbolizer(KindText, Block{
		Kind:           KindText,
		SupportedTypes: []types.GeometryType{types.GeometryPoint, types.GeometryLine, types.GeometryPolygon},
		DefaultProperties: map[string]any{
			"label": "",
			"color": "#000000",
			"size":  12.0,
		},
		Params: []ParamSpec{
			{Name: "label", Type: "text"},
			{Name: "color", Type: "color", Default: "#000000"},
			{Name: "size", Type: "number", Default: 12.0},
			{Name: "font", Type: "text"},
			{Name: "haloColor", Type: "color"},
			{Name: "haloWidth", Type: "number", Default: 0.0},
		},
		Icon: "text",
		Add:  true,
	})

	r.RegisterSymbolizer(KindRaster, Block{
		Kind:           KindRaster,
		SupportedTypes: []types.GeometryType{types.GeometryRaster},
		DefaultProperties: map[string]any{
			"opacity": 1.0,
		},
		Params: []ParamSpec{
			{Name: "opacity", Type: "number", Default: 1.0},
			{Name: "channel", Type: "text"},
			{Name: "contrastEnhancement", Type: "select", Options: []string{"normalize", "histogram"}},
		},
		Icon: "raster",
		Add:  true,
	})

	r.RegisterRule(RuleKindPlain, Block{
		Kind:           RuleKindPlain,
		SupportedTypes: []types.GeometryType{types.GeometryPoint, types.GeometryLine, types.GeometryPolygon},
		Add:            true,
	})

	r.RegisterRule(RuleKindClassification, Block{
		Kind:           RuleKindClassification,
		SupportedTypes: []types.GeometryType{types.GeometryPoint, types.GeometryLine, types.GeometryPolygon},
		DefaultProperties: map[string]any{
			"method": MethodEqualInterval,
		},
		Add: true,
	})

	r.RegisterRule(RuleKindRaster, Block{
		Kind:           RuleKindRaster,
		SupportedTypes: []types.GeometryType{types.GeometryRaster},
		Add:            true,
		// A style renders a single raster layer; a second raster rule would
		// shadow the first.
		DisableAdd: func(rules []types.Rule) bool {
			for _, r := range rules {
				if r.Kind == RuleKindRaster {
					return true
				}
			}
			return false
		},
	})

	return r
}
