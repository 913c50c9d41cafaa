package filter

import (
	"encoding/json"
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

func floatPtr(v float64) *float64 { return &v }

func TestSpecBuild(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		in   Pixel
		want Pixel
	}{
		{"grayscale default", Spec{Type: "grayscale"}, Pixel{200, 100, 50, 0}, Pixel{131.25, 131.25, 131.25, 255}},
		{"grayscale weights", Spec{Type: "Grayscale", Weights: []float64{1, 1, 1}}, Pixel{30, 60, 90, 0}, Pixel{60, 60, 60, 255}},
		{"threshold", Spec{Type: "threshold", Thresholds: []float64{200, 200, 200, 0}}, Pixel{200, 100, 50, 0}, Pixel{0, 0, 0, 255}},
		{"contrast", Spec{Type: "contrast"}, Pixel{1, 2, 3, 4}, Pixel{1, 2, 3, 255}},
		{"invert with opacity", Spec{Type: "invert", Opacity: floatPtr(0)}, Pixel{0, 0, 0, 255}, Pixel{255, 255, 255, 0}},
		{"channel swap", Spec{Type: "channel-swap", Positions: []int{1, 2}}, Pixel{1, 2, 3, 0}, Pixel{1, 3, 2, 255}},
		{"matrix", Spec{Type: "matrix", Matrix: []float64{0, 0, 1, 0, 1, 0, 1, 0, 0}}, Pixel{1, 2, 3, 0}, Pixel{3, 2, 1, 255}},
		{"adjust", Spec{Type: "adjust", Adjustments: []float64{-5, 0, 5}}, Pixel{10, 10, 10, 0}, Pixel{5, 10, 15, 255}},
		{"hsl adjust", Spec{Type: "hsl_adjust", Adjustments: []float64{120, 0, 0}}, Pixel{255, 0, 0, 0}, Pixel{0, 255, 0, 255}},
		{"colorize", Spec{Type: "colorize", Channel: 2, Values: []float64{9, 8}}, Pixel{3, 6, 9, 0}, Pixel{9, 8, 6, 255}},
		{"chain", Spec{Type: "chain", Filters: []Spec{{Type: "invert"}, {Type: "adjust"}}}, Pixel{200, 100, 50, 0}, Pixel{75, 175, 225, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := tt.spec.Build()
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			if got := f.UpdateChannels(tt.in); !pixelsClose(got, tt.want, 1e-9) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpecBuild_Sepia(t *testing.T) {
	f, err := Spec{Type: "SEPIA"}.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if got, want := f.UpdateChannels(Pixel{255, 0, 0, 0}), NewSepia().UpdateChannels(Pixel{255, 0, 0, 0}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSpecBuild_Invalid(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
	}{
		{"unknown type", Spec{Type: "blur"}},
		{"empty type", Spec{}},
		{"weights length", Spec{Type: "grayscale", Weights: []float64{1, 2}}},
		{"zero weights", Spec{Type: "grayscale", Weights: []float64{0, 0, 0}}},
		{"thresholds length", Spec{Type: "threshold", Thresholds: []float64{1, 2, 3}}},
		{"contrast 255", Spec{Type: "contrast", Contrast: 255}},
		{"swap length", Spec{Type: "channel_swap", Positions: []int{1}}},
		{"swap range", Spec{Type: "channel_swap", Positions: []int{0, 5}}},
		{"matrix length", Spec{Type: "matrix", Matrix: []float64{1, 2, 3}}},
		{"adjust length", Spec{Type: "adjust", Adjustments: []float64{1}}},
		{"hsl length", Spec{Type: "hsl_adjust", Adjustments: []float64{1, 2}}},
		{"colorize channel", Spec{Type: "colorize", Channel: 4}},
		{"colorize values", Spec{Type: "colorize", Values: []float64{1}}},
		{"nested chain", Spec{Type: "chain", Filters: []Spec{{Type: "invert"}, {Type: "nope"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := tt.spec.Build()
			if !errors.Is(err, ErrInvalidTransformParameter) {
				t.Errorf("got %v, want ErrInvalidTransformParameter", err)
			}
			if f != nil {
				t.Errorf("got non-nil transform %T on error", f)
			}
		})
	}
}

func TestBuildChain(t *testing.T) {
	chain, err := BuildChain([]Spec{{Type: "invert"}, {Type: "invert"}})
	if err != nil {
		t.Fatalf("BuildChain failed: %v", err)
	}
	if chain.Len() != 2 {
		t.Errorf("Len: got %d, want 2", chain.Len())
	}

	if _, err := BuildChain([]Spec{{Type: "adjust", Adjustments: []float64{}}}); !errors.Is(err, ErrInvalidTransformParameter) {
		t.Errorf("got %v, want ErrInvalidTransformParameter", err)
	}
}

func TestSpec_DecodeJSONAndYAML(t *testing.T) {
	jsonDoc := `[{"type":"hsl_adjust","adjustments":[30,0,0]},{"type":"threshold","true_values":[255,0,0,255]}]`
	yamlDoc := `
- type: hsl_adjust
  adjustments: [30, 0, 0]
- type: threshold
  true_values: [255, 0, 0, 255]
`
	var fromJSON, fromYAML []Spec
	if err := json.Unmarshal([]byte(jsonDoc), &fromJSON); err != nil {
		t.Fatalf("json: %v", err)
	}
	if err := yaml.Unmarshal([]byte(yamlDoc), &fromYAML); err != nil {
		t.Fatalf("yaml: %v", err)
	}

	for name, specs := range map[string][]Spec{"json": fromJSON, "yaml": fromYAML} {
		chain, err := BuildChain(specs)
		if err != nil {
			t.Fatalf("%s: BuildChain failed: %v", name, err)
		}
		if got := chain.UpdateChannels(Pixel{255, 255, 255, 0}); got != (Pixel{255, 0, 0, 255}) {
			t.Errorf("%s: got %v", name, got)
		}
	}
}
