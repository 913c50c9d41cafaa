package preset

import (
	"errors"
	"strings"
	"testing"

	"github.com/ironsheep/tile-filter-mcp/internal/filter"
)

func TestBuiltin_CanvasNames(t *testing.T) {
	names := Builtin().Names()

	want := []string{
		"None", "Grayscale1", "Grayscale2", "Grayscale3", "Sepia1", "Invert",
		"ColorizeRed", "ColorizeGreen", "ColorizeBlue",
		"HueRotate30", "HueRotate180", "HueRotate330",
	}
	have := make(map[string]bool, len(names))
	for _, n := range names {
		have[n] = true
	}
	for _, n := range want {
		if !have[n] {
			t.Errorf("missing canvas preset %s", n)
		}
	}
	if len(names) != 9+len(hueSteps) {
		t.Errorf("got %d canvas presets, want %d", len(names), 9+len(hueSteps))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		in   filter.Pixel
		want filter.Pixel
	}{
		{"None", filter.Pixel{1, 2, 3, 4}, filter.Pixel{1, 2, 3, 4}},
		{"Grayscale1", filter.Pixel{200, 100, 50, 0}, filter.Pixel{131.25, 131.25, 131.25, 255}},
		{"Grayscale2", filter.Pixel{30, 60, 90, 0}, filter.Pixel{60, 60, 60, 255}},
		{"Grayscale3", filter.Pixel{60, 30, 10, 0}, filter.Pixel{25, 25, 25, 255}},
		{"Invert", filter.Pixel{0, 10, 255, 0}, filter.Pixel{255, 245, 0, 255}},
		{"HueRotate120", filter.Pixel{255, 0, 0, 0}, filter.Pixel{0, 255, 0, 255}},
		{"ColorizeRed", filter.Pixel{30, 60, 90, 0}, filter.Pixel{60, 0, 0, 255}},
		{"ColorizeGreen", filter.Pixel{30, 60, 90, 0}, filter.Pixel{0, 60, 0, 255}},
		{"ColorizeBlue", filter.Pixel{30, 60, 90, 0}, filter.Pixel{0, 0, 60, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Builtin().Lookup(tt.name)
			if err != nil {
				t.Fatalf("Lookup failed: %v", err)
			}
			if got := f.UpdateChannels(tt.in); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLookup_GrayscaleVariantsDiffer(t *testing.T) {
	in := filter.Pixel{200, 100, 50, 255}
	seen := make(map[float64]string)
	for _, name := range []string{"Grayscale1", "Grayscale2", "Grayscale3"} {
		f, err := Builtin().Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%s) failed: %v", name, err)
		}
		gray := f.UpdateChannels(in)[0]
		if prev, ok := seen[gray]; ok {
			t.Errorf("%s renders the same gray (%v) as %s", name, gray, prev)
		}
		seen[gray] = name
	}
}

func TestLookup_Sepia1MatchesSepia(t *testing.T) {
	f, err := Builtin().Lookup("Sepia1")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	p := filter.Pixel{255, 0, 0, 255}
	if got, want := f.UpdateChannels(p), filter.NewSepia().UpdateChannels(p); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLookup_FreshInstances(t *testing.T) {
	a, _ := Builtin().Lookup("Invert")
	b, _ := Builtin().Lookup("Invert")
	if a == b {
		t.Error("Lookup returned the same instance twice")
	}
}

func TestLookup_Unknown(t *testing.T) {
	for _, name := range []string{"", "grayscale1", "HueRotate45", "Brightness200"} {
		_, err := Builtin().Lookup(name)
		if !errors.Is(err, ErrUnknownPresetName) {
			t.Errorf("%q: got %v, want ErrUnknownPresetName", name, err)
		}
	}
}

func TestCSS(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Brightness200", "brightness(200%)"},
		{"Brightness20", "brightness(20%)"},
		{"Contrast120", "contrast(120%)"},
		{"Sepia60", "sepia(60%)"},
		{"Saturate700", "saturate(700%)"},
		{"Invert100", "invert(100%)"},
		{"HueRotate270", "hue-rotate(270deg)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fns, err := Builtin().CSS(tt.name)
			if err != nil {
				t.Fatalf("CSS failed: %v", err)
			}
			if len(fns) != 1 || fns[0] != tt.want {
				t.Errorf("got %v, want [%s]", fns, tt.want)
			}
		})
	}

	none, err := Builtin().CSS("None")
	if err != nil || len(none) != 0 {
		t.Errorf("None: got %v, %v", none, err)
	}
	if n := len(Builtin().CSSNames()); n != 1+11+10+10+5+6+5 {
		t.Errorf("got %d CSS presets, want 48", n)
	}
}

func TestCSS_ReturnsCopy(t *testing.T) {
	fns, _ := Builtin().CSS("Sepia100")
	fns[0] = "tampered"
	again, _ := Builtin().CSS("Sepia100")
	if again[0] != "sepia(100%)" {
		t.Errorf("catalog was mutated through returned slice: %v", again)
	}
}

func TestCSS_Unknown(t *testing.T) {
	if _, err := Builtin().CSS("Sepia1"); !errors.Is(err, ErrUnknownPresetName) {
		t.Errorf("got %v, want ErrUnknownPresetName", err)
	}
}

func TestCSSText(t *testing.T) {
	got := CSSText([]string{"sepia(100%)", "invert(20%)"})
	for _, want := range []string{
		"-webkit-filter: sepia(100%) invert(20%);",
		"-moz-filter: sepia(100%) invert(20%);",
		"-ms-filter: sepia(100%) invert(20%);",
		"-o-filter: sepia(100%) invert(20%);",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
	if !strings.HasSuffix(got, " filter: sepia(100%) invert(20%);") {
		t.Errorf("missing unprefixed declaration: %q", got)
	}
}

func TestWithCustom(t *testing.T) {
	reg, err := Builtin().WithCustom(map[string][]filter.Spec{
		"NightMode": {{Type: "invert"}, {Type: "hsl_adjust", Adjustments: []float64{180, 0, 0}}},
		"Invert":    {{Type: "grayscale"}},
	})
	if err != nil {
		t.Fatalf("WithCustom failed: %v", err)
	}

	night, err := reg.Lookup("NightMode")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	// invert(red) = cyan, rotated 180 degrees = red
	if got := night.UpdateChannels(filter.Pixel{255, 0, 0, 0}); got != (filter.Pixel{255, 0, 0, 255}) {
		t.Errorf("NightMode: got %v", got)
	}

	shadowed, _ := reg.Lookup("Invert")
	if got := shadowed.UpdateChannels(filter.Pixel{30, 60, 90, 0}); got[0] == 225 {
		t.Errorf("custom preset did not shadow builtin: %v", got)
	}

	if _, err := Builtin().Lookup("NightMode"); !errors.Is(err, ErrUnknownPresetName) {
		t.Error("WithCustom modified the builtin registry")
	}
	if _, err := reg.CSS("Sepia100"); err != nil {
		t.Errorf("CSS catalog not carried over: %v", err)
	}
}

func TestWithCustom_InvalidDefinition(t *testing.T) {
	_, err := Builtin().WithCustom(map[string][]filter.Spec{
		"Broken": {{Type: "colorize", Channel: 7}},
	})
	if !errors.Is(err, filter.ErrInvalidTransformParameter) {
		t.Errorf("got %v, want ErrInvalidTransformParameter", err)
	}
}
