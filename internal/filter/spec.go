package filter

import (
	"fmt"
	"strings"
)

// Spec is a declarative description of a transform, decoded from JSON tool
// arguments or YAML preset files. Unset parameter slices take the variant's
// defaults; set slices must have the exact length the variant expects.
type Spec struct {
	Type        string    `json:"type" yaml:"type"`
	Weights     []float64 `json:"weights,omitempty" yaml:"weights,omitempty"`
	Thresholds  []float64 `json:"thresholds,omitempty" yaml:"thresholds,omitempty"`
	TrueValues  []float64 `json:"true_values,omitempty" yaml:"true_values,omitempty"`
	FalseValues []float64 `json:"false_values,omitempty" yaml:"false_values,omitempty"`
	Contrast    float64   `json:"contrast,omitempty" yaml:"contrast,omitempty"`
	Positions   []int     `json:"positions,omitempty" yaml:"positions,omitempty"`
	Matrix      []float64 `json:"matrix,omitempty" yaml:"matrix,omitempty"`
	Adjustments []float64 `json:"adjustments,omitempty" yaml:"adjustments,omitempty"`
	Channel     int       `json:"channel,omitempty" yaml:"channel,omitempty"`
	Values      []float64 `json:"values,omitempty" yaml:"values,omitempty"`
	Opacity     *float64  `json:"opacity,omitempty" yaml:"opacity,omitempty"`
	Filters     []Spec    `json:"filters,omitempty" yaml:"filters,omitempty"`
}

// Types lists the accepted Spec.Type values.
var Types = []string{
	"grayscale", "threshold", "contrast", "invert", "channel_swap",
	"matrix", "sepia", "adjust", "hsl_adjust", "colorize", "chain",
}

// Build constructs the transform s describes. All parameters are validated
// here so that a bad spec never reaches a pixel loop.
func (s Spec) Build() (Transform, error) {
	var opts []Option
	if s.Opacity != nil {
		opts = append(opts, WithOpacity(*s.Opacity))
	}

	switch normalizeType(s.Type) {
	case "grayscale":
		cfg := DefaultGrayscale()
		if err := fill(cfg.Weights[:], s.Weights, "weights"); err != nil {
			return nil, err
		}
		return asTransform(NewGrayscale(cfg, opts...))

	case "threshold":
		cfg := DefaultThreshold()
		for _, f := range []struct {
			dst  []float64
			src  []float64
			name string
		}{
			{cfg.Weights[:], s.Weights, "weights"},
			{cfg.Thresholds[:], s.Thresholds, "thresholds"},
			{cfg.TrueValues[:], s.TrueValues, "true_values"},
			{cfg.FalseValues[:], s.FalseValues, "false_values"},
		} {
			if err := fill(f.dst, f.src, f.name); err != nil {
				return nil, err
			}
		}
		return asTransform(NewThreshold(cfg, opts...))

	case "contrast":
		return asTransform(NewContrast(ContrastConfig{Contrast: s.Contrast}, opts...))

	case "invert":
		return NewInvert(opts...), nil

	case "channelswap":
		cfg := DefaultChannelSwap()
		if s.Positions != nil {
			if len(s.Positions) != 2 {
				return nil, fmt.Errorf("%w: positions needs 2 values, got %d", ErrInvalidTransformParameter, len(s.Positions))
			}
			cfg.Positions = [2]int{s.Positions[0], s.Positions[1]}
		}
		return asTransform(NewChannelSwap(cfg, opts...))

	case "matrix":
		m := SepiaMatrix
		if err := fill(m[:], s.Matrix, "matrix"); err != nil {
			return nil, err
		}
		return NewMatrix(m, opts...), nil

	case "sepia":
		return NewSepia(opts...), nil

	case "adjust":
		cfg := DefaultAdjust()
		if err := fill(cfg.Adjustments[:], s.Adjustments, "adjustments"); err != nil {
			return nil, err
		}
		return NewAdjust(cfg, opts...), nil

	case "hsladjust":
		cfg := DefaultHSLAdjust()
		if s.Adjustments != nil {
			cfg.Adjustments = s.Adjustments
		}
		return asTransform(NewHSLAdjust(cfg, opts...))

	case "colorize":
		cfg := ColorizeConfig{Channel: s.Channel}
		if err := fill(cfg.Values[:], s.Values, "values"); err != nil {
			return nil, err
		}
		return asTransform(NewColorize(cfg, opts...))

	case "chain":
		filters, err := buildAll(s.Filters)
		if err != nil {
			return nil, err
		}
		return NewChain(filters, opts...), nil

	default:
		return nil, fmt.Errorf("%w: unknown filter type %q", ErrInvalidTransformParameter, s.Type)
	}
}

// BuildChain builds every spec and wraps them in a Chain with default opacity.
func BuildChain(specs []Spec) (*Chain, error) {
	filters, err := buildAll(specs)
	if err != nil {
		return nil, err
	}
	return NewChain(filters), nil
}

func buildAll(specs []Spec) ([]Transform, error) {
	filters := make([]Transform, 0, len(specs))
	for i, s := range specs {
		f, err := s.Build()
		if err != nil {
			return nil, fmt.Errorf("filter %d (%s): %w", i, s.Type, err)
		}
		filters = append(filters, f)
	}
	return filters, nil
}

// asTransform keeps a failed constructor's nil *Filter from becoming a
// non-nil Transform.
func asTransform(f *Filter, err error) (Transform, error) {
	if err != nil {
		return nil, err
	}
	return f, nil
}

// normalizeType folds case and drops '_' and '-' so "HSL-Adjust",
// "hsl_adjust" and "hsladjust" all match.
func normalizeType(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	return strings.NewReplacer("_", "", "-", "").Replace(t)
}

// fill copies src into dst when src is set, requiring equal lengths.
func fill(dst, src []float64, name string) error {
	if src == nil {
		return nil
	}
	if len(src) != len(dst) {
		return fmt.Errorf("%w: %s needs %d values, got %d", ErrInvalidTransformParameter, name, len(dst), len(src))
	}
	copy(dst, src)
	return nil
}
