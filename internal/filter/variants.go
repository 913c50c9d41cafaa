package filter

import (
	"fmt"
	"math"

	"github.com/ironsheep/tile-filter-mcp/internal/color"
)

// SepiaMatrix is the classic sepia tone matrix, row-major.
var SepiaMatrix = [9]float64{
	0.393, 0.769, 0.189,
	0.349, 0.686, 0.168,
	0.272, 0.534, 0.131,
}

// GrayscaleConfig holds the channel weights for Grayscale.
type GrayscaleConfig struct {
	Weights [3]float64
}

// DefaultGrayscale returns weights (3, 4, 1).
func DefaultGrayscale() GrayscaleConfig {
	return GrayscaleConfig{Weights: [3]float64{3, 4, 1}}
}

// ThresholdConfig configures Threshold. Weights feed the grayscale step;
// the remaining arrays are indexed R, G, B, A.
type ThresholdConfig struct {
	Weights     [3]float64
	Thresholds  [4]float64
	TrueValues  [4]float64
	FalseValues [4]float64
}

// DefaultThreshold returns a black/white threshold at 128 with opaque output.
func DefaultThreshold() ThresholdConfig {
	return ThresholdConfig{
		Weights:     DefaultGrayscale().Weights,
		Thresholds:  [4]float64{128, 128, 128, 128},
		TrueValues:  [4]float64{255, 255, 255, 255},
		FalseValues: [4]float64{0, 0, 0, 255},
	}
}

// ContrastConfig holds the contrast level, in (-255, 255). Zero leaves
// channels unchanged.
type ContrastConfig struct {
	Contrast float64
}

// ChannelSwapConfig holds the two RGB indices to exchange.
type ChannelSwapConfig struct {
	Positions [2]int
}

// DefaultChannelSwap swaps red and green.
func DefaultChannelSwap() ChannelSwapConfig {
	return ChannelSwapConfig{Positions: [2]int{0, 1}}
}

// AdjustConfig holds the per-channel deltas added to R, G and B.
type AdjustConfig struct {
	Adjustments [3]float64
}

// DefaultAdjust brightens each channel by 20.
func DefaultAdjust() AdjustConfig {
	return AdjustConfig{Adjustments: [3]float64{20, 20, 20}}
}

// HSLAdjustConfig holds hue (degrees), saturation and lightness deltas, and
// an optional fourth value added to the alpha channel.
type HSLAdjustConfig struct {
	Adjustments []float64
}

// DefaultHSLAdjust rotates hue by 30 degrees.
func DefaultHSLAdjust() HSLAdjustConfig {
	return HSLAdjustConfig{Adjustments: []float64{30, 0, 0}}
}

// ColorizeConfig selects the channel that receives the RGB mean and the two
// constants written to the other channels in ascending index order.
type ColorizeConfig struct {
	Channel int
	Values  [2]float64
}

func weightedGray(weights [3]float64, sum float64) func(Pixel) Pixel {
	return func(p Pixel) Pixel {
		gray := (weights[0]*p[0] + weights[1]*p[1] + weights[2]*p[2]) / sum
		p[0], p[1], p[2] = gray, gray, gray
		return p
	}
}

func weightSum(weights [3]float64) (float64, error) {
	sum := weights[0] + weights[1] + weights[2]
	if sum == 0 {
		return 0, fmt.Errorf("%w: grayscale weights sum to zero", ErrInvalidTransformParameter)
	}
	return sum, nil
}

// NewGrayscale returns a filter that writes the weighted mean of R, G and B
// into all three channels.
func NewGrayscale(cfg GrayscaleConfig, opts ...Option) (*Filter, error) {
	sum, err := weightSum(cfg.Weights)
	if err != nil {
		return nil, err
	}
	return newFilter("grayscale", weightedGray(cfg.Weights, sum), opts), nil
}

// NewThreshold returns a filter that converts to grayscale and then maps
// each channel to its true value when >= its threshold, else its false value.
func NewThreshold(cfg ThresholdConfig, opts ...Option) (*Filter, error) {
	sum, err := weightSum(cfg.Weights)
	if err != nil {
		return nil, err
	}
	gray := weightedGray(cfg.Weights, sum)
	return newFilter("threshold", func(p Pixel) Pixel {
		p = gray(p)
		for i := 0; i < 4; i++ {
			if p[i] >= cfg.Thresholds[i] {
				p[i] = cfg.TrueValues[i]
			} else {
				p[i] = cfg.FalseValues[i]
			}
		}
		return p
	}, opts), nil
}

// NewContrast returns a filter that scales R, G and B around 128 by
// 255*(255+c) / (255*(255-c)).
func NewContrast(cfg ContrastConfig, opts ...Option) (*Filter, error) {
	if cfg.Contrast == 255 {
		return nil, fmt.Errorf("%w: contrast 255 has no finite factor", ErrInvalidTransformParameter)
	}
	factor := 255 * (255 + cfg.Contrast) / (255 * (255 - cfg.Contrast))
	return newFilter("contrast", func(p Pixel) Pixel {
		for i := 0; i < 3; i++ {
			p[i] = factor*(p[i]-128) + 128
		}
		return p
	}, opts), nil
}

// NewInvert returns a filter that replaces R, G and B with 255 minus their value.
func NewInvert(opts ...Option) *Filter {
	return newFilter("invert", func(p Pixel) Pixel {
		for i := 0; i < 3; i++ {
			p[i] = 255 - p[i]
		}
		return p
	}, opts)
}

// NewChannelSwap returns a filter that exchanges two of R, G and B.
func NewChannelSwap(cfg ChannelSwapConfig, opts ...Option) (*Filter, error) {
	a, b := cfg.Positions[0], cfg.Positions[1]
	if a < 0 || a > 2 || b < 0 || b > 2 {
		return nil, fmt.Errorf("%w: swap positions (%d,%d) outside [0,2]", ErrInvalidTransformParameter, a, b)
	}
	return newFilter("channel_swap", func(p Pixel) Pixel {
		p[a], p[b] = p[b], p[a]
		return p
	}, opts), nil
}

// NewMatrix returns a filter computing out[i] = sum_j m[3i+j] * in[j] over R, G, B.
func NewMatrix(m [9]float64, opts ...Option) *Filter {
	return newMatrix("matrix", m, opts)
}

// NewSepia returns a Matrix filter fixed to SepiaMatrix.
func NewSepia(opts ...Option) *Filter {
	return newMatrix("sepia", SepiaMatrix, opts)
}

func newMatrix(name string, m [9]float64, opts []Option) *Filter {
	return newFilter(name, func(p Pixel) Pixel {
		r, g, b := p[0], p[1], p[2]
		for i := 0; i < 3; i++ {
			p[i] = r*m[3*i] + g*m[3*i+1] + b*m[3*i+2]
		}
		return p
	}, opts)
}

// NewAdjust returns a filter that adds a delta to each of R, G and B and
// clamps the result to [0, 255].
func NewAdjust(cfg AdjustConfig, opts ...Option) *Filter {
	return newFilter("adjust", func(p Pixel) Pixel {
		for i := 0; i < 3; i++ {
			p[i] = math.Min(math.Max(p[i]+cfg.Adjustments[i], 0), 255)
		}
		return p
	}, opts)
}

// NewHSLAdjust returns a filter that shifts the pixel in HSL space.
//
// The hue delta is in degrees and wraps around the color wheel. Saturation
// and lightness deltas are added as-is and may leave [0, 1]. A fourth
// adjustment, when present, is added directly to the alpha channel.
func NewHSLAdjust(cfg HSLAdjustConfig, opts ...Option) (*Filter, error) {
	if n := len(cfg.Adjustments); n != 3 && n != 4 {
		return nil, fmt.Errorf("%w: hsl adjustments need 3 or 4 values, got %d", ErrInvalidTransformParameter, n)
	}
	adj := append([]float64(nil), cfg.Adjustments...)

	return newFilter("hsl_adjust", func(p Pixel) Pixel {
		c := color.FromRGBA(int(math.Floor(p[0])), int(math.Floor(p[1])), int(math.Floor(p[2])), p[3])
		h, s, l := c.HSL()
		h = (h*360 + adj[0]) / 360
		h -= math.Floor(h)
		c.SetHSL(h, s+adj[1], l+adj[2])

		r, g, b := c.RGB()
		p[0], p[1], p[2] = float64(r), float64(g), float64(b)
		if len(adj) > 3 {
			p[3] += adj[3]
		}
		return p
	}, opts), nil
}

// NewColorize returns a filter that writes the mean of R, G and B into the
// selected channel and the configured constants into the other two.
func NewColorize(cfg ColorizeConfig, opts ...Option) (*Filter, error) {
	if cfg.Channel < 0 || cfg.Channel > 2 {
		return nil, fmt.Errorf("%w: colorize channel %d outside [0,2]", ErrInvalidTransformParameter, cfg.Channel)
	}
	others := make([]int, 0, 2)
	for i := 0; i < 3; i++ {
		if i != cfg.Channel {
			others = append(others, i)
		}
	}

	return newFilter("colorize", func(p Pixel) Pixel {
		mean := (p[0] + p[1] + p[2]) / 3
		p[cfg.Channel] = mean
		p[others[0]] = cfg.Values[0]
		p[others[1]] = cfg.Values[1]
		return p
	}, opts), nil
}
