package imaging

import (
	"fmt"
	"image"
	"image/color"

	pixcolor "github.com/ironsheep/tile-filter-mcp/internal/color"
)

// RGBAColor is an 8-bit, non-premultiplied RGBA color.
type RGBAColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// HSLComponents holds normalized hue, saturation and lightness (each 0-1).
type HSLComponents struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// LabComponents holds CIE L*a*b* (D65) values, L in 0-100.
type LabComponents struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// ColorSample describes one color in the formats the filter engine uses.
type ColorSample struct {
	Hex  string        `json:"hex"` // "#rrggbb", or "rgba(...)" when translucent
	HSL  string        `json:"hsl"` // "hsl(...)" or "hsla(...)"
	RGBA RGBAColor     `json:"rgba"`
	Norm HSLComponents `json:"hsl_components"`
	Lab  LabComponents `json:"lab"`
}

// NewColorSample describes c. The alpha byte is derived from c's 0-1 alpha.
func NewColorSample(c pixcolor.Color) ColorSample {
	r, g, b := c.RGB()
	h, s, l := c.HSL()
	labL, labA, labB := c.Lab()
	return ColorSample{
		Hex:  c.HexString(),
		HSL:  c.HSLString(),
		RGBA: RGBAColor{R: clampByte(r), G: clampByte(g), B: clampByte(b), A: clampByte(int(c.A()*255 + 0.5))},
		Norm: HSLComponents{H: h, S: s, L: l},
		Lab:  LabComponents{L: labL, A: labA, B: labB},
	}
}

// SampleColor returns the color of the pixel at (x, y), relative to the
// image's bounds origin.
func SampleColor(img image.Image, x, y int) (*ColorSample, error) {
	bounds := img.Bounds()
	px, py := bounds.Min.X+x, bounds.Min.Y+y
	if !(image.Point{px, py}.In(bounds)) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds %dx%d", x, y, bounds.Dx(), bounds.Dy())
	}

	c := color.NRGBAModel.Convert(img.At(px, py)).(color.NRGBA)
	sample := NewColorSample(pixcolor.FromRGBA(int(c.R), int(c.G), int(c.B), float64(c.A)/255))
	return &sample, nil
}

func clampByte(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}
