package color

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// floorGuard absorbs floating-point representation error before flooring
// a normalized channel back to an integer (e.g. 0.2*255 = 50.99999...).
const floorGuard = 1e-9

// labScale converts go-colorful's Lab (L in 0-1) to the usual L in 0-100.
const labScale = 100

// Color holds a color in both RGB and HSL form plus alpha.
//
// The zero value is black with zero alpha; use one of the constructors to
// obtain an opaque color.
type Color struct {
	rgb   [3]int
	hsl   [3]float64
	alpha float64
}

// FromRGB creates an opaque color from RGB channels.
func FromRGB(r, g, b int) Color {
	return FromRGBA(r, g, b, 1)
}

// FromRGBA creates a color from RGB channels and an alpha in 0-1.
func FromRGBA(r, g, b int, a float64) Color {
	var c Color
	c.setRGB(r, g, b)
	c.alpha = a
	return c
}

// FromHSL creates an opaque color from hue, saturation and lightness (each 0-1).
func FromHSL(h, s, l float64) Color {
	return FromHSLA(h, s, l, 1)
}

// FromHSLA creates a color from HSL components and an alpha in 0-1.
func FromHSLA(h, s, l, a float64) Color {
	var c Color
	c.setHSL(h, s, l)
	c.alpha = a
	return c
}

// FromComponents creates a color from a 3 or 4 element slice.
//
// The first three elements are RGB channels and are floored to integers.
// The optional fourth element is alpha (0-1); when absent alpha is 1.
func FromComponents(components []float64) (Color, error) {
	if len(components) != 3 && len(components) != 4 {
		return Color{}, fmt.Errorf("%w: expected 3 or 4 components, got %d", ErrInvalidColorFormat, len(components))
	}
	a := 1.0
	if len(components) == 4 {
		a = components[3]
	}
	return FromRGBA(
		int(math.Floor(components[0])),
		int(math.Floor(components[1])),
		int(math.Floor(components[2])),
		a,
	), nil
}

// Colorful returns the RGB part of c as a go-colorful color.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.rgb[0]) / 255,
		G: float64(c.rgb[1]) / 255,
		B: float64(c.rgb[2]) / 255,
	}
}

// Lab returns c in CIE L*a*b* (D65), with L in 0-100. Alpha is ignored.
func (c Color) Lab() (l, a, b float64) {
	l, a, b = c.Colorful().Lab()
	return l * labScale, a * labScale, b * labScale
}

// Distance returns the CIE76 color difference (Delta E) between c and
// other, in the same units as Lab. Alpha is ignored.
func (c Color) Distance(other Color) float64 {
	return c.Colorful().DistanceLab(other.Colorful()) * labScale
}

// RGB returns the red, green and blue channels.
func (c Color) RGB() (r, g, b int) {
	return c.rgb[0], c.rgb[1], c.rgb[2]
}

// HSL returns hue, saturation and lightness, each normalized to 0-1.
func (c Color) HSL() (h, s, l float64) {
	return c.hsl[0], c.hsl[1], c.hsl[2]
}

// R returns the red channel.
func (c Color) R() int { return c.rgb[0] }

// G returns the green channel.
func (c Color) G() int { return c.rgb[1] }

// B returns the blue channel.
func (c Color) B() int { return c.rgb[2] }

// H returns the hue, 0-1 for one full turn.
func (c Color) H() float64 { return c.hsl[0] }

// S returns the saturation (0-1).
func (c Color) S() float64 { return c.hsl[1] }

// L returns the lightness (0-1).
func (c Color) L() float64 { return c.hsl[2] }

// A returns alpha (0-1).
func (c Color) A() float64 { return c.alpha }

// SetR replaces the red channel and recomputes HSL.
func (c *Color) SetR(r int) { c.setRGB(r, c.rgb[1], c.rgb[2]) }

// SetG replaces the green channel and recomputes HSL.
func (c *Color) SetG(g int) { c.setRGB(c.rgb[0], g, c.rgb[2]) }

// SetB replaces the blue channel and recomputes HSL.
func (c *Color) SetB(b int) { c.setRGB(c.rgb[0], c.rgb[1], b) }

// SetH replaces the hue and recomputes RGB.
func (c *Color) SetH(h float64) { c.setHSL(h, c.hsl[1], c.hsl[2]) }

// SetS replaces the saturation and recomputes RGB.
func (c *Color) SetS(s float64) { c.setHSL(c.hsl[0], s, c.hsl[2]) }

// SetL replaces the lightness and recomputes RGB.
func (c *Color) SetL(l float64) { c.setHSL(c.hsl[0], c.hsl[1], l) }

// SetA replaces alpha. RGB and HSL are unaffected.
func (c *Color) SetA(a float64) { c.alpha = a }

// SetRGB replaces all three RGB channels and recomputes HSL.
func (c *Color) SetRGB(r, g, b int) { c.setRGB(r, g, b) }

// SetHSL replaces all three HSL components and recomputes RGB.
func (c *Color) SetHSL(h, s, l float64) { c.setHSL(h, s, l) }

func (c *Color) setRGB(r, g, b int) {
	c.rgb = [3]int{r, g, b}
	c.hsl = rgbToHSL(r, g, b)
}

func (c *Color) setHSL(h, s, l float64) {
	c.hsl = [3]float64{h, s, l}
	c.rgb = hslToRGB(h, s, l)
}

// HexString formats the color as "#rrggbb", or as "rgba(r,g,b,a)" when
// alpha is below 1. Alpha has one decimal place, ties rounded up.
func (c Color) HexString() string {
	if c.alpha < 1 {
		return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.rgb[0], c.rgb[1], c.rgb[2], toFixed(c.alpha, 1))
	}
	return fmt.Sprintf("#%02x%02x%02x", c.rgb[0], c.rgb[1], c.rgb[2])
}

// String implements fmt.Stringer using HexString.
func (c Color) String() string {
	return c.HexString()
}

// HSLString formats the color as "hsl(h,s%,l%)" with hue in degrees to one
// decimal place and whole percentages, ties rounded up.
//
// When alpha is below 1 the result is "hsla(h,s%,l%,a)". Unlike the
// three-argument hsla() some canvas code emits, the alpha argument is
// always written, so the string round-trips through a CSS parser.
func (c Color) HSLString() string {
	h := toFixed(c.hsl[0]*360, 1)
	s := toFixed(c.hsl[1]*100, 0)
	l := toFixed(c.hsl[2]*100, 0)
	if c.alpha < 1 {
		return fmt.Sprintf("hsla(%s,%s%%,%s%%,%s)", h, s, l, toFixed(c.alpha, 1))
	}
	return fmt.Sprintf("hsl(%s,%s%%,%s%%)", h, s, l)
}

// toFixed formats v with the given number of decimals, rounding ties away
// from zero (0.25 gives "0.3", 12.5 gives "13").
func toFixed(v float64, decimals int) string {
	p := math.Pow(10, float64(decimals))
	return strconv.FormatFloat(math.Round(v*p)/p, 'f', decimals, 64)
}

// rgbToHSL converts integer RGB channels to normalized HSL.
//
// The conversion follows the standard algorithm:
//  1. Normalize RGB to 0-1 range
//  2. Find min and max components
//  3. Lightness is (max + min) / 2
//  4. Saturation depends on which side of 0.5 lightness falls
//  5. Hue depends on which component is max
func rgbToHSL(r, g, b int) [3]float64 {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	l := (max + min) / 2

	if max == min {
		return [3]float64{0, 0, l}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/d + 2
	default:
		h = (rf-gf)/d + 4
	}

	return [3]float64{h / 6, s, l}
}

// hslToRGB converts normalized HSL to integer RGB channels, flooring each
// channel after scaling to 0-255.
func hslToRGB(h, s, l float64) [3]int {
	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToChannel(p, q, h+1.0/3)
		g = hueToChannel(p, q, h)
		b = hueToChannel(p, q, h-1.0/3)
	}
	return [3]int{
		int(math.Floor(r*255 + floorGuard)),
		int(math.Floor(g*255 + floorGuard)),
		int(math.Floor(b*255 + floorGuard)),
	}
}

// hueToChannel evaluates one channel of the HSL hexcone for hue position t.
func hueToChannel(p, q, t float64) float64 {
	t -= math.Floor(t)
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}
