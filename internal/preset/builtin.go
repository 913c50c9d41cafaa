package preset

import (
	"fmt"

	"github.com/ironsheep/tile-filter-mcp/internal/filter"
)

var hueSteps = []int{30, 60, 90, 120, 150, 180, 210, 240, 270, 300, 330}

// newBuiltin builds the default catalog.
//
// Grayscale1, Grayscale2 and Grayscale3 each render with their own weights:
// (3,4,1), (1,1,1) and (1,2,3). Older canvas plugins passed these options
// under a key the grayscale filter never read, so all three rendered as
// Grayscale1; tiles cached from those plugins will not match Grayscale2 or
// Grayscale3 output here.
func newBuiltin() *Registry {
	r := &Registry{
		canvas: map[string]Factory{
			"None": func() filter.Transform {
				return filter.TransformFunc(func(p filter.Pixel) filter.Pixel { return p })
			},
			"Grayscale1":    grayscale(3, 4, 1),
			"Grayscale2":    grayscale(1, 1, 1),
			"Grayscale3":    grayscale(1, 2, 3),
			"Sepia1":        func() filter.Transform { return filter.NewSepia() },
			"Invert":        func() filter.Transform { return filter.NewInvert() },
			"ColorizeRed":   colorize(0),
			"ColorizeGreen": colorize(1),
			"ColorizeBlue":  colorize(2),
		},
		css: map[string][]string{
			"None": {},
		},
	}

	for _, deg := range hueSteps {
		r.canvas[fmt.Sprintf("HueRotate%d", deg)] = hueRotate(float64(deg))
		r.css[fmt.Sprintf("HueRotate%d", deg)] = []string{fmt.Sprintf("hue-rotate(%ddeg)", deg)}
	}
	for pct := 20; pct <= 200; pct += 20 {
		r.css[fmt.Sprintf("Brightness%d", pct)] = []string{fmt.Sprintf("brightness(%d%%)", pct)}
		r.css[fmt.Sprintf("Contrast%d", pct)] = []string{fmt.Sprintf("contrast(%d%%)", pct)}
	}
	for pct := 20; pct <= 100; pct += 20 {
		r.css[fmt.Sprintf("Sepia%d", pct)] = []string{fmt.Sprintf("sepia(%d%%)", pct)}
		r.css[fmt.Sprintf("Invert%d", pct)] = []string{fmt.Sprintf("invert(%d%%)", pct)}
	}
	for pct := 200; pct <= 700; pct += 100 {
		r.css[fmt.Sprintf("Saturate%d", pct)] = []string{fmt.Sprintf("saturate(%d%%)", pct)}
	}
	return r
}

// The factories below use fixed, known-good parameters; a constructor error
// here is a programming mistake.

func grayscale(r, g, b float64) Factory {
	return func() filter.Transform {
		return must(filter.NewGrayscale(filter.GrayscaleConfig{Weights: [3]float64{r, g, b}}))
	}
}

func hueRotate(degrees float64) Factory {
	return func() filter.Transform {
		return must(filter.NewHSLAdjust(filter.HSLAdjustConfig{Adjustments: []float64{degrees, 0, 0}}))
	}
}

func colorize(channel int) Factory {
	return func() filter.Transform {
		return must(filter.NewColorize(filter.ColorizeConfig{Channel: channel}))
	}
}

func must(f *filter.Filter, err error) filter.Transform {
	if err != nil {
		panic(err)
	}
	return f
}
