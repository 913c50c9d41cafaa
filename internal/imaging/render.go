package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/tile-filter-mcp/internal/filter"
)

// Region is a rectangle in image coordinates. (X1, Y1) is inclusive and
// (X2, Y2) exclusive.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Rect validates r against bounds and returns it as an image.Rectangle.
func (r Region) Rect(bounds image.Rectangle) (image.Rectangle, error) {
	if r.X1 < bounds.Min.X || r.Y1 < bounds.Min.Y || r.X2 > bounds.Max.X || r.Y2 > bounds.Max.Y {
		return image.Rectangle{}, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			r.X1, r.Y1, r.X2, r.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return image.Rectangle{}, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
	}
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2), nil
}

// NamedRegion resolves a named part of bounds: "top-left", "top-right",
// "bottom-left", "bottom-right", "top-half", "bottom-half", "left-half",
// "right-half" or "center" (the middle 50% in each direction).
func NamedRegion(bounds image.Rectangle, name string) (Region, error) {
	x0, y0 := bounds.Min.X, bounds.Min.Y
	w, h := bounds.Dx(), bounds.Dy()
	midX, midY := x0+w/2, y0+h/2
	x1, y1 := bounds.Max.X, bounds.Max.Y

	switch name {
	case "top-left":
		return Region{x0, y0, midX, midY}, nil
	case "top-right":
		return Region{midX, y0, x1, midY}, nil
	case "bottom-left":
		return Region{x0, midY, midX, y1}, nil
	case "bottom-right":
		return Region{midX, midY, x1, y1}, nil
	case "top-half":
		return Region{x0, y0, x1, midY}, nil
	case "bottom-half":
		return Region{x0, midY, x1, y1}, nil
	case "left-half":
		return Region{x0, y0, midX, y1}, nil
	case "right-half":
		return Region{midX, y0, x1, y1}, nil
	case "center":
		qW, qH := w/4, h/4
		return Region{x0 + qW, y0 + qH, x1 - qW, y1 - qH}, nil
	default:
		return Region{}, fmt.Errorf("unknown region: %s", name)
	}
}

// FilterResult holds a filtered image encoded as base64 PNG.
type FilterResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// RenderOptions controls FilterImage.
type RenderOptions struct {
	// Region restricts filtering to part of the image; the output is the
	// cropped, filtered region. Nil filters the whole image.
	Region *Region

	// Scale resizes the filtered output (Lanczos). Zero or 1 keeps the size.
	Scale float64

	// Parallel splits the pixel loop across goroutines.
	Parallel bool
}

// FilterImage applies t to a copy of img and returns the result as PNG.
// img itself is never modified.
func FilterImage(img image.Image, t filter.Transform, opts RenderOptions) (*FilterResult, error) {
	if opts.Scale < 0 {
		return nil, fmt.Errorf("invalid scale %g: must be positive", opts.Scale)
	}

	src := img
	if opts.Region != nil {
		rect, err := opts.Region.Rect(img.Bounds())
		if err != nil {
			return nil, err
		}
		src = imaging.Crop(img, rect)
	}

	var out image.Image = filter.ApplyImage(src, t, opts.Parallel)

	if opts.Scale != 0 && opts.Scale != 1 {
		w := int(float64(out.Bounds().Dx()) * opts.Scale)
		h := int(float64(out.Bounds().Dy()) * opts.Scale)
		if w < 1 || h < 1 {
			return nil, fmt.Errorf("scale %g reduces %dx%d image to nothing", opts.Scale, out.Bounds().Dx(), out.Bounds().Dy())
		}
		out = imaging.Resize(out, w, h, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode filtered image: %w", err)
	}

	return &FilterResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
