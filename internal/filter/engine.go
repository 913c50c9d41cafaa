package filter

import (
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"
)

// Apply runs t over every pixel of buf in row-major order, writing results
// back in place.
//
// buf must hold width*height pixels of 4 bytes each (R, G, B, A, not
// premultiplied). When it does not, ErrBufferSizeMismatch is returned and
// buf is left untouched.
func Apply(buf []uint8, width, height int, t Transform) error {
	if err := checkShape(buf, width, height); err != nil {
		return err
	}
	applyRows(buf, width, 0, height, t)
	return nil
}

// ApplyParallel behaves like Apply but splits the rows into contiguous
// ranges processed on separate goroutines. Each range is written by exactly
// one goroutine. The order in which pixels are visited is unspecified.
func ApplyParallel(buf []uint8, width, height int, t Transform) error {
	if err := checkShape(buf, width, height); err != nil {
		return err
	}
	parallel.Line(height, func(start, end int) {
		applyRows(buf, width, start, end, t)
	})
	return nil
}

// ApplyCopy returns a filtered copy of buf, leaving buf itself unchanged.
func ApplyCopy(buf []uint8, width, height int, t Transform) ([]uint8, error) {
	if err := checkShape(buf, width, height); err != nil {
		return nil, err
	}
	out := make([]uint8, len(buf))
	copy(out, buf)
	applyRows(out, width, 0, height, t)
	return out, nil
}

// ApplyImage converts img to NRGBA and filters the result. The source image
// is not modified.
func ApplyImage(img image.Image, t Transform, concurrent bool) *image.NRGBA {
	dst := imaging.Clone(img)
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	if concurrent {
		parallel.Line(h, func(start, end int) {
			applyRows(dst.Pix, w, start, end, t)
		})
	} else {
		applyRows(dst.Pix, w, 0, h, t)
	}
	return dst
}

func checkShape(buf []uint8, width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: negative dimensions %dx%d", ErrBufferSizeMismatch, width, height)
	}
	// width*height*4 must not overflow int.
	if width != 0 && height > math.MaxInt/4/width {
		return fmt.Errorf("%w: %dx%d exceeds addressable size", ErrBufferSizeMismatch, width, height)
	}
	if want := width * height * 4; len(buf) != want {
		return fmt.Errorf("%w: %dx%d needs %d bytes, got %d", ErrBufferSizeMismatch, width, height, want, len(buf))
	}
	return nil
}

// applyRows filters rows [start, end) of a tightly packed RGBA buffer.
func applyRows(buf []uint8, width, start, end int, t Transform) {
	stride := width * 4
	for i := start * stride; i < end*stride; i += 4 {
		px := t.UpdateChannels(Pixel{
			float64(buf[i]),
			float64(buf[i+1]),
			float64(buf[i+2]),
			float64(buf[i+3]),
		})
		for j := 0; j < 4; j++ {
			buf[i+j] = toChannel(px[j])
		}
	}
}

// toChannel stores a channel value into 8 bits: round half to even, then
// saturate. NaN stores as 0.
func toChannel(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(math.RoundToEven(v))
}
