package filter

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

// patternBuffer fills a width x height RGBA buffer with a deterministic
// non-uniform pattern.
func patternBuffer(width, height int) []uint8 {
	buf := make([]uint8, width*height*4)
	for i := range buf {
		buf[i] = uint8((i*37 + i/7) % 256)
	}
	return buf
}

func TestApply_Grayscale(t *testing.T) {
	buf := []uint8{200, 100, 50, 255}
	g := mustFilter(t)(NewGrayscale(DefaultGrayscale()))

	if err := Apply(buf, 1, 1, g); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	// 131.25 rounds to 131
	if want := []uint8{131, 131, 131, 255}; !bytes.Equal(buf, want) {
		t.Errorf("got %v, want %v", buf, want)
	}
}

func TestApply_SepiaRed(t *testing.T) {
	buf := []uint8{255, 0, 0, 255}
	if err := Apply(buf, 1, 1, NewSepia()); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if want := []uint8{100, 89, 69, 255}; !bytes.Equal(buf, want) {
		t.Errorf("got %v, want %v", buf, want)
	}
}

func TestApply_RowMajorAllPixels(t *testing.T) {
	width, height := 3, 2
	buf := make([]uint8, width*height*4)
	var visited []Pixel
	record := TransformFunc(func(p Pixel) Pixel {
		visited = append(visited, p)
		return Pixel{p[0], p[1], p[2], 9}
	})
	for i := 0; i < width*height; i++ {
		buf[i*4] = uint8(i)
	}

	if err := Apply(buf, width, height, record); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(visited) != width*height {
		t.Fatalf("visited %d pixels, want %d", len(visited), width*height)
	}
	for i, p := range visited {
		if p[0] != float64(i) {
			t.Errorf("pixel %d visited out of order: %v", i, p)
		}
		if buf[i*4+3] != 9 {
			t.Errorf("pixel %d alpha not written back", i)
		}
	}
}

func TestApply_GrayscaleIdempotentOnBuffer(t *testing.T) {
	g := mustFilter(t)(NewGrayscale(DefaultGrayscale()))
	buf := patternBuffer(8, 5)

	if err := Apply(buf, 8, 5, g); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	once := append([]uint8(nil), buf...)
	if err := Apply(buf, 8, 5, g); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !bytes.Equal(once, buf) {
		t.Error("second grayscale pass changed the buffer")
	}
}

func TestApply_SizeMismatch(t *testing.T) {
	tests := []struct {
		name          string
		length        int
		width, height int
	}{
		{"too short", 15, 2, 2},
		{"too long", 17, 2, 2},
		{"not multiple of four", 6, 1, 1},
		{"negative width", 0, -1, 0},
		{"empty buffer nonzero size", 0, 1, 1},
		{"byte count overflows", 4, 1, math.MaxInt/4 + 1},
		{"wide and tall overflow", 4, math.MaxInt / 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]uint8, tt.length)
			for i := range buf {
				buf[i] = 7
			}

			for name, apply := range map[string]func([]uint8, int, int, Transform) error{
				"Apply":         Apply,
				"ApplyParallel": ApplyParallel,
			} {
				err := apply(buf, tt.width, tt.height, NewInvert())
				if !errors.Is(err, ErrBufferSizeMismatch) {
					t.Errorf("%s: got %v, want ErrBufferSizeMismatch", name, err)
				}
			}
			for i, v := range buf {
				if v != 7 {
					t.Fatalf("byte %d mutated to %d", i, v)
				}
			}
			if _, err := ApplyCopy(buf, tt.width, tt.height, NewInvert()); !errors.Is(err, ErrBufferSizeMismatch) {
				t.Errorf("ApplyCopy: got %v, want ErrBufferSizeMismatch", err)
			}
		})
	}
}

func TestApply_EmptyBuffer(t *testing.T) {
	if err := Apply(nil, 0, 0, NewInvert()); err != nil {
		t.Errorf("Apply on 0x0: %v", err)
	}
	if err := ApplyParallel([]uint8{}, 10, 0, NewInvert()); err != nil {
		t.Errorf("ApplyParallel on 10x0: %v", err)
	}
}

func TestApplyParallel_MatchesSequential(t *testing.T) {
	hue := mustFilter(t)(NewHSLAdjust(HSLAdjustConfig{Adjustments: []float64{90, 0.1, -0.05}}))
	chain := NewChain([]Transform{hue, NewSepia(), mustFilter(t)(NewContrast(ContrastConfig{Contrast: 40}))})

	for _, size := range [][2]int{{1, 1}, {37, 23}, {64, 129}} {
		w, h := size[0], size[1]
		seq := patternBuffer(w, h)
		par := patternBuffer(w, h)

		if err := Apply(seq, w, h, chain); err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
		if err := ApplyParallel(par, w, h, chain); err != nil {
			t.Fatalf("ApplyParallel failed: %v", err)
		}
		if !bytes.Equal(seq, par) {
			t.Errorf("%dx%d: parallel result differs from sequential", w, h)
		}
	}
}

func TestApplyCopy_LeavesInput(t *testing.T) {
	src := patternBuffer(4, 4)
	orig := append([]uint8(nil), src...)

	out, err := ApplyCopy(src, 4, 4, NewInvert())
	if err != nil {
		t.Fatalf("ApplyCopy failed: %v", err)
	}
	if !bytes.Equal(src, orig) {
		t.Error("ApplyCopy mutated its input")
	}
	for i := 0; i < len(out); i += 4 {
		if out[i] != 255-orig[i] || out[i+3] != 255 {
			t.Fatalf("pixel %d: got %v", i/4, out[i:i+4])
		}
	}
}

func TestApplyImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 14, 13))
	for y := 10; y < 13; y++ {
		for x := 10; x < 14; x++ {
			src.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}

	for _, concurrent := range []bool{false, true} {
		out := ApplyImage(src, NewInvert(), concurrent)
		if out.Bounds().Dx() != 4 || out.Bounds().Dy() != 3 {
			t.Fatalf("bounds: got %v", out.Bounds())
		}
		c := out.NRGBAAt(out.Bounds().Min.X+1, out.Bounds().Min.Y+1)
		if c != (color.NRGBA{0, 255, 255, 255}) {
			t.Errorf("concurrent=%v: got %v, want cyan", concurrent, c)
		}
	}

	if got := src.RGBAAt(11, 11); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("source mutated: %v", got)
	}
}

func TestToChannel(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{0, 0},
		{-3, 0},
		{300, 255},
		{255, 255},
		{106.25, 106},
		{106.5, 106},
		{107.5, 108},
		{100.215, 100},
		{math.NaN(), 0},
		{math.Inf(1), 255},
		{math.Inf(-1), 0},
	}
	for _, tt := range tests {
		if got := toChannel(tt.in); got != tt.want {
			t.Errorf("toChannel(%v): got %d, want %d", tt.in, got, tt.want)
		}
	}
}

func BenchmarkApply(b *testing.B) {
	buf := patternBuffer(256, 256)
	hue, _ := NewHSLAdjust(DefaultHSLAdjust())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Apply(buf, 256, 256, hue)
	}
}

func BenchmarkApplyParallel(b *testing.B) {
	buf := patternBuffer(256, 256)
	hue, _ := NewHSLAdjust(DefaultHSLAdjust())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ApplyParallel(buf, 256, 256, hue)
	}
}
