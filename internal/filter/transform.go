package filter

import "errors"

// DefaultOpacity is the alpha value every transform writes before its own
// channel update unless configured otherwise.
const DefaultOpacity = 255

var (
	// ErrInvalidTransformParameter is returned when a transform is
	// constructed with parameters it cannot apply.
	ErrInvalidTransformParameter = errors.New("invalid transform parameter")

	// ErrBufferSizeMismatch is returned when a buffer's length does not
	// equal width*height*4.
	ErrBufferSizeMismatch = errors.New("buffer size mismatch")
)

// Pixel holds one pixel's R, G, B and A channels.
type Pixel [4]float64

// Transform updates the channels of a single pixel.
//
// Implementations must be pure: the result depends only on the input pixel
// and the transform's construction-time parameters.
type Transform interface {
	UpdateChannels(p Pixel) Pixel
}

// TransformFunc adapts a plain function to the Transform interface.
// No opacity override is applied.
type TransformFunc func(p Pixel) Pixel

// UpdateChannels calls f(p).
func (f TransformFunc) UpdateChannels(p Pixel) Pixel {
	return f(p)
}

// Option configures behavior shared by all transforms.
type Option func(*options)

type options struct {
	opacity float64
}

// WithOpacity sets the alpha value forced onto every pixel before the
// transform's own update.
func WithOpacity(opacity float64) Option {
	return func(o *options) {
		o.opacity = opacity
	}
}

func buildOptions(opts []Option) options {
	o := options{opacity: DefaultOpacity}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Filter is a named channel transform wrapped with the opacity override.
type Filter struct {
	name    string
	opacity float64
	update  func(Pixel) Pixel
}

func newFilter(name string, update func(Pixel) Pixel, opts []Option) *Filter {
	return &Filter{
		name:    name,
		opacity: buildOptions(opts).opacity,
		update:  update,
	}
}

// UpdateChannels forces alpha to the configured opacity, then applies the
// variant's channel update.
func (f *Filter) UpdateChannels(p Pixel) Pixel {
	p[3] = f.opacity
	return f.update(p)
}

// Name returns the variant name, e.g. "grayscale".
func (f *Filter) Name() string {
	return f.name
}

// Opacity returns the alpha value forced onto each pixel.
func (f *Filter) Opacity() float64 {
	return f.opacity
}
