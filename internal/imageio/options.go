package imageio

import "github.com/gogpu/planar/internal/color"

// DefaultJPEGQuality is used when WithJPEGQuality is not given.
const DefaultJPEGQuality = 90

// Option configures decoding and encoding.
//
// Example:
//
//	im, _, err := imageio.Load("in.png", imageio.WithAlpha(true), imageio.WithLinear(true))
type Option func(*options)

// options holds optional codec configuration.
type options struct {
	alpha   bool
	space   color.ColorSpace
	quality int
}

// defaultOptions returns the default codec options: drop alpha, keep sRGB
// samples as stored, JPEG quality 90.
func defaultOptions() options {
	return options{
		alpha:   false,
		space:   color.ColorSpaceSRGB,
		quality: DefaultJPEGQuality,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithAlpha keeps the alpha plane as a fourth channel on decode.
// Alpha is never gamma-decoded.
func WithAlpha(keep bool) Option {
	return func(o *options) {
		o.alpha = keep
	}
}

// WithLinear converts color samples from sRGB to linear light on decode and
// back on encode.
func WithLinear(linear bool) Option {
	return func(o *options) {
		if linear {
			o.space = color.ColorSpaceLinear
		} else {
			o.space = color.ColorSpaceSRGB
		}
	}
}

// WithJPEGQuality sets the JPEG encoder quality, clamped to 1..100.
func WithJPEGQuality(q int) Option {
	return func(o *options) {
		o.quality = min(max(q, 1), 100)
	}
}
