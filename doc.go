// Package planar provides a small image-manipulation library over planar
// float32 pixel buffers.
//
// # Overview
//
// An [Image] stores every channel as a contiguous plane of Width*Height
// samples. All access goes through [Image.Pixel] and [Image.SetPixel], which
// treat out-of-range coordinates as a no-op: reads return 0 and writes are
// dropped.
//
// # Quick Start
//
//	im, _ := planar.NewImage(640, 480, 3)
//	im.SetPixel(10, 20, 0, 1) // red
//
//	_ = im.ShiftChannel(1, 0.2) // brighten green
//	im.Clamp()
//
//	_ = im.RGBToHSV()
//	_ = im.ScaleChannel(1, 1.5) // saturate
//	im.Clamp()
//	_ = im.HSVToRGB()
//
//	gray, _ := im.Grayscale()
//
// # Color Conversions
//
// HSV images keep hue in channel 0 as a fraction of a full turn in [0,1),
// saturation in channel 1 and value in channel 2. Hue of black and gray
// pixels is reported as 0.
//
// # Errors
//
// Operations that need a particular channel layout return [ErrChannelCount]
// or [ErrChannelIndex] and leave the image unchanged.
//
// # Concurrency
//
// All operations are synchronous and single-threaded. An Image must not be
// mutated from several goroutines at once.
//
// Decoding and encoding files is outside this package; see internal/imageio
// and cmd/planar.
package planar

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
