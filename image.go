package planar

import (
	"errors"
	"fmt"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width, height or channel count is non-positive.
	ErrInvalidDimensions = errors.New("planar: invalid dimensions")

	// ErrDataSize is returned when a buffer length does not match width*height*channels.
	ErrDataSize = errors.New("planar: data length does not match dimensions")

	// ErrChannelCount is returned when an operation needs a different number of channels.
	ErrChannelCount = errors.New("planar: unexpected channel count")

	// ErrChannelIndex is returned when a channel index is outside [0, Channels).
	ErrChannelIndex = errors.New("planar: invalid channel index")
)

// Image is a planar float32 image.
//
// Samples are stored channel-major, then row-major: all samples of channel 0
// come first, row by row, followed by channel 1 and so on. The sample for
// column x, row y, channel c lives at
//
//	Data[c*Width*Height + y*Width + x]
//
// len(Data) is always Width*Height*Channels. An Image exclusively owns Data
// unless it was built with [FromData].
//
// Thread safety: Image has no internal locking. Concurrent calls that mutate
// the same Image must be serialized by the caller.
type Image struct {
	Width    int
	Height   int
	Channels int
	Data     []float32
}

// NewImage allocates a zero-filled image with the given dimensions.
// Returns ErrInvalidDimensions if any dimension is non-positive.
func NewImage(width, height, channels int) (*Image, error) {
	if width <= 0 || height <= 0 || channels <= 0 {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrInvalidDimensions, width, height, channels)
	}
	return &Image{
		Width:    width,
		Height:   height,
		Channels: channels,
		Data:     make([]float32, width*height*channels),
	}, nil
}

// FromData wraps an existing planar buffer without copying.
// The returned Image shares data with the caller: writes through either are
// visible to both.
func FromData(data []float32, width, height, channels int) (*Image, error) {
	if width <= 0 || height <= 0 || channels <= 0 {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrInvalidDimensions, width, height, channels)
	}
	if len(data) != width*height*channels {
		return nil, fmt.Errorf("%w: got %d samples, want %d", ErrDataSize, len(data), width*height*channels)
	}
	return &Image{
		Width:    width,
		Height:   height,
		Channels: channels,
		Data:     data,
	}, nil
}

// Len returns the number of samples, Width*Height*Channels.
func (im *Image) Len() int {
	return im.Width * im.Height * im.Channels
}

// Clone returns a deep copy of the image. The copy owns a fresh buffer.
func (im *Image) Clone() *Image {
	data := make([]float32, len(im.Data))
	copy(data, im.Data)

	return &Image{
		Width:    im.Width,
		Height:   im.Height,
		Channels: im.Channels,
		Data:     data,
	}
}

// requireChannels reports ErrChannelCount unless the image has exactly n channels.
func (im *Image) requireChannels(op string, n int) error {
	if im.Channels != n {
		Logger().Warn("planar: rejected operation",
			"op", op, "channels", im.Channels, "want", n)
		return fmt.Errorf("%s: %w: have %d, want %d", op, ErrChannelCount, im.Channels, n)
	}
	return nil
}

// requireChannel reports ErrChannelIndex unless 0 <= c < Channels.
func (im *Image) requireChannel(op string, c int) error {
	if c < 0 || c >= im.Channels {
		Logger().Warn("planar: rejected operation",
			"op", op, "channel", c, "channels", im.Channels)
		return fmt.Errorf("%s: %w: %d not in [0,%d)", op, ErrChannelIndex, c, im.Channels)
	}
	return nil
}
