// Package color provides sample quantisation and transfer functions used
// when moving pixels between 8-bit codecs and planar float32 images.
package color

// ColorSpace names the encoding of the RGB samples held in a planar image.
type ColorSpace uint8

const (
	// ColorSpaceSRGB keeps samples gamma-encoded, as stored by most codecs.
	ColorSpaceSRGB ColorSpace = iota
	// ColorSpaceLinear holds samples in linear light.
	ColorSpaceLinear
)

// String returns a string representation of the color space.
func (cs ColorSpace) String() string {
	switch cs {
	case ColorSpaceSRGB:
		return "sRGB"
	case ColorSpaceLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// Decode maps an 8-bit codec sample to a float32 in [0,1] in this color space.
// Alpha must not go through Decode; use [ToUnit].
func (cs ColorSpace) Decode(s uint8) float32 {
	if cs == ColorSpaceLinear {
		return SRGBToLinearFast(s)
	}
	return ToUnit(s)
}

// Encode maps a float32 sample in this color space back to an 8-bit codec
// sample, clamping to [0,1] first.
func (cs ColorSpace) Encode(v float32) uint8 {
	if cs == ColorSpaceLinear {
		return LinearToSRGBFast(v)
	}
	return ToByte(v)
}
