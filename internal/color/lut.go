package color

import "math"

// sRGBToLinearLUT maps sRGB bytes [0-255] to linear float32 [0.0-1.0].
var sRGBToLinearLUT [256]float32

// linearToSRGBLUT maps 12-bit linear values to sRGB bytes.
// 4096 entries are enough for 8-bit sRGB output.
var linearToSRGBLUT [4096]uint8

func init() {
	for i := range 256 {
		s := float64(i) / 255.0
		var linear float64
		if s <= 0.04045 {
			linear = s / 12.92
		} else {
			linear = math.Pow((s+0.055)/1.055, 2.4)
		}
		sRGBToLinearLUT[i] = float32(linear)
	}

	for i := range 4096 {
		linear := float64(i) / 4095.0
		var s float64
		if linear <= 0.0031308 {
			s = linear * 12.92
		} else {
			s = 1.055*math.Pow(linear, 1.0/2.4) - 0.055
		}
		srgb := min(max(int(s*255.0+0.5), 0), 255)
		//nolint:gosec // G115: srgb is clamped to [0,255] range
		linearToSRGBLUT[i] = uint8(srgb)
	}
}

// SRGBToLinearFast converts an sRGB byte to linear float32 using a lookup table.
//
// Example:
//
//	r := SRGBToLinearFast(128) // ~0.2159 (not 0.5!)
func SRGBToLinearFast(s uint8) float32 {
	return sRGBToLinearLUT[s]
}

// LinearToSRGBFast converts linear float32 to an sRGB byte using a lookup table.
// Input is clamped to [0.0, 1.0]; NaN maps to 0.
//
// Example:
//
//	s := LinearToSRGBFast(0.5) // 188 (not 128!)
func LinearToSRGBFast(l float32) uint8 {
	if !(l > 0) {
		return linearToSRGBLUT[0]
	}
	if l > 1 {
		l = 1
	}
	index := min(int(l*4095.0+0.5), 4095)
	return linearToSRGBLUT[index]
}
