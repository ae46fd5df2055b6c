package planar

import "math"

// Luma weights (ITU-R BT.601).
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// Grayscale returns a new one-channel image holding the luminance
// 0.299*R + 0.587*G + 0.114*B of each pixel. The receiver must have exactly
// three channels and is not modified.
func (im *Image) Grayscale() (*Image, error) {
	if err := im.requireChannels("grayscale", 3); err != nil {
		return nil, err
	}
	gray, err := NewImage(im.Width, im.Height, 1)
	if err != nil {
		return nil, err
	}
	Logger().Debug("planar: grayscale", "width", im.Width, "height", im.Height)

	for y := range im.Height {
		for x := range im.Width {
			r := im.Pixel(x, y, 0)
			g := im.Pixel(x, y, 1)
			b := im.Pixel(x, y, 2)
			gray.SetPixel(x, y, 0, lumaR*r+lumaG*g+lumaB*b)
		}
	}
	return gray, nil
}

// RGBToHSV converts a three-channel RGB image to HSV in place.
// After the call channel 0 holds hue as a fraction of a full turn in [0,1),
// channel 1 saturation and channel 2 value.
//
// Hue is undefined for black and gray pixels; it is reported as 0.
func (im *Image) RGBToHSV() error {
	if err := im.requireChannels("rgb to hsv", 3); err != nil {
		return err
	}
	Logger().Debug("planar: rgb to hsv", "width", im.Width, "height", im.Height)

	for y := range im.Height {
		for x := range im.Width {
			h, s, v := RGBToHSV(im.Pixel(x, y, 0), im.Pixel(x, y, 1), im.Pixel(x, y, 2))
			im.SetPixel(x, y, 0, h)
			im.SetPixel(x, y, 1, s)
			im.SetPixel(x, y, 2, v)
		}
	}
	return nil
}

// HSVToRGB converts a three-channel HSV image, as produced by
// [Image.RGBToHSV], back to RGB in place.
func (im *Image) HSVToRGB() error {
	if err := im.requireChannels("hsv to rgb", 3); err != nil {
		return err
	}
	Logger().Debug("planar: hsv to rgb", "width", im.Width, "height", im.Height)

	for y := range im.Height {
		for x := range im.Width {
			r, g, b := HSVToRGB(im.Pixel(x, y, 0), im.Pixel(x, y, 1), im.Pixel(x, y, 2))
			im.SetPixel(x, y, 0, r)
			im.SetPixel(x, y, 1, g)
			im.SetPixel(x, y, 2, b)
		}
	}
	return nil
}

// RGBToHSV converts a single RGB triple to HSV.
// h is in [0,1), s and v are in [0,1] for inputs in [0,1].
//
// When the maximum component equals more than one channel, red wins over
// green and green over blue.
func RGBToHSV(r, g, b float32) (h, s, v float32) {
	fr, fg, fb := float64(r), float64(g), float64(b)

	maxc := max(fr, fg, fb)
	minc := min(fr, fg, fb)
	chroma := maxc - minc

	if maxc == 0 {
		return 0, 0, 0
	}
	sat := chroma / maxc
	if chroma == 0 {
		return 0, float32(sat), float32(maxc)
	}

	var h1 float64
	switch maxc {
	case fr:
		h1 = (fg - fb) / chroma
	case fg:
		h1 = 2 + (fb-fr)/chroma
	default:
		h1 = 4 + (fr-fg)/chroma
	}

	hue := h1 / 6
	if h1 < 0 {
		hue++
	}
	h = float32(hue)
	if h >= 1 {
		// -ε/6 + 1 can round up to a full turn.
		h = 0
	}
	return h, float32(sat), float32(maxc)
}

// HSVToRGB converts a single HSV triple to RGB.
// Hue outside [0,1) is wrapped, so 1 and 0 name the same color.
func HSVToRGB(h, s, v float32) (r, g, b float32) {
	hue := float64(h)
	hue -= math.Floor(hue)

	c := float64(s) * float64(v)
	m := float64(v) - c
	h1 := hue * 6
	x := c * (1 - math.Abs(math.Mod(h1, 2)-1))

	var fr, fg, fb float64
	switch {
	case h1 < 1:
		fr, fg, fb = c, x, 0
	case h1 < 2:
		fr, fg, fb = x, c, 0
	case h1 < 3:
		fr, fg, fb = 0, c, x
	case h1 < 4:
		fr, fg, fb = 0, x, c
	case h1 < 5:
		fr, fg, fb = x, 0, c
	default:
		fr, fg, fb = c, 0, x
	}

	return float32(fr + m), float32(fg + m), float32(fb + m)
}
