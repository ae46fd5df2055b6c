package planar

// ShiftChannel adds delta to every sample of channel c.
// Values are not clamped and may leave [0,1]; call [Image.Clamp] afterwards
// if needed.
//
// Returns ErrChannelIndex without modifying the image if c is not a valid
// channel.
func (im *Image) ShiftChannel(c int, delta float32) error {
	if err := im.requireChannel("shift", c); err != nil {
		return err
	}
	Logger().Debug("planar: shift channel", "channel", c, "delta", delta)

	for y := range im.Height {
		for x := range im.Width {
			im.SetPixel(x, y, c, im.Pixel(x, y, c)+delta)
		}
	}
	return nil
}

// ScaleChannel multiplies every sample of channel c by factor.
// Like ShiftChannel, no clamping is performed.
func (im *Image) ScaleChannel(c int, factor float32) error {
	if err := im.requireChannel("scale", c); err != nil {
		return err
	}
	Logger().Debug("planar: scale channel", "channel", c, "factor", factor)

	for y := range im.Height {
		for x := range im.Width {
			im.SetPixel(x, y, c, im.Pixel(x, y, c)*factor)
		}
	}
	return nil
}

// Clamp limits every sample of every channel to [0, 1].
// NaN samples become 0. Clamp is idempotent.
func (im *Image) Clamp() {
	for c := range im.Channels {
		for y := range im.Height {
			for x := range im.Width {
				im.SetPixel(x, y, c, clampUnit(im.Pixel(x, y, c)))
			}
		}
	}
}

// clampUnit clamps v to [0, 1]. NaN maps to 0.
func clampUnit(v float32) float32 {
	if v > 1 {
		return 1
	}
	if v >= 0 {
		return v
	}
	// v < 0 or NaN
	return 0
}
