package planar

// offset returns the index of sample (x, y, c) in Data.
// Returns -1 if any coordinate is out of bounds.
func (im *Image) offset(x, y, c int) int {
	if x < 0 || x >= im.Width || y < 0 || y >= im.Height || c < 0 || c >= im.Channels {
		return -1
	}
	return c*im.Width*im.Height + y*im.Width + x
}

// Pixel returns the sample at column x, row y, channel c.
// Out-of-range coordinates read as 0; this is not an error.
func (im *Image) Pixel(x, y, c int) float32 {
	i := im.offset(x, y, c)
	if i < 0 {
		return 0
	}
	return im.Data[i]
}

// SetPixel writes v at column x, row y, channel c.
// Writes to out-of-range coordinates are dropped.
func (im *Image) SetPixel(x, y, c int, v float32) {
	i := im.offset(x, y, c)
	if i < 0 {
		return
	}
	im.Data[i] = v
}
