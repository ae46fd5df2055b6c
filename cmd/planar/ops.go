package main

import (
	"fmt"
	"slices"

	"github.com/gogpu/planar"
)

// opFunc applies one command to a decoded image and returns the image to save.
type opFunc func(im *planar.Image, cfg config) (*planar.Image, error)

var ops = map[string]opFunc{
	"copy":     opCopy,
	"gray":     opGray,
	"shift":    opShift,
	"scale":    opScale,
	"clamp":    opClamp,
	"hsv":      opHSV,
	"rgb":      opRGB,
	"saturate": opSaturate,
}

func opNames() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func opCopy(im *planar.Image, _ config) (*planar.Image, error) {
	return im.Clone(), nil
}

// colorPlanes returns a three-channel view of im, splitting off alpha when
// present. Color conversions reject four-channel images.
func colorPlanes(im *planar.Image) (*planar.Image, error) {
	if im.Channels != 4 {
		return im, nil
	}
	n := im.Width * im.Height * 3
	return planar.FromData(im.Data[:n], im.Width, im.Height, 3)
}

func opGray(im *planar.Image, _ config) (*planar.Image, error) {
	rgb, err := colorPlanes(im)
	if err != nil {
		return nil, err
	}
	return rgb.Grayscale()
}

func opShift(im *planar.Image, cfg config) (*planar.Image, error) {
	if err := im.ShiftChannel(cfg.channel, float32(cfg.amount)); err != nil {
		return nil, err
	}
	im.Clamp()
	return im, nil
}

func opScale(im *planar.Image, cfg config) (*planar.Image, error) {
	if err := im.ScaleChannel(cfg.channel, float32(cfg.amount)); err != nil {
		return nil, err
	}
	im.Clamp()
	return im, nil
}

func opClamp(im *planar.Image, _ config) (*planar.Image, error) {
	im.Clamp()
	return im, nil
}

// opHSV writes HSV planes as if they were RGB, which is useful for
// inspecting hue, saturation and value side by side.
func opHSV(im *planar.Image, _ config) (*planar.Image, error) {
	rgb, err := colorPlanes(im)
	if err != nil {
		return nil, err
	}
	if err := rgb.RGBToHSV(); err != nil {
		return nil, err
	}
	return im, nil
}

// opRGB is the inverse of opHSV.
func opRGB(im *planar.Image, _ config) (*planar.Image, error) {
	rgb, err := colorPlanes(im)
	if err != nil {
		return nil, err
	}
	if err := rgb.HSVToRGB(); err != nil {
		return nil, err
	}
	return im, nil
}

func opSaturate(im *planar.Image, cfg config) (*planar.Image, error) {
	if cfg.amount < 0 {
		return nil, fmt.Errorf("%w: saturation factor %v is negative", errUsage, cfg.amount)
	}
	rgb, err := colorPlanes(im)
	if err != nil {
		return nil, err
	}
	if err := rgb.RGBToHSV(); err != nil {
		return nil, err
	}
	if err := rgb.ScaleChannel(1, float32(cfg.amount)); err != nil {
		return nil, err
	}
	rgb.Clamp()
	if err := rgb.HSVToRGB(); err != nil {
		return nil, err
	}
	return im, nil
}
