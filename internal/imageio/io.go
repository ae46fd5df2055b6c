// Package imageio moves images between files or streams and planar float32
// buffers. It is plumbing around the core planar package: decoded images
// come out with three color planes in [0,1] (four with alpha), and encoding
// clamps and quantises samples back to 8 bits.
//
// Supported formats: PNG, JPEG, BMP and TIFF for reading and writing, WebP
// for reading only.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/planar"
	"github.com/gogpu/planar/internal/color"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the file format cannot be read or written.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrUnsupportedChannels is returned when an image cannot be mapped to a codec pixel type.
	ErrUnsupportedChannels = errors.New("imageio: unsupported channel count")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imageio: empty data")
)

// Format names accepted by Encode.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
	FormatWebP = "webp"
)

// FormatFromPath returns the format name for a file extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	case ".webp":
		return FormatWebP, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads and decodes the image at path, auto-detecting the format.
func Load(path string, opts ...Option) (*planar.Image, string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f, opts...)
}

// Decode decodes an image from r, auto-detecting the format.
// It returns the planar image and the format name.
func Decode(r io.Reader, opts ...Option) (*planar.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
		}
		return nil, "", fmt.Errorf("imageio: decode: %w", err)
	}

	im, err := FromStdImage(img, opts...)
	if err != nil {
		return nil, "", err
	}
	planar.Logger().Debug("imageio: decoded",
		"format", format, "width", im.Width, "height", im.Height, "channels", im.Channels)
	return im, format, nil
}

// Save encodes im to path, choosing the format from the file extension.
func Save(path string, im *planar.Image, opts ...Option) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := Encode(f, im, format, opts...); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Encode writes im to w in the named format.
func Encode(w io.Writer, im *planar.Image, format string, opts ...Option) error {
	o := buildOptions(opts)

	img, err := toStdImage(im, o)
	if err != nil {
		return err
	}

	switch strings.ToLower(format) {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG, "jpg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: o.quality})
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF, "tif":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("%w: cannot encode %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", format, err)
	}

	planar.Logger().Debug("imageio: encoded",
		"format", format, "width", im.Width, "height", im.Height, "channels", im.Channels)
	return nil
}

// FromStdImage converts a standard library image to a planar image with three
// color channels, plus alpha when WithAlpha(true) is given.
func FromStdImage(img image.Image, opts ...Option) (*planar.Image, error) {
	o := buildOptions(opts)

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyData
	}

	channels := 3
	if o.alpha {
		channels = 4
	}
	im, err := planar.NewImage(width, height, channels)
	if err != nil {
		return nil, err
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(image.Rect(0, 0, width, height))
		xdraw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, xdraw.Src)
	}

	for y := range height {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := range width {
			px := row[x*4 : x*4+4]
			im.SetPixel(x, y, 0, o.space.Decode(px[0]))
			im.SetPixel(x, y, 1, o.space.Decode(px[1]))
			im.SetPixel(x, y, 2, o.space.Decode(px[2]))
			im.SetPixel(x, y, 3, color.ToUnit(px[3])) // dropped without WithAlpha
		}
	}
	return im, nil
}

// ToStdImage converts a planar image to a standard library image.
// One channel becomes *image.Gray; three or four become *image.NRGBA
// (opaque when there is no alpha plane).
func ToStdImage(im *planar.Image, opts ...Option) (image.Image, error) {
	return toStdImage(im, buildOptions(opts))
}

func toStdImage(im *planar.Image, o options) (image.Image, error) {
	rect := image.Rect(0, 0, im.Width, im.Height)

	switch im.Channels {
	case 1:
		gray := image.NewGray(rect)
		for y := range im.Height {
			for x := range im.Width {
				gray.Pix[y*gray.Stride+x] = o.space.Encode(im.Pixel(x, y, 0))
			}
		}
		return gray, nil

	case 3, 4:
		nrgba := image.NewNRGBA(rect)
		for y := range im.Height {
			for x := range im.Width {
				off := y*nrgba.Stride + x*4
				nrgba.Pix[off] = o.space.Encode(im.Pixel(x, y, 0))
				nrgba.Pix[off+1] = o.space.Encode(im.Pixel(x, y, 1))
				nrgba.Pix[off+2] = o.space.Encode(im.Pixel(x, y, 2))
				nrgba.Pix[off+3] = 255
				if im.Channels == 4 {
					nrgba.Pix[off+3] = color.ToByte(im.Pixel(x, y, 3))
				}
			}
		}
		return nrgba, nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedChannels, im.Channels)
	}
}
