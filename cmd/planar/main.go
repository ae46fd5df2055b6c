// Command planar applies planar image operations to an image file.
//
// Usage:
//
//	planar -in photo.png -out gray.png -op gray
//	planar -in photo.jpg -out warm.png -op shift -channel 0 -amount 0.1
//	planar -in photo.png -out vivid.png -op saturate -amount 1.5 -v
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/planar"
	"github.com/gogpu/planar/internal/imageio"
)

// errUsage marks invalid command-line input.
var errUsage = errors.New("usage")

type config struct {
	in      string
	out     string
	op      string
	channel int
	amount  float64
	alpha   bool
	linear  bool
	quality int
	verbose bool
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("planar failed", "err", err)
		}
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("planar", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.in, "in", "", "input image (png, jpeg, bmp, tiff, webp)")
	fs.StringVar(&cfg.out, "out", "", "output image (png, jpeg, bmp, tiff)")
	fs.StringVar(&cfg.op, "op", "copy", "operation: "+strings.Join(opNames(), ", "))
	fs.IntVar(&cfg.channel, "channel", 0, "channel index for shift and scale")
	fs.Float64Var(&cfg.amount, "amount", 0, "delta for shift, factor for scale and saturate")
	fs.BoolVar(&cfg.alpha, "alpha", false, "keep the alpha plane as a fourth channel")
	fs.BoolVar(&cfg.linear, "linear", false, "process in linear light instead of sRGB")
	fs.IntVar(&cfg.quality, "quality", imageio.DefaultJPEGQuality, "JPEG quality (1-100)")
	fs.BoolVar(&cfg.verbose, "v", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.in == "" || cfg.out == "" {
		return cfg, fmt.Errorf("%w: -in and -out are required", errUsage)
	}
	if _, ok := ops[cfg.op]; !ok {
		return cfg, fmt.Errorf("%w: unknown -op %q", errUsage, cfg.op)
	}
	return cfg, nil
}

func run(args []string, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if cfg.verbose {
		planar.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer planar.SetLogger(nil)
	}

	codecOpts := []imageio.Option{
		imageio.WithAlpha(cfg.alpha),
		imageio.WithLinear(cfg.linear),
		imageio.WithJPEGQuality(cfg.quality),
	}

	im, format, err := imageio.Load(cfg.in, codecOpts...)
	if err != nil {
		return err
	}
	planar.Logger().Info("loaded", "path", cfg.in, "format", format,
		"width", im.Width, "height", im.Height, "channels", im.Channels)

	out, err := ops[cfg.op](im, cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.op, err)
	}

	if err := imageio.Save(cfg.out, out, codecOpts...); err != nil {
		return err
	}
	planar.Logger().Info("saved", "path", cfg.out, "op", cfg.op)
	return nil
}
