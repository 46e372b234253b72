package main

import (
	"errors"
	"fmt"
	"github.com/disintegration/imaging"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"illini/hsla"
	"os"
)

const usage = `Usage: illini [flags] <infile> <outfile>
Examples:
	illini input.png gray.png
	illini -t spotlight -x 120 -y 80 input.png spot.jpg
	illini -t illinify input.png illini.png
	illini -t watermark -s stencil.png input.png marked.png

Flags:`

var (
	errUnknownTransform = errors.New("unknown transform")
	errMissingStencil   = errors.New("the watermark transform needs a stencil image")
)

type config struct {
	transform string
	centerX   int
	centerY   int
	stencil   string
	input     string
	output    string
}

func main() {
	transform := flag.StringP("transform", "t", "grayscale", "grayscale, spotlight, illinify or watermark")
	centerX := flag.IntP("center-x", "x", 0, "spotlight center x")
	centerY := flag.IntP("center-y", "y", 0, "spotlight center y")
	stencil := flag.StringP("stencil", "s", "", "stencil image for watermark")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() != 2 {
		printUsage()
		return
	}

	logger := newLogger(*debug)
	defer logger.Sync()

	cfg := config{
		transform: *transform,
		centerX:   *centerX,
		centerY:   *centerY,
		stencil:   *stencil,
		input:     flag.Arg(0),
		output:    flag.Arg(1),
	}
	err := run(cfg, logger)
	if errors.Is(err, imaging.ErrUnsupportedFormat) {
		fmt.Println("The only supported formats are png, jpeg, gif, bmp & tiff")
		logger.Sync()
		os.Exit(1)
	}
	if err != nil {
		logger.Fatal("Could not transform the image", zap.Error(err))
	}
}

func printUsage() {
	fmt.Println(usage)
	flag.PrintDefaults()
}

func newLogger(debug bool) *zap.Logger {
	var logger *zap.Logger
	var err error
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func run(cfg config, logger *zap.Logger) error {
	img, err := openImage(cfg.input)
	if err != nil {
		return fmt.Errorf("could not open the input image: %w", err)
	}
	logger.Debug("Opened the input image",
		zap.String("file", cfg.input),
		zap.Int("width", img.Width),
		zap.Int("height", img.Height))

	img, err = apply(cfg, img, logger)
	if err != nil {
		return err
	}

	err = imaging.Save(img, cfg.output)
	if err != nil {
		return fmt.Errorf("could not save the output image: %w", err)
	}
	logger.Info("Transformed the image",
		zap.String("transform", cfg.transform),
		zap.String("input", cfg.input),
		zap.String("output", cfg.output))
	return nil
}

func apply(cfg config, img *hsla.Image, logger *zap.Logger) (*hsla.Image, error) {
	switch cfg.transform {
	case "grayscale":
		return hsla.Grayscale(img), nil
	case "spotlight":
		logger.Debug("Spotlight center", zap.Int("x", cfg.centerX), zap.Int("y", cfg.centerY))
		return hsla.Spotlight(img, cfg.centerX, cfg.centerY), nil
	case "illinify":
		return hsla.Illinify(img), nil
	case "watermark":
		if cfg.stencil == "" {
			return nil, errMissingStencil
		}
		stencil, err := openImage(cfg.stencil)
		if err != nil {
			return nil, fmt.Errorf("could not open the stencil image: %w", err)
		}
		if stencil.Width != img.Width || stencil.Height != img.Height {
			logger.Debug("Stencil and image sizes differ, only the overlap is watermarked",
				zap.Int("stencilWidth", stencil.Width),
				zap.Int("stencilHeight", stencil.Height))
		}
		return hsla.Watermark(img, stencil), nil
	default:
		return nil, fmt.Errorf("%w %q", errUnknownTransform, cfg.transform)
	}
}

func openImage(filename string) (*hsla.Image, error) {
	img, err := imaging.Open(filename)
	if err != nil {
		return nil, err
	}
	return hsla.FromImage(img), nil
}
