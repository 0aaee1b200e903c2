package app

import (
	"image"
	"io"
	"log/slog"
	"os"

	"github.com/soocke/pixelview/config"
	"github.com/soocke/pixelview/domain/capture"
	"github.com/soocke/pixelview/domain/display"
	"github.com/soocke/pixelview/domain/terminal"
	"github.com/soocke/pixelview/ui/images"
	"github.com/soocke/pixelview/ui/presenter"
)

// Opener opens a capture source. capture.Open satisfies it.
type Opener func(backend string, index int, opts capture.Options) (capture.Source, error)

// Loader decodes an image file. images.Load satisfies it.
type Loader func(path string) (image.Image, error)

// Container holds everything the viewers touch outside their own logic.
// Fields may be replaced before running, tests swap in fakes.
type Container struct {
	Config    *config.Config
	Logger    *slog.Logger
	Open      Opener
	Load      Loader
	NewWindow display.Factory
	Console   presenter.KeyWaiter
	Stdout    io.Writer
}

// BuildContainer wires the production dependencies. newWindow comes from
// the caller so that this package stays independent of the GUI toolkit.
func BuildContainer(cfg *config.Config, logger *slog.Logger, newWindow display.Factory) *Container {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Container{
		Config:    cfg,
		Logger:    logger,
		Open:      capture.Open,
		Load:      images.Load,
		NewWindow: newWindow,
		Console:   terminal.New(os.Stdin),
		Stdout:    os.Stdout,
	}
}
