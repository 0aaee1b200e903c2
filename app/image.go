package app

import (
	"errors"
	"fmt"

	"github.com/soocke/pixelview/ui/presenter"
)

// ImageUsage is printed after a bad invocation of the image viewer.
const ImageUsage = "usage: imageview [--config FILE] [--] <image path>"

// MsgImageNotFound is printed when the file cannot be read or decoded.
const MsgImageNotFound = "couldn't open or find the image file"

// RunImage shows the image at args[0], downscaled, until any key is pressed.
func (c *Container) RunImage(args []string) error {
	if len(args) != 1 {
		return c.ImageUsageError(fmt.Errorf("%w: expected 1 argument, got %d", ErrBadUsage, len(args)))
	}
	path := args[0]
	logger := c.Logger.With("component", "image", "path", path)

	img, err := c.Load(path)
	if err == nil && (img == nil || img.Bounds().Empty()) {
		err = errors.New("empty image")
	}
	if err != nil {
		logger.Error("load image", "error", err)
		fmt.Fprintln(c.Stdout, MsgImageNotFound)
		return fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, err)
	}

	win, err := c.NewWindow(c.Config.Image.WindowTitle)
	if err != nil {
		logger.Error("create window", "error", err)
		return fmt.Errorf("create window: %w", err)
	}
	p := presenter.NewImagePresenter(win, c.Config.Scale)
	p.Present(img)
	logger.Debug("image shown", "source", img.Bounds().Size(), "shown", p.Shown().Size())
	win.Run(0, nil, p.Key)
	win.Close()
	return nil
}

// ImageUsageError prints the usage message and returns err, which should
// wrap ErrBadUsage.
func (c *Container) ImageUsageError(err error) error {
	c.Logger.Debug("bad usage", "error", err)
	fmt.Fprintln(c.Stdout, "Bad usage")
	fmt.Fprintln(c.Stdout, ImageUsage)
	return err
}
