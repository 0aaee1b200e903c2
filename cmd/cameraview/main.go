package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/soocke/pixelview/app"
	"github.com/soocke/pixelview/config"
	"github.com/soocke/pixelview/debug"
	"github.com/soocke/pixelview/ui/view"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var (
		cfgPath string
		ran     bool
	)
	cmd := &cobra.Command{
		Use:           "cameraview [--config FILE] <camera index 0-9>",
		Short:         "Show a downscaled live view of a V4L2 camera until Escape is pressed",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ran = true
			cfg, err := config.Load(cfgPath)
			logger := app.NewLogger(os.Stderr, cfg.Logging)
			if err != nil {
				logger.Warn("config load failed, using defaults", "path", cfgPath, "error", err)
			}
			if cfg.Debug {
				ctx, cancel := context.WithCancel(context.Background())
				defer cancel()
				debug.StartGoroutineLogger(ctx, time.Second, logger.With("component", "debug"))
				debug.StartMemLogger(ctx, 2*time.Second, logger.With("component", "debug"))
			}
			return app.BuildContainer(cfg, logger, view.NewWindow).RunCamera(args)
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", config.DefaultPath, "path to the YAML configuration file")
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	if !ran {
		// Flag parsing failed or help was requested; the viewer never ran.
		if err != nil {
			fmt.Fprintln(os.Stdout, "Bad Usage")
			fmt.Fprintln(os.Stdout, app.CameraUsage)
		}
		return app.ExitBadUsage
	}
	return app.ExitCode(err)
}
