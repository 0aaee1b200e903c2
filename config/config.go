package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory when no
// --config flag is given.
const DefaultPath = "pixelview.yaml"

// Capture source names accepted in camera.source.
const (
	SourceV4L2   = "v4l2"
	SourceOpenCV = "opencv"
	SourceScreen = "screen"
)

// Config holds runtime configuration shared by both viewers.
// Fields may be loaded from a YAML file; missing keys keep their defaults.
type Config struct {
	Debug bool `yaml:"debug"`

	// Scale is applied to both axes of every displayed image.
	Scale float64 `yaml:"scale"`
	// PollInterval bounds each key poll of the camera loop.
	PollInterval time.Duration `yaml:"poll_interval"`

	Camera  CameraConfig  `yaml:"camera"`
	Image   ImageConfig   `yaml:"image"`
	Logging LoggingConfig `yaml:"logging"`
}

// CameraConfig configures the camera viewer.
type CameraConfig struct {
	Source      string        `yaml:"source"`       // v4l2, opencv or screen
	WindowTitle string        `yaml:"window_title"` // title of the preview window
	PixelFormat string        `yaml:"pixel_format"` // FourCC such as MJPG or YUYV; empty picks automatically
	Width       int           `yaml:"width"`        // requested frame width, 0 = largest supported
	Height      int           `yaml:"height"`       // requested frame height, 0 = largest supported
	ReadTimeout time.Duration `yaml:"read_timeout"` // a frame not delivered within this is a disconnect
}

// ImageConfig configures the image viewer.
type ImageConfig struct {
	WindowTitle string `yaml:"window_title"`
}

// LoggingConfig selects the structured log level and format.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:        false,
		Scale:        0.3,
		PollInterval: 10 * time.Millisecond,
		Camera: CameraConfig{
			Source:      SourceV4L2,
			WindowTitle: "My Camera",
			ReadTimeout: 5 * time.Second,
		},
		Image: ImageConfig{
			WindowTitle: "image test",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.Scale <= 0 || c.Scale > 1 {
		c.Scale = 0.3
	}
	if c.PollInterval <= 0 {
		c.PollInterval = 10 * time.Millisecond
	}
	switch strings.ToLower(c.Camera.Source) {
	case SourceV4L2, SourceOpenCV, SourceScreen:
		c.Camera.Source = strings.ToLower(c.Camera.Source)
	default:
		c.Camera.Source = SourceV4L2
	}
	if c.Camera.WindowTitle == "" {
		c.Camera.WindowTitle = "My Camera"
	}
	c.Camera.PixelFormat = strings.ToUpper(strings.TrimSpace(c.Camera.PixelFormat))
	if len(c.Camera.PixelFormat) != 4 {
		c.Camera.PixelFormat = ""
	}
	if c.Camera.Width < 0 || c.Camera.Height < 0 || (c.Camera.Width == 0) != (c.Camera.Height == 0) {
		c.Camera.Width, c.Camera.Height = 0, 0
	}
	if c.Camera.ReadTimeout < time.Second {
		c.Camera.ReadTimeout = 5 * time.Second
	}
	if c.Image.WindowTitle == "" {
		c.Image.WindowTitle = "image test"
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
		c.Logging.Level = strings.ToLower(c.Logging.Level)
	default:
		c.Logging.Level = "info"
	}
	if c.Logging.Format != "json" {
		c.Logging.Format = "text"
	}
	return nil
}

// Load attempts to read configuration from the given YAML file path. If the file does not
// exist it returns DefaultConfig(). On YAML error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in YAML format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
