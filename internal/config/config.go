// Package config holds the panel command's settings. Values come from
// defaults, an optional panel.yaml, PANEL_* environment variables and flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration.
type Config struct {
	Viewport    ViewportConfig `mapstructure:"viewport" yaml:"viewport"`
	Output      OutputConfig   `mapstructure:"output" yaml:"output"`
	Render      RenderConfig   `mapstructure:"render" yaml:"render"`
	Logger      LoggerConfig   `mapstructure:"logger" yaml:"logger"`
	Trace       TraceConfig    `mapstructure:"trace" yaml:"trace"`
	Watch       WatchConfig    `mapstructure:"watch" yaml:"watch"`
	Concurrency int            `mapstructure:"concurrency" yaml:"concurrency"`
}

// ViewportConfig is the space offered to each document's root. Zero means
// unbounded on that axis.
type ViewportConfig struct {
	Width  float64 `mapstructure:"width" yaml:"width"`
	Height float64 `mapstructure:"height" yaml:"height"`
}

// Extent returns the viewport as layout input: zero becomes +Inf.
func (v ViewportConfig) Extent() (width, height float64) {
	width, height = v.Width, v.Height
	if width == 0 {
		width = math.Inf(1)
	}
	if height == 0 {
		height = math.Inf(1)
	}
	return width, height
}

// OutputConfig controls how layout results are printed.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"` // text, json or yaml
}

// RenderConfig controls the render and watch commands.
type RenderConfig struct {
	Format     string   `mapstructure:"format" yaml:"format"` // png or html
	Dir        string   `mapstructure:"dir" yaml:"dir"`
	Scale      float64  `mapstructure:"scale" yaml:"scale"`
	Background string   `mapstructure:"background" yaml:"background"`
	Palette    []string `mapstructure:"palette" yaml:"palette"`
	Stroke     string   `mapstructure:"stroke" yaml:"stroke"`
	LineWidth  float64  `mapstructure:"line_width" yaml:"line_width"`
	Labels     bool     `mapstructure:"labels" yaml:"labels"`
	Clip       bool     `mapstructure:"clip" yaml:"clip"`
}

// LoggerConfig configures the command's own log.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// TraceConfig turns on the layout engine's diagnostic log.
type TraceConfig struct {
	Enabled bool     `mapstructure:"enabled" yaml:"enabled"`
	Mute    []string `mapstructure:"mute" yaml:"mute"`
}

// WatchConfig throttles re-rendering in watch mode.
type WatchConfig struct {
	Interval time.Duration `mapstructure:"interval" yaml:"interval"`
	Burst    int           `mapstructure:"burst" yaml:"burst"`
}

var (
	outputFormats = []string{"text", "json", "yaml"}
	renderFormats = []string{"png", "html"}
)

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("viewport.width", 800)
	v.SetDefault("viewport.height", 600)

	v.SetDefault("output.format", "text")

	v.SetDefault("render.format", "png")
	v.SetDefault("render.dir", "")
	v.SetDefault("render.scale", 1)
	v.SetDefault("render.background", "#ffffff")
	v.SetDefault("render.palette", []string{"#dfe7f280", "#c4d6b080", "#f2d7b680", "#e2c2d980"})
	v.SetDefault("render.stroke", "#333333")
	v.SetDefault("render.line_width", 1)
	v.SetDefault("render.labels", true)
	v.SetDefault("render.clip", true)

	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "panel")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)

	v.SetDefault("trace.enabled", false)
	v.SetDefault("trace.mute", []string{})

	v.SetDefault("watch.interval", "250ms")
	v.SetDefault("watch.burst", 1)

	v.SetDefault("concurrency", 4)
}

// NewDefaultConfig returns the defaults as a Config.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := NewConfigFromViper(v)
	if err != nil {
		panic(fmt.Sprintf("config: invalid defaults: %v", err))
	}
	return cfg
}

// NewConfigFromViper decodes and validates the configuration held by v.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Viewport.Width < 0 || c.Viewport.Height < 0 {
		errs = append(errs, fmt.Errorf("viewport must not be negative, got %gx%g", c.Viewport.Width, c.Viewport.Height))
	}
	if !slices.Contains(outputFormats, c.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format must be one of %v, got %q", outputFormats, c.Output.Format))
	}
	if !slices.Contains(renderFormats, c.Render.Format) {
		errs = append(errs, fmt.Errorf("render.format must be one of %v, got %q", renderFormats, c.Render.Format))
	}
	if c.Render.Scale <= 0 {
		errs = append(errs, fmt.Errorf("render.scale must be positive, got %g", c.Render.Scale))
	}
	if c.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency))
	}
	if c.Watch.Interval < 0 {
		errs = append(errs, fmt.Errorf("watch.interval must not be negative, got %s", c.Watch.Interval))
	}
	if c.Watch.Burst < 1 {
		errs = append(errs, fmt.Errorf("watch.burst must be at least 1, got %d", c.Watch.Burst))
	}
	return errors.Join(errs...)
}
