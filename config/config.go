// Package config loads spotlight settings from defaults, an optional
// config file and SPOTLIGHT_ environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/viper"

	"github.com/odvcencio/furry-spotlight/logging"
	"github.com/odvcencio/furry-spotlight/widgets"
)

// Config holds application configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Tour    TourConfig    `mapstructure:"tour"`
	Overlay OverlayConfig `mapstructure:"overlay"`
}

// LogConfig selects where logs go. An empty file discards them.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// TourConfig names the tour file and the tour the demo presents. An
// empty file uses the built-in tours.
type TourConfig struct {
	File string `mapstructure:"file"`
	Name string `mapstructure:"name"`
}

// OverlayConfig holds the overlay look. Colors are tcell color names or
// #rrggbb values.
type OverlayConfig struct {
	DimForeground   string  `mapstructure:"dim_fg"`
	DimBackground   string  `mapstructure:"dim_bg"`
	PanelForeground string  `mapstructure:"panel_fg"`
	PanelBackground string  `mapstructure:"panel_bg"`
	Accent          string  `mapstructure:"accent"`
	NextLabel       string  `mapstructure:"next_label"`
	DismissLabel    string  `mapstructure:"dismiss_label"`
	CellAspect      float64 `mapstructure:"cell_aspect"`
	PanelMaxWidth   int     `mapstructure:"panel_max_width"`
	Margin          int     `mapstructure:"margin"`
	ShowProgress    bool    `mapstructure:"show_progress"`
	CodeStyle       string  `mapstructure:"code_style"`
}

// Load reads configuration. When path is empty it falls back to
// $SPOTLIGHT_CONFIG and then to spotlight/config.{toml,yaml} in the user
// config directory; a missing file there is not an error. Env var
// overrides use prefix SPOTLIGHT_, e.g. SPOTLIGHT_OVERLAY_NEXT_LABEL.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("tour.file", "")
	v.SetDefault("tour.name", "home")
	v.SetDefault("overlay.dim_fg", "dimgray")
	v.SetDefault("overlay.dim_bg", "black")
	v.SetDefault("overlay.panel_fg", "black")
	v.SetDefault("overlay.panel_bg", "gold")
	v.SetDefault("overlay.accent", "gold")
	v.SetDefault("overlay.next_label", "Next")
	v.SetDefault("overlay.dismiss_label", "Dismiss")
	v.SetDefault("overlay.cell_aspect", 2.0)
	v.SetDefault("overlay.panel_max_width", 60)
	v.SetDefault("overlay.margin", 1)
	v.SetDefault("overlay.show_progress", true)
	v.SetDefault("overlay.code_style", "monokai")

	if path == "" {
		path = os.Getenv("SPOTLIGHT_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "spotlight"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SPOTLIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	o := c.Overlay
	if o.CellAspect <= 0 {
		errs = append(errs, fmt.Errorf("overlay.cell_aspect: must be positive, got %v", o.CellAspect))
	}
	if o.PanelMaxWidth < 10 {
		errs = append(errs, fmt.Errorf("overlay.panel_max_width: must be at least 10, got %d", o.PanelMaxWidth))
	}
	if o.Margin < 0 {
		errs = append(errs, fmt.Errorf("overlay.margin: must not be negative, got %d", o.Margin))
	}
	for _, f := range []struct{ key, value string }{
		{"overlay.dim_fg", o.DimForeground},
		{"overlay.dim_bg", o.DimBackground},
		{"overlay.panel_fg", o.PanelForeground},
		{"overlay.panel_bg", o.PanelBackground},
		{"overlay.accent", o.Accent},
	} {
		if _, err := parseColor(f.value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.key, err))
		}
	}
	return errors.Join(errs...)
}

// LogLevel returns the parsed log level.
func (c Config) LogLevel() slog.Level {
	level, _ := logging.ParseLevel(c.Log.Level)
	return level
}

// Options converts the overlay settings into widget options.
func (o OverlayConfig) Options() (widgets.OverlayOptions, error) {
	var errs []error
	color := func(key, value string) tcell.Color {
		c, err := parseColor(value)
		if err != nil {
			errs = append(errs, fmt.Errorf("overlay.%s: %w", key, err))
		}
		return c
	}
	dimBg := color("dim_bg", o.DimBackground)
	dim := tcell.StyleDefault.Foreground(color("dim_fg", o.DimForeground)).Background(dimBg)
	panel := tcell.StyleDefault.Foreground(color("panel_fg", o.PanelForeground)).Background(color("panel_bg", o.PanelBackground))
	accent := color("accent", o.Accent)
	if err := errors.Join(errs...); err != nil {
		return widgets.OverlayOptions{}, err
	}

	theme := widgets.DefaultMarkdownTheme(panel)
	if o.CodeStyle != "" {
		theme.CodeStyle = o.CodeStyle
	}
	return widgets.OverlayOptions{
		DimStyle:      dim,
		PanelStyle:    panel,
		ButtonStyle:   panel.Bold(true),
		NextStyle:     tcell.StyleDefault.Foreground(accent).Background(dimBg).Bold(true),
		NextLabel:     o.NextLabel,
		DismissLabel:  o.DismissLabel,
		CellAspect:    o.CellAspect,
		PanelMaxWidth: o.PanelMaxWidth,
		Margin:        o.Margin,
		ShowProgress:  o.ShowProgress,
		Markdown:      &theme,
	}, nil
}

// parseColor accepts tcell color names, #rrggbb and "default".
func parseColor(s string) (tcell.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" || name == "default" {
		return tcell.ColorDefault, nil
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return c, fmt.Errorf("unknown color %q", s)
	}
	return c, nil
}
