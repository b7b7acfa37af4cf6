package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/leg100/flick/internal/logging"
	"github.com/leg100/flick/internal/tabs"
	"github.com/leg100/flick/internal/toggle"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/peterbourgon/ff/v4/ffyaml"
)

// DefaultTabs are the titles of the tabs shown when none are configured.
var DefaultTabs = []string{
	"overview", "network", "display", "sound", "notifications",
	"privacy", "accessibility", "updates",
}

type Config struct {
	Tabs          []string
	SlideDuration time.Duration
	InkDuration   time.Duration
	NoInkBar      bool
	TapThreshold  int
	SwitchWidth   int
	Debug         bool
	Logging       logging.Options

	Version bool
}

// set config in order of precedence:
// 1. flags > 2. env vars > 3. config file
func Parse(stderr io.Writer, args []string) (Config, error) {
	var cfg Config

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("retrieving user's home directory: %w", err)
	}
	defaultConfigFile := filepath.Join(home, ".flick.yaml")

	fs := ff.NewFlagSet("flick")
	fs.StringListVar(&cfg.Tabs, 't', "tab", "Title of a tab. Can set more than once.")
	fs.DurationVar(&cfg.SlideDuration, 0, "slide-duration", tabs.DefaultSlideDuration, "Duration of the slide between pages of tabs.")
	fs.DurationVar(&cfg.InkDuration, 0, "ink-duration", tabs.DefaultGrowDuration, "Duration of the ink bar's grow animation.")
	fs.BoolVar(&cfg.NoInkBar, 0, "no-ink-bar", "Hide the ink bar beneath the selected tab.")
	fs.IntVar(&cfg.TapThreshold, 0, "tap-threshold", toggle.DefaultTapThreshold, "Drags shorter than this many cells flip a switch like a tap.")
	fs.IntVar(&cfg.SwitchWidth, 0, "switch-width", toggle.DefaultWidth, "Width of the track of a switch, in cells.")
	fs.BoolVar(&cfg.Debug, 'd', "debug", "Log bubbletea messages to messages.log")
	fs.BoolVar(&cfg.Version, 'v', "version", "Print version.")
	_ = fs.String('c', "config", defaultConfigFile, "Path to config file.")

	{
		usage := fmt.Sprintf("Logging level (valid: %s).", strings.Join(logging.ValidLevels(), ","))
		fs.StringEnumVar(&cfg.Logging.Level, 'l', "log-level", usage, logging.ValidLevels()...)
	}

	err = ff.Parse(fs, args,
		ff.WithEnvVarPrefix("FLICK"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ffyaml.Parse),
		ff.WithConfigAllowMissingFile(),
	)
	if err != nil {
		// ff.Parse returns an error if there is an error or if -h/--help is
		// passed; in either case print flag usage in addition to error message.
		fmt.Fprintln(stderr, ffhelp.Flags(fs))
		return Config{}, err
	}

	if len(cfg.Tabs) == 0 {
		cfg.Tabs = DefaultTabs
	}
	if cfg.TapThreshold < 1 {
		return Config{}, fmt.Errorf("tap threshold must be at least 1: %d", cfg.TapThreshold)
	}
	if cfg.SwitchWidth < 3 {
		return Config{}, fmt.Errorf("switch width must be at least 3: %d", cfg.SwitchWidth)
	}
	return cfg, nil
}
