// package app is responsible for configuring the application and
// constructing the components that outlive the TUI.
package app

import (
	"fmt"
	"log/slog"

	"github.com/leg100/flick/internal/logging"
	"github.com/leg100/flick/internal/pubsub"
	"github.com/leg100/flick/internal/tabs"
)

// App holds the components shared between the TUI and its subscribers.
type App struct {
	Logger *logging.Logger
	// Tabs relays changes to the tab strip.
	Tabs *pubsub.Broker[tabs.Snapshot]
}

// New constructs the application from the given config.
func New(cfg Config) (*App, error) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = logging.DefaultLevel
	}
	logger := logging.NewLogger(cfg.Logging)
	slog.SetDefault(logger.Slog())

	logger.Debug("loaded config",
		"tabs", len(cfg.Tabs),
		"slide_duration", cfg.SlideDuration,
		"ink_duration", cfg.InkDuration,
		"no_ink_bar", cfg.NoInkBar,
		"tap_threshold", cfg.TapThreshold,
		"switch_width", cfg.SwitchWidth,
	)

	return &App{
		Logger: logger,
		Tabs:   pubsub.NewBroker[tabs.Snapshot](logger),
	}, nil
}

// LogTabEvents logs changes to the tab strip until the subscription is
// closed.
func (a *App) LogTabEvents(sub <-chan pubsub.Event[tabs.Snapshot]) {
	for event := range sub {
		s := event.Payload
		a.Logger.Debug(string(event.Type),
			"selected", s.Selected,
			"tabs", s.Tabs,
			"page", pageLabel(s.State),
		)
	}
}

func pageLabel(s tabs.State) string {
	if !s.Active {
		return "-"
	}
	return fmt.Sprintf("%d/%d", s.Page+1, s.Count)
}
