package top

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/leg100/flick/internal/app"
	"github.com/stretchr/testify/require"
)

// Start starts the TUI and blocks until the user exits.
func Start(cfg app.Config) error {
	app, err := app.New(cfg)
	if err != nil {
		return err
	}

	m, err := newModel(cfg, app)
	if err != nil {
		return err
	}
	defer m.close()

	p := tea.NewProgram(m,
		// Use the full size of the terminal with its "alternate screen buffer"
		tea.WithAltScreen(),
		// Switches are dragged with the mouse.
		tea.WithMouseCellMotion(),
		// Losing focus cancels any drag in progress.
		tea.WithReportFocus(),
	)

	ch, unsub := setupSubscriptions(app)
	defer unsub()

	// Relay events to model in background
	go func() {
		for msg := range ch {
			p.Send(msg)
		}
	}()

	// Blocks until user quits
	_, err = p.Run()
	return err
}

// StartTest starts the TUI and returns a test model for testing purposes.
func StartTest(t *testing.T, cfg app.Config, width, height int) *teatest.TestModel {
	app, err := app.New(cfg)
	require.NoError(t, err)

	m, err := newModel(cfg, app)
	require.NoError(t, err)
	t.Cleanup(m.close)

	ch, unsub := setupSubscriptions(app)
	t.Cleanup(unsub)

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(width, height))

	// Relay events to model in background
	go func() {
		for msg := range ch {
			tm.Send(msg)
		}
	}()

	t.Cleanup(func() {
		tm.Quit()
	})
	return tm
}

func setupSubscriptions(app *app.App) (chan tea.Msg, func()) {
	// Relay events to TUI. Deliberately set up subscriptions *before* any
	// events are triggered, to ensure the TUI receives all messages.
	ch := make(chan tea.Msg)
	wg := sync.WaitGroup{} // sync closure of subscriptions

	ctx, cancel := context.WithCancel(context.Background())

	{
		sub := app.Logger.Subscribe(ctx)
		wg.Add(1)
		go func() {
			for ev := range sub {
				ch <- ev
			}
			wg.Done()
		}()
	}
	// Log changes to the tab strip
	{
		sub := app.Tabs.Subscribe(ctx)
		go app.LogTabEvents(sub)
	}
	// cleanup function to be invoked when program is terminated.
	return ch, func() {
		cancel()
		// Wait for relays to finish before closing channel, to avoid sends
		// to a closed channel, which would result in a panic.
		wg.Wait()
		close(ch)
	}
}
