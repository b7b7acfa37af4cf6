package top

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/leg100/flick/internal/app"
	"github.com/leg100/flick/internal/testutils"
)

func testConfig() app.Config {
	return app.Config{
		Tabs:         app.DefaultTabs,
		TapThreshold: 5,
		SwitchWidth:  8,
		Debug:        true,
	}
}

func waitFor(t *testing.T, tm *teatest.TestModel, s string) {
	t.Helper()

	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte(s))
		},
		teatest.WithCheckInterval(time.Millisecond*100),
		teatest.WithDuration(time.Second*3),
	)
}

func TestQuit(t *testing.T) {
	// debug mode writes messages.log to the working directory
	testutils.ChTempDir(t, t.TempDir())

	tm := StartTest(t, testConfig(), 300, 40)

	tm.Send(tea.KeyMsg{
		Type: tea.KeyCtrlC,
	})

	waitFor(t, tm, "Quit flick? (y/N): ")

	tm.Send(tea.KeyMsg{
		Type:  tea.KeyRunes,
		Runes: []rune{'y'},
	})

	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))
}

func TestToggleSwitch(t *testing.T) {
	testutils.ChTempDir(t, t.TempDir())

	tm := StartTest(t, testConfig(), 300, 40)

	// focus the first switch and toggle it
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	waitFor(t, tm, "toggled switch switch=wi-fi checked=true")
}

func TestPaginateTabs(t *testing.T) {
	testutils.ChTempDir(t, t.TempDir())

	tm := StartTest(t, testConfig(), 40, 20)

	waitFor(t, tm, "page 1/")

	tm.Send(tea.KeyMsg{
		Type:  tea.KeyRunes,
		Runes: []rune{']'},
	})

	waitFor(t, tm, "page 2/")
}
