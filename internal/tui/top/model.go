package top

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"github.com/leg100/flick/internal/anim"
	"github.com/leg100/flick/internal/app"
	"github.com/leg100/flick/internal/drag"
	"github.com/leg100/flick/internal/logging"
	"github.com/leg100/flick/internal/pubsub"
	"github.com/leg100/flick/internal/tabs"
	"github.com/leg100/flick/internal/toggle"
	"github.com/leg100/flick/internal/tui"
	"github.com/leg100/flick/internal/tui/keys"
	"github.com/leg100/flick/internal/version"
	zone "github.com/lrstanley/bubblezone"
)

// switchLabels are the switches shown beneath the tab strip. The last is
// disabled.
var switchLabels = []string{"wi-fi", "bluetooth", "airplane mode", "location"}

type model struct {
	width  int
	height int

	showHelp bool

	showQuitPrompt bool
	quitPrompt     textinput.Model

	// Either an error or an informational message is rendered in the footer,
	// and failing that the most recent log message.
	err     error
	info    string
	lastLog *logging.Message

	zones    *zone.Manager
	surface  *drag.Surface
	tabs     *tabs.Model
	switches []*toggle.Switch
	// focused is the index of the switch with keyboard focus, or -1.
	focused int
	// added is the number of tabs added by the user.
	added int

	logger logging.Interface
	dump   *os.File
}

func newModel(cfg app.Config, a *app.App) (model, error) {
	var dump *os.File
	if cfg.Debug {
		var err error
		dump, err = os.OpenFile("messages.log", os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o755)
		if err != nil {
			return model{}, err
		}
	}

	list, err := tabs.NewList(cfg.Tabs...)
	if err != nil {
		return model{}, fmt.Errorf("constructing tabs: %w", err)
	}

	m := model{
		zones:   zone.New(),
		surface: drag.NewSurface(),
		focused: -1,
		logger:  a.Logger,
		dump:    dump,
	}
	opts := []tabs.Option{
		tabs.WithZones(m.zones),
		tabs.WithPublisher(a.Tabs),
		tabs.WithSlideDuration(cfg.SlideDuration),
		tabs.WithGrowDuration(cfg.InkDuration),
	}
	if cfg.NoInkBar {
		opts = append(opts, tabs.WithoutInkBar())
	}
	m.tabs = tabs.New(list, opts...)
	for i, label := range switchLabels {
		m.switches = append(m.switches, toggle.New(m.surface, label,
			toggle.WithZones(m.zones),
			toggle.WithWidth(cfg.SwitchWidth),
			toggle.WithTapThreshold(cfg.TapThreshold),
			toggle.Disabled(i == len(switchLabels)-1),
			toggle.OnChange(func(checked bool) {
				a.Logger.Info("toggled switch", "switch", label, "checked", checked)
			}),
		))
	}
	return m, nil
}

// close releases the model's resources.
func (m model) close() {
	for _, sw := range m.switches {
		sw.Close()
	}
	m.zones.Close()
	if m.dump != nil {
		m.dump.Close()
	}
}

func (m model) Init() tea.Cmd {
	return m.tabs.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.dump != nil {
		spew.Fdump(m.dump, msg)
	}

	if m.showQuitPrompt {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, keys.Global.Quit):
				// pressing ctrl-c again quits the app
				return m, tea.Quit
			case key.Matches(msg, localKeys.Yes):
				// 'y' quits the app
				return m, tea.Quit
			default:
				// any other key closes the prompt and returns to the app
				m.showQuitPrompt = false
				m.info = "canceled quitting flick"
			}
			return m, nil
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cmds = append(cmds, m.tabs.SetWidth(msg.Width))
	case tea.KeyMsg:
		// Pressing any key makes any info/error message in the footer disappear
		m.info = ""
		m.err = nil

		switch {
		case key.Matches(msg, keys.Global.Quit):
			// ctrl-c quits the app, but not before prompting the user for
			// comfirmation.
			m.quitPrompt = textinput.New()
			m.quitPrompt.Prompt = ""
			m.quitPrompt.Focus()
			m.showQuitPrompt = true
			return m, textinput.Blink
		case key.Matches(msg, keys.Global.Escape):
			m.showHelp = false
		case key.Matches(msg, keys.Global.Help):
			// '?' toggles help
			m.showHelp = !m.showHelp
		case key.Matches(msg, keys.Common.AddTab):
			m.added++
			cmd, err := m.tabs.AddTab(fmt.Sprintf("new %d", m.added))
			if err != nil {
				return m, tui.ReportError(err, "adding tab")
			}
			cmds = append(cmds, cmd)
		case key.Matches(msg, keys.Common.RemoveTab):
			cmds = append(cmds, m.tabs.RemoveTab(m.tabs.List().Selected()))
		case key.Matches(msg, keys.Navigation.FocusNext):
			m.focusSwitch(+1)
		case key.Matches(msg, keys.Navigation.FocusPrev):
			m.focusSwitch(-1)
		case key.Matches(msg, keys.Common.Toggle):
			cmds = append(cmds, m.updateSwitches(msg))
		default:
			cmds = append(cmds, m.tabs.Update(msg))
		}
	case tea.MouseMsg, tea.BlurMsg:
		// Pointer input is dispatched to the switches via the surface before
		// the switches settle in response.
		m.surface.Update(msg)
		cmds = append(cmds, m.tabs.Update(msg), m.updateSwitches(msg))
	case anim.FrameMsg, anim.EndMsg:
		cmds = append(cmds, m.tabs.Update(msg), m.updateSwitches(msg))
	case pubsub.Event[logging.Message]:
		m.lastLog = &msg.Payload
	case tui.ErrorMsg:
		if msg.Error != nil {
			err := msg.Error
			msg := fmt.Sprintf(msg.Message, msg.Args...)

			// Both print error in footer as well as log it.
			m.err = fmt.Errorf("%s: %w", msg, err)
			m.logger.Error(msg, "error", err)
		}
	case tui.InfoMsg:
		m.info = string(msg)
	default:
		cmds = append(cmds, m.tabs.Update(msg))
	}
	return m, tea.Batch(cmds...)
}

func (m *model) updateSwitches(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.switches))
	for i, sw := range m.switches {
		cmds[i] = sw.Update(msg)
	}
	return tea.Batch(cmds...)
}

// focusSwitch moves the keyboard focus to the next (+1) or previous (-1)
// switch, wrapping around at either end.
func (m *model) focusSwitch(increment int) {
	n := len(m.switches)
	if m.focused >= 0 {
		m.switches[m.focused].Blur()
	}
	switch {
	case m.focused < 0 && increment < 0:
		m.focused = n - 1
	case m.focused < 0:
		m.focused = 0
	default:
		m.focused = (m.focused + increment + n) % n
	}
	m.switches[m.focused].Focus()
}

var (
	logo         = tui.Bold.Foreground(tui.Purple).Margin(0, 1).Render("flick")
	versionStyle = tui.Faint.Margin(0, 1)

	headerHeight = shortHelpRows
	tabsHeight   = 2
	footerHeight = 1
	ruleHeight   = 1
)

func (m model) View() string {
	var (
		content           string
		shortHelpBindings []key.Binding
	)
	if m.showHelp {
		content = lipgloss.NewStyle().
			Margin(1).
			Render(fullHelpView(
				helpSection{"TABS", tabBindings},
				helpSection{"SWITCHES", switchBindings},
				helpSection{"GENERAL", keys.KeyMapToSlice(keys.Global)},
			))
		shortHelpBindings = []key.Binding{
			key.NewBinding(
				key.WithKeys("?"),
				key.WithHelp("?", "close help"),
			),
		}
	} else if m.showQuitPrompt {
		content = lipgloss.NewStyle().
			Margin(0, 1).
			Render(fmt.Sprintf("Quit flick? (y/N): %s", m.quitPrompt.View()))
	} else {
		content = m.contentView()
		shortHelpBindings = slices.Concat(
			tabBindings,
			switchBindings,
			keys.KeyMapToSlice(keys.Global),
		)
	}

	rendered := versionStyle.Render(version.Version)
	shortHelpWidth := m.width - tui.Width(logo) - tui.Width(rendered) - 4
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		logo,
		lipgloss.NewStyle().
			Margin(0, 2).
			Width(max(0, shortHelpWidth)).
			Render(shortHelpView(shortHelpBindings, shortHelpWidth)),
		rendered,
	)

	return m.zones.Scan(lipgloss.JoinVertical(
		lipgloss.Top,
		lipgloss.NewStyle().Height(headerHeight).MaxHeight(headerHeight).Render(header),
		m.tabs.View(),
		lipgloss.NewStyle().
			Height(m.contentHeight()).
			MaxHeight(m.contentHeight()).
			Render(content),
		strings.Repeat("─", m.width),
		m.footerView(),
	))
}

func (m model) contentView() string {
	title := "no tabs"
	if tab, ok := m.tabs.List().At(m.tabs.List().Selected()); ok {
		title = tab.Title
	}
	rows := []string{
		tui.TitleStyle.Margin(1, 1).Render(title),
	}
	for _, sw := range m.switches {
		rows = append(rows, tui.Regular.Margin(0, 2).Render(sw.View()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m model) footerView() string {
	state := m.tabs.Pagination().State()
	metadata := tui.Padded.Render(fmt.Sprintf("%d tabs", m.tabs.List().Count()))
	if state.Active {
		metadata = tui.Padded.Render(fmt.Sprintf("page %d/%d", state.Page+1, state.Count))
	}

	var footerMsg string
	switch {
	case m.err != nil:
		footerMsg = tui.Padded.
			Foreground(tui.Red).
			Render("Error: " + m.err.Error())
	case m.info != "":
		footerMsg = tui.Padded.Render(m.info)
	case m.lastLog != nil:
		footerMsg = tui.Padded.Render(
			lipgloss.JoinHorizontal(lipgloss.Left,
				tui.Bold.Foreground(levelColor(m.lastLog.Level)).Render(m.lastLog.Level),
				" ",
				m.lastLog.String(),
			),
		)
	}

	width := max(0, m.width-tui.Width(metadata))
	return lipgloss.JoinHorizontal(lipgloss.Top,
		tui.Regular.
			Inline(true).
			MaxWidth(width).
			Width(width).
			Render(footerMsg),
		metadata,
	)
}

// contentHeight is the height available between the tab strip and the
// footer.
func (m model) contentHeight() int {
	return max(0, m.height-headerHeight-tabsHeight-ruleHeight-footerHeight)
}

func levelColor(level string) lipgloss.TerminalColor {
	switch level {
	case "DEBUG":
		return tui.DebugLogLevel
	case "WARN":
		return tui.WarnLogLevel
	case "ERROR":
		return tui.ErrorLogLevel
	default:
		return tui.InfoLogLevel
	}
}
