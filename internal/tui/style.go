package tui

import "github.com/charmbracelet/lipgloss"

var (
	Regular        = lipgloss.NewStyle()
	Bold           = Regular.Bold(true)
	Padded         = Regular.Padding(0, 1)
	Faint          = Regular.Foreground(LightGrey)

	TitleStyle = Bold.Foreground(TitleColor)
)
