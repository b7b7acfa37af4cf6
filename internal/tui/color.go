package tui

import "github.com/charmbracelet/lipgloss"

const (
	Black       = lipgloss.Color("#000000")
	Red         = lipgloss.Color("#FF5353")
	Purple      = lipgloss.Color("135")
	Yellow      = lipgloss.Color("#DBBD70")
	Green       = lipgloss.Color("34")
	LightGreen  = lipgloss.Color("86")
	DeepBlue    = lipgloss.Color("39")
	Blue        = lipgloss.Color("63")
	Grey        = lipgloss.Color("#737373")
	LightGrey   = lipgloss.Color("245")
	LighterGrey = lipgloss.Color("250")
	DarkGrey    = lipgloss.Color("#606362")
	White       = lipgloss.Color("#ffffff")
)

var (
	DebugLogLevel = Blue
	InfoLogLevel  = lipgloss.AdaptiveColor{Dark: string(LightGreen), Light: string(Green)}
	ErrorLogLevel = Red
	WarnLogLevel  = Yellow

	TitleColor = lipgloss.AdaptiveColor{
		Dark:  "",
		Light: "",
	}

	ActiveTabColor   = lipgloss.AdaptiveColor{Dark: string(White), Light: string(Black)}
	InactiveTabColor = lipgloss.AdaptiveColor{Dark: string(LightGrey), Light: string(Grey)}
	FocusedTabColor  = DeepBlue
	PaginatorColor   = lipgloss.AdaptiveColor{Dark: string(LighterGrey), Light: string(DarkGrey)}

	InkBarColor     = Purple
	InkBarGrowColor = lipgloss.Color("177")

	SwitchOnColor    = GreenBlue
	SwitchOffColor   = lipgloss.AdaptiveColor{Dark: string(DarkGrey), Light: string(LighterGrey)}
	SwitchThumbColor = lipgloss.AdaptiveColor{Dark: string(White), Light: string(DarkGrey)}
	DisabledColor    = lipgloss.AdaptiveColor{Dark: string(DarkGrey), Light: string(LighterGrey)}
)

const GreenBlue = lipgloss.Color("#00A095")
