package terminal

import "github.com/charmbracelet/lipgloss"

// Monokai Pro palette with light-background counterparts.
var (
	Foreground = lipgloss.AdaptiveColor{Light: "#2D2A2E", Dark: "#FCFCFA"}
	Red        = lipgloss.AdaptiveColor{Light: "#D7005F", Dark: "#FF6188"}
	Yellow     = lipgloss.AdaptiveColor{Light: "#B58900", Dark: "#FFD866"}
	Green      = lipgloss.AdaptiveColor{Light: "#4F8A10", Dark: "#A9DC76"}
	Cyan       = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#78DCE8"}
	Magenta    = lipgloss.AdaptiveColor{Light: "#AF005F", Dark: "#FF6188"}
	Comment    = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#727072"}
	Border     = lipgloss.AdaptiveColor{Light: "#BCBCBC", Dark: "#5B595C"}
)

var (
	HeadingStyle = lipgloss.NewStyle().Bold(true).Foreground(Magenta)
	TextStyle    = lipgloss.NewStyle().Foreground(Foreground)
	StrongStyle  = lipgloss.NewStyle().Bold(true).Foreground(Yellow)
	CodeStyle    = lipgloss.NewStyle().Foreground(Cyan)
	DimStyle     = lipgloss.NewStyle().Foreground(Comment)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Red)
	SuccessStyle = lipgloss.NewStyle().Foreground(Green)

	CodeBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	TableStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(Border).
			Padding(0, 1)
)
