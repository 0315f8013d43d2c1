package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - ANSI 256 colors for broad terminal support
var (
	ColorCyan   = lipgloss.Color("6")
	ColorYellow = lipgloss.Color("3")
	ColorRed    = lipgloss.Color("1")
	ColorGreen  = lipgloss.Color("2")
	ColorGray   = lipgloss.Color("8")
	ColorWhite  = lipgloss.Color("15")
)

// Text styles
var (
	// Operation text ("put 1 100")
	OpStyle = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)

	// Cache hits and stored values
	HitStyle = lipgloss.NewStyle().Foreground(ColorGreen)

	// Cache misses
	MissStyle = lipgloss.NewStyle().Foreground(ColorYellow)

	// Evictions
	EvictStyle = lipgloss.NewStyle().Foreground(ColorRed)

	// Recency order lines (MRU -> LRU)
	OrderStyle = lipgloss.NewStyle().Foreground(ColorGray)

	// Status messages ("Running script...")
	StatusStyle = lipgloss.NewStyle().Foreground(ColorGray).Italic(true)

	// Error messages
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)

	// Warning messages
	WarningStyle = lipgloss.NewStyle().Foreground(ColorYellow)

	// Success messages
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorGreen)

	// Muted/secondary text
	MutedStyle = lipgloss.NewStyle().Foreground(ColorGray)

	// Labels (field names)
	LabelStyle = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
)
