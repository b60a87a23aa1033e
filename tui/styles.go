package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/focusquest/internal/config"
)

const (
	padding  = 2
	maxWidth = 60
)

// Styles holds the lipgloss styles used by the views.
type Styles struct {
	Base       lipgloss.Style
	Main       lipgloss.Style
	Secondary  lipgloss.Style
	Hint       lipgloss.Style
	Focus      lipgloss.Style
	ShortBreak lipgloss.Style
	LongBreak  lipgloss.Style
	Panel      lipgloss.Style
	Toast      lipgloss.Style
	Visited    lipgloss.Style
	Available  lipgloss.Style
	Locked     lipgloss.Style
}

func label(color, text string) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(color)).
		Padding(0, 1).
		MarginRight(1).
		SetString(text)
}

// NewStyles derives the styles from the configured session colours.
func NewStyles(cfg *config.Config) Styles {
	main := lipgloss.Color("#1F2937")
	secondary := lipgloss.Color("#4B5563")

	if cfg.Display.DarkTheme {
		main = lipgloss.Color("#F9FAFB")
		secondary = lipgloss.Color("#D1D5DB")
	}

	return Styles{
		Base:       lipgloss.NewStyle().Padding(1, padding),
		Main:       lipgloss.NewStyle().Bold(true).Foreground(main),
		Secondary:  lipgloss.NewStyle().Foreground(secondary),
		Hint:       lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")).Italic(true),
		Focus:      label(cfg.Focus.Color, cfg.Focus.Message),
		ShortBreak: label(cfg.ShortBreak.Color, cfg.ShortBreak.Message),
		LongBreak:  label(cfg.LongBreak.Color, cfg.LongBreak.Message),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#374151")).
			Padding(0, 1).
			MarginTop(1),
		Toast: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(cfg.Focus.Color)).
			Padding(0, 1),
		Visited:   lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")),
		Available: lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
		Locked:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
	}
}
