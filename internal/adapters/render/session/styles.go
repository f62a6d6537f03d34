package session

import "github.com/charmbracelet/lipgloss"

const (
	ColorWon     = lipgloss.Color("#60b347")
	ColorDefault = lipgloss.Color("#222")
)

type styles struct {
	title     lipgloss.Style
	between   lipgloss.Style
	number    lipgloss.Style
	message   lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	status    lipgloss.Style
	input     lipgloss.Style
	warning   lipgloss.Style
	help      lipgloss.Style
	frame     lipgloss.Style
	frameWon  lipgloss.Style
	frameLost lipgloss.Style
}

func newStyles() styles {
	frame := lipgloss.NewStyle().Padding(1, 3).Background(ColorDefault).Foreground(lipgloss.Color("#eee"))

	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		between:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		number:    lipgloss.NewStyle().Bold(true).Padding(0, 2).Background(lipgloss.Color("#eee")).Foreground(lipgloss.Color("#222")),
		message:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		label:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		value:     lipgloss.NewStyle().Bold(true),
		status:    lipgloss.NewStyle().Faint(true),
		input:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		help:      lipgloss.NewStyle().Faint(true),
		frame:     frame,
		frameWon:  frame.Background(ColorWon),
		frameLost: frame.BorderForeground(lipgloss.Color("203")),
	}
}
