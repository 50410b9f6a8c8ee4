package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ade80"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	crumbStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7dd3fc"))

	crumbSepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	statusOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80"))

	statusErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f87171"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	focusedLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#4ade80"))

	statValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#fbbf24"))

	headerRowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7dd3fc"))
)
