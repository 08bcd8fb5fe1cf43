package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Shared styles used across TUI components.
var (
	TitleStyle   = lipgloss.NewStyle().Bold(true)
	HelpStyle    = lipgloss.NewStyle().Faint(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)
