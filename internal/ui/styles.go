package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Lipgloss Styles
var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	boxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	wordStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	countdownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	winStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	loseStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
)
