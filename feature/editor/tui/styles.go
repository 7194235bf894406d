package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statsStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	keyStyle      = lipgloss.NewStyle().Bold(true)
	baseStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	missingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	sameStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	activeStyle   = lipgloss.NewStyle().Background(lipgloss.Color("236"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	toggleOnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)
