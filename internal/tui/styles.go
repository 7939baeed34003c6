package tui

import "github.com/charmbracelet/lipgloss"

const (
	maxBodyWidth = 64
	minBodyWidth = 32
)

var (
	bodyStyle   = lipgloss.NewStyle().Padding(1, 2)
	statusStyle = lipgloss.NewStyle().MarginTop(1)
	footerStyle = lipgloss.NewStyle().PaddingLeft(2)
)
