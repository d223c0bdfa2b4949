package board

import "github.com/charmbracelet/lipgloss"

var (
	borderASCII = lipgloss.Border{
		Top:         "-",
		Bottom:      "-",
		Left:        "|",
		Right:       "|",
		TopLeft:     "+",
		TopRight:    "+",
		BottomLeft:  "+",
		BottomRight: "+",
	}

	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Bold(true)
	helpBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236"))
	panelStyle   = lipgloss.NewStyle().Border(borderASCII).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
	modalStyle   = lipgloss.NewStyle().Border(borderASCII).Padding(1, 2)

	labelStyle         = lipgloss.NewStyle().Bold(true)
	valueMuted         = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	statusErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	statusSuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	selectedButton     = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))

	rowStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	rowSelected    = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24"))
	rowDragged     = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("97"))
	rowDropTarget  = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("29")).Underline(true)
	histogramStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)
