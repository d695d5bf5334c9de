package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset this UI draws with.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
)

const (
	colorBrand   = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorInfo    = colorTeal
)

var (
	titleStyle        = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	infoLabelStyle    = lipgloss.NewStyle().Foreground(colorSubtext0)
	infoValueStyle    = lipgloss.NewStyle().Foreground(colorText)
	searchInputStyle  = lipgloss.NewStyle().Foreground(colorPeach)
	placeholderStyle  = lipgloss.NewStyle().Foreground(colorOverlay1)
	cursorStyle       = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	selectedRowStyle  = lipgloss.NewStyle().Background(colorSurface0)
	sizeStyle         = lipgloss.NewStyle().Foreground(colorSubtext0)
	outputLineStyle   = lipgloss.NewStyle().Foreground(colorText)
	emptyOutputStyle  = lipgloss.NewStyle().Foreground(colorOverlay1).Italic(true)
	statusStyle       = lipgloss.NewStyle().Foreground(colorSuccess)
	statusErrStyle    = lipgloss.NewStyle().Foreground(colorError)
	paneStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface1).Padding(0, 1)
	focusedPaneStyle  = paneStyle.BorderForeground(colorFocus)
	sectionTitleStyle = lipgloss.NewStyle().Foreground(colorInfo).Bold(true)
)
