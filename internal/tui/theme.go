package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, trimmed to the colors the views use.
// https://catppuccin.com/palette
const (
	colorPeach    lipgloss.Color = "#fab387"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

// Semantic aliases keep the style block readable.
const (
	colorBrand  = colorPeach
	colorAccent = colorPeach
	colorFocus  = colorLavender
	colorActive = colorGreen
	colorShare  = colorTeal
)
