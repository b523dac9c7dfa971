package preview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/umputun/themeshell/app/enum"
	"github.com/umputun/themeshell/app/theme"
)

// palette holds the colors of one mode, matching the web stylesheet.
type palette struct {
	page   lipgloss.Color
	text   lipgloss.Color
	bar    lipgloss.Color
	toggle lipgloss.Color
}

var (
	lightPalette = palette{page: "#ffffff", text: "#111827", bar: "#e5e7eb", toggle: "#d1d5db"}
	darkPalette  = palette{page: "#111827", text: "#f9fafb", bar: "#1f2937", toggle: "#374151"}

	iconColors = map[theme.Icon]lipgloss.Color{
		theme.IconSun:  "#eab308", // text-yellow-500
		theme.IconMoon: "#ffffff", // text-white
	}
)

func paletteFor(m enum.Mode) palette {
	if m == enum.ModeDark {
		return darkPalette
	}
	return lightPalette
}

// styles is the set of lipgloss styles used to draw the shell in one mode.
type styles struct {
	header  lipgloss.Style
	title   lipgloss.Style
	toggle  lipgloss.Style
	main    lipgloss.Style
	heading lipgloss.Style
	text    lipgloss.Style
	footer  lipgloss.Style
	help    lipgloss.Style
}

func newStyles(m enum.Mode, ind theme.Indicator, width int) styles {
	p := paletteFor(m)
	bar := lipgloss.NewStyle().Background(p.bar).Foreground(p.text).Padding(1, 2).Width(width)
	return styles{
		header:  bar,
		title:   lipgloss.NewStyle().Bold(true).Background(p.bar).Foreground(p.text),
		toggle:  lipgloss.NewStyle().Background(p.toggle).Foreground(iconColors[ind.Icon]).Padding(0, 1),
		main:    lipgloss.NewStyle().Background(p.page).Foreground(p.text).Padding(1, 2).Width(width),
		heading: lipgloss.NewStyle().Bold(true).Background(p.page).Foreground(p.text).MarginBottom(1),
		text:    lipgloss.NewStyle().Background(p.page).Foreground(p.text),
		footer:  bar.Align(lipgloss.Center),
		help:    lipgloss.NewStyle().Faint(true),
	}
}
