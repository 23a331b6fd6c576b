package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func headerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Accent).Bold(true).MarginBottom(1)
}

func labelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Width(10)
}

func valueStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Text)
}

func panelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(CurrentTheme.Muted).
		Padding(0, 2).
		Width(48)
}

func statusStyle(done, paused bool) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	switch {
	case done:
		return s.Foreground(CurrentTheme.Success)
	case paused:
		return s.Foreground(CurrentTheme.Accent)
	default:
		return s.Foreground(CurrentTheme.Bar)
	}
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

// ProgressBar renders how far percent (0..1) of the work is done
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	filled = max(0, min(width, filled))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if percent >= 1 {
		return lipgloss.NewStyle().Foreground(CurrentTheme.Success).Render(bar)
	}
	return lipgloss.NewStyle().Foreground(CurrentTheme.Bar).Render(bar)
}

// Separator draws a muted horizontal rule
func Separator(width int) string {
	mid := width / 2
	left := strings.Repeat("─", max(0, mid-3))
	right := strings.Repeat("─", max(0, width-mid-3))
	return lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Render(left + " ◆ " + right)
}
