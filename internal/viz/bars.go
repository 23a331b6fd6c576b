package viz

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	barHeight = 16
	barWidth  = 3
)

// RenderBars draws arr as vertical bars with the value printed above each
// bar. Positions in highlighted use the theme's highlight color.
func RenderBars(arr []int, highlighted []int, height int) string {
	if len(arr) == 0 {
		return lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Render("(empty array)")
	}
	if height < 1 {
		height = barHeight
	}

	top := slices.Max(arr)
	if top <= 0 {
		top = 1
	}
	levels := make([]int, len(arr))
	for i, v := range arr {
		levels[i] = max(0, v*height/top)
		if v > 0 && levels[i] == 0 {
			levels[i] = 1
		}
	}

	normal := lipgloss.NewStyle().Foreground(CurrentTheme.Bar)
	touched := lipgloss.NewStyle().Foreground(CurrentTheme.Highlight).Bold(true)
	label := lipgloss.NewStyle().Foreground(CurrentTheme.Text)

	cell := strings.Repeat("█", barWidth)
	blank := strings.Repeat(" ", barWidth)
	colWidth := barWidth + 1

	var b strings.Builder
	// one extra row on top so the tallest bar still has room for its label
	for row := height + 1; row >= 1; row-- {
		for i, lvl := range levels {
			style := normal
			if slices.Contains(highlighted, i) {
				style = touched
			}
			switch {
			case lvl >= row:
				b.WriteString(style.Render(cell))
			case lvl+1 == row:
				b.WriteString(label.Render(fmt.Sprintf("%-*d", barWidth, arr[i])))
			default:
				b.WriteString(blank)
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("─", colWidth*len(arr)))
	return b.String()
}

// RenderValues prints the array inline with highlighted positions colored.
func RenderValues(arr []int, highlighted []int) string {
	touched := lipgloss.NewStyle().Foreground(CurrentTheme.Highlight).Bold(true)
	parts := make([]string, len(arr))
	for i, v := range arr {
		parts[i] = fmt.Sprint(v)
		if slices.Contains(highlighted, i) {
			parts[i] = touched.Render(parts[i])
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}
