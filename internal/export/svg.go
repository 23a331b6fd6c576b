package export

import (
	"fmt"
	"slices"
	"strings"

	"github.com/san-kum/sortviz/internal/trace"
)

// StepToSVG draws one step as a bar chart. Highlighted bars use
// highlightColor.
func StepToSVG(step trace.Step, width, height int, barColor, highlightColor string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	if len(step.Array) > 0 {
		maxVal := max(slices.Max(step.Array), 1)
		slot := float64(width) / float64(len(step.Array))
		gap := slot * 0.15

		for i, v := range step.Array {
			h := float64(max(v, 0)) / float64(maxVal) * float64(height) * 0.9
			fill := barColor
			if step.IsHighlighted(i) {
				fill = highlightColor
			}
			x := float64(i)*slot + gap/2
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"><title>%d</title></rect>
`, x, float64(height)-h, slot-gap, h, fill, v))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// LogGrowthSVG plots the log length after each step as a polyline.
func LogGrowthSVG(sizes []int, width, height int, strokeColor string) string {
	if len(sizes) < 2 {
		return ""
	}

	maxY := max(slices.Max(sizes), 1)
	rangeX := float64(len(sizes) - 1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, n := range sizes {
		x := float64(i) / rangeX * float64(width)
		y := float64(height) - float64(n)/float64(maxY)*float64(height)*0.9

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
