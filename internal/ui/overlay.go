// Package ui provides shared rendering helpers for the TUI.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DimStyle greys out the screen behind a modal. Existing ANSI codes are
// stripped first since SGR 2 (faint) does not combine reliably with color.
var DimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

// maxLineWidth returns the maximum visual width of the given lines.
func maxLineWidth(lines []string) int {
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, ansi.StringWidth(line))
	}
	return maxWidth
}

func dimLine(s string) string {
	return DimStyle.Render(ansi.Strip(s))
}

// compositeRow places fg onto bg at column x. With dim set the visible
// background is greyed out; otherwise it keeps its styling where possible.
func compositeRow(bg, fg string, x, fgWidth, totalWidth int, dim bool) string {
	var b strings.Builder

	plain := ansi.Strip(bg)
	bgWidth := ansi.StringWidth(plain)

	if x > 0 {
		left := ansi.Truncate(bg, x, "")
		if dim {
			left = DimStyle.Render(ansi.Truncate(plain, x, ""))
		}
		b.WriteString(left)
		if w := ansi.StringWidth(left); w < x {
			b.WriteString(strings.Repeat(" ", x-w))
		}
	}

	b.WriteString(fg)

	rightX := x + fgWidth
	if rightX < totalWidth && bgWidth > rightX {
		right := ansi.Cut(bg, rightX, bgWidth)
		if dim {
			right = DimStyle.Render(ansi.Cut(plain, rightX, bgWidth))
		}
		b.WriteString(right)
	}
	return b.String()
}

// OverlayModal centers modal over a dimmed background of width x height.
// Modal lines wider than the screen are truncated.
func OverlayModal(background, modal string, width, height int) string {
	bgLines := strings.Split(background, "\n")
	modalLines := strings.Split(modal, "\n")
	for i, l := range modalLines {
		if ansi.StringWidth(l) > width {
			modalLines[i] = ansi.Truncate(l, width, "")
		}
	}

	modalWidth := maxLineWidth(modalLines)
	modalHeight := len(modalLines)
	startX := max(0, (width-modalWidth)/2)
	startY := max(0, (height-modalHeight)/2)

	result := make([]string, 0, height)
	for y := range height {
		bgLine := ""
		if y < len(bgLines) {
			bgLine = bgLines[y]
		}
		if row := y - startY; row >= 0 && row < modalHeight {
			result = append(result, compositeRow(bgLine, modalLines[row], startX, modalWidth, width, true))
		} else {
			result = append(result, dimLine(bgLine))
		}
	}
	return strings.Join(result, "\n")
}

// OverlayBottomRight draws box in the bottom-right corner of background,
// leaving margin rows free at the bottom. The background is not dimmed.
func OverlayBottomRight(background, box string, width, height, margin int) string {
	bgLines := strings.Split(background, "\n")
	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}
	boxLines := strings.Split(box, "\n")
	boxWidth := min(maxLineWidth(boxLines), width)

	startX := max(0, width-boxWidth-1)
	startY := max(0, height-margin-len(boxLines))
	for i, l := range boxLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		bgLines[y] = compositeRow(bgLines[y], ansi.Truncate(l, boxWidth, ""), startX, boxWidth, width, false)
	}
	return strings.Join(bgLines, "\n")
}
