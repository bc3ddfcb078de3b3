package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderSplitPane renders a split pane with left and right content.
func RenderSplitPane(left, right string, totalWidth, totalHeight int) string {
	const leftMargin = 2 // Left margin for the whole split pane

	leftWidth := (totalWidth - leftMargin) * 40 / 100
	rightWidth := totalWidth - leftMargin - leftWidth - 3 // Account for border

	leftContent := FitHeight(left, totalHeight)
	rightContent := FitHeight(right, totalHeight)

	leftLines := strings.Split(leftContent, "\n")
	rightLines := strings.Split(rightContent, "\n")

	margin := strings.Repeat(" ", leftMargin)

	var result []string
	for i := 0; i < totalHeight; i++ {
		leftLine := ""
		rightLine := ""
		if i < len(leftLines) {
			leftLine = leftLines[i]
		}
		if i < len(rightLines) {
			rightLine = rightLines[i]
		}

		leftPadded := padToWidth(leftLine, leftWidth)
		rightPadded := "│ " + padToWidth(rightLine, rightWidth-2)

		result = append(result, margin+leftPadded+rightPadded)
	}

	return strings.Join(result, "\n")
}

// padToWidth pads a string with spaces to reach the target width.
// Uses lipgloss width calculation to handle ANSI escape codes.
func padToWidth(s string, width int) string {
	currentWidth := lipgloss.Width(s)
	if currentWidth >= width {
		return s
	}
	return s + strings.Repeat(" ", width-currentWidth)
}

// FitHeight pads or trims content to fit exact height.
func FitHeight(content string, height int) string {
	lines := strings.Split(content, "\n")
	if len(lines) >= height {
		return strings.Join(lines[:height], "\n")
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// TruncateTo trims a string to width, appending an ellipsis when cut.
func TruncateTo(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
