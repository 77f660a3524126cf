package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// truncateStr shortens s to at most n display cells.
func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if n <= 3 {
		return runewidth.Truncate(s, n, "")
	}
	return runewidth.Truncate(s, n, "...")
}

// wrapText breaks s into lines no wider than width display cells.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	line := ""
	for _, word := range words {
		for _, w := range splitWide(word, width) {
			switch {
			case line == "":
				line = w
			case lipgloss.Width(line)+1+lipgloss.Width(w) > width:
				lines = append(lines, line)
				line = w
			default:
				line += " " + w
			}
		}
	}
	lines = append(lines, line)
	return lines
}

// splitWide breaks a single word wider than width into width-sized pieces.
func splitWide(word string, width int) []string {
	if lipgloss.Width(word) <= width {
		return []string{word}
	}
	var pieces []string
	var cur strings.Builder
	curWidth := 0
	for _, r := range word {
		rw := lipgloss.Width(string(r))
		if curWidth+rw > width && cur.Len() > 0 {
			pieces = append(pieces, cur.String())
			cur.Reset()
			curWidth = 0
		}
		cur.WriteRune(r)
		curWidth += rw
	}
	if cur.Len() > 0 {
		pieces = append(pieces, cur.String())
	}
	return pieces
}

// clampLines keeps at most n lines, marking the cut with an ellipsis that
// still fits within width.
func clampLines(lines []string, n, width int) []string {
	if n <= 0 {
		return nil
	}
	if len(lines) <= n {
		return lines
	}
	out := append([]string(nil), lines[:n]...)
	runes := []rune(out[n-1])
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	out[n-1] = strings.TrimRight(string(runes), " ") + "…"
	return out
}
