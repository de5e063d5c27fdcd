package ui

import (
	"github.com/mattn/go-runewidth"
)

// Widths are display columns, not bytes or runes. Wide characters (CJK,
// emoji) take two columns; combining marks take none.

// RuneWidth returns the display width of a single rune
func RuneWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 0 {
		return 0
	}
	return w
}

// StringWidth returns the display width of a string
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// RunesWidth returns the display width of a rune slice
func RunesWidth(rs []rune) int {
	w := 0
	for _, r := range rs {
		w += RuneWidth(r)
	}
	return w
}

// TruncateToWidth truncates a string to fit within maxWidth columns
// without splitting a wide character
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	runes := []rune(s)
	width := 0
	for i, r := range runes {
		rw := RuneWidth(r)
		if width+rw > maxWidth {
			return string(runes[:i])
		}
		width += rw
	}
	return s
}

// TruncateToWidthWithEllipsis truncates a string with "…" if it exceeds maxWidth
func TruncateToWidthWithEllipsis(s string, maxWidth int) string {
	if StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 1 {
		return TruncateToWidth(s, maxWidth)
	}
	return TruncateToWidth(s, maxWidth-1) + "…"
}

// WordStartBefore returns the rune index where the word ending at pos
// begins, skipping any spaces directly before pos
func WordStartBefore(runes []rune, pos int) int {
	if pos > len(runes) {
		pos = len(runes)
	}
	i := pos
	for i > 0 && isSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !isSpace(runes[i-1]) {
		i--
	}
	return i
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}
