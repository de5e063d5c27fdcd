package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-board/internal/viewport"
)

// InputResult tells the owner of a LineInput what a key press did
type InputResult int

const (
	InputIgnored   InputResult = iota // key not handled
	InputMoved                        // cursor moved, text unchanged
	InputChanged                      // text changed
	InputSubmitted                    // Enter
	InputCancelled                    // Escape
)

// LineInput is a single-line, rune-based text field with a cursor
type LineInput struct {
	runes  []rune
	cursor int // rune index
	scroll int // first visible column
}

// SetText replaces the text and moves the cursor to the end
func (l *LineInput) SetText(s string) {
	l.runes = []rune(s)
	l.cursor = len(l.runes)
	l.scroll = 0
}

// Text returns the current text
func (l *LineInput) Text() string {
	return string(l.runes)
}

// Cursor returns the cursor position as a rune index
func (l *LineInput) Cursor() int {
	return l.cursor
}

// HandleKey applies a key press
func (l *LineInput) HandleKey(ev *tcell.EventKey) InputResult {
	switch ev.Key() {
	case tcell.KeyEscape:
		return InputCancelled
	case tcell.KeyEnter:
		return InputSubmitted
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if l.cursor == 0 {
			return InputIgnored
		}
		l.runes = append(l.runes[:l.cursor-1], l.runes[l.cursor:]...)
		l.cursor--
		return InputChanged
	case tcell.KeyDelete:
		if l.cursor >= len(l.runes) {
			return InputIgnored
		}
		l.runes = append(l.runes[:l.cursor], l.runes[l.cursor+1:]...)
		return InputChanged
	case tcell.KeyLeft:
		if l.cursor > 0 {
			l.cursor--
		}
		return InputMoved
	case tcell.KeyRight:
		if l.cursor < len(l.runes) {
			l.cursor++
		}
		return InputMoved
	case tcell.KeyHome, tcell.KeyCtrlA:
		l.cursor = 0
		return InputMoved
	case tcell.KeyEnd, tcell.KeyCtrlE:
		l.cursor = len(l.runes)
		return InputMoved
	case tcell.KeyCtrlU:
		if l.cursor == 0 {
			return InputIgnored
		}
		l.runes = append([]rune(nil), l.runes[l.cursor:]...)
		l.cursor = 0
		return InputChanged
	case tcell.KeyCtrlK:
		if l.cursor >= len(l.runes) {
			return InputIgnored
		}
		l.runes = l.runes[:l.cursor]
		return InputChanged
	case tcell.KeyCtrlW:
		start := WordStartBefore(l.runes, l.cursor)
		if start == l.cursor {
			return InputIgnored
		}
		l.runes = append(l.runes[:start], l.runes[l.cursor:]...)
		l.cursor = start
		return InputChanged
	case tcell.KeyRune:
		r := ev.Rune()
		l.runes = append(l.runes, 0)
		copy(l.runes[l.cursor+1:], l.runes[l.cursor:])
		l.runes[l.cursor] = r
		l.cursor++
		return InputChanged
	}
	return InputIgnored
}

// Render draws the text into a field of the given width, scrolling
// horizontally so the cursor stays visible. The cursor cell is drawn
// with cursorStyle.
func (l *LineInput) Render(screen *Screen, x, y, width int, style, cursorStyle tcell.Style) {
	l.render(screen, x, y, width, viewport.Rect{X: x, Y: y, W: width, H: 1}, style, cursorStyle)
}

// render lays the field out at x with the given width and draws only the
// cells inside clip
func (l *LineInput) render(screen *Screen, x, y, width int, clip viewport.Rect, style, cursorStyle tcell.Style) {
	if width <= 0 {
		return
	}
	set := func(cx int, r rune, st tcell.Style) {
		if clip.Contains(cx, y) {
			screen.SetCell(cx, y, r, st)
		}
	}

	cursorCol := RunesWidth(l.runes[:l.cursor])
	if cursorCol < l.scroll {
		l.scroll = cursorCol
	} else if cursorCol >= l.scroll+width {
		l.scroll = cursorCol - width + 1
	}

	for i := 0; i < width; i++ {
		set(x+i, ' ', style)
	}

	col := 0
	for i, r := range l.runes {
		rw := RuneWidth(r)
		vis := col - l.scroll
		if vis >= 0 && vis+rw <= width {
			st := style
			if i == l.cursor {
				st = cursorStyle
			}
			set(x+vis, r, st)
		}
		col += rw
	}

	if l.cursor == len(l.runes) {
		if vis := cursorCol - l.scroll; vis >= 0 && vis < width {
			set(x+vis, ' ', cursorStyle)
		}
	}
}
