package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-board/internal/model"
	"github.com/pstuifzand/tui-board/internal/viewport"
)

// ChangeFunc applies an edited label to the node at path
type ChangeFunc func(path model.Path, text string) error

// Editor is the inline text field of the focused node. Every edit is
// pushed through onChange immediately; there is no commit step.
type Editor struct {
	path     model.Path
	input    LineInput
	onChange ChangeFunc
}

// NewEditor focuses the node at path, starting from its current text
func NewEditor(path model.Path, text string, onChange ChangeFunc) *Editor {
	e := &Editor{
		path:     path,
		onChange: onChange,
	}
	e.input.SetText(text)
	return e
}

// Path returns the path of the node being edited
func (e *Editor) Path() model.Path {
	return e.path
}

// Text returns the text in the field
func (e *Editor) Text() string {
	return e.input.Text()
}

// Cursor returns the cursor position as a rune index
func (e *Editor) Cursor() int {
	return e.input.Cursor()
}

// HandleKey applies a key press. done is true when the field loses focus
// (Enter or Escape).
func (e *Editor) HandleKey(ev *tcell.EventKey) (done bool, err error) {
	switch e.input.HandleKey(ev) {
	case InputSubmitted, InputCancelled:
		return true, nil
	case InputChanged:
		return false, e.onChange(e.path, e.input.Text())
	}
	return false, nil
}

// Render draws the field with its cursor. The field is laid out at x
// with the full width, and only cells inside clip are touched.
func (e *Editor) Render(screen *Screen, x, y, width int, clip viewport.Rect) {
	e.input.render(screen, x, y, width, clip, screen.NodeFocusedStyle(), screen.CursorStyle())
}
