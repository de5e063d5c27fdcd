package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-board/internal/theme"
	"github.com/pstuifzand/tui-board/internal/viewport"
)

// Screen manages the tcell screen and rendering
type Screen struct {
	tcellScreen tcell.Screen
	Theme       *theme.Theme
}

// NewScreen creates and initializes a terminal screen with mouse and focus
// reporting enabled
func NewScreen(t *theme.Theme) (*Screen, error) {
	tcellScreen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	return NewScreenFrom(tcellScreen, t)
}

// NewScreenFrom wraps an existing tcell screen, e.g. a simulation screen
// in tests
func NewScreenFrom(tcellScreen tcell.Screen, t *theme.Theme) (*Screen, error) {
	if err := tcellScreen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	tcellScreen.EnableMouse(tcell.MouseButtonEvents, tcell.MouseDragEvents)
	tcellScreen.EnableFocus()

	if t == nil {
		t = theme.Default()
	}
	return &Screen{
		tcellScreen: tcellScreen,
		Theme:       t,
	}, nil
}

// Close closes the screen
func (s *Screen) Close() error {
	s.tcellScreen.Fini()
	return nil
}

// Clear fills the screen with the theme background
func (s *Screen) Clear() {
	s.tcellScreen.SetStyle(s.BackgroundStyle())
	s.tcellScreen.Clear()
}

// SetCell sets a cell at the given position
func (s *Screen) SetCell(x, y int, r rune, style tcell.Style) {
	w, h := s.tcellScreen.Size()
	if x >= 0 && x < w && y >= 0 && y < h {
		s.tcellScreen.SetContent(x, y, r, nil, style)
	}
}

// DrawString draws a string at the given position and returns the number
// of columns used
func (s *Screen) DrawString(x, y int, text string, style tcell.Style) int {
	col := 0
	for _, r := range text {
		s.SetCell(x+col, y, r, style)
		col += RuneWidth(r)
	}
	return col
}

// DrawStringClipped draws a string, skipping cells outside clip
func (s *Screen) DrawStringClipped(x, y int, text string, style tcell.Style, clip viewport.Rect) int {
	col := 0
	for _, r := range text {
		if clip.Contains(x+col, y) {
			s.SetCell(x+col, y, r, style)
		}
		col += RuneWidth(r)
	}
	return col
}

// Fill paints a rectangle with a rune
func (s *Screen) Fill(r viewport.Rect, ch rune, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.SetCell(x, y, ch, style)
		}
	}
}

// PollEvent polls for the next event (key press, mouse, etc.)
func (s *Screen) PollEvent() tcell.Event {
	return s.tcellScreen.PollEvent()
}

// Show shows the screen
func (s *Screen) Show() {
	s.tcellScreen.Show()
}

// Size returns the width and height of the screen
func (s *Screen) Size() (int, int) {
	return s.tcellScreen.Size()
}

// Theme-aware styles

// BackgroundStyle returns the default background style for the application
func (s *Screen) BackgroundStyle() tcell.Style {
	return theme.Pair(s.Theme.Colors.NodeText, s.Theme.Colors.Background)
}

// NodeFieldStyle returns the style of an unfocused node text field
func (s *Screen) NodeFieldStyle() tcell.Style {
	return theme.Pair(s.Theme.Colors.NodeText, s.Theme.Colors.NodeInputBg).Underline(true)
}

// NodeFocusedStyle returns the style of the node being edited
func (s *Screen) NodeFocusedStyle() tcell.Style {
	return theme.Pair(s.Theme.Colors.NodeFocused, s.Theme.Colors.NodeFocusBg)
}

// NodeMatchStyle returns the style of nodes matching the :find query
func (s *Screen) NodeMatchStyle() tcell.Style {
	return theme.Pair(s.Theme.Colors.NodeMatch, s.Theme.Colors.NodeMatchBg).Bold(true)
}

// CursorStyle returns the style of the text cursor inside a focused field
func (s *Screen) CursorStyle() tcell.Style {
	return s.NodeFocusedStyle().Reverse(true)
}

// ExpandMarkerStyle returns the style of the expansion glyph
func (s *Screen) ExpandMarkerStyle() tcell.Style {
	return theme.Pair(s.Theme.Colors.ExpandMarker, s.Theme.Colors.Background)
}

// GuideStyle returns the style of indentation guides
func (s *Screen) GuideStyle() tcell.Style {
	return theme.Pair(s.Theme.Colors.Guide, s.Theme.Colors.Background)
}

// AddButtonStyle returns the style of the add-child buttons
func (s *Screen) AddButtonStyle() tcell.Style {
	return theme.Pair(s.Theme.Colors.AddButton, s.Theme.Colors.Background).Bold(true)
}

// ControlBarStyle returns the style of the control bar background
func (s *Screen) ControlBarStyle() tcell.Style {
	return theme.Pair(s.Theme.Colors.ControlButton, s.Theme.Colors.ControlBarBg)
}

// ControlActiveStyle returns the style of an open control such as the scale selector
func (s *Screen) ControlActiveStyle() tcell.Style {
	return theme.Pair(s.Theme.Colors.ControlActive, s.Theme.Colors.ControlBarBg).Bold(true)
}

// DropdownStyle returns the style of scale selector entries
func (s *Screen) DropdownStyle() tcell.Style {
	return theme.Pair(s.Theme.Colors.ControlButton, s.Theme.Colors.DropdownBg)
}

// DropdownActiveStyle returns the style of the selected scale entry
func (s *Screen) DropdownActiveStyle() tcell.Style {
	return theme.Pair(s.Theme.Colors.DropdownBg, s.Theme.Colors.DropdownActive).Bold(true)
}

// StatusStyle returns the style of the status line
func (s *Screen) StatusStyle() tcell.Style {
	return theme.Pair(s.Theme.Colors.StatusText, s.Theme.Colors.Background)
}

// StatusMessageStyle returns the style of status messages
func (s *Screen) StatusMessageStyle() tcell.Style {
	return theme.Pair(s.Theme.Colors.StatusMessage, s.Theme.Colors.Background)
}

// StatusDragStyle returns the style of the drag indicator
func (s *Screen) StatusDragStyle() tcell.Style {
	return theme.Pair(s.Theme.Colors.StatusDrag, s.Theme.Colors.Background).Bold(true)
}

// CommandPromptStyle returns the style for command prompt
func (s *Screen) CommandPromptStyle() tcell.Style {
	return theme.Pair(s.Theme.Colors.CommandPrompt, s.Theme.Colors.Background)
}

// CommandTextStyle returns the style for command text
func (s *Screen) CommandTextStyle() tcell.Style {
	return theme.Pair(s.Theme.Colors.CommandText, s.Theme.Colors.Background)
}

// HelpStyle returns the style for help background
func (s *Screen) HelpStyle() tcell.Style {
	return theme.Pair(s.Theme.Colors.HelpContent, s.Theme.Colors.HelpBackground)
}

// HelpBorderStyle returns the style for help borders
func (s *Screen) HelpBorderStyle() tcell.Style {
	return theme.Pair(s.Theme.Colors.HelpBorder, s.Theme.Colors.HelpBackground)
}

// HelpTitleStyle returns the style for help title
func (s *Screen) HelpTitleStyle() tcell.Style {
	return theme.Pair(s.Theme.Colors.HelpTitle, s.Theme.Colors.HelpBackground).Bold(true)
}

// Sync redraws the whole terminal after a resize
func (s *Screen) Sync() {
	s.tcellScreen.Sync()
}
