package ui

import (
	"github.com/pstuifzand/tui-board/internal/viewport"
)

// ControlAction is what a click on the control bar asks for
type ControlAction int

const (
	ControlNone ControlAction = iota
	ControlCenter
	ControlZoomIn
	ControlZoomOut
	ControlToggleDropdown
	ControlSelectPreset
	ControlCloseDropdown
)

func (a ControlAction) String() string {
	switch a {
	case ControlCenter:
		return "center"
	case ControlZoomIn:
		return "zoom-in"
	case ControlZoomOut:
		return "zoom-out"
	case ControlToggleDropdown:
		return "toggle-dropdown"
	case ControlSelectPreset:
		return "select-preset"
	case ControlCloseDropdown:
		return "close-dropdown"
	}
	return "none"
}

type controlButton struct {
	action ControlAction
	rect   viewport.Rect
}

// ControlBar is the row of buttons above the board: center, zoom in,
// scale selector and zoom out
type ControlBar struct {
	y       int
	buttons []controlButton

	open     bool
	presets  []viewport.Preset
	items    []viewport.Rect // one per preset while open
	selector viewport.Rect
}

// NewControlBar creates a control bar drawn on screen row y
func NewControlBar(y int) *ControlBar {
	return &ControlBar{
		y:       y,
		presets: viewport.Presets(),
	}
}

// Height is the number of rows the bar occupies
func (c *ControlBar) Height() int {
	return 1
}

// IsOpen reports whether the preset dropdown is showing
func (c *ControlBar) IsOpen() bool {
	return c.open
}

// Toggle opens or closes the dropdown
func (c *ControlBar) Toggle() {
	c.open = !c.open
}

// Close closes the dropdown
func (c *ControlBar) Close() {
	c.open = false
}

func selectorLabel(label string) string {
	return "[" + padLeft(label, 4) + " ▾]"
}

func padLeft(s string, width int) string {
	for StringWidth(s) < width {
		s = " " + s
	}
	return s
}

// Render draws the bar, and the dropdown when open. current is the
// viewport's scale label and active its preset index (-1 when none).
func (c *ControlBar) Render(screen *Screen, current string, active int) {
	width, height := screen.Size()
	barStyle := screen.ControlBarStyle()
	screen.Fill(viewport.Rect{X: 0, Y: c.y, W: width, H: 1}, ' ', barStyle)

	c.buttons = c.buttons[:0]
	x := 1
	add := func(label string, action ControlAction) {
		style := barStyle
		if action == ControlToggleDropdown && c.open {
			style = screen.ControlActiveStyle()
		}
		w := screen.DrawString(x, c.y, label, style)
		c.buttons = append(c.buttons, controlButton{action: action, rect: viewport.Rect{X: x, Y: c.y, W: w, H: 1}})
		x += w + 1
	}
	add("[Go to center]", ControlCenter)
	add("[+]", ControlZoomIn)
	add(selectorLabel(current), ControlToggleDropdown)
	c.selector = c.buttons[len(c.buttons)-1].rect
	add("[-]", ControlZoomOut)

	c.items = c.items[:0]
	if !c.open {
		return
	}

	// Start the list so the active preset stays on screen
	room := height - c.y - 1
	first := 0
	if room < len(c.presets) && active >= room {
		first = active - room + 1
	}
	w := c.selector.W
	for i := first; i < len(c.presets) && c.y+1+i-first < height; i++ {
		y := c.y + 1 + i - first
		style := screen.DropdownStyle()
		if i == active {
			style = screen.DropdownActiveStyle()
		}
		for dx := 0; dx < w; dx++ {
			screen.SetCell(c.selector.X+dx, y, ' ', style)
		}
		screen.DrawString(c.selector.X+1, y, padLeft(c.presets[i].Label, 4), style)
		for len(c.items) < i {
			c.items = append(c.items, viewport.Rect{})
		}
		c.items = append(c.items, viewport.Rect{X: c.selector.X, Y: y, W: w, H: 1})
	}
}

// Click resolves a click at (x, y). ok is false when the click did not
// land on the bar or the dropdown; value is the preset for
// ControlSelectPreset.
func (c *ControlBar) Click(x, y int) (action ControlAction, value string, ok bool) {
	if c.open {
		for i, r := range c.items {
			if r.Contains(x, y) {
				c.open = false
				return ControlSelectPreset, c.presets[i].Value, true
			}
		}
	}
	for _, b := range c.buttons {
		if b.rect.Contains(x, y) {
			if b.action == ControlToggleDropdown {
				c.open = !c.open
			} else {
				c.open = false
			}
			return b.action, "", true
		}
	}
	if y == c.y {
		if c.open {
			c.open = false
			return ControlCloseDropdown, "", true
		}
		return ControlNone, "", true
	}
	if c.open {
		// a click outside closes the dropdown and is swallowed
		c.open = false
		return ControlCloseDropdown, "", true
	}
	return ControlNone, "", false
}
