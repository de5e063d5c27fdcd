package ui

import "fmt"

// KeyBindingInfo is a single-key shortcut shown in the help overlay
type KeyBindingInfo interface {
	GetKey() rune
	GetDescription() string
}

// Overlay is a bordered box drawn over the board, used for the help
// text and the message history
type Overlay struct {
	visible bool
	title   string
	lines   []string
	offset  int
}

// NewOverlay creates a hidden overlay
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Show replaces the content and makes the overlay visible
func (o *Overlay) Show(title string, lines []string) {
	o.title = title
	o.lines = lines
	o.offset = 0
	o.visible = true
}

// Hide closes the overlay
func (o *Overlay) Hide() {
	o.visible = false
}

// IsVisible returns whether the overlay is shown
func (o *Overlay) IsVisible() bool {
	return o.visible
}

// Title returns the current title
func (o *Overlay) Title() string {
	return o.title
}

// Scroll moves the content by delta lines
func (o *Overlay) Scroll(delta int) {
	o.offset = min(max(o.offset+delta, 0), max(len(o.lines)-1, 0))
}

// HelpLines describes the mouse actions, the given shortcuts and the
// commands
func HelpLines(keys []KeyBindingInfo) []string {
	lines := []string{
		"Mouse:",
		"  click a label      edit the node",
		"  click [+]          add a child and expand the node",
		"  click board [+]    add under the root without expanding",
		"  drag empty space   pan the board",
		"",
		"Keys (when not editing):",
	}
	for _, kb := range keys {
		lines = append(lines, fmt.Sprintf("  %c        %s", kb.GetKey(), kb.GetDescription()))
	}
	return append(lines,
		"",
		"Editing:",
		"  Enter Esc          leave the field",
		"  Ctrl+A Ctrl+E      start / end of line",
		"  Ctrl+U Ctrl+K      delete to start / end",
		"  Ctrl+W             delete word",
		"",
		"Commands:",
		"  :q :quit           quit",
		"  :center            go to center",
		"  :zoom 1.5          set a scale preset",
		"  :find text         highlight matching nodes",
		"  :nofind            clear highlighting",
		"  :set key value     board setting for this session",
		"  :dump [/0/1]       write the tree or a subtree to the log",
		"  :messages          show status history",
		"  :debug             toggle debug logging",
		"  :help              show this help",
	)
}

// Render draws the overlay centered on the screen
func (o *Overlay) Render(screen *Screen) {
	if !o.visible {
		return
	}
	width, height := screen.Size()

	contentStyle := screen.HelpStyle()
	borderStyle := screen.HelpBorderStyle()

	startX, startY := 4, 2
	boxWidth := width - 2*startX
	boxHeight := height - 2*startY
	if boxWidth < 10 || boxHeight < 4 {
		return
	}
	endX := startX + boxWidth - 1
	endY := startY + boxHeight - 1

	for y := startY; y <= endY; y++ {
		for x := startX; x <= endX; x++ {
			screen.SetCell(x, y, ' ', contentStyle)
		}
		screen.SetCell(startX, y, '│', borderStyle)
		screen.SetCell(endX, y, '│', borderStyle)
	}
	for x := startX + 1; x < endX; x++ {
		screen.SetCell(x, startY, '─', borderStyle)
		screen.SetCell(x, endY, '─', borderStyle)
	}
	screen.SetCell(startX, startY, '┌', borderStyle)
	screen.SetCell(endX, startY, '┐', borderStyle)
	screen.SetCell(startX, endY, '└', borderStyle)
	screen.SetCell(endX, endY, '┘', borderStyle)

	title := " " + o.title + " (Esc to close) "
	screen.DrawString(startX+2, startY, TruncateToWidth(title, boxWidth-4), screen.HelpTitleStyle())

	inner := boxWidth - 4
	y := startY + 1
	for _, line := range o.lines[min(o.offset, len(o.lines)):] {
		if y >= endY {
			break
		}
		screen.DrawString(startX+2, y, TruncateToWidthWithEllipsis(line, inner), contentStyle)
		y++
	}
}
