package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// CommandMode manages command line input (`:command`)
type CommandMode struct {
	active  bool
	input   LineInput
	history *History
}

// NewCommandMode creates a new CommandMode with in-memory history
func NewCommandMode() *CommandMode {
	return &CommandMode{
		history: NewHistory(50),
	}
}

// Start enters command mode
func (c *CommandMode) Start() {
	c.active = true
	c.input.SetText("")
	c.history.Reset()
}

// Stop exits command mode
func (c *CommandMode) Stop() {
	c.active = false
}

// IsActive returns whether command mode is active
func (c *CommandMode) IsActive() bool {
	return c.active
}

// HandleKey processes a key press in command mode. done is true when the
// command line closed; command is empty when it was cancelled.
func (c *CommandMode) HandleKey(ev *tcell.EventKey) (command string, done bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		if prev, ok := c.history.Previous(c.input.Text()); ok {
			c.input.SetText(prev)
		}
		return "", false
	case tcell.KeyDown:
		if next, ok := c.history.Next(); ok {
			c.input.SetText(next)
		}
		return "", false
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		// Backspace on an empty line leaves command mode
		if c.input.Text() == "" {
			c.Stop()
			return "", true
		}
	}

	switch c.input.HandleKey(ev) {
	case InputCancelled:
		c.Stop()
		return "", true
	case InputSubmitted:
		cmd := strings.TrimSpace(c.input.Text())
		c.history.Add(cmd)
		c.Stop()
		return cmd, true
	}
	return "", false
}

// GetInput returns the current command input
func (c *CommandMode) GetInput() string {
	return strings.TrimSpace(c.input.Text())
}

// Render renders the command line
func (c *CommandMode) Render(screen *Screen, y int) {
	if !c.active {
		return
	}
	width, _ := screen.Size()
	x := screen.DrawString(0, y, ":", screen.CommandPromptStyle())
	c.input.Render(screen, x, y, width-x, screen.CommandTextStyle(), screen.CommandTextStyle().Reverse(true))
}

// ParseCommand splits a command line into words, honoring single and
// double quotes and backslash escapes
func ParseCommand(input string) []string {
	var parts []string
	var current strings.Builder
	var quote rune
	inWord := false
	escaped := false

	for _, r := range input {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
			inWord = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inWord = true
		case r == ' ' || r == '\t':
			if inWord {
				parts = append(parts, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteRune(r)
			inWord = true
		}
	}
	if inWord {
		parts = append(parts, current.String())
	}
	return parts
}
