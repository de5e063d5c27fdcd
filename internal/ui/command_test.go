package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"simple command", "center", []string{"center"}},
		{"command with argument", "zoom 1.5", []string{"zoom", "1.5"}},
		{"double quoted string", `find "red apple"`, []string{"find", "red apple"}},
		{"single quoted string", "find 'red apple'", []string{"find", "red apple"}},
		{"mixed quotes", `set "root label" and more`, []string{"set", "root label", "and", "more"}},
		{"escaped quotes", `find "say \"hi\""`, []string{"find", `say "hi"`}},
		{"escaped backslash", `find "C:\\Users\\test"`, []string{"find", `C:\Users\test`}},
		{"multiple spaces", "zoom    0.5", []string{"zoom", "0.5"}},
		{"tabs and spaces", "set\tkey\t  value", []string{"set", "key", "value"}},
		{"empty quoted string", `find ""`, []string{"find", ""}},
		{"empty input", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseCommand(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("Expected %d parts, got %d (%q). Input: %q", len(tt.expected), len(result), result, tt.input)
			}
			for i, part := range result {
				if part != tt.expected[i] {
					t.Errorf("Part %d: expected %q, got %q. Input: %q", i, tt.expected[i], part, tt.input)
				}
			}
		})
	}
}

func typeString(c *CommandMode, s string) {
	for _, r := range s {
		c.HandleKey(typeRune(r))
	}
}

func TestCommandModeSubmit(t *testing.T) {
	c := NewCommandMode()
	c.Start()
	typeString(c, " zoom 1.5 ")

	cmd, done := c.HandleKey(key(tcell.KeyEnter))
	if !done || cmd != "zoom 1.5" {
		t.Errorf("got (%q, %v), want (\"zoom 1.5\", true)", cmd, done)
	}
	if c.IsActive() {
		t.Error("command mode should stop after Enter")
	}
}

func TestCommandModeCancel(t *testing.T) {
	c := NewCommandMode()
	c.Start()
	typeString(c, "q")
	cmd, done := c.HandleKey(key(tcell.KeyEscape))
	if !done || cmd != "" {
		t.Errorf("Escape: got (%q, %v)", cmd, done)
	}

	c.Start()
	cmd, done = c.HandleKey(key(tcell.KeyBackspace2))
	if !done || cmd != "" || c.IsActive() {
		t.Error("Backspace on an empty line should leave command mode")
	}
}

func TestCommandModeHistory(t *testing.T) {
	c := NewCommandMode()
	for _, s := range []string{"center", "zoom 2"} {
		c.Start()
		typeString(c, s)
		c.HandleKey(key(tcell.KeyEnter))
	}

	c.Start()
	typeString(c, "fi")
	c.HandleKey(key(tcell.KeyUp))
	if got := c.GetInput(); got != "zoom 2" {
		t.Errorf("first Up = %q, want %q", got, "zoom 2")
	}
	c.HandleKey(key(tcell.KeyUp))
	if got := c.GetInput(); got != "center" {
		t.Errorf("second Up = %q, want %q", got, "center")
	}
	c.HandleKey(key(tcell.KeyDown))
	c.HandleKey(key(tcell.KeyDown))
	if got := c.GetInput(); got != "fi" {
		t.Errorf("Down past the newest entry = %q, want the typed text %q", got, "fi")
	}
}

func TestHistorySkipsDuplicatesAndTrims(t *testing.T) {
	h := NewHistory(2)
	h.Add("a")
	h.Add("a")
	h.Add("")
	if h.Len() != 1 {
		t.Fatalf("Len = %d, want 1", h.Len())
	}
	h.Add("b")
	h.Add("c")
	if h.Len() != 2 {
		t.Fatalf("Len = %d, want 2", h.Len())
	}
	if got, _ := h.Previous(""); got != "c" {
		t.Errorf("Previous = %q, want c", got)
	}
	if got, _ := h.Previous(""); got != "b" {
		t.Errorf("Previous = %q, want b", got)
	}
	if _, ok := h.Previous(""); ok {
		t.Error("Previous past the oldest entry should report false")
	}
}
