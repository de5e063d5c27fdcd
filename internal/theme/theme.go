package theme

import (
	"github.com/gdamore/tcell/v2"
)

// Colors holds all the color definitions for the board
type Colors struct {
	Background tcell.Color

	// Node rows
	NodeText     tcell.Color
	NodeInputBg  tcell.Color
	NodeFocused  tcell.Color
	NodeFocusBg  tcell.Color
	NodeMatch    tcell.Color // fuzzy :find hits
	NodeMatchBg  tcell.Color
	ExpandMarker tcell.Color
	Guide        tcell.Color // indentation guides
	AddButton    tcell.Color

	// Control bar
	ControlBarBg   tcell.Color
	ControlButton  tcell.Color
	ControlActive  tcell.Color
	DropdownBg     tcell.Color
	DropdownActive tcell.Color

	// Status and command line
	StatusText    tcell.Color
	StatusMessage tcell.Color
	StatusDrag    tcell.Color
	CommandPrompt tcell.Color
	CommandText   tcell.Color

	// Help overlay
	HelpBackground tcell.Color
	HelpBorder     tcell.Color
	HelpTitle      tcell.Color
	HelpContent    tcell.Color
}

// Theme represents a complete color theme
type Theme struct {
	Name   string
	Colors Colors
}

// Default returns a theme that leaves every color to the terminal
func Default() *Theme {
	d := tcell.ColorDefault
	return &Theme{
		Name: "default",
		Colors: Colors{
			Background: d, NodeText: d, NodeInputBg: d, NodeFocused: d, NodeFocusBg: d,
			NodeMatch: tcell.ColorYellow, NodeMatchBg: d, ExpandMarker: d, Guide: d, AddButton: d,
			ControlBarBg: d, ControlButton: d, ControlActive: d, DropdownBg: d, DropdownActive: d,
			StatusText: d, StatusMessage: d, StatusDrag: d, CommandPrompt: d, CommandText: d,
			HelpBackground: d, HelpBorder: d, HelpTitle: d, HelpContent: d,
		},
	}
}

// TokyoNight returns the Tokyo Night theme
func TokyoNight() *Theme {
	bg := Hex("#1a1b26")
	return &Theme{
		Name: "tokyo-night",
		Colors: Colors{
			Background:     bg,
			NodeText:       Hex("#c0caf5"),
			NodeInputBg:    Hex("#24283b"),
			NodeFocused:    Hex("#1a1b26"),
			NodeFocusBg:    Hex("#7aa2f7"),
			NodeMatch:      Hex("#1a1b26"),
			NodeMatchBg:    Hex("#e0af68"),
			ExpandMarker:   Hex("#7dcfff"),
			Guide:          Blend(Hex("#565f89"), bg, 0.4),
			AddButton:      Hex("#9ece6a"),
			ControlBarBg:   Hex("#16161e"),
			ControlButton:  Hex("#c0caf5"),
			ControlActive:  Hex("#bb9af7"),
			DropdownBg:     Hex("#24283b"),
			DropdownActive: Hex("#7aa2f7"),
			StatusText:     Hex("#565f89"),
			StatusMessage:  Hex("#9ece6a"),
			StatusDrag:     Hex("#f7768e"),
			CommandPrompt:  Hex("#bb9af7"),
			CommandText:    Hex("#c0caf5"),
			HelpBackground: bg,
			HelpBorder:     Hex("#7dcfff"),
			HelpTitle:      Hex("#bb9af7"),
			HelpContent:    Hex("#c0caf5"),
		},
	}
}

// builtin lists the themes that need no file on disk
var builtin = map[string]func() *Theme{
	"default":     Default,
	"tokyo-night": TokyoNight,
}
