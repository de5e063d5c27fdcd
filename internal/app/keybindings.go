package app

import "github.com/pstuifzand/tui-board/internal/ui"

// KeyBinding represents a key binding with its description and handler
type KeyBinding struct {
	Key         rune
	Description string
	Handler     func(*App)
}

// GetKey returns the key of this keybinding
func (kb *KeyBinding) GetKey() rune {
	return kb.Key
}

// GetDescription returns the description of this keybinding
func (kb *KeyBinding) GetDescription() string {
	return kb.Description
}

// InitializeKeybindings sets up the shortcuts available when no field is
// being edited
func (a *App) InitializeKeybindings() []KeyBinding {
	return []KeyBinding{
		{
			Key:         'c',
			Description: "go to center",
			Handler: func(app *App) {
				app.center()
			},
		},
		{
			Key:         '+',
			Description: "zoom in",
			Handler: func(app *App) {
				app.zoomIn()
			},
		},
		{
			Key:         '=',
			Description: "zoom in",
			Handler: func(app *App) {
				app.zoomIn()
			},
		},
		{
			Key:         '-',
			Description: "zoom out",
			Handler: func(app *App) {
				app.zoomOut()
			},
		},
		{
			Key:         ':',
			Description: "command line",
			Handler: func(app *App) {
				app.bar.Close()
				app.command.Start()
			},
		},
		{
			Key:         '?',
			Description: "toggle help",
			Handler: func(app *App) {
				app.showHelp()
			},
		},
		{
			Key:         'q',
			Description: "quit",
			Handler: func(app *App) {
				app.Quit()
			},
		},
	}
}

// GetKeybindingByKey returns the binding for key, or nil
func (a *App) GetKeybindingByKey(key rune) *KeyBinding {
	for i := range a.keybindings {
		if a.keybindings[i].Key == key {
			return &a.keybindings[i]
		}
	}
	return nil
}

func (a *App) showHelp() {
	infos := make([]ui.KeyBindingInfo, 0, len(a.keybindings))
	for i := range a.keybindings {
		infos = append(infos, &a.keybindings[i])
	}
	a.overlay.Show("Help", ui.HelpLines(infos))
}
