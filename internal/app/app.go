package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-board/internal/config"
	"github.com/pstuifzand/tui-board/internal/model"
	"github.com/pstuifzand/tui-board/internal/ui"
	"github.com/pstuifzand/tui-board/internal/viewport"
)

// App is the main application controller. All state is owned by the
// goroutine running Run; the polling goroutine only forwards events.
type App struct {
	screen  *ui.Screen
	cfg     *config.Config
	log     *slog.Logger
	tree    *model.Tree
	board   *ui.Board
	view    *viewport.Controller
	bar     *ui.ControlBar
	editor  *ui.Editor
	command *ui.CommandMode
	overlay *ui.Overlay
	status  *ui.StatusLog

	keybindings []KeyBinding

	// level is the logger's minimum level; debug mode lowers it
	level *slog.LevelVar

	// pressed is true while button 1 is held after a click that did not
	// start a drag
	pressed   bool
	quit      bool
	debugMode bool
}

// New creates an App drawing on screen. A nil logger discards log output.
func New(screen *ui.Screen, cfg *config.Config, logger *slog.Logger) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	b := cfg.Board
	tree := model.NewTree(b.RootLabel)
	view := viewport.New(viewOptions(b))

	a := &App{
		screen:  screen,
		cfg:     cfg,
		log:     logger,
		tree:    tree,
		board:   ui.NewBoard(tree, b.Indent),
		view:    view,
		bar:     ui.NewControlBar(0),
		command: ui.NewCommandMode(),
		overlay: ui.NewOverlay(),
		status:  ui.NewStatusLog(100),
	}
	a.keybindings = a.InitializeKeybindings()
	a.SetStatus("Ready")
	return a
}

func viewOptions(b config.BoardConfig) viewport.Options {
	return viewport.Options{
		Step:       b.ZoomStep,
		MinScale:   b.MinScale,
		MaxScale:   b.MaxScale,
		CenterLeft: b.CenterLeft,
		CenterTop:  b.CenterTop,
	}
}

// applyBoardConfig pushes the current [board] values into the viewport
// and the layout
func (a *App) applyBoardConfig() {
	a.view.SetOptions(viewOptions(a.cfg.Board))
	a.board.SetIndent(a.cfg.Board.Indent)
}

// Run starts the main event loop
func (a *App) Run() error {
	defer a.Close()

	eventChan := make(chan tcell.Event)

	go func() {
		for {
			event := a.screen.PollEvent()
			eventChan <- event
			if event == nil {
				break
			}
		}
	}()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	a.log.Info("board started", "root", a.tree.Root().Text(), "scale", a.view.Scale())
	a.render()

	for !a.quit {
		select {
		case ev := <-eventChan:
			if ev == nil {
				a.quit = true
				break
			}
			a.handleEvent(ev)
			a.render()
		case <-ticker.C:
			a.render()
		}
	}

	a.log.Info("board closed", "nodes", a.tree.Count())
	return nil
}

// Close closes the application
func (a *App) Close() error {
	if a.screen != nil {
		return a.screen.Close()
	}
	return nil
}

// canvas is the screen area between the control bar and the status line
func (a *App) canvas() viewport.Rect {
	w, h := a.screen.Size()
	top := a.bar.Height()
	return viewport.Rect{X: 0, Y: top, W: w, H: max(h-top-1, 0)}
}

func (a *App) render() {
	a.screen.Clear()

	canvas := a.canvas()
	a.board.Render(a.screen, canvas, a.view.Transform(canvas), a.editor)
	a.bar.Render(a.screen, a.view.ScaleLabel(), a.view.PresetIndex())

	_, h := a.screen.Size()
	if a.command.IsActive() {
		a.command.Render(a.screen, h-1)
	} else {
		a.renderStatus(h - 1)
	}

	a.overlay.Render(a.screen)
	a.screen.Show()
}

func (a *App) renderStatus(y int) {
	w, _ := a.screen.Size()
	style := a.screen.StatusStyle()
	a.screen.Fill(viewport.Rect{X: 0, Y: y, W: w, H: 1}, ' ', style)

	x := a.screen.DrawString(1, y, a.view.ScaleLabel(), style)
	x++
	if a.view.Dragging() {
		x += a.screen.DrawString(x+1, y, "DRAG", a.screen.StatusDragStyle()) + 1
	}
	if a.debugMode {
		x += a.screen.DrawString(x+1, y, "DEBUG", a.screen.StatusDragStyle()) + 1
	}

	if msg, ok := a.status.Latest(); ok {
		room := w - x - 2
		if room > 0 {
			a.screen.DrawString(x+2, y, ui.TruncateToWidthWithEllipsis(msg.Text, room), a.screen.StatusMessageStyle())
		}
	}
}

// handleEvent dispatches one tcell event
func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.cancelDrag("resize")
	case *tcell.EventFocus:
		if !ev.Focused {
			a.cancelDrag("focus lost")
		}
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventKey:
		a.handleKey(ev)
	}
}

func (a *App) cancelDrag(reason string) {
	a.pressed = false
	if a.view.Cancel() {
		dx, dy := a.view.Inner().Translation()
		a.log.Debug("drag cancelled", "reason", reason, "dx", dx, "dy", dy)
	}
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()

	if ev.Buttons()&tcell.Button1 == 0 {
		if a.view.Dragging() {
			a.view.Release()
			dx, dy := a.view.Inner().Translation()
			a.log.Debug("drag released", "dx", dx, "dy", dy)
		}
		a.pressed = false
		return
	}

	// Button 1 held: motion events arrive with the button still set
	if a.view.Dragging() {
		a.view.Move(x, y)
		return
	}
	if a.pressed {
		return
	}
	a.pressed = true

	if a.overlay.IsVisible() {
		a.overlay.Hide()
		return
	}
	if action, value, ok := a.bar.Click(x, y); ok {
		a.blur()
		a.runControl(action, value)
		return
	}
	if hit, ok := a.board.HitTest(x, y); ok {
		a.handleHit(hit)
		return
	}

	a.blur()
	if a.canvas().Contains(x, y) {
		a.pressed = false
		a.view.Press(x, y)
		a.log.Debug("drag started", "x", x, "y", y)
	}
}

func (a *App) runControl(action ui.ControlAction, value string) {
	switch action {
	case ui.ControlCenter:
		a.center()
	case ui.ControlZoomIn:
		a.zoomIn()
	case ui.ControlZoomOut:
		a.zoomOut()
	case ui.ControlSelectPreset:
		a.setScale(value)
	}
}

func (a *App) handleHit(hit ui.Hit) {
	switch hit.Kind {
	case ui.HitText:
		a.focus(hit.Path)
	case ui.HitAdd:
		a.blur()
		a.addChild(hit.Path)
	case ui.HitBoardAdd:
		a.blur()
		a.appendToRoot()
	}
}

// focus opens the inline editor on the node at p
func (a *App) focus(p model.Path) {
	if a.editor != nil && a.editor.Path().Equal(p) {
		return
	}
	n, err := a.tree.NodeAt(p)
	if err != nil {
		a.reportError("Cannot edit", err)
		return
	}
	a.editor = ui.NewEditor(p, n.Text(), a.setText)
	a.log.Debug("editing", "path", p.String())
}

// blur closes the inline editor. Text was already applied on each edit.
func (a *App) blur() {
	if a.editor == nil {
		return
	}
	a.log.Debug("editing done", "path", a.editor.Path().String(), "text", a.editor.Text())
	a.editor = nil
}

func (a *App) setText(p model.Path, text string) error {
	if err := a.tree.SetText(p, text); err != nil {
		return err
	}
	a.log.Debug("text changed", "path", p.String(), "text", text)
	return nil
}

func (a *App) addChild(p model.Path) {
	child, err := a.tree.AddChild(p)
	if err != nil {
		a.reportError("Cannot add child", err)
		return
	}
	a.log.Debug("child added", "parent", p.String(), "child", child.String())
	a.SetStatus("Added " + child.String())
}

func (a *App) appendToRoot() {
	child, err := a.tree.AppendChild(model.Path{})
	if err != nil {
		a.reportError("Cannot add child", err)
		return
	}
	a.log.Debug("child appended", "child", child.String(), "expanded", a.tree.Root().Expanded())
	if a.tree.Root().Expanded() {
		a.SetStatus("Added " + child.String())
	} else {
		a.SetStatus(fmt.Sprintf("Added %s (root collapsed, %d hidden)", child.String(), a.tree.Root().Len()))
	}
}

func (a *App) center() {
	a.view.Center()
	a.SetStatus("Centered")
}

func (a *App) zoomIn() {
	a.view.ZoomIn()
	a.log.Debug("zoom", "scale", a.view.Scale())
	a.SetStatus("Zoom " + a.view.ScaleLabel())
}

func (a *App) zoomOut() {
	a.view.ZoomOut()
	a.log.Debug("zoom", "scale", a.view.Scale())
	a.SetStatus("Zoom " + a.view.ScaleLabel())
}

func (a *App) setScale(value string) {
	if err := a.view.SetScalePreset(value); err != nil {
		a.reportError("Cannot zoom", err)
		return
	}
	a.log.Debug("zoom preset", "scale", a.view.Scale())
	a.SetStatus("Zoom " + a.view.ScaleLabel())
}

func (a *App) reportError(prefix string, err error) {
	a.log.Warn(prefix, "error", err)
	a.SetStatus(prefix + ": " + err.Error())
}

func (a *App) handleKey(ev *tcell.EventKey) {
	if a.debugMode {
		a.log.Debug("key", "key", ev.Key(), "rune", string(ev.Rune()), "mod", ev.Modifiers())
	}

	if a.command.IsActive() {
		if cmd, done := a.command.HandleKey(ev); done {
			a.handleCommand(cmd)
		}
		return
	}

	if a.overlay.IsVisible() {
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Rune() == '?', ev.Rune() == 'q':
			a.overlay.Hide()
		case ev.Key() == tcell.KeyUp, ev.Rune() == 'k':
			a.overlay.Scroll(-1)
		case ev.Key() == tcell.KeyDown, ev.Rune() == 'j':
			a.overlay.Scroll(1)
		}
		return
	}

	if a.editor != nil {
		done, err := a.editor.HandleKey(ev)
		if err != nil {
			a.reportError("Cannot edit", err)
		}
		if done {
			a.blur()
		}
		return
	}

	if ev.Key() == tcell.KeyEscape {
		a.bar.Close()
		return
	}
	if ev.Key() != tcell.KeyRune {
		return
	}
	if kb := a.GetKeybindingByKey(ev.Rune()); kb != nil {
		kb.Handler(a)
	}
}

// SetStatus sets the status message
func (a *App) SetStatus(msg string) {
	a.status.Add(msg)
}

// Quit signals the app to quit
func (a *App) Quit() {
	a.quit = true
}

// SetDebugMode enables or disables debug mode
func (a *App) SetDebugMode(debug bool) {
	a.setDebug(debug)
}

// SetLogLevel hands the app the level variable of its logger's handler so
// debug mode can raise and lower it
func (a *App) SetLogLevel(level *slog.LevelVar) {
	a.level = level
	a.setDebug(a.debugMode)
}

func (a *App) setDebug(on bool) {
	a.debugMode = on
	if a.level == nil {
		return
	}
	if on {
		a.level.Set(slog.LevelDebug)
	} else {
		a.level.Set(slog.LevelInfo)
	}
}

// Tree returns the board's tree
func (a *App) Tree() *model.Tree {
	return a.tree
}

// Viewport returns the viewport controller
func (a *App) Viewport() *viewport.Controller {
	return a.view
}
