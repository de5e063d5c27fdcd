package app

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/pstuifzand/tui-board/internal/config"
	"github.com/pstuifzand/tui-board/internal/model"
	"github.com/pstuifzand/tui-board/internal/ui"
)

// handleCommand processes a command from command mode
func (a *App) handleCommand(cmd string) {
	if cmd == "" {
		return
	}

	parts := ui.ParseCommand(cmd)
	if len(parts) == 0 {
		return
	}
	a.log.Debug("command", "name", parts[0], "args", parts[1:])

	switch parts[0] {
	case "q", "quit":
		a.quit = true
	case "center":
		a.center()
	case "zoom":
		if len(parts) != 2 {
			a.SetStatus("Usage: :zoom <0.1..2>")
			return
		}
		a.setScale(parts[1])
	case "find":
		if len(parts) < 2 || parts[1] == "" {
			a.SetStatus("Usage: :find <text>")
			return
		}
		a.find(parts[1])
	case "nofind":
		a.board.ClearMatches()
		a.SetStatus("Highlighting cleared")
	case "set":
		a.handleSet(parts[1:])
	case "dump":
		a.dump(parts[1:])
	case "messages":
		a.overlay.Show("Messages", a.status.Lines())
	case "help":
		a.showHelp()
	case "debug":
		a.setDebug(!a.debugMode)
		if a.debugMode {
			a.SetStatus("Debug mode ON")
		} else {
			a.SetStatus("Debug mode OFF")
		}
	default:
		a.SetStatus("Unknown command: " + parts[0])
	}
}

func (a *App) find(query string) {
	found := a.board.Find(query)
	if len(found) == 0 {
		a.SetStatus(fmt.Sprintf("No match for %q", query))
		return
	}

	hidden := 0
	for _, p := range found {
		if !a.tree.IsVisible(p) {
			hidden++
		}
	}
	msg := fmt.Sprintf("%d match(es), best %s", len(found), describe(a.tree, found[0]))
	if hidden > 0 {
		msg += fmt.Sprintf(", %d in collapsed nodes", hidden)
	}
	a.SetStatus(msg)
}

// dump writes the whole tree, or the subtree at the given path, to the log
func (a *App) dump(args []string) {
	p := model.Path{}
	if len(args) > 0 {
		var err error
		if p, err = model.ParsePath(args[0]); err != nil {
			a.reportError("Cannot dump", err)
			return
		}
	}
	out, err := a.tree.DumpAt(p)
	if err != nil {
		a.reportError("Cannot dump", err)
		return
	}

	n, _ := a.tree.NodeAt(p)
	count := 0
	a.tree.Walk(func(q model.Path, _ int, _ *model.Node) bool {
		if len(q) >= len(p) && q[:len(p)].Equal(p) {
			count++
		}
		return true
	})
	a.log.Info("tree dump", "path", p.String(), "text", n.Text(), "version", a.tree.Version(), "nodes", count)
	a.log.Info(out)
	if p.IsRoot() {
		a.SetStatus(fmt.Sprintf("Dumped %d nodes to the log", count))
	} else {
		a.SetStatus(fmt.Sprintf("Dumped %d nodes under %s to the log", count, p))
	}
}

func describe(tree *model.Tree, p model.Path) string {
	n, err := tree.NodeAt(p)
	if err != nil {
		return p.String()
	}
	return fmt.Sprintf("%s %q", p.String(), n.Text())
}

// handleSet shows all settings, one setting, or sets a session value
func (a *App) handleSet(args []string) {
	switch len(args) {
	case 0:
		all := a.cfg.GetAll()
		for _, k := range config.BoardKeys {
			all[k], _ = a.cfg.BoardValue(k)
		}
		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		lines := make([]string, 0, len(keys))
		for _, k := range keys {
			lines = append(lines, k+" = "+all[k])
		}
		a.overlay.Show("Settings", lines)
	case 1:
		value, ok := a.cfg.BoardValue(args[0])
		if !ok {
			value = a.cfg.Get(args[0])
		}
		a.SetStatus(args[0] + " = " + value)
	default:
		key, value := args[0], args[1]
		if key == "debug" {
			on, err := strconv.ParseBool(value)
			if err != nil {
				a.reportError("Cannot set debug", err)
				return
			}
			a.setDebug(on)
			a.cfg.Set(key, value)
			a.SetStatus("Set " + key + " = " + value)
			return
		}
		if err := a.cfg.SetBoard(key, value); err != nil {
			a.reportError("Cannot set "+key, err)
			return
		}
		a.applyBoardConfig()
		a.log.Debug("board setting", "key", key, "value", value, "scale", a.view.Scale())
		a.SetStatus("Set " + key + " = " + value)
	}
}
