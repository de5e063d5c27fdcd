package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/pstuifzand/tui-board/internal/app"
	"github.com/pstuifzand/tui-board/internal/config"
	"github.com/pstuifzand/tui-board/internal/theme"
	"github.com/pstuifzand/tui-board/internal/ui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var (
		debug      bool
		configPath string
		themeName  string
		rootLabel  string
		logPath    string
	)

	flagSet := pflag.NewFlagSet("tui-board", pflag.ContinueOnError)
	flagSet.BoolVar(&debug, "debug", false, "log debug records and show key events")
	flagSet.StringVar(&configPath, "config", "", "config file (default: ~/.config/tui-board/config.toml)")
	flagSet.StringVar(&themeName, "theme", "", "theme name or path, overrides the config file")
	flagSet.StringVar(&rootLabel, "root", "", "label of the root node, overrides the config file")
	flagSet.StringVar(&logPath, "log", "tui-board.log", "log file")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if flagSet.NArg() > 0 {
		return fmt.Errorf("unexpected argument: %s", flagSet.Arg(0))
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if rootLabel != "" {
		cfg.Board.RootLabel = rootLabel
	}
	if themeName != "" {
		cfg.Theme = themeName
	}

	level := new(slog.LevelVar)
	logger, closeLog, err := openLogger(logPath, level)
	if err != nil {
		return fmt.Errorf("cannot open log file %s: %w", logPath, err)
	}
	defer closeLog()

	screen, err := ui.NewScreen(theme.LoadThemeOrDefault(cfg.Theme))
	if err != nil {
		return err
	}

	application := app.New(screen, cfg, logger)
	application.SetLogLevel(level)
	application.SetDebugMode(debug)

	if err := application.Run(); err != nil {
		return fmt.Errorf("runtime error: %w", err)
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromFile(path)
}

// openLogger writes text records to path; the terminal belongs to the
// board while it runs. level stays live so :debug can change it.
func openLogger(path string, level *slog.LevelVar) (*slog.Logger, func(), error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewTextHandler(file, &slog.HandlerOptions{Level: level})
	return slog.New(handler), func() { file.Close() }, nil
}
