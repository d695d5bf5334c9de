package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/jask/filetally/internal/config"
	"github.com/jask/filetally/internal/picker"
	"github.com/jask/filetally/internal/selection"
	"github.com/jask/filetally/internal/tui"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if cfg.Print {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		if err := printSelection(os.Stdout, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger, closeLog, err := tuiLogger(cfg.Log.Path)
	if err != nil {
		log.Fatalf("log: %v", err)
	}

	p := tea.NewProgram(tui.New(cfg, logger), tea.WithAltScreen())
	if err := runTUI(p, closeLog); err != nil {
		log.Fatalf("%v", err)
	}
}

type program interface {
	Run() (tea.Model, error)
}

// runTUI closes the log file before reporting so the error reaches stderr.
func runTUI(p program, closeLog func()) error {
	_, err := p.Run()
	closeLog()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// printSelection renders the paths in cfg.Args the way the TUI would.
func printSelection(w io.Writer, cfg config.Config, logger *slog.Logger) error {
	snap, err := picker.Stat(cfg.Args)
	if err != nil {
		return err
	}
	out := selection.NewListRegion()
	r := selection.NewRenderer(selection.StaticName(cfg.UI.UserName), selection.StaticSelection(snap), out, cfg.Selection())
	lines := r.SelectionChanged()
	logger.Debug("rendered", "files", len(snap), "lines", len(lines))
	for _, n := range out.Nodes() {
		if _, err := fmt.Fprintln(w, n.Text); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

// tuiLogger writes to path when set; the terminal belongs to the TUI.
func tuiLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := tea.LogToFile(path, "filetally")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	// LogToFile also redirects the std logger; point it back on close.
	return logger, func() {
		log.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}
