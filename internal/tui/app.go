// Package tui hosts the selection renderer in a terminal: a name field, a
// file picker and the output pane the renderer owns.
package tui

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/filetally/internal/config"
	"github.com/jask/filetally/internal/picker"
	"github.com/jask/filetally/internal/selection"
)

type focusArea int

const (
	focusFiles focusArea = iota
	focusName
)

// App is the Bubble Tea model.
type App struct {
	cfg      config.Config
	log      *slog.Logger
	keys     keyMap
	help     help.Model
	name     textinput.Model
	picker   *picker.State
	output   *selection.ListRegion
	renderer *selection.Renderer
	focus    focusArea

	status    string
	statusErr bool
	loaded    bool
	width     int
	height    int
}

// New wires the three regions into a renderer. A nil logger discards.
func New(cfg config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	name := textinput.New()
	name.Placeholder = "your name"
	name.Prompt = ""
	name.CharLimit = 64
	name.SetValue(cfg.UI.UserName)

	a := &App{
		cfg:    cfg,
		log:    logger,
		keys:   newKeyMap(),
		help:   help.New(),
		name:   name,
		picker: picker.New(nil),
		output: selection.NewListRegion(),
	}
	a.renderer = selection.NewRenderer(nameField{input: &a.name}, a.picker, a.output, cfg.Selection())
	a.renderer.SelectionChanged()
	return a
}

// nameField exposes the text input as the renderer's name source.
type nameField struct {
	input *textinput.Model
}

func (n nameField) Value() string { return n.input.Value() }

// Output returns the lines currently shown in the output pane.
func (a *App) Output() []string {
	return a.output.Lines()
}

func (a *App) Init() tea.Cmd {
	return loadFilesCmd(a.cfg.Picker.Dir, a.scanOptions())
}

func (a *App) scanOptions() picker.ScanOptions {
	return picker.ScanOptions{ShowHidden: a.cfg.Picker.ShowHidden, Extensions: a.cfg.Picker.Extensions}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		a.help.Width = m.Width
		return a, nil
	case filesLoadedMsg:
		return a.handleFilesLoaded(m)
	case configSavedMsg:
		if m.err != nil {
			a.setError(fmt.Sprintf("Save settings failed: %v", m.err))
			a.log.Warn("save config", "err", m.err)
		}
		return a, nil
	case tea.KeyMsg:
		if m.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.focus == focusName {
			return a.updateName(m)
		}
		return a.updateFiles(m)
	}
	return a, nil
}

func (a *App) handleFilesLoaded(msg filesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		a.setError(fmt.Sprintf("File scan error: %v", msg.err))
		a.log.Warn("scan failed", "dir", msg.dir, "err", msg.err)
		return a, nil
	}
	before := a.picker.Snapshot()
	a.picker.SetItems(msg.files)
	a.loaded = true
	a.setStatus(fmt.Sprintf("%d files in %s", len(msg.files), msg.dir))
	a.log.Debug("scan done", "dir", msg.dir, "files", len(msg.files))
	if !sameSnapshot(before, a.picker.Snapshot()) {
		a.selectionChanged()
	}
	return a, nil
}

// updateName routes keys to the text input. Editing the name does not
// re-render; the new name shows on the next selection change.
func (a *App) updateName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Focus), key.Matches(msg, a.keys.Close), msg.String() == "enter":
		a.focusFiles()
		return a, nil
	}
	var cmd tea.Cmd
	a.name, cmd = a.name.Update(msg)
	return a, cmd
}

func (a *App) updateFiles(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.picker.Filtering() {
		a.applyPickerResult(a.picker.HandleKey(msg.String()))
		return a, nil
	}
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Focus):
		a.focus = focusName
		return a, a.name.Focus()
	case key.Matches(msg, a.keys.ToggleHelp):
		a.help.ShowAll = !a.help.ShowAll
		return a, nil
	case key.Matches(msg, a.keys.Prefix):
		return a, a.togglePrefix()
	case key.Matches(msg, a.keys.Rescan):
		a.setStatus("Scanning...")
		return a, loadFilesCmd(a.cfg.Picker.Dir, a.scanOptions())
	}
	a.applyPickerResult(a.picker.HandleKey(msg.String()))
	return a, nil
}

func (a *App) applyPickerResult(res picker.Result) {
	if res.SelectionChanged {
		a.selectionChanged()
	}
}

// selectionChanged is the selection-changed event handler.
func (a *App) selectionChanged() {
	lines := a.renderer.SelectionChanged()
	a.log.Debug("rendered selection", "lines", len(lines), "prefix", a.renderer.Config().PrependUserName)
}

func (a *App) togglePrefix() tea.Cmd {
	on := !a.renderer.Config().PrependUserName
	a.renderer.SetPrependUserName(on)
	a.cfg.Display.PrependUserName = on
	a.selectionChanged()
	if on {
		a.setStatus("Prefixing lines with name")
	} else {
		a.setStatus("Name prefix off")
	}
	return savePrefixCmd(on)
}

func (a *App) focusFiles() {
	a.focus = focusFiles
	a.name.Blur()
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(s string) {
	a.status = s
	a.statusErr = true
}

func sameSnapshot(x, y selection.Snapshot) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}
