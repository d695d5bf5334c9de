package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/filetally/internal/config"
	"github.com/jask/filetally/internal/picker"
	"github.com/jask/filetally/internal/selection"
)

type filesLoadedMsg struct {
	dir   string
	files []selection.FileDescriptor
	err   error
}

type configSavedMsg struct {
	err error
}

// loadFilesCmd scans dir off the update loop.
func loadFilesCmd(dir string, opts picker.ScanOptions) tea.Cmd {
	return func() tea.Msg {
		files, err := picker.Scan(dir, opts)
		return filesLoadedMsg{dir: dir, files: files, err: err}
	}
}

// savePrefixCmd persists only the prefix setting, not the merged config.
func savePrefixCmd(on bool) tea.Cmd {
	return func() tea.Msg {
		return configSavedMsg{err: config.SavePrependUserName(on)}
	}
}
