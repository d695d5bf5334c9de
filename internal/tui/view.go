package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/filetally/internal/selection"
)

const (
	defaultWidth  = 100
	defaultHeight = 6
	minPaneHeight = 3
	// header, name line, status line and the two pane borders
	chromeLines = 5
)

func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = defaultWidth
	}

	header := ansi.Truncate(titleStyle.Render("filetally")+"  "+a.renderSettings(), width, "…")
	nameLine := ansi.Truncate(infoLabelStyle.Render("Name: ")+a.name.View(), width, "…")

	helpView := a.help.View(a.keys)
	paneWidth := max(20, (width-4)/2)
	paneHeight := defaultHeight
	if a.height > 0 {
		paneHeight = max(minPaneHeight, a.height-chromeLines-lipgloss.Height(helpView))
	}
	files := a.renderFilesPane(paneWidth, paneHeight)
	output := a.renderOutputPane(paneWidth, paneHeight)
	body := lipgloss.JoinHorizontal(lipgloss.Top, files, output)

	status := ""
	if a.status != "" {
		if a.statusErr {
			status = statusErrStyle.Render(a.status)
		} else {
			status = statusStyle.Render(a.status)
		}
		status = ansi.Truncate(status, width, "…")
	}

	return strings.Join([]string{header, nameLine, body, status, helpView}, "\n")
}

func (a *App) renderSettings() string {
	cfg := a.renderer.Config()
	prefix := "off"
	if cfg.PrependUserName {
		prefix = "on"
	}
	parts := []string{
		infoLabelStyle.Render("prefix ") + infoValueStyle.Render(prefix),
		infoLabelStyle.Render("unit ") + infoValueStyle.Render(string(cfg.Unit)),
		infoLabelStyle.Render("dir ") + infoValueStyle.Render(a.cfg.Picker.Dir),
	}
	return strings.Join(parts, "  ")
}

func (a *App) renderFilesPane(width, height int) string {
	inner := width - 4
	unit := a.renderer.Config().Unit
	lines := make([]string, 0, height)
	lines = append(lines, sectionTitleStyle.Render("Files"))

	query := a.picker.Query()
	switch {
	case a.picker.Filtering():
		lines = append(lines, infoLabelStyle.Render("Filter: ")+searchInputStyle.Render(query+"_"))
	case query != "":
		lines = append(lines, infoLabelStyle.Render("Filter: ")+searchInputStyle.Render(query))
	}

	rows := a.picker.Rows()
	if !a.loaded {
		lines = append(lines, placeholderStyle.Render("Scanning..."))
	} else if len(rows) == 0 {
		lines = append(lines, placeholderStyle.Render("(no files)"))
	}

	// keep the cursor row visible
	room := max(1, height-len(lines))
	start := 0
	for i, r := range rows {
		if r.Cursor && i >= room {
			start = i - room + 1
		}
	}
	for i := start; i < len(rows) && i < start+room; i++ {
		lines = append(lines, renderFileRow(rows[i].File, unit, rows[i].Selected, rows[i].Cursor && a.focus == focusFiles, inner))
	}

	style := paneStyle
	if a.focus == focusFiles {
		style = focusedPaneStyle
	}
	return style.Width(width - 2).Height(height).Render(strings.Join(lines, "\n"))
}

func renderFileRow(f selection.FileDescriptor, unit selection.Unit, selected, cursor bool, width int) string {
	mark := "[ ] "
	if selected {
		mark = "[x] "
	}
	prefix := "  "
	if cursor {
		prefix = cursorStyle.Render("> ")
	}
	size := sizeStyle.Render(" " + selection.FormatSize(f.Size, unit))
	row := ansi.Truncate(prefix+mark+f.Name+size, width, "…")
	if selected {
		row = selectedRowStyle.Render(padStyledLine(row, width))
	}
	return row
}

// renderOutputPane draws the renderer's nodes, one bullet per node. Nodes
// past the pane height collapse into a "… N more" line.
func (a *App) renderOutputPane(width, height int) string {
	inner := width - 4
	nodes := a.output.Nodes()
	room := max(1, height-1)
	shown := nodes
	hidden := 0
	if len(nodes) > room {
		shown = nodes[:room-1]
		hidden = len(nodes) - len(shown)
	}

	lines := []string{sectionTitleStyle.Render("Selected")}
	for _, n := range shown {
		style := outputLineStyle
		if n.Class == "" && n.Text == selection.EmptyText {
			style = emptyOutputStyle
		}
		lines = append(lines, ansi.Truncate("• "+style.Render(n.Text), inner, "…"))
	}
	if hidden > 0 {
		lines = append(lines, placeholderStyle.Render(fmt.Sprintf("… %d more", hidden)))
	}
	return paneStyle.Width(width - 2).Height(height).Render(strings.Join(lines, "\n"))
}

func padStyledLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
