// Package picker is the file-selection control: it scans a directory and
// keeps a filterable multi-select list of the files found.
package picker

import (
	"sort"
	"strings"

	"github.com/jask/filetally/internal/selection"
)

type Action int

const (
	ActionNone Action = iota
	ActionMoved
	ActionToggled
	ActionSelectedAll
	ActionCleared
	ActionFilterChanged
	ActionFilterClosed
)

// Result reports what a key did. SelectionChanged is the host's cue to
// re-render.
type Result struct {
	Action           Action
	SelectionChanged bool
}

type scoredItem struct {
	idx   int
	score int
}

// State is a multi-select list over scanned files. Items are addressed by
// their index in the scan order.
type State struct {
	items     []selection.FileDescriptor
	filtered  []int
	selected  map[int]bool
	query     string
	filtering bool
	cursor    int
}

func New(items []selection.FileDescriptor) *State {
	s := &State{selected: make(map[int]bool)}
	s.SetItems(items)
	return s
}

// SetItems replaces the list. Selections are kept for files whose name is
// still present.
func (s *State) SetItems(items []selection.FileDescriptor) {
	keep := make(map[string]bool)
	for idx := range s.selected {
		if idx < len(s.items) {
			keep[s.items[idx].Name] = true
		}
	}
	s.items = append([]selection.FileDescriptor(nil), items...)
	s.selected = make(map[int]bool)
	for i, it := range s.items {
		if keep[it.Name] {
			s.selected[i] = true
		}
	}
	s.rebuildFiltered()
}

func (s *State) Items() []selection.FileDescriptor {
	return append([]selection.FileDescriptor(nil), s.items...)
}

func (s *State) Query() string   { return s.query }
func (s *State) Filtering() bool { return s.filtering }
func (s *State) Cursor() int     { return s.cursor }

func (s *State) SetQuery(q string) {
	s.query = q
	s.rebuildFiltered()
}

// Snapshot reports the selected files in scan order regardless of the
// current filter.
func (s *State) Snapshot() selection.Snapshot {
	if len(s.selected) == 0 {
		return nil
	}
	out := make(selection.Snapshot, 0, len(s.selected))
	for i, it := range s.items {
		if s.selected[i] {
			out = append(out, it)
		}
	}
	return out
}

// Row is one visible line of the picker.
type Row struct {
	File     selection.FileDescriptor
	Selected bool
	Cursor   bool
}

func (s *State) Rows() []Row {
	rows := make([]Row, 0, len(s.filtered))
	for pos, idx := range s.filtered {
		rows = append(rows, Row{
			File:     s.items[idx],
			Selected: s.selected[idx],
			Cursor:   pos == s.cursor,
		})
	}
	return rows
}

func (s *State) CursorUp() bool {
	if s.cursor > 0 {
		s.cursor--
		return true
	}
	return false
}

func (s *State) CursorDown() bool {
	if s.cursor < len(s.filtered)-1 {
		s.cursor++
		return true
	}
	return false
}

// Toggle flips the file under the cursor.
func (s *State) Toggle() bool {
	if len(s.filtered) == 0 {
		return false
	}
	idx := s.filtered[s.cursor]
	if s.selected[idx] {
		delete(s.selected, idx)
	} else {
		s.selected[idx] = true
	}
	return true
}

// SelectAll selects every visible file.
func (s *State) SelectAll() bool {
	changed := false
	for _, idx := range s.filtered {
		if !s.selected[idx] {
			s.selected[idx] = true
			changed = true
		}
	}
	return changed
}

func (s *State) ClearSelection() bool {
	if len(s.selected) == 0 {
		return false
	}
	s.selected = make(map[int]bool)
	return true
}

// HandleKey applies one key. While filtering, printable keys edit the query;
// enter keeps it and esc drops it.
func (s *State) HandleKey(keyName string) Result {
	if s.filtering {
		return s.handleFilterKey(keyName)
	}
	switch keyName {
	case "k", "up":
		if s.CursorUp() {
			return Result{Action: ActionMoved}
		}
	case "j", "down":
		if s.CursorDown() {
			return Result{Action: ActionMoved}
		}
	case "space", " ":
		if s.Toggle() {
			return Result{Action: ActionToggled, SelectionChanged: true}
		}
	case "a":
		if s.SelectAll() {
			return Result{Action: ActionSelectedAll, SelectionChanged: true}
		}
	case "x":
		if s.ClearSelection() {
			return Result{Action: ActionCleared, SelectionChanged: true}
		}
	case "/":
		s.filtering = true
		return Result{Action: ActionFilterChanged}
	case "esc":
		if s.query != "" {
			s.SetQuery("")
			return Result{Action: ActionFilterClosed}
		}
	}
	return Result{Action: ActionNone}
}

func (s *State) handleFilterKey(keyName string) Result {
	switch keyName {
	case "enter":
		s.filtering = false
		return Result{Action: ActionFilterClosed}
	case "esc":
		s.filtering = false
		s.SetQuery("")
		return Result{Action: ActionFilterClosed}
	case "backspace":
		if len(s.query) > 0 {
			s.SetQuery(s.query[:len(s.query)-1])
			return Result{Action: ActionFilterChanged}
		}
	case "up":
		if s.CursorUp() {
			return Result{Action: ActionMoved}
		}
	case "down":
		if s.CursorDown() {
			return Result{Action: ActionMoved}
		}
	default:
		if keyName == "space" {
			keyName = " "
		}
		if isPrintableASCIIKey(keyName) {
			s.SetQuery(s.query + keyName)
			return Result{Action: ActionFilterChanged}
		}
	}
	return Result{Action: ActionNone}
}

// rebuildFiltered keeps scan order for an empty query and ranks by match
// score otherwise.
func (s *State) rebuildFiltered() {
	q := strings.TrimSpace(s.query)
	scored := make([]scoredItem, 0, len(s.items))
	for i, it := range s.items {
		matched, score := fuzzyMatchScore(it.Name, q)
		if !matched {
			continue
		}
		scored = append(scored, scoredItem{idx: i, score: score})
	}
	if q != "" {
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].score > scored[j].score
		})
	}
	s.filtered = s.filtered[:0]
	for _, sc := range scored {
		s.filtered = append(s.filtered, sc.idx)
	}

	if s.cursor > len(s.filtered)-1 {
		s.cursor = len(s.filtered) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func fuzzyMatchScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	labelLower := strings.ToLower(label)
	queryLower := strings.ToLower(query)

	matchIdx := make([]int, 0, len(queryLower))
	searchFrom := 0
	for i := 0; i < len(queryLower); i++ {
		ch := queryLower[i]
		found := false
		for j := searchFrom; j < len(labelLower); j++ {
			if labelLower[j] == ch {
				matchIdx = append(matchIdx, j)
				searchFrom = j + 1
				found = true
				break
			}
		}
		if !found {
			return false, 0
		}
	}

	score := len(queryLower)
	if len(matchIdx) > 0 && matchIdx[0] == 0 {
		score += 10
	}
	for i := 1; i < len(matchIdx); i++ {
		if matchIdx[i] == matchIdx[i-1]+1 {
			score += 3
		}
	}
	if strings.EqualFold(label, query) {
		score += 20
	}
	return true, score
}

func isPrintableASCIIKey(keyName string) bool {
	return len(keyName) == 1 && keyName[0] >= 32 && keyName[0] < 127
}
