// Package selection turns a snapshot of selected files into summary lines.
//
// Allowed here:
// - the file/snapshot data model and size formatting
// - the renderer and the output region contract it writes to
//
// Not allowed here:
// - file system access, terminal rendering, key handling
package selection

// EmptyText is the only line rendered for an empty selection.
const EmptyText = "No files selected."

// FileDescriptor describes one selected file as reported by the host.
type FileDescriptor struct {
	Name string
	Size int64
}

// Snapshot is the ordered set of files a selection control reports.
type Snapshot []FileDescriptor

type Unit string

const (
	UnitKilobytes Unit = "kilobytes"
	UnitBytes     Unit = "bytes"
)

// ParseUnit accepts the unit names used in config and flags.
func ParseUnit(s string) (Unit, bool) {
	switch Unit(s) {
	case UnitKilobytes, "":
		return UnitKilobytes, true
	case UnitBytes:
		return UnitBytes, true
	}
	return "", false
}

// DisplayConfig controls how each line is built.
type DisplayConfig struct {
	PrependUserName bool
	Unit            Unit
	// Class tags every output node, e.g. "file" or "schematic".
	Class string
}

const defaultClass = "file"

func (c DisplayConfig) normalized() DisplayConfig {
	if c.Unit == "" {
		c.Unit = UnitKilobytes
	}
	if c.Class == "" {
		c.Class = defaultClass
	}
	return c
}

// RenderedList is the text produced by one render call.
type RenderedList []string

func (l RenderedList) Equal(other RenderedList) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}
	return true
}
