package selection

import "github.com/google/uuid"

// Node is one structured output entry. Text is displayed as-is; it is never
// interpreted as markup.
type Node struct {
	ID    string
	Class string
	Text  string
}

func newNode(class, text string) Node {
	return Node{ID: uuid.NewString(), Class: class, Text: text}
}

// OutputRegion is the display area a Renderer owns.
type OutputRegion interface {
	// Clear removes every node previously appended.
	Clear()
	Append(n Node)
}

// NameField supplies the user name at render time.
type NameField interface {
	Value() string
}

// SelectionControl reports the files currently selected.
type SelectionControl interface {
	Snapshot() Snapshot
}

// ListRegion is an in-memory OutputRegion keeping nodes in append order.
type ListRegion struct {
	nodes []Node
}

func NewListRegion() *ListRegion {
	return &ListRegion{}
}

func (r *ListRegion) Clear() {
	r.nodes = nil
}

func (r *ListRegion) Append(n Node) {
	r.nodes = append(r.nodes, n)
}

// Nodes returns a copy of the current nodes.
func (r *ListRegion) Nodes() []Node {
	if r == nil || len(r.nodes) == 0 {
		return nil
	}
	return append([]Node(nil), r.nodes...)
}

// Lines returns the text of every node in order.
func (r *ListRegion) Lines() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.nodes))
	for _, n := range r.nodes {
		out = append(out, n.Text)
	}
	return out
}

func (r *ListRegion) Len() int {
	if r == nil {
		return 0
	}
	return len(r.nodes)
}

// StaticName is a NameField with a fixed value.
type StaticName string

func (s StaticName) Value() string { return string(s) }

// StaticSelection is a SelectionControl with a fixed snapshot.
type StaticSelection Snapshot

func (s StaticSelection) Snapshot() Snapshot { return Snapshot(s) }
