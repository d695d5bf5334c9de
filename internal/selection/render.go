package selection

// Render builds the lines for a snapshot. It has no side effects.
func Render(snap Snapshot, userName string, cfg DisplayConfig) RenderedList {
	if len(snap) == 0 {
		return RenderedList{EmptyText}
	}
	cfg = cfg.normalized()
	out := make(RenderedList, 0, len(snap))
	for _, f := range snap {
		out = append(out, Line(f, userName, cfg))
	}
	return out
}

// Renderer rebuilds an output region from a name field and a selection
// control each time the selection changes.
type Renderer struct {
	name    NameField
	control SelectionControl
	out     OutputRegion
	cfg     DisplayConfig
}

func NewRenderer(name NameField, control SelectionControl, out OutputRegion, cfg DisplayConfig) *Renderer {
	return &Renderer{name: name, control: control, out: out, cfg: cfg.normalized()}
}

func (r *Renderer) Config() DisplayConfig {
	return r.cfg
}

func (r *Renderer) SetPrependUserName(on bool) {
	r.cfg.PrependUserName = on
}

// SelectionChanged is the selection-changed callback. Every node from the
// previous call is removed before the new lines are appended.
func (r *Renderer) SelectionChanged() RenderedList {
	userName := ""
	if r.name != nil {
		userName = r.name.Value()
	}
	var snap Snapshot
	if r.control != nil {
		snap = r.control.Snapshot()
	}
	lines := Render(snap, userName, r.cfg)

	class := r.cfg.Class
	if len(snap) == 0 {
		class = ""
	}
	r.out.Clear()
	for _, line := range lines {
		r.out.Append(newNode(class, line))
	}
	return lines
}
