package ui

// PanelKind identifies a side panel.
type PanelKind int

const (
	PanelNone PanelKind = iota
	PanelHistory
	PanelConvert
)

func (p PanelKind) String() string {
	switch p {
	case PanelHistory:
		return "History"
	case PanelConvert:
		return "Convert"
	}
	return ""
}

// PanelSet tracks which side panel is open. At most one is visible.
type PanelSet struct {
	active PanelKind
}

// Toggle opens kind, closing any other panel, or closes kind if it is
// already open.
func (p *PanelSet) Toggle(kind PanelKind) {
	if p.active == kind {
		p.active = PanelNone
		return
	}
	p.active = kind
}

// Close hides whichever panel is open.
func (p *PanelSet) Close() {
	p.active = PanelNone
}

// Active returns the open panel, or PanelNone.
func (p *PanelSet) Active() PanelKind {
	return p.active
}

// IsOpen reports whether kind is the visible panel.
func (p *PanelSet) IsOpen(kind PanelKind) bool {
	return kind != PanelNone && p.active == kind
}
