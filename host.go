package mosaic

// Host is the capability interface a host application implements so the
// engine can call back into it. The engine owns geometry and structure only;
// everything visual — pane content, tab labels, styling metrics — is supplied
// through this narrow interface rather than a dependency on any widget
// toolkit.
type Host[P any] interface {
	// UpdatePane is called once per visible pane each [Tree.Update], with
	// the pane's rectangle for this frame. The host runs its per-pane logic
	// here and may request an action back from the engine: PaneActionDrag
	// picks the pane up for drag-and-drop (for hosts with their own drag
	// handles), PaneActionClose removes the pane from the tree.
	//
	// Drawing happens later, in the host's own render pass, using
	// [Tree.EachPane] / [Tiles.Rect].
	UpdatePane(id TileID, pane P, rect Rect) PaneAction

	// TabTitle returns the label shown on the pane's tab handle.
	TabTitle(pane P) string

	// Style returns the layout metrics. Zero-valued fields fall back to
	// [DefaultStyle]. Called once per Update.
	Style() Style
}

// NopHost is a Host that requests nothing and uses default styling.
// Useful for tests and headless layout runs.
type NopHost[P any] struct{}

// UpdatePane requests no action.
func (NopHost[P]) UpdatePane(TileID, P, Rect) PaneAction { return PaneActionNone }

// TabTitle returns an empty label.
func (NopHost[P]) TabTitle(P) string { return "" }

// Style returns the zero Style, which resolves to DefaultStyle.
func (NopHost[P]) Style() Style { return Style{} }
