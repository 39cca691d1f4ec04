// Package mosaic is a tiling layout engine for [Ebitengine] hosts.
//
// Mosaic owns a tree of rectangular tiles — content panes and the containers
// that arrange them (tab groups, horizontal and vertical splits, grids) —
// computes every tile's on-screen rectangle each frame, and lets the user
// rearrange tiles by dragging them into new positions with live drop
// previews. Mosaic supplies geometry and structural editing only: the host
// draws pane contents, tab bars, and split handles from the rectangles the
// engine hands back.
//
// # Quick start
//
// Build a tree of panes (the pane payload type is yours), then drive it from
// an [ebiten.Game]:
//
//	tree := mosaic.NewTreeOf(mosaic.TileKindHorizontal, paneA, paneB, paneC)
//
//	func (g *Game) Update() error {
//		g.tree.Update(g, mosaic.NewRect(0, 0, 1280, 720), mosaic.ReadPointer())
//		return nil
//	}
//
// The host implements [Host]: per-pane logic (returning close or drag
// requests), tab titles, and style metrics. In its Draw pass it renders each
// pane at the rect reported by [Tree.EachPane], tab bars from [Tree.TabBars],
// split handles from [Tree.SplitHandles], and the drop highlight from
// [Tree.DropPreview] while a drag is in progress.
//
// # Structure
//
// Tiles live in a [Tiles] arena keyed by stable [TileID]; the tree is the
// root id plus the arena. Structural edits ([Tree.MoveTile],
// [Tree.WrapTilesInContainer], [Tree.Remove]) validate before mutating —
// a move that would make a tile its own ancestor is rejected outright — and
// a simplification pass after every edit prunes empty containers, collapses
// single-child ones, and repairs dangling references, so the tree never
// stays degenerate. See [SimplifyOptions] for the knobs.
//
// Everything is single-threaded and frame-driven; one tree is owned by one
// caller, and independent trees are fully isolated (each can carry its own
// in-progress drag).
//
// Persistence is the host's job: [Tree.Snapshot] and [RestoreTree] convert
// between a live tree and plain serializable data.
//
// [Ebitengine]: https://ebitengine.org
package mosaic
