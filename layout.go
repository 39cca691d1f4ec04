package mosaic

import "math"

// TabHandle is the clickable strip for one child in a tab bar. Pressing it
// activates the tab; pressing and moving past the drag dead zone picks the
// child up for drag-and-drop.
type TabHandle struct {
	Child  TileID
	Rect   Rect
	Active bool
}

// TabBar describes the bar strip of one tabs container for this frame.
type TabBar struct {
	Container TileID
	Rect      Rect
	Handles   []TabHandle
}

// SplitHandle is the grabbable region over a gap between two adjacent
// children of a linear container. Dragging it moves share weight between
// the neighbors.
type SplitHandle struct {
	Container  TileID
	Index      int // gap index: between children Index and Index+1
	Rect       Rect
	Horizontal bool // true when the handle moves along the X axis
}

// TabBars returns the tab bars computed during the most recent layout pass.
// The returned slice MUST NOT be mutated by the caller.
func (t *Tree[P]) TabBars() []TabBar {
	return t.tabBars
}

// SplitHandles returns the split handles computed during the most recent
// layout pass. The returned slice MUST NOT be mutated by the caller.
func (t *Tree[P]) SplitHandles() []SplitHandle {
	return t.splitHandles
}

// --- Layout pass ---

// Layout recursively computes the rectangle of every visible tile inside
// avail, filling the rect cache the host renders from. Layout is a pure
// function of the tree structure, the share weights, and avail: re-running
// it on an unchanged tree reproduces identical rectangles bit for bit.
func (t *Tree[P]) Layout(host Host[P], avail Rect) {
	t.style = host.Style().fillDefaults()
	t.Tiles.clearRects()
	t.tabBars = t.tabBars[:0]
	t.splitHandles = t.splitHandles[:0]
	clear(t.tabHandles)

	if t.Root == TileIDNone {
		return
	}
	t.layoutTile(t.Root, avail)
}

func (t *Tree[P]) layoutTile(id TileID, rect Rect) {
	tile, ok := t.Tiles.Get(id)
	if !ok {
		t.debugWarnf("layout: dangling child %d", id)
		return
	}
	t.Tiles.setRect(id, rect)

	switch tile.Kind {
	case TileKindPane:
		// Terminal: the pane gets the whole rect.
	case TileKindHorizontal:
		t.layoutLinear(id, tile, rect, true)
	case TileKindVertical:
		t.layoutLinear(id, tile, rect, false)
	case TileKindTabs:
		t.layoutTabs(id, tile, rect)
	case TileKindGrid:
		t.layoutGrid(tile, rect)
	}
}

// layoutLinear partitions rect along one axis proportionally to the child
// shares, with fixed gaps between neighbors reserved for the split handles.
// The gap space is excluded from the share math.
func (t *Tree[P]) layoutLinear(id TileID, tile *Tile[P], rect Rect, horizontal bool) {
	n := len(tile.Children)
	if n == 0 {
		return
	}

	gap := t.style.Gap
	totalGap := gap * float64(n-1)
	avail := rect.Height - totalGap
	if horizontal {
		avail = rect.Width - totalGap
	}
	if avail < 0 {
		avail = 0
	}

	weights := make([]float64, n)
	for i, child := range tile.Children {
		weights[i] = tile.Shares.Of(child)
	}
	extents := splitShares(avail, weights, t.style.MinTileSize)

	pos := rect.Y
	if horizontal {
		pos = rect.X
	}
	for i, child := range tile.Children {
		var childRect Rect
		if horizontal {
			childRect = NewRect(pos, rect.Y, extents[i], rect.Height)
		} else {
			childRect = NewRect(rect.X, pos, rect.Width, extents[i])
		}
		t.layoutTile(child, childRect)
		pos += extents[i]

		if i < n-1 {
			t.splitHandles = append(t.splitHandles, SplitHandle{
				Container:  id,
				Index:      i,
				Rect:       t.gapRect(rect, pos, horizontal),
				Horizontal: horizontal,
			})
			pos += gap
		}
	}
}

// gapRect builds the grab region over the gap starting at pos, widened by
// the resize grab radius on both sides.
func (t *Tree[P]) gapRect(parent Rect, pos float64, horizontal bool) Rect {
	grab := t.style.ResizeGrabRadius
	if horizontal {
		return NewRect(pos-grab, parent.Y, t.style.Gap+2*grab, parent.Height)
	}
	return NewRect(parent.X, pos-grab, parent.Width, t.style.Gap+2*grab)
}

// layoutTabs gives the whole rect, minus a fixed-height bar strip, to the
// active child only. Inactive children keep their place in the child list
// but receive no rectangle this frame. A dangling active reference is
// repaired to the first remaining child.
func (t *Tree[P]) layoutTabs(id TileID, tile *Tile[P], rect Rect) {
	n := len(tile.Children)
	if n == 0 {
		return
	}
	if !tile.HasChild(tile.Active) {
		tile.Active = tile.Children[0]
	}

	barH := t.style.TabBarHeight
	if barH > rect.Height {
		barH = rect.Height
	}
	bar := NewRect(rect.X, rect.Y, rect.Width, barH)
	body := NewRect(rect.X, rect.Y+barH, rect.Width, rect.Height-barH)

	handleW := rect.Width / float64(n)
	if handleW > t.style.MaxTabWidth {
		handleW = t.style.MaxTabWidth
	}
	handles := make([]TabHandle, n)
	for i, child := range tile.Children {
		hr := NewRect(bar.X+float64(i)*handleW, bar.Y, handleW, barH)
		handles[i] = TabHandle{Child: child, Rect: hr, Active: child == tile.Active}
		t.tabHandles[child] = hr
	}
	t.tabBars = append(t.tabBars, TabBar{Container: id, Rect: bar, Handles: handles})

	t.layoutTile(tile.Active, body)
}

// layoutGrid places children in row-major order, wrapping at the configured
// column count (or ceil(sqrt(n)) when unset). Column widths and row heights
// are split by the same proportional-with-minimum rule as linear containers,
// independently per axis; a child's rect is the intersection of its row band
// and column band.
func (t *Tree[P]) layoutGrid(tile *Tile[P], rect Rect) {
	n := len(tile.Children)
	if n == 0 {
		return
	}
	cols := tile.Columns
	if cols <= 0 {
		cols = int(math.Ceil(math.Sqrt(float64(n))))
	}
	rows := (n + cols - 1) / cols

	gap := t.style.Gap
	availW := rect.Width - gap*float64(cols-1)
	availH := rect.Height - gap*float64(rows-1)
	if availW < 0 {
		availW = 0
	}
	if availH < 0 {
		availH = 0
	}

	colW := splitShares(availW, padAxisShares(tile.ColShares, cols), t.style.MinTileSize)
	rowH := splitShares(availH, padAxisShares(tile.RowShares, rows), t.style.MinTileSize)

	// Cumulative band origins.
	xs := make([]float64, cols)
	x := rect.X
	for c := range xs {
		xs[c] = x
		x += colW[c] + gap
	}
	ys := make([]float64, rows)
	y := rect.Y
	for r := range ys {
		ys[r] = y
		y += rowH[r] + gap
	}

	for i, child := range tile.Children {
		r, c := i/cols, i%cols
		t.layoutTile(child, NewRect(xs[c], ys[r], colW[c], rowH[r]))
	}
}

// padAxisShares turns a possibly short per-index share slice into n weights,
// defaulting missing or non-positive entries to 1.
func padAxisShares(shares []float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		if i < len(shares) && shares[i] > 0 {
			out[i] = shares[i]
		} else {
			out[i] = 1
		}
	}
	return out
}
