package mosaic

// resizeState tracks an in-progress split-handle drag.
type resizeState struct {
	active    bool
	container TileID
	index     int // gap index within the container
	hovered   bool
	hoverIdx  int
	hoverID   TileID
}

// ResizeHover returns the split handle currently under the pointer, so the
// host can draw a hover highlight or change the cursor.
func (t *Tree[P]) ResizeHover() (SplitHandle, bool) {
	if !t.resize.hovered {
		return SplitHandle{}, false
	}
	if h, ok := t.splitHandleFor(t.resize.hoverID, t.resize.hoverIdx); ok {
		return h, true
	}
	return SplitHandle{}, false
}

// IsResizing reports whether a split handle is being dragged.
func (t *Tree[P]) IsResizing() bool {
	return t.resize.active
}

// EqualizeShares gives the two children either side of the given gap the
// mean of their shares, centering the split between them. Hosts typically
// call this on a double-click of the handle.
func (t *Tree[P]) EqualizeShares(container TileID, gapIndex int) bool {
	tile, ok := t.Tiles.Get(container)
	if !ok || !tile.Kind.IsLinear() {
		return false
	}
	if gapIndex < 0 || gapIndex+1 >= len(tile.Children) {
		return false
	}
	a := tile.Children[gapIndex]
	b := tile.Children[gapIndex+1]
	mean := (tile.Shares.Of(a) + tile.Shares.Of(b)) / 2
	tile.Shares.Set(a, mean)
	tile.Shares.Set(b, mean)
	return true
}

// splitHandleFor finds this frame's SplitHandle for a container gap.
func (t *Tree[P]) splitHandleFor(container TileID, index int) (SplitHandle, bool) {
	for _, h := range t.splitHandles {
		if h.Container == container && h.Index == index {
			return h, true
		}
	}
	return SplitHandle{}, false
}

// handleResize runs the split-handle interaction for this frame. Returns
// true when the pointer is captured by a resize, in which case tile
// drag-and-drop must not see the same press.
func (t *Tree[P]) handleResize(ptr PointerState, pressed, released bool) bool {
	t.resize.hovered = false

	if t.drag.active || t.drag.armed != TileIDNone {
		return false
	}

	if t.resize.active {
		if released {
			t.resize.active = false
			return true
		}
		t.applyResize(ptr)
		return true
	}

	for _, h := range t.splitHandles {
		if !h.Rect.Contains(ptr.X, ptr.Y) {
			continue
		}
		t.resize.hovered = true
		t.resize.hoverID = h.Container
		t.resize.hoverIdx = h.Index
		if pressed {
			t.resize.active = true
			t.resize.container = h.Container
			t.resize.index = h.Index
			return true
		}
		break
	}
	return false
}

// applyResize moves share weight across the grabbed gap to follow the
// pointer. Shrinking walks outward from the gap so the nearest neighbors
// give up space first, and no child ever goes below the minimum tile size.
func (t *Tree[P]) applyResize(ptr PointerState) {
	tile, ok := t.Tiles.Get(t.resize.container)
	if !ok || !tile.Kind.IsLinear() {
		t.resize.active = false
		return
	}
	i := t.resize.index
	if i < 0 || i+1 >= len(tile.Children) {
		t.resize.active = false
		return
	}

	h, ok := t.splitHandleFor(t.resize.container, i)
	if !ok {
		return
	}
	horizontal := tile.Kind == TileKindHorizontal

	var delta float64
	if horizontal {
		delta = ptr.X - h.Rect.Center().X
	} else {
		delta = ptr.Y - h.Rect.Center().Y
	}
	if delta == 0 {
		return
	}

	extent := func(id TileID) float64 {
		r, ok := t.Tiles.Rect(id)
		if !ok {
			return 0
		}
		if horizontal {
			return r.Width
		}
		return r.Height
	}

	left := tile.Children[i]
	right := tile.Children[i+1]
	if delta < 0 {
		// Handle moved up/left: shrink the left side, nearest first.
		side := reversed(tile.Children[:i+1])
		taken := shrinkShares(&tile.Shares, side, -delta, t.style.MinTileSize, extent)
		tile.Shares.Set(right, tile.Shares.Of(right)+taken)
	} else {
		side := tile.Children[i+1:]
		taken := shrinkShares(&tile.Shares, side, delta, t.style.MinTileSize, extent)
		tile.Shares.Set(left, tile.Shares.Of(left)+taken)
	}
}

// reversed returns a copy of ids in reverse order.
func reversed(ids []TileID) []TileID {
	out := make([]TileID, len(ids))
	for i, id := range ids {
		out[len(ids)-1-i] = id
	}
	return out
}
