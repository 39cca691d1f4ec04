package mosaic

import "math"

// defaultDragDeadZone is the movement in pixels required before a pressed
// tile actually picks up, so plain clicks never reorder anything.
const defaultDragDeadZone = 4.0

// pointerTracker derives press/release transitions from the per-frame
// PointerState the host supplies.
type pointerTracker struct {
	down           bool
	startX, startY float64
	lastX, lastY   float64
}

// insertionPoint is where a dropped tile would land: a container and an
// index into its child list, relative to the list as it currently stands.
type insertionPoint struct {
	parent TileID
	index  int
}

// dragState is the optional in-progress drag, owned by one Tree instance.
// It exists between pick-up and pointer release and is cleared on release
// or when the subject disappears from the arena.
type dragState struct {
	active    bool
	subject   TileID
	offset    Vec2   // pointer minus tile origin at pick-up
	armed     TileID // tab handle pressed, dead zone not yet exceeded
	hasTarget bool
	target    insertionPoint
	preview   Rect
}

// DraggedTile returns the tile currently being dragged, if any.
func (t *Tree[P]) DraggedTile() (TileID, bool) {
	return t.drag.subject, t.drag.active
}

// DragOffset returns the pointer-to-tile-origin offset captured at pick-up.
// Hosts use it to draw the floating representation under the cursor.
func (t *Tree[P]) DragOffset() Vec2 {
	return t.drag.offset
}

// DropPreview returns the highlight rectangle for the current drop target.
// Valid only while a drag is in progress and a target exists. The preview is
// purely advisory: nothing mutates until the pointer is released.
func (t *Tree[P]) DropPreview() (Rect, bool) {
	if !t.drag.active || !t.drag.hasTarget {
		return Rect{}, false
	}
	return t.drag.preview, true
}

// DropTarget returns the container and insertion index the dragged tile
// would move into if released now.
func (t *Tree[P]) DropTarget() (TileID, int, bool) {
	if !t.drag.active || !t.drag.hasTarget {
		return TileIDNone, 0, false
	}
	return t.drag.target.parent, t.drag.target.index, true
}

// StartDrag picks the given tile up for drag-and-drop, with the pointer at
// the given position. Hosts call this from their own drag handles (or return
// PaneActionDrag from UpdatePane); the engine calls it itself when a tab
// handle is dragged. The root is not draggable. Returns false if the tile is
// unknown or the root.
func (t *Tree[P]) StartDrag(id TileID, pointer Vec2) bool {
	if t.IsRoot(id) {
		return false
	}
	if _, ok := t.Tiles.Get(id); !ok {
		return false
	}
	t.drag = dragState{active: true, subject: id}
	if rect, ok := t.Tiles.Rect(id); ok {
		t.drag.offset = Vec2{X: pointer.X - rect.X, Y: pointer.Y - rect.Y}
	}
	return true
}

// CancelDrag drops any in-progress drag without structural change.
func (t *Tree[P]) CancelDrag() {
	t.drag = dragState{}
}

// dropDragIfGone cancels the drag when the subject has been removed by an
// external edit. Treated as normal cancellation, not a fault.
func (t *Tree[P]) dropDragIfGone() {
	if t.drag.active {
		if _, ok := t.Tiles.Get(t.drag.subject); !ok {
			t.CancelDrag()
		}
	}
	if t.drag.armed != TileIDNone {
		if _, ok := t.Tiles.Get(t.drag.armed); !ok {
			t.drag.armed = TileIDNone
		}
	}
}

// --- Per-frame state machine ---

// HandleDrag advances the drag state machine one frame. Call after
// [Tree.Layout] so hover resolution sees this frame's rectangles.
// [Tree.Update] does this for you.
func (t *Tree[P]) HandleDrag(host Host[P], ptr PointerState) {
	pressed := ptr.Down && !t.pointer.down
	released := !ptr.Down && t.pointer.down

	if t.handleResize(ptr, pressed, released) {
		t.trackPointer(ptr)
		return
	}

	if pressed {
		t.pointer.startX = ptr.X
		t.pointer.startY = ptr.Y
		if child, ok := t.tabHandleAt(ptr.X, ptr.Y); ok && !t.IsRoot(child) {
			t.drag.armed = child
		}
	}

	// An armed tab handle becomes a real drag once the pointer moves past
	// the dead zone, so clicking a tab still just activates it.
	if ptr.Down && !t.drag.active && t.drag.armed != TileIDNone {
		dx := ptr.X - t.pointer.startX
		dy := ptr.Y - t.pointer.startY
		if math.Sqrt(dx*dx+dy*dy) > defaultDragDeadZone {
			armed := t.drag.armed
			t.StartDrag(armed, Vec2{X: t.pointer.startX, Y: t.pointer.startY})
		}
	}

	if t.drag.active {
		if _, ok := t.Tiles.Get(t.drag.subject); !ok {
			t.CancelDrag()
		} else {
			t.resolveDrop(ptr.X, ptr.Y)
		}
	}

	if released {
		if t.drag.active {
			if t.drag.hasTarget {
				t.MoveTile(t.drag.subject, t.drag.target.parent, t.drag.target.index)
			}
			t.CancelDrag()
			t.Simplify()
		} else if armed := t.drag.armed; armed != TileIDNone {
			if hr, ok := t.tabHandles[armed]; ok && hr.Contains(ptr.X, ptr.Y) {
				t.activateTab(armed)
			}
			t.drag.armed = TileIDNone
		}
	}

	t.trackPointer(ptr)
}

func (t *Tree[P]) trackPointer(ptr PointerState) {
	t.pointer.down = ptr.Down
	t.pointer.lastX = ptr.X
	t.pointer.lastY = ptr.Y
}

// tabHandleAt returns the tab child whose handle contains (x, y).
func (t *Tree[P]) tabHandleAt(x, y float64) (TileID, bool) {
	for _, bar := range t.tabBars {
		for _, h := range bar.Handles {
			if h.Rect.Contains(x, y) {
				return h.Child, true
			}
		}
	}
	return TileIDNone, false
}

// activateTab makes child the active tab of its parent.
func (t *Tree[P]) activateTab(child TileID) {
	parentID := t.ParentOf(child)
	if parent, ok := t.Tiles.Get(parentID); ok {
		parent.SetActive(child)
	}
}

// --- Drop target resolution ---

// resolveDrop finds the best insertion point for the dragged tile at the
// pointer position. Candidates come only from containers whose on-screen
// rectangle contains the pointer; among their zones, the one whose center is
// nearest the pointer wins. The subject's own subtree offers no zones at
// all, so a container can never be dropped into itself or a descendant —
// not even as a transient preview.
func (t *Tree[P]) resolveDrop(x, y float64) {
	t.drag.hasTarget = false
	if t.Root == TileIDNone {
		return
	}
	best := math.MaxFloat64
	t.collectDropZones(t.Root, x, y, &best)
}

func (t *Tree[P]) collectDropZones(id TileID, x, y float64, best *float64) {
	if id == t.drag.subject {
		return
	}
	tile, ok := t.Tiles.Get(id)
	if !ok {
		return
	}
	rect, ok := t.Tiles.Rect(id)
	if !ok {
		// Not laid out this frame (behind an inactive tab): no zones below.
		return
	}

	if tile.IsContainer() && rect.Contains(x, y) {
		switch tile.Kind {
		case TileKindHorizontal, TileKindVertical:
			t.linearDropZones(id, tile, x, y, best)
		case TileKindTabs:
			t.tabsDropZones(id, tile, rect, x, y, best)
		case TileKindGrid:
			t.gridDropZones(id, tile, rect, x, y, best)
		}
	}

	for _, child := range tile.Children {
		t.collectDropZones(child, x, y, best)
	}
}

// suggestZone offers one candidate insertion with its highlight rect,
// keeping it if it beats the best squared distance so far.
func (t *Tree[P]) suggestZone(parent TileID, index int, zone Rect, x, y float64, best *float64) {
	d := zone.distSqToCenter(x, y)
	if d < *best {
		*best = d
		t.drag.hasTarget = true
		t.drag.target = insertionPoint{parent: parent, index: index}
		t.drag.preview = zone
	}
}

// linearDropZones offers an edge strip before the first child, a strip over
// each gap, and an edge strip after the last child. When the dragged tile is
// itself a child here, its current rectangle is offered as a "hole" instead
// of the strips around it.
func (t *Tree[P]) linearDropZones(id TileID, tile *Tile[P], x, y float64, best *float64) {
	horizontal := tile.Kind == TileKindHorizontal
	thickness := t.style.DropPreviewThickness
	draggedIndex := tile.ChildIndex(t.drag.subject)
	n := len(tile.Children)

	var prev Rect
	havePrev := false
	for i, child := range tile.Children {
		rect, ok := t.Tiles.Rect(child)
		if !ok {
			continue
		}
		switch {
		case i == draggedIndex:
			t.suggestZone(id, i, rect, x, y, best)
		case !havePrev:
			t.suggestZone(id, 0, edgeStrip(rect, thickness, horizontal, false), x, y, best)
		case i-1 != draggedIndex:
			t.suggestZone(id, i, betweenStrip(prev, rect, thickness, horizontal), x, y, best)
		}
		prev = rect
		havePrev = true
	}
	if havePrev && draggedIndex != n-1 {
		t.suggestZone(id, n, edgeStrip(prev, thickness, horizontal, true), x, y, best)
	}
}

// tabsDropZones offers the left and right half of every tab handle plus the
// remainder of the bar and the body, which both append at the end.
func (t *Tree[P]) tabsDropZones(id TileID, tile *Tile[P], rect Rect, x, y float64, best *float64) {
	n := len(tile.Children)
	barEnd := rect.X
	for i, child := range tile.Children {
		hr, ok := t.tabHandles[child]
		if !ok {
			continue
		}
		left := NewRect(hr.X, hr.Y, hr.Width/2, hr.Height)
		right := NewRect(hr.X+hr.Width/2, hr.Y, hr.Width/2, hr.Height)
		t.suggestZone(id, i, left, x, y, best)
		t.suggestZone(id, i+1, right, x, y, best)
		if hr.Right() > barEnd {
			barEnd = hr.Right()
		}
	}
	barH := t.style.TabBarHeight
	if rest := rect.Right() - barEnd; rest > 0 {
		t.suggestZone(id, n, NewRect(barEnd, rect.Y, rest, barH), x, y, best)
	}
	body := NewRect(rect.X, rect.Y+barH, rect.Width, rect.Height-barH)
	if !body.IsEmpty() {
		t.suggestZone(id, n, body, x, y, best)
	}
}

// gridDropZones offers every occupied cell (insert at that position) plus
// the grid itself as an append target.
func (t *Tree[P]) gridDropZones(id TileID, tile *Tile[P], rect Rect, x, y float64, best *float64) {
	for i, child := range tile.Children {
		if child == t.drag.subject {
			continue
		}
		if cell, ok := t.Tiles.Rect(child); ok {
			t.suggestZone(id, i, cell, x, y, best)
		}
	}
	t.suggestZone(id, len(tile.Children), rect, x, y, best)
}

// edgeStrip is the drop zone hugging the leading or trailing edge of a
// child along the split axis.
func edgeStrip(rect Rect, thickness float64, horizontal, trailing bool) Rect {
	if horizontal {
		if trailing {
			return NewRect(rect.Right()-thickness, rect.Y, thickness, rect.Height)
		}
		return NewRect(rect.X, rect.Y, thickness, rect.Height)
	}
	if trailing {
		return NewRect(rect.X, rect.Bottom()-thickness, rect.Width, thickness)
	}
	return NewRect(rect.X, rect.Y, rect.Width, thickness)
}

// betweenStrip is the drop zone centered on the gap between two neighbors.
func betweenStrip(a, b Rect, thickness float64, horizontal bool) Rect {
	if horizontal {
		mid := (a.Right() + b.X) / 2
		return NewRect(mid-thickness/2, a.Y, thickness, a.Height)
	}
	mid := (a.Bottom() + b.Y) / 2
	return NewRect(a.X, mid-thickness/2, a.Width, thickness)
}
