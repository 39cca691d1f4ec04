package mosaic

// Tiles is the arena owning every tile in a tree, keyed by stable [TileID].
// Structural relationships are expressed purely through ids, never pointers,
// so edits cannot invalidate references held elsewhere and the parent/child
// graph cannot form ownership cycles.
//
// The arena knows nothing about reachability; that is a [Tree] concern
// layered on top. Operations on unknown ids are benign no-ops: removed tiles
// legitimately disappear out from under queued operations, and the engine
// must never fault the host's render loop over one.
type Tiles[P any] struct {
	tiles map[TileID]*Tile[P]

	// rects caches the rectangle computed for each visible tile during the
	// current frame's layout pass. Derived state only: cleared and rebuilt
	// every pass, never authoritative.
	rects map[TileID]Rect

	// nextID is a plain counter (no atomic — mosaic is single-threaded).
	nextID TileID
}

// NewTiles creates an empty arena.
func NewTiles[P any]() *Tiles[P] {
	return &Tiles[P]{
		tiles: map[TileID]*Tile[P]{},
		rects: map[TileID]Rect{},
	}
}

// Len returns the number of tiles in the arena.
func (ts *Tiles[P]) Len() int {
	return len(ts.tiles)
}

// Insert adds a tile to the arena and returns its freshly allocated id.
func (ts *Tiles[P]) Insert(tile *Tile[P]) TileID {
	ts.nextID++
	id := ts.nextID
	ts.tiles[id] = tile
	return id
}

// Get returns the tile with the given id, or (nil, false) if absent.
func (ts *Tiles[P]) Get(id TileID) (*Tile[P], bool) {
	tile, ok := ts.tiles[id]
	return tile, ok
}

// Remove deletes the tile with the given id from the arena and returns it.
// The tile is NOT detached from any parent's child list — callers must do
// that first (or run the simplifier after) or the tree invariant breaks.
// Removing an unknown id returns (nil, false).
func (ts *Tiles[P]) Remove(id TileID) (*Tile[P], bool) {
	tile, ok := ts.tiles[id]
	if !ok {
		return nil, false
	}
	delete(ts.tiles, id)
	delete(ts.rects, id)
	return tile, true
}

// Rect returns the rectangle computed for the tile during the most recent
// layout pass. Tiles that were not visible that pass (inactive tabs, tiles
// outside the tree) report false.
func (ts *Tiles[P]) Rect(id TileID) (Rect, bool) {
	r, ok := ts.rects[id]
	return r, ok
}

// setRect records a tile's rectangle for the current frame.
func (ts *Tiles[P]) setRect(id TileID, r Rect) {
	ts.rects[id] = r
}

// clearRects drops all cached rectangles at the start of a layout pass.
func (ts *Tiles[P]) clearRects() {
	clear(ts.rects)
}

// --- Insertion helpers ---

// InsertPane adds a new pane tile wrapping the given payload.
func (ts *Tiles[P]) InsertPane(pane P) TileID {
	return ts.Insert(NewPane(pane))
}

// InsertContainer adds a new container tile of the given kind.
func (ts *Tiles[P]) InsertContainer(kind TileKind, children ...TileID) TileID {
	return ts.Insert(NewContainer[P](kind, children))
}

// InsertTabs adds a new tabs container with the given children.
func (ts *Tiles[P]) InsertTabs(children ...TileID) TileID {
	return ts.InsertContainer(TileKindTabs, children...)
}

// InsertHorizontal adds a new horizontal split with the given children.
func (ts *Tiles[P]) InsertHorizontal(children ...TileID) TileID {
	return ts.InsertContainer(TileKindHorizontal, children...)
}

// InsertVertical adds a new vertical split with the given children.
func (ts *Tiles[P]) InsertVertical(children ...TileID) TileID {
	return ts.InsertContainer(TileKindVertical, children...)
}

// InsertGrid adds a new grid container with the given children.
func (ts *Tiles[P]) InsertGrid(children ...TileID) TileID {
	return ts.InsertContainer(TileKindGrid, children...)
}

// InsertBinarySplit adds a linear split holding exactly two children, with
// fraction (0..1) of the axis given to the first. The shares are scaled so
// their total matches the default total for two children.
func (ts *Tiles[P]) InsertBinarySplit(kind TileKind, first, second TileID, fraction float64) TileID {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	if !kind.IsLinear() {
		kind = TileKindHorizontal
	}
	id := ts.InsertContainer(kind, first, second)
	tile := ts.tiles[id]
	tile.Shares.Set(first, 2*fraction)
	tile.Shares.Set(second, 2*(1-fraction))
	return id
}

// --- Reachability ---

// reachableFrom appends root and every tile reachable from it to the set.
func (ts *Tiles[P]) reachableFrom(root TileID, set map[TileID]bool) {
	tile, ok := ts.tiles[root]
	if !ok || set[root] {
		return
	}
	set[root] = true
	for _, child := range tile.Children {
		ts.reachableFrom(child, set)
	}
}

// gc removes every tile not reachable from root. With root == TileIDNone
// the whole arena is emptied. Returns the number of tiles collected.
func (ts *Tiles[P]) gc(root TileID) int {
	reachable := map[TileID]bool{}
	if root != TileIDNone {
		ts.reachableFrom(root, reachable)
	}
	collected := 0
	for id := range ts.tiles {
		if !reachable[id] {
			delete(ts.tiles, id)
			delete(ts.rects, id)
			collected++
		}
	}
	return collected
}
