package mosaic

// Tree is the top-level type: the id of the root tile plus the arena owning
// every tile, with the per-tree interaction state (drag, resize) layered on
// top. Construct one, keep it, and call [Tree.Update] once per frame from the
// host's update pass.
//
// All operations are synchronous and single-threaded: the engine does no
// background work and supports exactly one caller per frame. A host embedding
// several trees gets fully independent instances, each with its own
// in-progress drag.
type Tree[P any] struct {
	// Root is the root tile, or TileIDNone for an empty tree.
	Root TileID

	// Tiles owns every tile in the tree.
	Tiles *Tiles[P]

	// Options controls the simplification pass run every Update.
	Options SimplifyOptions

	style Style // resolved from the host each Update

	// Per-frame geometry beyond the rect cache, rebuilt during layout.
	tabBars      []TabBar
	splitHandles []SplitHandle
	tabHandles   map[TileID]Rect // tab child id -> handle rect in the bar

	// Interaction state.
	pointer pointerTracker
	drag    dragState
	resize  resizeState

	injectQueue []syntheticPointerEvent
	closeQueue  []TileID

	debug bool
}

// NewTree creates a tree from a root id and an arena. The most flexible
// constructor: set up the tiles however you want first.
//
//	tiles := mosaic.NewTiles[Pane]()
//	a, b := tiles.InsertPane(Pane{}), tiles.InsertPane(Pane{})
//	tree := mosaic.NewTree(tiles.InsertTabs(a, b), tiles)
func NewTree[P any](root TileID, tiles *Tiles[P]) *Tree[P] {
	return &Tree[P]{
		Root:       root,
		Tiles:      tiles,
		Options:    DefaultSimplifyOptions(),
		style:      DefaultStyle(),
		tabHandles: map[TileID]Rect{},
	}
}

// NewEmptyTree creates a tree with no tiles.
func NewEmptyTree[P any]() *Tree[P] {
	return NewTree(TileIDNone, NewTiles[P]())
}

// NewTreeOf creates a tree whose root is a container of the given kind
// holding one pane per payload.
func NewTreeOf[P any](kind TileKind, panes ...P) *Tree[P] {
	tiles := NewTiles[P]()
	children := make([]TileID, len(panes))
	for i, pane := range panes {
		children[i] = tiles.InsertPane(pane)
	}
	return NewTree(tiles.InsertContainer(kind, children...), tiles)
}

// SetDebug enables per-frame invariant checking with warnings on stderr.
func (t *Tree[P]) SetDebug(enabled bool) {
	t.debug = enabled
}

// IsEmpty reports whether the tree has no root.
func (t *Tree[P]) IsEmpty() bool {
	return t.Root == TileIDNone
}

// IsRoot reports whether id is the root tile.
func (t *Tree[P]) IsRoot(id TileID) bool {
	return id != TileIDNone && id == t.Root
}

// --- Structural queries ---

// ParentOf returns the container holding id in its child list, or TileIDNone.
// The root, and any tile not referenced by a container, has no parent.
func (t *Tree[P]) ParentOf(id TileID) TileID {
	if id == TileIDNone {
		return TileIDNone
	}
	for parentID, tile := range t.Tiles.tiles {
		if tile.IsContainer() && tile.HasChild(id) {
			return parentID
		}
	}
	return TileIDNone
}

// Ancestors returns the chain of containers from id's parent up to the root,
// nearest first. Empty for the root and for unreferenced tiles.
func (t *Tree[P]) Ancestors(id TileID) []TileID {
	var chain []TileID
	for p := t.ParentOf(id); p != TileIDNone; p = t.ParentOf(p) {
		chain = append(chain, p)
	}
	return chain
}

// isAncestor reports whether candidate is node itself or one of its
// ancestors. Used as the mandatory cycle check before structural edits.
func (t *Tree[P]) isAncestor(candidate, node TileID) bool {
	for p := node; p != TileIDNone; p = t.ParentOf(p) {
		if p == candidate {
			return true
		}
	}
	return false
}

// --- Structural edits ---

// MoveTile detaches subject from its current parent (if any) and inserts it
// into target's child list at index, clamping the index to the valid range.
// Returns false — with the tree untouched — when target is not a container,
// when either id is unknown, or when subject is target or an ancestor of
// target (the move would create a cycle).
func (t *Tree[P]) MoveTile(subject, target TileID, index int) bool {
	if _, ok := t.Tiles.Get(subject); !ok {
		return false
	}
	tile, ok := t.Tiles.Get(target)
	if !ok || !tile.IsContainer() {
		return false
	}
	if t.isAncestor(subject, target) {
		return false
	}

	// Account for the slot subject vacates when it moves within the same
	// container, so the insertion index refers to the list it lands in.
	if old := tile.ChildIndex(subject); old >= 0 && old < index {
		index--
	}

	t.detach(subject)
	tile.InsertChild(subject, index)
	return true
}

// detach removes id from every container's child list. The tile stays in the
// arena. Performs no simplification.
func (t *Tree[P]) detach(id TileID) {
	for _, tile := range t.Tiles.tiles {
		if tile.IsContainer() {
			tile.RemoveChild(id)
		}
	}
}

// Remove detaches id from its parent and deletes it — and everything under
// it — from the arena. Removing the root empties the tree. Returns false for
// unknown ids (already removed: benign).
func (t *Tree[P]) Remove(id TileID) bool {
	if _, ok := t.Tiles.Get(id); !ok {
		return false
	}
	if t.IsRoot(id) {
		t.Root = TileIDNone
	}
	t.detach(id)
	t.Tiles.Remove(id)
	t.Tiles.gc(t.Root)
	t.dropDragIfGone()
	return true
}

// WrapTilesInContainer builds a new container of the given kind from existing
// tiles and installs it where the first of them used to live: in that slot of
// its former parent, or as the new root if the first tile was the root. The
// other tiles are detached from their former parents. The edit is atomic —
// it either fully applies or, when any id is unknown, duplicated, or an
// ancestor of another, nothing changes and TileIDNone is returned.
func (t *Tree[P]) WrapTilesInContainer(kind TileKind, children ...TileID) TileID {
	if len(children) == 0 {
		return TileIDNone
	}
	for i, c := range children {
		if _, ok := t.Tiles.Get(c); !ok {
			return TileIDNone
		}
		for j, other := range children {
			if i == j {
				continue
			}
			if c == other || t.isAncestor(c, other) {
				return TileIDNone
			}
		}
	}

	first := children[0]
	parentID := t.ParentOf(first)
	slot := -1
	if parentID != TileIDNone {
		parent, _ := t.Tiles.Get(parentID)
		slot = parent.ChildIndex(first)
	}

	// Point of no return: all validation passed, now rewrite in one go.
	for _, c := range children {
		t.detach(c)
	}
	id := t.Tiles.InsertContainer(kind, append([]TileID(nil), children...)...)
	switch {
	case parentID != TileIDNone:
		parent, _ := t.Tiles.Get(parentID)
		parent.InsertChild(id, slot)
	case t.IsRoot(first):
		t.Root = id
	default:
		// First tile was floating; the new container floats too until the
		// caller attaches it.
	}
	return id
}

// SplitPane wraps the tile id together with a brand-new pane into a container
// of the given kind, in place. Returns the new container's id, or TileIDNone
// if id is unknown.
func (t *Tree[P]) SplitPane(id TileID, kind TileKind, pane P) TileID {
	if _, ok := t.Tiles.Get(id); !ok {
		return TileIDNone
	}
	newPane := t.Tiles.InsertPane(pane)
	container := t.WrapTilesInContainer(kind, id, newPane)
	if container == TileIDNone {
		t.Tiles.Remove(newPane)
	}
	return container
}

// MakeActive walks the tree and, for every tile matching the predicate,
// makes it and its ancestors the active tab in any tabs container on the
// way down. Use it to reveal a pane buried behind other tabs.
func (t *Tree[P]) MakeActive(match func(id TileID, tile *Tile[P]) bool) {
	if t.Root != TileIDNone {
		t.makeActive(t.Root, match)
	}
}

func (t *Tree[P]) makeActive(id TileID, match func(TileID, *Tile[P]) bool) bool {
	tile, ok := t.Tiles.Get(id)
	if !ok {
		return false
	}
	found := match(id, tile)
	for _, child := range tile.Children {
		if t.makeActive(child, match) {
			if tile.Kind == TileKindTabs {
				tile.Active = child
			}
			found = true
		}
	}
	return found
}

// --- Per-frame driving ---

// Update runs one frame: simplification, garbage collection, layout into the
// available rectangle, the per-pane host pass, then drag and resize handling.
// Hosts wanting finer control can call [Tree.Simplify], [Tree.Layout] and
// [Tree.HandleDrag] individually in that order instead.
func (t *Tree[P]) Update(host Host[P], avail Rect, ptr PointerState) {
	if len(t.injectQueue) > 0 {
		ptr = t.injectQueue[0].pointer()
		t.injectQueue = t.injectQueue[1:]
	}

	t.Simplify()
	if t.Options.AllPanesMustHaveTabs && t.Root != TileIDNone {
		t.Root = t.makeAllPanesChildrenOfTabs(t.Root, false)
	}
	t.Tiles.gc(t.Root)

	t.Layout(host, avail)
	t.updatePanes(host, ptr)
	t.HandleDrag(host, ptr)

	if t.debug {
		t.debugCheckInvariants()
	}
}

// updatePanes runs the host callback for every visible pane and applies any
// requested actions. Removals are deferred until after the walk so the tree
// is never edited mid-traversal.
func (t *Tree[P]) updatePanes(host Host[P], ptr PointerState) {
	t.closeQueue = t.closeQueue[:0]
	t.EachPane(func(id TileID, pane *P, rect Rect) {
		switch host.UpdatePane(id, *pane, rect) {
		case PaneActionDrag:
			t.StartDrag(id, Vec2{X: ptr.X, Y: ptr.Y})
		case PaneActionClose:
			t.closeQueue = append(t.closeQueue, id)
		}
	})
	for _, id := range t.closeQueue {
		t.Remove(id)
	}
	if len(t.closeQueue) > 0 {
		t.Simplify()
	}
}

// EachPane calls fn for every pane laid out this frame, with a pointer to
// its payload and its current rectangle. Panes hidden behind inactive tabs
// are skipped. fn must not edit the tree.
func (t *Tree[P]) EachPane(fn func(id TileID, pane *P, rect Rect)) {
	for id, tile := range t.Tiles.tiles {
		if !tile.IsPane() {
			continue
		}
		if rect, ok := t.Tiles.Rect(id); ok {
			fn(id, &tile.Pane, rect)
		}
	}
}
