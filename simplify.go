package mosaic

// tileKindNone is an internal sentinel meaning "no parent" (the root).
const tileKindNone TileKind = 0xff

// SimplifyOptions controls the normalization pass that keeps the tree
// well-formed after edits. Empty containers are always pruned and dangling
// child references always dropped; only the collapse rules are optional.
type SimplifyOptions struct {
	// PruneSingleChildContainers replaces a linear or grid container
	// holding exactly one child with that child.
	PruneSingleChildContainers bool

	// PruneSingleChildTabs does the same for tabs containers.
	PruneSingleChildTabs bool

	// KeepRootContainer exempts the root from single-child collapse, so the
	// tree always keeps a container at the top.
	KeepRootContainer bool

	// JoinNestedLinear merges a linear container into a same-direction
	// linear parent, splicing its children in place with scaled shares.
	JoinNestedLinear bool

	// AllPanesMustHaveTabs wraps every pane whose parent is not a tabs
	// container in a fresh tabs container, and keeps single-pane tabs
	// containers from collapsing.
	AllPanesMustHaveTabs bool
}

// DefaultSimplifyOptions aggressively normalizes: all collapse rules on,
// root not exempt.
func DefaultSimplifyOptions() SimplifyOptions {
	return SimplifyOptions{
		PruneSingleChildContainers: true,
		PruneSingleChildTabs:       true,
		JoinNestedLinear:           true,
	}
}

type simplifyAction uint8

const (
	simplifyKeep simplifyAction = iota
	simplifyRemove
	simplifyReplace
)

// Simplify runs one bottom-up normalization pass over the whole tree using
// [Tree.Options]: dangling child references are dropped, empty containers
// removed (recursively, since removing one can empty its parent), and
// single-child containers collapsed per the options. Running it twice in a
// row produces no further change.
//
// The engine calls this every [Tree.Update] and after drops; hosts call it
// directly after programmatic edits.
func (t *Tree[P]) Simplify() {
	if t.Root == TileIDNone {
		return
	}
	switch replacement, action := t.simplifyTile(t.Root, tileKindNone); action {
	case simplifyRemove:
		t.Root = TileIDNone
	case simplifyReplace:
		t.Root = replacement
	}
	t.dropDragIfGone()
}

// simplifyTile normalizes the subtree at id, post-order. The return value
// tells the parent what to do with its child-list entry: keep it, drop it,
// or swap it for the returned replacement.
func (t *Tree[P]) simplifyTile(id TileID, parentKind TileKind) (TileID, simplifyAction) {
	tile, ok := t.Tiles.Get(id)
	if !ok {
		// Dangling reference: repair the parent by dropping it.
		return TileIDNone, simplifyRemove
	}
	if tile.IsPane() {
		return id, simplifyKeep
	}

	// Children first. Splicing can grow the list mid-walk, so build a fresh
	// slice instead of filtering in place.
	kept := make([]TileID, 0, len(tile.Children))
	for _, child := range tile.Children {
		replacement, action := t.simplifyTile(child, tile.Kind)
		switch action {
		case simplifyRemove:
			tile.Shares.Remove(child)
			continue
		case simplifyReplace:
			tile.Shares.ReplaceWith(child, replacement)
			child = replacement
		}

		if t.Options.JoinNestedLinear && tile.Kind.IsLinear() {
			if inner, ok := t.Tiles.Get(child); ok && inner.Kind == tile.Kind {
				kept = t.spliceLinear(tile, kept, child, inner)
				continue
			}
		}
		kept = append(kept, child)
	}
	tile.Children = kept

	if len(tile.Children) == 0 {
		t.Tiles.Remove(id)
		return TileIDNone, simplifyRemove
	}

	if len(tile.Children) == 1 && t.shouldCollapse(tile, parentKind) {
		only := tile.Children[0]
		t.Tiles.Remove(id)
		return only, simplifyReplace
	}

	if tile.Kind == TileKindTabs && !tile.HasChild(tile.Active) {
		tile.Active = tile.Children[0]
	}
	return id, simplifyKeep
}

// shouldCollapse decides whether a single-child container is replaced by
// its child.
func (t *Tree[P]) shouldCollapse(tile *Tile[P], parentKind TileKind) bool {
	if parentKind == tileKindNone && t.Options.KeepRootContainer {
		return false
	}
	if tile.Kind == TileKindTabs {
		if !t.Options.PruneSingleChildTabs {
			return false
		}
		// A lone pane keeps its tabs wrapper when every pane must have one.
		if t.Options.AllPanesMustHaveTabs {
			if child, ok := t.Tiles.Get(tile.Children[0]); ok && child.IsPane() {
				return false
			}
		}
		return true
	}
	return t.Options.PruneSingleChildContainers
}

// spliceLinear inlines a same-direction nested linear container into its
// parent's child list, scaling the grandchildren's shares so together they
// occupy exactly the share the nested container had.
func (t *Tree[P]) spliceLinear(parent *Tile[P], kept []TileID, childID TileID, inner *Tile[P]) []TileID {
	share := parent.Shares.Of(childID)
	parent.Shares.Remove(childID)

	var innerSum float64
	for _, g := range inner.Children {
		innerSum += inner.Shares.Of(g)
	}
	for _, g := range inner.Children {
		if innerSum > 0 {
			parent.Shares.Set(g, share*inner.Shares.Of(g)/innerSum)
		}
		kept = append(kept, g)
	}
	t.Tiles.Remove(childID)
	return kept
}

// makeAllPanesChildrenOfTabs wraps every pane that is not already directly
// under a tabs container in a fresh tabs container, in place. Returns the
// (possibly new) id occupying the slot id was in.
func (t *Tree[P]) makeAllPanesChildrenOfTabs(id TileID, parentIsTabs bool) TileID {
	tile, ok := t.Tiles.Get(id)
	if !ok {
		return id
	}
	if tile.IsPane() {
		if parentIsTabs {
			return id
		}
		return t.Tiles.InsertTabs(id)
	}
	isTabs := tile.Kind == TileKindTabs
	for i, child := range tile.Children {
		if wrapped := t.makeAllPanesChildrenOfTabs(child, isTabs); wrapped != child {
			tile.Shares.ReplaceWith(child, wrapped)
			if tile.Active == child {
				tile.Active = wrapped
			}
			tile.Children[i] = wrapped
		}
	}
	return id
}
