package mosaic

import (
	"reflect"
	"testing"
)

// --- Pruning ---

func TestSimplifyRemovesEmptyContainersRecursively(t *testing.T) {
	tiles := NewTiles[string]()
	tabs := tiles.InsertTabs()
	inner := tiles.InsertVertical(tabs)
	root := tiles.InsertHorizontal(inner)
	tree := NewTree(root, tiles)

	tree.Simplify()

	if !tree.IsEmpty() {
		t.Errorf("root = %d, want empty tree", tree.Root)
	}
	if tree.Tiles.Len() != 0 {
		t.Errorf("store still holds %d tiles", tree.Tiles.Len())
	}
}

func TestSimplifyDropsDanglingChildren(t *testing.T) {
	tree, a, b, c := newSplitTree(t)
	root, _ := tree.Tiles.Get(tree.Root)
	root.Children = append(root.Children, 9999)

	tree.Simplify()
	assertChildren(t, tree, tree.Root, []TileID{a, b, c})
	assertWellFormed(t, tree)
}

// --- Single-child collapse ---

func TestSimplifyCollapsePreservesShare(t *testing.T) {
	tiles := NewTiles[string]()
	a := tiles.InsertPane("a")
	inner := tiles.InsertVertical(a)
	c := tiles.InsertPane("c")
	root := tiles.InsertHorizontal(inner, c)
	tree := NewTree(root, tiles)
	rootTile, _ := tree.Tiles.Get(root)
	rootTile.Shares.Set(inner, 3)

	tree.Simplify()

	assertChildren(t, tree, root, []TileID{a, c})
	if got := rootTile.Shares.Of(a); got != 3 {
		t.Errorf("collapsed child share = %v, want the wrapper's 3", got)
	}
	if _, ok := tree.Tiles.Get(inner); ok {
		t.Error("collapsed container should be gone from the store")
	}
}

func TestSimplifyRootCollapse(t *testing.T) {
	tiles := NewTiles[string]()
	a := tiles.InsertPane("a")
	root := tiles.InsertHorizontal(a)
	tree := NewTree(root, tiles)

	tree.Simplify()
	if tree.Root != a {
		t.Errorf("root = %d, want collapsed to pane %d", tree.Root, a)
	}
}

func TestSimplifyKeepRootContainer(t *testing.T) {
	tiles := NewTiles[string]()
	a := tiles.InsertPane("a")
	root := tiles.InsertHorizontal(a)
	tree := NewTree(root, tiles)
	tree.Options.KeepRootContainer = true

	tree.Simplify()
	if tree.Root != root {
		t.Errorf("root = %d, want container %d kept", tree.Root, root)
	}
	assertChildren(t, tree, root, []TileID{a})
}

func TestSimplifyTabsCollapseOptional(t *testing.T) {
	build := func() (*Tree[string], TileID, TileID, TileID) {
		tiles := NewTiles[string]()
		a := tiles.InsertPane("a")
		tabs := tiles.InsertTabs(a)
		b := tiles.InsertPane("b")
		tree := NewTree(tiles.InsertHorizontal(tabs, b), tiles)
		return tree, tabs, a, b
	}

	tree, tabs, a, b := build()
	tree.Simplify()
	if _, ok := tree.Tiles.Get(tabs); ok {
		t.Error("single-child tabs should collapse by default")
	}
	assertChildren(t, tree, tree.Root, []TileID{a, b})

	tree, tabs, _, _ = build()
	tree.Options.PruneSingleChildTabs = false
	tree.Simplify()
	if _, ok := tree.Tiles.Get(tabs); !ok {
		t.Error("tabs should survive with PruneSingleChildTabs off")
	}
}

// --- Joining nested linear containers ---

func TestSimplifyJoinsNestedLinear(t *testing.T) {
	tiles := NewTiles[string]()
	a := tiles.InsertPane("a")
	b := tiles.InsertPane("b")
	c := tiles.InsertPane("c")
	d := tiles.InsertPane("d")
	nested := tiles.InsertHorizontal(b, c)
	root := tiles.InsertHorizontal(a, nested, d)
	tree := NewTree(root, tiles)
	nestedTile, _ := tree.Tiles.Get(nested)
	nestedTile.Shares.Set(c, 3)
	rootTile, _ := tree.Tiles.Get(root)
	rootTile.Shares.Set(nested, 2)

	tree.Simplify()

	assertChildren(t, tree, root, []TileID{a, b, c, d})
	if _, ok := tree.Tiles.Get(nested); ok {
		t.Error("spliced container should be gone")
	}
	// The nested container's share of 2 is split 1:3 between its children.
	if got := rootTile.Shares.Of(b); got != 0.5 {
		t.Errorf("share of b = %v, want 0.5", got)
	}
	if got := rootTile.Shares.Of(c); got != 1.5 {
		t.Errorf("share of c = %v, want 1.5", got)
	}
	assertWellFormed(t, tree)
}

func TestSimplifyKeepsCrossDirectionNesting(t *testing.T) {
	tiles := NewTiles[string]()
	a := tiles.InsertPane("a")
	b := tiles.InsertPane("b")
	c := tiles.InsertPane("c")
	nested := tiles.InsertVertical(a, b)
	root := tiles.InsertHorizontal(nested, c)
	tree := NewTree(root, tiles)

	tree.Simplify()
	assertChildren(t, tree, root, []TileID{nested, c})
}

// --- Idempotence ---

func TestSimplifyIsIdempotent(t *testing.T) {
	tiles := NewTiles[string]()
	a := tiles.InsertPane("a")
	b := tiles.InsertPane("b")
	c := tiles.InsertPane("c")
	empty := tiles.InsertTabs()
	lone := tiles.InsertVertical(a)
	nested := tiles.InsertHorizontal(b, c)
	root := tiles.InsertHorizontal(empty, lone, nested)
	tree := NewTree(root, tiles)

	tree.Simplify()
	first := tree.Snapshot()
	tree.Simplify()
	second := tree.Snapshot()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("second pass changed the tree:\nfirst:  %+v\nsecond: %+v", first, second)
	}
	assertChildren(t, tree, root, []TileID{a, b, c})
	assertWellFormed(t, tree)
}

// --- Tabs active repair ---

func TestSimplifyRepairsActiveTab(t *testing.T) {
	tiles := NewTiles[string]()
	a := tiles.InsertPane("a")
	b := tiles.InsertPane("b")
	root := tiles.InsertTabs(a, b)
	tree := NewTree(root, tiles)
	tile, _ := tree.Tiles.Get(root)
	tile.Active = 9999

	tree.Simplify()
	if tile.Active != a {
		t.Errorf("active = %d, want repaired to %d", tile.Active, a)
	}
}

// --- Forced tabs wrapping ---

func TestAllPanesMustHaveTabs(t *testing.T) {
	tree, a, b, _ := newSplitTree(t)
	tree.Options.AllPanesMustHaveTabs = true

	tree.Update(&testHost{}, NewRect(0, 0, 800, 600), PointerState{})

	for _, pane := range []TileID{a, b} {
		parent := tree.ParentOf(pane)
		tile, ok := tree.Tiles.Get(parent)
		if !ok {
			t.Errorf("pane %d has no parent", pane)
		} else if tile.Kind != TileKindTabs {
			t.Errorf("pane %d parent kind = %v, want tabs", pane, tile.Kind)
		}
	}
	assertWellFormed(t, tree)

	// A second frame keeps the wrappers: the lone-pane tabs do not collapse.
	before := tree.Snapshot()
	tree.Update(&testHost{}, NewRect(0, 0, 800, 600), PointerState{})
	assertTreeUnchanged(t, tree, before)
}
