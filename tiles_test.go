package mosaic

import "testing"

// --- Arena basics ---

func TestTilesInsertAllocatesFreshIDs(t *testing.T) {
	tiles := NewTiles[string]()
	a := tiles.InsertPane("a")
	b := tiles.InsertPane("b")
	if a == TileIDNone || b == TileIDNone {
		t.Fatal("ids must never be TileIDNone")
	}
	if a == b {
		t.Fatal("ids must be unique")
	}

	// Ids are not reused after removal.
	tiles.Remove(b)
	c := tiles.InsertPane("c")
	if c == b {
		t.Error("removed id was reused")
	}
}

func TestTilesGetAndRemove(t *testing.T) {
	tiles := NewTiles[string]()
	a := tiles.InsertPane("a")

	tile, ok := tiles.Get(a)
	if !ok || !tile.IsPane() || tile.Pane != "a" {
		t.Fatalf("Get(a) = %+v, %v", tile, ok)
	}
	if _, ok := tiles.Get(9999); ok {
		t.Error("Get of unknown id should report false")
	}

	removed, ok := tiles.Remove(a)
	if !ok || removed != tile {
		t.Error("Remove should return the stored tile")
	}
	if _, ok := tiles.Remove(a); ok {
		t.Error("double Remove should report false")
	}
	if tiles.Len() != 0 {
		t.Errorf("Len = %d, want 0", tiles.Len())
	}
}

func TestTilesContainerHelpers(t *testing.T) {
	tiles := NewTiles[string]()
	a := tiles.InsertPane("a")
	b := tiles.InsertPane("b")

	tabs := tiles.InsertTabs(a, b)
	tile, _ := tiles.Get(tabs)
	if tile.Kind != TileKindTabs || tile.Active != a {
		t.Errorf("tabs tile = %+v, want kind tabs with first child active", tile)
	}

	for kind, insert := range map[TileKind]func(...TileID) TileID{
		TileKindHorizontal: tiles.InsertHorizontal,
		TileKindVertical:   tiles.InsertVertical,
		TileKindGrid:       tiles.InsertGrid,
	} {
		id := insert(a, b)
		tile, _ := tiles.Get(id)
		if tile.Kind != kind || tile.NumChildren() != 2 {
			t.Errorf("insert helper for %v produced %+v", kind, tile)
		}
	}
}

func TestInsertBinarySplit(t *testing.T) {
	tiles := NewTiles[string]()
	a := tiles.InsertPane("a")
	b := tiles.InsertPane("b")

	id := tiles.InsertBinarySplit(TileKindVertical, a, b, 0.25)
	tile, _ := tiles.Get(id)
	if tile.Kind != TileKindVertical {
		t.Errorf("kind = %v, want vertical", tile.Kind)
	}
	if got := tile.Shares.Of(a); got != 0.5 {
		t.Errorf("first share = %v, want 0.5", got)
	}
	if got := tile.Shares.Of(b); got != 1.5 {
		t.Errorf("second share = %v, want 1.5", got)
	}

	// Fraction is clamped, and non-linear kinds fall back to horizontal.
	id = tiles.InsertBinarySplit(TileKindTabs, a, b, 2)
	tile, _ = tiles.Get(id)
	if tile.Kind != TileKindHorizontal {
		t.Errorf("kind = %v, want horizontal fallback", tile.Kind)
	}
	if got := tile.Shares.Of(a); got != 2 {
		t.Errorf("clamped first share = %v, want 2", got)
	}
}

// --- Garbage collection ---

func TestTilesGC(t *testing.T) {
	tiles := NewTiles[string]()
	a := tiles.InsertPane("a")
	b := tiles.InsertPane("b")
	root := tiles.InsertHorizontal(a)
	// b is floating: never attached to anything.

	if collected := tiles.gc(root); collected != 1 {
		t.Errorf("collected = %d, want 1", collected)
	}
	if _, ok := tiles.Get(b); ok {
		t.Error("unreachable tile should be collected")
	}
	if _, ok := tiles.Get(a); !ok {
		t.Error("reachable tile should survive")
	}

	if collected := tiles.gc(TileIDNone); collected != 2 {
		t.Errorf("collected = %d, want the whole arena", collected)
	}
}

// --- Tile basics ---

func TestTileChildEdits(t *testing.T) {
	tile := NewContainer[string](TileKindHorizontal, []TileID{1, 2, 3})
	tile.Shares.Set(2, 5)

	tile.InsertChild(4, 1)
	if got := tile.Children; !equalIDs(got, []TileID{1, 4, 2, 3}) {
		t.Errorf("children after insert = %v", got)
	}
	// Out-of-range indexes clamp.
	tile.InsertChild(5, 99)
	if got := tile.Children; !equalIDs(got, []TileID{1, 4, 2, 3, 5}) {
		t.Errorf("children after clamped insert = %v", got)
	}

	tile.RemoveChild(2)
	if tile.HasChild(2) {
		t.Error("child 2 should be gone")
	}
	if _, ok := tile.Shares[2]; ok {
		t.Error("share entry should be dropped with the child")
	}
	if got := tile.ChildIndex(3); got != 2 {
		t.Errorf("ChildIndex(3) = %d, want 2", got)
	}
	if got := tile.ChildIndex(2); got != -1 {
		t.Errorf("ChildIndex(removed) = %d, want -1", got)
	}
}

func TestTabsRemoveChildRepairsActive(t *testing.T) {
	tile := NewContainer[string](TileKindTabs, []TileID{1, 2, 3})
	tile.SetActive(2)
	tile.RemoveChild(2)
	if tile.Active != 1 {
		t.Errorf("active = %d, want repaired to first child", tile.Active)
	}
}

func TestSetKind(t *testing.T) {
	tile := NewContainer[string](TileKindHorizontal, []TileID{1, 2})

	tile.SetKind(TileKindTabs)
	if tile.Kind != TileKindTabs || tile.Active != 1 {
		t.Errorf("after SetKind(tabs): kind %v, active %d", tile.Kind, tile.Active)
	}
	tile.SetKind(TileKindGrid)
	if tile.Kind != TileKindGrid || tile.Active != TileIDNone {
		t.Errorf("after SetKind(grid): kind %v, active %d", tile.Kind, tile.Active)
	}
	tile.SetKind(TileKindPane)
	if tile.Kind != TileKindGrid {
		t.Error("SetKind to a non-container kind is a no-op")
	}

	pane := NewPane("p")
	pane.SetKind(TileKindTabs)
	if !pane.IsPane() {
		t.Error("panes cannot become containers")
	}
}

func TestNewContainerCoercesKind(t *testing.T) {
	tile := NewContainer[string](TileKindPane, []TileID{1})
	if tile.Kind != TileKindTabs {
		t.Errorf("kind = %v, want coerced to tabs", tile.Kind)
	}
}

func equalIDs(a, b []TileID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
