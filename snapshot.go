package mosaic

// TileSnapshot is the serializable form of one tile. Only the fields
// meaningful for the tile's kind are populated.
type TileSnapshot[P any] struct {
	Kind      TileKind           `json:"kind"`
	Pane      P                  `json:"pane,omitempty"`
	Children  []TileID           `json:"children,omitempty"`
	Shares    map[TileID]float64 `json:"shares,omitempty"`
	Active    TileID             `json:"active,omitempty"`
	Columns   int                `json:"columns,omitempty"`
	ColShares []float64          `json:"colShares,omitempty"`
	RowShares []float64          `json:"rowShares,omitempty"`
}

// Snapshot is a structural copy of a tree sufficient for an exact
// round-trip: same ids, same child order, same shares, same active tabs.
// The engine builds and applies snapshots but does not encode them — the
// struct is plain data (with JSON tags for convenience) that the host hands
// to whatever serializer it uses.
type Snapshot[P any] struct {
	Root  TileID                     `json:"root"`
	Tiles map[TileID]TileSnapshot[P] `json:"tiles"`
}

// Snapshot captures the tree's current structure. Pane payloads are copied
// by value; if P holds pointers, snapshot and tree share the pointed-to data.
func (t *Tree[P]) Snapshot() Snapshot[P] {
	snap := Snapshot[P]{
		Root:  t.Root,
		Tiles: make(map[TileID]TileSnapshot[P], t.Tiles.Len()),
	}
	for id, tile := range t.Tiles.tiles {
		ts := TileSnapshot[P]{
			Kind:    tile.Kind,
			Active:  tile.Active,
			Columns: tile.Columns,
		}
		if tile.IsPane() {
			ts.Pane = tile.Pane
		}
		if len(tile.Children) > 0 {
			ts.Children = append([]TileID(nil), tile.Children...)
		}
		if len(tile.Shares) > 0 {
			ts.Shares = map[TileID]float64(tile.Shares.clone())
		}
		if len(tile.ColShares) > 0 {
			ts.ColShares = append([]float64(nil), tile.ColShares...)
		}
		if len(tile.RowShares) > 0 {
			ts.RowShares = append([]float64(nil), tile.RowShares...)
		}
		snap.Tiles[id] = ts
	}
	return snap
}

// RestoreTree rebuilds a tree from a snapshot, preserving every id. The id
// counter resumes past the highest restored id so future inserts never
// collide with a tile the snapshot named.
func RestoreTree[P any](snap Snapshot[P]) *Tree[P] {
	tiles := NewTiles[P]()
	var maxID TileID
	for id, ts := range snap.Tiles {
		tile := &Tile[P]{
			Kind:    ts.Kind,
			Pane:    ts.Pane,
			Active:  ts.Active,
			Columns: ts.Columns,
		}
		if len(ts.Children) > 0 {
			tile.Children = append([]TileID(nil), ts.Children...)
		}
		if len(ts.Shares) > 0 {
			tile.Shares = Shares(ts.Shares).clone()
		}
		if len(ts.ColShares) > 0 {
			tile.ColShares = append([]float64(nil), ts.ColShares...)
		}
		if len(ts.RowShares) > 0 {
			tile.RowShares = append([]float64(nil), ts.RowShares...)
		}
		tiles.tiles[id] = tile
		if id > maxID {
			maxID = id
		}
	}
	tiles.nextID = maxID
	return NewTree(snap.Root, tiles)
}

// Restore replaces this tree's structure with the snapshot's, keeping the
// tree's options and clearing any in-progress interaction.
func (t *Tree[P]) Restore(snap Snapshot[P]) {
	restored := RestoreTree(snap)
	t.Root = restored.Root
	t.Tiles = restored.Tiles
	t.CancelDrag()
	t.resize = resizeState{}
}
