package mosaic

// TileID is a stable, opaque identifier for a tile. IDs are allocated by a
// [Tiles] arena, are never reused while the arena lives, and remain valid
// across structural edits. The zero value means "no tile".
type TileID uint32

// TileIDNone is the zero TileID, meaning "no tile".
const TileIDNone TileID = 0

// Tile is a node in the layout tree: either a pane wrapping opaque host
// content, or a container arranging child tiles. A single flat struct is used
// for every kind to avoid interface dispatch on the layout hot path; fields
// beyond Kind are meaningful only for the kinds noted on each.
type Tile[P any] struct {
	Kind TileKind

	// Pane is the host payload. Meaningful only for TileKindPane.
	Pane P

	// Children is the ordered child list. Order is meaningful: tab order,
	// split order, grid placement order. Containers only.
	Children []TileID

	// Shares maps each child to its share of the split axis.
	// Linear containers only; missing entries count as 1.
	Shares Shares

	// Active is the id of the frontmost child. Tabs containers only.
	Active TileID

	// Columns is the fixed grid column count; 0 means auto
	// (ceil(sqrt(len(Children)))). Grid containers only.
	Columns int

	// ColShares and RowShares hold per-column and per-row shares by index.
	// Missing or short entries count as 1. Grid containers only.
	ColShares []float64
	RowShares []float64
}

// NewPane creates a pane tile wrapping the given payload.
func NewPane[P any](pane P) *Tile[P] {
	return &Tile[P]{Kind: TileKindPane, Pane: pane}
}

// NewContainer creates a container tile of the given kind with the given
// children. Pane kind is coerced to Tabs so the result is always a container.
func NewContainer[P any](kind TileKind, children []TileID) *Tile[P] {
	if !kind.IsContainer() {
		kind = TileKindTabs
	}
	t := &Tile[P]{Kind: kind, Children: children}
	if kind == TileKindTabs && len(children) > 0 {
		t.Active = children[0]
	}
	if kind.IsLinear() {
		t.Shares = Shares{}
	}
	return t
}

// IsPane reports whether the tile is a leaf pane.
func (t *Tile[P]) IsPane() bool {
	return t.Kind == TileKindPane
}

// IsContainer reports whether the tile arranges child tiles.
func (t *Tile[P]) IsContainer() bool {
	return t.Kind.IsContainer()
}

// NumChildren returns the number of children. Zero for panes.
func (t *Tile[P]) NumChildren() int {
	return len(t.Children)
}

// ChildIndex returns the position of child in the child list, or -1.
func (t *Tile[P]) ChildIndex(child TileID) int {
	for i, c := range t.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// HasChild reports whether child appears in the child list.
func (t *Tile[P]) HasChild(child TileID) bool {
	return t.ChildIndex(child) >= 0
}

// AddChild appends child to the child list. For tabs containers the first
// child added also becomes the active child.
func (t *Tile[P]) AddChild(child TileID) {
	t.Children = append(t.Children, child)
	if t.Kind == TileKindTabs && t.Active == TileIDNone {
		t.Active = child
	}
}

// InsertChild inserts child at the given index, clamping it to the valid
// range. Same activation behavior as AddChild.
func (t *Tile[P]) InsertChild(child TileID, index int) {
	if index < 0 {
		index = 0
	}
	if index > len(t.Children) {
		index = len(t.Children)
	}
	t.Children = append(t.Children, TileIDNone)
	copy(t.Children[index+1:], t.Children[index:])
	t.Children[index] = child
	if t.Kind == TileKindTabs && t.Active == TileIDNone {
		t.Active = child
	}
}

// RemoveChild removes child from the child list. Returns false if child was
// not present. The tile's share entry for the child is dropped as well.
func (t *Tile[P]) RemoveChild(child TileID) bool {
	for i, c := range t.Children {
		if c == child {
			copy(t.Children[i:], t.Children[i+1:])
			t.Children = t.Children[:len(t.Children)-1]
			t.Shares.Remove(child)
			if t.Active == child {
				t.Active = TileIDNone
				if len(t.Children) > 0 {
					t.Active = t.Children[0]
				}
			}
			return true
		}
	}
	return false
}

// SetKind converts a container between kinds, preserving child order.
// No-op for panes or when the kind is unchanged.
func (t *Tile[P]) SetKind(kind TileKind) {
	if t.IsPane() || !kind.IsContainer() || kind == t.Kind {
		return
	}
	t.Kind = kind
	if kind == TileKindTabs {
		if !t.HasChild(t.Active) && len(t.Children) > 0 {
			t.Active = t.Children[0]
		}
	} else {
		t.Active = TileIDNone
	}
}

// SetActive makes child the frontmost tab. No-op unless the tile is a tabs
// container and child is one of its children.
func (t *Tile[P]) SetActive(child TileID) bool {
	if t.Kind != TileKindTabs || !t.HasChild(child) {
		return false
	}
	t.Active = child
	return true
}
