package mosaic

import "github.com/hajimehoshi/ebiten/v2"

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// NewRect constructs a rectangle from a top-left corner and a size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// distSqToCenter returns the squared distance from (x, y) to the rectangle's
// center. Used to rank competing drop zones during a drag.
func (r Rect) distSqToCenter(x, y float64) float64 {
	c := r.Center()
	dx := x - c.X
	dy := y - c.Y
	return dx*dx + dy*dy
}

// TileKind distinguishes the structural role of a Tile.
type TileKind uint8

const (
	TileKindPane       TileKind = iota // leaf tile wrapping opaque host content
	TileKindTabs                       // children stacked behind one visible tab
	TileKindHorizontal                 // children side by side, left-to-right
	TileKindVertical                   // children stacked top-down
	TileKindGrid                       // children in row-major grid cells
)

// ContainerKinds lists every container kind, in declaration order.
var ContainerKinds = [4]TileKind{TileKindTabs, TileKindHorizontal, TileKindVertical, TileKindGrid}

// IsContainer reports whether the kind arranges child tiles.
func (k TileKind) IsContainer() bool {
	return k != TileKindPane
}

// IsLinear reports whether the kind splits space along a single axis.
func (k TileKind) IsLinear() bool {
	return k == TileKindHorizontal || k == TileKindVertical
}

// String returns the kind name for debug output.
func (k TileKind) String() string {
	switch k {
	case TileKindPane:
		return "Pane"
	case TileKindTabs:
		return "Tabs"
	case TileKindHorizontal:
		return "Horizontal"
	case TileKindVertical:
		return "Vertical"
	case TileKindGrid:
		return "Grid"
	default:
		return "Unknown"
	}
}

// PaneAction is what a host's pane callback can request from the engine.
type PaneAction uint8

const (
	PaneActionNone  PaneAction = iota // nothing requested
	PaneActionDrag                    // the pane's own drag handle was grabbed
	PaneActionClose                   // remove this pane from the tree
)

// PointerState is the per-frame pointer input supplied by the host.
// The engine derives press/release transitions itself, so hosts only need
// to report the current position and primary-button state.
type PointerState struct {
	X, Y float64
	Down bool
}

// ReadPointer builds a PointerState from the current ebiten mouse state.
// Hosts embedding the engine in an [ebiten.Game] can pass this straight
// to [Tree.Update] each frame.
func ReadPointer() PointerState {
	mx, my := ebiten.CursorPosition()
	return PointerState{
		X:    float64(mx),
		Y:    float64(my),
		Down: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}

// Style holds the visual metrics the engine needs to carve up space.
// Hosts return one from [Host.Style]; zero-valued fields are replaced by
// the [DefaultStyle] values, so a host can override just what it needs.
type Style struct {
	// Gap is the space in pixels reserved between adjacent children of a
	// linear or grid container. Split handles live in these gaps.
	Gap float64

	// MinTileSize is the smallest extent in pixels a child may be given
	// along a split axis before space stops being proportional.
	MinTileSize float64

	// TabBarHeight is the height in pixels of the tab bar strip at the top
	// of a tabs container.
	TabBarHeight float64

	// MaxTabWidth caps the width of a single tab handle in the bar.
	MaxTabWidth float64

	// ResizeGrabRadius extends the grab region of a split handle beyond
	// the gap itself, on both sides.
	ResizeGrabRadius float64

	// DropPreviewThickness is the thickness of the edge drop zones offered
	// while dragging a tile over a linear container.
	DropPreviewThickness float64
}

// DefaultStyle returns the metrics used when a host does not override them.
func DefaultStyle() Style {
	return Style{
		Gap:                  4,
		MinTileSize:          32,
		TabBarHeight:         24,
		MaxTabWidth:          160,
		ResizeGrabRadius:     4,
		DropPreviewThickness: 12,
	}
}

// fillDefaults replaces zero-valued metrics with the DefaultStyle values.
func (s Style) fillDefaults() Style {
	def := DefaultStyle()
	if s.Gap == 0 {
		s.Gap = def.Gap
	}
	if s.MinTileSize == 0 {
		s.MinTileSize = def.MinTileSize
	}
	if s.TabBarHeight == 0 {
		s.TabBarHeight = def.TabBarHeight
	}
	if s.MaxTabWidth == 0 {
		s.MaxTabWidth = def.MaxTabWidth
	}
	if s.ResizeGrabRadius == 0 {
		s.ResizeGrabRadius = def.ResizeGrabRadius
	}
	if s.DropPreviewThickness == 0 {
		s.DropPreviewThickness = def.DropPreviewThickness
	}
	return s
}
