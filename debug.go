package mosaic

import (
	"fmt"
	"os"
	"strings"
)

// debugMaxTreeDepth is the depth past which a tree is almost certainly the
// product of a bug rather than an intentional layout.
const debugMaxTreeDepth = 32

// debugWarnf prints a warning to stderr when debug mode is on.
func (t *Tree[P]) debugWarnf(format string, args ...any) {
	if !t.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[mosaic] warning: "+format+"\n", args...)
}

// debugCheckInvariants validates the structural invariants after a frame:
// every child reference resolves, every tile reachable from the root is
// referenced exactly once, the child graph is acyclic, and the depth stays
// within bounds. Violations warn on stderr; nothing panics, since a layout
// engine must never take the host's render loop down with it.
func (t *Tree[P]) debugCheckInvariants() {
	if t.Root == TileIDNone {
		return
	}
	seen := map[TileID]int{}
	t.debugWalk(t.Root, 0, seen)
	for id, count := range seen {
		if count > 1 {
			t.debugWarnf("tile %d appears as a child %d times", id, count)
		}
	}
	for id := range t.Tiles.tiles {
		if _, ok := seen[id]; !ok {
			t.debugWarnf("tile %d is not reachable from the root", id)
		}
	}
}

func (t *Tree[P]) debugWalk(id TileID, depth int, seen map[TileID]int) {
	if depth > debugMaxTreeDepth {
		t.debugWarnf("tree depth exceeds %d at tile %d (cycle?)", debugMaxTreeDepth, id)
		return
	}
	seen[id]++
	if seen[id] > 1 {
		return
	}
	tile, ok := t.Tiles.Get(id)
	if !ok {
		t.debugWarnf("dangling child reference %d", id)
		return
	}
	for _, child := range tile.Children {
		t.debugWalk(child, depth+1, seen)
	}
}

// String returns a hierarchical dump of the tree for debugging.
func (t *Tree[P]) String() string {
	if t.Root == TileIDNone {
		return "Tree {}"
	}
	var b strings.Builder
	b.WriteString("Tree {\n")
	t.writeTile(&b, t.Root, 1)
	b.WriteString("}")
	return b.String()
}

func (t *Tree[P]) writeTile(b *strings.Builder, id TileID, indent int) {
	b.WriteString(strings.Repeat("  ", indent))
	tile, ok := t.Tiles.Get(id)
	if !ok {
		fmt.Fprintf(b, "%d DANGLING\n", id)
		return
	}
	fmt.Fprintf(b, "%d %s", id, tile.Kind)
	if tile.Kind == TileKindTabs {
		fmt.Fprintf(b, " (active %d)", tile.Active)
	}
	b.WriteByte('\n')
	for _, child := range tile.Children {
		t.writeTile(b, child, indent+1)
	}
}
