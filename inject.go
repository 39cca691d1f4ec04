package mosaic

// syntheticPointerEvent is a single queued pointer state override.
type syntheticPointerEvent struct {
	x, y float64
	down bool
}

func (e syntheticPointerEvent) pointer() PointerState {
	return PointerState{X: e.x, Y: e.y, Down: e.down}
}

// InjectPress queues a pointer press at the given coordinates. The event is
// consumed by the next [Tree.Update] call, replacing the host-supplied
// pointer state for that frame. Use the Inject family to script interactions
// in tests and automated drivers.
func (t *Tree[P]) InjectPress(x, y float64) {
	t.injectQueue = append(t.injectQueue, syntheticPointerEvent{x: x, y: y, down: true})
}

// InjectMove queues a pointer move with the button held down. Use between
// InjectPress and InjectRelease to simulate a drag.
func (t *Tree[P]) InjectMove(x, y float64) {
	t.injectQueue = append(t.injectQueue, syntheticPointerEvent{x: x, y: y, down: true})
}

// InjectRelease queues a pointer release at the given coordinates.
func (t *Tree[P]) InjectRelease(x, y float64) {
	t.injectQueue = append(t.injectQueue, syntheticPointerEvent{x: x, y: y, down: false})
}

// InjectClick queues a press followed by a release at the same coordinates.
// Consumes two frames.
func (t *Tree[P]) InjectClick(x, y float64) {
	t.InjectPress(x, y)
	t.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The total sequence consumes frames frames; minimum is 2
// (press + release).
func (t *Tree[P]) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	t.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		f := float64(i) / float64(steps+1)
		t.InjectMove(fromX+(toX-fromX)*f, fromY+(toY-fromY)*f)
	}
	t.InjectRelease(toX, toY)
}

// PendingInjections returns how many queued synthetic events have not yet
// been consumed by Update.
func (t *Tree[P]) PendingInjections() int {
	return len(t.injectQueue)
}
