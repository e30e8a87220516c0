package touchgui

import "github.com/hajimehoshi/ebiten/v2"

// InjectDown queues a touch-down of pointer at the given screen
// coordinates. Queued events are dispatched one per Step, exactly like
// platform events passed to HandleEvent.
func (g *TouchGUI) InjectDown(pointer ebiten.TouchID, x, y float64) {
	g.injectQueue = append(g.injectQueue, TouchEvent{ID: pointer, X: x, Y: y, Phase: PhaseDown})
}

// InjectMove queues a move of pointer to the given screen coordinates.
func (g *TouchGUI) InjectMove(pointer ebiten.TouchID, x, y float64) {
	g.injectQueue = append(g.injectQueue, TouchEvent{ID: pointer, X: x, Y: y, Phase: PhaseMove})
}

// InjectUp queues the release of pointer at the given screen coordinates.
func (g *TouchGUI) InjectUp(pointer ebiten.TouchID, x, y float64) {
	g.injectQueue = append(g.injectQueue, TouchEvent{ID: pointer, X: x, Y: y, Phase: PhaseUp})
}

// InjectTap queues a down followed by an up at the same coordinates.
// Consumes two frames.
func (g *TouchGUI) InjectTap(pointer ebiten.TouchID, x, y float64) {
	g.InjectDown(pointer, x, y)
	g.InjectUp(pointer, x, y)
}

// InjectDrag queues a full drag: down at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and up at
// (toX, toY). The final position is also sent as a move so the release
// happens where the drag ended. Minimum frames is 2.
func (g *TouchGUI) InjectDrag(pointer ebiten.TouchID, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	g.InjectDown(pointer, fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		g.InjectMove(pointer, fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	g.InjectMove(pointer, toX, toY)
	g.InjectUp(pointer, toX, toY)
}

// PendingInjections returns the number of queued events.
func (g *TouchGUI) PendingInjections() int {
	return len(g.injectQueue)
}

// processInjectedInput pops one event from the inject queue and dispatches
// it. Returns true if an event was consumed.
func (g *TouchGUI) processInjectedInput() bool {
	if len(g.injectQueue) == 0 {
		return false
	}
	ev := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]

	g.HandleEvent(ev)
	return true
}
