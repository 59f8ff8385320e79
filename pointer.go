package imui

// syntheticPointerEvent is one queued pointer event in window pixels.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// Pointer turns raw window input into a PointerState each frame. It tracks
// the held state to derive press and release edges, and replays injected
// events in place of real input for scripted sessions.
//
// The zero value is ready to use.
type Pointer struct {
	down        bool
	lastX       float64
	lastY       float64
	injectQueue []syntheticPointerEvent
}

// ScreenToNDC converts window pixels (origin top-left, y down) to root
// viewport coordinates ([-1,-1] bottom-left, [1,1] top-right).
func ScreenToNDC(x, y, width, height float64) Vec2 {
	return Vec2{
		X: 2*x/width - 1,
		Y: 1 - 2*y/height,
	}
}

// Update returns the pointer state for a frame. x, y is the cursor in window
// pixels, down whether the button is held, and width, height the window
// size. A queued injected event, if any, replaces the real input.
//
// The cursor is reported as absent when it lies outside the window.
func (p *Pointer) Update(x, y float64, down bool, width, height float64) PointerState {
	if len(p.injectQueue) > 0 {
		evt := p.injectQueue[0]
		copy(p.injectQueue, p.injectQueue[1:])
		p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]
		x, y, down = evt.x, evt.y, evt.pressed
	}

	var st PointerState
	if x >= 0 && y >= 0 && x <= width && y <= height && width > 0 && height > 0 {
		c := ScreenToNDC(x, y, width, height)
		st.Cursor = &c
	}
	st.Pressed = down && !p.down
	st.Released = !down && p.down
	p.down = down
	p.lastX, p.lastY = x, y
	return st
}

// Position returns the window pixels passed to, or injected into, the last
// Update.
func (p *Pointer) Position() (x, y float64) {
	return p.lastX, p.lastY
}

// Down reports whether the button was held at the last Update.
func (p *Pointer) Down() bool {
	return p.down
}

// Pending returns the number of injected events not yet consumed.
func (p *Pointer) Pending() int {
	return len(p.injectQueue)
}

// InjectPress queues a press at the given window pixels. It is consumed by
// the next Update.
func (p *Pointer) InjectPress(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a move with the button held. Use it between InjectPress
// and InjectRelease to simulate a drag.
func (p *Pointer) InjectMove(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectHover queues a move with the button up.
func (p *Pointer) InjectHover(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectRelease queues a release at the given window pixels.
func (p *Pointer) InjectRelease(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (p *Pointer) InjectClick(x, y float64) {
	p.InjectPress(x, y)
	p.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 interpolated moves
// and a release at (toX, toY). The sequence consumes frames frames, at
// least 2.
func (p *Pointer) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		p.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	p.InjectRelease(toX, toY)
}
