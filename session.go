package imui

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// PointerState is the single pointer's state for one frame. Cursor is nil
// when the pointer is outside the window or absent; otherwise it is in root
// viewport coordinates, [-1,-1] bottom-left to [1,1] top-right.
type PointerState struct {
	Cursor   *Vec2
	Pressed  bool // button went down this frame
	Released bool // button went up this frame
}

// UIState is the state a caller persists across frames. ActiveWidget is the
// widget currently holding the pointer; zero means none.
type UIState struct {
	ActiveWidget WidgetID
}

// Frame describes one frame handed to Session.BeginFrame.
type Frame struct {
	// Width and Height are the logical viewport size. Only their ratio
	// matters to layout; both must be positive.
	Width, Height float64

	// Backend receives draw calls. It must implement ImageDrawer[I] and/or
	// TextDrawer[F] for the resource types the frame's widgets use.
	Backend any

	PointerState

	// UI holds the active widget across frames. When nil, the session keeps
	// its own UIState.
	UI *UIState

	// Time is the instant animations are sampled at. Zero means "ask the
	// session clock once".
	Time time.Time
}

// EventSink is the interface for optional event forwarding. When set on a
// Session, widget press and click interactions are forwarded to it.
type EventSink interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries one widget interaction for an EventSink.
type InteractionEvent struct {
	Type   EventType
	Widget WidgetID
	Frame  uint64
	Cursor Vec2 // root viewport coordinates
	Local  Vec2 // widget-local [-1,1] coordinates
}

// Session issues one root DrawContext per frame and owns the state shared by
// every context derived from it.
type Session struct {
	clock  func() time.Time
	sink   EventSink
	debug  bool
	ui     UIState
	frames uint64

	current atomic.Pointer[frameState]
}

// frameState is shared by every DrawContext derived from one BeginFrame call.
type frameState struct {
	number uint64
	now    time.Time
	sink   EventSink

	nextID  atomic.Uint64
	hovered atomic.Bool

	uiMu sync.Mutex
	ui   *UIState

	drawMu  sync.Mutex
	backend any
}

// NewSession creates a session that samples animations with time.Now.
func NewSession() *Session {
	return &Session{clock: time.Now}
}

// SetClock replaces the clock used when a Frame carries no Time. Passing nil
// restores time.Now.
func (s *Session) SetClock(clock func() time.Time) {
	if clock == nil {
		clock = time.Now
	}
	s.clock = clock
}

// SetEventSink sets the optional interaction event bridge.
func (s *Session) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame stats
// are logged at debug level through Logger.
func (s *Session) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// UIState returns the state the session uses for frames that carry no UI.
func (s *Session) UIState() *UIState {
	return &s.ui
}

// FrameNumber returns how many frames have begun.
func (s *Session) FrameNumber() uint64 {
	return s.frames
}

// BeginFrame starts a frame and returns its root context, which covers the
// whole viewport with an identity transform. Widget ids restart at 1 and the
// sticky hover flag is cleared.
func (s *Session) BeginFrame(f Frame) DrawContext {
	if !(f.Width > 0) || !(f.Height > 0) {
		panic(fmt.Sprintf("imui: frame size must be positive, got %vx%v", f.Width, f.Height))
	}
	now := f.Time
	if now.IsZero() {
		now = s.clock()
	}
	ui := f.UI
	if ui == nil {
		ui = &s.ui
	}

	prev := s.current.Load()
	if s.debug && prev != nil {
		s.debugLog(prev, now)
	}

	s.frames++
	fs := &frameState{
		number:  s.frames,
		now:     now,
		sink:    s.sink,
		ui:      ui,
		backend: f.Backend,
	}
	s.current.Store(fs)

	ctx := DrawContext{
		frame:    fs,
		matrix:   identityMatrix,
		width:    f.Width,
		height:   f.Height,
		pressed:  f.Pressed,
		released: f.Released,
	}
	if f.Cursor != nil {
		ctx.cursor = *f.Cursor
		ctx.hasCursor = true
	}
	return ctx
}

// CursorConsumedByUI reports whether any widget of the most recent frame was
// under the cursor. When false, the cursor is over whatever lies beneath the
// UI. Read it once the frame's widgets have all been drawn.
func (s *Session) CursorConsumedByUI() bool {
	fs := s.current.Load()
	return fs != nil && fs.hovered.Load()
}
