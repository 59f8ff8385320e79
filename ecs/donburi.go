package ecs

import (
	"github.com/phanxgames/imui"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for imui widget events.
var InteractionEventType = events.NewEventType[imui.InteractionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on InteractionEventType until ProcessEvents is called.
func NewDonburiSink(world donburi.World) imui.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event imui.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// ClickLog records the widgets clicked in a world.
type ClickLog struct {
	clicked []imui.WidgetID
}

// NewClickLog subscribes a ClickLog to InteractionEventType on world. Clicks
// are recorded when the world's events are processed.
func NewClickLog(world donburi.World) *ClickLog {
	l := &ClickLog{}
	InteractionEventType.Subscribe(world, func(_ donburi.World, e imui.InteractionEvent) {
		if e.Type == imui.EventClick {
			l.clicked = append(l.clicked, e.Widget)
		}
	})
	return l
}

// Drain returns the widgets clicked since the previous call, in order.
func (l *ClickLog) Drain() []imui.WidgetID {
	out := l.clicked
	l.clicked = nil
	return out
}
