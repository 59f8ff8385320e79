package imui

// Vec2 is a 2D vector used for cursor positions, local coordinates and UV
// coordinates throughout the API.
type Vec2 struct {
	X, Y float64
}

// HorizontalAlignment selects where a shrunk viewport sits on the X axis.
type HorizontalAlignment uint8

const (
	HAlignCenter HorizontalAlignment = iota // centered horizontally
	HAlignLeft                              // touches the left edge
	HAlignRight                             // touches the right edge
)

// VerticalAlignment selects where a shrunk viewport sits on the Y axis.
type VerticalAlignment uint8

const (
	VAlignCenter VerticalAlignment = iota // centered vertically
	VAlignTop                             // touches the top edge
	VAlignBottom                          // touches the bottom edge
)

// Alignment pairs a horizontal and a vertical alignment.
type Alignment struct {
	Horizontal HorizontalAlignment
	Vertical   VerticalAlignment
}

// Common alignments.
var (
	AlignCenter      = Alignment{HAlignCenter, VAlignCenter}
	AlignTop         = Alignment{HAlignCenter, VAlignTop}
	AlignBottom      = Alignment{HAlignCenter, VAlignBottom}
	AlignLeft        = Alignment{HAlignLeft, VAlignCenter}
	AlignRight       = Alignment{HAlignRight, VAlignCenter}
	AlignTopLeft     = Alignment{HAlignLeft, VAlignTop}
	AlignTopRight    = Alignment{HAlignRight, VAlignTop}
	AlignBottomLeft  = Alignment{HAlignLeft, VAlignBottom}
	AlignBottomRight = Alignment{HAlignRight, VAlignBottom}
)

// offset returns the X translation, in parent [-1,1] units, that places a
// box of the given relative width according to a.
func (a HorizontalAlignment) offset(scale float64) float64 {
	switch a {
	case HAlignLeft:
		return scale - 1
	case HAlignRight:
		return 1 - scale
	default:
		return 0
	}
}

func (a VerticalAlignment) offset(scale float64) float64 {
	switch a {
	case VAlignBottom:
		return scale - 1
	case VAlignTop:
		return 1 - scale
	default:
		return 0
	}
}

// WidgetID identifies a widget within one frame. The zero value means "no
// widget"; ids handed out by ReserveWidgetID start at 1.
type WidgetID uint64

// Interaction reports whether a widget was clicked this frame.
type Interaction uint8

const (
	InteractionNone    Interaction = iota // nothing happened
	InteractionClicked                    // press and release both landed on the widget
)

// Clicked reports whether i is InteractionClicked.
func (i Interaction) Clicked() bool {
	return i == InteractionClicked
}

func (i Interaction) String() string {
	if i == InteractionClicked {
		return "clicked"
	}
	return "none"
}

// Visual selects which look a widget should render with this frame.
type Visual uint8

const (
	VisualNormal  Visual = iota // cursor elsewhere
	VisualHovered               // cursor over the widget
	VisualActive                // widget holds the pointer
)

func (v Visual) String() string {
	switch v {
	case VisualHovered:
		return "hovered"
	case VisualActive:
		return "active"
	default:
		return "normal"
	}
}

// EventType identifies a kind of widget interaction event.
type EventType uint8

const (
	EventPress EventType = iota // a widget captured the pointer
	EventClick                  // the captured widget was released over
)
