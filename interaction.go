package imui

// Interact resolves the interaction state of the widget id for this frame,
// using the whole context as its hit area. It returns the visual to draw and
// whether the widget was clicked.
//
// Rules, first match wins:
//   - not hovered: VisualNormal, nothing changes
//   - hovered and active: VisualActive; on release the active slot clears
//     and the result is InteractionClicked
//   - hovered and pressed this frame: VisualActive, id becomes active
//   - hovered: VisualHovered
//
// Releasing the pointer away from an active widget leaves it active.
func (c DrawContext) Interact(id WidgetID) (Visual, Interaction) {
	return c.interact(id, c.IsCursorHovering())
}

// InteractShape is like Interact with a custom hit area in local
// coordinates.
func (c DrawContext) InteractShape(id WidgetID, shape HitShape) (Visual, Interaction) {
	return c.interact(id, c.IsCursorHoveringShape(shape))
}

func (c DrawContext) interact(id WidgetID, hovering bool) (Visual, Interaction) {
	if !hovering {
		return VisualNormal, InteractionNone
	}
	c.SetCursorHoveredWidget()

	fs := c.frame
	fs.uiMu.Lock()
	var (
		visual = VisualHovered
		result = InteractionNone
		event  EventType
		emit   bool
	)
	switch {
	case fs.ui.ActiveWidget == id && id != 0:
		visual = VisualActive
		if c.released {
			fs.ui.ActiveWidget = 0
			result = InteractionClicked
			event, emit = EventClick, true
		}
	case c.pressed:
		visual = VisualActive
		fs.ui.ActiveWidget = id
		event, emit = EventPress, true
	}
	fs.uiMu.Unlock()

	if emit && fs.sink != nil {
		local, _ := c.cursorLocal()
		fs.sink.EmitEvent(InteractionEvent{
			Type:   event,
			Widget: id,
			Frame:  fs.number,
			Cursor: c.cursor,
			Local:  local,
		})
	}
	return visual, result
}

// ActiveWidget returns the widget currently holding the pointer, or zero.
func (c DrawContext) ActiveWidget() WidgetID {
	c.frame.uiMu.Lock()
	defer c.frame.uiMu.Unlock()
	return c.frame.ui.ActiveWidget
}
