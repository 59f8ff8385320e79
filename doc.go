// Package imui is an immediate-mode UI layout and interaction core.
//
// Every frame, the UI is rebuilt from scratch by plain function calls. A
// [Session] hands out one root [DrawContext] per frame; code derives child
// contexts from it with layout operations, and leaf widgets hit-test the
// cursor, resolve their interaction state, and draw through a backend. No
// widget tree is retained between frames. The only state carried across
// frames is which widget currently holds the pointer ([UIState]).
//
// # Quick start
//
//	session := imui.NewSession()
//	var pointer imui.Pointer
//
//	// once per frame:
//	ctx := session.BeginFrame(imui.Frame{
//		Width: 640, Height: 480,
//		Backend:      backend,
//		PointerState: pointer.Update(mx, my, down, 640, 480),
//	})
//	for row := range ctx.UniformMargin(0.1, 0.1, 0.1, 0.1).VerticalSplit(3).All() {
//		if widget.ImageButton(row, normal, hovered, active, imui.AlignCenter).Clicked() {
//			// ...
//		}
//	}
//
// The widget package provides images, buttons, nine-patches, labels and
// progress bars. The ebitendraw package draws with [Ebitengine].
//
// # Coordinates
//
// Every context covers the square [-1,1]² of its own local space, with
// (-1,-1) at the bottom-left corner. [DrawContext.Matrix] maps that square to
// the root viewport, which uses the same convention. Width and height are
// only kept to make aspect-ratio decisions; their unit does not matter.
//
// # Layout
//
// [DrawContext.Margin], [DrawContext.UniformMargin], [DrawContext.Rescale],
// the aspect-ratio operations and the split iterators all return new
// contexts. The receiver is never modified, so a context can be branched
// freely.
//
// # Animations
//
// [DrawContext.AnimationStart] records the current transform as the source
// of an animation; layout steps applied afterwards define the destination.
// Progress is computed from the frame time with an [Interpolation] such as
// [Linear], [EaseOut] or any gween easing via [Eased].
//
// # Interaction
//
// [DrawContext.Interact] combines hover, the pointer edges of the frame and
// the active widget slot into a [Visual] and an [Interaction]. Each widget
// must call [DrawContext.ReserveWidgetID] exactly once per frame, in the
// same order every frame, to keep its id stable.
//
// # Concurrency
//
// Contexts of one frame may be used from several goroutines. Widget ids and
// the hover flag are atomic; the active widget slot and the backend are
// guarded by locks ([WithImages], [WithText]).
//
// [Ebitengine]: https://ebitengine.org
package imui
