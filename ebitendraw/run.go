package ebitendraw

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/imui"
)

// RunConfig configures Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool
	ClearColor    color.Color

	// Session issues the frames. A new one is created when nil.
	Session *imui.Session

	// Script replays scripted pointer input in place of the mouse.
	Script *imui.TestRunner

	// ScreenshotDir receives the captures a Script requests. Defaults to
	// "screenshots".
	ScreenshotDir string

	// ExitOnScriptDone stops the game loop once Script has finished.
	ExitOnScriptDone bool
}

// ErrQuit is returned by a draw function to close the window. Run then
// returns nil.
var ErrQuit = errors.New("ebitendraw: quit")

// Run opens a window and calls draw once per frame with the root context of
// a new imui frame, drawn by a Backend onto the screen. It blocks until the
// window is closed or draw returns an error, which Run returns unless it is
// ErrQuit.
func Run(cfg RunConfig, draw func(ctx imui.DrawContext) error) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("ebitendraw: window size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Session == nil {
		cfg.Session = imui.NewSession()
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &game{
		cfg:     cfg,
		backend: NewBackend(),
		draw:    draw,
	}
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	if g.err != nil && !errors.Is(g.err, ErrQuit) {
		return g.err
	}
	return nil
}

// game adapts an imui frame loop to ebiten.Game.
type game struct {
	cfg     RunConfig
	backend *Backend
	draw    func(imui.DrawContext) error
	err     error

	pointer imui.Pointer
	shots   []string

	// Raw input sampled by the latest Update.
	input inputSample
}

// inputSample is the pointer input of one tick, in window pixels.
type inputSample struct {
	x, y     float64
	down     bool
	touching bool
}

// nextInput folds the devices' raw state into the next sample. touch is the
// first active touch, or nil. A lifted finger releases where it last was,
// since touch devices do not move the mouse cursor.
func nextInput(prev inputSample, touch *image.Point, cursor image.Point, mouseDown bool) inputSample {
	switch {
	case touch != nil:
		return inputSample{x: float64(touch.X), y: float64(touch.Y), down: true, touching: true}
	case prev.touching:
		return inputSample{x: prev.x, y: prev.y}
	}
	return inputSample{x: float64(cursor.X), y: float64(cursor.Y), down: mouseDown}
}

func (g *game) Update() error {
	if g.err != nil {
		return ebiten.Termination
	}
	if g.cfg.ExitOnScriptDone && g.cfg.Script != nil && g.cfg.Script.Done() {
		return ebiten.Termination
	}

	var touch *image.Point
	if touches := ebiten.AppendTouchIDs(nil); len(touches) > 0 {
		tx, ty := ebiten.TouchPosition(touches[0])
		touch = &image.Point{X: tx, Y: ty}
	}
	cx, cy := ebiten.CursorPosition()
	g.input = nextInput(g.input, touch, image.Pt(cx, cy), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.ClearColor != nil {
		screen.Fill(g.cfg.ClearColor)
	}

	if g.cfg.Script != nil {
		if label := g.cfg.Script.Step(&g.pointer); label != "" {
			g.shots = append(g.shots, label)
		}
	}

	bounds := screen.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	state := g.pointer.Update(g.input.x, g.input.y, g.input.down, w, h)

	ctx := g.cfg.Session.BeginFrame(imui.Frame{
		Width:        w,
		Height:       h,
		Backend:      g.backend,
		PointerState: state,
	})
	g.backend.Begin(screen)
	if err := g.draw(ctx); err != nil && g.err == nil {
		g.err = err
	}
	g.backend.End()

	if g.cfg.Session.CursorConsumedByUI() {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}

	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}

	captureScreenshots(screen, g.cfg.ScreenshotDir, g.cfg.Session.FrameNumber(), g.shots)
	g.shots = g.shots[:0]
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
