package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yohamta/donburi"

	"github.com/phanxgames/imui"
	"github.com/phanxgames/imui/ecs"
	"github.com/phanxgames/imui/record"
	"github.com/phanxgames/imui/widget"
)

// Resource names drawn by the menu. The recorder treats them as opaque.
const (
	imgBackground   = "background"
	imgButton       = "button"
	imgButtonHover  = "button_hover"
	imgButtonActive = "button_active"
	fontLabel       = "label"
)

// click is a button clicked during the replay.
type click struct {
	Frame  uint64
	Button string
}

// result summarizes a replay.
type result struct {
	Frames  int
	Clicks  []click
	Presses int
}

type replayOptions struct {
	// DumpDir receives one file of draw commands per screenshot step.
	DumpDir string
	Debug   bool
}

// replay runs cfg's script against the menu until every step is done.
func replay(ctx context.Context, cfg config, opts replayOptions) (result, error) {
	logger := loggerFromContext(ctx)

	runner, err := imui.NewTestRunner(cfg.Steps)
	if err != nil {
		return result{}, err
	}

	world := donburi.NewWorld()
	clicks := ecs.NewClickLog(world)
	var presses int
	ecs.InteractionEventType.Subscribe(world, func(_ donburi.World, e imui.InteractionEvent) {
		if e.Type == imui.EventPress {
			presses++
		}
	})

	session := imui.NewSession()
	session.SetEventSink(ecs.NewDonburiSink(world))
	session.SetDebugMode(opts.Debug)

	rec := record.New()
	var (
		pointer imui.Pointer
		res     result
	)
	start := time.Unix(0, 0)

	for frame := 0; !runner.Done(); frame++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if frame >= cfg.MaxFrames {
			return res, fmt.Errorf("replay: script not finished after %d frames", cfg.MaxFrames)
		}

		shot := runner.Step(&pointer)
		x, y := pointer.Position()
		state := pointer.Update(x, y, pointer.Down(), cfg.Width, cfg.Height)

		rec.Reset()
		root := session.BeginFrame(imui.Frame{
			Width:        cfg.Width,
			Height:       cfg.Height,
			Backend:      rec,
			PointerState: state,
			Time:         start.Add(time.Duration(frame) * frameInterval * time.Millisecond),
		})
		names := drawMenu(root, cfg.Buttons)

		ecs.InteractionEventType.ProcessEvents(world)
		for _, id := range clicks.Drain() {
			c := click{Frame: session.FrameNumber(), Button: names[id]}
			logger.Debug("button clicked", "frame", c.Frame, "button", c.Button, "widget", id)
			res.Clicks = append(res.Clicks, c)
		}

		if shot != "" {
			if err := dumpCommands(opts.DumpDir, shot, rec.Commands); err != nil {
				return res, err
			}
			logger.Debug("screenshot", "label", shot, "commands", len(rec.Commands), "consumed", session.CursorConsumedByUI())
		}
		res.Frames++
	}
	res.Presses = presses
	return res, nil
}

// drawMenu lays the buttons out in a column and returns the button name of
// each widget id it reserved.
func drawMenu(root imui.DrawContext, buttons []string) map[imui.WidgetID]string {
	widget.Stretch(root, imgBackground)

	names := make(map[imui.WidgetID]string, len(buttons))
	column := root.UniformMargin(0.1, 0.25, 0.1, 0.25)
	rows := column.VerticalSplit(len(buttons))
	for i := 0; ; i++ {
		row, ok := rows.Next()
		if !ok {
			break
		}
		cell := row.UniformMargin(0.1, 0, 0.1, 0)

		id := cell.ReserveWidgetID()
		names[id] = buttons[i]
		visual, _ := cell.Interact(id)
		switch visual {
		case imui.VisualHovered:
			widget.Stretch(cell, imgButtonHover)
		case imui.VisualActive:
			widget.Stretch(cell, imgButtonActive)
		default:
			widget.Stretch(cell, imgButton)
		}
		widget.LabelContain(cell.UniformMargin(0.2, 0.1, 0.2, 0.1), fontLabel, buttons[i], imui.AlignCenter)
	}
	return names
}

// dumpCommands writes cmds, one per line, to dir/<label>.txt. Nothing is
// written when dir is empty.
func dumpCommands(dir, label string, cmds []record.Command) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("dump %s: %w", label, err)
	}
	var b strings.Builder
	for _, c := range cmds {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	path := filepath.Join(dir, strings.ReplaceAll(label, string(filepath.Separator), "_")+".txt")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("dump %s: %w", label, err)
	}
	return nil
}
