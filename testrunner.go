package imui

import (
	"encoding/json"
	"fmt"
)

// ScriptStep is a single action of a scripted pointer session. Coordinates
// are window pixels.
//
// Actions:
//   - "click": press and release at X, Y (two frames)
//   - "press", "release", "move", "hover": one event at X, Y
//   - "drag": press at FromX, FromY, release at ToX, ToY over Frames frames
//   - "wait": do nothing for Frames frames
//   - "screenshot": request a capture named Label
type ScriptStep struct {
	Action string  `json:"action" toml:"action"`
	Label  string  `json:"label,omitempty" toml:"label,omitempty"`
	X      float64 `json:"x,omitempty" toml:"x,omitempty"`
	Y      float64 `json:"y,omitempty" toml:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty" toml:"from_x,omitempty"`
	FromY  float64 `json:"fromY,omitempty" toml:"from_y,omitempty"`
	ToX    float64 `json:"toX,omitempty" toml:"to_x,omitempty"`
	ToY    float64 `json:"toY,omitempty" toml:"to_y,omitempty"`
	Frames int     `json:"frames,omitempty" toml:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []ScriptStep `json:"steps"`
}

// TestRunner sequences injected pointer events and screenshot requests
// across frames for automated testing. Call Step once per frame, before
// Pointer.Update.
type TestRunner struct {
	steps     []ScriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script of the form
// {"steps": [{"action": "click", "x": 10, "y": 20}, ...]}.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("imui: parse test script: %w", err)
	}
	return NewTestRunner(script.Steps)
}

// NewTestRunner returns a runner for steps. Unknown actions are rejected.
func NewTestRunner(steps []ScriptStep) (*TestRunner, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("imui: parse test script: no steps")
	}
	for i, st := range steps {
		switch st.Action {
		case "click", "press", "release", "move", "hover", "drag", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("imui: parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: append([]ScriptStep(nil), steps...)}, nil
}

// Done reports whether every step has been executed and its injected events
// consumed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame, queueing input on p. It returns the
// label of a screenshot to take this frame, or "".
func (r *TestRunner) Step(p *Pointer) (screenshot string) {
	if r.done {
		return ""
	}
	// Wait for pending injections to drain before advancing.
	if p.Pending() > 0 {
		return ""
	}
	if r.waitCount > 0 {
		r.waitCount--
		return ""
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return ""
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		screenshot = st.Label
		if screenshot == "" {
			screenshot = fmt.Sprintf("step%d", r.cursor)
		}
	case "click":
		p.InjectClick(st.X, st.Y)
	case "press":
		p.InjectPress(st.X, st.Y)
	case "release":
		p.InjectRelease(st.X, st.Y)
	case "move":
		p.InjectMove(st.X, st.Y)
	case "hover":
		p.InjectHover(st.X, st.Y)
	case "drag":
		p.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && p.Pending() == 0 {
		r.done = true
	}
	return screenshot
}
