package panel

import (
	"fmt"

	"github.com/goccy/go-json"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	Steps  int    `json:"steps,omitempty"`
	Key    string `json:"key,omitempty"`
	Screen string `json:"screen,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var testActions = map[string]bool{
	"click":      true,
	"long_press": true,
	"press":      true,
	"rotate_cw":  true,
	"rotate_ccw": true,
	"key":        true,
	"switch":     true,
	"wait":       true,
	"screenshot": true,
}

// TestRunner sequences injected input, screen switches and screenshots
// across ticks for automated visual testing. Attach it with
// Manager.SetTestRunner.
//
// A script looks like:
//
//	{"steps": [
//	  {"action": "switch", "screen": "menu"},
//	  {"action": "click", "x": 160, "y": 120},
//	  {"action": "rotate_cw", "steps": 3},
//	  {"action": "wait", "frames": 10},
//	  {"action": "screenshot", "label": "after-rotate"}
//	]}
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Manager via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !testActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "switch" && st.Screen == "" {
			return nil, fmt.Errorf("parse test script: step %d: switch needs a screen", i)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Remaining returns the number of steps not yet executed.
func (r *TestRunner) Remaining() int {
	return len(r.steps) - r.cursor
}

// step advances the runner by one tick. Called from Manager.Step before the
// input queue drains, so injected input is handled on the same tick.
func (r *TestRunner) step(m *Manager) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		m.Screenshot(st.Label)
	case "click":
		m.InjectClick(st.X, st.Y)
	case "long_press":
		m.InjectLongPress(st.X, st.Y)
	case "press":
		m.InjectPress(EventClick)
	case "rotate_cw":
		m.InjectRotate(max(st.Steps, 1))
	case "rotate_ccw":
		m.InjectRotate(-max(st.Steps, 1))
	case "key":
		m.InjectKey(st.Key)
	case "switch":
		name := st.Screen
		m.Post(func(m *Manager) {
			if err := m.SwitchScreen(name); err != nil {
				Logger().Warn("panel: test script switch failed", "step", r.cursor-1, "err", err)
			}
		})
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
