package host

import (
	"errors"
	"fmt"
	"strings"

	"github.com/phanxgames/arbor"
	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	View   string  `yaml:"view,omitempty"`
	Key    string  `yaml:"key,omitempty"`
	Text   string  `yaml:"text,omitempty"`
	Shift  bool    `yaml:"shift,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"from_x,omitempty"`
	FromY  float64 `yaml:"from_y,omitempty"`
	ToX    float64 `yaml:"to_x,omitempty"`
	ToY    float64 `yaml:"to_y,omitempty"`
	Delta  float64 `yaml:"delta,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// script is the top-level document of a script file.
type script struct {
	Steps []scriptStep `yaml:"steps"`
}

var scriptKeys = map[string]arbor.VirtualKey{
	"back":     arbor.VKeyBack,
	"tab":      arbor.VKeyTab,
	"return":   arbor.VKeyReturn,
	"enter":    arbor.VKeyEnter,
	"escape":   arbor.VKeyEscape,
	"space":    arbor.VKeySpace,
	"end":      arbor.VKeyEnd,
	"home":     arbor.VKeyHome,
	"left":     arbor.VKeyLeft,
	"up":       arbor.VKeyUp,
	"right":    arbor.VKeyRight,
	"down":     arbor.VKeyDown,
	"pageup":   arbor.VKeyPageUp,
	"pagedown": arbor.VKeyPageDown,
	"insert":   arbor.VKeyInsert,
	"delete":   arbor.VKeyDelete,
}

// ScriptRunner sequences injected input, expectations and screenshots
// across frames for automated UI testing. Attach it with SetScript.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	failures  []error
}

// LoadScript parses a YAML script:
//
//	steps:
//	  - action: click
//	    x: 20
//	    y: 12
//	  - action: key
//	    key: tab
//	  - action: expect_focus
//	    view: name
//	  - action: screenshot
//	    label: after-tab
func LoadScript(data []byte) (*ScriptRunner, error) {
	var s script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, errors.New("parse script: no steps")
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i+1, err)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

func (st scriptStep) validate() error {
	switch st.Action {
	case "click", "press", "release", "move", "hover", "drag", "wait", "screenshot":
	case "type":
		if st.Text == "" {
			return errors.New("type needs text")
		}
	case "wheel":
		if st.Delta == 0 {
			return errors.New("wheel needs delta")
		}
	case "key":
		if _, ok := scriptKeys[strings.ToLower(st.Key)]; !ok {
			return fmt.Errorf("unknown key %q", st.Key)
		}
	case "expect_focus", "expect_hover":
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// SetScript attaches a runner. It advances once per Update, before input
// is polled.
func (h *Host) SetScript(r *ScriptRunner) { h.runner = r }

// Done reports whether every step has run.
func (r *ScriptRunner) Done() bool { return r.done }

// Err returns the failed expectations, joined, or nil.
func (r *ScriptRunner) Err() error { return errors.Join(r.failures...) }

// step advances the runner by one frame.
func (r *ScriptRunner) step(h *Host) {
	if r.done {
		return
	}
	// Pending injections drain before the script advances.
	if len(h.injectQueue) > 0 {
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
		h.Screenshot(st.Label)
	case "click":
		h.InjectClick(st.X, st.Y)
	case "press":
		h.InjectPress(st.X, st.Y)
	case "release":
		h.InjectRelease(st.X, st.Y)
	case "move":
		h.InjectMove(st.X, st.Y)
	case "hover":
		h.InjectHover(st.X, st.Y)
	case "drag":
		h.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "type":
		h.InjectText(st.Text)
	case "wheel":
		h.InjectWheel(st.X, st.Y, st.Delta)
	case "key":
		e := arbor.KeyEvent{Virtual: scriptKeys[strings.ToLower(st.Key)]}
		if st.Shift {
			e.Modifiers = arbor.ModShift
		}
		h.InjectKey(e)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1
		}
	case "expect_focus":
		r.expect(st, "focus", h.frame.FocusView())
	case "expect_hover":
		var top *arbor.View
		if chain := h.frame.HoverChain(); len(chain) > 0 {
			top = chain[len(chain)-1]
		}
		r.expect(st, "hover", top)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(h.injectQueue) == 0 {
		r.done = true
	}
}

func (r *ScriptRunner) expect(st scriptStep, what string, got *arbor.View) {
	name := ""
	if got != nil {
		name = got.Name
	}
	if name != st.View {
		r.failures = append(r.failures, fmt.Errorf("step %d: %s is %q, want %q", r.cursor, what, name, st.View))
	}
}
