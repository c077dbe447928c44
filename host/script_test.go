package host

import (
	"strings"
	"testing"
)

const focusScript = `
steps:
  - action: click
    x: 10
    y: 10
  - action: expect_focus
    view: a
  - action: key
    key: tab
  - action: expect_focus
    view: b
  - action: key
    key: Tab
    shift: true
  - action: expect_focus
    view: a
  - action: hover
    x: 120
    y: 10
  - action: expect_hover
    view: b
  - action: wait
    frames: 3
  - action: screenshot
    label: done
`

func runScript(t *testing.T, th *testHost, src string, maxFrames int) *ScriptRunner {
	t.Helper()
	r, err := LoadScript([]byte(src))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	th.SetScript(r)
	for i := 0; i < maxFrames && !r.Done(); i++ {
		th.frames(1)
	}
	if !r.Done() {
		t.Fatalf("script not done after %d frames", maxFrames)
	}
	return r
}

func TestScriptRunsToCompletion(t *testing.T) {
	th := newTestHost(t)
	r := runScript(t, th, focusScript, 50)
	if err := r.Err(); err != nil {
		t.Errorf("script failures: %v", err)
	}
	if len(th.screenshotQueue) != 1 || th.screenshotQueue[0] != "done" {
		t.Errorf("screenshot queue = %v, want [done]", th.screenshotQueue)
	}
}

func TestScriptReportsFailedExpectations(t *testing.T) {
	th := newTestHost(t)
	r := runScript(t, th, `
steps:
  - action: expect_focus
    view: b
  - action: click
    x: 110
    y: 10
  - action: expect_focus
    view: a
`, 20)
	err := r.Err()
	if err == nil {
		t.Fatal("expected failures")
	}
	msg := err.Error()
	if !strings.Contains(msg, `step 1: focus is "", want "b"`) || !strings.Contains(msg, `step 3: focus is "b", want "a"`) {
		t.Errorf("failures = %q", msg)
	}
}

func TestScriptWaitHoldsFrames(t *testing.T) {
	th := newTestHost(t)
	r, err := LoadScript([]byte("steps:\n  - action: wait\n    frames: 4\n"))
	if err != nil {
		t.Fatal(err)
	}
	th.SetScript(r)
	th.frames(3)
	if r.Done() {
		t.Error("done before the wait elapsed")
	}
	th.frames(2)
	if !r.Done() {
		t.Error("not done after the wait")
	}
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name, src, want string
	}{
		{"invalid yaml", "steps: [", "parse script"},
		{"no steps", "steps: []", "no steps"},
		{"unknown action", "steps: [{action: dance}]", `unknown action "dance"`},
		{"unknown key", "steps: [{action: key, key: hyper}]", `unknown key "hyper"`},
		{"empty text", "steps: [{action: type}]", "type needs text"},
		{"wheel without delta", "steps: [{action: wheel, x: 1, y: 1}]", "wheel needs delta"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.src))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("LoadScript error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}
