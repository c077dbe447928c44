package arbor

import "testing"

// focusTree builds root{a, panel{b, c}, d} with every leaf focusable.
func focusTree(t *testing.T) (f *Frame, log *eventLog, a, panel, b, c, d *View) {
	t.Helper()
	f, _ = openFrame(t, 400, 400)
	log = &eventLog{}
	a = NewView("a", Rect{Width: 50, Height: 50})
	panel = NewContainer("panel", Rect{X: 100, Width: 200, Height: 200})
	b = NewView("b", Rect{Width: 50, Height: 50})
	c = NewView("c", Rect{X: 100, Width: 50, Height: 50})
	d = NewView("d", Rect{X: 300, Width: 50, Height: 50})
	for _, v := range []*View{a, b, c, d} {
		v.SetWantsFocus(true)
		v.Behavior = &recorder{log: log}
	}
	panel.AddChild(b)
	panel.AddChild(c)
	f.Root().AddChild(a)
	f.Root().AddChild(panel)
	f.Root().AddChild(d)
	log.reset()
	return
}

func TestAdvanceFocusForward(t *testing.T) {
	f, _, a, _, b, c, d := focusTree(t)

	for _, want := range []*View{a, b, c, d} {
		if !f.AdvanceFocus(nil, false) {
			t.Fatalf("AdvanceFocus returned false before %s", want.Name)
		}
		if f.FocusView() != want {
			t.Fatalf("FocusView = %s, want %s", viewName(f.FocusView()), want.Name)
		}
	}
	if f.AdvanceFocus(nil, false) {
		t.Error("AdvanceFocus past the last view returned true")
	}
	if f.FocusView() != nil {
		t.Errorf("FocusView after exhaustion = %s, want nil", f.FocusView().Name)
	}
}

func TestAdvanceFocusReverse(t *testing.T) {
	f, _, a, _, b, c, d := focusTree(t)
	f.SetFocusView(d)

	for _, want := range []*View{c, b, a} {
		if !f.AdvanceFocus(nil, true) {
			t.Fatalf("reverse AdvanceFocus returned false before %s", want.Name)
		}
		if f.FocusView() != want {
			t.Fatalf("FocusView = %s, want %s", viewName(f.FocusView()), want.Name)
		}
	}
	if f.AdvanceFocus(nil, true) {
		t.Error("reverse AdvanceFocus past the first view returned true")
	}
}

func TestAdvanceFocusSkipsUnfocusable(t *testing.T) {
	f, _, a, _, b, c, d := focusTree(t)
	b.SetVisible(false)
	c.SetMouseEnabled(false)

	f.SetFocusView(a)
	f.AdvanceFocus(nil, false)
	if f.FocusView() != d {
		t.Errorf("FocusView = %s, want d", viewName(f.FocusView()))
	}
}

func TestSetFocusViewOrder(t *testing.T) {
	f, log, a, panel, b, _, _ := focusTree(t)
	var observed [][2]*View
	f.RegisterFocusObserver(func(_ *Frame, old, cur *View) {
		observed = append(observed, [2]*View{old, cur})
	})
	var descendant []bool
	panel.OnDescendantFocus(func(_, _ *View, gained bool) { descendant = append(descendant, gained) })

	f.SetFocusView(a)
	f.SetFocusView(b)
	f.SetFocusView(a)

	assertLog(t, log, "take(a)", "lose(a)", "take(b)", "lose(b)", "take(a)")
	if len(observed) != 3 || observed[1] != [2]*View{a, b} {
		t.Errorf("observer calls = %v", observed)
	}
	if len(descendant) != 2 || !descendant[0] || descendant[1] {
		t.Errorf("descendant focus = %v, want [true false]", descendant)
	}
}

func TestSetFocusViewRejectsIneligible(t *testing.T) {
	f, _, a, _, _, _, _ := focusTree(t)
	f.SetFocusView(a)

	f.SetFocusView(NewView("detached", Rect{}))
	if f.FocusView() != nil {
		t.Errorf("focus on detached view = %s, want nil", viewName(f.FocusView()))
	}
}

func TestSetFocusViewRecursionGuard(t *testing.T) {
	f, _, a, _, b, _, _ := focusTree(t)
	a.Behavior = &Callbacks{TakeFocusFunc: func(*View) { f.SetFocusView(b) }}

	f.SetFocusView(a)
	if f.FocusView() != a {
		t.Errorf("FocusView = %s, want a", viewName(f.FocusView()))
	}
}

func TestHiddenFocusViewLosesFocus(t *testing.T) {
	f, log, a, _, _, _, _ := focusTree(t)
	f.SetFocusView(a)
	a.SetVisible(false)
	assertLog(t, log, "take(a)", "lose(a)")
	if f.FocusView() != nil {
		t.Error("hidden view kept focus")
	}
}

func TestActivateRestoresFocus(t *testing.T) {
	f, log, a, _, b, _, _ := focusTree(t)
	f.SetFocusView(a)

	f.Activate(false)
	if f.IsActive() || f.FocusView() != nil {
		t.Fatal("deactivation kept focus")
	}
	f.SetFocusView(b)
	if f.FocusView() != nil {
		t.Error("inactive frame applied focus immediately")
	}

	f.Activate(true)
	if f.FocusView() != b {
		t.Errorf("FocusView after activate = %s, want b", viewName(f.FocusView()))
	}
	assertLog(t, log, "take(a)", "lose(a)", "take(b)")
}

func TestActivateWithoutMemoryFocusesFirst(t *testing.T) {
	f, _, a, _, _, _, _ := focusTree(t)
	f.Activate(false)
	f.Activate(true)
	if f.FocusView() != a {
		t.Errorf("FocusView = %s, want a", viewName(f.FocusView()))
	}
}

func TestModalConfinesFocus(t *testing.T) {
	f, _, a, _, _, _, _ := focusTree(t)
	f.SetFocusView(a)

	m := NewContainer("modal", Rect{X: 50, Y: 250, Width: 200, Height: 100})
	m1 := NewView("m1", Rect{Width: 50, Height: 50})
	m2 := NewView("m2", Rect{X: 60, Width: 50, Height: 50})
	m1.SetWantsFocus(true)
	m2.SetWantsFocus(true)
	m.AddChild(m1)
	m.AddChild(m2)

	id, _ := f.BeginModalSession(m)
	if f.FocusView() != m1 {
		t.Fatalf("FocusView = %s, want m1", viewName(f.FocusView()))
	}
	f.SetFocusView(a)
	if f.FocusView() != m1 {
		t.Error("focus escaped the modal view")
	}
	f.AdvanceFocus(nil, false)
	if f.FocusView() != m2 {
		t.Errorf("FocusView = %s, want m2", viewName(f.FocusView()))
	}
	if f.AdvanceFocus(nil, false) {
		t.Error("AdvanceFocus left the modal view")
	}

	f.EndModalSession(id)
	f.SetFocusView(a)
	if f.FocusView() != a {
		t.Error("focus still confined after modal ended")
	}
}

func TestRemovingFocusedSubtreeClearsFocus(t *testing.T) {
	f, log, _, panel, b, _, _ := focusTree(t)
	f.SetFocusView(b)
	f.Root().RemoveChild(panel, false)
	assertLog(t, log, "take(b)", "lose(b)", "removed(b)", "removed(c)")
	if f.FocusView() != nil {
		t.Error("focus kept inside removed subtree")
	}
}
