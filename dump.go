package arbor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

var (
	dumpContainerStyle = lipgloss.NewStyle().Bold(true)
	dumpHiddenStyle    = lipgloss.NewStyle().Faint(true)
	dumpStateStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// DumpHierarchy renders v's subtree as an indented tree, one line per view
// with its rect and flags. Frame state (focus, capture, hover) is marked when
// v is attached.
func DumpHierarchy(v *View) string {
	return dumpNode(v).String()
}

// DumpHierarchy renders the frame's whole tree.
func (f *Frame) DumpHierarchy() string {
	return DumpHierarchy(f.root)
}

func dumpNode(v *View) *tree.Tree {
	t := tree.Root(dumpLabel(v))
	for _, c := range v.children {
		if c.IsContainer() {
			t.Child(dumpNode(c))
		} else {
			t.Child(dumpLabel(c))
		}
	}
	return t
}

func dumpLabel(v *View) string {
	r := v.rect
	label := fmt.Sprintf("%s #%d (%g,%g %gx%g)", v.Name, v.ID, r.X, r.Y, r.Width, r.Height)
	if v.IsContainer() {
		label = dumpContainerStyle.Render(label)
	}
	var flags []string
	if !v.visible {
		flags = append(flags, "hidden")
	}
	if !v.mouseEnabled {
		flags = append(flags, "disabled")
	}
	if v.transparent {
		flags = append(flags, "transparent")
	}
	if v.wantsFocus {
		flags = append(flags, "focusable")
	}
	if v.dirty.Load() {
		flags = append(flags, "dirty")
	}
	if f := v.frame; f != nil {
		if f.focusView == v {
			flags = append(flags, dumpStateStyle.Render("focus"))
		}
		if f.captured == v {
			flags = append(flags, dumpStateStyle.Render("captured"))
		}
		for _, h := range f.hover {
			if h == v {
				flags = append(flags, dumpStateStyle.Render("hover"))
				break
			}
		}
		if f.ModalView() == v {
			flags = append(flags, dumpStateStyle.Render("modal"))
		}
	}
	if len(flags) > 0 {
		label += " [" + strings.Join(flags, " ") + "]"
	}
	if !v.visible {
		label = dumpHiddenStyle.Render(label)
	}
	return label
}
