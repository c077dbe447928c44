package arbor

import (
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// Resources is the context a description is built against. It replaces any
// process-wide bitmap or behavior registry: create one at startup and pass
// it to Build.
type Resources struct {
	Bitmaps   map[string]Bitmap
	Behaviors map[string]func() any
}

// NewResources creates empty resources.
func NewResources() *Resources {
	return &Resources{Bitmaps: map[string]Bitmap{}, Behaviors: map[string]func() any{}}
}

// RegisterBitmap makes b available to descriptions under name.
func (r *Resources) RegisterBitmap(name string, b Bitmap) { r.Bitmaps[name] = b }

// RegisterBehavior makes a behavior factory available under name. The
// factory runs once per described view.
func (r *Resources) RegisterBehavior(name string, factory func() any) {
	r.Behaviors[name] = factory
}

// Description is a declarative view tree, usually decoded from YAML:
//
//	views:
//	  - name: toolbar
//	    type: container
//	    rect: [0, 0, 800, 40]
//	    background: "#202020"
//	    autosize: [left, right, column]
//	    children:
//	      - name: play
//	        rect: [4, 4, 32, 32]
//	        behavior: button
//	        wants_focus: true
type Description struct {
	Views []ViewDescription `yaml:"views"`
}

// ViewDescription describes one view and its children.
type ViewDescription struct {
	Name         string                `yaml:"name"`
	Type         string                `yaml:"type"`
	Rect         []float64             `yaml:"rect"`
	Background   string                `yaml:"background,omitempty"`
	Style        string                `yaml:"style,omitempty"`
	Bitmap       string                `yaml:"bitmap,omitempty"`
	Behavior     string                `yaml:"behavior,omitempty"`
	Autosize     []string              `yaml:"autosize,omitempty"`
	Cursor       string                `yaml:"cursor,omitempty"`
	Transparent  bool                  `yaml:"transparent,omitempty"`
	WantsFocus   bool                  `yaml:"wants_focus,omitempty"`
	MouseEnabled *bool                 `yaml:"mouse_enabled,omitempty"`
	Visible      *bool                 `yaml:"visible,omitempty"`
	Alpha        *float64              `yaml:"alpha,omitempty"`
	Transform    *TransformDescription `yaml:"transform,omitempty"`
	Children     []ViewDescription     `yaml:"children,omitempty"`
}

// TransformDescription is a container transform as translate, scale and
// rotation (degrees).
type TransformDescription struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	ScaleX float64 `yaml:"scale_x"`
	ScaleY float64 `yaml:"scale_y"`
	Rotate float64 `yaml:"rotate"`
}

// ParseDescription decodes a YAML view tree.
func ParseDescription(data []byte) (*Description, error) {
	var d Description
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse description: %w", err)
	}
	return &d, nil
}

// Marshal encodes d back to YAML.
func (d *Description) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshal description: %w", err)
	}
	return out, nil
}

// Build creates the described top-level views with their subtrees. The views
// are not yet parented.
func (d *Description) Build(res *Resources) ([]*View, error) {
	if res == nil {
		res = NewResources()
	}
	views := make([]*View, 0, len(d.Views))
	for i := range d.Views {
		v, err := d.Views[i].build(res)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// LoadDescription builds data against res and adds the top-level views to
// the root container.
func (f *Frame) LoadDescription(data []byte, res *Resources) ([]*View, error) {
	d, err := ParseDescription(data)
	if err != nil {
		return nil, err
	}
	views, err := d.Build(res)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		f.root.AddChild(v)
	}
	return views, nil
}

func (vd *ViewDescription) build(res *Resources) (*View, error) {
	if len(vd.Rect) != 4 {
		return nil, fmt.Errorf("view %q: rect needs 4 numbers, got %d", vd.Name, len(vd.Rect))
	}
	r := Rect{X: vd.Rect[0], Y: vd.Rect[1], Width: vd.Rect[2], Height: vd.Rect[3]}

	var v *View
	switch strings.ToLower(vd.Type) {
	case "", "view":
		if len(vd.Children) > 0 {
			return nil, fmt.Errorf("view %q: only containers may have children", vd.Name)
		}
		v = NewView(vd.Name, r)
	case "container":
		v = NewContainer(vd.Name, r)
	default:
		return nil, fmt.Errorf("view %q: unknown type %q", vd.Name, vd.Type)
	}

	if vd.Background != "" {
		c, err := ParseColor(vd.Background)
		if err != nil {
			return nil, fmt.Errorf("view %q: %w", vd.Name, err)
		}
		v.background = c
	}
	switch strings.ToLower(vd.Style) {
	case "", "filled":
		v.bgStyle = DrawFilled
	case "stroked":
		v.bgStyle = DrawStroked
	case "filled_stroked":
		v.bgStyle = DrawFilledAndStroked
	default:
		return nil, fmt.Errorf("view %q: unknown style %q", vd.Name, vd.Style)
	}
	if vd.Bitmap != "" {
		b, ok := res.Bitmaps[vd.Bitmap]
		if !ok {
			return nil, fmt.Errorf("view %q: bitmap %q: %w", vd.Name, vd.Bitmap, ErrUnknownBitmap)
		}
		v.bitmap = b
	}
	if vd.Behavior != "" {
		factory, ok := res.Behaviors[vd.Behavior]
		if !ok {
			return nil, fmt.Errorf("view %q: behavior %q: %w", vd.Name, vd.Behavior, ErrUnknownBehavior)
		}
		v.Behavior = factory()
	}
	flags, err := parseAutosize(vd.Autosize)
	if err != nil {
		return nil, fmt.Errorf("view %q: %w", vd.Name, err)
	}
	v.autosize = flags
	if vd.Cursor != "" {
		c, ok := cursorNames[strings.ToLower(vd.Cursor)]
		if !ok {
			return nil, fmt.Errorf("view %q: unknown cursor %q", vd.Name, vd.Cursor)
		}
		v.Cursor = c
	}
	v.transparent = vd.Transparent
	v.wantsFocus = vd.WantsFocus
	if vd.MouseEnabled != nil {
		v.mouseEnabled = *vd.MouseEnabled
	}
	if vd.Visible != nil {
		v.visible = *vd.Visible
	}
	if vd.Alpha != nil {
		v.alpha = *vd.Alpha
	}
	if vd.Transform != nil {
		if !v.IsContainer() {
			return nil, fmt.Errorf("view %q: only containers take a transform", vd.Name)
		}
		t := vd.Transform
		sx, sy := t.ScaleX, t.ScaleY
		if sx == 0 {
			sx = 1
		}
		if sy == 0 {
			sy = 1
		}
		v.transform = Translation(t.X, t.Y).Multiply(Scaling(sx, sy)).Multiply(Rotation(t.Rotate * degToRad))
	}
	for i := range vd.Children {
		c, err := vd.Children[i].build(res)
		if err != nil {
			return nil, err
		}
		v.AddChild(c)
	}
	return v, nil
}

const degToRad = math.Pi / 180

var autosizeNames = map[string]AutosizeFlags{
	"left":   AutosizeLeft,
	"top":    AutosizeTop,
	"right":  AutosizeRight,
	"bottom": AutosizeBottom,
	"column": AutosizeColumn,
	"row":    AutosizeRow,
	"all":    AutosizeAll,
}

func parseAutosize(names []string) (AutosizeFlags, error) {
	var flags AutosizeFlags
	for _, n := range names {
		f, ok := autosizeNames[strings.ToLower(strings.TrimSpace(n))]
		if !ok {
			return 0, fmt.Errorf("unknown autosize flag %q", n)
		}
		flags |= f
	}
	return flags, nil
}

var cursorNames = map[string]Cursor{
	"default":     CursorDefault,
	"pointer":     CursorPointer,
	"text":        CursorText,
	"crosshair":   CursorCrosshair,
	"ew-resize":   CursorEWResize,
	"ns-resize":   CursorNSResize,
	"not-allowed": CursorNotAllowed,
	"move":        CursorMove,
}
