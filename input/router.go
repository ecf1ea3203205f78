package input

import (
	"math"

	"image-board/canvas"
)

const (
	WheelZoomIntensity = 0.1
	ZoomInFactor       = 1.2
	ZoomOutFactor      = 0.8
)

// Events reports what a frame of input did, so the caller knows when to
// persist or paste.
type Events uint8

const (
	DragEnded Events = 1 << iota
	PanEnded
	Zoomed
	ViewReset
	PasteRequested
	SaveRequested
)

func (e Events) Has(flag Events) bool {
	return e&flag != 0
}

// Changed reports whether the frame altered anything that is persisted.
func (e Events) Changed() bool {
	return e.Has(DragEnded | PanEnded | Zoomed | ViewReset | SaveRequested)
}

// HitTester finds the image under a world point.
type HitTester interface {
	HitTest(wx, wy float64) string
}

// Overlay is screen UI drawn above the canvas that swallows presses.
type Overlay interface {
	IsMouseOver(mx, my int) bool
}

type pointerSource int

const (
	sourceNone pointerSource = iota
	sourceMouse
	sourceTouch
)

// Router turns polled input frames into drag controller and viewport calls.
type Router struct {
	view    *canvas.Viewport
	drag    *DragController
	hits    HitTester
	overlay Overlay

	width, height int

	source  pointerSource
	button  Button
	touchID int
	lastX   float64
	lastY   float64

	pending Events
}

func NewRouter(view *canvas.Viewport, drag *DragController, hits HitTester, overlay Overlay) *Router {
	return &Router{
		view:    view,
		drag:    drag,
		hits:    hits,
		overlay: overlay,
	}
}

// Resize records the screen size used for centred zooms and leave detection.
func (r *Router) Resize(width, height int) {
	r.width = width
	r.height = height
}

func (r *Router) center() (float64, float64) {
	return float64(r.width) / 2, float64(r.height) / 2
}

// ZoomIn zooms by ZoomInFactor around the screen centre.
func (r *Router) ZoomIn() {
	r.zoomAtCenter(ZoomInFactor)
}

// ZoomOut zooms by ZoomOutFactor around the screen centre.
func (r *Router) ZoomOut() {
	r.zoomAtCenter(ZoomOutFactor)
}

func (r *Router) ResetView() {
	r.view.Reset()
	r.pending |= ViewReset
}

func (r *Router) zoomAtCenter(factor float64) {
	cx, cy := r.center()
	if r.view.ZoomAt(factor, cx, cy) {
		r.pending |= Zoomed
	}
}

// Update applies one frame of input and returns what happened, including
// actions triggered since the previous Update.
func (r *Router) Update(f Frame) Events {
	var events Events

	if f.Keys.ZoomIn {
		r.ZoomIn()
	}
	if f.Keys.ZoomOut {
		r.ZoomOut()
	}
	if f.Keys.Reset {
		r.ResetView()
	}
	if f.Keys.Paste {
		events |= PasteRequested
	}
	if f.Keys.Save {
		events |= SaveRequested
	}

	if f.WheelY != 0 && r.inWindow(f.CursorX, f.CursorY) {
		sign := 1.0
		if f.WheelY < 0 {
			sign = -1
		}
		if r.view.ZoomAt(math.Exp(sign*WheelZoomIntensity), f.CursorX, f.CursorY) {
			events |= Zoomed
		}
	}

	switch r.source {
	case sourceNone:
		r.begin(f)
	case sourceMouse:
		events |= r.updateMouse(f)
	case sourceTouch:
		events |= r.updateTouch(f)
	}

	events |= r.pending
	r.pending = 0
	return events
}

func (r *Router) begin(f Frame) {
	if f.TouchJustPressed && len(f.Touches) == 1 {
		t := f.Touches[0]
		p := Pointer{X: t.X, Y: t.Y, Touches: 1}
		if r.pointerDown(p) {
			r.source = sourceTouch
			r.touchID = t.ID
		}
		return
	}

	if !r.inWindow(f.CursorX, f.CursorY) {
		return
	}
	for _, b := range []Button{ButtonLeft, ButtonRight} {
		if !f.JustPressed(b) {
			continue
		}
		p := Pointer{X: f.CursorX, Y: f.CursorY, Button: b}
		if r.pointerDown(p) {
			r.source = sourceMouse
			r.button = b
		}
		return
	}
}

func (r *Router) pointerDown(p Pointer) bool {
	if r.overlay != nil && r.overlay.IsMouseOver(int(p.X), int(p.Y)) {
		return false
	}
	wx, wy := r.view.ScreenToWorld(p.X, p.Y)
	if !r.drag.PointerDown(p, r.hits.HitTest(wx, wy)) {
		return false
	}
	r.lastX, r.lastY = p.X, p.Y
	return true
}

func (r *Router) updateMouse(f Frame) Events {
	if f.JustReleased(r.button) || !f.Pressed(r.button) || !r.inWindow(f.CursorX, f.CursorY) {
		return r.end()
	}
	if f.CursorX != r.lastX || f.CursorY != r.lastY {
		r.drag.PointerMove(Pointer{X: f.CursorX, Y: f.CursorY, Button: r.button})
		r.lastX, r.lastY = f.CursorX, f.CursorY
	}
	return 0
}

func (r *Router) updateTouch(f Frame) Events {
	if f.TouchJustReleased {
		return r.end()
	}
	for _, t := range f.Touches {
		if t.ID != r.touchID {
			continue
		}
		if t.X != r.lastX || t.Y != r.lastY {
			r.drag.PointerMove(Pointer{X: t.X, Y: t.Y, Touches: len(f.Touches)})
			if len(f.Touches) == 1 {
				r.lastX, r.lastY = t.X, t.Y
			}
		}
		return 0
	}
	// The tracked finger vanished without a release event.
	return r.end()
}

func (r *Router) end() Events {
	r.source = sourceNone
	r.button = ButtonNone
	switch r.drag.PointerUp().(type) {
	case DraggingElement:
		return DragEnded
	case PanningCanvas:
		return PanEnded
	}
	return 0
}

func (r *Router) inWindow(x, y float64) bool {
	if r.width == 0 || r.height == 0 {
		return true
	}
	return x >= 0 && y >= 0 && x < float64(r.width) && y < float64(r.height)
}
