package input

import (
	"image-board/board"
	"image-board/canvas"
)

type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

// Pointer is one sample of a mouse cursor or touch point in screen space.
// Touches is the number of fingers down; it is 0 for the mouse.
type Pointer struct {
	X, Y    float64
	Button  Button
	Touches int
}

func (p Pointer) isTouch() bool {
	return p.Touches > 0
}

// Session is the drag state between pointer-down and pointer-up. It is one of
// Idle, DraggingElement or PanningCanvas.
type Session interface {
	session()
}

type Idle struct{}

// DraggingElement moves one image. Start* fields are captured at
// pointer-down: pointer in screen space, element in world space.
type DraggingElement struct {
	TargetID      string
	StartPointerX float64
	StartPointerY float64
	StartElementX float64
	StartElementY float64
}

// PanningCanvas moves the view. Everything is in screen space.
type PanningCanvas struct {
	StartPointerX float64
	StartPointerY float64
	StartOffsetX  float64
	StartOffsetY  float64
}

func (Idle) session()            {}
func (DraggingElement) session() {}
func (PanningCanvas) session()   {}

// Elements is the part of the image store the drag controller writes to.
type Elements interface {
	Get(id string) (board.PlacedImage, bool)
	UpdatePosition(id string, x, y float64) bool
}

// DragController decides whether a press drags an image or pans the canvas
// and applies pointer motion accordingly.
type DragController struct {
	view     *canvas.Viewport
	elements Elements
	session  Session
}

func NewDragController(view *canvas.Viewport, elements Elements) *DragController {
	return &DragController{
		view:     view,
		elements: elements,
		session:  Idle{},
	}
}

func (d *DragController) Session() Session {
	return d.session
}

func (d *DragController) Active() bool {
	_, idle := d.session.(Idle)
	return !idle
}

// PointerDown starts a session. target is the id of the image under the
// pointer, or "" for empty canvas. It reports whether a session started.
func (d *DragController) PointerDown(p Pointer, target string) bool {
	if d.Active() || p.Touches > 1 {
		return false
	}

	if target != "" {
		if !p.isTouch() && p.Button != ButtonLeft {
			return false
		}
		img, ok := d.elements.Get(target)
		if !ok {
			return false
		}
		d.session = DraggingElement{
			TargetID:      target,
			StartPointerX: p.X,
			StartPointerY: p.Y,
			StartElementX: img.X,
			StartElementY: img.Y,
		}
		return true
	}

	if !p.isTouch() && p.Button != ButtonLeft && p.Button != ButtonRight {
		return false
	}
	d.session = PanningCanvas{
		StartPointerX: p.X,
		StartPointerY: p.Y,
		StartOffsetX:  d.view.OffsetX,
		StartOffsetY:  d.view.OffsetY,
	}
	return true
}

// PointerMove applies the pointer position to the active session. Samples
// taken while more than one finger is down are dropped.
func (d *DragController) PointerMove(p Pointer) {
	if p.Touches > 1 {
		return
	}

	switch s := d.session.(type) {
	case DraggingElement:
		// Images live inside the scaled layer, so screen motion shrinks by
		// the scale to stay under the pointer.
		x := s.StartElementX + (p.X-s.StartPointerX)/d.view.Scale
		y := s.StartElementY + (p.Y-s.StartPointerY)/d.view.Scale
		d.elements.UpdatePosition(s.TargetID, x, y)
	case PanningCanvas:
		d.view.Pan(s.StartOffsetX+p.X-s.StartPointerX, s.StartOffsetY+p.Y-s.StartPointerY)
	}
}

// PointerUp ends any session and returns the one that ended.
func (d *DragController) PointerUp() Session {
	ended := d.session
	d.session = Idle{}
	return ended
}
