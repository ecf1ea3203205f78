package input

import "io/fs"

// Touch is one active touch point in screen space.
type Touch struct {
	ID   int
	X, Y float64
}

// KeyActions are keyboard shortcuts resolved for one frame.
type KeyActions struct {
	ZoomIn  bool
	ZoomOut bool
	Reset   bool
	Paste   bool
	Save    bool
}

// Frame is a snapshot of the input devices taken once per update tick.
type Frame struct {
	CursorX, CursorY float64

	pressed      [4]bool
	justPressed  [4]bool
	justReleased [4]bool

	WheelY float64

	Touches           []Touch
	TouchJustPressed  bool
	TouchJustReleased bool

	Keys KeyActions

	// Dropped holds files dropped onto the window this frame, or nil.
	Dropped fs.FS
}

func (f *Frame) Pressed(b Button) bool      { return f.pressed[b] }
func (f *Frame) JustPressed(b Button) bool  { return f.justPressed[b] }
func (f *Frame) JustReleased(b Button) bool { return f.justReleased[b] }

// SetButton records the state of a mouse button for this frame.
func (f *Frame) SetButton(b Button, pressed, justPressed, justReleased bool) {
	f.pressed[b] = pressed
	f.justPressed[b] = justPressed
	f.justReleased[b] = justReleased
}

// Source produces one Frame per tick.
type Source interface {
	Poll() Frame
}
