// Package ui draws the screen-space controls above the canvas.
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

const (
	buttonSize   = 30
	readoutWidth = 60
	resetWidth   = 60
	margin       = 10
	gap          = 6
)

var (
	colorButton  = color.RGBA{60, 60, 70, 200}
	colorReadout = color.RGBA{40, 40, 48, 200}
)

// Actions are the toolbar callbacks.
type Actions struct {
	ZoomIn    func()
	ZoomOut   func()
	ResetView func()
	// ZoomPercent feeds the readout.
	ZoomPercent func() int
}

// Toolbar holds the zoom controls in the top-right corner.
type Toolbar struct {
	actions  Actions
	zoomOut  *Button
	readout  *Button
	zoomIn   *Button
	reset    *Button
	getFace  func() font.Face
	drawText TextDrawer
	Status   *StatusPanel
}

func NewToolbar(actions Actions, getFace func() font.Face, drawText TextDrawer) *Toolbar {
	t := &Toolbar{
		actions:  actions,
		zoomOut:  &Button{Label: "-", W: buttonSize, H: buttonSize, OnClick: actions.ZoomOut},
		readout:  &Button{W: readoutWidth, H: buttonSize},
		zoomIn:   &Button{Label: "+", W: buttonSize, H: buttonSize, OnClick: actions.ZoomIn},
		reset:    &Button{Label: "Reset", W: resetWidth, H: buttonSize, OnClick: actions.ResetView},
		getFace:  getFace,
		drawText: drawText,
		Status:   &StatusPanel{},
	}
	t.Layout(0)
	return t
}

func (t *Toolbar) buttons() []*Button {
	return []*Button{t.zoomOut, t.readout, t.zoomIn, t.reset}
}

// Layout right-aligns the controls for a screen of the given width.
func (t *Toolbar) Layout(screenWidth int) {
	x := float32(screenWidth - margin)
	bs := t.buttons()
	for i := len(bs) - 1; i >= 0; i-- {
		x -= bs[i].W
		bs[i].X = x
		bs[i].Y = margin
		x -= gap
	}
}

func (t *Toolbar) IsMouseOver(mx, my int) bool {
	for _, b := range t.buttons() {
		if b.IsMouseOver(mx, my) {
			return true
		}
	}
	return false
}

// Click runs the action under (mx, my) and reports whether the click landed
// on the toolbar.
func (t *Toolbar) Click(mx, my int) bool {
	for _, b := range t.buttons() {
		if b.IsMouseOver(mx, my) {
			if b.OnClick != nil {
				b.OnClick()
			}
			return true
		}
	}
	return false
}

// ReadoutText is the zoom level label, e.g. "150%".
func (t *Toolbar) ReadoutText() string {
	if t.actions.ZoomPercent == nil {
		return ""
	}
	return formatPercent(t.actions.ZoomPercent())
}

func (t *Toolbar) Draw(screen *ebiten.Image) {
	var face font.Face
	if t.getFace != nil {
		face = t.getFace()
	}

	t.readout.Label = t.ReadoutText()
	for _, b := range t.buttons() {
		bg := colorButton
		if b == t.readout {
			bg = colorReadout
		}
		b.Draw(screen, face, t.drawText, bg)
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	t.Status.Draw(screen, w, h, face, t.drawText)
}
