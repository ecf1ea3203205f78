package canvas

import "math"

const (
	MinScale = 0.1
	MaxScale = 10.0
)

// Viewport maps world coordinates onto the screen of the infinite canvas.
// Offsets are in screen pixels; Scale is screen pixels per world unit.
type Viewport struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// DefaultViewport returns the identity view.
func DefaultViewport() Viewport {
	return Viewport{Scale: 1}
}

// Valid reports whether the scale is finite and within [MinScale, MaxScale].
func (v *Viewport) Valid() bool {
	return validScale(v.Scale) && !math.IsNaN(v.OffsetX) && !math.IsNaN(v.OffsetY) &&
		!math.IsInf(v.OffsetX, 0) && !math.IsInf(v.OffsetY, 0)
}

func (v *Viewport) WorldToScreen(wx, wy float64) (float64, float64) {
	sx := wx*v.Scale + v.OffsetX
	sy := wy*v.Scale + v.OffsetY
	return sx, sy
}

func (v *Viewport) ScreenToWorld(sx, sy float64) (float64, float64) {
	wx := (sx - v.OffsetX) / v.Scale
	wy := (sy - v.OffsetY) / v.Scale
	return wx, wy
}

// ZoomAt multiplies the scale by factor while keeping the world point under
// (px, py) fixed on screen. A zoom that would leave [MinScale, MaxScale] is
// ignored. It returns whether the view changed.
func (v *Viewport) ZoomAt(factor, px, py float64) bool {
	newScale := v.Scale * factor
	if !validScale(newScale) || newScale == v.Scale {
		return false
	}

	wx, wy := v.ScreenToWorld(px, py)
	v.Scale = newScale
	v.OffsetX = px - wx*newScale
	v.OffsetY = py - wy*newScale
	return true
}

// Pan sets the offsets to absolute screen values.
func (v *Viewport) Pan(x, y float64) {
	v.OffsetX = x
	v.OffsetY = y
}

func (v *Viewport) Reset() {
	*v = DefaultViewport()
}

// ZoomPercent is the scale as a rounded percentage, e.g. 150 for 1.5.
func (v *Viewport) ZoomPercent() int {
	return int(math.Round(v.Scale * 100))
}

func validScale(s float64) bool {
	return !math.IsNaN(s) && s >= MinScale && s <= MaxScale
}
