package canvas

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// minGridSpacing is the closest two grid lines may be drawn, in screen pixels.
const minGridSpacing = 8.0

// DrawGrid renders the infinite background grid for the given view. Lines every
// gridSizeLarge world units use majorColor, the rest minorColor.
func DrawGrid(v *Viewport, screen *ebiten.Image, screenWidth, screenHeight int, gridSizeSmall, gridSizeLarge float64, minorColor, majorColor, originCross color.Color) {
	left, top := v.ScreenToWorld(0, 0)
	right, bottom := v.ScreenToWorld(float64(screenWidth), float64(screenHeight))

	step := gridSizeSmall
	for step*v.Scale < minGridSpacing {
		step *= 2
	}

	startWx := math.Floor(left/step) * step
	startWy := math.Floor(top/step) * step

	// Vertical lines
	for wx := startWx; wx <= right; wx += step {
		sx, _ := v.WorldToScreen(wx, 0)
		vector.StrokeLine(screen, float32(sx), 0, float32(sx), float32(screenHeight), 1, gridLineColor(wx, gridSizeLarge, minorColor, majorColor), false)
	}

	// Horizontal lines
	for wy := startWy; wy <= bottom; wy += step {
		_, sy := v.WorldToScreen(0, wy)
		vector.StrokeLine(screen, 0, float32(sy), float32(screenWidth), float32(sy), 1, gridLineColor(wy, gridSizeLarge, minorColor, majorColor), false)
	}

	originX, originY := v.WorldToScreen(0, 0)
	vector.StrokeLine(screen, float32(originX-15), float32(originY), float32(originX+15), float32(originY), 2, originCross, false)
	vector.StrokeLine(screen, float32(originX), float32(originY-15), float32(originX), float32(originY+15), 2, originCross, false)
}

func gridLineColor(w, major float64, minorColor, majorColor color.Color) color.Color {
	if math.Mod(math.Abs(w), major) == 0 {
		return majorColor
	}
	return minorColor
}
