package ui

import (
	"image/color"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const statusDuration = 3 * time.Second

// StatusPanel shows a short message in the bottom-right corner, e.g. when a
// paste had no image in it.
type StatusPanel struct {
	Message string
	until   time.Time
	now     func() time.Time
}

func (s *StatusPanel) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

func (s *StatusPanel) Show(msg string) {
	s.Message = msg
	s.until = s.clock().Add(statusDuration)
}

func (s *StatusPanel) Clear() {
	s.Message = ""
}

// Visible reports whether a message is showing, expiring old ones.
func (s *StatusPanel) Visible() bool {
	if s.Message != "" && s.clock().After(s.until) {
		s.Clear()
	}
	return s.Message != ""
}

func (s *StatusPanel) Draw(screen *ebiten.Image, w, h int, face font.Face, drawText TextDrawer) {
	if s == nil || !s.Visible() {
		return
	}
	pw, ph := 300, 36
	x := w - pw - 10
	y := h - ph - 10
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(pw), float32(ph), color.RGBA{40, 40, 40, 220}, false)
	if face != nil && drawText != nil {
		drawText(screen, face, s.Message, x+8, y+8, color.RGBA{255, 200, 50, 255})
	}
}

func formatPercent(p int) string {
	return strconv.Itoa(p) + "%"
}
