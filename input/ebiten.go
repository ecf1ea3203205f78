package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var mouseButtons = map[Button]ebiten.MouseButton{
	ButtonLeft:   ebiten.MouseButtonLeft,
	ButtonRight:  ebiten.MouseButtonRight,
	ButtonMiddle: ebiten.MouseButtonMiddle,
}

// EbitenSource reads input from the running ebiten game.
type EbitenSource struct {
	touchIDs []ebiten.TouchID
}

func (s *EbitenSource) Poll() Frame {
	var f Frame

	mx, my := ebiten.CursorPosition()
	f.CursorX, f.CursorY = float64(mx), float64(my)

	for b, eb := range mouseButtons {
		f.SetButton(b,
			ebiten.IsMouseButtonPressed(eb),
			inpututil.IsMouseButtonJustPressed(eb),
			inpututil.IsMouseButtonJustReleased(eb))
	}

	_, f.WheelY = ebiten.Wheel()

	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		f.Touches = append(f.Touches, Touch{ID: int(id), X: float64(tx), Y: float64(ty)})
	}
	f.TouchJustPressed = len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
	f.TouchJustReleased = len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	f.Keys = KeyActions{
		ZoomIn:  inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd),
		ZoomOut: inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract),
		Reset:   !ctrl && (inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyKP0)),
		Paste:   ctrl && inpututil.IsKeyJustPressed(ebiten.KeyV),
		Save:    ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS),
	}
	f.Dropped = ebiten.DroppedFiles()
	return f
}
