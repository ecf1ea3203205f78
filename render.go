package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"image-board/board"
	"image-board/canvas"
	"image-board/input"
)

const helpText = "Ctrl+V paste or drop image files\n" +
	"Drag images with the left button\n" +
	"Pan with left/right drag on empty space\n" +
	"Wheel or +/- to zoom, 0 to reset"

// renderer turns image sources into GPU textures, once per image id.
type renderer struct {
	textures map[string]*ebiten.Image
	broken   map[string]bool
}

func newRenderer() *renderer {
	return &renderer{
		textures: make(map[string]*ebiten.Image),
		broken:   make(map[string]bool),
	}
}

func (r *renderer) texture(img board.PlacedImage) *ebiten.Image {
	if tex, ok := r.textures[img.ID]; ok {
		return tex
	}
	if r.broken[img.ID] {
		return nil
	}
	decoded, err := board.DecodeImage(img.Src)
	if err != nil {
		log.Printf("decode image %s: %v", img.ID, err)
		r.broken[img.ID] = true
		return nil
	}
	tex := ebiten.NewImageFromImage(decoded)
	r.textures[img.ID] = tex
	return tex
}

func (r *renderer) dispose() {
	for id, tex := range r.textures {
		tex.Deallocate()
		delete(r.textures, id)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)
	canvas.DrawGrid(&g.view, screen, g.screenWidth, g.screenHeight, GridSizeSmall, GridSizeLarge, ColorGridMinor, ColorGridMajor, ColorOriginCross)

	activeID := ""
	if s, ok := g.drag.Session().(input.DraggingElement); ok {
		activeID = s.TargetID
	}
	hoverID := ""
	if activeID == "" {
		wx, wy := g.view.ScreenToWorld(g.cursorX, g.cursorY)
		hoverID = g.store.HitTest(wx, wy)
	}

	for _, img := range g.store.All() {
		g.drawImage(screen, img, img.ID == hoverID, img.ID == activeID)
	}

	if g.store.Len() == 0 {
		DrawTextLines(screen, g.face, helpText, 10, 10, ColorHelpText)
	}
	g.toolbar.Draw(screen)
}

func (g *Game) drawImage(screen *ebiten.Image, img board.PlacedImage, hovered, active bool) {
	scale := g.view.Scale
	sx, sy := g.view.WorldToScreen(img.X, img.Y)
	sw, sh := img.W*scale, img.H*scale

	// Skip anything fully off screen.
	if sx > float64(g.screenWidth) || sy > float64(g.screenHeight) || sx+sw < 0 || sy+sh < 0 {
		return
	}

	vector.DrawFilledRect(screen, float32(sx+ShadowOffset*scale), float32(sy+ShadowOffset*scale), float32(sw), float32(sh), ColorShadow, false)

	if tex := g.renderer.texture(img); tex != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(sx, sy)
		if scale < 1 {
			op.Filter = ebiten.FilterLinear
		}
		screen.DrawImage(tex, op)
	} else {
		vector.DrawFilledRect(screen, float32(sx), float32(sy), float32(sw), float32(sh), ColorPlaceholder, false)
	}

	if active || hovered {
		clr := ColorImageHover
		if active {
			clr = ColorImageActive
		}
		vector.StrokeRect(screen, float32(sx)-BorderThickness, float32(sy)-BorderThickness,
			float32(sw)+2*BorderThickness, float32(sh)+2*BorderThickness, BorderThickness, clr, false)
	}
}
