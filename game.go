package main

import (
	"log"

	"golang.org/x/image/font"

	"image-board/board"
	"image-board/canvas"
	"image-board/clip"
	"image-board/input"
	"image-board/storage"
	"image-board/ui"
)

// Game owns the whole board: view, images, drag state and persistence. It
// implements ebiten.Game.
type Game struct {
	view  canvas.Viewport
	store *board.Store

	drag    *input.DragController
	router  *input.Router
	source  input.Source
	toolbar *ui.Toolbar

	persist   *storage.Adapter
	autosave  *storage.Schedule
	clipboard clip.Reader

	renderer *renderer
	face     font.Face

	screenWidth  int
	screenHeight int
	resized      bool
	cursorX      float64
	cursorY      float64
}

// NewGame restores the saved board from st, falling back to an empty one.
func NewGame(settings Settings, st storage.Store, cb clip.Reader, src input.Source) *Game {
	g := &Game{
		store:     board.NewStore(),
		source:    src,
		persist:   storage.NewAdapter(st, settings.StateKey),
		autosave:  storage.NewSchedule(settings.AutosaveInterval),
		clipboard: cb,
		renderer:  newRenderer(),
	}

	g.drag = input.NewDragController(&g.view, g.store)
	g.toolbar = ui.NewToolbar(ui.Actions{
		ZoomIn:      func() { g.router.ZoomIn() },
		ZoomOut:     func() { g.router.ZoomOut() },
		ResetView:   func() { g.router.ResetView() },
		ZoomPercent: g.view.ZoomPercent,
	}, g.uiFace, DrawTextLines)
	g.router = input.NewRouter(&g.view, g.drag, g.store, g.toolbar)

	g.restore(g.persist.LoadOrDefault())
	return g
}

func (g *Game) restore(state storage.State) {
	g.view = state.Viewport
	for _, img := range state.Images {
		w, h, err := board.ImageSize(img.Src)
		if err != nil {
			log.Printf("restore image %s: %v", img.ID, err)
		}
		img.W, img.H = float64(w), float64(h)
		g.store.Append(img)
	}
	log.Printf("restored %d images at %d%% zoom", g.store.Len(), g.view.ZoomPercent())
}

func (g *Game) uiFace() font.Face {
	return g.face
}

// Save writes the board to storage. Failures are logged by the adapter.
func (g *Game) Save() {
	g.persist.Save(g.view, g.store.All())
}

func (g *Game) Update() error {
	f := g.source.Poll()
	g.cursorX, g.cursorY = f.CursorX, f.CursorY

	if f.JustPressed(input.ButtonLeft) && !g.drag.Active() {
		g.toolbar.Click(int(f.CursorX), int(f.CursorY))
	}

	events := g.router.Update(f)

	if events.Has(input.PasteRequested) {
		g.pasteFromClipboard()
	}
	if f.Dropped != nil {
		g.addDroppedFiles(f.Dropped)
	}

	if events.Changed() || g.resized || g.autosave.Due() {
		g.resized = false
		g.Save()
	}
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.screenWidth || outsideHeight != g.screenHeight {
		if g.screenWidth != 0 {
			g.resized = true
		}
		g.screenWidth = outsideWidth
		g.screenHeight = outsideHeight
		g.router.Resize(outsideWidth, outsideHeight)
		g.toolbar.Layout(outsideWidth)
	}
	return outsideWidth, outsideHeight
}

// Start begins periodic autosaves.
func (g *Game) Start() {
	g.autosave.Start()
}

// Close stops autosaving and writes a final save.
func (g *Game) Close() {
	g.autosave.Stop()
	g.Save()
	g.renderer.dispose()
}
