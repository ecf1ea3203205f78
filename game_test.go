package main

import (
	"bytes"
	"image"
	"image/png"
	"testing"
	"testing/fstest"

	"image-board/board"
	"image-board/canvas"
	"image-board/input"
	"image-board/storage"
)

type fakeSource struct {
	frames []input.Frame
}

func (s *fakeSource) Poll() input.Frame {
	if len(s.frames) == 0 {
		return input.Frame{}
	}
	f := s.frames[0]
	s.frames = s.frames[1:]
	return f
}

type fakeClipboard struct {
	data []byte
}

func (c *fakeClipboard) ReadImage() ([]byte, bool) {
	return c.data, len(c.data) > 0
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func newTestGame(t *testing.T, st storage.Store, cb *fakeClipboard) (*Game, *fakeSource) {
	t.Helper()
	src := &fakeSource{}
	s := DefaultSettings()
	g := NewGame(s, st, cb, src)
	g.Layout(800, 600)
	return g, src
}

func run(g *Game, src *fakeSource, frames ...input.Frame) {
	src.frames = append(src.frames, frames...)
	for range frames {
		g.Update()
	}
}

func storedState(t *testing.T, st storage.Store) storage.State {
	t.Helper()
	s, ok := storage.NewAdapter(st, storage.DefaultKey).Load()
	if !ok {
		t.Fatal("expected a saved board")
	}
	return s
}

func TestNewGameWithEmptyStorage(t *testing.T) {
	g, _ := newTestGame(t, storage.NewMemoryStore(), &fakeClipboard{})
	if g.view != canvas.DefaultViewport() || g.store.Len() != 0 {
		t.Fatalf("expected empty default board, got %+v with %d images", g.view, g.store.Len())
	}
}

func TestNewGameWithCorruptStorage(t *testing.T) {
	st := storage.NewMemoryStore()
	st.Put(storage.DefaultKey, []byte("%%%"))
	g, _ := newTestGame(t, st, &fakeClipboard{})
	if g.view != canvas.DefaultViewport() || g.store.Len() != 0 {
		t.Fatal("corrupt storage should yield the default board")
	}
}

func TestPasteCentersAndSaves(t *testing.T) {
	st := storage.NewMemoryStore()
	g, src := newTestGame(t, st, &fakeClipboard{data: testPNG(t, 40, 20)})
	g.view = canvas.Viewport{Scale: 2, OffsetX: 100, OffsetY: 50}

	f := input.Frame{Keys: input.KeyActions{Paste: true}}
	run(g, src, f)

	if g.store.Len() != 1 {
		t.Fatalf("expected 1 image, got %d", g.store.Len())
	}
	img := g.store.All()[0]
	if img.W != 40 || img.H != 20 {
		t.Errorf("expected size 40x20, got %vx%v", img.W, img.H)
	}
	cx, cy := g.view.WorldToScreen(img.X+img.W/2, img.Y+img.H/2)
	if cx != 400 || cy != 300 {
		t.Errorf("image centre drawn at (%v, %v), want (400, 300)", cx, cy)
	}

	saved := storedState(t, st)
	if len(saved.Images) != 1 || saved.Images[0].ID != img.ID || saved.Images[0].Src != img.Src {
		t.Errorf("paste was not saved: %+v", saved)
	}
}

func TestPasteWithoutImageIsNoop(t *testing.T) {
	st := storage.NewMemoryStore()
	g, src := newTestGame(t, st, &fakeClipboard{})

	run(g, src, input.Frame{Keys: input.KeyActions{Paste: true}})
	if g.store.Len() != 0 {
		t.Fatal("empty clipboard should not add an image")
	}
	if !g.toolbar.Status.Visible() {
		t.Error("expected a status message")
	}

	g.clipboard = &fakeClipboard{data: []byte("not an image")}
	run(g, src, input.Frame{Keys: input.KeyActions{Paste: true}})
	if g.store.Len() != 0 {
		t.Fatal("non-image clipboard should not add an image")
	}
}

func TestDropAddsOnlyImages(t *testing.T) {
	g, src := newTestGame(t, storage.NewMemoryStore(), &fakeClipboard{})

	files := fstest.MapFS{
		"a.png":     {Data: testPNG(t, 8, 8)},
		"notes.txt": {Data: []byte("hello")},
		"b.png":     {Data: testPNG(t, 16, 4)},
	}
	run(g, src, input.Frame{Dropped: files})

	if g.store.Len() != 2 {
		t.Fatalf("expected 2 images, got %d", g.store.Len())
	}
}

func TestDragEndSaves(t *testing.T) {
	st := storage.NewMemoryStore()
	g, src := newTestGame(t, st, &fakeClipboard{data: testPNG(t, 100, 100)})
	g.AddImageData(testPNG(t, 100, 100))
	img := g.store.All()[0]

	sx, sy := g.view.WorldToScreen(img.X+10, img.Y+10)
	down := input.Frame{CursorX: sx, CursorY: sy}
	down.SetButton(input.ButtonLeft, true, true, false)
	move := input.Frame{CursorX: sx + 30, CursorY: sy - 15}
	move.SetButton(input.ButtonLeft, true, false, false)
	up := input.Frame{CursorX: sx + 30, CursorY: sy - 15}
	up.SetButton(input.ButtonLeft, false, false, true)

	run(g, src, down, move, up)

	saved := storedState(t, st)
	if saved.Images[0].X != img.X+30 || saved.Images[0].Y != img.Y-15 {
		t.Fatalf("expected saved position (%v, %v), got (%v, %v)",
			img.X+30, img.Y-15, saved.Images[0].X, saved.Images[0].Y)
	}
}

func TestToolbarZoomSaves(t *testing.T) {
	st := storage.NewMemoryStore()
	g, src := newTestGame(t, st, &fakeClipboard{})

	// Toolbar is right-aligned; the reset button is last, "+" before it.
	click := input.Frame{CursorX: 800 - 10 - 60 - 6 - 15, CursorY: 25}
	click.SetButton(input.ButtonLeft, true, true, false)
	run(g, src, click)

	if g.view.Scale != 1.2 {
		t.Fatalf("expected zoom in to 1.2, got %v", g.view.Scale)
	}
	if saved := storedState(t, st); saved.Viewport.Scale != 1.2 {
		t.Errorf("zoom was not saved: %+v", saved.Viewport)
	}
	if g.drag.Active() {
		t.Error("toolbar click must not start a drag")
	}
}

func TestResizeSaves(t *testing.T) {
	st := storage.NewMemoryStore()
	g, src := newTestGame(t, st, &fakeClipboard{})

	run(g, src, input.Frame{})
	if _, err := st.Get(storage.DefaultKey); err == nil {
		t.Fatal("idle frame should not save")
	}

	g.Layout(1024, 768)
	run(g, src, input.Frame{})
	if _, err := st.Get(storage.DefaultKey); err != nil {
		t.Fatalf("resize should save: %v", err)
	}
}

func TestRestoreFromStorage(t *testing.T) {
	st := storage.NewMemoryStore()
	src, err := board.EncodeDataURI(testPNG(t, 12, 7))
	if err != nil {
		t.Fatal(err)
	}
	a := storage.NewAdapter(st, storage.DefaultKey)
	a.Save(canvas.Viewport{Scale: 1.5, OffsetX: 10, OffsetY: -5}, []board.PlacedImage{
		{ID: "a", Src: src, X: 3, Y: 4},
		{ID: "broken", Src: "data:image/png;base64,AAAA", X: 0, Y: 0},
	})

	g, _ := newTestGame(t, st, &fakeClipboard{})
	if g.view != (canvas.Viewport{Scale: 1.5, OffsetX: 10, OffsetY: -5}) {
		t.Errorf("unexpected view %+v", g.view)
	}
	if g.store.Len() != 2 {
		t.Fatalf("expected both images kept, got %d", g.store.Len())
	}
	img, _ := g.store.Get("a")
	if img.W != 12 || img.H != 7 {
		t.Errorf("expected decoded size 12x7, got %vx%v", img.W, img.H)
	}
	if g.toolbar.ReadoutText() != "150%" {
		t.Errorf("expected readout 150%%, got %q", g.toolbar.ReadoutText())
	}
}
