package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path"

	"image-board/board"
)

// AddImageData places an encoded image centred in the current view and
// saves the board.
func (g *Game) AddImageData(data []byte) (board.PlacedImage, error) {
	src, err := board.EncodeDataURI(data)
	if err != nil {
		return board.PlacedImage{}, err
	}
	w, h, err := board.ImageSize(src)
	if err != nil {
		return board.PlacedImage{}, err
	}

	x, y := board.CenteredPlacement(&g.view, g.screenWidth, g.screenHeight, float64(w), float64(h))
	img := board.PlacedImage{
		ID:  board.NewID(),
		Src: src,
		X:   x,
		Y:   y,
		W:   float64(w),
		H:   float64(h),
	}
	g.store.Append(img)
	g.Save()
	return img, nil
}

func (g *Game) pasteFromClipboard() {
	if g.clipboard == nil {
		return
	}
	data, ok := g.clipboard.ReadImage()
	if !ok {
		g.toolbar.Status.Show("Clipboard has no image")
		return
	}
	if _, err := g.AddImageData(data); err != nil {
		log.Println("paste:", err)
		g.toolbar.Status.Show("Could not read pasted image")
	}
}

// addDroppedFiles adds every image among the dropped files, skipping the rest.
func (g *Game) addDroppedFiles(files fs.FS) {
	added := 0
	err := fs.WalkDir(files, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(files, p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		if _, err := g.AddImageData(data); err != nil {
			if errors.Is(err, board.ErrNotImage) {
				log.Printf("drop: skipping %s: not an image", path.Base(p))
				return nil
			}
			return err
		}
		added++
		return nil
	})
	if err != nil {
		log.Println("drop:", err)
	}
	if added == 0 {
		g.toolbar.Status.Show("No images in dropped files")
	}
}
