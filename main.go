package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"image-board/clip"
	"image-board/input"
)

func main() {
	configPath := flag.String("config", "image-board.yaml", "path to the settings file")
	ephemeral := flag.Bool("ephemeral", false, "keep the board in memory only")
	flag.Parse()

	settings, err := LoadSettings(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *ephemeral {
		settings.Backend = "memory"
	}

	st, err := settings.OpenStore()
	if err != nil {
		log.Fatal(err)
	}
	defer st.Close()

	g := NewGame(settings, st, clip.NewSystem(), &input.EbitenSource{})
	g.face = LoadUIFont(settings.FontPath)
	g.Start()
	defer g.Close()

	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	ebiten.SetWindowTitle(settings.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Println(err)
	}
}
