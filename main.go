package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hexbit/sparkle/config"
	"github.com/hexbit/sparkle/scenes"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	width  int
	height int
	scene  Scene
}

func NewGame() *Game {
	w, h := ebiten.Monitor().Size()
	return &Game{
		width:  w,
		height: h,
		scene:  scenes.NewEffectScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.width, g.height
}

func main() {
	flag.BoolVar(&config.Debug.ShowStats, "debug", false, "overlay tick rate and live point count")
	flag.Parse()

	game := NewGame()

	// A borderless, always-on-top, click-through window covering the
	// whole monitor. Only the effect surface ever gets pixels; the rest
	// stays transparent.
	ebiten.SetWindowSize(game.width, game.height)
	ebiten.SetWindowPosition(0, 0)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowMousePassthrough(true)
	ebiten.SetTPS(config.Effect.TickRate)

	op := &ebiten.RunGameOptions{
		ScreenTransparent: true,
		SkipTaskbar:       true,
		InitUnfocused:     true,
	}

	// Runs until the process exits; the effect has no stop control.
	if err := ebiten.RunGameWithOptions(game, op); err != nil {
		log.Fatal(err)
	}
}
