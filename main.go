package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/telegraph/config"
	"github.com/automoto/telegraph/fonts"
	"github.com/automoto/telegraph/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewArenaScene(g, config.Arena.Level)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	level := flag.String("level", config.Arena.Level, "embedded level file to load")
	debug := flag.Bool("debug", false, "draw collision bodies and state")
	flag.Parse()

	config.Debug.Seed = *seed
	config.Debug.ShowBodies = *debug
	config.Arena.Level = *level

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("telegraph")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
