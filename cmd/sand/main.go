//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"mad-sand/internal/app"
	"mad-sand/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	world := sand.NewWithConfig(sand.FromMap(cfg.SimOptions()))
	if err := world.LoadScene(cfg.Scene, cfg.Seed); err != nil {
		log.Fatalf("scene: %v (available: %v)", err, sand.SceneNames())
	}

	scale := world.Config().CellSize
	game := app.New(world, scale, cfg.HUDWidth, cfg.Seed)
	size := world.Size()

	ebiten.SetWindowTitle("mad-sand - " + world.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*scale+cfg.HUDWidth, size.H*scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
