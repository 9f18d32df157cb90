package main

import (
	"log"
	"strconv"
	"strings"

	"mad-sand/internal/sims/sand"
	"mad-sand/internal/term"

	"github.com/integrii/flaggy"
)

func main() {
	scene := "hourglass"
	cell := 8
	seed := int64(42)
	tps := 30
	fastSubsteps := 5
	noColor := false

	flaggy.SetName("sandterm")
	flaggy.SetDescription("falling sand in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&scene, "s", "scene", "Starting scene ["+strings.Join(sand.SceneNames(), "|")+"]")
	flaggy.Int(&cell, "c", "cell", "World pixels per cell; larger values give a smaller grid")
	flaggy.Int64(&seed, "r", "seed", "Seed for the random source")
	flaggy.Int(&tps, "t", "tps", "Frames per second")
	flaggy.Int(&fastSubsteps, "f", "fast-substeps", "Ticks per frame in fast mode")
	flaggy.Bool(&noColor, "n", "no-color", "Disable colored output")
	flaggy.Parse()

	world := sand.NewWithConfig(sand.FromMap(map[string]string{
		"cell":          strconv.Itoa(cell),
		"seed":          strconv.FormatInt(seed, 10),
		"fast_substeps": strconv.Itoa(fastSubsteps),
	}))
	if err := world.LoadScene(scene, seed); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	console := term.NewConsole(world, tps, !noColor)
	if err := console.Start(); err != nil {
		log.Fatal(err)
	}
}
