package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"mad-sand/internal/core"
	"mad-sand/internal/render"
	"mad-sand/internal/sims/sand"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"
)

type options struct {
	scene    string
	frames   int
	seed     int64
	cell     int
	fast     bool
	interval time.Duration
	every    int
	print    bool
	color    bool
}

func main() {
	opts := options{
		scene:  "volcano",
		frames: 300,
		seed:   42,
		cell:   8,
		every:  50,
		color:  true,
	}
	noColor := false

	flaggy.SetName("sandbench")
	flaggy.SetDescription("runs a sand scene headless and reports the material census")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&opts.scene, "s", "scene", "Scene to run ["+strings.Join(sand.SceneNames(), "|")+"]")
	flaggy.Int(&opts.frames, "n", "frames", "Number of frames to simulate")
	flaggy.Int64(&opts.seed, "r", "seed", "Seed for the random source")
	flaggy.Int(&opts.cell, "c", "cell", "World pixels per cell")
	flaggy.Bool(&opts.fast, "f", "fast", "Run fast mode (several ticks per frame)")
	flaggy.Duration(&opts.interval, "i", "interval", "Pace frames, for example 30ms; 0 runs flat out")
	flaggy.Int(&opts.every, "e", "every", "Print a census line every N frames (0 disables)")
	flaggy.Bool(&opts.print, "p", "print", "Dump the final grid as text")
	flaggy.Bool(&noColor, "", "no-color", "Disable colored output")
	flaggy.Parse()
	opts.color = !noColor

	if err := run(opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(opts options, out io.Writer) error {
	au := aurora.NewAurora(opts.color)
	world := sand.NewWithConfig(sand.FromMap(map[string]string{
		"cell": strconv.Itoa(opts.cell),
		"seed": strconv.FormatInt(opts.seed, 10),
	}))
	if err := world.LoadScene(opts.scene, opts.seed); err != nil {
		return err
	}
	world.SetFast(opts.fast)

	size := world.Size()
	fmt.Fprintln(out, au.Bold("Running configuration:"))
	fmt.Fprintf(out, "  %s: %s\n", au.Green("Scene"), opts.scene)
	fmt.Fprintf(out, "  %s: %v x %v\n", au.Green("Dimension"), size.W, size.H)
	fmt.Fprintf(out, "  %s: %v\n", au.Green("Ticks per frame"), world.TicksPerFrame())
	fmt.Fprintf(out, "  %s: %v\n", au.Green("Interval"), opts.interval)

	pacer := core.NewFixedInterval(opts.interval)
	start := time.Now()
	for frame := 1; frame <= opts.frames; {
		if !pacer.ShouldStep() {
			time.Sleep(opts.interval / 4)
			continue
		}
		world.Step()
		if opts.every > 0 && frame%opts.every == 0 {
			fmt.Fprintf(out, "  frame %d: %s\n", frame, censusLine(world.Grid().Census()))
		}
		frame++
	}

	fmt.Fprintln(out, au.Bold("Finished:"))
	fmt.Fprintf(out, "  %s: %v\n", au.Green("Ticks"), world.Ticks())
	fmt.Fprintf(out, "  %s: %v\n", au.Green("Total time"), time.Since(start).Round(time.Millisecond))
	fmt.Fprintf(out, "  %s: %s\n", au.Green("Census"), censusLine(world.Grid().Census()))

	if opts.print {
		painter := render.NewTextPainter(world.Glyphs(), world.Palette(), uint8(sand.Empty), opts.color)
		return painter.Write(out, world.Cells(), size.W, 0, 0)
	}
	return nil
}

func censusLine(c sand.Census) string {
	parts := make([]string, 0, len(sand.Materials))
	for _, m := range sand.Materials {
		parts = append(parts, fmt.Sprintf("%s=%d", m, c.Of(m)))
	}
	return strings.Join(parts, " ")
}
