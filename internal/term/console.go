package term

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"mad-sand/internal/render"
	"mad-sand/internal/sims/sand"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

const (
	fieldView  = "field"
	statusView = "status"
	helpView   = "help"

	statusWidth = 26
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// Console is a terminal front end for the sand world: one character per
// cell, mouse clicks paint and the keyboard drives the brush.
type Console struct {
	w     *sand.World
	g     *gocui.Gui
	k     []keyBinding
	text  *render.TextPainter
	frame time.Duration

	paused bool
	done   chan struct{}
}

// NewConsole prepares a console for world running at tps frames per second.
// The terminal is not touched until Start.
func NewConsole(world *sand.World, tps int, colored bool) *Console {
	if tps <= 0 {
		tps = 30
	}
	c := &Console{
		w:     world,
		text:  render.NewTextPainter(world.Glyphs(), world.Palette(), uint8(sand.Empty), colored),
		frame: time.Second / time.Duration(tps),
		done:  make(chan struct{}),
	}
	c.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", c.cmdQuit, ""},
		{'q', "Q", "Exit", c.cmdQuit, ""},
		{gocui.KeySpace, "SPACE", "Pause", c.cmdPause, ""},
		{'n', "N", "Step", c.cmdStep, ""},
		{'c', "C", "Clear", c.cmdClear, ""},
		{'f', "F", "Fast", c.cmdFast, ""},
		{'+', "+", "Grow brush", c.cmdResize(1), ""},
		{'=', "=", "Grow brush", c.cmdResize(1), ""},
		{'-', "-", "Shrink brush", c.cmdResize(-1), ""},
		{gocui.MouseLeft, "MOUSE", "Paint", c.cmdPaint, fieldView},
		{gocui.MouseRelease, "", "", c.cmdRelease, ""},
	}
	for slot, m := range sand.Materials {
		key := rune('1' + slot)
		c.k = append(c.k, keyBinding{key, string(key), m.String(), c.cmdSelect(slot + 1), ""})
	}
	return c
}

// Start takes over the terminal and runs until the user quits.
func (c *Console) Start() error {
	g, err := gocui.NewGui(gocui.Output256)
	if err != nil {
		return fmt.Errorf("term: open terminal: %w", err)
	}
	defer g.Close()
	c.g = g

	g.Mouse = true
	g.SetManagerFunc(c.layout)
	for _, kb := range c.k {
		h := kb.handler
		if err := g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			return fmt.Errorf("term: bind %s: %w", kb.name, err)
		}
	}

	go c.tickLoop()
	defer close(c.done)

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

// tickLoop posts frames into the UI goroutine so the world has a single
// writer.
func (c *Console) tickLoop() {
	ticker := time.NewTicker(c.frame)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.g.Update(func(g *gocui.Gui) error {
				if !c.paused {
					c.w.Step()
				}
				return c.refresh(g)
			})
		}
	}
}

func (c *Console) refresh(g *gocui.Gui) error {
	if v, err := g.View(fieldView); err == nil {
		c.renderField(v)
	}
	if v, err := g.View(statusView); err == nil {
		v.Clear()
		for _, line := range c.statusLines() {
			_, _ = fmt.Fprintln(v, line)
		}
	}
	return nil
}

func (c *Console) renderField(v *gocui.View) {
	v.Clear()
	maxW, maxH := v.Size()
	size := c.w.Size()
	if err := c.text.Write(v, c.w.Cells(), size.W, maxW, maxH); err != nil {
		log.Printf("term: render field: %v", err)
	}
}

func (c *Console) statusLines() []string {
	brush := c.w.Brush()
	census := c.w.Grid().Census()
	mode := aurora.Colorize("running", aurora.CyanFg).String()
	if c.paused {
		mode = aurora.Colorize("paused", aurora.BlueFg).String()
	}
	if c.w.Fast() {
		mode += aurora.Colorize(" fast", aurora.RedFg).String()
	}
	lines := []string{
		renderProp("Tick", "%d", c.w.Ticks()),
		renderProp("Mode", "%s", mode),
		renderProp("Brush", "%s r%d", c.text.Cell(uint8(brush.Material))+" "+brush.Material.String(), brush.Radius),
		"",
	}
	for _, m := range sand.Materials {
		lines = append(lines, renderProp(m.String(), "%d", census.Of(m)))
	}
	return lines
}

func renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (c *Console) helpLine() string {
	b := bytes.Buffer{}
	b.WriteString("KEYS: ")
	first := true
	for _, k := range c.k {
		if k.name == "" {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(aurora.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	return b.String()
}

func (c *Console) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	size := c.w.Size()

	right := size.W + 1
	if right > maxX-statusWidth-2 {
		right = maxX - statusWidth - 2
	}
	bottom := size.H + 1
	if bottom > maxY-4 {
		bottom = maxY - 4
	}
	if right < 2 || bottom < 2 {
		return nil
	}

	if v, err := g.SetView(fieldView, 0, 0, right, bottom); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Sand"
		v.Frame = true
		c.renderField(v)
	}

	if v, err := g.SetView(statusView, right+1, 0, right+1+statusWidth, bottom); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}

	if v, err := g.SetView(helpView, -1, maxY-3, maxX, maxY); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		v.Wrap = true
		_, _ = fmt.Fprintln(v, c.helpLine())
	}
	return nil
}

func (c *Console) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (c *Console) cmdPause(_ *gocui.View) error {
	c.paused = !c.paused
	return nil
}

func (c *Console) cmdStep(_ *gocui.View) error {
	c.w.Tick()
	return nil
}

func (c *Console) cmdClear(_ *gocui.View) error {
	c.w.Reset(c.w.Config().Seed)
	return nil
}

func (c *Console) cmdFast(_ *gocui.View) error {
	c.w.ToggleFast()
	return nil
}

func (c *Console) cmdResize(delta int) func(*gocui.View) error {
	return func(_ *gocui.View) error {
		c.w.ResizeBrush(delta)
		return nil
	}
}

func (c *Console) cmdSelect(slot int) func(*gocui.View) error {
	return func(_ *gocui.View) error {
		c.w.SelectSlot(slot)
		return nil
	}
}

func (c *Console) cmdPaint(v *gocui.View) error {
	if v == nil {
		return nil
	}
	cx, cy := v.Cursor()
	c.w.PointerDown(cx, cy)
	return nil
}

func (c *Console) cmdRelease(_ *gocui.View) error {
	c.w.PointerUp()
	return nil
}
