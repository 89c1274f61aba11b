package render

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/speaki-box/input"
	"github.com/lixenwraith/speaki-box/parameter"
	"github.com/lixenwraith/speaki-box/sim"
)

// Collector folds terminal events between ticks into one simulation input
// Button edges accumulate until Frame consumes them
type Collector struct {
	view    Viewport
	pointer input.Pointer
	buttons tcell.ButtonMask
	winX    int
	winY    int
}

// NewCollector creates a collector for the given viewport
func NewCollector(view Viewport) *Collector {
	return &Collector{view: view}
}

// SetViewport updates the cell mapping after a resize
func (c *Collector) SetViewport(view Viewport) {
	c.view = view
}

// HandleMouse records position and button transitions
// Left is primary, right is secondary; Alt or Ctrl on press marks the click as modified
func (c *Collector) HandleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	c.pointer.X, c.pointer.Y = c.view.FromCell(col, row)
	c.pointer.Present = c.view.Contains(col, row)

	btn := ev.Buttons()
	pressed := btn &^ c.buttons
	released := c.buttons &^ btn
	c.buttons = btn

	if pressed&tcell.Button1 != 0 {
		c.pointer.PrimaryDown = true
		c.pointer.Modified = ev.Modifiers()&(tcell.ModAlt|tcell.ModCtrl) != 0
	}
	if released&tcell.Button1 != 0 {
		c.pointer.PrimaryUp = true
	}
	if pressed&tcell.Button2 != 0 {
		c.pointer.SecondaryDown = true
	}
}

// NudgeWindow moves the pretend window by whole nudge steps
func (c *Collector) NudgeWindow(dx, dy int) {
	c.winX += dx * parameter.WindowNudge
	c.winY += dy * parameter.WindowNudge
}

// Frame returns the input for the next tick and clears the consumed edges
func (c *Collector) Frame(delta time.Duration) sim.Input {
	in := sim.Input{
		Delta:     delta,
		Pointer:   c.pointer,
		WindowPos: input.WindowPos{X: c.winX, Y: c.winY, Valid: true},
	}
	c.pointer.Reset()
	c.pointer.Modified = false
	return in
}
