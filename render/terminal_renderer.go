// Package render draws the simulation into a tcell screen and collects terminal input
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/speaki-box/component"
	"github.com/lixenwraith/speaki-box/sim"
)

// faceSlot places one face glyph relative to the body center, in radii before rotation
type faceSlot struct {
	dx, dy float64
}

var faceLayout = [3]faceSlot{
	{-0.35, 0.2},
	{0, -0.25},
	{0.35, 0.2},
}

// Renderer owns the screen drawing and the transient shockwave rings
type Renderer struct {
	screen tcell.Screen
	view   Viewport
	rings  []ring
	bg     tcell.Style
}

// NewRenderer creates a renderer sized to the current screen
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen}
	r.Resize()
	return r
}

// Resize re-reads the screen size and returns the new viewport
func (r *Renderer) Resize() Viewport {
	cols, rows := r.screen.Size()
	r.view = NewViewport(cols, rows)
	return r.view
}

// Viewport returns the current cell mapping
func (r *Renderer) Viewport() Viewport {
	return r.view
}

// Draw paints one frame: background, speakis in spawn order, rings, status bar
func (r *Renderer) Draw(s *sim.Simulation, paused bool) {
	// Transparent leaves the terminal's own background showing
	r.bg = style(RgbBackground, RgbBackground)
	if s.Config().Game.Transparent {
		r.bg = tcell.StyleDefault
	}
	r.screen.Fill(' ', r.bg)

	w := s.World()
	for _, e := range w.Entities() {
		k, _ := w.Components.Kinetic.Get(e)
		b, ok := w.Components.Body.Get(e)
		if !ok {
			continue
		}
		sp, _ := w.Components.Sprite.Get(e)
		g, _ := w.Components.Grab.Get(e)
		sh, shiny := w.Components.Shiny.Get(e)

		var glow *component.ShinyComponent
		if shiny {
			glow = &sh
		}
		face := ""
		if s.Graph().Valid(sp.Index) {
			face = s.Graph().Node(sp.Index).Face
		}
		r.drawSpeaki(s, k, b, face, g.Held, glow)
	}

	for _, rg := range r.rings {
		r.drawRing(rg)
	}
	r.ageRings()

	r.drawStatus(s, paused)
	r.screen.Show()
}

func (r *Renderer) drawSpeaki(s *sim.Simulation, k component.KineticComponent, b component.BodyComponent, face string, held bool, sh *component.ShinyComponent) {
	radius := b.Radius()
	cfg := s.Config().Shiny

	base := RgbBody
	if held {
		base = RgbBodyHeld
	}
	var glow RGB
	pulse := 0.0
	if sh != nil {
		glow = FromUnit(sh.Glow)
		pulse = (0.5 + 0.5*math.Sin(sh.Phase)) * min(cfg.GlowIntensity*0.15, 1)
		base = Lerp(base, glow, pulse)
	}

	outer := radius
	if sh != nil && cfg.Bloom {
		outer = radius * 1.2
	}

	c0, r0 := r.view.ToCell(k.X-outer, k.Y+outer)
	c1, r1 := r.view.ToCell(k.X+outer, k.Y-outer)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if !r.view.Contains(col, row) {
				continue
			}
			x, y := r.view.FromCell(col, row)
			d := math.Hypot(x-k.X, y-k.Y)
			switch {
			case d < radius:
				shade := Scale(base, 1-0.3*d/radius)
				r.screen.SetContent(col, row, ' ', nil, style(shade, shade))
			case d < outer:
				halo := Lerp(RgbBackground, glow, pulse*(outer-d)/(outer-radius))
				r.screen.SetContent(col, row, ' ', nil, style(halo, halo))
			}
		}
	}

	glyphs := []rune(face)
	sin, cos := math.Sincos(b.Rotation)
	for i, slot := range faceLayout {
		if i >= len(glyphs) {
			break
		}
		ox, oy := slot.dx*radius, slot.dy*radius
		col, row := r.view.ToCell(k.X+ox*cos-oy*sin, k.Y+ox*sin+oy*cos)
		if r.view.Contains(col, row) {
			r.screen.SetContent(col, row, glyphs[i], nil, style(RgbFace, Scale(base, 0.9)))
		}
	}
}

func (r *Renderer) drawRing(rg ring) {
	cur := rg.radius * rg.progress()
	fade := Lerp(RgbShockwave, RgbBackground, rg.progress())
	thickness := cellHeight()

	c0, r0 := r.view.ToCell(rg.x-cur, rg.y+cur)
	c1, r1 := r.view.ToCell(rg.x+cur, rg.y-cur)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if !r.view.Contains(col, row) {
				continue
			}
			x, y := r.view.FromCell(col, row)
			d := math.Hypot(x-rg.x, y-rg.y)
			if d <= cur && d > cur-thickness {
				r.screen.SetContent(col, row, '·', nil, r.bg.Foreground(RGBToTcell(fade)))
			}
		}
	}
}

func (r *Renderer) drawStatus(s *sim.Simulation, paused bool) {
	cols, rows := r.screen.Size()
	row := rows - 1
	if row < 0 {
		return
	}
	st := style(RgbStatusFg, RgbStatusBg)
	for col := 0; col < cols; col++ {
		r.screen.SetContent(col, row, ' ', nil, st)
	}

	text := s.Status().Format()
	if paused {
		text = "PAUSED " + text
	}
	if !s.Config().Audio.Enabled {
		text += " muted"
	}
	text = fmt.Sprintf("%s | q quit p pause + add s sound arrows shake", text)
	r.drawText(0, row, text, st)
}

func (r *Renderer) drawText(col, row int, text string, st tcell.Style) {
	cols, _ := r.screen.Size()
	for _, ch := range text {
		if col >= cols {
			return
		}
		r.screen.SetContent(col, row, ch, nil, st)
		col++
	}
}
