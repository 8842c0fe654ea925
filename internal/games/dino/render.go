package dino

import (
	"github.com/vovakirdan/dino-run/internal/core"
)

// Surface is a 2D drawing target with a fixed logical resolution.
type Surface interface {
	Size() (w, h float64)
	Clear(c core.Color)
	FillRect(x, y, w, h float64, c core.Color)
}

// Draw paints the current state. It reads state only, except for drawing
// ground speckles from the cosmetic RNG.
func (g *Game) Draw(s Surface) {
	if s == nil {
		return
	}
	w, _ := s.Size()

	s.Clear(core.ColorSky)

	for _, c := range g.clouds {
		drawCloud(s, c.X, c.Y)
	}

	// Ground line and speckles, re-rolled every frame
	groundY := g.cfg.Surface.GroundY
	s.FillRect(0, groundY, w, 1, core.ColorInk)
	if step := g.cfg.Ground.SpeckleSpacing; step > 0 {
		for x := 0.0; x < w; x += step {
			if g.cosmetic.Float64() < g.cfg.Ground.SpeckleChance {
				s.FillRect(x, groundY+3, 2, 2, core.ColorInk)
			}
		}
	}

	g.drawDino(s)

	for _, o := range g.obstacles {
		drawCactus(s, o.X, groundY-o.Height, o.Height)
	}
}

// drawDino renders the player at its fixed X.
//
//	  ▄▄▄
//	 ████•
//	█████
//	  ▌▌
func (g *Game) drawDino(s Surface) {
	x := g.cfg.Player.X
	y := g.player.Y

	s.FillRect(x+15, y+5, 20, 25, core.ColorInk) // Body
	s.FillRect(x+25, y, 19, 20, core.ColorInk)   // Head
	s.FillRect(x+38, y+4, 4, 4, core.ColorEye)   // Eye
	s.FillRect(x, y+10, 15, 8, core.ColorInk)    // Tail

	// Legs: fixed pose in the air, alternating while running
	front, back := 17.0, 17.0
	if !g.player.Airborne {
		if g.player.LegPhase%2 == 0 {
			back = 12
		} else {
			front = 12
		}
	}
	s.FillRect(x+18, y+30, 6, front, core.ColorInk)
	s.FillRect(x+28, y+30, 6, back, core.ColorInk)
}

// drawCactus renders a stem with two arms, top at y.
func drawCactus(s Surface, x, y, height float64) {
	s.FillRect(x+8, y, 10, height, core.ColorInk) // Stem

	s.FillRect(x, y+15, 8, 6, core.ColorInk) // Left arm
	s.FillRect(x, y+10, 6, 10, core.ColorInk)

	s.FillRect(x+18, y+20, 7, 6, core.ColorInk) // Right arm
	s.FillRect(x+20, y+15, 5, 10, core.ColorInk)
}

func drawCloud(s Surface, x, y float64) {
	s.FillRect(x, y, 30, 10, core.ColorCloud)
	s.FillRect(x+5, y-5, 20, 8, core.ColorCloud)
	s.FillRect(x+10, y+8, 15, 5, core.ColorCloud)
}
