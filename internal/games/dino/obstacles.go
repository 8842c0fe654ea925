package dino

import (
	"github.com/vovakirdan/dino-run/internal/config"
	"github.com/vovakirdan/dino-run/internal/core"
)

// Obstacle is a cactus standing on the ground.
type Obstacle struct {
	X      float64 // Left edge
	Width  float64
	Height float64
	Scored bool // Set once the player has passed it
}

// Hitbox returns the cactus bounds shrunk by the configured insets.
// The top is not inset so tall cacti stay tall.
func (o Obstacle) Hitbox(cfg config.RunnerConfig) core.Box {
	top := cfg.Surface.GroundY - o.Height
	return core.NewBox(o.X, top, o.Width, o.Height).Inset(cfg.Obstacles.InsetX, 0, cfg.Obstacles.InsetBottom)
}

// Cloud is a decorative background element. Clouds are recycled, never destroyed.
type Cloud struct {
	X, Y float64
}

// moveClouds scrolls clouds at a fraction of the world speed and wraps the
// ones that left the surface back to the right edge at a new height.
func (g *Game) moveClouds() {
	c := g.cfg.Clouds
	for i := range g.clouds {
		cloud := &g.clouds[i]
		cloud.X -= g.speed * g.cfg.Physics.CloudParallax
		if cloud.X < c.ExitX {
			cloud.X = g.cfg.Surface.Width + g.rng.Float64()*c.RespawnJitter
			cloud.Y = c.MinY + g.rng.Float64()*c.YJitter
		}
	}
}
