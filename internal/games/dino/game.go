// Package dino implements a Chrome Dino-style endless runner.
// The player runs automatically and jumps over cacti on a fixed logical
// surface; one Advance call is one display frame.
package dino

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/dino-run/internal/config"
	"github.com/vovakirdan/dino-run/internal/core"
)

// Phase is the top-level state of a game instance.
type Phase int

const (
	PhaseIdle    Phase = iota // Not started yet
	PhaseRunning              // Frames are being simulated
	PhaseOver                 // Crashed, waiting for a new start
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Rand is a pseudo-random source of values in [0, 1).
type Rand interface {
	Float64() float64
}

// Source creates the simulation RNG for a run from its seed.
type Source func(seed int64) Rand

// defaultSource seeds math/rand, which makes runs reproducible from the seed.
func defaultSource(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// Event is a set of things that happened during one frame.
type Event uint8

const (
	EventJump  Event = 1 << iota // Player left the ground
	EventScore                   // An obstacle was passed
	EventCrash                   // The run ended
)

// Has reports whether e contains all bits of other.
func (e Event) Has(other Event) bool {
	return e&other == other
}

// Player is the dino. Its horizontal position and size are fixed by config.
type Player struct {
	Y        float64 // Top edge
	VY       float64 // Vertical velocity, negative = up
	Airborne bool
	LegPhase int
}

// Snapshot is the state the host displays.
type Snapshot struct {
	Phase     Phase
	Score     int
	HighScore int
	Speed     float64
	Frame     int
}

// Running reports whether frames are being simulated.
func (s Snapshot) Running() bool { return s.Phase == PhaseRunning }

// Over reports whether the last run ended in a crash.
func (s Snapshot) Over() bool { return s.Phase == PhaseOver }

// StepResult is returned by Advance after each simulated frame.
type StepResult struct {
	State  Snapshot
	Events Event
}

// Record describes the current or last run, enough to replay it.
type Record struct {
	Seed   int64
	Frames int
	Score  int
	Jumps  []int // Frame counts at which a jump was applied
}

// Game implements the runner simulation.
type Game struct {
	cfg      config.RunnerConfig
	source   Source
	rng      Rand
	cosmetic Rand // Ground speckles only, never affects the simulation

	phase     Phase
	score     int
	highScore int
	speed     float64
	frame     int
	seed      int64

	player    Player
	obstacles []Obstacle // Spawn order, which is also descending X
	clouds    []Cloud
	jumps     []int

	pending Event // Events raised by input between frames
}

// Option configures a Game.
type Option func(*Game)

// WithSource replaces the simulation RNG factory.
func WithSource(src Source) Option {
	return func(g *Game) {
		g.source = src
	}
}

// WithCosmetic replaces the RNG used for ground speckles.
func WithCosmetic(r Rand) Option {
	return func(g *Game) {
		g.cosmetic = r
	}
}

// New creates an idle game instance. The high score starts at zero and
// lives as long as the instance.
func New(cfg config.RunnerConfig, opts ...Option) *Game {
	g := &Game{
		cfg:      cfg,
		source:   defaultSource,
		cosmetic: rand.New(rand.NewSource(rand.Int63())),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.reset(0)
	g.phase = PhaseIdle
	return g
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// reset restores all per-run state.
func (g *Game) reset(seed int64) {
	g.seed = seed
	g.rng = g.source(seed)
	g.score = 0
	g.speed = g.cfg.Physics.BaseSpeed
	g.frame = 0
	g.player = Player{Y: g.groundTop()}
	g.obstacles = g.obstacles[:0]
	g.jumps = nil
	g.pending = 0

	if len(g.clouds) != len(g.cfg.Clouds.Start) {
		g.clouds = make([]Cloud, len(g.cfg.Clouds.Start))
	}
	for i, p := range g.cfg.Clouds.Start {
		g.clouds[i] = Cloud{X: p.X, Y: p.Y}
	}
}

// groundTop is the player's Y when standing on the ground.
func (g *Game) groundTop() float64 {
	return g.cfg.Surface.GroundY - g.cfg.Player.Height
}

// Start begins a new run from Idle or Over. It is ignored while running.
func (g *Game) Start(seed int64) bool {
	if g.phase == PhaseRunning {
		return false
	}
	g.reset(seed)
	g.phase = PhaseRunning
	return true
}

// Jump launches the player if running and on the ground.
// Jumping while airborne or stopped is a no-op.
func (g *Game) Jump() bool {
	if g.phase != PhaseRunning || g.player.Airborne {
		return false
	}
	g.player.VY = g.cfg.Physics.JumpForce
	g.player.Airborne = true
	g.jumps = append(g.jumps, g.frame)
	g.pending |= EventJump
	return true
}

// Advance simulates one frame. It does nothing unless the game is running.
func (g *Game) Advance() StepResult {
	if g.phase != PhaseRunning {
		return StepResult{State: g.State()}
	}

	events := g.pending
	g.pending = 0

	g.moveClouds()
	g.movePlayer()

	g.frame++
	if g.frame%g.cfg.Player.LegInterval == 0 {
		g.player.LegPhase++
	}

	g.maybeSpawn()

	// Reverse order so removal by index is safe mid-iteration
	hitbox := g.playerHitbox()
	for i := len(g.obstacles) - 1; i >= 0; i-- {
		obs := &g.obstacles[i]
		obs.X -= g.speed

		if hitbox.Intersects(obs.Hitbox(g.cfg)) {
			g.crash()
			return StepResult{State: g.State(), Events: events | EventCrash}
		}

		if !obs.Scored && obs.X+obs.Width < g.cfg.Player.X {
			obs.Scored = true
			g.score++
			events |= EventScore
		}

		if obs.X < -obs.Width {
			g.obstacles = append(g.obstacles[:i], g.obstacles[i+1:]...)
		}
	}

	if g.frame%g.cfg.Physics.SpeedEvery == 0 {
		g.speed += g.cfg.Physics.SpeedStep
	}

	return StepResult{State: g.State(), Events: events}
}

// movePlayer integrates gravity and clamps the player to the ground.
func (g *Game) movePlayer() {
	p := &g.player
	p.VY += g.cfg.Physics.Gravity
	p.Y += p.VY

	if ground := g.groundTop(); p.Y >= ground {
		p.Y = ground
		p.VY = 0
		p.Airborne = false
	}
}

// maybeSpawn adds a cactus at the right edge when the frame counter is a
// multiple of an interval re-rolled on every check. Spawning is therefore
// only roughly periodic.
func (g *Game) maybeSpawn() {
	interval := int(math.Floor(float64(g.cfg.Obstacles.SpawnBase) + g.rng.Float64()*g.cfg.Obstacles.SpawnJitter))
	if interval < 1 || g.frame%interval != 0 {
		return
	}
	g.obstacles = append(g.obstacles, Obstacle{
		X:      g.cfg.Surface.Width,
		Width:  g.cfg.Obstacles.Width,
		Height: g.cfg.Obstacles.MinHeight + g.rng.Float64()*g.cfg.Obstacles.HeightJitter,
	})
}

// crash ends the run and folds the score into the high score.
func (g *Game) crash() {
	g.phase = PhaseOver
	if g.score > g.highScore {
		g.highScore = g.score
	}
}

// playerHitbox is the player's visual bounds shrunk by the configured insets.
func (g *Game) playerHitbox() core.Box {
	p := g.cfg.Player
	return core.NewBox(p.X, g.player.Y, p.Width, p.Height).Inset(p.InsetX, p.InsetY, p.InsetY)
}

// State returns the observable game state.
func (g *Game) State() Snapshot {
	return Snapshot{
		Phase:     g.phase,
		Score:     g.score,
		HighScore: g.highScore,
		Speed:     g.speed,
		Frame:     g.frame,
	}
}

// Player returns a copy of the player state.
func (g *Game) Player() Player {
	return g.player
}

// Obstacles returns a copy of the live obstacles in spawn order.
func (g *Game) Obstacles() []Obstacle {
	return append([]Obstacle(nil), g.obstacles...)
}

// Clouds returns a copy of the cloud positions.
func (g *Game) Clouds() []Cloud {
	return append([]Cloud(nil), g.clouds...)
}

// Record returns the replay record of the current or last run.
func (g *Game) Record() Record {
	return Record{
		Seed:   g.seed,
		Frames: g.frame,
		Score:  g.score,
		Jumps:  append([]int(nil), g.jumps...),
	}
}
