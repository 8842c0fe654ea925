package core

// RuntimeConfig contains configuration passed to the host at initialization.
// The host uses it to size the screen and to seed deterministic runs.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TickRate  int   // Frames per second requested from the host clock (default 60)
	Seed      int64 // RNG seed for the first run, used when FixedSeed is set
	FixedSeed bool  // Without it runs are seeded from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
