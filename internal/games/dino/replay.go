package dino

import (
	"github.com/vovakirdan/dino-run/internal/config"
)

// ReplayResult is the outcome of re-simulating a recorded run.
type ReplayResult struct {
	Record
	Crashed bool // False when maxFrames was reached first
}

// Matches reports whether the replay reproduced the recorded outcome.
func (r ReplayResult) Matches(rec Record) bool {
	return r.Crashed && r.Score == rec.Score && r.Frames == rec.Frames
}

// Replay re-simulates rec headlessly. Each recorded jump is applied after
// that many frames have been simulated, exactly as live input is applied
// between frames. Simulation stops at the crash or after maxFrames.
func Replay(cfg config.RunnerConfig, rec Record, maxFrames int, opts ...Option) ReplayResult {
	g := New(cfg, opts...)
	g.Start(rec.Seed)

	next := 0
	for g.frame < maxFrames {
		for next < len(rec.Jumps) && rec.Jumps[next] <= g.frame {
			g.Jump()
			next++
		}
		if res := g.Advance(); !res.State.Running() {
			return ReplayResult{Record: g.Record(), Crashed: true}
		}
	}
	return ReplayResult{Record: g.Record()}
}
