// Package audio plays short generated sound cues for runner events.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/dino-run/internal/core"
	"github.com/vovakirdan/dino-run/internal/games/dino"
)

const sampleRate = beep.SampleRate(44100)

// output is where cue streams go. The speaker in production.
type output interface {
	Init() error
	Play(s beep.Streamer)
	Clear()
}

// speakerOutput routes a mixer to the system speaker.
type speakerOutput struct {
	mixer *beep.Mixer
}

func (o *speakerOutput) Init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(o.mixer)
	return nil
}

func (o *speakerOutput) Play(s beep.Streamer) {
	speaker.Lock()
	o.mixer.Add(s)
	speaker.Unlock()
}

func (o *speakerOutput) Clear() {
	speaker.Lock()
	o.mixer.Clear()
	speaker.Unlock()
}

// Cues maps frame events to sounds. Cues that are not initialized, are
// muted, or are nil stay silent.
type Cues struct {
	mu          sync.Mutex
	out         output
	volume      float64
	muted       bool
	initialized bool
}

// NewCues creates cues playing through the system speaker at volume (0..1).
func NewCues(volume float64) *Cues {
	return &Cues{
		out:    &speakerOutput{mixer: &beep.Mixer{}},
		volume: core.ClampF(volume, 0, 1),
	}
}

// Initialize opens the audio device. Safe to call more than once.
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := c.out.Init(); err != nil {
		return fmt.Errorf("audio: cannot init speaker: %w", err)
	}
	c.initialized = true
	return nil
}

// Play queues the sounds for every event in e. The crash cue replaces the others.
func (c *Cues) Play(e dino.Event) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || c.muted || e == 0 {
		return
	}

	if e.Has(dino.EventCrash) {
		c.out.Play(withVolume(crashSound(sampleRate), c.volume))
		return
	}
	if e.Has(dino.EventJump) {
		c.out.Play(withVolume(jumpSound(sampleRate), c.volume))
	}
	if e.Has(dino.EventScore) {
		c.out.Play(withVolume(scoreSound(sampleRate), c.volume))
	}
}

// ToggleMute flips muting and returns the new state.
func (c *Cues) ToggleMute() bool {
	if c == nil {
		return true
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.muted = !c.muted
	if c.muted && c.initialized {
		c.out.Clear()
	}
	return c.muted
}

// Muted reports whether cues are silenced.
func (c *Cues) Muted() bool {
	if c == nil {
		return true
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted || !c.initialized
}

// Close stops all sounds.
// beep has no speaker shutdown, clearing the mixer is enough.
func (c *Cues) Close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	c.out.Clear()
	c.initialized = false
}
