package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// sweep is an oscillator whose frequency glides linearly from one value to
// another over its duration.
type sweep struct {
	from, to float64
	wave     Wave
	rate     beep.SampleRate
	phase    float64
	position int
	duration int
	noise    *rand.Rand
}

// NewSweep creates a tone gliding from one frequency to another.
// A constant tone is a sweep with from == to.
func NewSweep(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:     from,
		to:       to,
		wave:     wave,
		rate:     rate,
		duration: rate.N(d),
		noise:    rand.New(rand.NewSource(1)),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, false
		}

		var val float64
		switch s.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			val = 1
			if s.phase >= 0.5 {
				val = -1
			}
		case WaveNoise:
			val = s.noise.Float64()*2 - 1
		}

		// Linear decay so cues end without a click
		val *= 1 - float64(s.position)/float64(s.duration)

		samples[i][0] = val
		samples[i][1] = val

		t := float64(s.position) / float64(s.duration)
		freq := s.from + (s.to-s.from)*t
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// withVolume scales a stream; 0 and below are silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// jumpSound is a short rising chirp.
func jumpSound(rate beep.SampleRate) beep.Streamer {
	return NewSweep(420, 840, 80*time.Millisecond, WaveSquare, rate)
}

// scoreSound is two quick ascending notes.
func scoreSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		NewSweep(988, 988, 50*time.Millisecond, WaveSquare, rate),
		NewSweep(1319, 1319, 90*time.Millisecond, WaveSquare, rate),
	)
}

// crashSound is a falling thud over noise.
func crashSound(rate beep.SampleRate) beep.Streamer {
	d := 300 * time.Millisecond
	return beep.Take(rate.N(d), beep.Mix(
		withVolume(NewSweep(220, 55, d, WaveSine, rate), 0.6),
		withVolume(NewSweep(0, 0, 120*time.Millisecond, WaveNoise, rate), 0.4),
	))
}
