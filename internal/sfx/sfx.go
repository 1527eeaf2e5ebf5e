// Package sfx plays short synthesized reward chimes. Tones are
// generated in memory, so the binary ships no audio assets. Every
// failure is silent: a machine without a sound device loses the chimes
// and nothing else.
package sfx

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player owns the speaker. The audio device is opened lazily on the
// first chime and the outcome is memoized; a failed open disables all
// later chimes without retrying.
type Player struct {
	once sync.Once
	ok   bool
}

func NewPlayer() *Player { return &Player{} }

func (p *Player) init() bool {
	p.once.Do(func() {
		err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond))
		if err != nil {
			slog.Debug("audio device unavailable", "err", err)
			return
		}
		p.ok = true
	})
	return p.ok
}

// Ding plays the "correct answer" chime: three quick ascending sine
// notes (C5, E5, G5) overlapping 120ms apart.
func (p *Player) Ding() {
	if !p.init() {
		return
	}
	step := sampleRate.N(120 * time.Millisecond)
	speaker.Play(beep.Mix(
		note(523.25),
		beep.Seq(beep.Silence(step), note(659.25)),
		beep.Seq(beep.Silence(2*step), note(783.99)),
	))
}

// Star plays the "reward earned" sound: a triangle wave sweeping from
// 800Hz up to 1200Hz while fading out.
func (p *Player) Star() {
	if !p.init() {
		return
	}
	speaker.Play(starSweep())
}

// note is a 300ms sine tone with an exponential fade from 0.3 down to
// silence.
func note(freq float64) beep.Streamer {
	total := sampleRate.N(300 * time.Millisecond)
	var pos int
	var phase float64
	return beep.Take(total, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			t := float64(pos) / float64(total)
			gain := 0.3 * math.Pow(0.001/0.3, t)
			v := gain * math.Sin(2*math.Pi*phase)
			samples[i][0], samples[i][1] = v, v
			phase += freq / float64(sampleRate)
			if phase >= 1 {
				phase -= 1
			}
			pos++
		}
		return len(samples), true
	}))
}

// starSweep is a 300ms triangle tone whose pitch glides 800Hz -> 1200Hz
// over the first 150ms, fading from 0.25 to silence.
func starSweep() beep.Streamer {
	total := sampleRate.N(300 * time.Millisecond)
	ramp := sampleRate.N(150 * time.Millisecond)
	var pos int
	var phase float64
	return beep.Take(total, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			freq := 1200.0
			if pos < ramp {
				freq = 800 * math.Pow(1200.0/800.0, float64(pos)/float64(ramp))
			}
			t := float64(pos) / float64(total)
			gain := 0.25 * math.Pow(0.001/0.25, t)
			v := gain * triangle(phase)
			samples[i][0], samples[i][1] = v, v
			phase += freq / float64(sampleRate)
			if phase >= 1 {
				phase -= 1
			}
			pos++
		}
		return len(samples), true
	}))
}

// triangle maps a phase in [0,1) to a triangle wave in [-1,1].
func triangle(phase float64) float64 {
	return 4*math.Abs(phase-0.5) - 1
}
