package game

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/solar-orbits/internal/config"
	"github.com/iburimskiy/solar-orbits/internal/logging"
)

// chime is a sine burst with a quadratic fade out. Once handed to the
// speaker it is only touched by the speaker goroutine.
type chime struct {
	freq   float64
	rate   float64
	volume float64
	pos    int
	length int
}

func newChime(sr beep.SampleRate, freq float64, d time.Duration, volume float64) *chime {
	return &chime{
		freq:   freq,
		rate:   float64(sr),
		volume: volume,
		length: sr.N(d),
	}
}

func (c *chime) Stream(samples [][2]float64) (int, bool) {
	if c.pos >= c.length {
		return 0, false
	}
	n := 0
	for i := range samples {
		if c.pos >= c.length {
			break
		}
		env := 1 - float64(c.pos)/float64(c.length)
		v := math.Sin(2*math.Pi*c.freq*float64(c.pos)/c.rate) * env * env * c.volume
		samples[i] = [2]float64{v, v}
		c.pos++
		n++
	}
	return n, true
}

func (c *chime) Err() error { return nil }

// chimePlayer opens the speaker on first use. If that fails the chime is
// disabled for the rest of the run.
type chimePlayer struct {
	log        *logging.Logger
	sampleRate beep.SampleRate
	initDone   bool
	disabled   bool
}

func newChimePlayer(log *logging.Logger) *chimePlayer {
	return &chimePlayer{log: log, sampleRate: beep.SampleRate(config.ChimeSampleRate)}
}

func (p *chimePlayer) Play() {
	if p.disabled {
		return
	}
	if !p.initDone {
		if err := speaker.Init(p.sampleRate, p.sampleRate.N(time.Second/20)); err != nil {
			p.log.Warn("speaker unavailable, pick chime disabled: %v", err)
			p.disabled = true
			return
		}
		p.initDone = true
	}
	d := time.Duration(config.ChimeDuration * float64(time.Second))
	speaker.Play(newChime(p.sampleRate, config.ChimeFrequency, d, config.ChimeVolume))
}
