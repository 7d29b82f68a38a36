package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// ChimeGenerator generates a sine tone with a fast attack and exponential decay
type ChimeGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewChimeGenerator creates a chime sound generator
func NewChimeGenerator(sr beep.SampleRate, freq float64) *ChimeGenerator {
	return &ChimeGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// 5ms attack avoids the click of a hard start
		attack := math.Min(t/0.005, 1.0)
		envelope := attack * math.Exp(-t*18)

		sample := 0.25 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Odd harmonics for a harsh edge
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
