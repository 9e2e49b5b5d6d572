package sound

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

// tone is an oscillator whose frequency slides linearly from `from` to `to`
// over its duration. Noise ignores the frequency.
type tone struct {
	from, to float64
	wave     Wave
	rate     beep.SampleRate
	phase    float64
	position int
	length   int
	rng      *rand.Rand
}

// NewTone returns a finite streamer of the given wave. from == to gives a
// steady pitch.
func NewTone(wave Wave, from, to float64, d time.Duration, rate beep.SampleRate, seed int64) beep.Streamer {
	return &tone{
		from:   from,
		to:     to,
		wave:   wave,
		rate:   rate,
		length: rate.N(d),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.length {
			return i, i > 0
		}

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = -1
			if t.phase < 0.5 {
				v = 1
			}
		case WaveNoise:
			v = t.rng.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		progress := float64(t.position) / float64(t.length)
		freq := t.from + (t.to-t.from)*progress
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// decay scales a streamer by exp(-rate*t) after a linear attack.
type decay struct {
	streamer beep.Streamer
	attack   int
	falloff  float64
	rate     beep.SampleRate
	position int
}

// NewDecay shapes s with a short attack and an exponential tail.
func NewDecay(s beep.Streamer, attack time.Duration, falloff float64, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, attack: rate.N(attack), falloff: falloff, rate: rate}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := math.Exp(-d.falloff * float64(d.position) / float64(d.rate))
		if d.position < d.attack {
			vol *= float64(d.position) / float64(d.attack)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// gain wraps s in a linear volume. Zero or less is silence.
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
