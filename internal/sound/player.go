// Package sound plays synthesized effects for game events.
package sound

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/warpteroids/internal/object"
)

// DefaultSampleRate is used when Config leaves SampleRate at zero.
const DefaultSampleRate = beep.SampleRate(44100)

// ErrDisabled is returned by Init when sound is switched off in the config.
var ErrDisabled = errors.New("sound: disabled")

type Config struct {
	Enabled    bool
	SampleRate beep.SampleRate
	Volume     float64 // master volume, 1 is full
	Logger     *log.Logger
}

// Player mixes effects into the speaker. Until Init succeeds it is silent
// and events are dropped, so it can always be registered as a listener.
type Player struct {
	mu     sync.Mutex
	cfg    Config
	log    *log.Logger
	mixer  *beep.Mixer
	ready  bool
	played uint64
}

func NewPlayer(cfg Config) *Player {
	if cfg.SampleRate == 0 {
		cfg.SampleRate = DefaultSampleRate
	}
	if cfg.Volume == 0 {
		cfg.Volume = 1
	}
	l := cfg.Logger
	if l == nil {
		l = log.New(io.Discard)
	}
	return &Player{
		cfg:   cfg,
		log:   l,
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker. On failure the player stays silent and the error
// is returned for the caller to report.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if !p.cfg.Enabled {
		return ErrDisabled
	}
	if err := speaker.Init(p.cfg.SampleRate, p.cfg.SampleRate.N(50*time.Millisecond)); err != nil {
		p.log.Warn("audio unavailable, continuing without sound", "err", err)
		return err
	}
	speaker.Play(p.mixer)
	p.ready = true
	p.log.Debug("audio ready", "rate", int(p.cfg.SampleRate))
	return nil
}

// OnEvent queues the effect for ev.
func (p *Player) OnEvent(ev object.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	p.played++
	effect := Effect(ev.Type, p.cfg.SampleRate, p.cfg.Volume, int64(p.played))
	if effect == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(effect)
	speaker.Unlock()
}

// Active returns the number of effects still playing.
func (p *Player) Active() int {
	speaker.Lock()
	defer speaker.Unlock()
	return p.mixer.Len()
}

// Close stops all effects and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}
