// Package audio plays manifest voices through the beep speaker and reports completion
package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/speaki-box/config"
	"github.com/lixenwraith/speaki-box/core"
	"github.com/lixenwraith/speaki-box/parameter"
	"github.com/lixenwraith/speaki-box/sprite"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// playback tracks one started voice until its stream drains
type playback struct {
	done atomic.Bool
}

// Player mixes voices into a single speaker stream
// Play and Playing are called from the simulation goroutine, completion flags are set from the speaker goroutine
type Player struct {
	mu       sync.Mutex
	cfg      *config.Config
	voices   []sprite.VoiceEntry
	logger   *zap.Logger
	mixer    *beep.Mixer
	active   map[core.VoiceHandle]*playback
	next     core.VoiceHandle
	ready    bool
	live     bool
	disabled atomic.Bool
}

// NewPlayer creates a player over the live config; volumes and the enabled flag are read on every Play
func NewPlayer(cfg *config.Config, voices []sprite.VoiceEntry, logger *zap.Logger) *Player {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Player{
		cfg:    cfg,
		voices: voices,
		logger: logger.Named("audio"),
		mixer:  &beep.Mixer{},
		active: make(map[core.VoiceHandle]*playback),
	}
}

// Initialize opens the speaker; on failure the player stays silent and Play reports not started
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	p.live = true
	p.logger.Info("speaker ready", zap.Int("sample_rate", int(sampleRate)))
	return nil
}

// Close silences all voices
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	p.withSpeaker(p.mixer.Clear)
	for h, pb := range p.active {
		pb.done.Store(true)
		delete(p.active, h)
	}
	if p.live {
		speaker.Close()
	}
	p.ready = false
	p.live = false
}

// SetMuted stops new voices from starting without touching config
func (p *Player) SetMuted(muted bool) {
	p.disabled.Store(muted)
}

// Play starts voice at volume times master volume
// A zero gain still starts a silent voice so its handle drives mouth animation
// started is false when the speaker is missing, sound is off, the player is muted or the voice is unknown
func (p *Player) Play(voice core.VoiceID, volume float64) (core.VoiceHandle, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready || p.disabled.Load() || !p.cfg.Audio.Enabled {
		return 0, false
	}
	if int(voice) < 0 || int(voice) >= len(p.voices) {
		p.logger.Warn("unknown voice", zap.Int("voice", int(voice)))
		return 0, false
	}
	gain := p.cfg.Audio.Master * volume

	p.prune()
	p.next++
	h := p.next
	pb := &playback{}
	p.active[h] = pb

	s := beep.Seq(
		newVolume(NewVoiceStreamer(p.voices[voice], sampleRate), gain),
		beep.Callback(func() { pb.done.Store(true) }),
	)
	p.withSpeaker(func() { p.mixer.Add(s) })

	p.logger.Debug("voice",
		zap.String("name", p.voices[voice].Name),
		zap.Float64("gain", gain),
	)
	return h, true
}

// Playing reports whether h has not finished yet
func (p *Player) Playing(h core.VoiceHandle) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	pb, ok := p.active[h]
	return ok && !pb.done.Load()
}

// Active returns the number of voices still sounding
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, pb := range p.active {
		if !pb.done.Load() {
			n++
		}
	}
	return n
}

// prune drops finished handles, caller holds mu
func (p *Player) prune() {
	for h, pb := range p.active {
		if pb.done.Load() {
			delete(p.active, h)
		}
	}
}

func (p *Player) withSpeaker(fn func()) {
	if p.live {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}
