package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/speaki-box/parameter"
	"github.com/lixenwraith/speaki-box/sprite"
)

// syllable is a pitch-stepped sine with vibrato, one step per syllable length
type syllable struct {
	rate     beep.SampleRate
	pitch    float64
	steps    []float64
	stepLen  int
	total    int
	position int
	phase    float64
}

// NewVoiceStreamer synthesizes the manifest entry as a finite stream
// Missing pitch, steps or duration fall back to defaults
func NewVoiceStreamer(v sprite.VoiceEntry, rate beep.SampleRate) beep.Streamer {
	duration := v.Duration
	if duration <= 0 {
		duration = parameter.VoiceDefaultDuration
	}
	pitch := v.Pitch
	if pitch <= 0 {
		pitch = parameter.VoiceDefaultPitch
	}
	steps := v.Steps
	if len(steps) == 0 {
		steps = []float64{1}
	}

	osc := &syllable{
		rate:    rate,
		pitch:   pitch,
		steps:   steps,
		stepLen: max(rate.N(parameter.VoiceSyllable), 1),
		total:   rate.N(duration),
	}
	return NewEnvelope(osc, duration, parameter.VoiceAttack, parameter.VoiceRelease, rate)
}

func (o *syllable) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		t := float64(o.position) / float64(o.rate)
		step := o.steps[(o.position/o.stepLen)%len(o.steps)]
		freq := o.pitch * step * (1 + parameter.VoiceVibratoDepth*math.Sin(2*math.Pi*parameter.VoiceVibratoRate*t))

		// Fundamental with a soft second harmonic
		val := 0.8*math.Sin(2*math.Pi*o.phase) + 0.2*math.Sin(4*math.Pi*o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *syllable) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	releaseStart   int
	totalSamples   int
}

// NewEnvelope shapes s over duration with linear attack and release ramps
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		releaseStart:   total - rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= e.releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain, silent at or below zero
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
