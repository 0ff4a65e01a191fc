package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/pulopulo/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a wave generator that ends after duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = -1.0
			if o.phase < 0.5 {
				val = 1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	releaseStart   int
	totalSamples   int
}

// NewEnvelope shapes s over duration; the sustain segment is whatever attack
// and release leave over
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	start := total - rel
	if start < att {
		start = att
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		releaseStart:   start,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= e.releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; math.Log2(0) is -Inf so zero maps to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func (cfg *AudioConfig) volume(t SoundType) float64 {
	return cfg.EffectVolumes[t] * cfg.MasterVolume
}

// CreateSettleSound is a short low thud
func CreateSettleSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(110.0, constants.SettleSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.SettleSoundDuration, constants.SettleSoundAttack, constants.SettleSoundRelease, rate)

	return newVolume(shaped, cfg.volume(SoundSettle))
}

// CreateRotateSound is a quick high tick
func CreateRotateSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(1320.0, constants.RotateSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.RotateSoundDuration, constants.RotateSoundAttack, constants.RotateSoundRelease, rate)

	return newVolume(shaped, cfg.volume(SoundRotate))
}

// CreateClearSound is a rising two-note chime
func CreateClearSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// C6
	n1 := NewOscillator(1046.50, constants.ClearSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.ClearSoundNote1Duration, constants.ClearSoundAttack, constants.ClearSoundNote1Release, rate)

	// G6
	n2 := NewOscillator(1567.98, constants.ClearSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.ClearSoundNote2Duration, constants.ClearSoundAttack, constants.ClearSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.volume(SoundClear))
}

// CreateTopOutSound is a falling saw layered with noise
func CreateTopOutSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	saw := NewOscillator(80.0, constants.TopOutSoundDuration, WaveSaw, rate)
	sawShaped := NewEnvelope(saw, constants.TopOutSoundDuration, constants.TopOutSoundAttack, constants.TopOutSoundRelease, rate)

	noise := NewOscillator(0, constants.TopOutSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constants.TopOutSoundDuration, constants.TopOutSoundAttack, constants.TopOutSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(sawShaped, 0.7),
		newVolume(noiseShaped, 0.3),
	)
	return newVolume(mixed, cfg.volume(SoundTopOut))
}

// GetSoundEffect returns a fresh streamer for soundType, nil when unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundSettle:
		return CreateSettleSound(cfg)
	case SoundRotate:
		return CreateRotateSound(cfg)
	case SoundClear:
		return CreateClearSound(cfg)
	case SoundTopOut:
		return CreateTopOutSound(cfg)
	default:
		return nil
	}
}
