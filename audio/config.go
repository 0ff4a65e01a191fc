package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/pulopulo/constants"
)

// Environment overrides, applied on top of file configuration
const (
	EnvAudioEnabled = "PULOPULO_AUDIO_ENABLED"
	EnvMasterVolume = "PULOPULO_MASTER_VOLUME"
)

// AudioConfig controls sound output
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	SampleRate   int
	// EffectVolumes scales each effect before the master volume
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns audio settings used when nothing overrides them
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: [soundTypeCount]float64{
			SoundSettle: 0.4,
			SoundRotate: 0.25,
			SoundClear:  0.6,
			SoundTopOut: 0.7,
		},
	}
}

// ApplyEnv overrides fields from environment variables; malformed values are ignored
func (cfg *AudioConfig) ApplyEnv() {
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is given as 0-100
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.SetMasterVolume(float64(val) / 100.0)
		}
	}
}

// SetMasterVolume clamps v into 0.0-1.0
func (cfg *AudioConfig) SetMasterVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	cfg.MasterVolume = v
}
