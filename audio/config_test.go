package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/pulopulo/constants"
)

func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 0.5, cfg.MasterVolume)
	assert.Equal(t, constants.AudioSampleRate, cfg.SampleRate)
	for st := SoundType(0); st < soundTypeCount; st++ {
		assert.Greater(t, cfg.EffectVolumes[st], 0.0, st.String())
		assert.LessOrEqual(t, cfg.EffectVolumes[st], 1.0, st.String())
	}
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name    string
		enabled string
		volume  string
		wantOn  bool
		wantVol float64
	}{
		{"unset", "", "", true, 0.5},
		{"disabled", "false", "", false, 0.5},
		{"volume", "", "80", true, 0.8},
		{"volume clamped high", "", "250", true, 1.0},
		{"volume clamped low", "", "-5", true, 0.0},
		{"malformed ignored", "nope", "loud", true, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvAudioEnabled, tt.enabled)
			t.Setenv(EnvMasterVolume, tt.volume)

			cfg := DefaultAudioConfig()
			cfg.ApplyEnv()
			assert.Equal(t, tt.wantOn, cfg.Enabled)
			assert.InDelta(t, tt.wantVol, cfg.MasterVolume, 1e-9)
		})
	}
}
