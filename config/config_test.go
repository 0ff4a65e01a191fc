package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pulopulo/audio"
	"github.com/lixenwraith/pulopulo/constants"
	"github.com/lixenwraith/pulopulo/input"
)

func writeConfig(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pulopulo.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestDefaultMatchesConstants(t *testing.T) {
	cfg := Default()

	assert.Equal(t, constants.GravityFrames, cfg.GravityFrames)
	assert.Equal(t, constants.FrameTimeout, cfg.FrameTimeout)
	assert.True(t, cfg.SoftDrop)
	assert.Zero(t, cfg.Seed)
	assert.Equal(t, Keys{Quit: "q", Rotate: "u", Left: "a", Right: "d", Down: "s"}, cfg.Keys)
	assert.Equal(t, audio.DefaultAudioConfig(), cfg.Audio)
	assert.NoError(t, cfg.Validate())
}

func TestLoadEmptyPath(t *testing.T) {
	t.Setenv(audio.EnvAudioEnabled, "")
	t.Setenv(audio.EnvMasterVolume, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(audio.EnvAudioEnabled, "")
	t.Setenv(audio.EnvMasterVolume, "")

	path := writeConfig(t, `
gravity_frames   = 10
frame_timeout_ms = 16
soft_drop        = false
seed             = 42

keys {
  rotate = "w"
  left   = "h"
}

audio {
  enabled       = false
  master_volume = 0.25
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.GravityFrames)
	assert.Equal(t, 16*time.Millisecond, cfg.FrameTimeout)
	assert.False(t, cfg.SoftDrop)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "w", cfg.Keys.Rotate)
	assert.Equal(t, "h", cfg.Keys.Left)
	assert.Equal(t, "d", cfg.Keys.Right, "unset keys keep defaults")
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 0.25, cfg.Audio.MasterVolume)
}

func TestDefaultsInExpressions(t *testing.T) {
	cfg, err := Parse([]byte(`
gravity_frames   = default.gravity_frames / 2
frame_timeout_ms = default.frame_timeout_ms * 2

audio {
  master_volume = default.master_volume / 2
}
`), "test.hcl")
	require.NoError(t, err)

	assert.Equal(t, constants.GravityFrames/2, cfg.GravityFrames)
	assert.Equal(t, 2*constants.FrameTimeout, cfg.FrameTimeout)
	assert.InDelta(t, 0.25, cfg.Audio.MasterVolume, 1e-9)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv(audio.EnvAudioEnabled, "true")
	t.Setenv(audio.EnvMasterVolume, "90")

	path := writeConfig(t, `
audio {
  enabled       = false
  master_volume = 0.1
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Audio.Enabled)
	assert.InDelta(t, 0.9, cfg.Audio.MasterVolume, 1e-9)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax", `gravity_frames = `},
		{"unknown attribute", `speed = 3`},
		{"wrong type", `gravity_frames = "fast"`},
		{"zero gravity", `gravity_frames = 0`},
		{"negative timeout", `frame_timeout_ms = -1`},
		{"volume range", "audio {\n  master_volume = 2\n}\n"},
		{"multi-char key", "keys {\n  quit = \"qq\"\n}\n"},
		{"empty key", "keys {\n  left = \"\"\n}\n"},
		{"duplicate key", "keys {\n  left = \"d\"\n}\n"},
		{"unknown variable", `gravity_frames = speed * 2`},
		{"unknown action", "keys {\n  jump = \"j\"\n}\n"},
		{"nested block in keys", "keys {\n  extra {\n  }\n}\n"},
		{"fractional frames", `gravity_frames = default.gravity_frames / 4`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.src))
			assert.Error(t, err)
		})
	}
}

func TestValidationErrorsAreTyped(t *testing.T) {
	_, err := Parse([]byte(`gravity_frames = 0`), "test.hcl")
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Parse([]byte("keys {\n  jump = \"j\"\n}\n"), "test.hcl")
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorContains(t, err, "jump")
}

func TestKeysBlockByActionName(t *testing.T) {
	cfg, err := Parse([]byte(`
keys {
  quit   = "x"
  rotate = "k"
  down   = "j"
}
`), "test.hcl")
	require.NoError(t, err)
	assert.Equal(t, Keys{Quit: "x", Rotate: "k", Left: "a", Right: "d", Down: "j"}, cfg.Keys)
}

func TestSoftDropDisabledUnbindsDefaultKey(t *testing.T) {
	cfg, err := Parse([]byte(`soft_drop = false`), "test.hcl")
	require.NoError(t, err)

	kt, err := cfg.KeyTable()
	require.NoError(t, err)
	assert.Equal(t, input.IntentNone, kt.Lookup(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone)))
	for _, intent := range kt.Runes {
		assert.NotEqual(t, input.IntentDown, intent)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSoftDropDisabledFreesKey(t *testing.T) {
	cfg, err := Parse([]byte("soft_drop = false\nkeys {\n  rotate = \"s\"\n}\n"), "test.hcl")
	require.NoError(t, err, "down key is unused without soft drop")

	kt, err := cfg.KeyTable()
	require.NoError(t, err)
	assert.Equal(t, input.IntentRotate, kt.Lookup(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone)))
	assert.Equal(t, input.IntentNone, kt.Lookup(tcell.NewEventKey(tcell.KeyRune, 'u', tcell.ModNone)))
}

func TestKeyTableFromConfig(t *testing.T) {
	cfg := Default()
	cfg.Keys.Left = "h"
	cfg.Keys.Right = "l"

	kt, err := cfg.KeyTable()
	require.NoError(t, err)

	lookup := func(r rune) input.Intent {
		return kt.Lookup(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	assert.Equal(t, input.IntentLeft, lookup('h'))
	assert.Equal(t, input.IntentRight, lookup('l'))
	assert.Equal(t, input.IntentNone, lookup('a'))
	assert.Equal(t, input.IntentNone, lookup('d'))
	assert.Equal(t, input.IntentDown, lookup('s'))
	assert.Equal(t, input.IntentQuit, kt.Lookup(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}
