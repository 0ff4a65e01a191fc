// Package config loads game settings from an HCL file with environment overrides
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/lixenwraith/pulopulo/audio"
	"github.com/lixenwraith/pulopulo/constants"
	"github.com/lixenwraith/pulopulo/input"
)

// ErrInvalid is wrapped by every error for a rejected config value
var ErrInvalid = errors.New("invalid config")

// Keys holds one single-character binding per action
type Keys struct {
	Quit   string
	Rotate string
	Left   string
	Right  string
	Down   string
}

// field returns the binding slot for intent, nil for IntentNone
func (k *Keys) field(intent input.Intent) *string {
	switch intent {
	case input.IntentQuit:
		return &k.Quit
	case input.IntentRotate:
		return &k.Rotate
	case input.IntentLeft:
		return &k.Left
	case input.IntentRight:
		return &k.Right
	case input.IntentDown:
		return &k.Down
	}
	return nil
}

// Config is the resolved game configuration
type Config struct {
	GravityFrames int
	FrameTimeout  time.Duration
	SoftDrop      bool

	// Seed fixes the color sequence; 0 seeds from the clock
	Seed int64

	Keys  Keys
	Audio *audio.AudioConfig
}

// Default mirrors constants and the default key table
func Default() *Config {
	return &Config{
		GravityFrames: constants.GravityFrames,
		FrameTimeout:  constants.FrameTimeout,
		SoftDrop:      true,
		Keys: Keys{
			Quit:   "q",
			Rotate: "u",
			Left:   "a",
			Right:  "d",
			Down:   "s",
		},
		Audio: audio.DefaultAudioConfig(),
	}
}

// hclFile is the decoding target; pointers distinguish absent attributes
type hclFile struct {
	GravityFrames  *int      `hcl:"gravity_frames,optional"`
	FrameTimeoutMS *int      `hcl:"frame_timeout_ms,optional"`
	SoftDrop       *bool     `hcl:"soft_drop,optional"`
	Seed           *int64    `hcl:"seed,optional"`
	Keys           *hclKeys  `hcl:"keys,block"`
	Audio          *hclAudio `hcl:"audio,block"`
}

// hclKeys is decoded attribute by attribute; names are action names
type hclKeys struct {
	Body hcl.Body `hcl:",remain"`
}

type hclAudio struct {
	Enabled      *bool    `hcl:"enabled,optional"`
	MasterVolume *float64 `hcl:"master_volume,optional"`
}

// Load reads path over the defaults, then applies audio environment overrides
// An empty path skips the file
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := cfg.merge(src, path); err != nil {
			return nil, err
		}
	}
	cfg.Audio.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes HCL source over the defaults without consulting the environment
func Parse(src []byte, filename string) (*Config, error) {
	cfg := Default()
	if err := cfg.merge(src, filename); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) merge(src []byte, filename string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var parsed hclFile
	evalCtx := defaultsContext()
	diags = gohcl.DecodeBody(file.Body, evalCtx, &parsed)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	setInt(&c.GravityFrames, parsed.GravityFrames)
	if parsed.FrameTimeoutMS != nil {
		c.FrameTimeout = time.Duration(*parsed.FrameTimeoutMS) * time.Millisecond
	}
	if parsed.SoftDrop != nil {
		c.SoftDrop = *parsed.SoftDrop
	}
	if parsed.Seed != nil {
		c.Seed = *parsed.Seed
	}

	if parsed.Keys != nil {
		if err := c.mergeKeys(parsed.Keys.Body, evalCtx); err != nil {
			return err
		}
	}

	if a := parsed.Audio; a != nil {
		if a.Enabled != nil {
			c.Audio.Enabled = *a.Enabled
		}
		if a.MasterVolume != nil {
			if *a.MasterVolume < 0 || *a.MasterVolume > 1 {
				return fmt.Errorf("%w: master_volume %v outside 0..1", ErrInvalid, *a.MasterVolume)
			}
			c.Audio.MasterVolume = *a.MasterVolume
		}
	}
	return nil
}

// defaultsContext exposes the built-in values as default.*, so a file can say
// gravity_frames = default.gravity_frames / 2
func defaultsContext() *hcl.EvalContext {
	d := Default()
	vars := map[string]cty.Value{
		"default": cty.ObjectVal(map[string]cty.Value{
			"gravity_frames":   cty.NumberIntVal(int64(d.GravityFrames)),
			"frame_timeout_ms": cty.NumberIntVal(d.FrameTimeout.Milliseconds()),
			"master_volume":    cty.NumberFloatVal(d.Audio.MasterVolume),
		}),
	}
	return &hcl.EvalContext{Variables: vars}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// mergeKeys applies keys { <action> = "<char>" }; unknown actions are rejected
func (c *Config) mergeKeys(body hcl.Body, evalCtx *hcl.EvalContext) error {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode keys block: %w", diags)
	}
	for name, attr := range attrs {
		intent, ok := input.ParseIntent(name)
		if !ok {
			return fmt.Errorf("%w: unknown action %q in keys block", ErrInvalid, name)
		}
		var key string
		if diags := gohcl.DecodeExpression(attr.Expr, evalCtx, &key); diags.HasErrors() {
			return fmt.Errorf("failed to decode key for %s: %w", name, diags)
		}
		*c.Keys.field(intent) = key
	}
	return nil
}

// Validate rejects values the game loop cannot run with
func (c *Config) Validate() error {
	if c.GravityFrames < 1 {
		return fmt.Errorf("%w: gravity_frames must be at least 1, got %d", ErrInvalid, c.GravityFrames)
	}
	if c.FrameTimeout <= 0 {
		return fmt.Errorf("%w: frame_timeout_ms must be positive, got %v", ErrInvalid, c.FrameTimeout)
	}

	seen := make(map[string]string)
	for _, b := range c.bindings() {
		if !c.SoftDrop && b.intent == input.IntentDown {
			continue
		}
		if utf8.RuneCountInString(b.key) != 1 {
			return fmt.Errorf("%w: key for %s must be a single character, got %q", ErrInvalid, b.intent, b.key)
		}
		if prev, ok := seen[b.key]; ok {
			return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, b.key, prev, b.intent)
		}
		seen[b.key] = b.intent.String()
	}
	return nil
}

type binding struct {
	key    string
	intent input.Intent
}

func (c *Config) bindings() []binding {
	return []binding{
		{c.Keys.Quit, input.IntentQuit},
		{c.Keys.Rotate, input.IntentRotate},
		{c.Keys.Left, input.IntentLeft},
		{c.Keys.Right, input.IntentRight},
		{c.Keys.Down, input.IntentDown},
	}
}

// KeyTable builds the input bindings; Esc and Ctrl-C always quit
func (c *Config) KeyTable() (*input.KeyTable, error) {
	kt := input.DefaultKeyTable()
	for _, b := range c.bindings() {
		if !c.SoftDrop && b.intent == input.IntentDown {
			continue
		}
		if err := kt.Bind(b.key, b.intent); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	if !c.SoftDrop {
		kt.Unbind(input.IntentDown)
	}
	return kt, nil
}
