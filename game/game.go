// Package game runs the frame loop that ties input, simulation, rendering and sound together
package game

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pulopulo/constants"
	"github.com/lixenwraith/pulopulo/engine"
	"github.com/lixenwraith/pulopulo/input"
	"github.com/lixenwraith/pulopulo/render"
)

// KeySource yields at most one key per call, waiting no longer than timeout
// Resized reports and clears a terminal resize seen since the last call
type KeySource interface {
	PollKey(timeout time.Duration) (*tcell.EventKey, bool)
	Resized() bool
	Closed() bool
}

// Sentinel errors
var (
	ErrNoSurface = errors.New("game: surface required")
	ErrNoEvents  = errors.New("game: event source required")
)

// Sound receives gameplay cues; audio.SoundManager satisfies it
type Sound interface {
	PlaySettle()
	PlayRotate()
	PlayClear()
	PlayTopOut()
}

type silent struct{}

func (silent) PlaySettle() {}
func (silent) PlayRotate() {}
func (silent) PlayClear()  {}
func (silent) PlayTopOut() {}

// Options wires the loop collaborators
// Surface and Events are required; a nil State, Keys or Sound falls back to a
// clock-seeded board, the default key table and silence
type Options struct {
	State        *engine.GameState
	Surface      render.Surface
	Events       KeySource
	Keys         *input.KeyTable
	Sound        Sound
	FrameTimeout time.Duration
}

// Game owns the simulation for the lifetime of the loop
type Game struct {
	state        *engine.GameState
	surface      render.Surface
	events       KeySource
	keys         *input.KeyTable
	sound        Sound
	frameTimeout time.Duration
	quit         bool
}

// New builds a game and installs its hooks on the state
func New(opts Options) (*Game, error) {
	if opts.Surface == nil {
		return nil, ErrNoSurface
	}
	if opts.Events == nil {
		return nil, ErrNoEvents
	}
	g := &Game{
		state:        opts.State,
		surface:      opts.Surface,
		events:       opts.Events,
		keys:         opts.Keys,
		sound:        opts.Sound,
		frameTimeout: opts.FrameTimeout,
	}
	if g.state == nil {
		g.state = engine.NewGameState(nil)
	}
	if g.keys == nil {
		g.keys = input.DefaultKeyTable()
	}
	if g.sound == nil {
		g.sound = silent{}
	}
	if g.frameTimeout <= 0 {
		g.frameTimeout = constants.FrameTimeout
	}
	g.installHooks()
	return g, nil
}

func (g *Game) installHooks() {
	g.state.Hooks = engine.Hooks{
		OnSpawn: func(anchor, child engine.Puyo) {
			log.Printf("spawn %s/%s at %v", anchor.Color, child.Color, anchor.Pos)
		},
		OnSettle: func(engine.Puyo) {
			g.sound.PlaySettle()
		},
		OnRotate: func(engine.Puyo) {
			g.sound.PlayRotate()
		},
		OnClear: func(groups []engine.Group) {
			for _, grp := range groups {
				log.Printf("clear %d %s", len(grp.Cells), grp.Color)
			}
			g.sound.PlayClear()
		},
		OnTopOut: func() {
			log.Printf("top out at frame %d", g.state.Frame)
			g.sound.PlayTopOut()
		},
	}
}

// State exposes the simulation for inspection
func (g *Game) State() *engine.GameState {
	return g.state
}

// Quit reports whether a quit command was received
func (g *Game) Quit() bool {
	return g.quit
}

// Apply executes one intent against the simulation
func (g *Game) Apply(intent input.Intent) {
	switch intent {
	case input.IntentQuit:
		g.quit = true
	case input.IntentRotate:
		g.state.Rotate(true)
	case input.IntentLeft:
		g.state.Move(engine.Left)
	case input.IntentRight:
		g.state.Move(engine.Right)
	case input.IntentDown:
		g.state.Move(engine.Down)
	}
}

// Frame runs one loop iteration: poll, apply, repaint on resize, draw, tick
// Returns false once the loop should stop
func (g *Game) Frame() bool {
	if ev, ok := g.events.PollKey(g.frameTimeout); ok {
		g.Apply(g.keys.Lookup(ev))
	}
	if g.quit || g.events.Closed() {
		return false
	}
	if g.events.Resized() {
		g.surface.Sync()
	}
	render.DrawBoard(g.surface, g.state)
	g.state.Tick()
	return true
}

// Run drives frames until quit, event source shutdown, or ctx cancellation
func (g *Game) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		if !g.Frame() {
			return nil
		}
	}
}
