package engine

import (
	"errors"
	"math/rand"
	"time"

	"github.com/lixenwraith/pulopulo/constants"
)

// Hooks are invoked synchronously from the mutating call that triggers them
// Any hook may be nil
type Hooks struct {
	OnSpawn  func(anchor, child Puyo)
	OnSettle func(p Puyo)
	OnRotate func(child Puyo)
	OnClear  func(groups []Group)
	OnTopOut func()
}

func (h *Hooks) spawned(anchor, child Puyo) {
	if h.OnSpawn != nil {
		h.OnSpawn(anchor, child)
	}
}

func (h *Hooks) settled(p Puyo) {
	if h.OnSettle != nil {
		h.OnSettle(p)
	}
}

func (h *Hooks) rotated(child Puyo) {
	if h.OnRotate != nil {
		h.OnRotate(child)
	}
}

func (h *Hooks) cleared(groups []Group) {
	if h.OnClear != nil {
		h.OnClear(groups)
	}
}

func (h *Hooks) toppedOut() {
	if h.OnTopOut != nil {
		h.OnTopOut()
	}
}

// GameState is the complete board simulation
// Not safe for concurrent use; the frame loop owns it
type GameState struct {
	Pieces *PieceSet
	Hooks  Hooks

	// Frame counts Tick calls
	Frame int

	// Over is set when a new pair cannot spawn
	Over bool

	gravityFrames int
	rng           *rand.Rand

	// Falling pair identity, stable across compaction
	anchorID uint64
	childID  uint64

	// Rotation state: last child displacement and active sign-flip convention
	kick       Point
	kickToggle bool
}

// NewGameState creates an empty board; a nil rng is seeded from the clock
func NewGameState(rng *rand.Rand) *GameState {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &GameState{
		Pieces:        NewPieceSet(),
		gravityFrames: constants.GravityFrames,
		rng:           rng,
		kick:          spawnKick,
	}
}

// SetGravityFrames sets the number of frames between forced down moves, minimum 1
func (g *GameState) SetGravityFrames(n int) {
	if n < 1 {
		n = 1
	}
	g.gravityFrames = n
}

// GravityFrames returns the gravity period in frames
func (g *GameState) GravityFrames() int {
	return g.gravityFrames
}

// Anchor returns the anchor index while it is active
func (g *GameState) Anchor() (int, bool) {
	return g.activeIndex(g.anchorID)
}

// Child returns the child index while it is active
func (g *GameState) Child() (int, bool) {
	return g.activeIndex(g.childID)
}

func (g *GameState) activeIndex(id uint64) (int, bool) {
	if id == 0 {
		return -1, false
	}
	i := g.Pieces.IndexOf(id)
	if i < 0 || !g.Pieces.puyos[i].Active {
		return -1, false
	}
	return i, true
}

// Spawn places a new falling pair and resets the rotation state
// ErrSpawnBlocked ends the game
func (g *GameState) Spawn() error {
	ai, ci, err := g.Pieces.SpawnPair(g.rng)
	if err != nil {
		if errors.Is(err, ErrSpawnBlocked) || errors.Is(err, ErrBoardFull) {
			g.Over = true
			g.Hooks.toppedOut()
		}
		return err
	}
	g.anchorID = g.Pieces.puyos[ai].ID
	g.childID = g.Pieces.puyos[ci].ID
	g.kick = spawnKick
	g.kickToggle = false
	g.Hooks.spawned(g.Pieces.puyos[ai], g.Pieces.puyos[ci])
	return nil
}

// ResolveMatches clears every settled group of MatchSize or more
func (g *GameState) ResolveMatches() []Group {
	groups := g.Pieces.ResolveMatches(constants.MatchSize)
	if len(groups) > 0 {
		g.Hooks.cleared(groups)
	}
	return groups
}

// Tick advances one frame: gravity on every gravityFrames-th frame, then match
// resolution, then a spawn when nothing is falling
// Matches resolve before the spawn so a clearable group never outlives its frame
func (g *GameState) Tick() {
	if g.Over {
		return
	}
	g.Frame++
	if g.Frame%g.gravityFrames == 0 {
		g.Move(Down)
	}
	g.ResolveMatches()
	if !g.Pieces.AnyActive() {
		_ = g.Spawn()
	}
}
