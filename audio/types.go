package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundSettle SoundType = iota // Puyo came to rest
	SoundRotate                  // Child moved around the anchor
	SoundClear                   // Group removed
	SoundTopOut                  // Spawn cell blocked, game over
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"settle", "rotate", "clear", "topout"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled")
)
