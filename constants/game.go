package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameTimeout caps the input poll per frame (~30 FPS effective cadence)
	FrameTimeout = 32 * time.Millisecond

	// GravityFrames is the number of frames between forced downward moves
	GravityFrames = 30

	// EventChannelSize is the buffer size of the terminal event pump
	EventChannelSize = 64
)
