package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Settle Sound Timing
const (
	SettleSoundDuration = 60 * time.Millisecond
	SettleSoundAttack   = 2 * time.Millisecond
	SettleSoundRelease  = 40 * time.Millisecond
)

// Rotate Sound Timing
const (
	RotateSoundDuration = 40 * time.Millisecond
	RotateSoundAttack   = 2 * time.Millisecond
	RotateSoundRelease  = 20 * time.Millisecond
)

// Clear Sound Timing
const (
	ClearSoundNote1Duration = 80 * time.Millisecond
	ClearSoundNote2Duration = 240 * time.Millisecond
	ClearSoundAttack        = 5 * time.Millisecond
	ClearSoundNote1Release  = 40 * time.Millisecond
	ClearSoundNote2Release  = 180 * time.Millisecond
)

// TopOut Sound Timing
const (
	TopOutSoundDuration = 500 * time.Millisecond
	TopOutSoundAttack   = 10 * time.Millisecond
	TopOutSoundRelease  = 400 * time.Millisecond
)
