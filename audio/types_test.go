package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSoundTypeString(t *testing.T) {
	assert.Equal(t, "settle", SoundSettle.String())
	assert.Equal(t, "rotate", SoundRotate.String())
	assert.Equal(t, "clear", SoundClear.String())
	assert.Equal(t, "topout", SoundTopOut.String())
	assert.Equal(t, "unknown", SoundType(-1).String())
	assert.Equal(t, "unknown", soundTypeCount.String())
}
