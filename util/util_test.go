package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasMidiSuffix(t *testing.T) {
	assert := assert.New(t)
	assert.True(HasMidiSuffix("songs/tetris.mid"))
	assert.True(HasMidiSuffix("songs/tetris.midi"))
	assert.False(HasMidiSuffix("songs/tetris.wav"))
	assert.False(HasMidiSuffix("songs/tetris.mid.bak"))
	assert.False(HasMidiSuffix(""))
}

func TestCeilDiv(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, CeilDiv(0, 8))
	assert.Equal(1, CeilDiv(1, 8))
	assert.Equal(1, CeilDiv(8, 8))
	assert.Equal(2, CeilDiv(9, 8))
}

func TestMinMaxSum(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint32(3), Min[uint32](3, 7))
	assert.Equal(uint32(7), Max[uint32](3, 7))
	assert.Equal(uint64(10), Sum([]uint32{1, 2, 3, 4}))
}
