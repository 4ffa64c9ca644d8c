package tegraswizzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDivRoundUp(t *testing.T) {
	assert.Equal(t, 0, divRoundUp(0, 8))
	assert.Equal(t, 1, divRoundUp(1, 8))
	assert.Equal(t, 1, divRoundUp(8, 8))
	assert.Equal(t, 2, divRoundUp(9, 8))
}

func TestRoundUp(t *testing.T) {
	assert.Equal(t, 0, roundUp(0, 512))
	assert.Equal(t, 512, roundUp(1, 512))
	assert.Equal(t, 512, roundUp(512, 512))
	assert.Equal(t, 1024, roundUp(513, 512))
}

func TestWidthInGobs(t *testing.T) {
	// 64 pixels * 4 bytes/pixel = 256 bytes = 4 GOBs exactly.
	assert.Equal(t, 4, widthInGobs(64, 4))
	// One pixel (4 bytes) past a GOB boundary still needs a whole extra GOB.
	assert.Equal(t, 5, widthInGobs(65, 4))
}

func TestHeightInBlocks(t *testing.T) {
	// block_height=2 GOBs -> 16-byte-row bands.
	assert.Equal(t, 1, heightInBlocks(16, 2))
	assert.Equal(t, 2, heightInBlocks(17, 2))
}
