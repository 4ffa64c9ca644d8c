package tegraswizzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGobOffsetCoversWholeGobExactlyOnce(t *testing.T) {
	seen := make(map[int]bool, gobSize)
	for y := 0; y < gobHeight; y++ {
		for x := 0; x < gobWidth; x++ {
			off := gobOffset(x, y)
			assert.GreaterOrEqual(t, off, 0)
			assert.Less(t, off, gobSize)
			assert.False(t, seen[off], "gobOffset produced a duplicate offset %d", off)
			seen[off] = true
		}
	}
	assert.Len(t, seen, gobSize)
}

func TestGobOffsetOrigin(t *testing.T) {
	assert.Equal(t, 0, gobOffset(0, 0))
}

func TestGobAddressXStepsByBlockSize(t *testing.T) {
	blockSize := gobSize * 1 * 2 * 1
	assert.Equal(t, 0, gobAddressX(0, blockSize))
	assert.Equal(t, blockSize, gobAddressX(gobWidth, blockSize))
	assert.Equal(t, 2*blockSize, gobAddressX(2*gobWidth, blockSize))
}
