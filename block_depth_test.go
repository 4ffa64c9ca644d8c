package tegraswizzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockDepth(t *testing.T) {
	assert.Equal(t, 16, blockDepth(16))
	assert.Equal(t, 1, blockDepth(1))
	assert.Equal(t, 1, blockDepth(0))
}

func TestMipBlockDepthHalvesTowardOne(t *testing.T) {
	assert.Equal(t, 16, mipBlockDepth(16, 16))
	assert.Equal(t, 1, mipBlockDepth(1, 16))

	for gobDepth := 1; gobDepth <= 16; gobDepth *= 2 {
		for levelDepth := 1; levelDepth <= 32; levelDepth++ {
			got := mipBlockDepth(levelDepth, gobDepth)
			assert.LessOrEqual(t, got, gobDepth)
			assert.GreaterOrEqual(t, got, 1)
		}
	}
}
