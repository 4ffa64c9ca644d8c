package tegraswizzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlignLayerSizeIsIdempotentOnceAligned(t *testing.T) {
	size := alignLayerSize(12345, 128, 1, BlockHeightSixteen, 1)
	assert.Zero(t, size%gobSize)

	again := alignLayerSize(size, 128, 1, BlockHeightSixteen, 1)
	assert.Equal(t, size, again)
}

func TestAlignLayerSizeNeverShrinks(t *testing.T) {
	for _, raw := range []int{0, 1, 511, 512, 513, 99999} {
		aligned := alignLayerSize(raw, 64, 1, BlockHeightEight, 1)
		assert.GreaterOrEqual(t, aligned, raw)
	}
}
