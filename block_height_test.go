package tegraswizzle

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBlockHeight(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 16, 32} {
		bh, ok := NewBlockHeight(n)
		assert.True(t, ok, "expected %d to be a valid block height", n)
		assert.Equal(t, BlockHeight(n), bh)
	}

	for _, n := range []int{0, 3, 5, 6, 7, 64} {
		_, ok := NewBlockHeight(n)
		assert.False(t, ok, "expected %d to be rejected", n)
	}
}

// BlockHeightMip0 values ported from the block_heights_mip0_bcn table
// derived from real nutexb assets.
func TestBlockHeightMip0(t *testing.T) {
	cases := []struct {
		heightInBlocks int
		want           BlockHeight
	}{
		{1, BlockHeightOne},
		{8, BlockHeightOne},
		{11, BlockHeightTwo},
		{16, BlockHeightTwo},
		{22, BlockHeightFour},
		{32, BlockHeightFour},
		{43, BlockHeightEight},
		{64, BlockHeightEight},
		{86, BlockHeightSixteen},
		{128, BlockHeightSixteen},
		{1024, BlockHeightSixteen},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("h=%d", c.heightInBlocks), func(t *testing.T) {
			assert.Equal(t, c.want, BlockHeightMip0(c.heightInBlocks))
		})
	}
}

func TestBlockHeightMip0NeverReturnsThirtyTwo(t *testing.T) {
	for h := 0; h < 4096; h++ {
		assert.NotEqual(t, BlockHeightThirtyTwo, BlockHeightMip0(h))
	}
}

func TestMipBlockHeightHalvesTowardOne(t *testing.T) {
	bh0 := BlockHeightSixteen
	assert.Equal(t, BlockHeightSixteen, MipBlockHeight(1024, bh0))
	assert.Equal(t, BlockHeightOne, MipBlockHeight(1, bh0))

	// Monotonicity: halving never exceeds the base level for any mip size.
	for _, bh := range []BlockHeight{BlockHeightOne, BlockHeightTwo, BlockHeightFour, BlockHeightEight, BlockHeightSixteen, BlockHeightThirtyTwo} {
		for mipH := 1; mipH <= 256; mipH++ {
			got := MipBlockHeight(mipH, bh)
			assert.LessOrEqual(t, int(got), int(bh))
			_, ok := NewBlockHeight(int(got))
			assert.True(t, ok, "mip_block_height must always produce a valid BlockHeight")
		}
	}
}
