package tegraswizzle

// BlockDim is the pixel footprint of one addressable "block" of a surface:
// (1,1,1) for uncompressed formats, (4,4,1) for most BCN formats. Width,
// height, and depth passed to the surface-level functions are in pixels;
// those functions divide them by the BlockDim (rounding up) to get the
// block units the per-mip math operates on, so a BC7 surface's width in
// blocks is its pixel width divided by BlockDim.Width.
type BlockDim struct {
	Width  uint32
	Height uint32
	Depth  uint32
}

// BlockDimUncompressed returns the (1,1,1) block dimension used by
// uncompressed pixel formats such as R8G8B8A8.
func BlockDimUncompressed() BlockDim {
	return BlockDim{Width: 1, Height: 1, Depth: 1}
}

// BlockDim4x4 returns the (4,4,1) block dimension shared by most
// block-compressed formats (BC1-BC7, ASTC 4x4).
func BlockDim4x4() BlockDim {
	return BlockDim{Width: 4, Height: 4, Depth: 1}
}

// NewBlockDim constructs a BlockDim, returning false if any axis is 0.
func NewBlockDim(width, height, depth uint32) (BlockDim, bool) {
	b := BlockDim{Width: width, Height: height, Depth: depth}
	return b, b.valid()
}

func (b BlockDim) valid() bool {
	return b.Width >= 1 && b.Height >= 1 && b.Depth >= 1
}
