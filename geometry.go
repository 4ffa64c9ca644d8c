// Package tegraswizzle converts raw texture surface bytes between linear
// (row-major) and block-linear (tiled) memory layouts used by the Tegra X1
// GPU's texture unit. The package is a pure, in-memory transform: it never
// touches a file, a device, or a container format, and it never interprets
// the pixel data it moves around.
package tegraswizzle

const (
	// gobWidth is the width in bytes of a Group Of Bytes, the atomic tile
	// of the block-linear layout.
	gobWidth = 64
	// gobHeight is the height in bytes (rows) of a GOB.
	gobHeight = 8
	// gobSize is the total size in bytes of a GOB (gobWidth * gobHeight).
	gobSize = gobWidth * gobHeight
)

// divRoundUp returns ceil(x/d) using integer arithmetic. d must be positive.
func divRoundUp(x, d int) int {
	return (x + d - 1) / d
}

// roundUp rounds x up to the nearest multiple of n. n must be positive.
func roundUp(x, n int) int {
	return divRoundUp(x, n) * n
}

// widthInGobs returns the number of whole GOBs needed to cover a row of
// widthInBlocks blocks at bytesPerPixel bytes each.
func widthInGobs(widthInBlocks, bytesPerPixel int) int {
	return divRoundUp(widthInBlocks*bytesPerPixel, gobWidth)
}

// heightInBlocks returns the number of block-height-sized bands needed to
// cover heightInBlocks rows, where each band is blockHeightGobs GOBs tall.
func heightInBlocks(heightInBlocks, blockHeightGobs int) int {
	return divRoundUp(heightInBlocks, blockHeightGobs*gobHeight)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
