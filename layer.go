package tegraswizzle

// alignLayerSize pads one array layer's swizzled size up to the surface's
// GOB-block granularity, matching the padding the GPU driver applies when
// packing cube maps and 2D arrays one after another. height and depth are
// the surface's own dimensions, not mip-adjusted; blockHeightMip0 is the
// block height chosen for the base mip level, and depthInGobs is the
// block depth in GOBs (always 1 for every shape this core constructs).
//
// gobBlocksInTileX distinguishes sparse-texture tiling from the ordinary
// one-GOB-wide case. The core only ever builds surfaces with
// gobBlocksInTileX == 1 and the >= 2 branch is unreached by any caller,
// but it costs nothing to keep for a future sparse-texture path.
func alignLayerSize(layerSize, height, depth int, blockHeightMip0 BlockHeight, depthInGobs int) int {
	const gobBlocksInTileX = 1

	size := layerSize
	gobHeightVal := int(blockHeightMip0)
	gobDepthVal := depthInGobs

	if gobBlocksInTileX < 2 {
		for height <= (gobHeightVal/2)*gobHeight && gobHeightVal > 1 {
			gobHeightVal /= 2
		}
		for depth <= gobDepthVal/2 && gobDepthVal > 1 {
			gobDepthVal /= 2
		}

		blockOfGobsSize := gobHeightVal * gobDepthVal * gobSize
		sizeInBlockOfGobs := size / blockOfGobsSize
		if size != sizeInBlockOfGobs*blockOfGobsSize {
			size = (sizeInBlockOfGobs + 1) * blockOfGobsSize
		}
	} else {
		alignment := (gobBlocksInTileX * gobSize) * gobHeightVal * gobDepthVal
		size = roundUp(size, alignment)
	}

	return size
}
