package tegraswizzle

// SwizzleSurface converts every mip level of every array layer in source
// from linear to block-linear layout, returning a single owned buffer
// with the surface-level padding described in §4.4 applied between
// layers. width, height, and depth are in pixels; blockDim converts them
// to the block units the per-mip math operates on.
//
// blockHeightMip0 selects the base mip level's block height explicitly;
// pass BlockHeight(0) to have it inferred from height (only meaningful
// when depth == 1 — 3D surfaces always use a block height of one).
func SwizzleSurface(width, height, depth uint32, source []byte, blockDim BlockDim, blockHeightMip0 BlockHeight, bytesPerPixel, mipmapCount, layerCount uint32) ([]byte, error) {
	return transformSurface(width, height, depth, source, blockDim, blockHeightMip0, bytesPerPixel, mipmapCount, layerCount, toBlockLinear)
}

// DeswizzleSurface converts every mip level of every array layer in
// source from block-linear to linear layout, returning a single owned
// buffer with mips and layers tightly packed.
func DeswizzleSurface(width, height, depth uint32, source []byte, blockDim BlockDim, blockHeightMip0 BlockHeight, bytesPerPixel, mipmapCount, layerCount uint32) ([]byte, error) {
	return transformSurface(width, height, depth, source, blockDim, blockHeightMip0, bytesPerPixel, mipmapCount, layerCount, toLinear)
}

func transformSurface(width, height, depth uint32, source []byte, blockDim BlockDim, blockHeightMip0 BlockHeight, bytesPerPixel, mipmapCount, layerCount uint32, dir direction) ([]byte, error) {
	if width == 0 || height == 0 || depth == 0 || bytesPerPixel == 0 || mipmapCount == 0 || layerCount == 0 {
		return []byte{}, nil
	}

	if err := validateSurface(width, height, depth, bytesPerPixel, mipmapCount); err != nil {
		return nil, err
	}

	result, err := surfaceDestination(width, height, depth, blockDim, blockHeightMip0, bytesPerPixel, mipmapCount, layerCount, source, dir)
	if err != nil {
		return nil, err
	}

	resolvedBlockHeight := resolveBlockHeightMip0(height, depth, blockDim, blockHeightMip0)
	blockDepthMip0 := blockDepth(int(depth))

	srcOffset, dstOffset := 0, 0
	for layer := uint32(0); layer < layerCount; layer++ {
		for mip := uint32(0); mip < mipmapCount; mip++ {
			mipWidth := maxInt(divRoundUp(int(width>>mip), int(blockDim.Width)), 1)
			mipHeight := maxInt(divRoundUp(int(height>>mip), int(blockDim.Height)), 1)
			mipDepth := maxInt(divRoundUp(int(depth>>mip), int(blockDim.Depth)), 1)

			mipBlockHeight := MipBlockHeight(mipHeight, resolvedBlockHeight)
			mipBlockDepth := mipBlockDepth(mipDepth, blockDepthMip0)

			if err := swizzleMipmap(mipWidth, mipHeight, mipDepth, mipBlockHeight, mipBlockDepth, int(bytesPerPixel), source, &srcOffset, result, &dstOffset, dir); err != nil {
				return nil, err
			}
		}

		if layerCount > 1 {
			if dir == toLinear {
				srcOffset = alignLayerSize(srcOffset, int(height), int(depth), resolvedBlockHeight, 1)
			} else {
				dstOffset = alignLayerSize(dstOffset, int(height), int(depth), resolvedBlockHeight, 1)
			}
		}
	}

	return result, nil
}

// resolveBlockHeightMip0 returns the caller's explicit block height, or
// infers one from height when the caller passed BlockHeight(0). 3D
// surfaces (depth != 1) always use a block height of one regardless of
// what the caller requested.
func resolveBlockHeightMip0(height, depth uint32, blockDim BlockDim, requested BlockHeight) BlockHeight {
	if depth != 1 {
		return BlockHeightOne
	}
	if requested != 0 {
		return requested
	}
	return BlockHeightMip0(divRoundUp(int(height), int(blockDim.Height)))
}

func surfaceDestination(width, height, depth uint32, blockDim BlockDim, blockHeightMip0 BlockHeight, bytesPerPixel, mipmapCount, layerCount uint32, source []byte, dir direction) ([]byte, error) {
	swizzledSize := SwizzledSurfaceSize(width, height, depth, blockDim, blockHeightMip0, bytesPerPixel, mipmapCount, layerCount)
	deswizzledSize := DeswizzledSurfaceSize(width, height, depth, blockDim, bytesPerPixel, mipmapCount, layerCount)

	var surfaceSize, expectedSize int
	if dir == toLinear {
		surfaceSize, expectedSize = deswizzledSize, swizzledSize
	} else {
		surfaceSize, expectedSize = swizzledSize, deswizzledSize
	}

	if len(source) < expectedSize {
		return nil, &NotEnoughDataError{Expected: expectedSize, Actual: len(source)}
	}

	return make([]byte, surfaceSize), nil
}

// swizzleMipmap transforms one mip level in place at the current source
// and destination offsets, then advances both offsets past it.
func swizzleMipmap(width, height, depth int, blockHeight BlockHeight, blockDepthVal int, bytesPerPixel int, source []byte, srcOffset *int, dst []byte, dstOffset *int, dir direction) error {
	swizzledSize := SwizzledMipSize(width, height, depth, blockHeight, bytesPerPixel)
	deswizzledSize := DeswizzledMipSize(width, height, depth, bytesPerPixel)

	if dir == toLinear && len(source) < *srcOffset+swizzledSize {
		return &NotEnoughDataError{Expected: swizzledSize, Actual: len(source)}
	}
	if dir == toBlockLinear && len(source) < *srcOffset+deswizzledSize {
		return &NotEnoughDataError{Expected: deswizzledSize, Actual: len(source)}
	}

	swizzleInner(width, height, depth, source[*srcOffset:], dst[*dstOffset:], int(blockHeight), blockDepthVal, bytesPerPixel, dir)

	if dir == toLinear {
		*srcOffset += swizzledSize
		*dstOffset += deswizzledSize
	} else {
		*srcOffset += deswizzledSize
		*dstOffset += swizzledSize
	}
	return nil
}

// SwizzledSurfaceSize is the byte size of the block-linear layout of a
// full surface (every mip, every layer, with inter-layer padding). It
// never fails and never allocates, returning 0 for a degenerate surface.
func SwizzledSurfaceSize(width, height, depth uint32, blockDim BlockDim, blockHeightMip0 BlockHeight, bytesPerPixel, mipmapCount, layerCount uint32) int {
	if width == 0 || height == 0 || depth == 0 || bytesPerPixel == 0 || mipmapCount == 0 || layerCount == 0 {
		return 0
	}

	resolvedBlockHeight := resolveBlockHeightMip0(height, depth, blockDim, blockHeightMip0)

	mipSize := 0
	for mip := uint32(0); mip < mipmapCount; mip++ {
		mipWidth := maxInt(divRoundUp(int(width>>mip), int(blockDim.Width)), 1)
		mipHeight := maxInt(divRoundUp(int(height>>mip), int(blockDim.Height)), 1)
		mipDepth := maxInt(divRoundUp(int(depth>>mip), int(blockDim.Depth)), 1)

		mipBlockHeight := MipBlockHeight(mipHeight, resolvedBlockHeight)
		mipSize += SwizzledMipSize(mipWidth, mipHeight, mipDepth, mipBlockHeight, int(bytesPerPixel))
	}

	if layerCount > 1 {
		layerSize := alignLayerSize(mipSize, int(height), int(depth), resolvedBlockHeight, 1)
		return layerSize * int(layerCount)
	}
	return mipSize
}

// DeswizzledSurfaceSize is the byte size of the linear layout of a full
// surface (every mip, every layer, tightly packed). It never fails and
// never allocates, returning 0 for a degenerate surface.
func DeswizzledSurfaceSize(width, height, depth uint32, blockDim BlockDim, bytesPerPixel, mipmapCount, layerCount uint32) int {
	if width == 0 || height == 0 || depth == 0 || bytesPerPixel == 0 || mipmapCount == 0 || layerCount == 0 {
		return 0
	}

	layerSize := 0
	for mip := uint32(0); mip < mipmapCount; mip++ {
		mipWidth := maxInt(divRoundUp(int(width>>mip), int(blockDim.Width)), 1)
		mipHeight := maxInt(divRoundUp(int(height>>mip), int(blockDim.Height)), 1)
		mipDepth := maxInt(divRoundUp(int(depth>>mip), int(blockDim.Depth)), 1)
		layerSize += DeswizzledMipSize(mipWidth, mipHeight, mipDepth, int(bytesPerPixel))
	}

	return layerSize * int(layerCount)
}
