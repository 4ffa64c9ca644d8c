package tegraswizzle

// direction selects which way bytes flow between the linear and
// block-linear buffers. It is resolved once per call and threaded through
// as a plain value. The complete-GOB fast path branches on it once per GOB
// step and then runs straight-line copies with no further conditionals;
// the per-byte edge path tests it for every byte it copies.
type direction bool

const (
	toLinear     direction = true  // deswizzle: read block-linear, write linear
	toBlockLinear direction = false // swizzle: read linear, write block-linear
)

// SwizzleBlockLinear converts a single mip level from linear (row-major)
// to block-linear (tiled) layout. width, height, and depth are in block
// units (pixels for uncompressed formats, compressed blocks for BCN
// formats); bytesPerPixel is the size in bytes of one such unit.
func SwizzleBlockLinear(width, height, depth int, source []byte, blockHeight BlockHeight, bytesPerPixel int) ([]byte, error) {
	return transformBlockLinear(width, height, depth, source, blockHeight, bytesPerPixel, toBlockLinear)
}

// DeswizzleBlockLinear converts a single mip level from block-linear
// (tiled) to linear (row-major) layout.
func DeswizzleBlockLinear(width, height, depth int, source []byte, blockHeight BlockHeight, bytesPerPixel int) ([]byte, error) {
	return transformBlockLinear(width, height, depth, source, blockHeight, bytesPerPixel, toLinear)
}

func transformBlockLinear(width, height, depth int, source []byte, blockHeight BlockHeight, bytesPerPixel int, dir direction) ([]byte, error) {
	swizzledSize := SwizzledMipSize(width, height, depth, blockHeight, bytesPerPixel)
	deswizzledSize := DeswizzledMipSize(width, height, depth, bytesPerPixel)

	var destSize, expectedSourceSize int
	if dir == toLinear {
		destSize, expectedSourceSize = deswizzledSize, swizzledSize
	} else {
		destSize, expectedSourceSize = swizzledSize, deswizzledSize
	}

	if len(source) < expectedSourceSize {
		return nil, &NotEnoughDataError{Expected: expectedSourceSize, Actual: len(source)}
	}

	destination := make([]byte, destSize)
	// A standalone single-mip call derives its block depth from depth, the
	// same way SwizzledMipSize does; the surface driver recomputes this per
	// mip via mipBlockDepth when depth varies across mip levels.
	swizzleInner(width, height, depth, source, destination, int(blockHeight), blockDepth(depth), bytesPerPixel, dir)
	return destination, nil
}

// swizzleInner walks the surface in whole-GOB steps, computing each GOB's
// swizzled starting address and then either copying the whole 512-byte GOB
// with the fixed row permutation (fast path) or falling back to a
// per-byte copy for GOBs that overhang the surface edge (slow path).
func swizzleInner(width, height, depth int, source, destination []byte, blockHeightVal, blockDepthVal, bytesPerPixel int, dir direction) {
	imageWidthInGobs := widthInGobs(width, bytesPerPixel)

	sliceSize := imageWidthInGobs * blockDepthVal * gobSize

	const blockWidth = 1
	blockSizeInBytes := gobSize * blockWidth * blockHeightVal * blockDepthVal
	blockHeightInBytes := gobHeight * blockHeightVal

	rowStride := width * bytesPerPixel

	for z0 := 0; z0 < depth; z0++ {
		offsetZ := gobAddressZ(z0, blockHeightVal, blockDepthVal, sliceSize)

		for y0 := 0; y0 < height; y0 += gobHeight {
			offsetY := gobAddressY(y0, blockHeightInBytes, blockSizeInBytes, imageWidthInGobs)

			for x0 := 0; x0 < rowStride; x0 += gobWidth {
				offsetX := gobAddressX(x0, blockSizeInBytes)
				gobAddress := offsetZ + offsetY + offsetX

				if x0+gobWidth < rowStride && y0+gobHeight < height {
					linearOffset := z0*width*height*bytesPerPixel + y0*rowStride + x0

					if dir == toLinear {
						deswizzleCompleteGob(destination[linearOffset:], source[gobAddress:], rowStride)
					} else {
						swizzleCompleteGob(destination[gobAddress:], source[linearOffset:], rowStride)
					}
				} else {
					swizzleDeswizzleGobEdge(destination, source, x0, y0, z0, width, height, bytesPerPixel, gobAddress, dir)
				}
			}
		}
	}
}

// swizzleDeswizzleGobEdge handles a GOB that overhangs the surface's right
// or bottom edge, copying byte-by-byte and clamping to the actual bounds.
func swizzleDeswizzleGobEdge(destination, source []byte, x0, y0, z0, width, height, bytesPerPixel, gobAddress int, dir direction) {
	rowStride := width * bytesPerPixel
	for y := 0; y < gobHeight; y++ {
		for x := 0; x < gobWidth; x++ {
			if y0+y < height && x0+x < rowStride {
				swizzledOffset := gobAddress + gobOffset(x, y)
				linearOffset := z0*width*height*bytesPerPixel + (y0+y)*rowStride + x0 + x

				if dir == toLinear {
					destination[linearOffset] = source[swizzledOffset]
				} else {
					destination[swizzledOffset] = source[linearOffset]
				}
			}
		}
	}
}

// gobRowOffsets are the byte offsets of each of the GOB's 8 rows within
// the contiguous 512-byte tile, derived from gobOffset at row granularity.
var gobRowOffsets = [gobHeight]int{0, 16, 64, 80, 128, 144, 192, 208}

// deswizzleCompleteGob copies a whole interior GOB from the contiguous
// block-linear tile at src into the linear buffer at dst, whose rows are
// rowStrideBytes apart. The 8 GOB rows are walked from the fixed
// gobRowOffsets table, and each row is hardcoded as four fixed 16-byte
// copies so the compiler can lower them to wide moves; no per-byte loop is
// involved.
func deswizzleCompleteGob(dst, src []byte, rowStrideBytes int) {
	for row, off := range gobRowOffsets {
		deswizzleGobRow(dst[row*rowStrideBytes:], src[off:])
	}
}

func deswizzleGobRow(dst, src []byte) {
	// Largest offset first to narrow the bounds-check window.
	copy(dst[48:64], src[288:304])
	copy(dst[32:48], src[256:272])
	copy(dst[16:32], src[32:48])
	copy(dst[0:16], src[0:16])
}

// swizzleCompleteGob is deswizzleCompleteGob with source and destination
// swapped: the permutation is symmetric, so the same row offsets apply
// with the read and write sides exchanged.
func swizzleCompleteGob(dst, src []byte, rowStrideBytes int) {
	for row, off := range gobRowOffsets {
		swizzleGobRow(dst[off:], src[row*rowStrideBytes:])
	}
}

func swizzleGobRow(dst, src []byte) {
	copy(dst[288:304], src[48:64])
	copy(dst[256:272], src[32:48])
	copy(dst[32:48], src[16:32])
	copy(dst[0:16], src[0:16])
}

// DeswizzledMipSize is the byte size of one linear mip level: width,
// height, and depth multiplied together with bytesPerPixel. It never
// fails and never allocates.
func DeswizzledMipSize(width, height, depth, bytesPerPixel int) int {
	return width * height * depth * bytesPerPixel
}

// SwizzledMipSize is the byte size of one block-linear mip level, rounded
// up to whole GOBs in every dimension. It never fails and never
// allocates.
func SwizzledMipSize(width, height, depth int, blockHeight BlockHeight, bytesPerPixel int) int {
	bh := int(blockHeight)
	return widthInGobs(width, bytesPerPixel) * heightInBlocks(height, bh) * bh * roundUp(depth, blockDepth(depth)) * gobSize
}
