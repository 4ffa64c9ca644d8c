package tegraswizzle

// gobAddressZ returns the byte offset contributed by slice z. It advances
// by sliceSize every blockDepth slices and by gobSize*blockHeight within a
// block of slices. blockDepth is always a power of two, so the low bits
// of z can be masked instead of computed with a modulo.
func gobAddressZ(z, blockHeight, blockDepth, sliceSize int) int {
	return (z/blockDepth)*sliceSize + (z&(blockDepth-1))*gobSize*blockHeight
}

// gobAddressY returns the byte offset contributed by row y.
func gobAddressY(y, blockHeightInBytes, blockSizeInBytes, widthInGobsVal int) int {
	blockY := y / blockHeightInBytes
	blockInnerRow := (y % blockHeightInBytes) / gobHeight
	return blockY*blockSizeInBytes*widthInGobsVal + blockInnerRow*gobSize
}

// gobAddressX returns the byte offset contributed by byte-column xb.
func gobAddressX(xb, blockSizeInBytes int) int {
	blockX := xb / gobWidth
	return blockX * blockSizeInBytes
}

// gobOffset returns the position of byte (xb, y) within its 64x8 GOB. The
// bit pattern is fixed by the hardware and must be reproduced exactly.
func gobOffset(xb, y int) int {
	return ((xb%64)/32)*256 + ((y%8)/2)*64 + ((xb%32)/16)*32 + (y%2)*16 + (xb % 16)
}
