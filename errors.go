package tegraswizzle

import "fmt"

// NotEnoughDataError is returned when a source buffer is shorter than the
// size the requested transform needs to read. It is always checked before
// any output buffer is allocated, so a caller never pays for an allocation
// it can't use.
type NotEnoughDataError struct {
	Expected int
	Actual   int
}

func (e *NotEnoughDataError) Error() string {
	return fmt.Sprintf("not enough data: expected at least %d bytes, got %d", e.Expected, e.Actual)
}

func (e *NotEnoughDataError) Is(target error) bool {
	_, ok := target.(*NotEnoughDataError)
	return ok
}

// InvalidSurfaceError is returned when a surface's declared dimensions
// cannot be used to compute a size without overflowing a 32-bit word, or
// when the mipmap count exceeds what a 32-bit dimension can support.
type InvalidSurfaceError struct {
	Width         uint32
	Height        uint32
	Depth         uint32
	BytesPerPixel uint32
	MipmapCount   uint32
}

func (e *InvalidSurfaceError) Error() string {
	return fmt.Sprintf(
		"invalid surface: width=%d height=%d depth=%d bytes_per_pixel=%d mipmap_count=%d",
		e.Width, e.Height, e.Depth, e.BytesPerPixel, e.MipmapCount,
	)
}

func (e *InvalidSurfaceError) Is(target error) bool {
	_, ok := target.(*InvalidSurfaceError)
	return ok
}

// maxUint32 is the largest value a 32-bit unsigned word can hold; it is
// the overflow ceiling used by validateSurface.
const maxUint32 = 1<<32 - 1

// mulOverflowsU32 reports whether a*b would not fit in a uint32, computing
// the product in 64-bit arithmetic to avoid wrapping silently the way a
// native uint32 multiply would.
func mulOverflowsU32(a, b uint32) bool {
	return uint64(a)*uint64(b) > maxUint32
}

// addOverflowsU32 reports whether a+b would not fit in a uint32.
func addOverflowsU32(a, b uint32) bool {
	return uint64(a)+uint64(b) > maxUint32
}

// validateSurface checks the four overflow conditions a surface call must
// reject before doing any arithmetic that depends on them, returning an
// *InvalidSurfaceError describing the offending surface if any check
// fails.
func validateSurface(width, height, depth, bytesPerPixel, mipmapCount uint32) error {
	fail := func() error {
		return &InvalidSurfaceError{
			Width:         width,
			Height:        height,
			Depth:         depth,
			BytesPerPixel: bytesPerPixel,
			MipmapCount:   mipmapCount,
		}
	}

	if mulOverflowsU32(width, bytesPerPixel) {
		return fail()
	}
	widthBpp := width * bytesPerPixel
	if mulOverflowsU32(widthBpp, height) {
		return fail()
	}
	whBpp := widthBpp * height
	if mulOverflowsU32(whBpp, depth) {
		return fail()
	}
	if addOverflowsU32(depth, depth/2) {
		return fail()
	}
	if mipmapCount > 32 {
		return fail()
	}
	return nil
}
