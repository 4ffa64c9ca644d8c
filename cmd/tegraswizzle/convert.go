package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tegraswizzle "github.com/ScanMountGoat/tegra-swizzle"
	"github.com/spf13/cobra"
)

// surfaceFlags holds the geometry shared by the swizzle and deswizzle
// subcommands; each command only differs in which direction it feeds the
// bytes through the core transform.
type surfaceFlags struct {
	in       string
	out      string
	width    uint32
	height   uint32
	depth    uint32
	bpp      uint32
	mipCount uint32
	layers   uint32
	blockDim string
}

var swizzleFlags surfaceFlags
var deswizzleFlags surfaceFlags

func registerSurfaceFlags(cmd *cobra.Command, f *surfaceFlags) {
	cmd.Flags().StringVar(&f.in, "in", "", "Input file path (required)")
	cmd.Flags().StringVar(&f.out, "out", "", "Output file path (required)")
	cmd.Flags().Uint32Var(&f.width, "width", 0, "Surface width in pixels (required)")
	cmd.Flags().Uint32Var(&f.height, "height", 0, "Surface height in pixels (required)")
	cmd.Flags().Uint32Var(&f.depth, "depth", 1, "Surface depth in pixels")
	cmd.Flags().Uint32Var(&f.bpp, "bpp", 4, "Bytes per pixel, or per compressed block")
	cmd.Flags().Uint32Var(&f.mipCount, "mips", 1, "Mipmap count")
	cmd.Flags().Uint32Var(&f.layers, "layers", 1, "Array layer count")
	cmd.Flags().StringVar(&f.blockDim, "block-dim", "uncompressed", "Block footprint: uncompressed or 4x4")

	cmd.MarkFlagRequired("in")
	cmd.MarkFlagRequired("out")
	cmd.MarkFlagRequired("width")
	cmd.MarkFlagRequired("height")
}

func (f surfaceFlags) resolveBlockDim() (tegraswizzle.BlockDim, error) {
	switch f.blockDim {
	case "uncompressed":
		return tegraswizzle.BlockDimUncompressed(), nil
	case "4x4":
		return tegraswizzle.BlockDim4x4(), nil
	default:
		return tegraswizzle.BlockDim{}, fmt.Errorf("unknown --block-dim %q: want uncompressed or 4x4", f.blockDim)
	}
}

var swizzleCmd = &cobra.Command{
	Use:   "swizzle",
	Short: "Convert a linear surface to block-linear layout",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(swizzleFlags, tegraswizzle.SwizzleSurface)
	},
}

var deswizzleCmd = &cobra.Command{
	Use:   "deswizzle",
	Short: "Convert a block-linear surface to linear layout",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(deswizzleFlags, tegraswizzle.DeswizzleSurface)
	},
}

func init() {
	registerSurfaceFlags(swizzleCmd, &swizzleFlags)
	registerSurfaceFlags(deswizzleCmd, &deswizzleFlags)
	rootCmd.AddCommand(swizzleCmd, deswizzleCmd)
}

type surfaceFunc func(width, height, depth uint32, source []byte, blockDim tegraswizzle.BlockDim, blockHeightMip0 tegraswizzle.BlockHeight, bytesPerPixel, mipmapCount, layerCount uint32) ([]byte, error)

func runConvert(f surfaceFlags, transform surfaceFunc) error {
	blockDim, err := f.resolveBlockDim()
	if err != nil {
		return err
	}

	source, err := os.ReadFile(f.in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", f.in, err)
	}

	start := time.Now()
	result, err := transform(f.width, f.height, f.depth, source, blockDim, 0, f.bpp, f.mipCount, f.layers)
	if err != nil {
		var ned *tegraswizzle.NotEnoughDataError
		var inv *tegraswizzle.InvalidSurfaceError
		switch {
		case errors.As(err, &ned):
			return fmt.Errorf("%s: expected at least %d bytes, got %d", f.in, ned.Expected, ned.Actual)
		case errors.As(err, &inv):
			return fmt.Errorf("%s: invalid surface geometry: %w", f.in, inv)
		default:
			return err
		}
	}

	if err := os.WriteFile(f.out, result, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", f.out, err)
	}

	slog.Info("converted surface",
		"in", f.in,
		"out", f.out,
		"input_bytes", len(source),
		"output_bytes", len(result),
		"elapsed", time.Since(start),
	)
	return nil
}
