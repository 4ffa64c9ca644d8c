package main

import (
	"fmt"

	tegraswizzle "github.com/ScanMountGoat/tegra-swizzle"
	"github.com/spf13/cobra"
)

var sizeFlags surfaceFlags

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Print the linear and block-linear byte size of a surface",
	RunE: func(cmd *cobra.Command, args []string) error {
		blockDim, err := sizeFlags.resolveBlockDim()
		if err != nil {
			return err
		}

		deswizzled := tegraswizzle.DeswizzledSurfaceSize(sizeFlags.width, sizeFlags.height, sizeFlags.depth, blockDim, sizeFlags.bpp, sizeFlags.mipCount, sizeFlags.layers)
		swizzled := tegraswizzle.SwizzledSurfaceSize(sizeFlags.width, sizeFlags.height, sizeFlags.depth, blockDim, 0, sizeFlags.bpp, sizeFlags.mipCount, sizeFlags.layers)

		fmt.Printf("linear:       %d bytes\n", deswizzled)
		fmt.Printf("block-linear: %d bytes\n", swizzled)
		return nil
	},
}

func init() {
	sizeCmd.Flags().Uint32Var(&sizeFlags.width, "width", 0, "Surface width in pixels (required)")
	sizeCmd.Flags().Uint32Var(&sizeFlags.height, "height", 0, "Surface height in pixels (required)")
	sizeCmd.Flags().Uint32Var(&sizeFlags.depth, "depth", 1, "Surface depth in pixels")
	sizeCmd.Flags().Uint32Var(&sizeFlags.bpp, "bpp", 4, "Bytes per pixel, or per compressed block")
	sizeCmd.Flags().Uint32Var(&sizeFlags.mipCount, "mips", 1, "Mipmap count")
	sizeCmd.Flags().Uint32Var(&sizeFlags.layers, "layers", 1, "Array layer count")
	sizeCmd.Flags().StringVar(&sizeFlags.blockDim, "block-dim", "uncompressed", "Block footprint: uncompressed or 4x4")

	sizeCmd.MarkFlagRequired("width")
	sizeCmd.MarkFlagRequired("height")

	rootCmd.AddCommand(sizeCmd)
}
