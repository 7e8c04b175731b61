package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/go-toyfs/toyfs"
	"github.com/go-toyfs/toyfs/internal/record"
)

var (
	createNameMax      uint32
	createDirectBlocks uint32
	createBlockSize    uint32
)

var createCmd = &cobra.Command{
	Use:   "create <image> <num-blocks>",
	Short: "Create a new toyfs image",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		numBlocks, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid num-blocks %q: %w", args[1], err)
		}
		g := record.DefaultGeometry(uint32(numBlocks))
		if createNameMax != 0 {
			g.NameMax = createNameMax
		}
		if createDirectBlocks != 0 {
			g.DirectBlocks = createDirectBlocks
		}
		if createBlockSize != 0 {
			g.BlockSize = createBlockSize
		}
		_, err = toyfs.Create(args[0], g)
		return err
	},
}

func init() {
	createCmd.Flags().Uint32Var(&createNameMax, "name-max", 0, "override the default name_max")
	createCmd.Flags().Uint32Var(&createDirectBlocks, "direct-blocks", 0, "override the default direct_blocks count")
	createCmd.Flags().Uint32Var(&createBlockSize, "block-size", 0, "override the default block_size")
	rootCmd.AddCommand(createCmd)
}
