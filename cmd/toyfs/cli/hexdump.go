package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-toyfs/toyfs"
	"github.com/go-toyfs/toyfs/util"
)

var hexdumpBytesPerRow int

var hexdumpCmd = &cobra.Command{
	Use:   "hexdump <image> <path>",
	Short: "Hex-dump a regular file's contents",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withReadOnlyImage(args[0], func(fsys *toyfs.Filesystem) error {
			data, err := fsys.ReadFile(args[1])
			if err != nil {
				return err
			}
			fmt.Print(util.DumpByteSlice(data, hexdumpBytesPerRow, true, true, false, nil))
			return nil
		})
	},
}

func init() {
	hexdumpCmd.Flags().IntVar(&hexdumpBytesPerRow, "bytes-per-row", 16, "bytes shown per row")
	rootCmd.AddCommand(hexdumpCmd)
}
