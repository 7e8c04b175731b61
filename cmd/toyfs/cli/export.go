package cli

import (
	"github.com/spf13/cobra"

	"github.com/go-toyfs/toyfs"
)

var exportCmd = &cobra.Command{
	Use:   "export <image> <int-path> <ext-path>",
	Short: "Export a file from an image to the host filesystem",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withReadOnlyImage(args[0], func(fsys *toyfs.Filesystem) error {
			return fsys.Export(args[1], args[2])
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
