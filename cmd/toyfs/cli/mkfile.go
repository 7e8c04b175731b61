package cli

import (
	"github.com/spf13/cobra"

	"github.com/go-toyfs/toyfs"
)

var mkfileCmd = &cobra.Command{
	Use:   "mkfile <image> <path>",
	Short: "Create an empty regular file inside an image",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withImage(args[0], func(fsys *toyfs.Filesystem) error {
			return fsys.Mkfile(args[1])
		})
	},
}

func init() {
	rootCmd.AddCommand(mkfileCmd)
}
