package cli

import (
	"github.com/spf13/cobra"

	"github.com/go-toyfs/toyfs"
)

var mkdirCmd = &cobra.Command{
	Use:   "mkdir <image> <path>",
	Short: "Create a directory inside an image",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withImage(args[0], func(fsys *toyfs.Filesystem) error {
			return fsys.Mkdir(args[1])
		})
	},
}

func init() {
	rootCmd.AddCommand(mkdirCmd)
}
