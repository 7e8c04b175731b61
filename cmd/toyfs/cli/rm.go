package cli

import (
	"github.com/spf13/cobra"

	"github.com/go-toyfs/toyfs"
)

var rmCmd = &cobra.Command{
	Use:   "rm <image> <path>",
	Short: "Recursively remove a file or directory inside an image",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withImage(args[0], func(fsys *toyfs.Filesystem) error {
			return fsys.Remove(args[1])
		})
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
