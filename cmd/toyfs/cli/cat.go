package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/go-toyfs/toyfs"
)

var catCmd = &cobra.Command{
	Use:   "cat <image> <path>",
	Short: "Print a regular file's contents",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withReadOnlyImage(args[0], func(fsys *toyfs.Filesystem) error {
			data, err := fsys.ReadFile(args[1])
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(data)
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(catCmd)
}
