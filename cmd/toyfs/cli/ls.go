package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-toyfs/toyfs"
)

var lsCmd = &cobra.Command{
	Use:   "ls <image> [path]",
	Short: "List a directory's contents",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "/"
		if len(args) == 2 {
			path = args[1]
		}
		return withReadOnlyImage(args[0], func(fsys *toyfs.Filesystem) error {
			listing, err := fsys.List(path)
			if err != nil {
				return err
			}
			fmt.Print(listing)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
