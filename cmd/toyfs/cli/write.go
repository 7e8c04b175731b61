package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-toyfs/toyfs"
)

var writeCmd = &cobra.Command{
	Use:   "write <image> <path> <data>",
	Short: "Append data to a regular file inside an image",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withImage(args[0], func(fsys *toyfs.Filesystem) error {
			n, err := fsys.WriteFile(args[1], []byte(args[2]))
			if err != nil {
				return err
			}
			fmt.Printf("%d bytes written\n", n)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(writeCmd)
}
