package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-toyfs/toyfs"
)

var importCmd = &cobra.Command{
	Use:   "import <image> <int-path> <ext-path>",
	Short: "Import a host file into an image",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withImage(args[0], func(fsys *toyfs.Filesystem) error {
			n, err := fsys.Import(args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Printf("%d bytes imported\n", n)
			return nil
		})
	},
}

var importTreeCmd = &cobra.Command{
	Use:   "import-tree <image> <host-dir>",
	Short: "Import an entire host directory tree into an image",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withImage(args[0], func(fsys *toyfs.Filesystem) error {
			return fsys.ImportTree(os.DirFS(args[1]))
		})
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(importTreeCmd)
}
