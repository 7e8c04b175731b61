// Package cli implements the toyfs command-line front-end with cobra,
// mirroring the subcommand/flag structure of
// github.com/GoogleCloudPlatform/gcsfuse/v2/cmd's rootCmd.
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-toyfs/toyfs"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "toyfs",
	Short: "Inspect and mutate a toyfs image",
	Long: `toyfs manipulates the namespace of an in-memory, image-backed toy
filesystem: a fixed-capacity pool of inodes and data blocks serialized to
a single binary image file.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every operation at debug level")
}

// withImage loads the image at path, runs fn against it, and — unless fn
// returns an error — dumps the (possibly mutated) filesystem back to path.
func withImage(path string, fn func(fsys *toyfs.Filesystem) error) error {
	fsys, err := toyfs.Load(path)
	if err != nil {
		return err
	}
	if verbose {
		fsys.SetLogLevel(logrus.DebugLevel)
	}
	if err := fn(fsys); err != nil {
		return err
	}
	return fsys.Dump(path)
}

// withReadOnlyImage loads the image at path and runs fn against it without
// writing anything back.
func withReadOnlyImage(path string, fn func(fsys *toyfs.Filesystem) error) error {
	fsys, err := toyfs.Load(path)
	if err != nil {
		return err
	}
	if verbose {
		fsys.SetLogLevel(logrus.DebugLevel)
	}
	return fn(fsys)
}
