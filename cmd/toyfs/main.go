// Command toyfs is a command-line front-end over a toyfs image: create,
// inspect and mutate the namespace of a single binary image file.
package main

import (
	"fmt"
	"os"

	"github.com/go-toyfs/toyfs/cmd/toyfs/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
