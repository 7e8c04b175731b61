package cli

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-toyfs/toyfs"
	"github.com/go-toyfs/toyfs/converter"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve <image>",
	Short: "Serve an image's namespace over HTTP",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fsys, err := toyfs.Load(args[0])
		if err != nil {
			return err
		}
		handler := http.FileServer(http.FS(converter.FS(fsys)))
		logrus.WithField("addr", serveAddr).Info("serving toyfs image")
		fmt.Printf("serving %s on %s\n", args[0], serveAddr)
		return http.ListenAndServe(serveAddr, handler)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "address to listen on")
	rootCmd.AddCommand(serveCmd)
}
