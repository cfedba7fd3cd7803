package main

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/logger"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/presenter"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve [collection dir]",
	Short: "Serve a read-only HTTP API over a generated collection",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		baseDir := "collection"
		if len(args) > 0 {
			baseDir = args[0]
		}
		addr, _ := cmd.Flags().GetString("addr")

		srv, err := server.New(baseDir)
		if err != nil {
			return err
		}

		httpServer := &http.Server{
			Addr:         addr,
			Handler:      srv.Handler(),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		}

		logger.G(ctx).WithField("addr", addr).Info("Serving collection API")
		presenter.Info("Listening on " + addr)
		return httpServer.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
}
