package main

import (
	"github.com/spf13/cobra"

	"github.com/cropconnect/api/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Run()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
