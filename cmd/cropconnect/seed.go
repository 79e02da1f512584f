package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/cropconnect/api/config"
	"github.com/cropconnect/api/database/seeders"
	"github.com/cropconnect/api/internal/server"
	"github.com/cropconnect/api/pkg/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo farmers and crop listings",
	Long:  "Inserts demo accounts and listings into the configured database. With the default memory driver this is only useful for smoke tests; point DB_DRIVER at a SQL backend to seed durable data.",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		logger.Setup()

		repos, err := server.BuildRepositories()
		if err != nil {
			return err
		}
		return seeders.Run(context.Background(), repos)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
