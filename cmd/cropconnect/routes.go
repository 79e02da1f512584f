package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/cropconnect/api/app/repositories"
	"github.com/cropconnect/api/app/routes"
	"github.com/cropconnect/api/config"
	"github.com/cropconnect/api/internal/server"
	"github.com/cropconnect/api/pkg/logger"
)

var routesCmd = &cobra.Command{
	Use:   "route:list",
	Short: "Print the registered HTTP routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		logger.Setup()

		// Route listing never needs a real database.
		router := routes.New(server.BuildControllers(repositories.NewMemory()))

		return chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			fmt.Printf("%-7s %s\n", method, strings.ReplaceAll(route, "/*/", "/"))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
