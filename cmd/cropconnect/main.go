// Command cropconnect runs the marketplace API and its maintenance tasks.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cropconnect",
	Short: "CropConnect marketplace API",
	Long:  "API server connecting farmers and buyers: listings, orders, payments and an AI price advisor.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
