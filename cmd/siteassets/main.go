package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cachemcclure/siteassets/internal/config"
	"github.com/cachemcclure/siteassets/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "siteassets",
	Short: "Generate and optimize static image assets for the site build",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger.Setup(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// loadConfig reads --config when given, otherwise returns the built-in
// defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
