package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cachemcclure/siteassets/internal/optimize"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Re-encode site images in place, stripping metadata",
	RunE:  runOptimize,
}

func init() {
	optimizeCmd.Flags().Int("max-width", 0, "Downscale images wider than this (0 = keep size)")
	optimizeCmd.Flags().Int("quality", 0, "Lossy quality for JPEG/WebP output (1-100)")
	optimizeCmd.Flags().String("config", "", "YAML config file")
	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := optimize.Options{
		Assets:   cfg.Optimizer.Assets,
		MaxWidth: cfg.Optimizer.MaxWidth,
		Quality:  cfg.Optimizer.Quality,
	}
	if v, _ := cmd.Flags().GetInt("max-width"); v > 0 {
		opts.MaxWidth = v
	}
	if v, _ := cmd.Flags().GetInt("quality"); v > 0 {
		opts.Quality = v
	}

	summary, runErr := optimize.Run(opts)

	// Report whatever finished, even when the batch aborted partway.
	for _, r := range summary.Processed {
		fmt.Printf("Optimized %s\n", r.Path)
		fmt.Printf("  Original: %d bytes\n", r.OriginalSize)
		fmt.Printf("  Optimized: %d bytes\n", r.NewSize)
		fmt.Printf("  Saved: %d bytes (%.1f%%)\n", r.Saved(), r.SavedPercent())
	}
	fmt.Printf("Total space saved: %d bytes (%.1f KB)\n",
		summary.TotalSaved(), float64(summary.TotalSaved())/1024)

	if runErr != nil {
		return runErr
	}
	fmt.Println("All images optimized successfully!")
	return nil
}
