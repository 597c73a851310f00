package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cachemcclure/siteassets/internal/ogimage"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the default Open Graph preview image",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringP("output", "o", "", "Output JPEG path")
	generateCmd.Flags().String("title", "", "Title text override")
	generateCmd.Flags().String("subtitle", "", "Subtitle text override")
	generateCmd.Flags().Int("quality", 0, "JPEG quality (1-100)")
	generateCmd.Flags().String("config", "", "YAML config file")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	gen := cfg.Generator
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		gen.OutputPath = v
	}
	if v, _ := cmd.Flags().GetString("title"); v != "" {
		gen.Title = v
	}
	if v, _ := cmd.Flags().GetString("subtitle"); v != "" {
		gen.Subtitle = v
	}
	if v, _ := cmd.Flags().GetInt("quality"); v > 0 {
		gen.Quality = v
	}

	img := ogimage.Render(ogimage.Spec{Title: gen.Title, Subtitle: gen.Subtitle})

	size, err := ogimage.WriteJPEG(img, gen.OutputPath, gen.Quality)
	if err != nil {
		return fmt.Errorf("creating Open Graph image: %w", err)
	}

	fmt.Printf("Created Open Graph image: %s\n", gen.OutputPath)
	fmt.Printf("Dimensions: %dx%dpx\n", ogimage.Width, ogimage.Height)
	fmt.Printf("File size: %.1f KB\n", float64(size)/1024)
	ogimage.CheckSize(gen.OutputPath, size)

	return nil
}
