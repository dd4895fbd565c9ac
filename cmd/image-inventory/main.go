package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joseph-ayodele/image-inventory/internal/collect"
	"github.com/joseph-ayodele/image-inventory/internal/common"
	"github.com/joseph-ayodele/image-inventory/internal/inventory"
	"github.com/joseph-ayodele/image-inventory/internal/sheet"
	"github.com/joseph-ayodele/image-inventory/internal/thumbnail"
)

var rootCmd = &cobra.Command{
	Use:   "image-inventory",
	Short: "Create an inventory spreadsheet from a folder of images",
	Long: `image-inventory scans a folder of image files and produces a single XLSX
audit sheet: one row per image, with a scaled thumbnail preview and a
temporary item name derived from the file name.

Supported input formats: jpg, jpeg, png, webp (matched by extension,
case-insensitively). Files that match by extension but fail to decode
become placeholder rows; the run still completes.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringP("input", "i", "images", "folder containing the source images")
	rootCmd.Flags().StringP("output", "o", "inventory_audit.xlsx", "path of the output XLSX file")
	rootCmd.Flags().Int("thumb-size", 100, "thumbnail bounding box in pixels, applied to width and height")
	rootCmd.Flags().Bool("timestamped", false, "append a YYYYMMDD_HHMMSS timestamp to the output filename (before extension)")
	rootCmd.Flags().Bool("recursive", false, "recursively include images from subfolders")

	_ = viper.BindPFlags(rootCmd.Flags())
}

func initConfig() {
	// .env is optional; flags and IMAGE_INVENTORY_* variables win over it
	_ = godotenv.Load()

	viper.SetEnvPrefix("IMAGE_INVENTORY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func run(cmd *cobra.Command, _ []string) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := &common.Config{
		InputDir:    viper.GetString("input"),
		OutputPath:  viper.GetString("output"),
		ThumbSize:   viper.GetInt("thumb-size"),
		Timestamped: viper.GetBool("timestamped"),
		Recursive:   viper.GetBool("recursive"),
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	svc := inventory.NewService(
		collect.NewCollector(logger),
		thumbnail.NewRenderer(cfg.ThumbSize, logger),
		sheet.NewBuilder(cfg.ThumbSize, logger),
		logger,
	)

	summary, err := svc.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Inventory created: %s\n", summary.OutputPath)
	fmt.Printf("Images processed: %d\n", summary.FilesProcessed)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
