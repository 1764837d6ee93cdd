package cli

import (
	"fmt"

	"github.com/mgpai22/srtmend/internal/config"
	"github.com/mgpai22/srtmend/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	logger     *logging.Logger
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "srtmend",
	Short: "Repair and normalize SubRip subtitle files",
	Long: `Srtmend is a CLI tool that reads SubRip (.srt) subtitle files,
recovers from common structural damage (missing blank lines, missing
index numbers, garbled time codes) and writes a clean file back out.

It reports how many problems were found so damaged files can be spotted.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.NewLogger(verbose)

		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file (default is <user config dir>/srtmend/config.toml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}
