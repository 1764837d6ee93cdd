package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgpai22/srtmend/internal/subtitle"
	"github.com/spf13/cobra"
)

var repairCmd = &cobra.Command{
	Use:   "repair [subtitle_file]",
	Short: "Repair a SubRip file and write a clean copy",
	Long: `Parse a SubRip file, recovering from structural damage, and write the
result as a well-formed file.

Blocks that run together without a blank line are split, blocks with a
missing index are kept and the file is renumbered, and lines that cannot be
read are skipped. When a file has too many problems (see --threshold) the
original index numbers are left alone.

Examples:
  srtmend repair movie.srt
  srtmend repair movie.srt -o clean.srt --line-ending crlf
  srtmend repair movie.srt --in-place
  srtmend repair movie.srt --stdout`,
	Args: cobra.ExactArgs(1),
	RunE: runRepair,
}

func init() {
	rootCmd.AddCommand(repairCmd)

	repairCmd.Flags().
		String("line-ending", "", "Line ending for the output file (lf, crlf); overrides config")
	repairCmd.Flags().
		Int("threshold", 0, "Error count at which renumbering is skipped; overrides config")
	repairCmd.Flags().
		Bool("in-place", false, "Overwrite the input file")
	repairCmd.Flags().
		Bool("stdout", false, "Print the repaired subtitle instead of writing a file")
}

func runRepair(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	lineEnding, _ := cmd.Flags().GetString("line-ending")
	threshold, _ := cmd.Flags().GetInt("threshold")
	inPlace, _ := cmd.Flags().GetBool("in-place")
	toStdout, _ := cmd.Flags().GetBool("stdout")
	outputPath, _ := cmd.Flags().GetString("output")

	if err := checkSubtitlePath(inputPath); err != nil {
		return err
	}
	if inPlace && outputPath != "" {
		return fmt.Errorf("--in-place and --output cannot be used together")
	}

	outCfg := cfg.Output
	if lineEnding != "" {
		outCfg.LineEnding = strings.ToLower(lineEnding)
	}
	newline, err := outCfg.Newline()
	if err != nil {
		return err
	}

	switch {
	case inPlace:
		outputPath = inputPath
	case outputPath == "":
		outputPath = defaultOutputPath(inputPath, cfg.Output.Suffix)
	}

	logger.Infow("Repairing subtitle file",
		"input", inputPath,
		"output", outputPath,
		"line_ending", outCfg.LineEnding,
	)

	file, err := subtitle.Open(inputPath, newParser(threshold))
	if err != nil {
		return fmt.Errorf("failed to parse subtitle file: %w", err)
	}
	logResult(file)

	writer := subtitle.NewWriter(newline)

	if toStdout {
		fmt.Fprint(cmd.OutOrStdout(), writer.Render(file.Subtitle())+newline)
		return nil
	}

	if err := file.Write(outputPath, writer); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	result := file.Result()
	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitle repaired successfully: %s\n", absOutput)
	fmt.Printf("  Paragraphs: %d\n", len(file.Subtitle().Paragraphs))
	fmt.Printf("  Errors: %d\n", result.ErrorCount)
	if result.Renumbered {
		fmt.Printf("  Renumbered: yes\n")
	}

	return nil
}

// flag value wins over config when positive
func newParser(threshold int) *subtitle.Parser {
	if threshold <= 0 {
		threshold = cfg.Parser.ErrorThreshold
	}
	return subtitle.NewParser(subtitle.ParserOptions{
		ErrorThreshold: threshold,
		Logger:         logger.SugaredLogger,
	})
}

func logResult(file *subtitle.SRTFile) {
	result := file.Result()
	if result.ErrorCount == 0 {
		logger.Infow("Parsed subtitle file",
			"source", file.Source(),
			"paragraphs", len(file.Subtitle().Paragraphs),
		)
		return
	}

	logger.Warnw("Subtitle file has format errors",
		"source", file.Source(),
		"paragraphs", len(file.Subtitle().Paragraphs),
		"errors", result.ErrorCount,
		"renumbered", result.Renumbered,
	)
}

func checkSubtitlePath(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("subtitle file not found: %s", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".srt" {
		return fmt.Errorf("unsupported subtitle format %q: use .srt", ext)
	}
	return nil
}

// movie.srt -> movie.fixed.srt
func defaultOutputPath(inputPath, suffix string) string {
	ext := filepath.Ext(inputPath)
	baseName := strings.TrimSuffix(inputPath, ext)
	if suffix == "" {
		suffix = ".fixed"
	}
	return baseName + suffix + ext
}
