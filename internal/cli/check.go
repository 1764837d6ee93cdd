package cli

import (
	"fmt"

	"github.com/mgpai22/srtmend/internal/subtitle"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [subtitle_file...]",
	Short: "Report format problems in SubRip files",
	Long: `Parse one or more SubRip files and report how many format problems
were found in each. Nothing is written.

With --strict the command fails when any file has problems, which is handy
in scripts and CI.

Examples:
  srtmend check movie.srt
  srtmend check *.srt --strict
  srtmend check movie.srt --details`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().
		Bool("strict", false, "Exit with an error when any file has format problems")
	checkCmd.Flags().
		Bool("details", false, "List every problem with its line number")
	checkCmd.Flags().
		Int("threshold", 0, "Error count at which renumbering is skipped; overrides config")
}

func runCheck(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	details, _ := cmd.Flags().GetBool("details")
	threshold, _ := cmd.Flags().GetInt("threshold")

	parser := newParser(threshold)
	out := cmd.OutOrStdout()
	damaged := 0

	for _, path := range args {
		if err := checkSubtitlePath(path); err != nil {
			return err
		}

		file, err := subtitle.Open(path, parser)
		if err != nil {
			return fmt.Errorf("failed to parse subtitle file: %w", err)
		}
		logResult(file)

		result := file.Result()
		fmt.Fprintf(out, "%s: %d paragraphs, %d errors\n",
			path,
			len(file.Subtitle().Paragraphs),
			result.ErrorCount,
		)

		if details {
			for _, a := range result.Anomalies {
				fmt.Fprintf(out, "  line %d: %s: %q\n", a.Line, a.Kind, a.Text)
			}
		}

		if result.ErrorCount > 0 {
			damaged++
		}
	}

	if strict && damaged > 0 {
		return fmt.Errorf("%d of %d files have format errors", damaged, len(args))
	}
	return nil
}
