package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mgpai22/srtmend/internal/names"
	"github.com/spf13/cobra"
)

var namesCmd = &cobra.Command{
	Use:   "names",
	Short: "Manage the speaker name dictionary",
	Long: `Manage the dictionary of speaker names (e.g. "JOHN", "WOMAN") used to
recognise narrator labels in subtitle text.

The dictionary lives in names.folder from the config, or in a Dictionaries
folder next to the executable, or in <user config dir>/Subtitle Edit/Dictionary.`,
}

var namesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every known name",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dict, err := openDictionary()
		if err != nil {
			return err
		}
		for _, name := range dict.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var namesAddCmd = &cobra.Command{
	Use:   "add [name...]",
	Short: "Add names to the user list",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dict, err := openDictionary()
		if err != nil {
			return err
		}

		added := 0
		for _, name := range args {
			if dict.Add(name) {
				added++
			} else {
				logger.Debugw("Skipping known or blank name", "name", name)
			}
		}
		if added == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No new names")
			return nil
		}

		if err := dict.Save(); err != nil {
			return err
		}
		logger.Infow("Saved names", "added", added, "path", dict.UserPath())
		fmt.Fprintf(cmd.OutOrStdout(), "Added %d name(s)\n", added)
		return nil
	},
}

var namesHasCmd = &cobra.Command{
	Use:   "has [name]",
	Short: "Report whether a name is in the dictionary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dict, err := openDictionary()
		if err != nil {
			return err
		}
		if !dict.Contains(args[0]) {
			return fmt.Errorf("name %q not found", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is known\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(namesCmd)
	namesCmd.AddCommand(namesListCmd, namesAddCmd, namesHasCmd)
}

func openDictionary() (*names.Dictionary, error) {
	folder := cfg.Names.Folder
	if folder == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("failed to locate executable: %w", err)
		}
		folder, err = names.ResolveFolder(filepath.Dir(exe))
		if err != nil {
			return nil, err
		}
	}

	logger.Debugw("Opening name dictionary", "folder", folder)
	dict, err := names.Open(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to open name dictionary: %w", err)
	}
	return dict, nil
}
